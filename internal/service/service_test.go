package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/landbridge/michrazim/internal/core/domain"
	"github.com/landbridge/michrazim/internal/infra/cache"
	"github.com/landbridge/michrazim/internal/infra/upstream"
	"github.com/landbridge/michrazim/internal/resolve"
	"github.com/landbridge/michrazim/internal/search"
)

// newTestStack wires a full service against a fake upstream server.
func newTestStack(t *testing.T, handler http.Handler) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	transport := upstream.NewTransport(srv.URL, 5*time.Second)
	t.Cleanup(transport.Close)
	retrier := upstream.NewRetrier(upstream.NewLimiter(0), upstream.RetryConfig{
		MaxRetries:   1,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
	})
	resolver := resolve.NewResolver(cache.New(nil), nil, time.Minute, 0)
	engine := search.NewEngine(transport, retrier)

	return New(engine, resolver, transport, retrier), srv
}

func TestSearchTenders_ResolvesSettlementIntoKodYeshuv(t *testing.T) {
	var gotBody search.Request
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != search.SearchPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(`[{"MichrazID": 1, "KodYeshuv": 5000}]`))
	})
	svc, _ := newTestStack(t, handler)

	page, err := svc.SearchTenders(context.Background(), domain.SearchFilter{
		Settlement: "תל אביב",
		PageSize:   10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if int(gotBody.KodYeshuv) != 5000 {
		t.Errorf("wire KodYeshuv = %d, want 5000", gotBody.KodYeshuv)
	}
	if gotBody.Yishuv != "" {
		t.Errorf("free-text Yishuv should be cleared once resolved, got %q", gotBody.Yishuv)
	}
	if page.TotalCount != 1 {
		t.Errorf("total = %d, want 1", page.TotalCount)
	}
}

func TestSearchTenders_LowConfidenceSettlementIsNotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called when resolution fails")
	})
	svc, _ := newTestStack(t, handler)

	_, err := svc.SearchTenders(context.Background(), domain.SearchFilter{
		Settlement: "qqqqqq",
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsNotFound(err) {
		t.Errorf("expected a not-found style error, got %v", err)
	}
}

func TestGetActiveTenders_SetsActiveFlag(t *testing.T) {
	var gotBody search.Request
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`[]`))
	})
	svc, _ := newTestStack(t, handler)

	if _, err := svc.GetActiveTenders(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotBody.ActiveMichraz {
		t.Error("ActiveMichraz flag not set on the wire")
	}
}

func TestSearchByType_FiltersOnTypeCode(t *testing.T) {
	var gotBody search.Request
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`[]`))
	})
	svc, _ := newTestStack(t, handler)

	if _, err := svc.SearchByType(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotBody.SugMichraz) != 1 || gotBody.SugMichraz[0] != 3 {
		t.Errorf("SugMichraz = %v, want [3]", gotBody.SugMichraz)
	}
}

func TestGetTenderDetails_QueriesByID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/MichrazDetailsApi/Get" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("michrazID"); got != "312" {
			t.Errorf("michrazID = %q, want 312", got)
		}
		w.Write([]byte(`{"MichrazID": 312, "MichrazName": "2026/312", "SchumArvut": 50000}`))
	})
	svc, _ := newTestStack(t, handler)

	details, err := svc.GetTenderDetails(context.Background(), 312)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.MichrazID != 312 || details.SchumArvut != 50000 {
		t.Errorf("details = %+v", details)
	}
}

func TestGetTenderDetails_RejectsNonPositiveID(t *testing.T) {
	svc, _ := newTestStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for an invalid id")
	}))

	if _, err := svc.GetTenderDetails(context.Background(), 0); err == nil {
		t.Error("expected an error for id 0")
	}
}

func TestGetTenderMapDetails_QueriesMapEndpoint(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/MichrazDetailsApi/GetMichrazMapaDetails" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"lat": 32.08, "lon": 34.78}`))
	})
	svc, _ := newTestStack(t, handler)

	details, err := svc.GetTenderMapDetails(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details["lat"] != 32.08 {
		t.Errorf("map details = %v", details)
	}
}

func TestGetRecentResults_BoundsSubmissionDeadline(t *testing.T) {
	var gotBody search.Request
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`[]`))
	})
	svc, _ := newTestStack(t, handler)

	if _, err := svc.GetRecentResults(context.Background(), 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody.CloseDate == nil || gotBody.CloseDate.From == "" {
		t.Fatal("expected a CloseDate lower bound on the wire")
	}
	if gotBody.CloseDate.To != "" {
		t.Errorf("expected an open upper bound, got %q", gotBody.CloseDate.To)
	}
}

func TestResolveSettlement_Delegates(t *testing.T) {
	svc, _ := newTestStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	match, err := svc.ResolveSettlement(context.Background(), "חיפה")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if match.Code != 4000 {
		t.Errorf("code = %d, want 4000", match.Code)
	}

	suggestions, err := svc.SuggestSettlements(context.Background(), "חיפ", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 3 || suggestions[0].Code != 4000 {
		t.Errorf("suggestions = %v", suggestions)
	}
}
