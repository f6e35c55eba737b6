package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/landbridge/michrazim/internal/core/domain"
	"github.com/landbridge/michrazim/internal/infra/upstream"
)

// fakePoster replays a canned response or error for every POST.
type fakePoster struct {
	body  []byte
	err   error
	calls int
	last  any
}

func (f *fakePoster) Post(ctx context.Context, path string, body any) (*upstream.RawResponse, error) {
	f.calls++
	f.last = body
	if f.err != nil {
		return nil, f.err
	}
	return &upstream.RawResponse{StatusCode: 200, Body: f.body}, nil
}

func testRetrier() *upstream.Retrier {
	return upstream.NewRetrier(upstream.NewLimiter(0), upstream.RetryConfig{
		MaxRetries:   1,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
	})
}

// tenderSet builds n valid records with publication dates descending by
// id, so the sorted order is id ascending.
func tenderSet(t *testing.T, n int) []byte {
	t.Helper()
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, domain.IsraelTZ)
	records := make([]domain.TenderRecord, n)
	for i := range records {
		records[i] = domain.TenderRecord{
			MichrazID:   int64(i + 1),
			MichrazName: fmt.Sprintf("2026/%d", i+1),
			KodYeshuv:   5000,
			PirsumDate:  domain.UpstreamTime{Time: base.Add(-time.Duration(i) * time.Hour)},
		}
	}
	body, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return body
}

func TestEngine_PagesClientSide(t *testing.T) {
	poster := &fakePoster{body: tenderSet(t, 45)}
	engine := NewEngine(poster, testRetrier())

	page, err := engine.Search(context.Background(), &domain.SearchFilter{
		PageNumber: 2,
		PageSize:   20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if poster.calls != 1 {
		t.Errorf("engine issued %d upstream calls, want exactly 1", poster.calls)
	}
	if page.TotalCount != 45 {
		t.Errorf("total = %d, want 45", page.TotalCount)
	}
	if len(page.Records) != 20 {
		t.Fatalf("page 2 holds %d records, want 20", len(page.Records))
	}
	if page.Records[0].MichrazID != 21 || page.Records[19].MichrazID != 40 {
		t.Errorf("page 2 spans ids %d..%d, want 21..40",
			page.Records[0].MichrazID, page.Records[19].MichrazID)
	}
	if !page.HasMore {
		t.Error("expected has_more = true with 5 records remaining")
	}
}

func TestEngine_PastLastPageIsEmptyNotError(t *testing.T) {
	poster := &fakePoster{body: tenderSet(t, 45)}
	engine := NewEngine(poster, testRetrier())

	page, err := engine.Search(context.Background(), &domain.SearchFilter{
		PageNumber: 9,
		PageSize:   20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Records) != 0 {
		t.Errorf("expected empty page, got %d records", len(page.Records))
	}
	if page.HasMore {
		t.Error("expected has_more = false past the last page")
	}
	if page.TotalCount != 45 {
		t.Errorf("total = %d, want 45", page.TotalCount)
	}
}

func TestEngine_SortsByPublicationDescIDAsc(t *testing.T) {
	ts := time.Date(2026, 5, 1, 0, 0, 0, 0, domain.IsraelTZ)
	records := []domain.TenderRecord{
		{MichrazID: 3, PirsumDate: domain.UpstreamTime{Time: ts}},
		{MichrazID: 1, PirsumDate: domain.UpstreamTime{Time: ts}},
		{MichrazID: 2, PirsumDate: domain.UpstreamTime{Time: ts.Add(24 * time.Hour)}},
	}
	body, _ := json.Marshal(records)
	engine := NewEngine(&fakePoster{body: body}, testRetrier())

	page, err := engine.Search(context.Background(), &domain.SearchFilter{PageSize: 10, PageNumber: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []int64
	for _, rec := range page.Records {
		got = append(got, rec.MichrazID)
	}
	want := []int64{2, 1, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order = %v, want %v", got, want)
		}
	}
}

func TestEngine_DropsInvalidRecords(t *testing.T) {
	body := []byte(`[
		{"MichrazID": 11, "MichrazName": "2026/11"},
		{"MichrazName": "no id"},
		{"MichrazID": "not a number"},
		{"MichrazID": 12}
	]`)
	engine := NewEngine(&fakePoster{body: body}, testRetrier())

	page, err := engine.Search(context.Background(), &domain.SearchFilter{PageSize: 10, PageNumber: 1})
	if err != nil {
		t.Fatalf("partial validation failures must not fail the page: %v", err)
	}
	if page.TotalCount != 2 {
		t.Errorf("kept %d records, want 2", page.TotalCount)
	}
	if page.Dropped != 2 {
		t.Errorf("dropped = %d, want 2", page.Dropped)
	}
}

func TestEngine_AllRecordsInvalidIsMalformed(t *testing.T) {
	engine := NewEngine(&fakePoster{body: []byte(`[{"MichrazID": 0}, {"x": 1}]`)}, testRetrier())

	_, err := engine.Search(context.Background(), &domain.SearchFilter{PageSize: 10, PageNumber: 1})
	var serr *Error
	if !errors.As(err, &serr) || serr.Kind != MalformedResponse {
		t.Fatalf("expected MalformedResponse when every record fails, got %v", err)
	}
}

func TestEngine_NonArrayBodyIsMalformed(t *testing.T) {
	engine := NewEngine(&fakePoster{body: []byte(`{"error": "nope"}`)}, testRetrier())

	_, err := engine.Search(context.Background(), &domain.SearchFilter{PageSize: 10, PageNumber: 1})
	var serr *Error
	if !errors.As(err, &serr) || serr.Kind != MalformedResponse {
		t.Fatalf("expected MalformedResponse, got %v", err)
	}
}

func TestEngine_SurfacesUpstreamFailure(t *testing.T) {
	poster := &fakePoster{err: &upstream.TransportError{Kind: upstream.KindHTTPStatus, StatusCode: 503}}
	engine := NewEngine(poster, testRetrier())

	_, err := engine.Search(context.Background(), &domain.SearchFilter{PageSize: 10, PageNumber: 1})
	var serr *Error
	if !errors.As(err, &serr) || serr.Kind != UpstreamFailure {
		t.Fatalf("expected UpstreamFailure, got %v", err)
	}
	var final *upstream.FinalError
	if !errors.As(err, &final) {
		t.Errorf("expected the exhausted retry error in the chain, got %v", err)
	}
	if poster.calls != 2 {
		t.Errorf("expected 2 attempts through the retrier, got %d", poster.calls)
	}
}

func TestEngine_AppliesLocalDateFilter(t *testing.T) {
	inRange := time.Date(2026, 7, 10, 0, 0, 0, 0, domain.IsraelTZ)
	outOfRange := time.Date(2026, 1, 1, 0, 0, 0, 0, domain.IsraelTZ)
	records := []domain.TenderRecord{
		{MichrazID: 1, PirsumDate: domain.UpstreamTime{Time: inRange}},
		{MichrazID: 2, PirsumDate: domain.UpstreamTime{Time: outOfRange}},
	}
	body, _ := json.Marshal(records)
	engine := NewEngine(&fakePoster{body: body}, testRetrier())

	page, err := engine.Search(context.Background(), &domain.SearchFilter{
		PublicationDate: domain.DateRange{
			From: time.Date(2026, 7, 1, 0, 0, 0, 0, domain.IsraelTZ),
			To:   time.Date(2026, 7, 31, 0, 0, 0, 0, domain.IsraelTZ),
		},
		PageSize:   10,
		PageNumber: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalCount != 1 || page.Records[0].MichrazID != 1 {
		t.Errorf("local date filter kept %d records, want only id 1", page.TotalCount)
	}
}

func TestEngine_RejectsInvertedDateRange(t *testing.T) {
	engine := NewEngine(&fakePoster{body: []byte(`[]`)}, testRetrier())

	_, err := engine.Search(context.Background(), &domain.SearchFilter{
		PublicationDate: domain.DateRange{
			From: time.Date(2026, 7, 31, 0, 0, 0, 0, domain.IsraelTZ),
			To:   time.Date(2026, 7, 1, 0, 0, 0, 0, domain.IsraelTZ),
		},
		PageSize:   10,
		PageNumber: 1,
	})
	if err == nil {
		t.Fatal("expected an error for from > to")
	}
}
