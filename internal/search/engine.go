// Package search implements tender search against the upstream API.
// The upstream ignores server-side paging entirely, so the engine
// always retrieves the full result set and pages client-side. Data
// volumes are thousands of records, which keeps this tractable.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/landbridge/michrazim/internal/core/domain"
	"github.com/landbridge/michrazim/internal/infra/upstream"
	"github.com/landbridge/michrazim/internal/metrics"
)

// SearchPath is the search endpoint, relative to the API root.
const SearchPath = "/SearchApi/Search"

// ErrorKind classifies engine failures.
type ErrorKind int

const (
	// UpstreamFailure means the retry policy exhausted or the call
	// failed permanently.
	UpstreamFailure ErrorKind = iota
	// MalformedResponse means the body was not a JSON tender array.
	MalformedResponse
)

// Error is the engine's failure surface.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case MalformedResponse:
		return fmt.Sprintf("malformed upstream response: %v", e.Err)
	default:
		return fmt.Sprintf("upstream search failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Poster issues the search POST. Satisfied by *upstream.Transport.
type Poster interface {
	Post(ctx context.Context, path string, body any) (*upstream.RawResponse, error)
}

// Engine retrieves, filters, sorts and slices tender result sets.
type Engine struct {
	transport Poster
	retrier   *upstream.Retrier
}

// NewEngine creates an engine over the shared transport and retrier.
func NewEngine(transport Poster, retrier *upstream.Retrier) *Engine {
	return &Engine{transport: transport, retrier: retrier}
}

// Search runs one search: a single retried POST for the full result
// set, then local filtering, deterministic sort and page slicing.
// Records failing validation are dropped and counted, not escalated,
// unless every record fails.
func (e *Engine) Search(ctx context.Context, filter *domain.SearchFilter) (*domain.Page, error) {
	if err := filter.Validate(); err != nil {
		return nil, &Error{Kind: UpstreamFailure, Err: err}
	}
	filter.Normalize()

	req := BuildRequest(filter)
	resp, err := e.retrier.Do(ctx, func(ctx context.Context) (*upstream.RawResponse, error) {
		return e.transport.Post(ctx, SearchPath, req)
	})
	if err != nil {
		return nil, &Error{Kind: UpstreamFailure, Err: err}
	}

	records, dropped, err := decodeRecords(resp.Body)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		slog.Warn("dropped invalid tender records", "dropped", dropped, "kept", len(records))
	}
	metrics.SearchResults.Observe(float64(len(records)))

	records = applyLocalFilters(records, filter)
	sortRecords(records)

	return slicePage(records, filter, dropped), nil
}

// decodeRecords decodes the upstream body element by element so one
// bad record does not poison the page.
func decodeRecords(body []byte) ([]domain.TenderRecord, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, 0, &Error{Kind: MalformedResponse, Err: err}
	}

	records := make([]domain.TenderRecord, 0, len(raw))
	dropped := 0
	for _, msg := range raw {
		var rec domain.TenderRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			dropped++
			continue
		}
		if err := rec.Validate(); err != nil {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	if len(raw) > 0 && len(records) == 0 {
		return nil, dropped, &Error{
			Kind: MalformedResponse,
			Err:  fmt.Errorf("all %d records failed validation", len(raw)),
		}
	}
	return records, dropped, nil
}

// applyLocalFilters re-applies the predicates the upstream is known to
// honor inconsistently: the three date ranges and the settlement code.
func applyLocalFilters(records []domain.TenderRecord, f *domain.SearchFilter) []domain.TenderRecord {
	noDates := f.SubmissionDeadline.IsZero() && f.CommitteeDate.IsZero() && f.PublicationDate.IsZero()
	if noDates && f.SettlementCode == 0 {
		return records
	}

	kept := records[:0]
	for _, rec := range records {
		if f.SettlementCode != 0 && rec.KodYeshuv != f.SettlementCode {
			continue
		}
		if !f.SubmissionDeadline.IsZero() && !f.SubmissionDeadline.Contains(rec.SgiraDate.Time) {
			continue
		}
		if !f.CommitteeDate.IsZero() && !f.CommitteeDate.Contains(rec.VaadaDate.Time) {
			continue
		}
		if !f.PublicationDate.IsZero() && !f.PublicationDate.Contains(rec.PirsumDate.Time) {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

// sortRecords orders by publication date descending, tie-broken by id
// ascending, so paging is stable across calls.
func sortRecords(records []domain.TenderRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		pi, pj := records[i].PirsumDate.Time, records[j].PirsumDate.Time
		if !pi.Equal(pj) {
			return pi.After(pj)
		}
		return records[i].MichrazID < records[j].MichrazID
	})
}

func slicePage(records []domain.TenderRecord, f *domain.SearchFilter, dropped int) *domain.Page {
	total := len(records)
	start := (f.PageNumber - 1) * f.PageSize
	end := start + f.PageSize

	var slice []domain.TenderRecord
	if start < total {
		if end > total {
			end = total
		}
		slice = records[start:end]
	} else {
		slice = []domain.TenderRecord{}
	}

	return &domain.Page{
		Records:    slice,
		TotalCount: total,
		PageNumber: f.PageNumber,
		PageSize:   f.PageSize,
		HasMore:    end < total && start < total,
		Dropped:    dropped,
	}
}
