package domain

import (
	"fmt"
	"time"
)

// DateRange bounds one of the three upstream date filters. A zero bound
// means "open on that side".
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains reports whether ts falls inside the range. Open bounds always
// match; a zero ts only matches a fully open range.
func (r DateRange) Contains(ts time.Time) bool {
	if r.IsZero() {
		return true
	}
	if ts.IsZero() {
		return false
	}
	if !r.From.IsZero() && ts.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && ts.After(r.To) {
		return false
	}
	return true
}

func (r DateRange) validate(name string) error {
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return fmt.Errorf("%s: from %s is after to %s", name, r.From.Format("02/01/06"), r.To.Format("02/01/06"))
	}
	return nil
}

// SearchFilter describes caller intent for a tender search. Nil/empty
// slices and zero values mean "no filter" for that dimension.
type SearchFilter struct {
	TenderNumber        string
	TenderTypes         []int
	Purposes            []int
	Regions             []int
	Statuses            []int
	PriorityPopulations []int

	SettlementCode int
	Settlement     string // free text, resolved to SettlementCode before dispatch
	Neighborhood   string

	SubmissionDeadline DateRange
	CommitteeDate      DateRange
	PublicationDate    DateRange

	ActiveOnly  bool
	QuickSearch bool

	PageNumber int
	PageSize   int
}

// DefaultPageSize applies when a filter leaves PageSize unset.
const DefaultPageSize = 100

// Normalize fills pagination defaults in place.
func (f *SearchFilter) Normalize() {
	if f.PageNumber <= 0 {
		f.PageNumber = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
}

// Validate rejects filters that cannot be dispatched.
func (f *SearchFilter) Validate() error {
	if f.PageSize < 0 {
		return fmt.Errorf("page size must be positive, got %d", f.PageSize)
	}
	if f.PageNumber < 0 {
		return fmt.Errorf("page number must be positive, got %d", f.PageNumber)
	}
	if err := f.SubmissionDeadline.validate("submission deadline"); err != nil {
		return err
	}
	if err := f.CommitteeDate.validate("committee date"); err != nil {
		return err
	}
	if err := f.PublicationDate.validate("publication date"); err != nil {
		return err
	}
	return nil
}

// Page is one client-side slice of the full upstream result set.
type Page struct {
	Records    []TenderRecord
	TotalCount int
	PageNumber int
	PageSize   int
	HasMore    bool

	// Dropped counts records that failed validation and were excluded.
	Dropped int
}
