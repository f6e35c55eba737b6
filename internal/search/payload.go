package search

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/landbridge/michrazim/internal/core/domain"
)

// upstreamDateFormat is the dd/mm/yy form the search endpoint expects
// in request bodies. Responses use ISO-8601 instead.
const upstreamDateFormat = "02/01/06"

// KodYeshuv carries the settlement code over the wire. The upstream's
// "no filter" sentinel for this field is the empty string, not zero, so
// it needs its own codec.
type KodYeshuv int

func (k KodYeshuv) MarshalJSON() ([]byte, error) {
	if k == 0 {
		return []byte(`""`), nil
	}
	return []byte(strconv.Itoa(int(k))), nil
}

func (k *KodYeshuv) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte(`""`)) || bytes.Equal(data, []byte("null")) {
		*k = 0
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parse KodYeshuv %q: %w", s, err)
	}
	*k = KodYeshuv(n)
	return nil
}

// DatePayload is one {from,to} date-range object. Absent ranges
// serialize as null, absent bounds as missing keys.
type DatePayload struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Request is the exact POST /SearchApi/Search body. Field order, names
// and "no filter" sentinels (empty string, empty array, null) reproduce
// the upstream front end's payload bit for bit.
type Request struct {
	ActiveQuickSearch   bool         `json:"ActiveQuickSearch"`
	ActiveMichraz       bool         `json:"ActiveMichraz"`
	MisMichraz          string       `json:"MisMichraz"`
	SugMichraz          []int        `json:"SugMichraz"`
	KodYeshuv           KodYeshuv    `json:"KodYeshuv"`
	Yishuv              string       `json:"Yishuv"`
	Shchuna             string       `json:"Shchuna"`
	YeudMichraz         []int        `json:"YeudMichraz"`
	Merchav             []int        `json:"Merchav"`
	StatusMichraz       []int        `json:"StatusMichraz"`
	CloseDate           *DatePayload `json:"CloseDate"`
	VaadaDate           *DatePayload `json:"VaadaDate"`
	PirsumDate          *DatePayload `json:"PirsumDate"`
	PriorityPopulations []int        `json:"PriorityPopulations"`
}

// BuildRequest maps a SearchFilter onto the wire payload. Set-valued
// fields become arrays, unset ones the upstream's sentinel.
func BuildRequest(f *domain.SearchFilter) *Request {
	return &Request{
		ActiveQuickSearch:   f.QuickSearch,
		ActiveMichraz:       f.ActiveOnly,
		MisMichraz:          f.TenderNumber,
		SugMichraz:          emptyNotNil(f.TenderTypes),
		KodYeshuv:           KodYeshuv(f.SettlementCode),
		Yishuv:              f.Settlement,
		Shchuna:             f.Neighborhood,
		YeudMichraz:         emptyNotNil(f.Purposes),
		Merchav:             emptyNotNil(f.Regions),
		StatusMichraz:       emptyNotNil(f.Statuses),
		CloseDate:           datePayload(f.SubmissionDeadline),
		VaadaDate:           datePayload(f.CommitteeDate),
		PirsumDate:          datePayload(f.PublicationDate),
		PriorityPopulations: emptyNotNil(f.PriorityPopulations),
	}
}

// FilterFromRequest reverses BuildRequest. Pagination is not carried on
// the wire (the upstream ignores paging), so the result has it unset.
func FilterFromRequest(r *Request) (*domain.SearchFilter, error) {
	f := &domain.SearchFilter{
		QuickSearch:         r.ActiveQuickSearch,
		ActiveOnly:          r.ActiveMichraz,
		TenderNumber:        r.MisMichraz,
		TenderTypes:         nilNotEmpty(r.SugMichraz),
		SettlementCode:      int(r.KodYeshuv),
		Settlement:          r.Yishuv,
		Neighborhood:        r.Shchuna,
		Purposes:            nilNotEmpty(r.YeudMichraz),
		Regions:             nilNotEmpty(r.Merchav),
		Statuses:            nilNotEmpty(r.StatusMichraz),
		PriorityPopulations: nilNotEmpty(r.PriorityPopulations),
	}

	var err error
	if f.SubmissionDeadline, err = dateRange(r.CloseDate); err != nil {
		return nil, err
	}
	if f.CommitteeDate, err = dateRange(r.VaadaDate); err != nil {
		return nil, err
	}
	if f.PublicationDate, err = dateRange(r.PirsumDate); err != nil {
		return nil, err
	}
	return f, nil
}

func emptyNotNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

func nilNotEmpty(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	return s
}

func datePayload(r domain.DateRange) *DatePayload {
	if r.IsZero() {
		return nil
	}
	p := &DatePayload{}
	if !r.From.IsZero() {
		p.From = r.From.Format(upstreamDateFormat)
	}
	if !r.To.IsZero() {
		p.To = r.To.Format(upstreamDateFormat)
	}
	return p
}

func dateRange(p *DatePayload) (domain.DateRange, error) {
	var r domain.DateRange
	if p == nil {
		return r, nil
	}
	var err error
	if p.From != "" {
		if r.From, err = time.ParseInLocation(upstreamDateFormat, p.From, domain.IsraelTZ); err != nil {
			return r, fmt.Errorf("parse date %q: %w", p.From, err)
		}
	}
	if p.To != "" {
		if r.To, err = time.ParseInLocation(upstreamDateFormat, p.To, domain.IsraelTZ); err != nil {
			return r, fmt.Errorf("parse date %q: %w", p.To, err)
		}
	}
	return r, nil
}
