package domain

import (
	"bytes"
	"fmt"
	"time"
)

// IsraelTZ is the fixed offset the upstream stamps on every date field.
var IsraelTZ = time.FixedZone("IST", 3*60*60)

// UpstreamTime wraps time.Time to decode the upstream's date encoding:
// ISO-8601 with a +03:00 offset, occasionally without an explicit zone.
type UpstreamTime struct {
	time.Time
}

func (t *UpstreamTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		t.Time = time.Time{}
		return nil
	}

	s := string(bytes.Trim(data, `"`))

	// Zoned form first, then the zone-less form pinned to UTC+3.
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.ParseInLocation("2006-01-02T15:04:05", s, IsraelTZ)
	if err != nil {
		return fmt.Errorf("parse upstream time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t UpstreamTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.In(IsraelTZ).Format(time.RFC3339) + `"`), nil
}

// TenderRecord is one tender as returned by the search endpoint.
// Field names mirror the upstream's transliterated Hebrew JSON keys.
// Unknown upstream fields are ignored on decode.
type TenderRecord struct {
	MichrazID         int64        `json:"MichrazID"`
	MichrazName       string       `json:"MichrazName"`
	KodSugMichraz     int          `json:"KodSugMichraz"`
	KodYeudMichraz    int          `json:"KodYeudMichraz"`
	KodMerchav        int          `json:"KodMerchav"`
	StatusMichraz     int          `json:"StatusMichraz"`
	KodYeshuv         int          `json:"KodYeshuv"`
	Shchuna           string       `json:"Shchuna"`
	PirsumDate        UpstreamTime `json:"PirsumDate"`
	PtichaDate        UpstreamTime `json:"PtichaDate"`
	SgiraDate         UpstreamTime `json:"SgiraDate"`
	VaadaDate         UpstreamTime `json:"VaadaDate"`
	YechidotDiur      int          `json:"YechidotDiur"`
	KhalYaadRashi     float64      `json:"KhalYaadRashi"`
	PublishedChoveret bool         `json:"PublishedChoveret"`
	Mekuvan           bool         `json:"Mekuvan"`
}

// Validate reports whether the record carries the fields every tender
// must have. Records failing validation are dropped from the page, not
// escalated, unless the whole response is unusable.
func (t *TenderRecord) Validate() error {
	if t.MichrazID <= 0 {
		return fmt.Errorf("tender record missing MichrazID")
	}
	return nil
}
