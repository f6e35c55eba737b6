package domain

// TenderDetails is the richer shape the details endpoint returns for a
// single tender. The upstream adds fields freely; unknown ones are
// ignored.
type TenderDetails struct {
	TenderRecord

	TokefArvut     UpstreamTime     `json:"TokefArvut"`
	SchumArvut     float64          `json:"SchumArvut"`
	SumArvutSarvan float64          `json:"SumArvutSarvan"`
	Divur          string           `json:"Divur"`
	Comments       string           `json:"Comments"`
	MichrazDocList []map[string]any `json:"MichrazDocList"`
	MichrazFullDoc map[string]any   `json:"MichrazFullDocument"`
	Tik            map[string]any   `json:"Tik"`
}

// MapDetails is the geographic payload for a tender. Its shape varies
// per tender, so it stays loosely typed end to end.
type MapDetails map[string]any
