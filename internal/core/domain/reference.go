package domain

// Reference tables mirroring the upstream's documented code lists.
// These never change at runtime; accessor functions copy so callers
// cannot mutate the shared tables.

// TenderType is one entry of the tender type (SugMichraz) code list.
type TenderType struct {
	ID          int
	NameHebrew  string
	NameEnglish string
}

// Region is one Rami region (Merchav).
type Region struct {
	ID          int
	NameHebrew  string
	NameEnglish string
}

// LandUse is one tender purpose (YeudMichraz) category.
type LandUse struct {
	ID          int
	NameHebrew  string
	NameEnglish string
}

// TenderStatus is one StatusMichraz code.
type TenderStatus struct {
	ID          int
	NameHebrew  string
	NameEnglish string
}

// PriorityPopulation is one priority population code usable in the
// PriorityPopulations search field.
type PriorityPopulation struct {
	ID          int
	NameHebrew  string
	NameEnglish string
}

var tenderTypes = []TenderType{
	{ID: 1, NameHebrew: "מכרז פומבי רגיל", NameEnglish: "Regular Public Tender"},
	{ID: 2, NameHebrew: "מחיר מטרה", NameEnglish: "Target Price"},
	{ID: 3, NameHebrew: "דיור במחיר מופחת", NameEnglish: "Reduced Price Housing"},
	{ID: 4, NameHebrew: "מכרז ייזום", NameEnglish: "Initiative Tender"},
	{ID: 5, NameHebrew: "מכרז למגרש בלתי מסוים", NameEnglish: "Unspecified Plot Tender"},
	{ID: 6, NameHebrew: "הרשמה והגרלה", NameEnglish: "Registration and Lottery"},
	{ID: 7, NameHebrew: "דיור להשכרה", NameEnglish: "Rental Housing"},
	{ID: 8, NameHebrew: "מכרזי עמידר", NameEnglish: "Amidar Tenders"},
	{ID: 9, NameHebrew: "מכרזי החברה לפיתוח עכו", NameEnglish: "Acre Development Company Tenders"},
}

var regions = []Region{
	{ID: 1, NameHebrew: "יו\"ש", NameEnglish: "Judea and Samaria"},
	{ID: 2, NameHebrew: "דרום", NameEnglish: "South"},
	{ID: 3, NameHebrew: "חיפה", NameEnglish: "Haifa"},
	{ID: 4, NameHebrew: "תל אביב", NameEnglish: "Tel Aviv"},
	{ID: 5, NameHebrew: "ירושלים", NameEnglish: "Jerusalem"},
	{ID: 6, NameHebrew: "מרכז", NameEnglish: "Center"},
}

var landUses = []LandUse{
	{ID: 1, NameHebrew: "בנייה נמוכה/צמודת קרקע", NameEnglish: "Low-rise/Ground-attached Construction"},
	{ID: 2, NameHebrew: "בנייה רוויה", NameEnglish: "High-density Construction"},
	{ID: 3, NameHebrew: "מסחר ו/או משרדים", NameEnglish: "Commerce and/or Offices"},
	{ID: 4, NameHebrew: "מלונאות", NameEnglish: "Hotels"},
	{ID: 5, NameHebrew: "מוסדות ו/או בניינים ציבוריים", NameEnglish: "Institutions and/or Public Buildings"},
	{ID: 6, NameHebrew: "ספורט ו/או נופש ו/או תיירות ו/או מלונאות", NameEnglish: "Sports/Recreation/Tourism/Hotels"},
	{ID: 7, NameHebrew: "מגורים ו/או מסחר ו/או מלונאות ו/או נופש", NameEnglish: "Residential/Commercial/Hotels/Recreation"},
	{ID: 8, NameHebrew: "כרייה וחציבה", NameEnglish: "Mining and Quarrying"},
	{ID: 9, NameHebrew: "אחר", NameEnglish: "Other"},
}

var tenderStatuses = []TenderStatus{
	{ID: 1, NameHebrew: "מפורסם", NameEnglish: "Published"},
	{ID: 2, NameHebrew: "בוטל", NameEnglish: "Cancelled"},
	{ID: 3, NameHebrew: "טרם הוכרזו זוכים", NameEnglish: "Winners Not Yet Announced"},
}

var priorityPopulations = []PriorityPopulation{
	{ID: 1, NameHebrew: "חיילי מילואים", NameEnglish: "Reserve Soldiers"},
	{ID: 2, NameHebrew: "נכי צה\"ל", NameEnglish: "IDF Disabled Veterans"},
	{ID: 3, NameHebrew: "בני מקום", NameEnglish: "Local Residents"},
	{ID: 4, NameHebrew: "בני מיעוטים בהמלצת כוחות הביטחון", NameEnglish: "Minorities recommended by security forces"},
	{ID: 5, NameHebrew: "זכאי משרד הבינוי והשיכון", NameEnglish: "Ministry of Housing Eligible"},
}

// TenderTypes returns the tender type code list.
func TenderTypes() []TenderType {
	out := make([]TenderType, len(tenderTypes))
	copy(out, tenderTypes)
	return out
}

// Regions returns the Rami region code list.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// LandUses returns the tender purpose code list.
func LandUses() []LandUse {
	out := make([]LandUse, len(landUses))
	copy(out, landUses)
	return out
}

// TenderStatuses returns the status code list.
func TenderStatuses() []TenderStatus {
	out := make([]TenderStatus, len(tenderStatuses))
	copy(out, tenderStatuses)
	return out
}

// PriorityPopulations returns the priority population code list.
func PriorityPopulations() []PriorityPopulation {
	out := make([]PriorityPopulation, len(priorityPopulations))
	copy(out, priorityPopulations)
	return out
}
