package domain

// SettlementEntry maps a Hebrew locality name to its official Kod
// Yeshuv code. Region is the Rami region the locality belongs to, 0
// when unknown.
type SettlementEntry struct {
	Name   string
	Code   int
	Region int
}

// SettlementCatalog returns the built-in Kod Yeshuv table. The slice is
// freshly allocated per call so callers may not mutate shared state.
func SettlementCatalog() []SettlementEntry {
	out := make([]SettlementEntry, len(settlements))
	copy(out, settlements)
	return out
}

// Official CBS locality codes for the localities the upstream lists
// tenders in most often. Names match the upstream's display spelling.
var settlements = []SettlementEntry{
	{Name: "ירושלים", Code: 3000, Region: 5},
	{Name: "תל אביב", Code: 5000, Region: 4},
	{Name: "חיפה", Code: 4000, Region: 3},
	{Name: "ראשון לציון", Code: 8300, Region: 6},
	{Name: "פתח תקווה", Code: 7900, Region: 6},
	{Name: "אשדוד", Code: 70, Region: 2},
	{Name: "נתניה", Code: 7400, Region: 6},
	{Name: "באר שבע", Code: 9000, Region: 2},
	{Name: "בני ברק", Code: 6100, Region: 4},
	{Name: "חולון", Code: 6600, Region: 4},
	{Name: "רמת גן", Code: 8600, Region: 4},
	{Name: "אשקלון", Code: 7100, Region: 2},
	{Name: "רחובות", Code: 8400, Region: 6},
	{Name: "בת ים", Code: 6200, Region: 4},
	{Name: "בית שמש", Code: 2610, Region: 5},
	{Name: "כפר סבא", Code: 6900, Region: 6},
	{Name: "הרצליה", Code: 6400, Region: 4},
	{Name: "חדרה", Code: 6500, Region: 3},
	{Name: "מודיעין מכבים רעות", Code: 1200, Region: 6},
	{Name: "נצרת", Code: 7300, Region: 3},
	{Name: "לוד", Code: 7000, Region: 6},
	{Name: "רמלה", Code: 8500, Region: 6},
	{Name: "רעננה", Code: 8700, Region: 6},
	{Name: "אילת", Code: 2600, Region: 2},
	{Name: "עכו", Code: 7600, Region: 3},
	{Name: "טבריה", Code: 6700, Region: 3},
	{Name: "צפת", Code: 8000, Region: 3},
	{Name: "קרית גת", Code: 2630, Region: 2},
	{Name: "עפולה", Code: 7700, Region: 3},
	{Name: "דימונה", Code: 2200, Region: 2},
	{Name: "נהריה", Code: 9100, Region: 3},
	{Name: "כרמיאל", Code: 1139, Region: 3},
	{Name: "קרית שמונה", Code: 2800, Region: 3},
	{Name: "נס ציונה", Code: 7200, Region: 6},
	{Name: "יבנה", Code: 2660, Region: 6},
	{Name: "אור יהודה", Code: 2400, Region: 4},
	{Name: "ראש העין", Code: 2640, Region: 6},
	{Name: "הוד השרון", Code: 9700, Region: 6},
	{Name: "גבעתיים", Code: 6300, Region: 4},
	{Name: "קרית אונו", Code: 2620, Region: 4},
	{Name: "אופקים", Code: 31, Region: 2},
	{Name: "נתיבות", Code: 246, Region: 2},
	{Name: "שדרות", Code: 1031, Region: 2},
	{Name: "ערד", Code: 2560, Region: 2},
	{Name: "מצפה רמון", Code: 99, Region: 2},
	{Name: "בית שאן", Code: 9200, Region: 3},
	{Name: "מעלות תרשיחא", Code: 1063, Region: 3},
	{Name: "אריאל", Code: 3570, Region: 1},
	{Name: "מעלה אדומים", Code: 3616, Region: 1},
	{Name: "ביתר עילית", Code: 3780, Region: 1},
	{Name: "זכרון יעקב", Code: 9300, Region: 3},
	{Name: "פרדס חנה כרכור", Code: 7800, Region: 3},
	{Name: "קרית ביאליק", Code: 9500, Region: 3},
	{Name: "קרית מוצקין", Code: 8200, Region: 3},
	{Name: "קרית ים", Code: 9600, Region: 3},
	{Name: "קרית אתא", Code: 6800, Region: 3},
	{Name: "טירת כרמל", Code: 2100, Region: 3},
	{Name: "נשר", Code: 2500, Region: 3},
	{Name: "יקנעם עילית", Code: 240, Region: 3},
	{Name: "רהט", Code: 1161, Region: 2},
	{Name: "אום אל פחם", Code: 2710, Region: 3},
	{Name: "סחנין", Code: 7500, Region: 3},
	{Name: "טייבה", Code: 2730, Region: 6},
	{Name: "שפרעם", Code: 8800, Region: 3},
	{Name: "גדרה", Code: 2550, Region: 6},
	{Name: "גן יבנה", Code: 166, Region: 2},
	{Name: "קרית מלאכי", Code: 1034, Region: 2},
	{Name: "רמת השרון", Code: 2650, Region: 4},
	{Name: "גבעת שמואל", Code: 681, Region: 4},
	{Name: "יהוד מונוסון", Code: 9400, Region: 4},
	{Name: "אלעד", Code: 1309, Region: 6},
	{Name: "טירה", Code: 2720, Region: 6},
	{Name: "כפר יונה", Code: 168, Region: 6},
	{Name: "צור יגאל", Code: 1311, Region: 6},
	{Name: "שוהם", Code: 1304, Region: 6},
	{Name: "באר יעקב", Code: 2530, Region: 6},
	{Name: "קרית עקרון", Code: 469, Region: 6},
	{Name: "מזכרת בתיה", Code: 28, Region: 6},
	{Name: "אבן יהודה", Code: 182, Region: 6},
	{Name: "קדימה צורן", Code: 195, Region: 6},
	{Name: "תל מונד", Code: 154, Region: 6},
	{Name: "עתלית", Code: 53, Region: 3},
	{Name: "חריש", Code: 1247, Region: 3},
	{Name: "ירוחם", Code: 831, Region: 2},
	{Name: "עומר", Code: 666, Region: 2},
	{Name: "להבים", Code: 1271, Region: 2},
	{Name: "מיתר", Code: 1268, Region: 2},
}
