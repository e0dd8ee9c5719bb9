package pricing

// Catalog is the orderable product lineup, in carousel order.
var Catalog = []string{
	"ドライTシャツ",
	"ヘビーウェイトTシャツ",
	"ドライポロシャツ",
	"ドライメッシュビブス",
	"ドライベースボールシャツ",
	"ドライロングスリープTシャツ",
	"ドライハーフパンツ",
	"ヘビーウェイトロングスリープTシャツ",
	"クルーネックライトトレーナー",
	"フーデッドライトパーカー",
	"スタンダードトレーナー",
	"スタンダードWフードパーカー",
	"ジップアップライトパーカー",
}

// InCatalog reports whether code is an orderable product name.
func InCatalog(code string) bool {
	for _, p := range Catalog {
		if p == code {
			return true
		}
	}
	return false
}

// DefaultEntries is the built-in price table, used when no database is
// configured. Partial sample: ドライTシャツ rows only; lookups outside
// these ranges yield an unpriced result.
var DefaultEntries = []Entry{
	{"ドライTシャツ", 10, 14, TierEarly, 1830, 850, 850, 550},
	{"ドライTシャツ", 10, 14, TierStandard, 2030, 850, 850, 550},
	{"ドライTシャツ", 15, 19, TierEarly, 1470, 650, 650, 550},
	{"ドライTシャツ", 15, 19, TierStandard, 1670, 650, 650, 550},
	{"ドライTシャツ", 20, 29, TierEarly, 1230, 450, 450, 550},
	{"ドライTシャツ", 20, 29, TierStandard, 1430, 450, 450, 550},
	{"ドライTシャツ", 30, 39, TierEarly, 1060, 350, 350, 550},
	{"ドライTシャツ", 30, 39, TierStandard, 1260, 350, 350, 550},
	{"ドライTシャツ", 40, 49, TierEarly, 980, 350, 350, 550},
	{"ドライTシャツ", 40, 49, TierStandard, 1180, 350, 350, 550},
	{"ドライTシャツ", 50, 99, TierEarly, 890, 350, 350, 550},
	{"ドライTシャツ", 50, 99, TierStandard, 1090, 350, 350, 550},
	{"ドライTシャツ", 100, 500, TierEarly, 770, 300, 300, 550},
	{"ドライTシャツ", 100, 500, TierStandard, 970, 300, 300, 550},
}

// DefaultTable returns a table over the built-in entries.
func DefaultTable() *Table {
	return NewTable(DefaultEntries)
}
