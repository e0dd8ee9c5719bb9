package pricing

// Tier selects between early-bird and regular pricing rows.
type Tier string

const (
	TierEarly    Tier = "早割"
	TierStandard Tier = "通常"
)

// ColorOption is the surcharge column applied on top of the unit price.
type ColorOption string

const (
	ColorSamePosition  ColorOption = "same_color_add"
	ColorExtraPosition ColorOption = "different_color_add"
	ColorFull          ColorOption = "full_color_add"
)

// PrintPosition is captured during intake but carries no surcharge yet.
// Kept as an input so a surcharge can be attached here later without
// touching callers.
type PrintPosition string

const (
	PositionFront     PrintPosition = "front"
	PositionBack      PrintPosition = "back"
	PositionFrontBack PrintPosition = "front_back"
)

// Entry is one pricing rule: a product within a quantity range for one
// tier. Prices are integer yen per unit.
type Entry struct {
	Product          string
	MinQty           int
	MaxQty           int
	Tier             Tier
	UnitPrice        int64
	SameColorAdd     int64
	ExtraPositionAdd int64
	FullColorAdd     int64
}

// Result is a computed quote total. Priced is false when no table row
// covers the product/quantity/tier combination; the total is then zero
// rather than an error so the caller can decide how to present it.
type Result struct {
	Total  int64
	Priced bool
}

type Table struct {
	entries []Entry
}

func NewTable(entries []Entry) *Table {
	return &Table{entries: entries}
}

func (t *Table) Len() int { return len(t.entries) }

// TierFor maps lead-time eligibility to the pricing tier.
func TierFor(earlyDiscount bool) Tier {
	if earlyDiscount {
		return TierEarly
	}
	return TierStandard
}

// Quote computes the total for one intake. First matching row wins:
// product equal, tier equal, MinQty <= qty <= MaxQty (both inclusive).
func (t *Table) Quote(product string, qty int, earlyDiscount bool, pos PrintPosition, opt ColorOption) Result {
	tier := TierFor(earlyDiscount)

	var row *Entry
	for i := range t.entries {
		e := &t.entries[i]
		if e.Product == product && e.Tier == tier && e.MinQty <= qty && qty <= e.MaxQty {
			row = e
			break
		}
	}
	if row == nil {
		return Result{Total: 0, Priced: false}
	}

	base := row.UnitPrice * int64(qty)

	// Unrecognized color options add nothing; pos never adds anything
	// yet, see the PrintPosition doc comment.
	var perUnit int64
	switch opt {
	case ColorSamePosition:
		perUnit = row.SameColorAdd
	case ColorExtraPosition:
		perUnit = row.ExtraPositionAdd
	case ColorFull:
		perUnit = row.FullColorAdd
	}

	return Result{Total: base + perUnit*int64(qty), Priced: true}
}
