package tabyl

import "fmt"

// Axis selects the denominator for [Percentages].
type Axis string

const (
	AxisRow Axis = "row" // each row's sum across data columns
	AxisCol Axis = "col" // each column's sum across rows
	AxisAll Axis = "all" // the grand total of all data cells
)

var axes = []Axis{AxisRow, AxisCol, AxisAll}

// String returns the axis name.
func (a Axis) String() string { return string(a) }

// Axes returns all supported axis names.
func Axes() []Axis {
	out := make([]Axis, len(axes))
	copy(out, axes)
	return out
}

// ParseAxis parses an axis string.
func ParseAxis(s string) (Axis, error) {
	for _, a := range axes {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}

// RoundMode selects the tie-breaking rule for [Rounding] and percent
// formatting.
type RoundMode string

const (
	// RoundBase rounds ties to the nearest even digit (banker's rounding).
	RoundBase RoundMode = "base"
	// RoundHalfUp rounds ties away from zero, the spreadsheet convention:
	// 10.5 at 0 digits becomes 11, and 0.105 at 2 digits becomes 0.11.
	RoundHalfUp RoundMode = "half up"
)

var roundModes = []RoundMode{RoundBase, RoundHalfUp}

// String returns the mode name.
func (m RoundMode) String() string { return string(m) }

// RoundModes returns all supported rounding mode names.
func RoundModes() []RoundMode {
	out := make([]RoundMode, len(roundModes))
	copy(out, roundModes)
	return out
}

// ParseRoundMode parses a rounding mode string.
func ParseRoundMode(s string) (RoundMode, error) {
	for _, m := range roundModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRoundMode, s)
}

// Adorner is a single step in an adornment chain: a pure transformation from
// one tabyl to the next. The recommended order is documented in the package
// comment; it is a caller contract, not enforced here.
type Adorner func(*Tabyl) (*Tabyl, error)

// Chain applies adorners to t in order, stopping at the first error.
func Chain(t *Tabyl, adorners ...Adorner) (*Tabyl, error) {
	cur := t
	for _, adorn := range adorners {
		next, err := adorn(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// WithTotals returns an Adorner that applies [Totals].
func WithTotals(opt TotalsOptions) Adorner {
	return func(t *Tabyl) (*Tabyl, error) { return Totals(t, opt) }
}

// WithPercentages returns an Adorner that applies [Percentages].
func WithPercentages(axis Axis) Adorner {
	return func(t *Tabyl) (*Tabyl, error) { return Percentages(t, axis) }
}

// WithRounding returns an Adorner that applies [Rounding].
func WithRounding(digits int, mode RoundMode) Adorner {
	return func(t *Tabyl) (*Tabyl, error) { return Rounding(t, digits, mode) }
}

// WithFormatting returns an Adorner that applies [PercentFormatting].
func WithFormatting(opt FormatOptions) Adorner {
	return func(t *Tabyl) (*Tabyl, error) { return PercentFormatting(t, opt) }
}

// WithNs returns an Adorner that applies [Ns].
func WithNs(opt NsOptions) Adorner {
	return func(t *Tabyl) (*Tabyl, error) { return Ns(t, opt) }
}

// dataColumns returns the indexes of the data columns: everything after the
// key column. On a bring-your-own-table tabyl with no columns it is empty.
func dataColumns(t *Tabyl) []int {
	n := t.NumCols()
	if n <= 1 {
		return nil
	}
	idx := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		idx = append(idx, i)
	}
	return idx
}

// requireNumericData fails with [ErrTypeMismatch] if any data column holds a
// non-numeric, non-missing cell.
func requireNumericData(t *Tabyl) error {
	for _, i := range dataColumns(t) {
		col := t.cols[i]
		if !col.numeric() {
			return fmt.Errorf("%w: %q", ErrTypeMismatch, col.Name)
		}
	}
	return nil
}
