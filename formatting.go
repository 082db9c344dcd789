package tabyl

import (
	"fmt"
	"strconv"
)

// FormatOptions controls [PercentFormatting]. The zero value renders whole
// percentages with half-up tie-breaking and a % suffix.
type FormatOptions struct {
	// Digits is the number of decimal places shown.
	Digits int

	// Rounding is the tie-break mode; empty means [RoundHalfUp].
	Rounding RoundMode

	// NoSuffix drops the trailing % sign.
	NoSuffix bool
}

// PercentFormatting renders every numeric data cell as a percentage display
// string: the value is multiplied by 100, rounded, fixed to Digits decimal
// places, and suffixed with %. It expects 0.0-1.0 fractions, i.e. a table
// already passed through [Percentages]. Missing cells stay missing.
//
// The output columns are string-typed; this step is terminal for numeric
// adornment of those columns.
func PercentFormatting(t *Tabyl, opt FormatOptions) (*Tabyl, error) {
	if opt.Digits < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDigits, opt.Digits)
	}
	mode := opt.Rounding
	if mode == "" {
		mode = RoundHalfUp
	}
	if _, err := ParseRoundMode(string(mode)); err != nil {
		return nil, err
	}
	if err := requireNumericData(t); err != nil {
		return nil, err
	}

	data := t.Table.clone()
	for _, i := range dataColumns(t) {
		col := &data.cols[i]
		for r, cell := range col.Cells {
			if cell.Kind() != KindNumber {
				continue
			}
			v := roundTo(cell.Float()*100, opt.Digits, mode)
			s := strconv.FormatFloat(v, 'f', opt.Digits, 64)
			if !opt.NoSuffix {
				s += "%"
			}
			col.Cells[r] = String(s)
		}
	}
	return t.derive(data), nil
}
