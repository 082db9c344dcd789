package tabyl

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rounding rounds every numeric data cell to digits decimal places. Output
// stays numeric, so the result composes with further numeric work; use
// [PercentFormatting] for display strings.
//
// Rounding is decimal-aware: values are converted through their shortest
// round-tripping decimal representation before the tie-break is applied, so
// 0.105 is a true tie at 2 digits even though its float64 form is slightly
// below it. RoundHalfUp takes ties away from zero (0.105 -> 0.11,
// 10.5 -> 11); RoundBase takes them to the nearest even digit (10.5 -> 10).
func Rounding(t *Tabyl, digits int, mode RoundMode) (*Tabyl, error) {
	if digits < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDigits, digits)
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
			if cell.Kind() == KindNumber {
				col.Cells[r] = Number(roundTo(cell.Float(), digits, mode))
			}
		}
	}
	return t.derive(data), nil
}

func roundTo(v float64, digits int, mode RoundMode) float64 {
	d := decimal.NewFromFloat(v)
	if mode == RoundBase {
		d = d.RoundBank(int32(digits))
	} else {
		d = d.Round(int32(digits))
	}
	return d.InexactFloat64()
}
