package tabyl

import "fmt"

// Percentages converts every numeric data cell into a 0.0-1.0 fraction of
// the denominator selected by axis: the cell's row sum, its column sum, or
// the grand total. Key columns and missing cells are untouched. A zero
// denominator leaves its cells unchanged rather than dividing.
//
// Percentages expects raw counts; applying it to already-percentaged or
// display-rounded values produces doubly-normalized nonsense. This is a
// caller contract.
func Percentages(t *Tabyl, axis Axis) (*Tabyl, error) {
	if _, err := ParseAxis(string(axis)); err != nil {
		return nil, err
	}
	if err := requireNumericData(t); err != nil {
		return nil, err
	}

	data := t.Table.clone()
	idx := dataColumns(t)
	if len(idx) == 0 {
		return t.derive(data), nil
	}

	switch axis {
	case AxisRow:
		for r := 0; r < data.NumRows(); r++ {
			var sum float64
			for _, i := range idx {
				if cell := data.cell(r, i); cell.Kind() == KindNumber {
					sum += cell.Float()
				}
			}
			divideRow(data, r, idx, sum)
		}
	case AxisCol:
		for _, i := range idx {
			divideColumn(&data.cols[i], columnSum(data.cols[i]))
		}
	case AxisAll:
		var grand float64
		for _, i := range idx {
			grand += columnSum(data.cols[i])
		}
		for _, i := range idx {
			divideColumn(&data.cols[i], grand)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAxis, axis)
	}
	return t.derive(data), nil
}

func divideRow(data *Table, r int, idx []int, denom float64) {
	if denom == 0 {
		return
	}
	for _, i := range idx {
		if cell := data.cell(r, i); cell.Kind() == KindNumber {
			data.cols[i].Cells[r] = Number(cell.Float() / denom)
		}
	}
}

func divideColumn(col *Column, denom float64) {
	if denom == 0 {
		return
	}
	for r, cell := range col.Cells {
		if cell.Kind() == KindNumber {
			col.Cells[r] = Number(cell.Float() / denom)
		}
	}
}
