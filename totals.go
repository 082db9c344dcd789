package tabyl

// TotalLabel keys the totals row and names the totals column.
const TotalLabel = "Total"

// TotalsOptions selects which totals to add. The zero value adds a totals
// row only, the reference default.
type TotalsOptions struct {
	Rows bool
	Cols bool
}

// Totals appends a totals row and/or column summing the numeric data
// columns. Key columns are never summed. With both flags set, the
// bottom-right cell is the grand total.
//
// Totals is not idempotent: a second call re-sums whatever numeric data it
// finds, prior totals included. Call it once, before percentage adornment.
func Totals(t *Tabyl, opt TotalsOptions) (*Tabyl, error) {
	if !opt.Rows && !opt.Cols {
		opt.Rows = true
	}
	if err := requireNumericData(t); err != nil {
		return nil, err
	}

	data := t.Table.clone()
	if opt.Rows {
		for i, col := range data.cols {
			if i == 0 {
				col.Cells = append(col.Cells, String(TotalLabel))
			} else {
				col.Cells = append(col.Cells, Number(columnSum(col)))
			}
			data.cols[i] = col
		}
	}
	if opt.Cols {
		total := Column{Name: TotalLabel, Cells: make([]Cell, data.NumRows())}
		for r := range total.Cells {
			var sum float64
			for i := 1; i < data.NumCols(); i++ {
				if cell := data.cell(r, i); cell.Kind() == KindNumber {
					sum += cell.Float()
				}
			}
			total.Cells[r] = Number(sum)
		}
		data.cols = append(data.cols, total)
	}
	return t.derive(data), nil
}

// columnSum sums a column's numeric cells; missing cells contribute nothing.
func columnSum(col Column) float64 {
	var sum float64
	for _, cell := range col.Cells {
		if cell.Kind() == KindNumber {
			sum += cell.Float()
		}
	}
	return sum
}
