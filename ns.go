package tabyl

import (
	"fmt"
	"strconv"
)

// NsOptions controls [Ns]. The zero value annotates from the tabyl's core
// with plain integer formatting.
type NsOptions struct {
	// Counts overrides the count source. When nil the tabyl's Core is used.
	Counts *Table

	// Format renders an appended count. When nil the shortest decimal form
	// is used.
	Format func(float64) string
}

// Ns appends the underlying raw count to every data cell, producing strings
// like "41.7% (5)". Counts come from the tabyl's core by default; a tabyl
// without core (see [FromTable]) fails with [ErrMissingCoreData] unless
// explicit counts are supplied.
//
// Counts are matched by row key value and data column name. A count source
// with a single data column (a 1-way core) serves every target data column.
// Cells in a Total row or column have no counterpart in the counts and are
// left unannotated; any other unmatched key fails with [ErrShapeMismatch].
//
// Output cells are string-typed, so Ns ends an adornment chain.
func Ns(t *Tabyl, opt NsOptions) (*Tabyl, error) {
	source := opt.Counts
	if source == nil {
		source = t.Core
	}
	if source == nil {
		return nil, fmt.Errorf("%w: table has no core and no explicit counts were supplied", ErrMissingCoreData)
	}
	if source.NumCols() < 2 {
		return nil, fmt.Errorf("%w: count source needs a key column and at least one count column", ErrShapeMismatch)
	}

	// Index counts by row key display and column name.
	lookup := make(map[string]map[string]float64, source.NumRows())
	for r := 0; r < source.NumRows(); r++ {
		key := source.cell(r, 0).Display()
		row := make(map[string]float64, source.NumCols()-1)
		for i := 1; i < source.NumCols(); i++ {
			cell := source.cell(r, i)
			if cell.Kind() != KindNumber {
				return nil, fmt.Errorf("%w: count column %q", ErrTypeMismatch, source.cols[i].Name)
			}
			row[source.cols[i].Name] = cell.Float()
		}
		lookup[key] = row
	}
	single := ""
	if source.NumCols() == 2 {
		single = source.cols[1].Name
	}

	format := opt.Format
	if format == nil {
		format = func(n float64) string { return strconv.FormatFloat(n, 'f', -1, 64) }
	}

	data := t.Table.clone()
	for _, i := range dataColumns(t) {
		col := &data.cols[i]
		if col.Name == TotalLabel {
			continue
		}
		for r, cell := range col.Cells {
			if cell.IsNA() {
				continue
			}
			key := data.cell(r, 0).Display()
			if key == TotalLabel {
				continue
			}
			row, ok := lookup[key]
			if !ok {
				return nil, fmt.Errorf("%w: row %q not present in counts", ErrShapeMismatch, key)
			}
			name := col.Name
			if single != "" {
				name = single
			}
			n, ok := row[name]
			if !ok {
				return nil, fmt.Errorf("%w: column %q not present in counts", ErrShapeMismatch, col.Name)
			}
			col.Cells[r] = String(cell.Display() + " (" + format(n) + ")")
		}
	}
	return t.derive(data), nil
}
