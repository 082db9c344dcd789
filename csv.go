package tabyl

import (
	"encoding/csv"
	"io"
)

// WriteCSV renders t as CSV: a header row of column names, then one record
// per row. Missing cells render as [NALabel].
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return err
	}
	record := make([]string, t.NumCols())
	for r := 0; r < t.NumRows(); r++ {
		for c := 0; c < t.NumCols(); c++ {
			record[c] = t.cell(r, c).Display()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
