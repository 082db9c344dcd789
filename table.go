package tabyl

import "fmt"

// Column is a named, uniformly typed sequence of cells. Levels optionally
// declares the complete value set for a factor-like column; declared levels
// appear in tabyl output even when never observed.
type Column struct {
	Name   string
	Cells  []Cell
	Levels []string
}

func (c Column) clone() Column {
	out := Column{Name: c.Name}
	if c.Cells != nil {
		out.Cells = make([]Cell, len(c.Cells))
		copy(out.Cells, c.Cells)
	}
	if c.Levels != nil {
		out.Levels = make([]string, len(c.Levels))
		copy(out.Levels, c.Levels)
	}
	return out
}

// numeric reports whether every non-missing cell is a number.
func (c Column) numeric() bool {
	for _, cell := range c.Cells {
		if !cell.IsNA() && cell.Kind() != KindNumber {
			return false
		}
	}
	return true
}

// Table is an ordered sequence of named columns aligned by row position.
// Column names are unique and all columns have equal length. A Table is
// immutable after construction: NewTable copies its inputs and accessors
// return copies.
type Table struct {
	cols []Column
}

// NewTable builds a table from the given columns, copying each one.
// It fails with [ErrDuplicateColumn] if two columns share a name and with
// [ErrRaggedColumns] if column lengths differ.
func NewTable(cols ...Column) (*Table, error) {
	if len(cols) == 0 {
		return &Table{}, nil
	}
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		seen[c.Name] = true
	}
	for _, c := range cols[1:] {
		if len(c.Cells) != len(cols[0].Cells) {
			return nil, fmt.Errorf("%w: column %q has %d rows, %q has %d",
				ErrRaggedColumns, c.Name, len(c.Cells), cols[0].Name, len(cols[0].Cells))
		}
	}
	t := &Table{cols: make([]Column, len(cols))}
	for i, c := range cols {
		t.cols[i] = c.clone()
	}
	return t, nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0].Cells)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns a copy of the named column and whether it exists.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.cols {
		if c.Name == name {
			return c.clone(), true
		}
	}
	return Column{}, false
}

// Col returns a copy of the column at index i.
func (t *Table) Col(i int) Column { return t.cols[i].clone() }

// Row returns the cells of row i across all columns.
func (t *Table) Row(i int) []Cell {
	row := make([]Cell, len(t.cols))
	for j, c := range t.cols {
		row[j] = c.Cells[i]
	}
	return row
}

// cell returns the cell at (row, col) without copying the column.
func (t *Table) cell(row, col int) Cell { return t.cols[col].Cells[row] }

// clone returns a deep copy.
func (t *Table) clone() *Table {
	out := &Table{cols: make([]Column, len(t.cols))}
	for i, c := range t.cols {
		out.cols[i] = c.clone()
	}
	return out
}
