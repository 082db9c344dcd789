package tabyl

import (
	"fmt"
	"sort"
	"strconv"
)

// Options controls tabyl construction. The zero value is the default
// behavior: declared-but-unobserved levels appear with zero counts, and
// missing grouping values get their own <NA> row/column/entry.
type Options struct {
	// HideMissingLevels suppresses declared levels that were never observed.
	HideMissingLevels bool

	// DropNA removes observations whose grouping value is missing, rather
	// than collecting them under <NA>. Dropped observations do not count
	// toward percentage denominators.
	DropNA bool
}

// New builds a 1-way or 2-way frequency table over src. The first variable
// becomes the key column; for 2-way, the second variable's values become the
// count columns, with the <NA> column last when present.
//
// A 1-way tabyl additionally carries percent (share of all observations,
// missing included) and valid_percent (share of non-missing observations;
// the <NA> row's valid_percent is itself missing) columns.
//
// Three variables belong to [NewSplit]; any variable count outside 1-2 fails
// with [ErrInvalidArity]. A variable absent from src fails with
// [ErrMissingVariable].
func New(src *Table, opt Options, vars ...string) (*Tabyl, error) {
	switch len(vars) {
	case 1, 2:
	case 3:
		return nil, fmt.Errorf("%w: got 3 variables, use NewSplit for 3-way tabyls", ErrInvalidArity)
	default:
		return nil, fmt.Errorf("%w: got %d variables, want 1-3", ErrInvalidArity, len(vars))
	}
	cols, err := resolveVariables(src, vars)
	if err != nil {
		return nil, err
	}
	if len(vars) == 1 {
		return oneWay(cols[0], vars[0], opt)
	}
	return twoWay(cols[0], cols[1], vars, opt)
}

// NewSplit builds a 3-way tabulation: src is partitioned by the third
// variable's values, and an independent 2-way tabyl is built per partition.
// Partition order follows the same level/missing rules as rows and columns.
func NewSplit(src *Table, opt Options, vars ...string) (*Collection, error) {
	if len(vars) != 3 {
		return nil, fmt.Errorf("%w: got %d variables, want exactly 3", ErrInvalidArity, len(vars))
	}
	cols, err := resolveVariables(src, vars)
	if err != nil {
		return nil, err
	}
	depth := cols[2]
	keys := emissionOrder(depth, opt)

	c := &Collection{
		Variable: vars[2],
		keys:     keys,
		entries:  make(map[string]*Tabyl, len(keys)),
	}
	for _, key := range keys {
		want := key.key()
		var rowCol, colCol Column
		rowCol.Name, rowCol.Levels = cols[0].Name, cols[0].Levels
		colCol.Name, colCol.Levels = cols[1].Name, cols[1].Levels
		for i, cell := range depth.Cells {
			if cell.key() == want {
				rowCol.Cells = append(rowCol.Cells, cols[0].Cells[i])
				colCol.Cells = append(colCol.Cells, cols[1].Cells[i])
			}
		}
		entry, err := twoWay(rowCol, colCol, vars[:2], opt)
		if err != nil {
			return nil, err
		}
		c.entries[want] = entry
	}
	return c, nil
}

func resolveVariables(src *Table, vars []string) ([]Column, error) {
	cols := make([]Column, len(vars))
	for i, name := range vars {
		col, ok := src.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingVariable, name)
		}
		cols[i] = col
	}
	return cols, nil
}

// emissionOrder computes the ordered distinct values a grouping variable
// emits: declared levels first in declared order (zero-count levels included
// unless hidden), then observed out-of-level values ascending, then <NA>
// unless dropped.
func emissionOrder(col Column, opt Options) []Cell {
	observed := make(map[string]Cell)
	byDisplay := make(map[string]Cell)
	var sawNA bool
	for _, cell := range col.Cells {
		if cell.IsNA() {
			sawNA = true
			continue
		}
		observed[cell.key()] = cell
		byDisplay[cell.Display()] = cell
	}

	var keys []Cell
	declared := make(map[string]bool, len(col.Levels))
	for _, lvl := range col.Levels {
		declared[lvl] = true
		if cell, ok := byDisplay[lvl]; ok {
			keys = append(keys, cell)
		} else if !opt.HideMissingLevels {
			keys = append(keys, levelCell(col, lvl))
		}
	}

	var extra []Cell
	for _, cell := range observed {
		if !declared[cell.Display()] {
			extra = append(extra, cell)
		}
	}
	sortCells(extra)
	keys = append(keys, extra...)

	if sawNA && !opt.DropNA {
		keys = append(keys, NA())
	}
	return keys
}

// levelCell materializes an unobserved declared level as a cell, preserving
// the column's numeric kind when the level parses as a number.
func levelCell(col Column, lvl string) Cell {
	for _, cell := range col.Cells {
		if cell.Kind() == KindNumber {
			if v, err := strconv.ParseFloat(lvl, 64); err == nil {
				return Number(v)
			}
			break
		}
		if cell.Kind() != KindMissing {
			break
		}
	}
	return String(lvl)
}

func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool { return cells[i].less(cells[j]) })
}

func oneWay(col Column, name string, opt Options) (*Tabyl, error) {
	keys := emissionOrder(col, opt)
	counts := make(map[string]float64, len(keys))
	var total, valid float64
	for _, cell := range col.Cells {
		if cell.IsNA() && opt.DropNA {
			continue
		}
		counts[cell.key()]++
		total++
		if !cell.IsNA() {
			valid++
		}
	}

	keyCells := make([]Cell, len(keys))
	nCells := make([]Cell, len(keys))
	pctCells := make([]Cell, len(keys))
	validCells := make([]Cell, len(keys))
	for i, key := range keys {
		n := counts[key.key()]
		keyCells[i] = key
		nCells[i] = Number(n)
		switch {
		case total == 0:
			pctCells[i] = NA()
		default:
			pctCells[i] = Number(n / total)
		}
		switch {
		case key.IsNA() || valid == 0:
			validCells[i] = NA()
		default:
			validCells[i] = Number(n / valid)
		}
	}

	core, err := NewTable(
		Column{Name: name, Cells: keyCells},
		Column{Name: "n", Cells: nCells},
	)
	if err != nil {
		return nil, err
	}
	data, err := NewTable(
		Column{Name: name, Cells: keyCells},
		Column{Name: "n", Cells: nCells},
		Column{Name: "percent", Cells: pctCells},
		Column{Name: "valid_percent", Cells: validCells},
	)
	if err != nil {
		return nil, err
	}
	return &Tabyl{Table: data, Core: core, Variables: []string{name}}, nil
}

func twoWay(rowCol, colCol Column, vars []string, opt Options) (*Tabyl, error) {
	rowKeys := emissionOrder(rowCol, opt)
	colKeys := emissionOrder(colCol, opt)

	counts := make(map[string]map[string]float64, len(rowKeys))
	for i := range rowCol.Cells {
		r, c := rowCol.Cells[i], colCol.Cells[i]
		if opt.DropNA && (r.IsNA() || c.IsNA()) {
			continue
		}
		rk := r.key()
		if counts[rk] == nil {
			counts[rk] = make(map[string]float64)
		}
		counts[rk][c.key()]++
	}

	keyCells := make([]Cell, len(rowKeys))
	copy(keyCells, rowKeys)
	cols := make([]Column, 0, len(colKeys)+1)
	cols = append(cols, Column{Name: vars[0], Cells: keyCells})
	for _, ck := range colKeys {
		cells := make([]Cell, len(rowKeys))
		for i, rk := range rowKeys {
			cells[i] = Number(counts[rk.key()][ck.key()])
		}
		cols = append(cols, Column{Name: ck.Display(), Cells: cells})
	}

	data, err := NewTable(cols...)
	if err != nil {
		return nil, err
	}
	return &Tabyl{Table: data, Core: data.clone(), Variables: []string{vars[0], vars[1]}}, nil
}
