package tabyl

import (
	"errors"
	"iter"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidArity     = errors.New("invalid number of grouping variables")
	ErrMissingVariable  = errors.New("missing variable")
	ErrMissingCoreData  = errors.New("missing core count data")
	ErrShapeMismatch    = errors.New("count table shape mismatch")
	ErrTypeMismatch     = errors.New("non-numeric data column")
	ErrDuplicateColumn  = errors.New("duplicate column name")
	ErrRaggedColumns    = errors.New("columns differ in length")
	ErrUnknownAxis      = errors.New("unknown percentage axis")
	ErrUnknownRoundMode = errors.New("unknown rounding mode")
	ErrInvalidDigits    = errors.New("digits must be non-negative")
)

// Tabyl is a frequency table: a display [Table] plus the metadata adorners
// need. Core holds the raw counts as built and is carried unchanged through
// every adornment so N-annotation can always read original counts. Variables
// lists the grouping variable names in row, column, depth priority order.
//
// The first column is the key column (row-variable values); every other
// column is a data column subject to adornment.
type Tabyl struct {
	*Table

	// Core is the raw-count snapshot attached at build time. It is nil for
	// tables wrapped with [FromTable].
	Core *Table

	// Variables holds the 1-3 grouping variable names the tabyl was built
	// from.
	Variables []string
}

// FromTable wraps an arbitrary table so adorners accept it. The wrapped tabyl
// has no core; N-annotation then requires explicit counts. vars optionally
// records the grouping variable names when the caller knows them.
func FromTable(t *Table, vars ...string) *Tabyl {
	return &Tabyl{Table: t, Variables: vars}
}

// derive returns a new Tabyl around data, carrying this tabyl's metadata
// forward.
func (t *Tabyl) derive(data *Table) *Tabyl {
	out := &Tabyl{Table: data, Core: t.Core}
	if t.Variables != nil {
		out.Variables = make([]string, len(t.Variables))
		copy(out.Variables, t.Variables)
	}
	return out
}

// Collection is the result of a 3-way tabulation: an insertion-ordered
// mapping from each depth-variable value to an independent 2-way [Tabyl]
// with its own core.
type Collection struct {
	// Variable is the depth variable the source was partitioned by.
	Variable string

	keys    []Cell
	entries map[string]*Tabyl
}

// Len returns the number of depth entries.
func (c *Collection) Len() int { return len(c.keys) }

// Keys returns the depth-variable values in emission order.
func (c *Collection) Keys() []Cell {
	out := make([]Cell, len(c.keys))
	copy(out, c.keys)
	return out
}

// Get returns the tabyl for the given depth value.
func (c *Collection) Get(key Cell) (*Tabyl, bool) {
	t, ok := c.entries[key.key()]
	return t, ok
}

// All iterates the collection in emission order.
func (c *Collection) All() iter.Seq2[Cell, *Tabyl] {
	return func(yield func(Cell, *Tabyl) bool) {
		for _, k := range c.keys {
			if !yield(k, c.entries[k.key()]) {
				return
			}
		}
	}
}

// Adorn applies the chain to every entry and returns a new collection.
// The first error stops the walk.
func (c *Collection) Adorn(adorners ...Adorner) (*Collection, error) {
	out := &Collection{
		Variable: c.Variable,
		keys:     make([]Cell, len(c.keys)),
		entries:  make(map[string]*Tabyl, len(c.entries)),
	}
	copy(out.keys, c.keys)
	for _, k := range c.keys {
		adorned, err := Chain(c.entries[k.key()], adorners...)
		if err != nil {
			return nil, err
		}
		out.entries[k.key()] = adorned
	}
	return out, nil
}
