package tabyl

import "strconv"

// NALabel is the display string for a missing value. It is also the name of
// the column that collects missing column-variable observations in a 2-way
// tabyl.
const NALabel = "<NA>"

// Kind is the logical type of a [Cell]. The zero Kind is KindMissing, so the
// zero Cell is a missing value.
type Kind int

const (
	KindMissing Kind = iota
	KindNumber
	KindString
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "missing"
	}
}

// Cell is a single typed value in a [Table]. Cells are immutable; the zero
// value is a missing cell.
type Cell struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{kind: KindNumber, num: v} }

// String returns a string cell.
func String(s string) Cell { return Cell{kind: KindString, str: s} }

// Bool returns a boolean cell.
func Bool(b bool) Cell { return Cell{kind: KindBool, b: b} }

// NA returns a missing cell.
func NA() Cell { return Cell{} }

// Kind returns the cell's logical type.
func (c Cell) Kind() Kind { return c.kind }

// IsNA reports whether the cell is missing.
func (c Cell) IsNA() bool { return c.kind == KindMissing }

// Float returns the numeric value. It is 0 for non-numeric cells.
func (c Cell) Float() float64 { return c.num }

// Str returns the string value. It is "" for non-string cells.
func (c Cell) Str() string { return c.str }

// Boolean returns the boolean value. It is false for non-boolean cells.
func (c Cell) Boolean() bool { return c.b }

// Display returns the cell's rendering string: the shortest decimal form for
// numbers, "true"/"false" for booleans, the string itself for strings, and
// [NALabel] for missing cells. Display strings are also used as grouping keys
// and generated column names by the builder.
func (c Cell) Display() string {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case KindString:
		return c.str
	case KindBool:
		return strconv.FormatBool(c.b)
	default:
		return NALabel
	}
}

// key returns the grouping key for the cell. Unlike Display, it is
// collision-free: a literal "<NA>" string value and a missing cell key to
// different groups.
func (c Cell) key() string {
	switch c.kind {
	case KindNumber:
		return "n:" + strconv.FormatFloat(c.num, 'g', -1, 64)
	case KindString:
		return "s:" + c.str
	case KindBool:
		return "b:" + strconv.FormatBool(c.b)
	default:
		return "na"
	}
}

// less orders cells for row/column emission: numbers ascend, strings sort
// lexically, false precedes true, and missing sorts after everything.
// Mixed-kind comparisons fall back to kind order.
func (c Cell) less(o Cell) bool {
	if c.kind != o.kind {
		if c.kind == KindMissing {
			return false
		}
		if o.kind == KindMissing {
			return true
		}
		return c.kind < o.kind
	}
	switch c.kind {
	case KindNumber:
		return c.num < o.num
	case KindString:
		return c.str < o.str
	case KindBool:
		return !c.b && o.b
	default:
		return false
	}
}
