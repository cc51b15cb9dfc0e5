package pattern

import "fmt"

// Interval is a half-open range [Begin, End) of the current input.
// Begin == End denotes a zero-width match at position Begin.
type Interval struct {
	Begin int
	End   int
}

// Len returns the number of bytes covered by the interval.
func (iv Interval) Len() int {
	return iv.End - iv.Begin
}

// IsEmpty reports whether the interval is zero-width.
func (iv Interval) IsEmpty() bool {
	return iv.Begin == iv.End
}

// String returns the interval in "[b, e)" notation.
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Begin, iv.End)
}

// Table is an (n+1)×(n+1) boolean interval table for an input of length n.
// Entry [b][e] is true iff the substring [b, e) is matched.
//
// All accessors are bounds-checked: an index outside [0, n] is a caller
// contract violation and panics. Entries with b > e exist in storage but are
// never set, so Get reports false for them.
type Table struct {
	n     int
	cells []bool
}

// NewTable allocates an all-false table for an input of length n.
func NewTable(n int) *Table {
	if n < 0 {
		panic(fmt.Sprintf("pattern: negative input length %d", n))
	}
	dim := n + 1
	return &Table{
		n:     n,
		cells: make([]bool, dim*dim),
	}
}

// Len returns the input length n the table was sized for.
func (t *Table) Len() int {
	return t.n
}

// Size returns the table dimension, n+1.
func (t *Table) Size() int {
	return t.n + 1
}

// Get reports whether [begin, end) is marked.
func (t *Table) Get(begin, end int) bool {
	t.check(begin, end)
	return t.cells[begin*(t.n+1)+end]
}

// Set marks [begin, end) as matched. Panics if begin > end.
func (t *Table) Set(begin, end int) {
	t.check(begin, end)
	if begin > end {
		panic(fmt.Sprintf("pattern: inverted interval [%d, %d)", begin, end))
	}
	t.cells[begin*(t.n+1)+end] = true
}

// Equal reports whether both tables have the same size and contents.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.n != other.n {
		return false
	}
	for i, v := range t.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Count returns the number of marked intervals.
func (t *Table) Count() int {
	count := 0
	for _, v := range t.cells {
		if v {
			count++
		}
	}
	return count
}

// Intervals returns every marked interval ordered by Begin, then End.
func (t *Table) Intervals() []Interval {
	var out []Interval
	dim := t.n + 1
	for b := 0; b < dim; b++ {
		row := t.cells[b*dim : (b+1)*dim]
		for e := b; e < dim; e++ {
			if row[e] {
				out = append(out, Interval{Begin: b, End: e})
			}
		}
	}
	return out
}

func (t *Table) check(begin, end int) {
	if begin < 0 || begin > t.n || end < 0 || end > t.n {
		panic(fmt.Sprintf("pattern: interval [%d, %d) out of range for input length %d", begin, end, t.n))
	}
}
