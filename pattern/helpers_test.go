package pattern

import (
	"reflect"
	"testing"
)

// lits builds a left-associative concatenation of literals.
func lits(s string) Node {
	var n Node = NewLiteral(s[0])
	for i := 1; i < len(s); i++ {
		n = NewConcat(n, NewLiteral(s[i]))
	}
	return n
}

// assertIntervals locates input on n and compares every matched interval.
func assertIntervals(t *testing.T, n Node, input string, want []Interval) {
	t.Helper()
	n.Locate(input)
	got := n.Table().Intervals()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s on %q: intervals = %v, want %v", n, input, got, want)
	}
}
