package pattern

import "testing"

func TestLeafLocate(t *testing.T) {
	tests := []struct {
		name  string
		node  func() Node
		input string
		want  []Interval
	}{
		{"literal hits", func() Node { return NewLiteral('a') }, "abca", []Interval{{0, 1}, {3, 4}}},
		{"literal miss", func() Node { return NewLiteral('a') }, "xyz", nil},
		{"literal empty input", func() Node { return NewLiteral('a') }, "", nil},
		{"wildcard printable", func() Node { return NewWildcard() }, "a Z", []Interval{{0, 1}, {1, 2}, {2, 3}}},
		{"wildcard outside range", func() Node { return NewWildcard() }, "a\t~", []Interval{{0, 1}}},
		{"wildcard upper bound", func() Node { return NewWildcard() }, "z{", []Interval{{0, 1}}},
		{"start anchor", func() Node { return NewStartAnchor() }, "abc", []Interval{{0, 0}}},
		{"start anchor empty input", func() Node { return NewStartAnchor() }, "", []Interval{{0, 0}}},
		{"end anchor", func() Node { return NewEndAnchor() }, "abc", []Interval{{3, 3}}},
		{"end anchor empty input", func() Node { return NewEndAnchor() }, "", []Interval{{0, 0}}},
		{"class", func() Node { return NewCharClass("abc") }, "dbca", []Interval{{1, 2}, {2, 3}, {3, 4}}},
		{"class miss", func() Node { return NewCharClass("abc") }, "d", nil},
		{"class metachars are members", func() Node { return NewCharClass("*.") }, "a.*", []Interval{{1, 2}, {2, 3}}},
		{"empty class", func() Node { return NewCharClass("") }, "abc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertIntervals(t, tt.node(), tt.input, tt.want)
		})
	}
}

func TestCharClass_Members(t *testing.T) {
	c := NewCharClass("abca")
	if c.Members() != "abc" {
		t.Errorf("Members() = %q, want %q", c.Members(), "abc")
	}
	if !c.Contains('c') || c.Contains('d') {
		t.Error("Contains() disagrees with member set")
	}
	if c.String() != "[abc]" {
		t.Errorf("String() = %q, want %q", c.String(), "[abc]")
	}
}

func TestLiteral_Char(t *testing.T) {
	if got := NewLiteral('q').Char(); got != 'q' {
		t.Errorf("Char() = %q, want %q", got, 'q')
	}
}
