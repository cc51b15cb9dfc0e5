// Package literal extracts literal byte sequences that every match of a
// pattern tree must contain.
//
// The primary use case is line rejection: if each interval a pattern can match
// contains one of a small set of literals, a line containing none of them
// cannot match anywhere and the interval tables need not be computed for it.
//
// Key concepts:
//   - A Literal is a concrete byte sequence
//   - A Seq is a set of alternative literals (e.g., from alternations like foo|bar)
//   - Minimize drops literals made redundant by a shorter literal they contain
package literal

import (
	"bytes"
	"sort"
	"strings"
)

// Literal represents a literal byte sequence extracted from a pattern tree.
// The Complete flag indicates whether this literal is an entire match of the
// subpattern it came from (true) or just a substring every match contains (false).
//
// Example:
//   - Pattern hello → Literal{[]byte("hello"), true}
//   - Pattern (ab)+ → Literal{[]byte("ab"), false}
type Literal struct {
	// Bytes contains the actual literal byte sequence.
	Bytes []byte

	// Complete indicates whether this literal represents an entire match.
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq represents a set of alternative literals.
//
// A nil *Seq and an empty *Seq mean different things to the extractor: nil
// means "no literal is required", empty means "nothing can match at all".
// The read-only methods accept a nil receiver.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("bar"), true),
//	)
//	fmt.Printf("Sequence has %d literals\n", seq.Len()) // Output: Sequence has 2 literals
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// Clone returns a deep copy of the sequence.
// All literals and their byte slices are duplicated.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}

	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		b := make([]byte, len(lit.Bytes))
		copy(b, lit.Bytes)
		cloned[i] = Literal{Bytes: b, Complete: lit.Complete}
	}

	return &Seq{literals: cloned}
}

// MinLen returns the length of the shortest literal, or 0 for an empty sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	m := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		if lit.Len() < m {
			m = lit.Len()
		}
	}
	return m
}

// HasEmpty reports whether some literal is the empty string.
func (s *Seq) HasEmpty() bool {
	for i := 0; i < s.Len(); i++ {
		if s.literals[i].Len() == 0 {
			return true
		}
	}
	return false
}

// MakeInexact clears the Complete flag of every literal.
func (s *Seq) MakeInexact() {
	if s == nil {
		return
	}
	for i := range s.literals {
		s.literals[i].Complete = false
	}
}

// Union returns a new sequence with the literals of s followed by those of
// other, skipping byte-identical duplicates.
func (s *Seq) Union(other *Seq) *Seq {
	out := make([]Literal, 0, s.Len()+other.Len())
	for _, src := range []*Seq{s, other} {
		for i := 0; i < src.Len(); i++ {
			lit := src.literals[i]
			if !containsBytes(out, lit.Bytes) {
				out = append(out, lit)
			}
		}
	}
	return &Seq{literals: out}
}

// Cross returns every concatenation of a literal of s followed by a literal
// of other. A result is complete only if both halves are.
func (s *Seq) Cross(other *Seq) *Seq {
	out := make([]Literal, 0, s.Len()*other.Len())
	for i := 0; i < s.Len(); i++ {
		left := s.literals[i]
		for j := 0; j < other.Len(); j++ {
			right := other.literals[j]
			b := make([]byte, 0, left.Len()+right.Len())
			b = append(b, left.Bytes...)
			b = append(b, right.Bytes...)
			if !containsBytes(out, b) {
				out = append(out, Literal{Bytes: b, Complete: left.Complete && right.Complete})
			}
		}
	}
	return &Seq{literals: out}
}

// Minimize removes redundant literals from the sequence.
//
// For containment filtering, a literal L is redundant if another literal S is
// a substring of L: any text containing L also contains S. For example, in
// ["oo", "foobar"], "oo" makes "foobar" redundant.
//
// Time complexity: O(n² * m) where n = number of literals, m = average literal length
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("foobar"), true),
//	)
//	seq.Minimize()
//	fmt.Println(seq.Len()) // Output: 1 (only "foo" remains)
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	// Shortest first, so every possible container comes after its substring.
	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, current := range s.literals {
		redundant := false
		for _, k := range kept {
			if bytes.Contains(current.Bytes, k.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, current)
		}
	}

	s.literals = kept
}

// Bytes returns the literal byte slices in order.
func (s *Seq) Bytes() [][]byte {
	out := make([][]byte, s.Len())
	for i := range out {
		out[i] = s.literals[i].Bytes
	}
	return out
}

// String returns the literals as a quoted, comma-separated list.
func (s *Seq) String() string {
	if s == nil {
		return "<none>"
	}
	parts := make([]string, len(s.literals))
	for i, lit := range s.literals {
		parts[i] = "\"" + string(lit.Bytes) + "\""
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func containsBytes(lits []Literal, b []byte) bool {
	for _, lit := range lits {
		if bytes.Equal(lit.Bytes, b) {
			return true
		}
	}
	return false
}
