// Package pattern implements the pattern tree and its interval-composition
// matching engine.
//
// Every node owns an interval table for the most recent input. Locate
// reallocates that table sized to the input and fills it bottom-up: leaf nodes
// mark the single-byte or zero-width intervals they match, and composite nodes
// derive their tables from their children's tables, in the manner of a CYK
// chart parser. After Locate, Matches(b, e) answers whether the substring
// [b, e) of that input is matched by the node.
//
// A tree is built once (usually by the syntax package) and may be reused for
// any number of inputs. Composite nodes exclusively own their children. A tree
// is not safe for concurrent use: build one tree per goroutine.
package pattern

import "fmt"

// Kind identifies a node variant.
type Kind uint8

// Node kinds
const (
	KindLiteral Kind = iota
	KindWildcard
	KindStartAnchor
	KindEndAnchor
	KindCharClass
	KindConcat
	KindAlternation
	KindOptional
	KindStar
	KindPlus
)

var kindNames = [...]string{
	KindLiteral:     "Literal",
	KindWildcard:    "Wildcard",
	KindStartAnchor: "StartAnchor",
	KindEndAnchor:   "EndAnchor",
	KindCharClass:   "CharClass",
	KindConcat:      "Concat",
	KindAlternation: "Alternation",
	KindOptional:    "Optional",
	KindStar:        "Star",
	KindPlus:        "Plus",
}

// String returns the variant name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Node is a pattern tree node.
type Node interface {
	// Locate discards the previous table, allocates a fresh one sized for
	// input and marks every interval of input this node matches. Composite
	// nodes locate their children first.
	Locate(input string)

	// Matches reports whether [begin, end) of the most recently located input
	// is matched. Panics if called before Locate, after Destroy, or with an
	// index outside [0, Len()].
	Matches(begin, end int) bool

	// Len returns the length of the most recently located input.
	Len() int

	// Table returns the interval table of the last Locate, or nil.
	Table() *Table

	// Kind returns the node variant.
	Kind() Kind

	// Children returns the owned subpatterns in left-to-right order.
	Children() []Node

	// Destroy releases the node's table and recursively destroys its children.
	Destroy()

	// String returns the pattern syntax of the subtree.
	String() string
}

// base holds the interval table shared by all variants.
type base struct {
	table *Table
}

func (b *base) reset(input string) *Table {
	b.table = NewTable(len(input))
	return b.table
}

// Matches implements Node.
func (b *base) Matches(begin, end int) bool {
	if b.table == nil {
		panic("pattern: Matches called without a located input")
	}
	return b.table.Get(begin, end)
}

// Len implements Node.
func (b *base) Len() int {
	if b.table == nil {
		return 0
	}
	return b.table.Len()
}

// Table implements Node.
func (b *base) Table() *Table {
	return b.table
}

func (b *base) release() {
	b.table = nil
}

// precedence levels used by String to decide where groups are needed.
const (
	precAlternation = iota
	precConcat
	precRepetition
	precAtom
)

func precedence(n Node) int {
	switch n.Kind() {
	case KindAlternation:
		return precAlternation
	case KindConcat:
		return precConcat
	case KindOptional, KindStar, KindPlus:
		return precRepetition
	default:
		return precAtom
	}
}

// group renders n, wrapping it in parentheses when it binds looser than min.
func group(n Node, minPrec int) string {
	if precedence(n) < minPrec {
		return "(" + n.String() + ")"
	}
	return n.String()
}
