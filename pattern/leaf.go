package pattern

import "strings"

// Bounds of the byte range a Wildcard accepts.
const (
	WildcardMin byte = ' '
	WildcardMax byte = 'z'
)

// Literal matches a single ordinary byte.
type Literal struct {
	base
	ch byte
}

// NewLiteral returns a node matching exactly ch.
func NewLiteral(ch byte) *Literal {
	return &Literal{ch: ch}
}

// Char returns the byte this node matches.
func (l *Literal) Char() byte { return l.ch }

// Locate implements Node.
func (l *Literal) Locate(input string) {
	t := l.reset(input)
	for i := 0; i < len(input); i++ {
		if input[i] == l.ch {
			t.Set(i, i+1)
		}
	}
}

// Kind implements Node.
func (l *Literal) Kind() Kind { return KindLiteral }

// Children implements Node.
func (l *Literal) Children() []Node { return nil }

// Destroy implements Node.
func (l *Literal) Destroy() { l.release() }

// String implements Node.
func (l *Literal) String() string { return string(l.ch) }

// Wildcard matches any single byte in [WildcardMin, WildcardMax].
type Wildcard struct {
	base
}

// NewWildcard returns a "." node.
func NewWildcard() *Wildcard {
	return &Wildcard{}
}

// Locate implements Node.
func (w *Wildcard) Locate(input string) {
	t := w.reset(input)
	for i := 0; i < len(input); i++ {
		if c := input[i]; c >= WildcardMin && c <= WildcardMax {
			t.Set(i, i+1)
		}
	}
}

// Kind implements Node.
func (w *Wildcard) Kind() Kind { return KindWildcard }

// Children implements Node.
func (w *Wildcard) Children() []Node { return nil }

// Destroy implements Node.
func (w *Wildcard) Destroy() { w.release() }

// String implements Node.
func (w *Wildcard) String() string { return "." }

// StartAnchor matches the empty string at position 0 only.
type StartAnchor struct {
	base
}

// NewStartAnchor returns a "^" node.
func NewStartAnchor() *StartAnchor {
	return &StartAnchor{}
}

// Locate implements Node.
func (a *StartAnchor) Locate(input string) {
	a.reset(input).Set(0, 0)
}

// Kind implements Node.
func (a *StartAnchor) Kind() Kind { return KindStartAnchor }

// Children implements Node.
func (a *StartAnchor) Children() []Node { return nil }

// Destroy implements Node.
func (a *StartAnchor) Destroy() { a.release() }

// String implements Node.
func (a *StartAnchor) String() string { return "^" }

// EndAnchor matches the empty string at the end of the input only.
type EndAnchor struct {
	base
}

// NewEndAnchor returns a "$" node.
func NewEndAnchor() *EndAnchor {
	return &EndAnchor{}
}

// Locate implements Node.
func (a *EndAnchor) Locate(input string) {
	n := len(input)
	a.reset(input).Set(n, n)
}

// Kind implements Node.
func (a *EndAnchor) Kind() Kind { return KindEndAnchor }

// Children implements Node.
func (a *EndAnchor) Children() []Node { return nil }

// Destroy implements Node.
func (a *EndAnchor) Destroy() { a.release() }

// String implements Node.
func (a *EndAnchor) String() string { return "$" }

// CharClass matches any single byte of a member set.
// There are no ranges and no negation: every member is listed explicitly.
type CharClass struct {
	base
	set     [256]bool
	members string // distinct members in first-seen order
}

// NewCharClass returns a node matching any byte of members.
// Duplicates are ignored; an empty member list matches nothing.
func NewCharClass(members string) *CharClass {
	c := &CharClass{}
	var sb strings.Builder
	for i := 0; i < len(members); i++ {
		ch := members[i]
		if !c.set[ch] {
			c.set[ch] = true
			sb.WriteByte(ch)
		}
	}
	c.members = sb.String()
	return c
}

// Contains reports whether ch is a member.
func (c *CharClass) Contains(ch byte) bool { return c.set[ch] }

// Members returns the distinct members in the order they were written.
func (c *CharClass) Members() string { return c.members }

// Locate implements Node.
func (c *CharClass) Locate(input string) {
	t := c.reset(input)
	for i := 0; i < len(input); i++ {
		if c.set[input[i]] {
			t.Set(i, i+1)
		}
	}
}

// Kind implements Node.
func (c *CharClass) Kind() Kind { return KindCharClass }

// Children implements Node.
func (c *CharClass) Children() []Node { return nil }

// Destroy implements Node.
func (c *CharClass) Destroy() { c.release() }

// String implements Node.
func (c *CharClass) String() string { return "[" + c.members + "]" }
