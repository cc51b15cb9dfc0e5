package pattern

import "github.com/coregx/regular/internal/sparse"

// Star matches zero or more consecutive repetitions of its child.
type Star struct {
	base
	child Node
	work  *sparse.SparseSet
}

// NewStar returns a "child*" node. The node takes ownership of child.
func NewStar(child Node) *Star {
	return &Star{child: child}
}

// Child returns the repeated subpattern.
func (s *Star) Child() Node { return s.child }

// Locate implements Node.
func (s *Star) Locate(input string) {
	s.child.Locate(input)
	s.work = closure(s.reset(input), s.child, s.work, true)
}

// Kind implements Node.
func (s *Star) Kind() Kind { return KindStar }

// Children implements Node.
func (s *Star) Children() []Node { return []Node{s.child} }

// Destroy implements Node.
func (s *Star) Destroy() {
	s.child.Destroy()
	s.work = nil
	s.release()
}

// String implements Node.
func (s *Star) String() string {
	return group(s.child, precRepetition) + "*"
}

// Plus matches one or more consecutive repetitions of its child.
type Plus struct {
	base
	child Node
	work  *sparse.SparseSet
}

// NewPlus returns a "child+" node. The node takes ownership of child.
func NewPlus(child Node) *Plus {
	return &Plus{child: child}
}

// Child returns the repeated subpattern.
func (p *Plus) Child() Node { return p.child }

// Locate implements Node.
func (p *Plus) Locate(input string) {
	p.child.Locate(input)
	p.work = closure(p.reset(input), p.child, p.work, false)
}

// Kind implements Node.
func (p *Plus) Kind() Kind { return KindPlus }

// Children implements Node.
func (p *Plus) Children() []Node { return []Node{p.child} }

// Destroy implements Node.
func (p *Plus) Destroy() {
	p.child.Destroy()
	p.work = nil
	p.release()
}

// String implements Node.
func (p *Plus) String() string {
	return group(p.child, precRepetition) + "+"
}

// closure fills t with the transitive closure of child's match relation,
// treating positions 0..n as graph vertices and every child match [x, y) as
// an edge x -> y. For each start b it marks every position reachable from b in
// one or more hops; with reflexive set it also marks [b, b).
//
// work is reused across calls when non-nil; the (possibly new) set is
// returned so the caller can keep it for the next input.
func closure(t *Table, child Node, work *sparse.SparseSet, reflexive bool) *sparse.SparseSet {
	n := t.Len()
	if work == nil {
		work = sparse.NewSparseSet(n + 1)
	} else {
		work.Resize(n + 1)
	}

	for b := 0; b <= n; b++ {
		work.Clear()
		for e := b; e <= n; e++ {
			if child.Matches(b, e) {
				work.Insert(e)
			}
		}
		// Positions appended here are picked up by the same loop.
		for i := 0; i < work.Len(); i++ {
			x := work.At(i)
			for y := x; y <= n; y++ {
				if child.Matches(x, y) {
					work.Insert(y)
				}
			}
		}

		if reflexive {
			t.Set(b, b)
		}
		for i := 0; i < work.Len(); i++ {
			t.Set(b, work.At(i))
		}
	}
	return work
}
