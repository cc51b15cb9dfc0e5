package pattern

// Concat matches any string splittable into a part matched by Left followed
// by a part matched by Right.
type Concat struct {
	base
	left, right Node
}

// NewConcat returns a node matching left followed by right.
// The node takes ownership of both children.
func NewConcat(left, right Node) *Concat {
	return &Concat{left: left, right: right}
}

// Left returns the first subpattern.
func (c *Concat) Left() Node { return c.left }

// Right returns the second subpattern.
func (c *Concat) Right() Node { return c.right }

// Locate implements Node.
//
// table[b][e] is set iff some split k in [b, e] has left[b][k] and right[k][e].
// Iterating the splits reachable from b keeps the work proportional to the
// number of left matches, O(n³) in the worst case.
func (c *Concat) Locate(input string) {
	c.left.Locate(input)
	c.right.Locate(input)

	t := c.reset(input)
	n := len(input)
	for b := 0; b <= n; b++ {
		for k := b; k <= n; k++ {
			if !c.left.Matches(b, k) {
				continue
			}
			for e := k; e <= n; e++ {
				if c.right.Matches(k, e) {
					t.Set(b, e)
				}
			}
		}
	}
}

// Kind implements Node.
func (c *Concat) Kind() Kind { return KindConcat }

// Children implements Node.
func (c *Concat) Children() []Node { return []Node{c.left, c.right} }

// Destroy implements Node.
func (c *Concat) Destroy() {
	c.left.Destroy()
	c.right.Destroy()
	c.release()
}

// String implements Node.
func (c *Concat) String() string {
	return group(c.left, precConcat) + group(c.right, precConcat)
}

// Alternation matches whatever either child matches.
type Alternation struct {
	base
	left, right Node
}

// NewAlternation returns a node matching left or right.
// The node takes ownership of both children.
func NewAlternation(left, right Node) *Alternation {
	return &Alternation{left: left, right: right}
}

// Left returns the first alternative.
func (a *Alternation) Left() Node { return a.left }

// Right returns the second alternative.
func (a *Alternation) Right() Node { return a.right }

// Locate implements Node. The table is the union of both children's tables.
func (a *Alternation) Locate(input string) {
	a.left.Locate(input)
	a.right.Locate(input)

	t := a.reset(input)
	n := len(input)
	for b := 0; b <= n; b++ {
		for e := b; e <= n; e++ {
			if a.left.Matches(b, e) || a.right.Matches(b, e) {
				t.Set(b, e)
			}
		}
	}
}

// Kind implements Node.
func (a *Alternation) Kind() Kind { return KindAlternation }

// Children implements Node.
func (a *Alternation) Children() []Node { return []Node{a.left, a.right} }

// Destroy implements Node.
func (a *Alternation) Destroy() {
	a.left.Destroy()
	a.right.Destroy()
	a.release()
}

// String implements Node.
func (a *Alternation) String() string {
	return a.left.String() + "|" + a.right.String()
}

// Optional matches its child's matches or the empty string.
type Optional struct {
	base
	child Node
}

// NewOptional returns a "child?" node. The node takes ownership of child.
func NewOptional(child Node) *Optional {
	return &Optional{child: child}
}

// Child returns the optional subpattern.
func (o *Optional) Child() Node { return o.child }

// Locate implements Node.
func (o *Optional) Locate(input string) {
	o.child.Locate(input)

	t := o.reset(input)
	n := len(input)
	for b := 0; b <= n; b++ {
		t.Set(b, b)
		for e := b; e <= n; e++ {
			if o.child.Matches(b, e) {
				t.Set(b, e)
			}
		}
	}
}

// Kind implements Node.
func (o *Optional) Kind() Kind { return KindOptional }

// Children implements Node.
func (o *Optional) Children() []Node { return []Node{o.child} }

// Destroy implements Node.
func (o *Optional) Destroy() {
	o.child.Destroy()
	o.release()
}

// String implements Node.
func (o *Optional) String() string {
	return group(o.child, precRepetition) + "?"
}
