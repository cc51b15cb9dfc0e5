package literal

import "github.com/coregx/regular/pattern"

// ExtractorConfig bounds the size of the sets the extractor builds.
type ExtractorConfig struct {
	// MaxLiterals is the largest set kept; larger sets are dropped.
	MaxLiterals int

	// MaxLiteralLen is the longest literal built by concatenation.
	MaxLiteralLen int

	// MaxClassSize is the largest character class expanded into literals.
	MaxClassSize int
}

// DefaultConfig returns the extractor limits used by the matcher.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  16,
	}
}

// Extractor computes required literals for pattern trees.
type Extractor struct {
	config ExtractorConfig
}

// New creates an extractor with the given limits.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// facts describes one subtree.
//
// exact is a superset of the strings the subtree can match (nil when unknown
// or too large). required is a set of literals every match contains: nil when
// there is none, empty when the subtree can never match.
type facts struct {
	exact    *Seq
	required *Seq
}

// ExtractRequired returns a minimized set of literals such that every
// interval root can match, including zero-width ones, contains at least one
// of them.
//
// A nil result means no such set exists within the configured limits. An
// empty, non-nil result means root matches nothing on any input.
func (e *Extractor) ExtractRequired(root pattern.Node) *Seq {
	req := e.analyze(root).required
	if req == nil {
		return nil
	}
	req = req.Clone()
	req.Minimize()
	return req
}

func (e *Extractor) analyze(n pattern.Node) facts {
	switch n := n.(type) {
	case *pattern.Literal:
		s := NewSeq(NewLiteral([]byte{n.Char()}, true))
		return facts{exact: s, required: s}

	case *pattern.CharClass:
		members := n.Members()
		if len(members) > e.config.MaxClassSize {
			return facts{}
		}
		lits := make([]Literal, len(members))
		for i := 0; i < len(members); i++ {
			lits[i] = NewLiteral([]byte{members[i]}, true)
		}
		s := NewSeq(lits...)
		return facts{exact: s, required: s}

	case *pattern.StartAnchor, *pattern.EndAnchor:
		return facts{exact: NewSeq(NewLiteral(nil, true))}

	case *pattern.Concat:
		return e.concat(e.analyze(n.Left()), e.analyze(n.Right()))

	case *pattern.Alternation:
		return e.alternate(e.analyze(n.Left()), e.analyze(n.Right()))

	case *pattern.Optional:
		child := e.analyze(n.Child())
		if child.exact == nil {
			return facts{}
		}
		return facts{exact: e.limit(child.exact.Union(NewSeq(NewLiteral(nil, true))))}

	case *pattern.Plus:
		req := e.analyze(n.Child()).required.Clone()
		req.MakeInexact()
		return facts{required: req}

	default:
		// Wildcard and Star impose nothing.
		return facts{}
	}
}

func (e *Extractor) concat(left, right facts) facts {
	if isNever(left.required) || isNever(right.required) {
		never := NewSeq()
		return facts{exact: never, required: never}
	}

	var exact *Seq
	if left.exact != nil && right.exact != nil && left.exact.Len()*right.exact.Len() <= e.config.MaxLiterals {
		exact = e.limit(left.exact.Cross(right.exact))
	}

	var fromExact *Seq
	if exact != nil && !exact.HasEmpty() {
		fromExact = exact
	}
	return facts{
		exact:    exact,
		required: best(fromExact, inexact(left.required), inexact(right.required)),
	}
}

func (e *Extractor) alternate(left, right facts) facts {
	var out facts
	if left.exact != nil && right.exact != nil {
		out.exact = e.limit(left.exact.Union(right.exact))
	}
	if left.required != nil && right.required != nil {
		out.required = e.limit(left.required.Union(right.required))
	}
	return out
}

// limit drops sets that exceed the configured bounds.
func (e *Extractor) limit(s *Seq) *Seq {
	if s == nil || s.Len() > e.config.MaxLiterals {
		return nil
	}
	for i := 0; i < s.Len(); i++ {
		if s.Get(i).Len() > e.config.MaxLiteralLen {
			return nil
		}
	}
	return s
}

// best picks the most selective candidate: an impossible set wins, then the
// set with the longest shortest literal, then the smaller set.
func best(candidates ...*Seq) *Seq {
	var pick *Seq
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if c.IsEmpty() {
			return c
		}
		if pick == nil ||
			c.MinLen() > pick.MinLen() ||
			(c.MinLen() == pick.MinLen() && c.Len() < pick.Len()) {
			pick = c
		}
	}
	return pick
}

func inexact(s *Seq) *Seq {
	if s == nil {
		return nil
	}
	c := s.Clone()
	c.MakeInexact()
	return c
}

func isNever(s *Seq) bool {
	return s != nil && s.IsEmpty()
}
