// Package syntax parses pattern text into a pattern tree.
//
// The accepted syntax, lowest to highest precedence:
//
//	Alternation   := Concatenation ('|' Concatenation)*
//	Concatenation := Repetition+
//	Repetition    := Atomic ('*' | '+' | '?')*
//	Atomic        := ordinary-char | '.' | '^' | '$'
//	               | '(' Alternation ')'
//	               | '[' class-chars ']'
//
// There is no escape syntax: a metacharacter can only be matched literally as
// a member of a character class, as in "[.]". Class members are listed
// explicitly; there are no ranges and no negation.
package syntax

import (
	"strings"

	"github.com/coregx/regular/pattern"
)

// Metacharacters lists every byte with syntactic meaning outside a class.
const Metacharacters = ".^$*?+|()[{"

// maxDepth bounds group nesting so that hostile patterns cannot exhaust the stack.
const maxDepth = 1000

// IsOrdinary reports whether c matches only itself in a pattern.
func IsOrdinary(c byte) bool {
	return strings.IndexByte(Metacharacters, c) < 0
}

// Parse parses text into a pattern tree.
//
// Parsing is all-or-nothing: on failure the returned node is nil and the
// error is a *Error wrapping ErrInvalidPattern.
func Parse(text string) (pattern.Node, error) {
	p := &parser{whole: text, src: text}
	return p.parseAll()
}

// MustParse is like Parse but panics if the pattern is invalid.
func MustParse(text string) pattern.Node {
	n, err := Parse(text)
	if err != nil {
		panic("syntax: Parse(`" + text + "`): " + err.Error())
	}
	return n
}

// parser consumes src, a slice of whole starting at offset. Groups are
// parsed by a child parser over the group's inner text.
type parser struct {
	whole  string
	src    string
	offset int
	pos    int
	depth  int
}

func (p *parser) errorf(code ErrorCode, pos int) error {
	return &Error{Code: code, Pattern: p.whole, Pos: p.offset + pos}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

// parseAll parses src as a complete Alternation and rejects leftovers.
func (p *parser) parseAll() (pattern.Node, error) {
	n, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		if p.peek() == ')' {
			return nil, p.errorf(ErrUnexpectedParen, p.pos)
		}
		return nil, p.errorf(ErrTrailingCharacters, p.pos)
	}
	return n, nil
}

func (p *parser) parseAlternation() (pattern.Node, error) {
	left, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	for !p.eof() && p.peek() == '|' {
		p.pos++
		right, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		left = pattern.NewAlternation(left, right)
	}
	return left, nil
}

func (p *parser) parseConcatenation() (pattern.Node, error) {
	left, err := p.parseRepetition()
	if err != nil {
		return nil, err
	}
	for !p.eof() && p.peek() != '|' && p.peek() != ')' {
		right, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		left = pattern.NewConcat(left, right)
	}
	return left, nil
}

func (p *parser) parseRepetition() (pattern.Node, error) {
	n, err := p.parseAtomic()
	if err != nil {
		return nil, err
	}
	for !p.eof() {
		switch p.peek() {
		case '*':
			n = pattern.NewStar(n)
		case '+':
			n = pattern.NewPlus(n)
		case '?':
			n = pattern.NewOptional(n)
		default:
			return n, nil
		}
		p.pos++
	}
	return n, nil
}

func (p *parser) parseAtomic() (pattern.Node, error) {
	if p.eof() {
		return nil, p.errorf(ErrMissingAtom, p.pos)
	}

	c := p.peek()
	if IsOrdinary(c) {
		p.pos++
		return pattern.NewLiteral(c), nil
	}

	switch c {
	case '.':
		p.pos++
		return pattern.NewWildcard(), nil
	case '^':
		p.pos++
		return pattern.NewStartAnchor(), nil
	case '$':
		p.pos++
		return pattern.NewEndAnchor(), nil
	case '(':
		return p.parseGroup()
	case '[':
		return p.parseClass()
	case '*', '+', '?':
		return nil, p.errorf(ErrMissingRepeatArgument, p.pos)
	case ')':
		return nil, p.errorf(ErrUnexpectedParen, p.pos)
	case '|':
		return nil, p.errorf(ErrMissingAtom, p.pos)
	default:
		return nil, p.errorf(ErrUnsupportedChar, p.pos)
	}
}

// parseGroup parses "(...)" with p.pos at the opening parenthesis.
func (p *parser) parseGroup() (pattern.Node, error) {
	open := p.pos
	end, ok := matchingParen(p.src, open)
	if !ok {
		return nil, p.errorf(ErrMissingParen, open)
	}
	if p.depth+1 > maxDepth {
		return nil, p.errorf(ErrNestingDepth, open)
	}

	inner := &parser{
		whole:  p.whole,
		src:    p.src[open+1 : end],
		offset: p.offset + open + 1,
		depth:  p.depth + 1,
	}
	n, err := inner.parseAll()
	if err != nil {
		return nil, err
	}
	p.pos = end + 1
	return n, nil
}

// parseClass parses "[...]" with p.pos at the opening bracket.
func (p *parser) parseClass() (pattern.Node, error) {
	open := p.pos
	end := strings.IndexByte(p.src[open+1:], ']')
	if end < 0 {
		return nil, p.errorf(ErrMissingBracket, open)
	}
	members := p.src[open+1 : open+1+end]
	p.pos = open + 1 + end + 1
	return pattern.NewCharClass(members), nil
}

// matchingParen returns the index of the ')' closing the '(' at open.
// Depth is counted across nested groups; bytes inside a class are members,
// so parentheses there do not affect the depth.
func matchingParen(s string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		case '[':
			end := strings.IndexByte(s[i+1:], ']')
			if end < 0 {
				return 0, false
			}
			i += end + 1
		}
	}
	return 0, false
}
