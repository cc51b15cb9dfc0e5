// Package prefilter rejects input lines that cannot contain a match.
//
// A prefilter is built from the required literals of a pattern tree (see the
// literal package). If a line contains none of them, no interval of the line
// can match and the caller may skip computing interval tables for it.
//
// Strategy selection by literal set:
//   - Empty set → never matches (the pattern matches nothing)
//   - Single byte → memchr-style byte scan
//   - Single substring → substring search
//   - Several literals → Aho-Corasick automaton
package prefilter

import (
	"github.com/coregx/regular/literal"
)

// Prefilter decides whether a line may contain a match.
type Prefilter interface {
	// MayMatch returns false only if line certainly has no match.
	MayMatch(line []byte) bool

	// IsNever reports whether every line is rejected.
	IsNever() bool

	// Literals returns the literal set the prefilter searches for.
	Literals() *literal.Seq

	// Name identifies the strategy, for diagnostics.
	Name() string
}

// New selects a prefilter for seq.
//
// A nil seq yields a nil Prefilter: there is nothing to filter on and every
// line must be located.
func New(seq *literal.Seq) (Prefilter, error) {
	switch {
	case seq == nil:
		return nil, nil
	case seq.IsEmpty():
		return neverPrefilter{}, nil
	case seq.Len() == 1 && seq.Get(0).Len() == 1:
		return &bytePrefilter{needle: seq.Get(0).Bytes[0], seq: seq}, nil
	case seq.Len() == 1:
		return &substringPrefilter{needle: seq.Get(0).Bytes, seq: seq}, nil
	default:
		return newAhoCorasick(seq)
	}
}

// neverPrefilter rejects every line.
type neverPrefilter struct{}

func (neverPrefilter) MayMatch([]byte) bool { return false }

func (neverPrefilter) IsNever() bool { return true }

func (neverPrefilter) Literals() *literal.Seq { return literal.NewSeq() }

func (neverPrefilter) Name() string { return "never" }
