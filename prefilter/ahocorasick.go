package prefilter

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/regular/literal"
)

// ahoCorasickPrefilter accepts lines containing any of several literals.
type ahoCorasickPrefilter struct {
	automaton *ahocorasick.Automaton
	seq       *literal.Seq
}

func newAhoCorasick(seq *literal.Seq) (*ahoCorasickPrefilter, error) {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build aho-corasick automaton: %w", err)
	}
	return &ahoCorasickPrefilter{automaton: auto, seq: seq}, nil
}

// MayMatch implements Prefilter.
func (p *ahoCorasickPrefilter) MayMatch(line []byte) bool {
	return p.automaton.IsMatch(line)
}

// IsNever implements Prefilter.
func (p *ahoCorasickPrefilter) IsNever() bool { return false }

// Literals implements Prefilter.
func (p *ahoCorasickPrefilter) Literals() *literal.Seq { return p.seq }

// Name implements Prefilter.
func (p *ahoCorasickPrefilter) Name() string { return "aho-corasick" }
