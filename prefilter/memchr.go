package prefilter

import (
	"bytes"

	"github.com/coregx/regular/literal"
)

// bytePrefilter accepts lines containing a single required byte.
type bytePrefilter struct {
	needle byte
	seq    *literal.Seq
}

// MayMatch implements Prefilter.
func (p *bytePrefilter) MayMatch(line []byte) bool {
	return bytes.IndexByte(line, p.needle) >= 0
}

// IsNever implements Prefilter.
func (p *bytePrefilter) IsNever() bool { return false }

// Literals implements Prefilter.
func (p *bytePrefilter) Literals() *literal.Seq { return p.seq }

// Name implements Prefilter.
func (p *bytePrefilter) Name() string { return "memchr" }

// substringPrefilter accepts lines containing a single required substring.
type substringPrefilter struct {
	needle []byte
	seq    *literal.Seq
}

// MayMatch implements Prefilter.
func (p *substringPrefilter) MayMatch(line []byte) bool {
	return bytes.Contains(line, p.needle)
}

// IsNever implements Prefilter.
func (p *substringPrefilter) IsNever() bool { return false }

// Literals implements Prefilter.
func (p *substringPrefilter) Literals() *literal.Seq { return p.seq }

// Name implements Prefilter.
func (p *substringPrefilter) Name() string { return "memmem" }
