package literal

import (
	"reflect"
	"testing"

	"github.com/coregx/regular/syntax"
)

func TestExtractRequired(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string // nil: no requirement
		never   bool
	}{
		{pattern: "hello", want: []string{"hello"}},
		{pattern: "a|b", want: []string{"a", "b"}},
		{pattern: "foo|foobar", want: []string{"foo"}},
		{pattern: "^abc$", want: []string{"abc"}},
		{pattern: "[abc]x", want: []string{"ax", "bx", "cx"}},
		{pattern: "colou?r", want: []string{"color", "colour"}},
		{pattern: "(ab)+c", want: []string{"ab"}},
		{pattern: "a.b", want: []string{"a"}},
		{pattern: "x(a|b)*y", want: []string{"x"}},
		{pattern: "[]|a", want: []string{"a"}},
		{pattern: "a*"},
		{pattern: "a?"},
		{pattern: "."},
		{pattern: "^$"},
		{pattern: "^"},
		{pattern: "a|b*"},
		{pattern: "([])*"},
		{pattern: "[abcdefghijklmnopq]"},
		{pattern: "[]", never: true},
		{pattern: "a[]", never: true},
		{pattern: "([])+", never: true},
	}

	e := New(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := e.ExtractRequired(syntax.MustParse(tt.pattern))
			switch {
			case tt.never:
				if got == nil || !got.IsEmpty() {
					t.Errorf("ExtractRequired(%q) = %v, want empty set", tt.pattern, got)
				}
			case tt.want == nil:
				if got != nil {
					t.Errorf("ExtractRequired(%q) = %v, want nil", tt.pattern, got)
				}
			default:
				if got == nil {
					t.Fatalf("ExtractRequired(%q) = nil, want %v", tt.pattern, tt.want)
				}
				if s := strs(got); !reflect.DeepEqual(s, tt.want) {
					t.Errorf("ExtractRequired(%q) = %v, want %v", tt.pattern, s, tt.want)
				}
			}
		})
	}
}

func TestExtractRequired_Limits(t *testing.T) {
	e := New(ExtractorConfig{MaxLiterals: 2, MaxLiteralLen: 3, MaxClassSize: 2})

	// Three alternatives exceed MaxLiterals.
	if got := e.ExtractRequired(syntax.MustParse("a|b|c")); got != nil {
		t.Errorf("a|b|c = %v, want nil", got)
	}

	// Concatenation longer than MaxLiteralLen falls back to a child's literal.
	got := e.ExtractRequired(syntax.MustParse("abcd"))
	if got == nil || got.Len() != 1 || got.Get(0).Len() > 3 {
		t.Errorf("abcd = %v, want one literal of at most 3 bytes", got)
	}
}

func TestExtractRequired_Soundness(t *testing.T) {
	// Every matched interval must contain a required literal.
	patterns := []string{"colou?r", "(ab)+c", "x(a|b)*y", "[abc]x|yz", "a.b", "^ab"}
	inputs := []string{"", "color colour", "abababc", "xaby xy", "ax bx yz", "a-b axb", "abab"}

	e := New(DefaultConfig())
	for _, p := range patterns {
		req := e.ExtractRequired(syntax.MustParse(p))
		if req == nil {
			t.Fatalf("%q: no required literals", p)
		}
		n := syntax.MustParse(p)
		for _, in := range inputs {
			n.Locate(in)
			for _, iv := range n.Table().Intervals() {
				sub := in[iv.Begin:iv.End]
				if !containsAny(sub, req) {
					t.Errorf("%q matches %q in %q without any of %v", p, sub, in, req)
				}
			}
		}
	}
}

func containsAny(s string, seq *Seq) bool {
	for i := 0; i < seq.Len(); i++ {
		if len(s) >= seq.Get(i).Len() && contains(s, string(seq.Get(i).Bytes)) {
			return true
		}
	}
	return false
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
