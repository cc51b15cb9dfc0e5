package regular

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
)

// genPattern builds a random pattern that both this package and the stdlib
// regexp package accept with the same meaning: no anchors, no stacked
// repetition, and only letters from "abc" as literals and class members.
func genPattern(rng *rand.Rand, depth int) string {
	var sb strings.Builder
	alts := 1 + rng.Intn(2)
	for i := 0; i < alts; i++ {
		if i > 0 {
			sb.WriteByte('|')
		}
		reps := 1 + rng.Intn(3)
		for j := 0; j < reps; j++ {
			sb.WriteString(genAtom(rng, depth))
			switch rng.Intn(5) {
			case 0:
				sb.WriteByte('*')
			case 1:
				sb.WriteByte('+')
			case 2:
				sb.WriteByte('?')
			}
		}
	}
	return sb.String()
}

func genAtom(rng *rand.Rand, depth int) string {
	const letters = "abc"
	switch k := rng.Intn(6); {
	case k == 0:
		return "."
	case k == 1:
		var sb strings.Builder
		sb.WriteByte('[')
		for _, c := range []byte(letters) {
			if rng.Intn(2) == 0 {
				sb.WriteByte(c)
			}
		}
		if sb.Len() == 1 {
			sb.WriteByte(letters[rng.Intn(len(letters))])
		}
		sb.WriteByte(']')
		return sb.String()
	case k == 2 && depth > 0:
		return "(" + genPattern(rng, depth-1) + ")"
	default:
		return string(letters[rng.Intn(len(letters))])
	}
}

func genInput(rng *rand.Rand) string {
	n := rng.Intn(7)
	b := make([]byte, n)
	for i := range b {
		b[i] = "abc"[rng.Intn(3)]
	}
	return string(b)
}

// TestStdlibCompat checks every interval of random inputs against the stdlib
// matcher anchored on the substring.
func TestStdlibCompat(t *testing.T) {
	rng := rand.New(rand.NewSource(20261018))

	for i := 0; i < 300; i++ {
		p := genPattern(rng, 2)
		re, err := Compile(p)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", p, err)
		}
		std := regexp.MustCompile(`^(?:` + p + `)$`)

		for j := 0; j < 10; j++ {
			in := genInput(rng)
			re.Locate(in)
			for b := 0; b <= len(in); b++ {
				for e := b; e <= len(in); e++ {
					want := std.MatchString(in[b:e])
					if got := re.Matches(b, e); got != want {
						t.Fatalf("pattern %q input %q: Matches(%d, %d) = %v, stdlib %v",
							p, in, b, e, got, want)
					}
				}
			}
		}
	}
}

// TestStdlibCompat_Anchors compares anchored patterns against the stdlib on
// whole lines, where ^ and $ mean the same thing in both.
func TestStdlibCompat_Anchors(t *testing.T) {
	tests := []struct {
		pattern string
		inputs  []string
	}{
		{"^ab", []string{"ab", "abab", "bab", ""}},
		{"ab$", []string{"ab", "abab", "aba", ""}},
		{"^(a|b)*$", []string{"", "abba", "abc"}},
		{"^$", []string{"", "a"}},
		{"a^b", []string{"ab", "a^b"}},
	}

	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		std := regexp.MustCompile(tt.pattern)
		for _, in := range tt.inputs {
			re.Locate(in)
			if got, want := re.HasMatch(), std.MatchString(in); got != want {
				t.Errorf("%q on %q: HasMatch() = %v, stdlib %v", tt.pattern, in, got, want)
			}
		}
	}
}
