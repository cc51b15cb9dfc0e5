package prefilter

import (
	"testing"

	"github.com/coregx/regular/literal"
)

func seqOf(strs ...string) *literal.Seq {
	lits := make([]literal.Literal, len(strs))
	for i, s := range strs {
		lits[i] = literal.NewLiteral([]byte(s), true)
	}
	return literal.NewSeq(lits...)
}

func TestNew_Strategy(t *testing.T) {
	tests := []struct {
		name string
		seq  *literal.Seq
		want string
	}{
		{"empty set", literal.NewSeq(), "never"},
		{"single byte", seqOf("x"), "memchr"},
		{"single substring", seqOf("hello"), "memmem"},
		{"many literals", seqOf("foo", "bar", "baz"), "aho-corasick"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, err := New(tt.seq)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if pf.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", pf.Name(), tt.want)
			}
			if pf.Literals().Len() != tt.seq.Len() {
				t.Errorf("Literals().Len() = %d, want %d", pf.Literals().Len(), tt.seq.Len())
			}
		})
	}
}

func TestNew_NilSeq(t *testing.T) {
	pf, err := New(nil)
	if err != nil || pf != nil {
		t.Errorf("New(nil) = %v, %v; want nil, nil", pf, err)
	}
}

func TestMayMatch(t *testing.T) {
	tests := []struct {
		name string
		seq  *literal.Seq
		line string
		want bool
	}{
		{"never", literal.NewSeq(), "anything", false},
		{"byte hit", seqOf("x"), "abxc", true},
		{"byte miss", seqOf("x"), "abc", false},
		{"substring hit", seqOf("lo w"), "hello world", true},
		{"substring miss", seqOf("low"), "hello world", false},
		{"aho-corasick first", seqOf("foo", "bar"), "a foo", true},
		{"aho-corasick second", seqOf("foo", "bar"), "barrel", true},
		{"aho-corasick miss", seqOf("foo", "bar"), "fob ba", false},
		{"empty line", seqOf("foo", "bar"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, err := New(tt.seq)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := pf.MayMatch([]byte(tt.line)); got != tt.want {
				t.Errorf("MayMatch(%q) = %v, want %v", tt.line, got, tt.want)
			}
			if pf.IsNever() != (tt.seq.Len() == 0) {
				t.Errorf("IsNever() = %v", pf.IsNever())
			}
		})
	}
}
