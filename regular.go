// Package regular matches a small regular-expression language by interval
// composition.
//
// A pattern is parsed once into a tree of nodes. For each input line every
// node computes a table of the substrings [begin, end) it matches, bottom-up
// from its children's tables, so after Locate the caller can ask about any
// interval of the line, not only about the leftmost match.
//
// Supported syntax:
//   - ordinary characters match themselves
//   - . matches any byte from ' ' to 'z'
//   - ^ and $ match the empty string at the start and end of the line
//   - [abc] matches any listed byte (no ranges, no negation)
//   - (...) groups, | alternates
//   - *, + and ? repeat the preceding atom and may be stacked
//
// There is no escape character; a metacharacter is matched literally by
// putting it in a class, as in "[.]".
//
// Basic usage:
//
//	re, err := regular.Compile(`(ab)+c`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	re.Locate("xababc")
//	fmt.Println(re.Matches(1, 6)) // true
//	fmt.Println(re.Spans())       // [[1, 6)]
//
// Matching is O(n³) in the line length per Concat, Star or Plus node, which is
// why the command-line tool bounds line length.
//
// A Regex is not safe for concurrent use. Use Clone to obtain an independent
// matcher for another goroutine.
package regular

import (
	"github.com/coregx/regular/literal"
	"github.com/coregx/regular/pattern"
	"github.com/coregx/regular/prefilter"
	"github.com/coregx/regular/syntax"
)

// Interval is a half-open range [Begin, End) of the located line.
type Interval = pattern.Interval

// Config controls compilation.
type Config struct {
	// Prefilter enables required-literal extraction so that MatchLine can
	// skip lines that cannot match without computing interval tables.
	Prefilter bool

	// Literal bounds the required-literal extraction.
	Literal literal.ExtractorConfig

	// Tracker controls when an ineffective prefilter is retired.
	Tracker prefilter.TrackerConfig
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() Config {
	return Config{
		Prefilter: true,
		Literal:   literal.DefaultConfig(),
		Tracker:   prefilter.DefaultTrackerConfig(),
	}
}

// Stats counts the lines seen by MatchLine.
type Stats struct {
	Lines   uint64 // lines offered to MatchLine
	Located uint64 // lines whose interval tables were computed
	Skipped uint64 // lines rejected by the prefilter
	Matched uint64 // lines with at least one matching interval
}

// Regex is a compiled pattern together with the tables of the last line.
type Regex struct {
	root     pattern.Node
	pattern  string
	config   Config
	required *literal.Seq
	tracker  *prefilter.Tracker

	line    string
	located bool
	skipped bool // line was rejected by the prefilter; no tables for it
	stats   Stats
}

// Compile parses a pattern with the default configuration.
//
// The error, if any, wraps syntax.ErrInvalidPattern and can be inspected
// with errors.As for a *syntax.Error.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern is invalid.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regular: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig parses a pattern with a custom configuration.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	root, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	re := &Regex{
		root:    root,
		pattern: pattern,
		config:  config,
	}

	if config.Prefilter {
		re.required = literal.New(config.Literal).ExtractRequired(root)
		pf, err := prefilter.New(re.required)
		if err != nil {
			return nil, err
		}
		re.tracker = prefilter.NewTrackerWithConfig(pf, config.Tracker)
	}

	return re, nil
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Root returns the pattern tree. The tree is owned by r.
func (r *Regex) Root() pattern.Node {
	return r.root
}

// Required returns the literals every match must contain, or nil if there
// are none or the prefilter is disabled.
func (r *Regex) Required() *literal.Seq {
	return r.required
}

// Prefilter returns the name of the prefilter strategy, or "" if none.
func (r *Regex) Prefilter() string {
	if r.tracker == nil {
		return ""
	}
	return r.tracker.Inner().Name()
}

// Locate computes the interval tables of every node for line, discarding the
// tables of the previous line.
func (r *Regex) Locate(line string) {
	r.root.Locate(line)
	r.line = line
	r.located = true
	r.skipped = false
}

// MatchLine reports whether any interval of line matches, zero-width
// intervals included. Lines the prefilter rules out are not located; for
// them Matches is false everywhere.
func (r *Regex) MatchLine(line string) bool {
	r.stats.Lines++
	if !r.tracker.MayMatch([]byte(line)) {
		r.stats.Skipped++
		r.line = line
		r.located = true
		r.skipped = true
		return false
	}

	r.Locate(line)
	r.stats.Located++
	if !r.HasMatch() {
		return false
	}
	r.stats.Matched++
	r.tracker.ConfirmMatch()
	return true
}

// Line returns the most recently located line.
func (r *Regex) Line() string {
	return r.line
}

// Len returns the length of the most recently located line.
func (r *Regex) Len() int {
	return len(r.line)
}

// Matches reports whether [begin, end) of the located line matches the
// pattern. Panics before the first Locate or if an index is outside
// [0, Len()].
func (r *Regex) Matches(begin, end int) bool {
	r.mustBeLocated()
	if r.skipped {
		if begin < 0 || begin > len(r.line) || end < 0 || end > len(r.line) {
			panic("regular: interval out of range")
		}
		return false
	}
	return r.root.Matches(begin, end)
}

// FullMatch reports whether the whole located line matches.
func (r *Regex) FullMatch() bool {
	return r.Matches(0, r.Len())
}

// HasMatch reports whether any interval of the located line matches.
func (r *Regex) HasMatch() bool {
	r.mustBeLocated()
	if r.skipped {
		return false
	}
	return r.root.Table().Count() > 0
}

// Intervals returns every matching interval ordered by Begin, then End.
func (r *Regex) Intervals() []Interval {
	r.mustBeLocated()
	if r.skipped {
		return nil
	}
	return r.root.Table().Intervals()
}

// Spans returns the regions to highlight in the located line: scanning left
// to right, each span is the longest non-empty match starting at the scan
// position, and scanning resumes at its end. Zero-width matches produce no
// span.
func (r *Regex) Spans() []Interval {
	r.mustBeLocated()
	if r.skipped {
		return nil
	}

	var spans []Interval
	n := r.Len()
	for pos := 0; pos < n; {
		end := -1
		for e := n; e > pos; e-- {
			if r.root.Matches(pos, e) {
				end = e
				break
			}
		}
		if end < 0 {
			pos++
			continue
		}
		spans = append(spans, Interval{Begin: pos, End: end})
		pos = end
	}
	return spans
}

// Stats returns counters accumulated by MatchLine.
func (r *Regex) Stats() Stats {
	return r.stats
}

// Clone returns an independent Regex for the same pattern and configuration.
// The clone shares no state with r and may be used from another goroutine.
func (r *Regex) Clone() *Regex {
	re, err := CompileWithConfig(r.pattern, r.config)
	if err != nil {
		// r was compiled from the same input.
		panic("regular: Clone: " + err.Error())
	}
	return re
}

// Destroy releases the interval tables of the whole tree. The Regex must not
// be used afterwards.
func (r *Regex) Destroy() {
	r.root.Destroy()
	r.located = false
	r.line = ""
}

func (r *Regex) mustBeLocated() {
	if !r.located {
		panic("regular: no line has been located")
	}
}
