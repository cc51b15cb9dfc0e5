// Package highlight prints matching lines with their matched spans colored.
package highlight

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/coregx/regular/internal/config"
	"github.com/coregx/regular/internal/tty"
	"github.com/coregx/regular/pattern"
)

// Printer writes highlighted lines to an output.
type Printer struct {
	out   io.Writer
	match *color.Color
}

// New returns a printer. Spans are wrapped in red escapes only when
// colored is true.
func New(out io.Writer, colored bool) *Printer {
	match := color.New(color.FgRed)
	if colored {
		match.EnableColor()
	} else {
		match.DisableColor()
	}

	return &Printer{out: out, match: match}
}

// ColorEnabled resolves a color mode for out. Auto colors only terminals.
func ColorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := out.(*os.File)
	return ok && tty.IsTerminal(f)
}

// Print writes line followed by a newline. Spans must be sorted, disjoint
// and within line.
func (p *Printer) Print(line string, spans []pattern.Interval) error {
	last := 0
	for _, s := range spans {
		if s.Begin < last || s.End > len(line) || s.Begin > s.End {
			return fmt.Errorf("highlight: span %v out of order for line of %d bytes", s, len(line))
		}
		if _, err := io.WriteString(p.out, line[last:s.Begin]); err != nil {
			return err
		}
		if _, err := io.WriteString(p.out, p.match.Sprint(line[s.Begin:s.End])); err != nil {
			return err
		}
		last = s.End
	}

	_, err := io.WriteString(p.out, line[last:]+"\n")
	return err
}
