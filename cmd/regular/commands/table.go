package commands

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/coregx/regular"
)

// Table cell markers.
const (
	cellMatch   = "x"
	cellNoMatch = "."
)

func newTableCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table <pattern> <line>",
		Short: "Print the interval table of a pattern for one line",
		Long: `Table locates the pattern in line and prints the root match table.
Row b, column e is marked x when the interval [b, e) matches.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadSettings(global, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			re, err := regular.Compile(args[0])
			if err != nil {
				return err
			}
			defer re.Destroy()

			re.Locate(args[1])
			logger.Debug("located line", "pattern", re.String(), "length", re.Len())

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTable(re))
			return err
		},
	}
}

func renderTable(re *regular.Regex) string {
	n := re.Len()
	line := re.Line()

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault

	header := table.Row{"b\\e"}
	for e := 0; e <= n; e++ {
		header = append(header, strconv.Itoa(e))
	}
	tbl.AppendHeader(header)

	for b := 0; b <= n; b++ {
		label := strconv.Itoa(b)
		if b < n {
			label += " " + strconv.QuoteRune(rune(line[b]))
		}

		row := table.Row{label}
		for e := 0; e <= n; e++ {
			switch {
			case e < b:
				row = append(row, "")
			case re.Matches(b, e):
				row = append(row, cellMatch)
			default:
				row = append(row, cellNoMatch)
			}
		}
		tbl.AppendRow(row)
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d matches", len(re.Intervals()))})

	return tbl.Render()
}
