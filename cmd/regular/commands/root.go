// Package commands implements the regular CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/coregx/regular/internal/config"
	"github.com/coregx/regular/internal/input"
	"github.com/coregx/regular/internal/observability"
	"github.com/coregx/regular/syntax"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand returns the root command. Run without a subcommand it
// prints every input line containing a match of the pattern.
func NewRootCommand() *cobra.Command {
	global := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "regular <pattern> [input-file]",
		Short: "Print lines matching a pattern, highlighting the matches",
		Long: `Regular reads lines from input-file, or standard input when no file
is given, and prints every line in which some interval matches the pattern.
Matched text is highlighted in red.

Pattern syntax:
  c       ordinary character        .    any of ' ' through 'z'
  ^ $     start and end anchors     [..] character class
  p*      zero or more              p+   one or more
  p?      zero or one               p|q  alternation
  (p)     grouping

Input files ending in .lz4 are decompressed.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "config file (default .regular.yaml in . or $HOME)")
	rootCmd.PersistentFlags().StringVar(&global.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&global.logFormat, "log-format", "", "log format: text or json")

	bindMatchCommand(rootCmd, global)

	rootCmd.AddCommand(newExplainCommand(global))
	rootCmd.AddCommand(newTableCommand(global))

	return rootCmd
}

// loadSettings reads the config file and applies the persistent flags.
func loadSettings(global *globalOptions, logOut io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(global.configPath)
	if err != nil {
		return nil, nil, err
	}

	if global.logLevel != "" {
		cfg.Log.Level = global.logLevel
	}
	if global.logFormat != "" {
		cfg.Log.Format = global.logFormat
	}

	logCfg, err := observability.FromLogConfig(cfg.Log, logOut)
	if err != nil {
		return nil, nil, err
	}

	return cfg, observability.NewLogger(logCfg), nil
}

// UserMessage renders an error returned by a command for the terminal.
func UserMessage(err error) string {
	var syntaxErr *syntax.Error
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("Invalid pattern: %s at position %d", syntaxErr.Code, syntaxErr.Pos)
	}

	var openErr *input.OpenError
	if errors.As(err, &openErr) {
		return "Can't open input file: " + openErr.Path
	}

	if errors.Is(err, input.ErrLineTooLong) {
		return "Input line too long"
	}

	return "Error: " + err.Error()
}
