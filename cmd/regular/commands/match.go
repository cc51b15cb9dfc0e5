package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/coregx/regular"
	"github.com/coregx/regular/internal/config"
	"github.com/coregx/regular/internal/highlight"
	"github.com/coregx/regular/internal/input"
)

// matchOptions are the flags of the match (root) command.
type matchOptions struct {
	color         string
	maxLineLength int
	bufferSize    string
	noPrefilter   bool
	count         bool
}

func bindMatchCommand(cmd *cobra.Command, global *globalOptions) {
	opts := &matchOptions{}

	cmd.Flags().StringVar(&opts.color, "color", config.DefaultColor, "highlight matches: auto, always, never")
	cmd.Flags().IntVar(&opts.maxLineLength, "max-line-length", config.DefaultMaxLineLength, "longest accepted input line in bytes, 0 for no limit")
	cmd.Flags().StringVar(&opts.bufferSize, "buffer-size", config.DefaultBufferSize, "line buffer size (e.g. 64KiB, 1MB)")
	cmd.Flags().BoolVar(&opts.noPrefilter, "no-prefilter", false, "locate every line instead of skipping lines without required literals")
	cmd.Flags().BoolVarP(&opts.count, "count", "c", false, "print only the number of matching lines")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runMatch(cmd, args, global, opts)
	}
}

func runMatch(cmd *cobra.Command, args []string, global *globalOptions, opts *matchOptions) error {
	cfg, logger, err := loadSettings(global, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	if flags.Changed("max-line-length") {
		cfg.MaxLineLength = opts.maxLineLength
	}
	if flags.Changed("buffer-size") {
		cfg.BufferSize = opts.bufferSize
	}
	if opts.noPrefilter {
		cfg.Prefilter = false
	}

	err = cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	bufferSize, err := cfg.BufferBytes()
	if err != nil {
		return err
	}

	compileCfg := regular.DefaultConfig()
	compileCfg.Prefilter = cfg.Prefilter

	re, err := regular.CompileWithConfig(args[0], compileCfg)
	if err != nil {
		return err
	}
	defer re.Destroy()

	logger.Debug("pattern compiled", "pattern", re.String(), "prefilter", re.Prefilter(), "required", re.Required().String())

	src, closeSrc, err := openSource(cmd, args)
	if err != nil {
		return err
	}
	defer closeSrc()

	lines := input.NewLineReader(src, input.Options{
		MaxLineLength: cfg.MaxLineLength,
		BufferSize:    bufferSize,
	})

	out := cmd.OutOrStdout()
	printer := highlight.New(out, highlight.ColorEnabled(cfg.Color, out))

	var matched int64
	for {
		line, err := lines.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if !re.MatchLine(line) {
			continue
		}
		matched++

		if opts.count {
			continue
		}
		if err := printer.Print(line, re.Spans()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if opts.count {
		fmt.Fprintln(out, matched)
	}

	stats := re.Stats()
	logger.Info("scan complete",
		"lines", humanize.Comma(int64(stats.Lines)),
		"matched", humanize.Comma(matched),
		"located", humanize.Comma(int64(stats.Located)),
		"skipped", humanize.Comma(int64(stats.Skipped)),
	)

	return nil
}

// openSource opens the input file argument, or the command's stdin.
func openSource(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) < 2 || args[1] == input.Stdin {
		return cmd.InOrStdin(), func() {}, nil
	}

	rc, err := input.Open(args[1])
	if err != nil {
		return nil, nil, err
	}

	return rc, func() { _ = rc.Close() }, nil
}
