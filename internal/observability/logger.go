// Package observability builds the structured logger shared by the CLI.
package observability

import (
	"io"
	"log/slog"
	"os"

	"github.com/coregx/regular/internal/config"
)

// Config configures the logger.
type Config struct {
	// LogLevel controls the minimum slog severity.
	LogLevel slog.Level

	// LogJSON enables JSON-formatted log output.
	LogJSON bool

	// Output receives log records. Nil means stderr.
	Output io.Writer
}

// FromLogConfig converts the file/env log settings.
func FromLogConfig(lc config.LogConfig, out io.Writer) (Config, error) {
	level, err := config.ParseLogLevel(lc.Level)
	if err != nil {
		return Config{}, err
	}

	return Config{
		LogLevel: level,
		LogJSON:  lc.Format == config.LogFormatJSON,
		Output:   out,
	}, nil
}

// NewLogger returns a logger writing to cfg.Output.
func NewLogger(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var inner slog.Handler
	if cfg.LogJSON {
		inner = slog.NewJSONHandler(out, handlerOpts)
	} else {
		inner = slog.NewTextHandler(out, handlerOpts)
	}

	return slog.New(inner).With("component", "regular")
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
