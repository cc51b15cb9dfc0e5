// Package config loads settings for the regular command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Config is the top-level configuration struct.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	MaxLineLength int       `mapstructure:"max_line_length"`
	BufferSize    string    `mapstructure:"buffer_size"`
	Color         string    `mapstructure:"color"`
	Prefilter     bool      `mapstructure:"prefilter"`
	Log           LogConfig `mapstructure:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Validation errors.
var (
	ErrNegativeLineLength = errors.New("max_line_length must not be negative")
	ErrInvalidBufferSize  = errors.New("invalid buffer_size")
	ErrBufferTooSmall     = errors.New("buffer_size must exceed max_line_length")
	ErrInvalidColor       = errors.New("color must be one of auto, always, never")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogFormat   = errors.New("log format must be text or json")
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MaxLineLength < 0 {
		return ErrNegativeLineLength
	}

	size, err := c.BufferBytes()
	if err != nil {
		return err
	}
	if c.MaxLineLength > 0 && size <= c.MaxLineLength {
		return fmt.Errorf("%w: %d <= %d", ErrBufferTooSmall, size, c.MaxLineLength)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.Color)
	}

	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Format) {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}

	return nil
}

// BufferBytes parses BufferSize ("64KiB", "1MB", "4096").
func (c *Config) BufferBytes() (int, error) {
	n, err := humanize.ParseBytes(c.BufferSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidBufferSize, err)
	}
	if n == 0 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidBufferSize, c.BufferSize)
	}
	return int(n), nil
}

// ParseLogLevel maps a level name to an slog.Level.
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
	return level, nil
}
