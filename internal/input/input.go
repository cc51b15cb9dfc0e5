// Package input opens match sources and splits them into lines.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// lz4Ext marks inputs stored as lz4 frames.
const lz4Ext = ".lz4"

// Errors returned while reading input.
var (
	ErrOpen        = errors.New("can't open input file")
	ErrLineTooLong = errors.New("input line too long")
)

// Open returns a reader for path. An empty path or "-" reads stdin.
// Files ending in .lz4 are decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	if strings.EqualFold(filepath.Ext(path), lz4Ext) {
		return &lz4File{Reader: lz4.NewReader(f), file: f}, nil
	}

	return f, nil
}

// OpenError records a failure to open an input file. It matches ErrOpen
// and the underlying error with errors.Is.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return ErrOpen.Error() + ": " + e.Path + ": " + e.Err.Error()
}

func (e *OpenError) Unwrap() []error { return []error{ErrOpen, e.Err} }

type lz4File struct {
	*lz4.Reader

	file *os.File
}

func (l *lz4File) Close() error { return l.file.Close() }

// Options bounds line reading.
type Options struct {
	// MaxLineLength is the longest accepted line in bytes, excluding the
	// newline. Zero disables the check.
	MaxLineLength int

	// BufferSize is the scanner buffer size. It also caps line length.
	BufferSize int
}

// DefaultBufferSize is used when Options.BufferSize is zero.
const DefaultBufferSize = 64 * 1024

// LineReader yields newline-terminated lines. The final line is returned
// even when the input does not end with a newline.
type LineReader struct {
	scanner *bufio.Scanner
	opts    Options
	line    int
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader, opts Options) *LineReader {
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(opts.BufferSize, 4096)), opts.BufferSize)

	return &LineReader{scanner: scanner, opts: opts}
}

// Next returns the next line without its newline. It returns io.EOF after
// the last line.
func (lr *LineReader) Next() (string, error) {
	if !lr.scanner.Scan() {
		err := lr.scanner.Err()
		if err == nil {
			return "", io.EOF
		}
		if errors.Is(err, bufio.ErrTooLong) {
			return "", fmt.Errorf("%w: line %d exceeds %d byte buffer", ErrLineTooLong, lr.line+1, lr.opts.BufferSize)
		}
		return "", fmt.Errorf("read line %d: %w", lr.line+1, err)
	}

	lr.line++
	text := lr.scanner.Text()

	if lr.opts.MaxLineLength > 0 && len(text) > lr.opts.MaxLineLength {
		return "", fmt.Errorf("%w: line %d has %d bytes, limit %d", ErrLineTooLong, lr.line, len(text), lr.opts.MaxLineLength)
	}

	return text, nil
}

// Line returns the number of the line last returned by Next.
func (lr *LineReader) Line() int { return lr.line }
