package syntax

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is the sentinel wrapped by every parse failure.
var ErrInvalidPattern = errors.New("invalid pattern")

// ErrorCode describes why a pattern was rejected.
type ErrorCode string

// Parse error codes
const (
	ErrMissingParen          ErrorCode = "missing closing )"
	ErrMissingBracket        ErrorCode = "missing closing ]"
	ErrMissingRepeatArgument ErrorCode = "missing argument to repetition operator"
	ErrUnexpectedParen       ErrorCode = "unexpected )"
	ErrUnsupportedChar       ErrorCode = "unsupported character"
	ErrMissingAtom           ErrorCode = "missing expression"
	ErrTrailingCharacters    ErrorCode = "unexpected trailing characters"
	ErrNestingDepth          ErrorCode = "expression nests too deeply"
)

// String returns the code's message.
func (c ErrorCode) String() string {
	return string(c)
}

// Error is a parse failure with the offending position.
// errors.Is(err, ErrInvalidPattern) holds for every *Error.
type Error struct {
	Code    ErrorCode
	Pattern string
	Pos     int // byte offset into Pattern
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s at position %d", e.Pattern, e.Code, e.Pos)
}

// Unwrap returns ErrInvalidPattern
func (e *Error) Unwrap() error {
	return ErrInvalidPattern
}
