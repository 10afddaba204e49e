package game

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrOddTokens    = errors.New("odd number of tokens")
	ErrMissingColon = errors.New("missing ':' separator")
	ErrUnknownColor = errors.New("color has no limit")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindIO           ErrorKind = "io"
	KindParse        ErrorKind = "parse"
	KindUnknownColor ErrorKind = "unknown_color"
)

// Error wraps an underlying error with operation context and a kind.
type Error struct {
	Op   string
	Kind ErrorKind
	Line int // 0 when the error is not tied to a line
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Line > 0 {
		base += fmt.Sprintf(" (line=%d)", e.Line)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind == kind
	}
	return false
}
