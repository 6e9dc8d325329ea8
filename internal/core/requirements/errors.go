package requirements

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrMalformedPin is returned for a pin line without exactly one "==" separator.
	ErrMalformedPin = errors.New("malformed requirement pin")
)

// ParseError wraps errors with context about where parsing failed.
type ParseError struct {
	Line    int    // 1-based line number, 0 when parsing a lone line
	Text    string // the offending line
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Message)
	}
	return fmt.Sprintf("%q: %s", e.Text, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(line int, text, message string, err error) *ParseError {
	return &ParseError{
		Line:    line,
		Text:    text,
		Message: message,
		Err:     err,
	}
}
