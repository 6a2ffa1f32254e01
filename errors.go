package mathparse

import (
	"errors"
	"fmt"

	"github.com/kolkov/mathparse/internal/parser"
)

// ParseError represents a syntax error in mathparse source code.
type ParseError struct {
	Filename string   // Source name, empty if none was configured
	Line     int      // 1-based line number
	Column   int      // 1-based column number
	Offset   int      // 0-based byte offset
	Message  string   // Error description
	Expected []string // Accepted alternatives, if known
}

// Error returns "file:line:column: message", or "line:column: message"
// when no filename was configured.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// convertError turns an internal parser error into the public type.
func convertError(err error) error {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return &ParseError{
			Filename: pe.Pos.Filename,
			Line:     pe.Pos.Line,
			Column:   pe.Pos.Column,
			Offset:   pe.Pos.Offset,
			Message:  pe.Message,
			Expected: pe.Expected,
		}
	}
	return &ParseError{Message: err.Error()}
}
