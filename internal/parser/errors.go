// Package parser provides a recursive descent parser for mathparse programs.
package parser

import (
	"fmt"
	"strings"

	"github.com/kolkov/mathparse/internal/lexer"
	"github.com/kolkov/mathparse/token"
)

// ParseError represents a syntax error encountered during parsing.
// Parsing stops at the first error, so a failed parse yields exactly one.
type ParseError struct {
	Pos      token.Position // Position where the error occurred
	Message  string         // Human-readable error message
	Got      string         // Token that was found (optional)
	Expected []string       // Alternatives that would have been accepted (optional)
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// errorf creates a ParseError at the given position with formatted message.
func errorf(pos token.Position, format string, args ...any) *ParseError {
	return &ParseError{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// expectedError creates a ParseError for an unexpected token. Lexical errors
// carried by ILLEGAL tokens take precedence over the expectation.
func expectedError(tok lexer.Token, want ...string) *ParseError {
	err := &ParseError{
		Pos:      tok.Pos,
		Got:      describe(tok),
		Expected: want,
	}
	switch tok.Type {
	case token.ILLEGAL:
		err.Message = tok.Value
	case token.EOF:
		err.Message = "unexpected end of input, expected " + wantList(want)
	default:
		err.Message = fmt.Sprintf("expected %s, got %s", wantList(want), err.Got)
	}
	return err
}

func wantList(want []string) string {
	if len(want) == 1 {
		return want[0]
	}
	return "one of {" + strings.Join(want, ", ") + "}"
}

// describe returns a description of tok for error messages.
func describe(tok lexer.Token) string {
	switch tok.Type {
	case token.NAME:
		return fmt.Sprintf("identifier %q", tok.Value)
	case token.NUMBER:
		return "number " + tok.Value
	case token.EOF:
		return "end of input"
	case token.ILLEGAL:
		return tok.Value
	default:
		return "'" + tok.Value + "'"
	}
}
