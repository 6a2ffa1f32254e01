package token

import "fmt"

// Position represents a position in source code.
type Position struct {
	// Filename is the name of the source file (optional).
	Filename string
	// Line number (1-indexed).
	Line int
	// Column is the byte offset on the line (1-indexed).
	Column int
	// Offset is the byte offset from the start of source (0-indexed).
	Offset int
}

// String returns a string representation of the position.
// Format: "filename:line:column" or "line:column" if filename is empty.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before returns true if p is before other in the source.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// Advance returns the position n bytes further on the same line.
func (p Position) Advance(n int) Position {
	p.Column += n
	p.Offset += n
	return p
}

// NoPos is a zero Position used when position is unknown.
var NoPos = Position{}
