package ast

import "github.com/kolkov/mathparse/token"

// Program represents a complete source text: statements in evaluation order.
// Stmts is empty for input that contains only whitespace.
type Program struct {
	// Source file name (for error messages)
	Filename string

	Stmts []Stmt

	// StartPos is the beginning of the source; EndPos is the end of the
	// source, so EndPos.Offset equals the input length.
	StartPos token.Position
	EndPos   token.Position
}

// Pos returns the position of the start of the source.
func (p *Program) Pos() token.Position { return p.StartPos }

// End returns the position after the last byte of the source.
func (p *Program) End() token.Position { return p.EndPos }

// Functions returns the function definitions of the program in source order.
func (p *Program) Functions() []*FuncDef {
	var defs []*FuncDef
	for _, s := range p.Stmts {
		if f, ok := s.(*FuncDef); ok {
			defs = append(defs, f)
		}
	}
	return defs
}

var _ Node = (*Program)(nil)
