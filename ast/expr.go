package ast

import "github.com/kolkov/mathparse/token"

// NumLit represents a numeric literal. The literal never carries a sign;
// a leading + or - is always a separate UnaryExpr.
// Examples: 42, 3.14, 007
type NumLit struct {
	BaseExpr
	Value float64 // Parsed numeric value (non-negative)
	Raw   string  // Original source text
}

// Ident represents an identifier used as a variable reference, or as the
// name part of a call, assignment or function definition.
type Ident struct {
	BaseExpr
	Name string
}

// BinaryExpr represents a binary operation.
// Op is one of token.ADD, token.SUB, token.MUL, token.DIV, token.POW.
type BinaryExpr struct {
	BaseExpr
	Left  Expr
	Op    token.Token
	Right Expr
}

// UnaryExpr represents a single leading sign applied to a primary.
// Op is token.ADD or token.SUB.
type UnaryExpr struct {
	BaseExpr
	Op   token.Token
	Expr Expr
}

// GroupExpr represents a parenthesized expression.
// Used to preserve explicit grouping in the source.
// Example: (a + b)
type GroupExpr struct {
	BaseExpr
	Expr Expr
}

// CallExpr represents a function call. Args is empty for f().
type CallExpr struct {
	BaseExpr
	Name *Ident
	Args []Expr
}

// Arity returns the number of arguments in the call.
func (c *CallExpr) Arity() int {
	return len(c.Args)
}

// Unparen strips any number of enclosing GroupExpr nodes.
func Unparen(e Expr) Expr {
	for {
		g, ok := e.(*GroupExpr)
		if !ok {
			return e
		}
		e = g.Expr
	}
}

var (
	_ Expr = (*NumLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*GroupExpr)(nil)
	_ Expr = (*CallExpr)(nil)
)
