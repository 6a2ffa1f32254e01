// Package ast defines the abstract syntax tree for mathparse programs.
//
// Every node is built bottom-up by the parser in a single pass and is not
// modified afterwards. A parent owns its children exclusively: no node is
// shared between two parents and the tree has no cycles.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions that produce values
//	│   ├── NumLit, Ident - leaves
//	│   ├── BinaryExpr, UnaryExpr, GroupExpr - operations
//	│   └── CallExpr - function calls
//	├── Stmt (interface) - top-level statements
//	│   ├── AssignStmt, FuncDef - definitions
//	│   └── PrintStmt, ExprStmt - output and bare expressions
//	└── Program - the root
package ast

import "github.com/kolkov/mathparse/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position

	// End returns the position of the first character immediately after this node.
	End() token.Position
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// BaseExpr provides common fields for all expression nodes.
type BaseExpr struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) End() token.Position { return b.EndPos }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides common fields for all statement nodes.
type BaseStmt struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseStmt) Pos() token.Position { return b.StartPos }
func (b *BaseStmt) End() token.Position { return b.EndPos }
func (b *BaseStmt) stmtNode()           {}

// MakeBaseExpr creates a BaseExpr with the given positions.
func MakeBaseExpr(start, end token.Position) BaseExpr {
	return BaseExpr{StartPos: start, EndPos: end}
}

// MakeBaseStmt creates a BaseStmt with the given positions.
func MakeBaseStmt(start, end token.Position) BaseStmt {
	return BaseStmt{StartPos: start, EndPos: end}
}
