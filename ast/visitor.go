package ast

import "fmt"

// Visitor defines the generic visitor pattern for AST traversal.
// Type parameter T is the return type of visit methods.
//
// An evaluator implements Visitor[float64] (or Visitor[error]) and drives the
// traversal itself by calling Visit on child nodes:
//
//	func (e *Eval) VisitBinaryExpr(n *BinaryExpr) float64 {
//	    l, r := ast.Visit[float64](e, n.Left), ast.Visit[float64](e, n.Right)
//	    ...
//	}
type Visitor[T any] interface {
	VisitProgram(*Program) T

	// Statements
	VisitAssignStmt(*AssignStmt) T
	VisitFuncDef(*FuncDef) T
	VisitPrintStmt(*PrintStmt) T
	VisitExprStmt(*ExprStmt) T

	// Expressions
	VisitNumLit(*NumLit) T
	VisitIdent(*Ident) T
	VisitBinaryExpr(*BinaryExpr) T
	VisitUnaryExpr(*UnaryExpr) T
	VisitGroupExpr(*GroupExpr) T
	VisitCallExpr(*CallExpr) T
}

// Visit dispatches node to the matching method of v.
// A nil node yields the zero value of T.
func Visit[T any](v Visitor[T], node Node) T {
	switch n := node.(type) {
	case nil:
		var zero T
		return zero
	case *Program:
		return v.VisitProgram(n)
	case *AssignStmt:
		return v.VisitAssignStmt(n)
	case *FuncDef:
		return v.VisitFuncDef(n)
	case *PrintStmt:
		return v.VisitPrintStmt(n)
	case *ExprStmt:
		return v.VisitExprStmt(n)
	case *NumLit:
		return v.VisitNumLit(n)
	case *Ident:
		return v.VisitIdent(n)
	case *BinaryExpr:
		return v.VisitBinaryExpr(n)
	case *UnaryExpr:
		return v.VisitUnaryExpr(n)
	case *GroupExpr:
		return v.VisitGroupExpr(n)
	case *CallExpr:
		return v.VisitCallExpr(n)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", node))
	}
}

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: Count all identifiers
//
//	count := 0
//	ast.Walk(program, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Ident); ok {
//	        count++
//	    }
//	    return true // continue traversal
//	})
func Walk(node Node, fn func(Node) bool) {
	if isNil(node) || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, fn)
		}

	// Statements
	case *AssignStmt:
		Walk(n.Name, fn)
		Walk(n.Value, fn)

	case *FuncDef:
		Walk(n.Name, fn)
		for _, p := range n.Params {
			Walk(p, fn)
		}
		Walk(n.Body, fn)

	case *PrintStmt:
		Walk(n.Arg, fn)

	case *ExprStmt:
		Walk(n.Expr, fn)

	// Expressions
	case *NumLit, *Ident:
		// no children

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *UnaryExpr:
		Walk(n.Expr, fn)

	case *GroupExpr:
		Walk(n.Expr, fn)

	case *CallExpr:
		Walk(n.Name, fn)
		for _, a := range n.Args {
			Walk(a, fn)
		}
	}
}

// isNil reports whether node is nil or a typed nil pointer, which happens
// when an optional *Ident field is passed as a Node.
func isNil(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Ident:
		return n == nil
	case *Program:
		return n == nil
	}
	return false
}

// Equal reports whether a and b have the same structure, operators,
// names and literal text. Positions are ignored.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}

	switch x := a.(type) {
	case *Program:
		y, ok := b.(*Program)
		if !ok || len(x.Stmts) != len(y.Stmts) {
			return false
		}
		for i := range x.Stmts {
			if !Equal(x.Stmts[i], y.Stmts[i]) {
				return false
			}
		}
		return true

	case *AssignStmt:
		y, ok := b.(*AssignStmt)
		return ok && Equal(x.Name, y.Name) && Equal(x.Value, y.Value)

	case *FuncDef:
		y, ok := b.(*FuncDef)
		if !ok || !Equal(x.Name, y.Name) || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if !Equal(x.Params[i], y.Params[i]) {
				return false
			}
		}
		return Equal(x.Body, y.Body)

	case *PrintStmt:
		y, ok := b.(*PrintStmt)
		return ok && Equal(x.Arg, y.Arg)

	case *ExprStmt:
		y, ok := b.(*ExprStmt)
		return ok && Equal(x.Expr, y.Expr)

	case *NumLit:
		y, ok := b.(*NumLit)
		return ok && x.Raw == y.Raw && x.Value == y.Value

	case *Ident:
		y, ok := b.(*Ident)
		return ok && x.Name == y.Name

	case *BinaryExpr:
		y, ok := b.(*BinaryExpr)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)

	case *UnaryExpr:
		y, ok := b.(*UnaryExpr)
		return ok && x.Op == y.Op && Equal(x.Expr, y.Expr)

	case *GroupExpr:
		y, ok := b.(*GroupExpr)
		return ok && Equal(x.Expr, y.Expr)

	case *CallExpr:
		y, ok := b.(*CallExpr)
		if !ok || !Equal(x.Name, y.Name) || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}
