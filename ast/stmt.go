package ast

// AssignStmt binds the value of an expression to a name.
// Example: x = 5
type AssignStmt struct {
	BaseStmt
	Name  *Ident
	Value Expr
}

// FuncDef defines a single-expression function.
// Example: f(x, y) = x + y
//
// Params may be empty and are not checked for duplicates; that is left to
// whatever evaluates the tree.
type FuncDef struct {
	BaseStmt
	Name   *Ident
	Params []*Ident
	Body   Expr
}

// ParamNames returns the parameter names in declaration order.
func (f *FuncDef) ParamNames() []string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return names
}

// PrintStmt prints exactly one expression.
// Example: print(1 + 2)
type PrintStmt struct {
	BaseStmt
	Arg Expr
}

// ExprStmt represents an expression used as a statement.
// Examples: f(2), x, 1 + 2
type ExprStmt struct {
	BaseStmt
	Expr Expr
}

var (
	_ Stmt = (*AssignStmt)(nil)
	_ Stmt = (*FuncDef)(nil)
	_ Stmt = (*PrintStmt)(nil)
	_ Stmt = (*ExprStmt)(nil)
)
