package mathparse

import (
	"github.com/kolkov/mathparse/ast"
	"github.com/kolkov/mathparse/internal/parser"
)

// Version is the mathparse version string.
const Version = "0.1.0"

// Parse parses a complete program. Empty or whitespace-only source yields
// a program with no statements.
//
// Parameters:
//   - src: program source, statements separated by line breaks
//   - config: parse configuration (can be nil for defaults)
//
// Example:
//
//	prog, err := mathparse.Parse("x = 5\nprint(x * 2)", nil)
//	// len(prog.Stmts) == 2
func Parse(src string, config *Config) (*ast.Program, error) {
	prog, err := parser.ParseWithConfig(src, parserConfig(config))
	if err != nil {
		return nil, convertError(err)
	}
	return prog, nil
}

// ParseStatement parses source holding exactly one statement, such as a
// single line read by an interactive front-end. config can be nil.
//
// Example:
//
//	stmt, err := mathparse.ParseStatement("f(x, y) = x + y", nil)
//	def := stmt.(*ast.FuncDef)
func ParseStatement(src string, config *Config) (ast.Stmt, error) {
	stmt, err := parser.ParseStatementWithConfig(src, parserConfig(config))
	if err != nil {
		return nil, convertError(err)
	}
	return stmt, nil
}

// ParseExpr parses source holding exactly one expression. config can be nil.
func ParseExpr(src string, config *Config) (ast.Expr, error) {
	expr, err := parser.ParseExprWithConfig(src, parserConfig(config))
	if err != nil {
		return nil, convertError(err)
	}
	return expr, nil
}

// MustParse is like Parse but panics if the source cannot be parsed.
// It simplifies initialization of global program variables.
//
// Example:
//
//	var area = mathparse.MustParse("area(r) = 3.14159 * r ^ 2", nil)
func MustParse(src string, config *Config) *ast.Program {
	prog, err := Parse(src, config)
	if err != nil {
		panic(err)
	}
	return prog
}
