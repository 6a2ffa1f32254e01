// Package mathparse parses a small arithmetic language into an abstract
// syntax tree.
//
// A program is a sequence of statements, one per line:
//
//	sq(x) = x ^ 2        function definition
//	r = 3                assignment
//	print(sq(r) * 3.14)  print statement
//	r + 1                bare expression
//
// Expressions combine numbers, variables and calls with + - * / and ^.
// The usual precedence applies, ^ groups from the right, and a single
// leading sign binds tighter than ^, so -2^2 is (-2)^2.
//
// # Quick Start
//
//	prog, err := mathparse.Parse("f(x) = x + 1\nprint(f(2))", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ast.Dump(prog))
//
// The tree is described by package [github.com/kolkov/mathparse/ast],
// which also provides a source printer, a generic visitor and Walk.
// Nothing is evaluated: the parser only checks syntax.
//
// # Error Handling
//
// Parsing stops at the first error. Every failure is a [*ParseError]
// carrying the line, column and byte offset of the offending input.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Returned trees are never
// modified by the package.
package mathparse
