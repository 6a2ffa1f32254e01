package mathparse_test

import (
	"fmt"

	"github.com/kolkov/mathparse"
	"github.com/kolkov/mathparse/ast"
)

func ExampleParse() {
	prog, err := mathparse.Parse("sq(x) = x ^ 2\nprint(-sq(3) + 1)", nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ast.Dump(prog))
	// Output:
	// (def sq (x) (^ x 2))
	// (print (+ (- (call sq 3)) 1))
}

func ExampleParse_error() {
	_, err := mathparse.Parse("x = 1 +", nil)
	fmt.Println(err)
	// Output:
	// 1:8: unexpected end of input, expected one of {number, identifier, '('}
}

func ExampleParseExpr() {
	expr, _ := mathparse.ParseExpr("2 ^ 3 ^ 2", nil)
	fmt.Println(ast.Format(expr))
	fmt.Println(ast.Dump(expr))
	// Output:
	// 2 ^ 3 ^ 2
	// (^ 2 (^ 3 2))
}
