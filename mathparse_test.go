package mathparse_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/mathparse"
	"github.com/kolkov/mathparse/ast"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    string
		wantErr bool
	}{
		{name: "empty", src: "", want: ""},
		{name: "whitespace", src: " \n\t\n", want: ""},
		{name: "assignment", src: "x = 5", want: "(assign x 5)"},
		{name: "definition", src: "f(x,y)=x+y", want: "(def f (x y) (+ x y))"},
		{name: "print", src: "print(1+2)", want: "(print (+ 1 2))"},
		{name: "call", src: "f(1, 2)", want: "(call f 1 2)"},
		{name: "precedence", src: "1+2*3", want: "(+ 1 (* 2 3))"},
		{name: "power", src: "2^3^2", want: "(^ 2 (^ 3 2))"},
		{name: "negative base", src: "-2^2", want: "(^ (- 2) 2)"},
		{name: "group", src: "(1+2)", want: "(group (+ 1 2))"},
		{name: "two lines", src: "a = 1\nprint(a)", want: "(assign a 1)\n(print a)"},
		{name: "incomplete number", src: "1.", wantErr: true},
		{name: "trailing garbage", src: "1+2 extra", wantErr: true},
		{name: "print no args", src: "print()", wantErr: true},
		{name: "print two args", src: "print(1,2)", wantErr: true},
		{name: "double sign", src: "--x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := mathparse.Parse(tt.src, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, prog)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ast.Dump(prog))
			assert.Equal(t, len(tt.src), prog.End().Offset)
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := mathparse.Parse("x = 1\ny = (2 +\n", nil)
	require.Error(t, err)

	var pe *mathparse.ParseError
	require.True(t, errors.As(err, &pe), "error %T", err)
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, 1, pe.Column)
	assert.Equal(t, 15, pe.Offset)
	assert.Equal(t, []string{"number", "identifier", "'('"}, pe.Expected)
	assert.Equal(t, "3:1: unexpected end of input, expected one of {number, identifier, '('}", pe.Error())
}

func TestParseErrorFilename(t *testing.T) {
	_, err := mathparse.Parse("1 2", &mathparse.Config{Filename: "prog.calc"})
	require.Error(t, err)

	var pe *mathparse.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "prog.calc", pe.Filename)
	assert.Equal(t, `prog.calc:1:3: expected one of {operator, line break, end of input}, got number 2`, err.Error())
}

func TestConfig(t *testing.T) {
	prog, err := mathparse.Parse("x", &mathparse.Config{Filename: "a.calc"})
	require.NoError(t, err)
	assert.Equal(t, "a.calc", prog.Filename)

	deep := strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20)
	_, err = mathparse.Parse(deep, &mathparse.Config{MaxDepth: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested too deeply")

	// Zero means the default limit.
	_, err = mathparse.Parse(deep, &mathparse.Config{})
	require.NoError(t, err)

	// The caller's config is not modified.
	cfg := &mathparse.Config{}
	_, err = mathparse.Parse("1", cfg)
	require.NoError(t, err)
	assert.Zero(t, cfg.MaxDepth)
}

func TestParseStatement(t *testing.T) {
	stmt, err := mathparse.ParseStatement("f(x) = x * 2", nil)
	require.NoError(t, err)
	def, ok := stmt.(*ast.FuncDef)
	require.True(t, ok, "got %T", stmt)
	assert.Equal(t, "f", def.Name.Name)

	_, err = mathparse.ParseStatement("x = 1\ny = 2", nil)
	var pe *mathparse.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)

	_, err = mathparse.ParseStatement("y = (((1)))", &mathparse.Config{Filename: "line 3", MaxDepth: 2})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "line 3", pe.Filename)
	assert.Contains(t, pe.Message, "nested too deeply")
}

func TestParseExpr(t *testing.T) {
	expr, err := mathparse.ParseExpr("a * (b - 1)", nil)
	require.NoError(t, err)
	assert.Equal(t, "(* a (group (- b 1)))", ast.Dump(expr))

	_, err = mathparse.ParseExpr("a = 1", nil)
	var pe *mathparse.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Offset)

	expr, err = mathparse.ParseExpr("n", &mathparse.Config{Filename: "input"})
	require.NoError(t, err)
	assert.Equal(t, "input", expr.Pos().Filename)
}

func TestErrorFormat(t *testing.T) {
	plain := &mathparse.ParseError{Line: 2, Column: 4, Message: "bad"}
	assert.Equal(t, "2:4: bad", plain.Error())

	named := &mathparse.ParseError{Filename: "a.calc", Line: 2, Column: 4, Message: "bad"}
	assert.Equal(t, "a.calc:2:4: bad", named.Error())
}

func TestLineBreakEndsStatement(t *testing.T) {
	prog, err := mathparse.Parse("x = 5\n-x\na\n(b)", nil)
	require.NoError(t, err)
	assert.Equal(t, "(assign x 5)\n(- x)\na\n(group b)", ast.Dump(prog))
}

func TestLargeNumberLiteral(t *testing.T) {
	_, err := mathparse.Parse("print(1"+strings.Repeat("9", 350)+")", nil)
	assert.NoError(t, err)
}

func TestMustParse(t *testing.T) {
	prog := mathparse.MustParse("print(1)", nil)
	assert.Len(t, prog.Stmts, 1)

	assert.Panics(t, func() {
		mathparse.MustParse("print(", nil)
	})
}

func TestConcurrentUse(t *testing.T) {
	const src = "g(a, b) = a ^ b\nprint(g(2, 10) / 4)"
	want := ast.Dump(mathparse.MustParse(src, nil))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prog, err := mathparse.Parse(src, nil)
			if assert.NoError(t, err) {
				assert.Equal(t, want, ast.Dump(prog))
			}
		}()
	}
	wg.Wait()
}
