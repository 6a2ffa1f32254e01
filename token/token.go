// Package token defines lexical tokens for the mathparse language.
package token

import "strconv"

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	EOF                  // EOF

	// Operators and delimiters
	operatorStart
	ADD // +
	SUB // -
	MUL // *
	DIV // /
	POW // ^
	operatorEnd

	ASSIGN // =
	LPAREN // (
	RPAREN // )
	COMMA  // ,

	// Literals
	NAME   // name
	NUMBER // number
)

// Print is the spelling of the print statement keyword. It is contextual:
// the lexer always scans it as NAME and only the statement parser gives it
// a meaning.
const Print = "print"

var names = [...]string{
	ILLEGAL: "illegal",
	EOF:     "end of input",
	ADD:     "+",
	SUB:     "-",
	MUL:     "*",
	DIV:     "/",
	POW:     "^",
	ASSIGN:  "=",
	LPAREN:  "(",
	RPAREN:  ")",
	COMMA:   ",",
	NAME:    "identifier",
	NUMBER:  "number",
}

// String returns the source spelling of operators and delimiters,
// and a lowercase description for the other tokens.
func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// IsOperator returns true if the token is a binary or unary arithmetic operator.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsLiteral returns true if the token is a literal (name or number).
func (t Token) IsLiteral() bool {
	return t == NAME || t == NUMBER
}

// IsSign returns true if the token may be used as a unary sign.
func (t Token) IsSign() bool {
	return t == ADD || t == SUB
}

// Precedence returns the binding power of a binary operator:
// 1 for + and -, 2 for * and /, 3 for ^. Other tokens return 0.
func (t Token) Precedence() int {
	switch t {
	case ADD, SUB:
		return 1
	case MUL, DIV:
		return 2
	case POW:
		return 3
	default:
		return 0
	}
}

// IsRightAssoc reports whether a chain of t groups from the right.
func (t Token) IsRightAssoc() bool {
	return t == POW
}
