package parser

import (
	"errors"
	"strconv"

	"github.com/kolkov/mathparse/ast"
	"github.com/kolkov/mathparse/internal/lexer"
	"github.com/kolkov/mathparse/token"
)

// DefaultMaxDepth bounds expression nesting when Config.MaxDepth is unset.
const DefaultMaxDepth = 1000

// Config controls a single parse.
type Config struct {
	// Filename is recorded in every position (optional).
	Filename string

	// MaxDepth limits nesting of parentheses, call arguments and ^ chains.
	// Zero means DefaultMaxDepth.
	MaxDepth int
}

// Expected alternatives shared by several error sites.
var (
	wantPrimary = []string{"number", "identifier", "'('"}
	wantStmtEnd = []string{"operator", "line break", "end of input"}
	wantLineEnd = []string{"line break", "end of input"}
	wantExprEnd = []string{"operator", "end of input"}
	wantEnd     = []string{"end of input"}
)

// Parser is a recursive descent parser over a fully scanned token buffer.
// The grammar, from the loosest binding to the tightest:
//
//	program    --> ( stmt ( LINEBREAK stmt )* )? EOF ;
//	stmt       --> assignment | funcDef | printStmt | sum ;
//	assignment --> NAME "=" sum ;
//	funcDef    --> NAME "(" ( NAME ( "," NAME )* )? ")" "=" sum ;
//	printStmt  --> "print" "(" sum ")" ;
//	sum        --> product ( ( "+" | "-" ) product )* ;
//	product    --> power ( ( "*" | "/" ) power )* ;
//	power      --> unary ( "^" power )? ;
//	unary      --> ( "+" | "-" )? primary ;
//	primary    --> NUMBER | NAME "(" args? ")" | NAME | "(" sum ")" ;
//	args       --> sum ( "," sum )* ;
//
// A line break outside parentheses ends a statement once it is complete.
// A sign, "(" or "=" at the start of the next line then begins a new
// statement. A line ending in an operator or "=" still continues, since
// the statement is not complete yet.
//
// A Parser holds no state beyond one call, so independent parses may run
// concurrently.
type Parser struct {
	toks    []lexer.Token // Token buffer, ends with EOF
	pos     int           // Index of the current token
	tok     lexer.Token   // Current token
	prevTok lexer.Token   // Previous token

	filename string
	depth    int // current expression nesting
	maxDepth int
	nest     int // open parentheses; line breaks inside them do not end a statement
}

// Parse parses a program from source code.
func Parse(src string) (*ast.Program, error) {
	return ParseWithConfig(src, Config{})
}

// ParseWithConfig parses a program using the given configuration.
func ParseWithConfig(src string, cfg Config) (*ast.Program, error) {
	p := newParser(src, cfg)
	prog, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// ParseStatement parses source holding exactly one statement.
func ParseStatement(src string) (ast.Stmt, error) {
	return ParseStatementWithConfig(src, Config{})
}

// ParseStatementWithConfig parses one statement using the given configuration.
func ParseStatementWithConfig(src string, cfg Config) (ast.Stmt, error) {
	p := newParser(src, cfg)
	if p.tok.Type == token.EOF {
		return nil, expectedError(p.tok, "statement")
	}
	stmt, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != token.EOF {
		if canContinue(stmt) {
			return nil, expectedError(p.tok, wantExprEnd...)
		}
		return nil, expectedError(p.tok, wantEnd...)
	}
	return stmt, nil
}

// ParseExpr parses source holding exactly one expression.
func ParseExpr(src string) (ast.Expr, error) {
	return ParseExprWithConfig(src, Config{})
}

// ParseExprWithConfig parses one expression using the given configuration.
func ParseExprWithConfig(src string, cfg Config) (ast.Expr, error) {
	p := newParser(src, cfg)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != token.EOF {
		return nil, expectedError(p.tok, wantExprEnd...)
	}
	return expr, nil
}

func newParser(src string, cfg Config) *Parser {
	p := &Parser{
		toks:     lexer.NewFile(cfg.Filename, src).ScanAll(),
		filename: cfg.Filename,
		maxDepth: cfg.MaxDepth,
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	p.tok = p.toks[0]
	return p
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token. It stays on the final EOF.
func (p *Parser) next() {
	p.prevTok = p.tok
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	p.tok = p.toks[p.pos]
}

// peek returns the token n positions ahead without consuming anything.
func (p *Parser) peek(n int) lexer.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	return p.toks[i]
}

// match returns true if current token matches any of the given types.
func (p *Parser) match(types ...token.Token) bool {
	for _, t := range types {
		if p.tok.Type == t {
			return true
		}
	}
	return false
}

// expect checks that the current token is typ, consumes it and returns it.
func (p *Parser) expect(typ token.Token) (lexer.Token, error) {
	if p.tok.Type != typ {
		return p.tok, expectedError(p.tok, "'"+typ.String()+"'")
	}
	tok := p.tok
	p.next()
	return tok, nil
}

// ident consumes a NAME token and returns it as an identifier node.
func (p *Parser) ident() (*ast.Ident, error) {
	if p.tok.Type != token.NAME {
		return nil, expectedError(p.tok, "identifier")
	}
	id := &ast.Ident{
		BaseExpr: ast.MakeBaseExpr(p.tok.Pos, p.tok.End),
		Name:     p.tok.Value,
	}
	p.next()
	return id, nil
}

// atLineBreak reports whether the current token starts a new line outside
// any parentheses, where it cannot continue a complete statement.
func (p *Parser) atLineBreak() bool {
	return p.nest == 0 && p.tok.Newline
}

// enter records one more level of nesting.
func (p *Parser) enter() error {
	if p.depth >= p.maxDepth {
		return errorf(p.tok.Pos, "expression nested too deeply (limit %d)", p.maxDepth)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// -----------------------------------------------------------------------------
// Program parsing
// -----------------------------------------------------------------------------

// parseProgram parses statements until the end of input. Statements after
// the first must start on a new line.
func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{
		Filename: p.filename,
		StartPos: token.Position{Filename: p.filename, Line: 1, Column: 1},
	}

	for p.tok.Type != token.EOF {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)

		if p.tok.Type != token.EOF && !p.tok.Newline {
			if canContinue(stmt) {
				return nil, expectedError(p.tok, wantStmtEnd...)
			}
			return nil, expectedError(p.tok, wantLineEnd...)
		}
	}

	prog.EndPos = p.tok.Pos
	return prog, nil
}

// -----------------------------------------------------------------------------
// Statement parsing
// -----------------------------------------------------------------------------

// canContinue reports whether an operator could still extend stmt, which
// holds for every statement ending in a bare expression.
func canContinue(stmt ast.Stmt) bool {
	_, isPrint := stmt.(*ast.PrintStmt)
	return !isPrint
}

// parseStmt picks the statement form from at most one token of lookahead,
// plus a scan over the parameter list shape for definitions.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	if p.tok.Type == token.NAME && !p.peek(1).Newline {
		switch p.peek(1).Type {
		case token.ASSIGN:
			return p.parseAssign()
		case token.LPAREN:
			if p.isFuncDef() {
				return p.parseFuncDef()
			}
			if p.tok.Value == token.Print {
				return p.parsePrint()
			}
		}
	}
	return p.parseExprStmt()
}

// isFuncDef reports whether the tokens from the current NAME have the shape
// NAME "(" (NAME ("," NAME)*)? ")" "=".
func (p *Parser) isFuncDef() bool {
	i := p.pos + 2 // past NAME "("
	if p.toks[i].Type == token.RPAREN {
		return isDefAssign(p.toks[i+1])
	}
	for {
		if p.toks[i].Type != token.NAME {
			return false
		}
		i++
		switch p.toks[i].Type {
		case token.COMMA:
			i++
		case token.RPAREN:
			return isDefAssign(p.toks[i+1])
		default:
			return false
		}
	}
}

// isDefAssign reports whether tok is the "=" of a definition, which must
// stay on the line of its closing parenthesis.
func isDefAssign(tok lexer.Token) bool {
	return tok.Type == token.ASSIGN && !tok.Newline
}

// assignment --> NAME "=" sum ;
func (p *Parser) parseAssign() (*ast.AssignStmt, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.AssignStmt{
		BaseStmt: ast.MakeBaseStmt(name.Pos(), value.End()),
		Name:     name,
		Value:    value,
	}, nil
}

// funcDef --> NAME "(" ( NAME ( "," NAME )* )? ")" "=" sum ;
func (p *Parser) parseFuncDef() (*ast.FuncDef, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var params []*ast.Ident
	for !p.match(token.RPAREN) {
		if len(params) > 0 {
			if _, err := p.expect(token.COMMA); err != nil {
				return nil, err
			}
		}
		param, err := p.ident()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	p.next() // ')'

	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{
		BaseStmt: ast.MakeBaseStmt(name.Pos(), body.End()),
		Name:     name,
		Params:   params,
		Body:     body,
	}, nil
}

// printStmt --> "print" "(" sum ")" ;
func (p *Parser) parsePrint() (*ast.PrintStmt, error) {
	start := p.tok.Pos
	p.next() // print
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	if p.tok.Type == token.RPAREN {
		err := expectedError(p.tok, "expression")
		err.Message = "print takes exactly one argument, got none"
		return nil, err
	}
	p.nest++
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.nest--
	if p.tok.Type == token.COMMA {
		err := expectedError(p.tok, "')'")
		err.Message = "print takes exactly one argument"
		return nil, err
	}

	rparen, err := p.expect(token.RPAREN)
	if err != nil {
		return nil, err
	}
	return &ast.PrintStmt{
		BaseStmt: ast.MakeBaseStmt(start, rparen.End),
		Arg:      arg,
	}, nil
}

func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{
		BaseStmt: ast.MakeBaseStmt(expr.Pos(), expr.End()),
		Expr:     expr,
	}, nil
}

// -----------------------------------------------------------------------------
// Expression parsing
// -----------------------------------------------------------------------------

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseSum()
}

// sum --> product ( ( "+" | "-" ) product )* ;
func (p *Parser) parseSum() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return p.parseBinaryLeft(p.parseProduct, token.ADD, token.SUB)
}

// product --> power ( ( "*" | "/" ) power )* ;
func (p *Parser) parseProduct() (ast.Expr, error) {
	return p.parseBinaryLeft(p.parsePower, token.MUL, token.DIV)
}

// power --> unary ( "^" power )? ;
//
// The right operand recurses into power, so 2^3^2 is 2^(3^2), while the
// left operand is a whole unary, so -2^2 is (-2)^2.
func (p *Parser) parsePower() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != token.POW || p.atLineBreak() {
		return left, nil
	}
	p.next()

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	right, err := p.parsePower() // Right-associative
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{
		BaseExpr: ast.MakeBaseExpr(left.Pos(), right.End()),
		Left:     left,
		Op:       token.POW,
		Right:    right,
	}, nil
}

// unary --> ( "+" | "-" )? primary ;
//
// At most one sign: --x is rejected because the operand must be a primary.
func (p *Parser) parseUnary() (ast.Expr, error) {
	if !p.tok.Type.IsSign() {
		return p.parsePrimary()
	}
	op := p.tok
	p.next()
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{
		BaseExpr: ast.MakeBaseExpr(op.Pos, operand.End()),
		Op:       op.Type,
		Expr:     operand,
	}, nil
}

// primary --> NUMBER | NAME "(" args? ")" | NAME | "(" sum ")" ;
func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.tok.Type {
	case token.NUMBER:
		tok := p.tok
		// Literals beyond the float64 range are kept as +Inf with their
		// source text intact.
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, errorf(tok.Pos, "invalid number %s: %v", tok.Value, err)
		}
		p.next()
		return &ast.NumLit{
			BaseExpr: ast.MakeBaseExpr(tok.Pos, tok.End),
			Value:    v,
			Raw:      tok.Value,
		}, nil

	case token.NAME:
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		if p.tok.Type == token.LPAREN && !p.atLineBreak() {
			return p.parseCall(name)
		}
		return name, nil

	case token.LPAREN:
		start := p.tok.Pos
		p.next()
		p.nest++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.nest--
		if p.tok.Type != token.RPAREN {
			return nil, expectedError(p.tok, "operator", "')'")
		}
		end := p.tok.End
		p.next()
		return &ast.GroupExpr{
			BaseExpr: ast.MakeBaseExpr(start, end),
			Expr:     inner,
		}, nil

	default:
		return nil, expectedError(p.tok, wantPrimary...)
	}
}

// parseCall parses the argument list of a call whose name is consumed.
func (p *Parser) parseCall(name *ast.Ident) (*ast.CallExpr, error) {
	p.next() // '('
	p.nest++

	var args []ast.Expr
	if p.tok.Type != token.RPAREN {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.tok.Type != token.COMMA {
				break
			}
			p.next()
		}
	}

	p.nest--
	if p.tok.Type != token.RPAREN {
		return nil, expectedError(p.tok, "operator", "','", "')'")
	}
	end := p.tok.End
	p.next()

	return &ast.CallExpr{
		BaseExpr: ast.MakeBaseExpr(name.Pos(), end),
		Name:     name,
		Args:     args,
	}, nil
}

// -----------------------------------------------------------------------------
// Helper functions
// -----------------------------------------------------------------------------

// parseBinaryLeft parses left-associative binary operators.
func (p *Parser) parseBinaryLeft(higher func() (ast.Expr, error), ops ...token.Token) (ast.Expr, error) {
	expr, err := higher()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) && !p.atLineBreak() {
		op := p.tok.Type
		p.next()
		right, err := higher()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{
			BaseExpr: ast.MakeBaseExpr(expr.Pos(), right.End()),
			Left:     expr,
			Op:       op,
			Right:    right,
		}
	}
	return expr, nil
}
