// Package lexer provides source tokenization for mathparse programs.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/coregx/coregex"

	"github.com/kolkov/mathparse/token"
)

// Identifier and number recognizers. Both are anchored and only run when the
// current byte can start the literal, so a match always begins at offset 0.
var (
	identPattern  = mustCompile(`^[A-Za-z][A-Za-z0-9_]*`)
	numberPattern = mustCompile(`^[0-9]+(?:\.[0-9]+)?`)
)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("lexer: compile %q: %v", pattern, err))
	}
	return re
}

// Lexer tokenizes mathparse source code.
type Lexer struct {
	src     string         // Source code
	offset  int            // Byte offset of the next unread character
	pos     token.Position // Position of src[offset]
	newline bool           // Was a line break skipped before the current token?
}

// New creates a new Lexer for the given source code.
func New(src string) *Lexer {
	return NewFile("", src)
}

// NewFile creates a new Lexer whose positions carry filename.
func NewFile(filename, src string) *Lexer {
	return &Lexer{
		src: src,
		pos: token.Position{
			Filename: filename,
			Line:     1,
			Column:   1,
		},
	}
}

// Token represents a scanned token with its position and value.
type Token struct {
	Type    token.Token
	Pos     token.Position // First byte of the token
	End     token.Position // First byte after the token
	Value   string         // Source text; a description for ILLEGAL
	Newline bool           // A line break precedes the token
}

// Scan scans and returns the next token. After the end of input it keeps
// returning EOF tokens positioned at len(src).
func (l *Lexer) Scan() Token {
	l.skipWhitespace()
	tok := l.scan()
	tok.Newline = l.newline
	return tok
}

// ScanAll scans the whole source. The result always ends with exactly one
// EOF token.
func (l *Lexer) ScanAll() []Token {
	var toks []Token
	for {
		tok := l.Scan()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) scan() Token {
	pos := l.pos

	if l.offset >= len(l.src) {
		return Token{Type: token.EOF, Pos: pos, End: pos}
	}

	switch ch := l.src[l.offset]; ch {
	case '+':
		return l.single(token.ADD, pos)
	case '-':
		return l.single(token.SUB, pos)
	case '*':
		return l.single(token.MUL, pos)
	case '/':
		return l.single(token.DIV, pos)
	case '^':
		return l.single(token.POW, pos)
	case '=':
		return l.single(token.ASSIGN, pos)
	case '(':
		return l.single(token.LPAREN, pos)
	case ')':
		return l.single(token.RPAREN, pos)
	case ',':
		return l.single(token.COMMA, pos)

	default:
		if isDigit(ch) {
			return l.scanNumber(pos)
		}
		if isLetter(ch) {
			return l.scanIdent(pos)
		}
		return l.scanIllegal(pos)
	}
}

func (l *Lexer) single(typ token.Token, pos token.Position) Token {
	l.advance(1)
	return Token{Type: typ, Pos: pos, End: l.pos, Value: l.src[pos.Offset:l.offset]}
}

func (l *Lexer) scanNumber(pos token.Position) Token {
	loc := numberPattern.FindStringIndex(l.src[l.offset:])
	if loc == nil || loc[0] != 0 {
		return l.scanIllegal(pos)
	}
	l.advance(loc[1])

	// "1." and "1.2.3": the pattern stopped before a '.' it could not use.
	if l.peek() == '.' {
		l.advance(1)
		for isDigit(l.peek()) {
			l.advance(1)
		}
		raw := l.src[pos.Offset:l.offset]
		msg := fmt.Sprintf("malformed number %q", raw)
		if raw[len(raw)-1] == '.' {
			msg += ": expected digit after '.'"
		}
		return Token{Type: token.ILLEGAL, Pos: pos, End: l.pos, Value: msg}
	}

	return Token{Type: token.NUMBER, Pos: pos, End: l.pos, Value: l.src[pos.Offset:l.offset]}
}

func (l *Lexer) scanIdent(pos token.Position) Token {
	loc := identPattern.FindStringIndex(l.src[l.offset:])
	if loc == nil || loc[0] != 0 {
		return l.scanIllegal(pos)
	}
	l.advance(loc[1])
	return Token{Type: token.NAME, Pos: pos, End: l.pos, Value: l.src[pos.Offset:l.offset]}
}

func (l *Lexer) scanIllegal(pos token.Position) Token {
	r, size := utf8.DecodeRuneInString(l.src[l.offset:])
	l.advance(size)

	msg := fmt.Sprintf("unexpected character %q", r)
	if r == '.' && isDigit(l.peek()) {
		msg = "malformed number: expected digit before '.'"
	}
	return Token{Type: token.ILLEGAL, Pos: pos, End: l.pos, Value: msg}
}

func (l *Lexer) skipWhitespace() {
	l.newline = false
	for l.offset < len(l.src) {
		switch l.src[l.offset] {
		case ' ', '\t', '\r':
			l.advance(1)
		case '\n':
			l.offset++
			l.pos.Line++
			l.pos.Column = 1
			l.pos.Offset = l.offset
			l.newline = true
		default:
			return
		}
	}
}

// advance consumes n bytes that contain no line break.
func (l *Lexer) advance(n int) {
	l.offset += n
	l.pos = l.pos.Advance(n)
}

// peek returns the next unread byte, or 0 at the end of input.
func (l *Lexer) peek() byte {
	if l.offset >= len(l.src) {
		return 0
	}
	return l.src[l.offset]
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
