package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer renders AST nodes back to canonical source text: one statement
// per line, single spaces around binary operators, explicit groups kept.
// Parsing the output yields a tree Equal to the printed one.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the source form of node to the writer.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

// Format returns the source form of node.
func Format(node Node) string {
	var sb strings.Builder
	_ = NewPrinter(&sb).Print(node)
	return sb.String()
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) printNode(node Node) {
	switch n := node.(type) {
	case nil:
		p.printf("<nil>")
	case *Program:
		for _, s := range n.Stmts {
			p.printStmt(s)
			p.printf("\n")
		}
	case Stmt:
		p.printStmt(n)
	case Expr:
		p.printExpr(n)
	default:
		p.printf("<%T>", node)
	}
}

func (p *Printer) printStmt(s Stmt) {
	switch n := s.(type) {
	case *AssignStmt:
		p.printf("%s = ", n.Name.Name)
		p.printExpr(n.Value)
	case *FuncDef:
		p.printf("%s(%s) = ", n.Name.Name, strings.Join(n.ParamNames(), ", "))
		p.printExpr(n.Body)
	case *PrintStmt:
		p.printf("print(")
		p.printExpr(n.Arg)
		p.printf(")")
	case *ExprStmt:
		p.printExpr(n.Expr)
	default:
		p.printf("<%T>", s)
	}
}

func (p *Printer) printExpr(e Expr) {
	switch n := e.(type) {
	case nil:
		p.printf("<nil>")
	case *NumLit:
		p.printf("%s", numText(n))
	case *Ident:
		p.printf("%s", n.Name)
	case *BinaryExpr:
		p.printExpr(n.Left)
		p.printf(" %s ", n.Op)
		p.printExpr(n.Right)
	case *UnaryExpr:
		p.printf("%s", n.Op)
		p.printExpr(n.Expr)
	case *GroupExpr:
		p.printf("(")
		p.printExpr(n.Expr)
		p.printf(")")
	case *CallExpr:
		p.printf("%s(", n.Name.Name)
		for i, a := range n.Args {
			if i > 0 {
				p.printf(", ")
			}
			p.printExpr(a)
		}
		p.printf(")")
	default:
		p.printf("<%T>", e)
	}
}

func numText(n *NumLit) string {
	if n.Raw != "" {
		return n.Raw
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// Dump returns a fully parenthesized prefix rendering of node, one line
// per statement for a Program. It shows the tree shape explicitly:
//
//	1 + 2 * 3    =>  (+ 1 (* 2 3))
//	-2 ^ 2       =>  (^ (- 2) 2)
//	f(x, y) = x  =>  (def f (x y) x)
func Dump(node Node) string {
	return Visit[string](dumper{}, node)
}

type dumper struct{}

func (d dumper) VisitProgram(n *Program) string {
	lines := make([]string, len(n.Stmts))
	for i, s := range n.Stmts {
		lines[i] = Visit[string](d, s)
	}
	return strings.Join(lines, "\n")
}

func (d dumper) VisitAssignStmt(n *AssignStmt) string {
	return "(assign " + n.Name.Name + " " + Visit[string](d, n.Value) + ")"
}

func (d dumper) VisitFuncDef(n *FuncDef) string {
	return "(def " + n.Name.Name + " (" + strings.Join(n.ParamNames(), " ") + ") " +
		Visit[string](d, n.Body) + ")"
}

func (d dumper) VisitPrintStmt(n *PrintStmt) string {
	return "(print " + Visit[string](d, n.Arg) + ")"
}

func (d dumper) VisitExprStmt(n *ExprStmt) string {
	return Visit[string](d, n.Expr)
}

func (d dumper) VisitNumLit(n *NumLit) string { return numText(n) }
func (d dumper) VisitIdent(n *Ident) string   { return n.Name }

func (d dumper) VisitBinaryExpr(n *BinaryExpr) string {
	return "(" + n.Op.String() + " " + Visit[string](d, n.Left) + " " + Visit[string](d, n.Right) + ")"
}

func (d dumper) VisitUnaryExpr(n *UnaryExpr) string {
	return "(" + n.Op.String() + " " + Visit[string](d, n.Expr) + ")"
}

func (d dumper) VisitGroupExpr(n *GroupExpr) string {
	return "(group " + Visit[string](d, n.Expr) + ")"
}

func (d dumper) VisitCallExpr(n *CallExpr) string {
	var sb strings.Builder
	sb.WriteString("(call ")
	sb.WriteString(n.Name.Name)
	for _, a := range n.Args {
		sb.WriteByte(' ')
		sb.WriteString(Visit[string](d, a))
	}
	sb.WriteByte(')')
	return sb.String()
}
