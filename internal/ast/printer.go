package ast

import (
	"fmt"
	"strings"
)

// PrintExpr renders an Expression as an indented Lisp-style s-expression, e.g.
// `(+ 1 2)`. It backs the `ast` dump subcommand and is otherwise unused by
// the interpreter, which walks the tree directly.
func PrintExpr(e Expression) string {
	p := &printer{}
	return p.expr(e)
}

// PrintStatement renders a single Statement the same way.
func PrintStatement(s Statement) string {
	p := &printer{}
	return p.stmt(s)
}

const indent = "    "

type printer struct {
	nest int
}

func (p *printer) wrap(body string) string {
	var b strings.Builder
	if p.nest > 0 {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indent, p.nest))
	}
	b.WriteString(body)
	return b.String()
}

func (p *printer) parenthesize(name string, children ...Expression) string {
	p.nest++
	var b strings.Builder
	if p.nest > 0 {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indent, p.nest))
	}
	b.WriteString("(")
	b.WriteString(name)
	for _, c := range children {
		b.WriteByte(' ')
		b.WriteString(p.expr(c))
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(indent, p.nest))
	b.WriteString(")")
	p.nest--
	return b.String()
}

func (p *printer) expr(e Expression) string {
	switch n := e.Expr.(type) {
	case Literal:
		return p.wrap(n.Value.Lexeme())
	case VariableUsage:
		return p.wrap(n.Name)
	case Grouping:
		return p.parenthesize("Group", n.Inner)
	case Unary:
		return p.parenthesize(n.Op.Kind.String(), n.Right)
	case Binary:
		return p.parenthesize(n.Op.Kind.String(), n.Left, n.Right)
	case Logical:
		return p.parenthesize(n.Op.Kind.String(), n.Left, n.Right)
	case Assign:
		return p.parenthesize(fmt.Sprintf("Assign %s", n.Name), n.Value)
	default:
		return p.wrap(fmt.Sprintf("<unknown expr %T>", n))
	}
}

func (p *printer) stmt(s Statement) string {
	switch n := s.Stmt.(type) {
	case ExprStmt:
		return p.expr(n.Expr)
	case Print:
		return p.parenthesize("Print", n.Expr)
	case Read:
		return p.wrap(fmt.Sprintf("(Read %s)", n.VariableName))
	case Assert:
		return p.parenthesize("Assert", n.Expr)
	case VariableDefinition:
		if n.Initializer != nil {
			return p.parenthesize(fmt.Sprintf("Var %s:%s", n.Name, n.DeclaredType), *n.Initializer)
		}
		return p.wrap(fmt.Sprintf("(Var %s:%s)", n.Name, n.DeclaredType))
	case Forloop:
		var b strings.Builder
		b.WriteString(p.parenthesize(fmt.Sprintf("For %s", n.VariableName), n.From, n.To))
		for _, body := range n.Body {
			b.WriteString(p.stmt(body))
		}
		return b.String()
	default:
		return p.wrap(fmt.Sprintf("<unknown stmt %T>", n))
	}
}
