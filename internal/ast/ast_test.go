package ast

import (
	"strings"
	"testing"

	"github.com/minipl-lang/minipl/internal/span"
	"github.com/minipl-lang/minipl/internal/token"
)

func TestBinarySpanUnionContainsOperands(t *testing.T) {
	left := Expression{Expr: Literal{Value: token.NewNumber(1, span.New(0, 1))}, Span: span.New(0, 1)}
	right := Expression{Expr: Literal{Value: token.NewNumber(2, span.New(4, 5))}, Span: span.New(4, 5)}
	bin := Expression{
		Expr: Binary{Left: left, Op: token.New(token.Plus, span.New(2, 3)), Right: right},
		Span: left.Span.Union(right.Span),
	}
	if bin.Span.Start != 0 || bin.Span.End != 5 {
		t.Fatalf("expected union span (0,5), got %v", bin.Span)
	}
	if bin.Span.Start > left.Span.Start || bin.Span.End < right.Span.End {
		t.Fatalf("parent span does not contain children: %v", bin.Span)
	}
}

func TestPrintLiteralAndGrouping(t *testing.T) {
	lit := Expression{Expr: Literal{Value: token.NewNumber(7, span.New(1, 2))}}
	out := PrintExpr(lit)
	if !strings.Contains(out, "7") {
		t.Fatalf("expected literal text in output, got %q", out)
	}

	grouped := Expression{Expr: Grouping{Inner: lit}}
	out = PrintExpr(grouped)
	if !strings.Contains(out, "(Group") {
		t.Fatalf("expected parenthesized Group, got %q", out)
	}
}

func TestPrintBinary(t *testing.T) {
	left := Expression{Expr: Literal{Value: token.NewNumber(1, span.New(0, 1))}}
	right := Expression{Expr: Literal{Value: token.NewNumber(2, span.New(4, 5))}}
	bin := Expression{Expr: Binary{Left: left, Op: token.New(token.Plus, span.New(2, 3)), Right: right}}
	out := PrintExpr(bin)
	if !strings.Contains(out, "(+") {
		t.Fatalf("expected operator kind in output, got %q", out)
	}
}

func TestPrintVariableDefinitionWithoutInitializer(t *testing.T) {
	stmt := Statement{Stmt: VariableDefinition{Name: "x", DeclaredType: NumberType}}
	out := PrintStatement(stmt)
	if !strings.Contains(out, "Var x:int") {
		t.Fatalf("got %q", out)
	}
}
