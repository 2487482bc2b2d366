package parser

import (
	"testing"

	"github.com/minipl-lang/minipl/internal/ast"
	"github.com/minipl-lang/minipl/internal/lexer"
)

func parseSrc(t *testing.T, src string) []ast.Statement {
	t.Helper()
	toks, err := lexer.Scan(src, false, nil)
	if err != nil {
		t.Fatalf("lex(%q): %v", src, err)
	}
	stmts, err := Parse(toks, nil)
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	return stmts
}

func TestVarDeclarationWithInitializer(t *testing.T) {
	stmts := parseSrc(t, `var x : int := 1 + 2;`)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	def, ok := stmts[0].Stmt.(ast.VariableDefinition)
	if !ok {
		t.Fatalf("expected VariableDefinition, got %T", stmts[0].Stmt)
	}
	if def.Name != "x" || def.DeclaredType != ast.NumberType || def.Initializer == nil {
		t.Fatalf("got %+v", def)
	}
}

func TestVarDeclarationWithoutInitializer(t *testing.T) {
	stmts := parseSrc(t, `var x : bool;`)
	def := stmts[0].Stmt.(ast.VariableDefinition)
	if def.Initializer != nil {
		t.Fatalf("expected no initializer, got %+v", def.Initializer)
	}
}

func TestVarDeclarationEqualInsteadOfAssignHelps(t *testing.T) {
	toks, err := lexer.Scan(`var x : int = 1;`, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(toks, nil)
	perr, ok := err.(*Error)
	if !ok || perr.Kind() != "ExpectedAssignFoundEqual" {
		t.Fatalf("expected ExpectedAssignFoundEqual, got %v", err)
	}
}

func TestTermIsLeftAssociative(t *testing.T) {
	stmts := parseSrc(t, `print 1 - 2 - 3;`)
	pr := stmts[0].Stmt.(ast.Print)
	outer, ok := pr.Expr.Expr.(ast.Binary)
	if !ok {
		t.Fatalf("expected top-level Binary, got %T", pr.Expr.Expr)
	}
	// (1 - 2) - 3: the left child must itself be a Binary, the right a Literal
	if _, ok := outer.Left.Expr.(ast.Binary); !ok {
		t.Fatalf("expected left-associative nesting, left was %T", outer.Left.Expr)
	}
	if _, ok := outer.Right.Expr.(ast.Literal); !ok {
		t.Fatalf("expected right operand to be the final literal, got %T", outer.Right.Expr)
	}
}

func TestFactorBindsTighterThanTerm(t *testing.T) {
	stmts := parseSrc(t, `print 1 + 2 * 3;`)
	pr := stmts[0].Stmt.(ast.Print)
	top := pr.Expr.Expr.(ast.Binary)
	if top.Op.Kind.String() != "+" {
		t.Fatalf("expected top-level operator to be '+', got %v", top.Op.Kind)
	}
	if _, ok := top.Right.Expr.(ast.Binary); !ok {
		t.Fatalf("expected right operand to be the '*' group, got %T", top.Right.Expr)
	}
}

func TestGroupingOverridesPrecedence(t *testing.T) {
	stmts := parseSrc(t, `print (1 + 2) * 3;`)
	pr := stmts[0].Stmt.(ast.Print)
	top := pr.Expr.Expr.(ast.Binary)
	if _, ok := top.Left.Expr.(ast.Grouping); !ok {
		t.Fatalf("expected left operand to be a Grouping, got %T", top.Left.Expr)
	}
}

func TestForLoopBody(t *testing.T) {
	stmts := parseSrc(t, `for i in 1..3 do print i; end for;`)
	loop := stmts[0].Stmt.(ast.Forloop)
	if loop.VariableName != "i" || len(loop.Body) != 1 {
		t.Fatalf("got %+v", loop)
	}
}

func TestAssignToNonVariableIsError(t *testing.T) {
	toks, err := lexer.Scan(`1 := 2;`, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(toks, nil)
	perr, ok := err.(*Error)
	if !ok || perr.Kind() != "AssignToNonVariable" {
		t.Fatalf("expected AssignToNonVariable, got %v", err)
	}
}

func TestReadRequiresVariable(t *testing.T) {
	toks, err := lexer.Scan(`read 5;`, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(toks, nil)
	perr, ok := err.(*Error)
	if !ok || perr.Kind() != "ReadToNonVariable" {
		t.Fatalf("expected ReadToNonVariable, got %v", err)
	}
}

func TestMissingSemicolon(t *testing.T) {
	toks, err := lexer.Scan(`print 1`, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(toks, nil)
	perr, ok := err.(*Error)
	if !ok || perr.Kind() != "MissingSemicolon" {
		t.Fatalf("expected MissingSemicolon, got %v", err)
	}
}

func TestMissingParen(t *testing.T) {
	toks, err := lexer.Scan(`print (1 + 2;`, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(toks, nil)
	perr, ok := err.(*Error)
	if !ok || perr.Kind() != "MissingParen" {
		t.Fatalf("expected MissingParen, got %v", err)
	}
}

func TestNothingToParse(t *testing.T) {
	toks, err := lexer.Scan(`   `, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(toks, nil)
	perr, ok := err.(*Error)
	if !ok || perr.Kind() != "NothingToParse" {
		t.Fatalf("expected NothingToParse, got %v", err)
	}
}

func TestSpanUnionCoversWholeStatement(t *testing.T) {
	stmts := parseSrc(t, `var x : int := 1 + 2;`)
	s := stmts[0].Span
	if s.Start != 0 || s.End != len(`var x : int := 1 + 2;`) {
		t.Fatalf("expected span to cover the whole statement, got %v", s)
	}
}
