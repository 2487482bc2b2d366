package interp

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/minipl-lang/minipl/internal/lexer"
	"github.com/minipl-lang/minipl/internal/parser"
)

func run(t *testing.T, src, stdin string) (string, error) {
	t.Helper()
	toks, err := lexer.Scan(src, false, nil)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	stmts, err := parser.Parse(toks, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	in := New(strings.NewReader(stdin), &out, slog.New(slog.DiscardHandler))
	err = in.Eval(stmts)
	return out.String(), err
}

// flushTrackingWriter records whether Flush was called, so tests can assert
// on the FlushOnAssertFailure behavior without a real buffered stream.
type flushTrackingWriter struct {
	bytes.Buffer
	flushed bool
}

func (w *flushTrackingWriter) Flush() error {
	w.flushed = true
	return nil
}

func TestAssertFailureFlushesWhenConfigured(t *testing.T) {
	toks, err := lexer.Scan(`print "x"; assert false;`, false, nil)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	stmts, err := parser.Parse(toks, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out := &flushTrackingWriter{}
	in := New(strings.NewReader(""), out, slog.New(slog.DiscardHandler))
	in.FlushOnAssertFailure = true
	if err := in.Eval(stmts); err == nil {
		t.Fatal("expected AssertionFailed")
	}
	if !out.flushed {
		t.Fatal("expected Stdout to be flushed before the assert error propagated")
	}
}

func TestAssertFailureDoesNotFlushByDefault(t *testing.T) {
	toks, err := lexer.Scan(`assert false;`, false, nil)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	stmts, err := parser.Parse(toks, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	out := &flushTrackingWriter{}
	in := New(strings.NewReader(""), out, slog.New(slog.DiscardHandler))
	if err := in.Eval(stmts); err == nil {
		t.Fatal("expected AssertionFailed")
	}
	if out.flushed {
		t.Fatal("expected no flush when FlushOnAssertFailure is unset")
	}
}

func TestScenarioA_PrecedenceAndArithmetic(t *testing.T) {
	out, err := run(t, `var x : int := 1 + 2 * 3; print x;`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7" {
		t.Fatalf("got %q, want %q", out, "7")
	}
}

func TestScenarioB_StringConcatenation(t *testing.T) {
	out, err := run(t, `var s : string := "Hello, " + "world"; print s;`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hello, world" {
		t.Fatalf("got %q", out)
	}
}

func TestScenarioC_ForLoopIterationOrder(t *testing.T) {
	out, err := run(t, `var i : int; for i in 0..3 do print i; end for;`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0123" {
		t.Fatalf("got %q", out)
	}
}

func TestScenarioD_AssertTrueProducesNoOutput(t *testing.T) {
	out, err := run(t, `var x : int := 1; assert x = 1;`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
}

func TestScenarioE_AssertFalseFails(t *testing.T) {
	_, err := run(t, `var x : int := 1; assert x = 2;`, "")
	rerr, ok := err.(*Error)
	if !ok || rerr.Kind() != "AssertionFailed" {
		t.Fatalf("expected AssertionFailed, got %v", err)
	}
}

func TestScenarioF_VariableRedeclaration(t *testing.T) {
	_, err := run(t, `var x : int := 1; var x : int := 2;`, "")
	rerr, ok := err.(*Error)
	if !ok || rerr.Kind() != "VariableReDeclaration" {
		t.Fatalf("expected VariableReDeclaration, got %v", err)
	}
}

func TestScenarioH_PlusTypeMismatch(t *testing.T) {
	_, err := run(t, `1 + "a";`, "")
	rerr, ok := err.(*Error)
	if !ok || rerr.Kind() != "PlusTypeMismatch" {
		t.Fatalf("expected PlusTypeMismatch, got %v", err)
	}
}

func TestPrecedenceExpressions(t *testing.T) {
	cases := map[string]string{
		`print 1 + 2 * 3;`:     "7",
		`print !true = false;`: "true",
		`print 1 < 2 & 2 < 3;`: "true",
	}
	for src, want := range cases {
		out, err := run(t, src, "")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", src, err)
		}
		if out != want {
			t.Fatalf("%s: got %q, want %q", src, out, want)
		}
	}
}

func TestForLoopIterationCount(t *testing.T) {
	out, err := run(t, `var i : int; var n : int := 0; for i in 1..5 do n := n + 1; end for; print n;`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5" {
		t.Fatalf("expected 5 iterations, got %q", out)
	}
}

func TestAssertNonBooleanIsNotTruthy(t *testing.T) {
	_, err := run(t, `assert 1;`, "")
	rerr, ok := err.(*Error)
	if !ok || rerr.Kind() != "AssertExprNotTruthy" {
		t.Fatalf("expected AssertExprNotTruthy, got %v", err)
	}
}

func TestUndeclaredVariableLookupFails(t *testing.T) {
	_, err := run(t, `print missing;`, "")
	rerr, ok := err.(*Error)
	if !ok || rerr.Kind() != "VariableGetFailed" {
		t.Fatalf("expected VariableGetFailed, got %v", err)
	}
}

func TestAssignTypeMismatchFails(t *testing.T) {
	_, err := run(t, `var x : int := 1; x := "oops";`, "")
	rerr, ok := err.(*Error)
	if !ok || rerr.Kind() != "VariableAssignTypeMismatch" {
		t.Fatalf("expected VariableAssignTypeMismatch, got %v", err)
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := run(t, `print 1 / 0;`, "")
	rerr, ok := err.(*Error)
	if !ok || rerr.Kind() != "DivisionByZero" {
		t.Fatalf("expected DivisionByZero, got %v", err)
	}
}

func TestForLoopEndLessThanStartFails(t *testing.T) {
	_, err := run(t, `var i : int; for i in 5..1 do print i; end for;`, "")
	rerr, ok := err.(*Error)
	if !ok || rerr.Kind() != "ForEndLarger" {
		t.Fatalf("expected ForEndLarger, got %v", err)
	}
}

func TestReadCoercesToDeclaredVariableType(t *testing.T) {
	out, err := run(t, `var x : int; read x; print x + 1;`, "41\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "42" {
		t.Fatalf("got %q", out)
	}
}

func TestDefaultValuesByDeclaredType(t *testing.T) {
	out, err := run(t, `var n : int; var s : string; var b : bool; print n; print s; print b;`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0false" {
		t.Fatalf("got %q", out)
	}
}
