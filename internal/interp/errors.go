package interp

import (
	"fmt"

	"github.com/minipl-lang/minipl/internal/diag"
	"github.com/minipl-lang/minipl/internal/span"
)

// Error is the closed set of runtime diagnostics raised while evaluating a
// parsed program. Every failure site below constructs one through an
// errXxx helper, so Kind() always matches a documented taxonomy entry.
type Error struct {
	kind    string
	span    span.Span
	message string
	help    string
}

func (e *Error) Error() string        { return e.message }
func (e *Error) Kind() string         { return e.kind }
func (e *Error) Help() string         { return e.help }
func (e *Error) Labels() []diag.Label { return diag.Labels(e.span, e.message) }

var _ diag.Diagnostic = (*Error)(nil)

func errAsNumericFailed(sp span.Span, got *Object) error {
	return &Error{kind: "AsNumericFailed", span: sp,
		message: fmt.Sprintf("expected a numeric value, got %s", got.typeName())}
}

func errAsBooleanFailed(sp span.Span, got *Object) error {
	return &Error{kind: "AsBooleanFailed", span: sp,
		message: fmt.Sprintf("expected a boolean value, got %s", got.typeName())}
}

func errAsTextFailed(sp span.Span, got *Object) error {
	return &Error{kind: "AsTextFailed", span: sp,
		message: fmt.Sprintf("expected a text value, got %s", got.typeName())}
}

func errPlusTypeMismatch(sp span.Span, left, right *Object) error {
	return &Error{kind: "PlusTypeMismatch", span: sp,
		message: fmt.Sprintf("'+' requires Number+Number or Text+Text, got %s+%s", left.typeName(), right.typeName()),
		help:    "only numbers and strings can be combined with '+'"}
}

func errEqualTypeMismatch(sp span.Span, left, right *Object) error {
	return &Error{kind: "EqualTypeMismatch", span: sp,
		message: fmt.Sprintf("'=' requires Number=Number or Text=Text, got %s=%s", left.typeName(), right.typeName()),
		help:    "booleans are not comparable with '='"}
}

func errLessTypeMismatch(sp span.Span, left, right *Object) error {
	return &Error{kind: "LessTypeMismatch", span: sp,
		message: fmt.Sprintf("'<' requires Number<Number or Text<Text, got %s<%s", left.typeName(), right.typeName())}
}

func errUnexpectedBinaryOperator(sp span.Span, op string) error {
	return &Error{kind: "UnexpectedBinaryOperator", span: sp,
		message: fmt.Sprintf("unexpected binary operator %s", op)}
}

func errUnexpectedLiteral(sp span.Span) error {
	return &Error{kind: "UnexpectedLiteral", span: sp,
		message: "unexpected literal token"}
}

func errUnexpectedLogicalOperator(sp span.Span, op string) error {
	return &Error{kind: "UnexpectedLogicalOperator", span: sp,
		message: fmt.Sprintf("unexpected logical operator %s", op)}
}

func errUnexpectedUnaryOperator(sp span.Span, op string) error {
	return &Error{kind: "UnexpectedUnaryOperator", span: sp,
		message: fmt.Sprintf("unexpected unary operator %s", op)}
}

func errAssertExprNotTruthy(sp span.Span) error {
	return &Error{kind: "AssertExprNotTruthy", span: sp,
		message: "assert statement must evaluate to a boolean"}
}

func errAssertionFailed(sp span.Span) error {
	return &Error{kind: "AssertionFailed", span: sp,
		message: "assertion failed"}
}

func errForStartNonNumeric(sp span.Span) error {
	return &Error{kind: "ForStartNonNumeric", span: sp,
		message: "for loop start must be numeric"}
}

func errForEndNonNumeric(sp span.Span) error {
	return &Error{kind: "ForEndNonNumeric", span: sp,
		message: "for loop end must be numeric"}
}

func errForEndLarger(sp span.Span) error {
	return &Error{kind: "ForEndLarger", span: sp,
		message: "for loop end must be at least the start"}
}

func errForBadAssignment(sp span.Span) error {
	return &Error{kind: "ForBadAssignment", span: sp,
		message: "could not assign the loop variable during iteration"}
}

func errPrintCouldNotFlush(sp span.Span) error {
	return &Error{kind: "PrintCouldNotFlush", span: sp,
		message: "could not flush standard output after print"}
}

func errReadLineFailed(sp span.Span) error {
	return &Error{kind: "ReadLineFailed", span: sp,
		message: "failed to read a line from standard input"}
}

func errReadParseIntFailed(sp span.Span) error {
	return &Error{kind: "ReadParseIntFailed", span: sp,
		message: "could not parse the read line into an int"}
}

func errReadParseBoolFailed(sp span.Span) error {
	return &Error{kind: "ReadParseBoolFailed", span: sp,
		message: "could not parse the read line into a boolean"}
}

func errReadNothing(sp span.Span) error {
	return &Error{kind: "ReadNothing", span: sp,
		message: "cannot read into a variable that has no value yet"}
}

func errVariableReDeclaration(sp span.Span, name string) error {
	return &Error{kind: "VariableReDeclaration", span: sp,
		message: fmt.Sprintf("variable %q is already declared", name)}
}

func errVariableAssignToUndeclared(sp span.Span, name string) error {
	return &Error{kind: "VariableAssignToUndeclared", span: sp,
		message: fmt.Sprintf("cannot assign to undeclared variable %q", name)}
}

func errVariableAssignTypeMismatch(sp span.Span, name, expected, got string) error {
	return &Error{kind: "VariableAssignTypeMismatch", span: sp,
		message: fmt.Sprintf("cannot assign %s value to %q, which holds a %s value", got, name, expected)}
}

func errVariableGetFailed(sp span.Span, name, help string) error {
	return &Error{kind: "VariableGetFailed", span: sp,
		message: fmt.Sprintf("undefined variable %q", name),
		help:    help}
}

func errDivisionByZero(sp span.Span) error {
	return &Error{kind: "DivisionByZero", span: sp,
		message: "division by zero"}
}
