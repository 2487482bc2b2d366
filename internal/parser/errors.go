package parser

import (
	"fmt"

	"github.com/minipl-lang/minipl/internal/diag"
	"github.com/minipl-lang/minipl/internal/span"
	"github.com/minipl-lang/minipl/internal/token"
)

// Error is the closed set of parse-time diagnostics. Every parser failure
// site constructs one of these through the errXxx constructors below, so
// the Kind string always matches one of the documented taxonomy entries.
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

func errNothingToParse(sp span.Span) error {
	return &Error{kind: "NothingToParse", span: sp,
		message: "nothing to parse; source contained only ignorable tokens"}
}

func errOutOfTokens(sp span.Span) error {
	return &Error{kind: "OutOfTokens", span: sp,
		message: "ran out of tokens while parsing"}
}

func errMissingParen(sp span.Span) error {
	return &Error{kind: "MissingParen", span: sp,
		message: "expected ')' after this grouping"}
}

func errMissingSemicolon(sp span.Span) error {
	return &Error{kind: "MissingSemicolon", span: sp,
		message: "expected ';' after statement"}
}

func errExpectedExpression(sp span.Span, got token.Token) error {
	return &Error{kind: "ExpectedExpression", span: sp,
		message: fmt.Sprintf("expected an expression, found %s", got.Kind)}
}

func errExpectedIdentifier(sp span.Span, got token.Token) error {
	return &Error{kind: "ExpectedIdentifier", span: sp,
		message: fmt.Sprintf("expected an identifier, found %s", got.Kind)}
}

func errExpectedTypeAnnotation(sp span.Span, got token.Token) error {
	return &Error{kind: "ExpectedTypeAnnotation", span: sp,
		message: fmt.Sprintf("expected a type annotation (bool, int, or string), found %s", got.Kind)}
}

func errExpectedAssignFoundToken(sp span.Span, got token.Token) error {
	return &Error{kind: "ExpectedAssignFoundToken", span: sp,
		message: fmt.Sprintf("expected ':=' or ';', found %s", got.Kind)}
}

func errExpectedAssignFoundEqual(sp span.Span) error {
	return &Error{kind: "ExpectedAssignFoundEqual", span: sp,
		message: "expected ':=', found '='",
		help:    "use the assignment operator ':=' instead of '=' for declaring a variable"}
}

func errAssignToNonVariable(sp span.Span) error {
	return &Error{kind: "AssignToNonVariable", span: sp,
		message: "left-hand side of ':=' is not a variable",
		help:    "usage: variable_name := new_value"}
}

func errReadToNonVariable(sp span.Span, got token.Token) error {
	return &Error{kind: "ReadToNonVariable", span: sp,
		message: fmt.Sprintf("expected a variable name after 'read', found %s", got.Kind),
		help:    "usage: read variable_name"}
}

func errForMissingVariable(sp span.Span, got token.Token) error {
	return &Error{kind: "ForMissingVariable", span: sp,
		message: fmt.Sprintf("expected a loop variable name, found %s", got.Kind),
		help:    forUsage}
}

func errForMissingIn(sp span.Span, got token.Token) error {
	return &Error{kind: "ForMissingIn", span: sp,
		message: fmt.Sprintf("expected keyword 'in', found %s", got.Kind),
		help:    forUsage}
}

func errForMissingRange(sp span.Span, got token.Token) error {
	return &Error{kind: "ForMissingRange", span: sp,
		message: fmt.Sprintf("expected range syntax '..', found %s", got.Kind),
		help:    forUsage}
}

func errForMissingDo(sp span.Span, got token.Token) error {
	return &Error{kind: "ForMissingDo", span: sp,
		message: fmt.Sprintf("expected keyword 'do', found %s", got.Kind),
		help:    forUsage}
}

func errEndMissingFor(sp span.Span, got token.Token) error {
	return &Error{kind: "EndMissingFor", span: sp,
		message: fmt.Sprintf("expected keyword 'for' after 'end', found %s", got.Kind),
		help:    forUsage}
}

const forUsage = "usage: for x in a..b do ... end for;"
