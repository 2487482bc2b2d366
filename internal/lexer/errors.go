package lexer

import (
	"fmt"

	"github.com/minipl-lang/minipl/internal/diag"
	"github.com/minipl-lang/minipl/internal/span"
)

// Error is the unrecoverable error returned by Scan. Only two kinds exist:
// running out of input mid-lexeme (an unterminated block comment) and an
// integer literal that does not fit in an i64. Every other lexical defect
// is recoverable and comes back embedded as an Error token instead.
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

func errOutOfChars(sp span.Span) error {
	return &Error{
		kind:    "OutOfChars",
		span:    sp,
		message: "out of characters error; lexer expected further input",
		help:    "check for an unterminated block comment",
	}
}

func errParseInt(sp span.Span, lexeme string) error {
	return &Error{
		kind:    "ParseIntError",
		span:    sp,
		message: fmt.Sprintf("could not parse %q into a number (i64)", lexeme),
		help:    "Mini-PL integers must fit in a signed 64-bit integer",
	}
}
