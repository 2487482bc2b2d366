// Package diag defines the shared diagnostic model consumed by the lexer,
// parser and interpreter. Every error the pipeline can produce is a closed,
// typed value carrying one or more labelled source spans plus an optional
// help string - never a bare formatted string with a location spliced in.
// Rendering those spans against source text (colour, carets, line numbers)
// is the front-end's job; this package stops at the structured value.
package diag

import "github.com/minipl-lang/minipl/internal/span"

// Label attaches a short message to a single span, e.g. "expected `:=`,
// found `=`" pointing at the offending token.
type Label struct {
	Span    span.Span
	Message string
}

// Diagnostic is implemented by every lexing, parsing and runtime error kind.
type Diagnostic interface {
	error
	// Kind is the stable, closed-set name of this diagnostic (e.g.
	// "VariableReDeclaration"), suitable for switches and for tests that
	// assert on error identity rather than message text.
	Kind() string
	// Labels returns the spans a renderer needs, each with its own
	// sub-message. The lexer, parser and runtime errors each return exactly
	// one label.
	Labels() []Label
	// Help is an optional suggestion string, empty when there is none.
	Help() string
}

// Labels builds a single-element Label slice; a convenience for the common
// one-span case.
func Labels(sp span.Span, message string) []Label {
	return []Label{{Span: sp, Message: message}}
}
