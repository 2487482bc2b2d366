// Package token defines the lexical token model for Mini-PL: a closed set
// of token kinds (the "RawToken" union) paired with a source span to form a
// Token. Go has no tagged unions, so the payload fields that only some kinds
// use (Number, Text, Identifier name, Error message) simply sit unused on
// every other kind - callers switch on Kind before touching them.
package token

import (
	"fmt"

	"github.com/minipl-lang/minipl/internal/span"
)

// Kind identifies which lexeme a Token represents.
type Kind int

const (
	// EOF terminates every token stream, with a zero-length span at the
	// end of the source.
	EOF Kind = iota
	// Error wraps a recoverable lexical defect; Str carries the message.
	Error

	// Ignorables, elided from the stream unless the lexer runs in verbose mode.
	Whitespace
	Comment

	// Single-character operators.
	And       // &
	Bang      // !
	Colon     // :
	Equal     // =
	Less      // <
	Minus     // -
	ParenLeft // (
	ParenRight
	Plus
	Semicolon
	Slash
	Star

	// Multi-character operators.
	Assign // :=
	Range  // ..

	// Literals.
	Number     // i64, stored in Token.Int
	Text       // string content, stored in Token.Str
	Identifier // variable/other name, stored in Token.Str

	// Keywords.
	Assert
	Bool
	Do
	End
	False
	For
	In
	Int
	Print
	Read
	String
	True
	Var
)

// Keywords maps the reserved words of Mini-PL to their token kind. Anything
// outside this table that still scans as an identifier lexeme is a Kind of
// Identifier.
var Keywords = map[string]Kind{
	"assert": Assert,
	"bool":   Bool,
	"do":     Do,
	"end":    End,
	"false":  False,
	"for":    For,
	"in":     In,
	"int":    Int,
	"print":  Print,
	"read":   Read,
	"string": String,
	"true":   True,
	"var":    Var,
}

// symbols gives the fixed source text of every kind whose lexeme never
// varies (operators and keywords). Literals, Error, EOF and the ignorables
// are excluded; their text is the slice of source they were scanned from.
var symbols = map[Kind]string{
	And: "&", Bang: "!", Colon: ":", Equal: "=", Less: "<", Minus: "-",
	ParenLeft: "(", ParenRight: ")", Plus: "+", Semicolon: ";", Slash: "/", Star: "*",
	Assign: ":=", Range: "..",
	Assert: "assert", Bool: "bool", Do: "do", End: "end", False: "false",
	For: "for", In: "in", Int: "int", Print: "print", Read: "read",
	String: "string", True: "true", Var: "var",
}

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Error:
		return "Error"
	case Whitespace:
		return "Whitespace"
	case Comment:
		return "Comment"
	case Number:
		return "Number"
	case Text:
		return "Text"
	case Identifier:
		return "Identifier"
	default:
		if s, ok := symbols[k]; ok {
			return s
		}
		return "Unknown"
	}
}

// Token is a RawToken Kind paired with the span it was scanned from, plus
// whichever payload field that Kind uses.
type Token struct {
	Kind Kind
	Span span.Span

	// Int holds the decoded value for Kind == Number.
	Int int64
	// Str holds the decoded value for Kind == Text or Identifier, and the
	// human-readable message for Kind == Error.
	Str string
}

// New constructs a payload-less token (operators, keywords, EOF, ignorables).
func New(kind Kind, sp span.Span) Token {
	return Token{Kind: kind, Span: sp}
}

// NewNumber constructs a Number token.
func NewNumber(n int64, sp span.Span) Token {
	return Token{Kind: Number, Span: sp, Int: n}
}

// NewText constructs a Text or Identifier token, or an Error token carrying
// a diagnostic message.
func NewText(kind Kind, s string, sp span.Span) Token {
	return Token{Kind: kind, Span: sp, Str: s}
}

// IsError reports whether this token is a recoverable lexical error.
func (t Token) IsError() bool {
	return t.Kind == Error
}

// Lexeme returns the token's display text: the fixed symbol for operators
// and keywords, or the decoded payload for literals and errors.
func (t Token) Lexeme() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("%d", t.Int)
	case Text, Identifier, Error:
		return t.Str
	default:
		if s, ok := symbols[t.Kind]; ok {
			return s
		}
		return t.Kind.String()
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)@%s", t.Kind, t.Lexeme(), t.Span)
}
