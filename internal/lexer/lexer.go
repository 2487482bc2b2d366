// Package lexer turns Mini-PL source text into a flat sequence of tokens.
// It is a single left-to-right byte scanner: every scanXxx helper consumes
// one maximal lexeme starting at the current position and returns the
// Token for it. Recoverable defects (a bad escape, a stray dot, an unknown
// byte) are folded into Error tokens so the caller never has to special
// case a partial scan; only running out of input mid-lexeme or an integer
// literal that overflows i64 abort scanning outright.
package lexer

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/minipl-lang/minipl/internal/span"
	"github.com/minipl-lang/minipl/internal/token"
)

type lexer struct {
	src    string
	pos    int
	logger *slog.Logger
}

// Scan lexes src into a Token sequence terminated by an EOF token. When
// verbose is false, Whitespace and Comment tokens are elided from the
// result; when true they are preserved, which is what the `lex --verbose`
// front-end subcommand and the round-trip invariant (concatenating every
// lexeme reproduces src) both rely on. logger may be nil; pass
// slog.Default() or a level-gated logger to trace token production.
func Scan(src string, verbose bool, logger *slog.Logger) ([]token.Token, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}
	l := &lexer{src: src, logger: logger}

	var out []token.Token
	for l.pos < len(l.src) {
		tok, err := l.scanOne()
		if err != nil {
			return nil, err
		}
		logger.Debug("scanned token", "kind", tok.Kind.String(), "span", tok.Span.String())
		if verbose || (tok.Kind != token.Whitespace && tok.Kind != token.Comment) {
			out = append(out, tok)
		}
	}
	out = append(out, token.New(token.EOF, span.New(len(l.src), len(l.src))))
	return out, nil
}

// discard implements io.Writer by dropping everything; used as the sink
// for the default, silent logger so Scan never allocates a real handler
// when the caller doesn't want one.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func (l *lexer) scanOne() (token.Token, error) {
	start := l.pos
	c := l.src[l.pos]

	switch {
	case c == '&':
		l.pos++
		return token.New(token.And, span.New(start, l.pos)), nil
	case c == '!':
		l.pos++
		return token.New(token.Bang, span.New(start, l.pos)), nil
	case c == '<':
		l.pos++
		return token.New(token.Less, span.New(start, l.pos)), nil
	case c == '-':
		l.pos++
		return token.New(token.Minus, span.New(start, l.pos)), nil
	case c == '(':
		l.pos++
		return token.New(token.ParenLeft, span.New(start, l.pos)), nil
	case c == ')':
		l.pos++
		return token.New(token.ParenRight, span.New(start, l.pos)), nil
	case c == '+':
		l.pos++
		return token.New(token.Plus, span.New(start, l.pos)), nil
	case c == ';':
		l.pos++
		return token.New(token.Semicolon, span.New(start, l.pos)), nil
	case c == '*':
		l.pos++
		return token.New(token.Star, span.New(start, l.pos)), nil
	case c == '=':
		l.pos++
		return token.New(token.Equal, span.New(start, l.pos)), nil
	case c == ':':
		return l.scanColon(), nil
	case c == '.':
		return l.scanDot(), nil
	case c == '/':
		return l.scanSlash()
	case isDigit(c):
		return l.scanNumber()
	case c == '"':
		return l.scanString(), nil
	case isASCIIWhitespace(c):
		return l.scanWhitespace(), nil
	case isASCIILetter(c):
		return l.scanIdentifier(), nil
	default:
		l.pos++
		return token.NewText(token.Error, "Unknown token "+string(c), span.New(start, l.pos)), nil
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (l *lexer) scanColon() token.Token {
	start := l.pos
	l.pos++
	if l.pos < len(l.src) && l.src[l.pos] == '=' {
		l.pos++
		return token.New(token.Assign, span.New(start, l.pos))
	}
	return token.New(token.Colon, span.New(start, l.pos))
}

func (l *lexer) scanDot() token.Token {
	start := l.pos
	l.pos++
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		return token.New(token.Range, span.New(start, l.pos))
	}
	return token.NewText(token.Error, "Expected another '.' for Range operator", span.New(start, l.pos))
}

func (l *lexer) scanSlash() (token.Token, error) {
	start := l.pos
	l.pos++ // consume leading '/'

	if l.pos < len(l.src) && l.src[l.pos] == '/' {
		l.pos++
		for l.pos < len(l.src) && l.src[l.pos] != '\n' {
			l.pos++
		}
		return token.New(token.Comment, span.New(start, l.pos)), nil
	}

	if l.pos < len(l.src) && l.src[l.pos] == '*' {
		l.pos++
		depth := 1
		for depth > 0 {
			if l.pos >= len(l.src) {
				return token.Token{}, errOutOfChars(span.New(start, l.pos))
			}
			if l.pos+1 < len(l.src) && l.src[l.pos] == '/' && l.src[l.pos+1] == '*' {
				depth++
				l.pos += 2
				continue
			}
			if l.pos+1 < len(l.src) && l.src[l.pos] == '*' && l.src[l.pos+1] == '/' {
				depth--
				l.pos += 2
				continue
			}
			l.pos++
		}
		return token.New(token.Comment, span.New(start, l.pos)), nil
	}

	return token.New(token.Slash, span.New(start, l.pos)), nil
}

func (l *lexer) scanNumber() (token.Token, error) {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	lexeme := l.src[start:l.pos]
	n, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return token.Token{}, errParseInt(span.New(start, l.pos), lexeme)
	}
	return token.NewNumber(n, span.New(start, l.pos)), nil
}

func (l *lexer) scanIdentifier() token.Token {
	start := l.pos
	for l.pos < len(l.src) && isASCIILetter(l.src[l.pos]) {
		l.pos++
	}
	text := l.src[start:l.pos]
	if kind, ok := token.Keywords[text]; ok {
		return token.New(kind, span.New(start, l.pos))
	}
	return token.NewText(token.Identifier, text, span.New(start, l.pos))
}

func (l *lexer) scanWhitespace() token.Token {
	start := l.pos
	for l.pos < len(l.src) && isASCIIWhitespace(l.src[l.pos]) {
		l.pos++
	}
	return token.New(token.Whitespace, span.New(start, l.pos))
}

func (l *lexer) scanString() token.Token {
	start := l.pos
	l.pos++ // consume opening quote

	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return token.NewText(token.Error, "Unterminated string or unescaped newline", span.New(start, l.pos))
		}
		c := l.src[l.pos]
		switch c {
		case '"':
			l.pos++
			return token.NewText(token.Text, sb.String(), span.New(start, l.pos))
		case '\n':
			return token.NewText(token.Error, "Unterminated string or unescaped newline", span.New(start, l.pos))
		case '\\':
			l.pos++
			if l.pos >= len(l.src) {
				return token.NewText(token.Error, "Unterminated string or unescaped newline", span.New(start, l.pos))
			}
			esc := l.src[l.pos]
			decoded, ok := decodeEscape(esc)
			if !ok {
				l.pos++
				return token.NewText(token.Error, "Unknown character escape sequence", span.New(start, l.pos))
			}
			sb.WriteByte(decoded)
			l.pos++
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}
}

func decodeEscape(c byte) (byte, bool) {
	switch c {
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case 'n':
		return '\n', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	default:
		return 0, false
	}
}
