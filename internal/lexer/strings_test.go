package lexer

import (
	"testing"

	"github.com/minipl-lang/minipl/internal/token"
)

func TestEmptyString(t *testing.T) {
	toks, err := Scan(`""`, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != token.Text || toks[0].Str != "" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[0].Span.Start != 0 || toks[0].Span.End != 2 {
		t.Fatalf("bad span: %v", toks[0].Span)
	}
}

func TestStringWithEscapes(t *testing.T) {
	toks, err := Scan(`"a\tb\nc\\d\"e\'f"`, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\tb\nc\\d\"e'f"
	if toks[0].Kind != token.Text || toks[0].Str != want {
		t.Fatalf("got %+v, want Str=%q", toks[0], want)
	}
}

func TestStringUnknownEscape(t *testing.T) {
	toks, err := Scan(`"\q"`, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != token.Error {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestStringRawNewlineIsError(t *testing.T) {
	toks, err := Scan("\"unterminated\nrest\"", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != token.Error {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestStringMissingClosingQuote(t *testing.T) {
	toks, err := Scan(`"never closes`, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != token.Error {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestStringAllowsNonASCIIBytes(t *testing.T) {
	toks, err := Scan(`"héllo"`, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != token.Text || toks[0].Str != "héllo" {
		t.Fatalf("got %+v", toks[0])
	}
}
