package main

import (
	"errors"
	"fmt"

	"github.com/minipl-lang/minipl/internal/ast"
	"github.com/minipl-lang/minipl/internal/lexer"
	"github.com/minipl-lang/minipl/internal/parser"
	"github.com/minipl-lang/minipl/internal/token"
)

// errLexicalErrors reports that one or more recoverable lexical errors
// were found; the caller should not proceed to parsing.
var errLexicalErrors = errors.New("source contains lexical errors")

// lexAndParse runs the lexer, surfaces any recoverable lexical errors it
// folded into Error tokens, and - only if there were none - feeds the
// remaining token stream to the parser. This mirrors the propagation rule
// that the parser is never handed an Error token.
func lexAndParse(src string) ([]ast.Statement, error) {
	toks, err := lexer.Scan(src, false, logger)
	if err != nil {
		return nil, err
	}

	clean := make([]token.Token, 0, len(toks))
	var lexErrs []token.Token
	for _, t := range toks {
		if t.IsError() {
			lexErrs = append(lexErrs, t)
			continue
		}
		clean = append(clean, t)
	}
	if len(lexErrs) > 0 {
		for _, t := range lexErrs {
			fmt.Println(renderLexError(src, t))
		}
		return nil, errLexicalErrors
	}

	return parser.Parse(clean, logger)
}
