package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minipl-lang/minipl/internal/lexer"
	"github.com/minipl-lang/minipl/internal/token"
)

func lexCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "lex <path>",
		Short: "Run the lexer and print a labelled token report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			toks, err := lexer.Scan(src, verbose, logger)
			if err != nil {
				return err
			}
			printTokenReport(cmd, src, toks, verbose)
			return nil
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "include whitespace, comments, semicolons, and EOF in the report")
	return cmd
}

func printTokenReport(cmd *cobra.Command, src string, toks []token.Token, verbose bool) {
	out := cmd.OutOrStdout()
	for _, t := range toks {
		if !verbose && (t.Kind == token.Semicolon || t.Kind == token.EOF) {
			continue
		}
		if t.IsError() {
			fmt.Fprintln(out, renderLexError(src, t))
			continue
		}
		fmt.Fprintf(out, "%-12s %-10s %q\n", t.Span.String(), t.Kind.String(), t.Lexeme())
	}
}

func renderLexError(src string, t token.Token) string {
	line, col := lineCol(src, t.Span.Start)
	return fmt.Sprintf("%s error at %d:%d: %s", t.Span.String(), line, col, t.Str)
}
