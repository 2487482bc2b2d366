package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minipl-lang/minipl/internal/ast"
	"github.com/minipl-lang/minipl/internal/diag"
)

func astCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <path>",
		Short: "Run the lexer and parser and print the AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			stmts, err := lexAndParse(src)
			if err != nil {
				if d, ok := err.(diag.Diagnostic); ok {
					return fmt.Errorf("%s", renderDiagnostic(src, d))
				}
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range stmts {
				fmt.Fprintln(out, ast.PrintStatement(s))
			}
			return nil
		},
	}
}
