// Command minipl is the Mini-PL front-end: it reads a source file, runs
// the lexer, parser, and interpreter, and renders whichever stage's
// output (or error) the chosen subcommand asked for.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/minipl-lang/minipl/internal/runlog"
)

var (
	debugFlag bool
	logger    *slog.Logger
)

func main() {
	root := &cobra.Command{
		Use:           "minipl",
		Short:         "Lex, parse, and run Mini-PL programs",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = runlog.FromEnv(debugFlag)
		},
	}
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "raise logging verbosity")

	root.AddCommand(lexCmd(), astCmd(), runCmd(), buildCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
