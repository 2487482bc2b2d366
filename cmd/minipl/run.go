package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/minipl-lang/minipl/internal/cache"
	"github.com/minipl-lang/minipl/internal/config"
	"github.com/minipl-lang/minipl/internal/diag"
	"github.com/minipl-lang/minipl/internal/interp"
	"github.com/minipl-lang/minipl/internal/lexer"
	"github.com/minipl-lang/minipl/internal/parser"
	"github.com/minipl-lang/minipl/internal/token"
	"github.com/minipl-lang/minipl/internal/watch"
)

// toolchainVersion is stamped at release time; a dev build leaves it
// unset and config.Load simply skips the minimum-version check.
var toolchainVersion = ""

func runCmd() *cobra.Command {
	var watchFlag bool
	var configPath string
	cmd := &cobra.Command{
		Use:   "run <path>",
		Short: "Run the full lex, parse, and interpret pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			cfg, err := config.Load(configPath, toolchainVersion)
			if err != nil {
				return err
			}

			if !watchFlag {
				return runOnce(cmd, path, cfg)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return watch.Run(ctx, path, cfg.WatchDebounce, logger, func() {
				if err := runOnce(cmd, path, cfg); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&watchFlag, "watch", false, "re-run on every save")
	cmd.Flags().StringVar(&configPath, "config", "minipl.json", "path to an optional project config file")
	return cmd
}

func runOnce(cmd *cobra.Command, path string, cfg config.Config) error {
	src, err := readSource(path)
	if err != nil {
		return err
	}

	c, cacheErr := cache.Open(filepath.Join(os.TempDir(), "minipl-cache"))
	var toks []token.Token
	if cacheErr == nil {
		if entry, ok := c.Get(src); ok {
			logger.Debug("lexer cache hit", "path", path)
			toks = entry.Tokens
		}
	}
	if toks == nil {
		toks, err = lexer.Scan(src, false, logger)
		if err != nil {
			return err
		}
		if cacheErr == nil {
			_ = c.Put(src, cache.Entry{Tokens: toks})
		}
	}

	clean := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.IsError() {
			fmt.Fprintln(cmd.ErrOrStderr(), renderLexError(src, t))
			return errLexicalErrors
		}
		clean = append(clean, t)
	}

	stmts, err := parser.Parse(clean, logger)
	if err != nil {
		if d, ok := err.(diag.Diagnostic); ok {
			return fmt.Errorf("%s", renderDiagnostic(src, d))
		}
		return err
	}

	ctx := interp.New(os.Stdin, cmd.OutOrStdout(), logger)
	ctx.FlushOnAssertFailure = cfg.FlushOnAssertFailure
	if err := ctx.Eval(stmts); err != nil {
		if d, ok := err.(diag.Diagnostic); ok {
			return fmt.Errorf("%s", renderDiagnostic(src, d))
		}
		return err
	}
	return nil
}
