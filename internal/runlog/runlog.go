// Package runlog sets up the structured logger shared by every minipl
// front-end command, and stamps each invocation with a unique run ID so
// log lines from one `minipl run` can be told apart from another.
package runlog

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// New builds a slog.Logger writing to w (os.Stderr in production, a
// buffer in tests). debug raises the level to Debug; otherwise only Info
// and above are emitted. Every logger carries a "run_id" attribute unique
// to this call, the way a request ID threads through a server's log
// lines.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(handler).With("run_id", uuid.NewString())
}

// FromEnv builds a logger the way the CLI does by default: to stderr,
// with debug gated by the MINIPL_DEBUG environment variable in addition
// to any --debug flag the caller already resolved.
func FromEnv(debug bool) *slog.Logger {
	return New(os.Stderr, debug || os.Getenv("MINIPL_DEBUG") != "")
}
