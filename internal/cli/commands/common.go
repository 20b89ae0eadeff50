// Package commands implements cmd/leapsql-grammar's subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/sqlgrammar/pkg/dialect"
)

// readInput reads SQL text from args[0] if given, else from stdin — the
// same "file arg, fallback to stdin" convention the teacher's render/query
// commands use.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// resolveDialect looks a dialect up by name, defaulting to "ansi".
func resolveDialect(name string) (*dialect.Dialect, error) {
	if name == "" {
		name = "ansi"
	}
	d, ok := dialect.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (known: %v)", name, dialect.List())
	}
	return d, nil
}

// newLogger returns a slog.Logger writing to stderr, at debug level when
// verbose is set (spec ambient-stack note: structured logging in the CLI
// shim, the core stays log-free).
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
