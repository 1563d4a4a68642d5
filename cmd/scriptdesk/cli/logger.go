// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates the structured logger used before the TUI
// takes over the terminal (config and library loading). When stderr is
// a terminal, uses slog.TextHandler for human-readable output. When
// stderr is piped or redirected, uses slog.JSONHandler so the records
// match the --log-output file format.
func NewCommandLogger() *slog.Logger {
	return newCommandLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
}

func newCommandLogger(output io.Writer, terminal bool) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if terminal {
		handler = slog.NewTextHandler(output, options)
	} else {
		handler = slog.NewJSONHandler(output, options)
	}
	return slog.New(handler)
}
