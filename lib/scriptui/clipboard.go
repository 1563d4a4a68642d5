// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/muesli/termenv"
)

// ClipboardWriter writes text to the clipboard. A returned error means
// the text did not reach any clipboard; the model reports it in the
// status bar and skips the "Copied!" tooltip.
type ClipboardWriter func(text string) error

// NewSystemClipboard returns the production clipboard writer.
//
// It writes through the platform clipboard (xclip/xsel/wl-copy,
// pbcopy, or the Windows API) first. When that is unavailable, as over
// SSH or on a headless host, it falls back to an OSC 52 escape written
// to the controlling terminal, which most terminal emulators forward to
// the local clipboard. OSC 52 gives no delivery acknowledgment, so the
// fallback only fails when the terminal cannot be opened.
func NewSystemClipboard(logger *slog.Logger) ClipboardWriter {
	return func(text string) error {
		var systemErr error
		if clipboard.Unsupported {
			systemErr = errors.New("no system clipboard utility available")
		} else {
			systemErr = clipboard.WriteAll(text)
		}
		if systemErr == nil {
			return nil
		}

		if err := writeOSC52(text); err != nil {
			logger.Warn("clipboard write failed",
				"system_error", systemErr,
				"osc52_error", err,
			)
			return fmt.Errorf("clipboard unavailable: %w", errors.Join(systemErr, err))
		}
		logger.Debug("system clipboard unavailable, used OSC 52", "error", systemErr)
		return nil
	}
}

// writeOSC52 writes the clipboard escape directly to /dev/tty, bypassing
// bubbletea's managed output. The sequence has no screen effect, so it
// is safe to interleave with the renderer.
//
// Inside tmux the sequence is sent twice: wrapped in a DCS passthrough
// (for allow-passthrough configurations) and bare (for set-clipboard
// configurations, where tmux intercepts and forwards it). Duplicate
// clipboard sets are harmless.
func writeOSC52(text string) error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer tty.Close()

	terminal := os.Getenv("TERM")
	if os.Getenv("TMUX") != "" || strings.HasPrefix(terminal, "tmux") {
		if _, err := osc52.New(text).Tmux().WriteTo(tty); err != nil {
			return err
		}
	}

	// termenv wraps the sequence for GNU screen when TERM says so.
	termenv.NewOutput(tty).Copy(text)
	return nil
}
