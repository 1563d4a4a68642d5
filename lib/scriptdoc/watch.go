// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptdoc

import (
	"context"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/zeebo/blake3"
)

// watchCoalesceDelay is how long the watcher waits after a change event
// before re-reading, so a burst of writes produces a single reload.
const watchCoalesceDelay = 50 * time.Millisecond

// Fingerprint returns the hex BLAKE3 digest of library file content.
func Fingerprint(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Watch follows a library file and sends a freshly parsed Library each
// time its content changes. The channel is closed when ctx is done or
// the watcher fails.
//
// The parent directory is watched rather than the file: editors that
// save by writing a temp file and renaming it replace the inode, which a
// file-level watch would lose. Content that fails to parse is logged
// and skipped; the previous library stays in use.
func Watch(ctx context.Context, path string, logger *slog.Logger) (<-chan *Library, error) {
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	format, err := FormatForPath(absolutePath)
	if err != nil {
		return nil, err
	}

	initial, err := os.ReadFile(absolutePath)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(absolutePath)); err != nil {
		watcher.Close()
		return nil, err
	}

	libraries := make(chan *Library)
	go watchLoop(ctx, watcher, absolutePath, format, Fingerprint(initial), libraries, logger)
	return libraries, nil
}

func watchLoop(
	ctx context.Context,
	watcher *fsnotify.Watcher,
	path string,
	format Format,
	fingerprint string,
	libraries chan<- *Library,
	logger *slog.Logger,
) {
	defer close(libraries)
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("script library watcher error", "path", path, "error", err)

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			// Coalesce the rest of the burst.
			timer := time.NewTimer(watchCoalesceDelay)
		drain:
			for {
				select {
				case <-ctx.Done():
					timer.Stop()
					return
				case _, ok := <-watcher.Events:
					if !ok {
						timer.Stop()
						return
					}
				case <-timer.C:
					break drain
				}
			}

			data, err := os.ReadFile(path)
			if err != nil {
				// Mid-rename the file can be briefly absent; the
				// following Create event retries.
				logger.Debug("script library not readable", "path", path, "error", err)
				continue
			}
			next := Fingerprint(data)
			if next == fingerprint {
				continue
			}

			library, err := Parse(data, format)
			if err != nil {
				logger.Warn("script library reload failed", "path", path, "error", err)
				continue
			}
			fingerprint = next
			logger.Debug("script library parsed", "path", path, "sections", len(library.Sections))

			select {
			case libraries <- library:
			case <-ctx.Done():
				return
			}
		}
	}
}
