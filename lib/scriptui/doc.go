// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package scriptui is the interactive terminal front end of scriptdesk.
//
// [Model] is a bubbletea model that maps keyboard, mouse, window and
// timer events onto the plain-data operations of scriptview (navigation,
// search, manual edits, sidebar and swipe) and formstate (placeholder
// values), then draws the resulting document. It owns the two timers:
// the search debounce and the auto-hide of the "Copied!" tooltip. Both
// are restartable one-shot timers, so a new trigger replaces the
// pending expiry.
//
// Copying goes through a [ClipboardWriter]. [NewSystemClipboard] tries
// the platform clipboard first and falls back to an OSC 52 escape on
// the controlling terminal; tests inject a recorder instead.
//
// Background log records (library reloads, clipboard failures) reach
// the status bar through [TUILogHandler].
package scriptui
