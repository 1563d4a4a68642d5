// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the command-line plumbing shared by the scriptdesk
// binary: categorized errors with operator hints ([ToolError]), quiet
// non-zero exits ([ExitError]), and the pre-TUI command logger
// ([NewCommandLogger]).
package cli
