// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// scriptdesk. Built on bubbletea (Elm architecture), these components
// handle the patterns that do not depend on script content: the color
// theme, ANSI-aware overlay splicing, overlay placement, scrollbars,
// and restartable one-shot timers.
//
// The script viewer in scriptui imports this package for its look and
// its timer mechanics. It owns its own data, layout, and rendering.
package tui
