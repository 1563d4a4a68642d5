// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptview

import "math"

// Sidebar tracks whether the form sidebar is open. While it is open
// the content area does not scroll.
type Sidebar struct {
	open bool
}

// IsOpen reports the sidebar state.
func (sidebar *Sidebar) IsOpen() bool { return sidebar.open }

// ScrollLocked reports whether content scrolling is suspended.
func (sidebar *Sidebar) ScrollLocked() bool { return sidebar.open }

// Toggle flips the sidebar state.
func (sidebar *Sidebar) Toggle() { sidebar.open = !sidebar.open }

// Open opens the sidebar. Returns false if it was already open.
func (sidebar *Sidebar) Open() bool {
	if sidebar.open {
		return false
	}
	sidebar.open = true
	return true
}

// Close closes the sidebar. Returns false if it was already closed.
func (sidebar *Sidebar) Close() bool {
	if !sidebar.open {
		return false
	}
	sidebar.open = false
	return true
}

// SwipeDirection is the outcome of a horizontal drag.
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeRight
	SwipeLeft
)

// DefaultSwipeThreshold is the horizontal displacement, in logical
// pixels, a drag must exceed to count as a swipe.
const DefaultSwipeThreshold = 100.0

// ClassifySwipe maps a net horizontal displacement to a direction.
// Displacements at or below threshold are not swipes.
func ClassifySwipe(delta, threshold float64) SwipeDirection {
	if math.Abs(delta) <= threshold {
		return SwipeNone
	}
	if delta > 0 {
		return SwipeRight
	}
	return SwipeLeft
}

// ApplySwipe opens the sidebar on a right swipe when closed and closes
// it on a left swipe when open. Any other combination is a no-op.
// Returns whether the state changed.
func (sidebar *Sidebar) ApplySwipe(direction SwipeDirection) bool {
	switch direction {
	case SwipeRight:
		return sidebar.Open()
	case SwipeLeft:
		return sidebar.Close()
	}
	return false
}

// SwipeDetector turns drag start/end positions into swipes.
type SwipeDetector struct {
	// Threshold in logical pixels; zero means DefaultSwipeThreshold.
	Threshold float64

	startX   float64
	tracking bool
}

// Begin records the drag start position.
func (detector *SwipeDetector) Begin(x float64) {
	detector.startX = x
	detector.tracking = true
}

// Tracking reports whether a drag is in progress.
func (detector *SwipeDetector) Tracking() bool { return detector.tracking }

// End finishes the drag at x and classifies it. Without a preceding
// Begin the result is SwipeNone.
func (detector *SwipeDetector) End(x float64) SwipeDirection {
	if !detector.tracking {
		return SwipeNone
	}
	detector.tracking = false
	threshold := detector.Threshold
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return ClassifySwipe(x-detector.startX, threshold)
}
