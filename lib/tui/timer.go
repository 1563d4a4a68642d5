// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimerMsg is delivered when a [Timer] started with [Timer.Start]
// expires. The model passes it back to [Timer.Fired] to learn whether
// it is the current expiry or a superseded one.
type TimerMsg struct {
	Name       string
	Generation uint64
}

// Timer is a restartable one-shot timer for bubbletea models.
//
// bubbletea ticks cannot be cancelled once scheduled, so Timer stamps
// each tick with a generation number instead. Start and Stop advance
// the generation; a tick carrying an older generation is ignored when
// it arrives. Restarting a running timer therefore replaces the
// pending expiry rather than adding a second one.
//
// Timer is a value type and lives inside the model struct.
type Timer struct {
	name       string
	generation uint64
	running    bool
}

// NewTimer creates a stopped timer. The name distinguishes the
// expiries of different timers in one model.
func NewTimer(name string) Timer {
	return Timer{name: name}
}

// Start (re)arms the timer and returns the command that delivers its
// TimerMsg after delay. Any pending expiry is superseded.
func (timer *Timer) Start(delay time.Duration) tea.Cmd {
	timer.generation++
	timer.running = true
	message := TimerMsg{Name: timer.name, Generation: timer.generation}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return message
	})
}

// Stop disarms the timer. A tick already in flight will be ignored.
func (timer *Timer) Stop() {
	timer.generation++
	timer.running = false
}

// Running reports whether an expiry is pending.
func (timer *Timer) Running() bool { return timer.running }

// Fired reports whether message is this timer's current expiry. A
// matching expiry stops the timer.
func (timer *Timer) Fired(message TimerMsg) bool {
	if !timer.running || message.Name != timer.name || message.Generation != timer.generation {
		return false
	}
	timer.running = false
	return true
}
