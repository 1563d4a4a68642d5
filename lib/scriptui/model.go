// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptui

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/scriptdesk/lib/formstate"
	"github.com/bureau-foundation/scriptdesk/lib/scriptdoc"
	"github.com/bureau-foundation/scriptdesk/lib/scriptview"
	"github.com/bureau-foundation/scriptdesk/lib/tui"
)

// FocusRegion identifies which part of the screen has keyboard focus.
type FocusRegion int

const (
	// FocusContent means keys select, copy and reset cards.
	FocusContent FocusRegion = iota
	// FocusSearch means keystrokes go to the search input.
	FocusSearch
	// FocusSidebar means keystrokes go to the focused form field in
	// the open sidebar.
	FocusSidebar
	// FocusSpanEdit means keystrokes go to the inline input that
	// replaces a manual-edit span. Enter or Escape commits.
	FocusSpanEdit
)

// Defaults for the zero values of [Options].
const (
	DefaultSearchDebounce  = 300 * time.Millisecond
	DefaultTooltipDuration = 2 * time.Second
	DefaultCellWidth       = 8.0
)

const (
	// noticeDuration is how long clipboard and reload notices stay in
	// the status bar.
	noticeDuration = 3 * time.Second

	// wheelStep is how many lines one mouse wheel notch scrolls.
	wheelStep = 3
)

// Timer names, distinguishing the expiries delivered as tui.TimerMsg.
const (
	searchTimerName  = "search"
	tooltipTimerName = "tooltip"
	noticeTimerName  = "notice"
)

// libraryReloadMsg delivers a reloaded script library from the file
// watcher.
type libraryReloadMsg struct {
	library *scriptdoc.Library
}

// Options configures a Model. Zero values select the defaults.
type Options struct {
	// Library is the script library to display. Required.
	Library *scriptdoc.Library

	// Labels are the fallback texts for empty placeholders.
	Labels formstate.Labels

	// AgentName prefills the agent name field.
	AgentName string

	// SearchDebounce is the idle time before typed search input is
	// applied. Default: 300ms.
	SearchDebounce time.Duration

	// TooltipDuration is how long the "Copied!" tooltip stays up.
	// Default: 2s.
	TooltipDuration time.Duration

	// SwipeThreshold is the drag distance, in logical pixels, that must
	// be exceeded to open or close the sidebar. Default: 100.
	SwipeThreshold float64

	// CellWidth converts terminal columns to logical pixels. Default: 8.
	CellWidth float64

	// Reloads delivers replacement libraries, typically from
	// scriptdoc.Watch. Nil disables live reload.
	Reloads <-chan *scriptdoc.Library

	// Clipboard receives copied card text. Default: the system
	// clipboard with OSC 52 fallback.
	Clipboard ClipboardWriter

	// Logger receives background events. Default: discard.
	Logger *slog.Logger
}

// notice is a transient status bar message.
type notice struct {
	text  string
	level slog.Level

	// structured is copied to the clipboard when the status bar is
	// clicked. Only log records carry it.
	structured string
}

// Model is the top-level bubbletea model for the script viewer.
type Model struct {
	theme     tui.Theme
	keys      KeyMap
	logger    *slog.Logger
	clipboard ClipboardWriter
	reloads   <-chan *scriptdoc.Library

	searchDebounce  time.Duration
	tooltipDuration time.Duration
	cellWidth       float64

	document *scriptview.Document
	form     *formstate.State

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	focusRegion FocusRegion
	sidebar     scriptview.Sidebar
	swipe       scriptview.SwipeDetector

	searchInput textinput.Model
	formInputs  [len(formstate.Fields)]textinput.Model
	formFocus   formstate.Field
	spanInput   textinput.Model

	// selected indexes document.VisibleCards().
	selected     int
	scrollOffset int

	// Header click regions, recomputed on resize and reload.
	navHitRanges []navHitRange

	searchTimer  tui.Timer
	tooltipTimer tui.Timer
	noticeTimer  tui.Timer

	tooltip *tooltipState
	notice  *notice
}

// navHitRange maps a horizontal span of the header row to a section.
type navHitRange struct {
	startX int // Inclusive.
	endX   int // Exclusive.
	navID  string
}

// NewModel builds the viewer for a library. The form state starts
// empty apart from the optional agent name prefill, and the library's
// active section is shown.
func NewModel(options Options) (Model, error) {
	if options.Library == nil {
		return Model{}, fmt.Errorf("scriptui: no script library")
	}
	document, err := scriptview.New(options.Library)
	if err != nil {
		return Model{}, err
	}

	model := Model{
		theme:           tui.DefaultTheme,
		keys:            DefaultKeyMap,
		logger:          options.Logger,
		clipboard:       options.Clipboard,
		reloads:         options.Reloads,
		searchDebounce:  options.SearchDebounce,
		tooltipDuration: options.TooltipDuration,
		cellWidth:       options.CellWidth,
		document:        document,
		form:            formstate.New(options.Labels),
		swipe:           scriptview.SwipeDetector{Threshold: options.SwipeThreshold},
		searchTimer:     tui.NewTimer(searchTimerName),
		tooltipTimer:    tui.NewTimer(tooltipTimerName),
		noticeTimer:     tui.NewTimer(noticeTimerName),
	}
	if model.logger == nil {
		model.logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	if model.clipboard == nil {
		model.clipboard = NewSystemClipboard(model.logger)
	}
	if model.searchDebounce <= 0 {
		model.searchDebounce = DefaultSearchDebounce
	}
	if model.tooltipDuration <= 0 {
		model.tooltipDuration = DefaultTooltipDuration
	}
	if model.cellWidth <= 0 {
		model.cellWidth = DefaultCellWidth
	}

	model.searchInput = newSearchInput(model.theme)
	model.spanInput = newSpanInput(model.theme)
	for _, field := range formstate.Fields {
		model.formInputs[field] = newFormInput(model.theme, model.form.Label(field))
	}

	model.form.Bind(document)
	if options.AgentName != "" {
		model.formInputs[formstate.AgentName].SetValue(options.AgentName)
		model.form.Update(formstate.AgentName, options.AgentName)
	}

	return model, nil
}

// Init implements tea.Model. Starts listening for library reloads when
// a reload channel was provided.
func (model Model) Init() tea.Cmd {
	if model.reloads == nil {
		return nil
	}
	return listenForReload(model.reloads)
}

// listenForReload returns a tea.Cmd that blocks until a library arrives
// on the channel, then delivers it as a libraryReloadMsg. A closed
// channel ends the subscription.
func listenForReload(channel <-chan *scriptdoc.Library) tea.Cmd {
	return func() tea.Msg {
		library, ok := <-channel
		if !ok {
			return nil
		}
		return libraryReloadMsg{library: library}
	}
}

// Update implements tea.Model. Routes keyboard events by focus region
// and dispatches timer, reload and log messages.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if key.Matches(message, model.keys.ForceQuit) {
			return model, tea.Quit
		}
		switch model.focusRegion {
		case FocusSearch:
			return model.handleSearchKeys(message)
		case FocusSidebar:
			return model.handleSidebarKeys(message)
		case FocusSpanEdit:
			return model.handleSpanEditKeys(message)
		}
		return model.handleContentKeys(message)

	case tea.MouseMsg:
		return model.handleMouse(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.resizeInputs()
		model.computeNavHitRanges()
		model.clampScroll()

	case tui.TimerMsg:
		return model.handleTimer(message)

	case libraryReloadMsg:
		return model.handleReload(message.library)

	case clipboardResultMsg:
		return model.handleClipboardResult(message)

	case logCopyResultMsg:
		if message.err != nil {
			return model, model.setNotice(&notice{
				text:  "Copy failed: " + message.err.Error(),
				level: slog.LevelError,
			}, noticeDuration)
		}
		return model, model.setNotice(&notice{text: "Log record copied"}, noticeDuration)

	case logRecordMsg:
		return model, model.setNotice(&notice{
			text:       message.Summary,
			level:      message.Level,
			structured: message.Structured,
		}, logRecordFadeDelay)
	}

	return model, model.forwardToFocusedInput(message)
}

// handleTimer dispatches timer expiries. Stale expiries (superseded by
// a restart) are dropped by the timers themselves.
func (model Model) handleTimer(message tui.TimerMsg) (tea.Model, tea.Cmd) {
	switch {
	case model.searchTimer.Fired(message):
		model.applySearch()
	case model.tooltipTimer.Fired(message):
		model.tooltip = nil
	case model.noticeTimer.Fired(message):
		model.notice = nil
	}
	return model, nil
}

// forwardToFocusedInput passes non-key messages (cursor blink) to the
// focused text input.
func (model *Model) forwardToFocusedInput(message tea.Msg) tea.Cmd {
	var command tea.Cmd
	switch model.focusRegion {
	case FocusSearch:
		model.searchInput, command = model.searchInput.Update(message)
	case FocusSidebar:
		model.formInputs[model.formFocus], command = model.formInputs[model.formFocus].Update(message)
	case FocusSpanEdit:
		model.spanInput, command = model.spanInput.Update(message)
	}
	return command
}

// setNotice shows a status bar message for duration.
func (model *Model) setNotice(next *notice, duration time.Duration) tea.Cmd {
	model.notice = next
	return model.noticeTimer.Start(duration)
}

// Document returns the viewer's document. The returned value is shared
// with the model.
func (model Model) Document() *scriptview.Document { return model.document }

// Form returns the viewer's form state.
func (model Model) Form() *formstate.State { return model.form }

// Focus returns the region that currently receives keys.
func (model Model) Focus() FocusRegion { return model.focusRegion }

// SidebarOpen reports whether the call details sidebar is open.
func (model Model) SidebarOpen() bool { return model.sidebar.IsOpen() }

// SelectedCard returns the highlighted card, or nil when no card is
// visible.
func (model Model) SelectedCard() *scriptview.Card {
	cards := model.document.VisibleCards()
	if model.selected < 0 || model.selected >= len(cards) {
		return nil
	}
	return cards[model.selected]
}
