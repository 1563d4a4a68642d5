// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package formstate holds the three agent-entered values that scripts
// interpolate (agent name, customer name, intent) and pushes them to
// every placeholder display element whenever they change.
//
// The state is created once per session with every field empty. Display
// elements are reached through the [Sink] interface; the script document
// implements it, so the state itself never knows how placeholders are
// rendered.
package formstate

// Field identifies one of the form values.
type Field int

const (
	// AgentName is the support agent's own name.
	AgentName Field = iota
	// CustomerName is the name of the customer being helped.
	CustomerName
	// Intent is a short description of why the customer reached out.
	Intent

	fieldCount
)

// Fields lists every field in display order.
var Fields = [fieldCount]Field{AgentName, CustomerName, Intent}

// fieldIDs are the form input identifiers ("agentName" etc.).
var fieldIDs = [fieldCount]string{"agentName", "customerName", "intent"}

// displayClasses are the token names scripts use to reference a field
// ("{{agent_name}}" etc.).
var displayClasses = [fieldCount]string{"agent_name", "customer_name", "intent"}

// ID returns the form input identifier for the field, e.g. "customerName".
func (field Field) ID() string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	return fieldIDs[field]
}

// DisplayClass returns the placeholder token name for the field, e.g.
// "customer_name".
func (field Field) DisplayClass() string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	return displayClasses[field]
}

func (field Field) String() string { return field.ID() }

// ParseDisplayClass maps a placeholder token name back to its field.
func ParseDisplayClass(class string) (Field, bool) {
	for index, candidate := range displayClasses {
		if candidate == class {
			return Field(index), true
		}
	}
	return 0, false
}

// Labels are the fallback texts shown for empty fields.
type Labels struct {
	AgentName    string
	CustomerName string
	Intent       string
}

// DefaultLabels are the stock fallback texts.
var DefaultLabels = Labels{
	AgentName:    "[Agent name]",
	CustomerName: "[Cx name]",
	Intent:       "[intent]",
}

func (labels Labels) forField(field Field) string {
	switch field {
	case AgentName:
		return labels.AgentName
	case CustomerName:
		return labels.CustomerName
	case Intent:
		return labels.Intent
	}
	return ""
}

// Sink receives rendered placeholder text. Implementations replace the
// text of every display element tagged for field.
type Sink interface {
	SetPlaceholder(field Field, text string)
}

// State maps each field to its current value.
type State struct {
	values [fieldCount]string
	labels [fieldCount]string
	sinks  []Sink
}

// New creates a State with every field empty. Blank entries in labels
// fall back to [DefaultLabels].
func New(labels Labels) *State {
	state := &State{}
	for _, field := range Fields {
		label := labels.forField(field)
		if label == "" {
			label = DefaultLabels.forField(field)
		}
		state.labels[field] = label
	}
	return state
}

// Bind replaces the set of display sinks and renders every field into
// them.
func (state *State) Bind(sinks ...Sink) {
	state.sinks = sinks
	state.Render()
}

// Update sets a field's value and re-renders that field's placeholders.
// No validation is applied; the empty string is a valid value.
func (state *State) Update(field Field, value string) {
	if field < 0 || field >= fieldCount {
		return
	}
	state.values[field] = value
	state.renderField(field)
}

// Reset clears the customer name and intent. When preserveAgentName is
// false the agent name is cleared too.
func (state *State) Reset(preserveAgentName bool) {
	state.values[CustomerName] = ""
	state.values[Intent] = ""
	if !preserveAgentName {
		state.values[AgentName] = ""
	}
	state.Render()
}

// Value returns the raw value of a field.
func (state *State) Value(field Field) string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	return state.values[field]
}

// Display returns the field's value, or its fallback label when empty.
func (state *State) Display(field Field) string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	if state.values[field] == "" {
		return state.labels[field]
	}
	return state.values[field]
}

// Label returns the fallback label of a field.
func (state *State) Label(field Field) string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	return state.labels[field]
}

// Render pushes every field to every sink.
func (state *State) Render() {
	for _, field := range Fields {
		state.renderField(field)
	}
}

func (state *State) renderField(field Field) {
	text := state.Display(field)
	for _, sink := range state.sinks {
		sink.SetPlaceholder(field, text)
	}
}
