// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptdoc

import (
	"errors"
	"fmt"
	"regexp"
)

// Library is a complete script collection.
type Library struct {
	// Title is shown in the header bar.
	Title string `yaml:"title" json:"title"`

	// Sections are the navigable topic groups, in display order.
	Sections []Section `yaml:"sections" json:"sections"`
}

// Section is a navigable topic group.
type Section struct {
	// ID names the section. Navigation derives "<id>-nav" and
	// "<id>-section" from it.
	ID string `yaml:"id" json:"id"`

	// Title is the navigation label.
	Title string `yaml:"title" json:"title"`

	// Active marks the section shown at startup. At most one section
	// may set it; when none does, the first section is active.
	Active bool `yaml:"active,omitempty" json:"active,omitempty"`

	Headers []Header `yaml:"headers" json:"headers"`
}

// Header groups related cards under a searchable title.
type Header struct {
	Title string `yaml:"title" json:"title"`

	// Note is secondary header text. Search matches it as well as the
	// title.
	Note string `yaml:"note,omitempty" json:"note,omitempty"`

	Cards []Card `yaml:"cards" json:"cards"`
}

// Card is one copyable script.
type Card struct {
	// Title is an optional label rendered on the card border. It is not
	// part of the copied text.
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	// Body is the script template. See [ParseBody].
	Body string `yaml:"body" json:"body"`
}

var sectionIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Validate checks structural invariants and parses every card body.
// All problems are reported together.
func (library *Library) Validate() error {
	var errs []error

	if len(library.Sections) == 0 {
		errs = append(errs, errors.New("library has no sections"))
	}

	seen := make(map[string]bool)
	activeCount := 0
	for sectionIndex, section := range library.Sections {
		switch {
		case section.ID == "":
			errs = append(errs, fmt.Errorf("section %d: id is required", sectionIndex+1))
		case !sectionIDPattern.MatchString(section.ID):
			errs = append(errs, fmt.Errorf("section %q: id may only contain a-z, 0-9, '_' and '-'", section.ID))
		case seen[section.ID]:
			errs = append(errs, fmt.Errorf("section %q: duplicate id", section.ID))
		}
		seen[section.ID] = true
		if section.Active {
			activeCount++
		}

		for headerIndex, header := range section.Headers {
			for cardIndex, card := range header.Cards {
				if _, err := ParseBody(card.Body); err != nil {
					errs = append(errs, fmt.Errorf("section %q, header %d, card %d: %w",
						section.ID, headerIndex+1, cardIndex+1, err))
				}
			}
		}
	}
	if activeCount > 1 {
		errs = append(errs, fmt.Errorf("%d sections are marked active; at most one may be", activeCount))
	}

	return errors.Join(errs...)
}

// ActiveIndex returns the index of the section shown at startup.
func (library *Library) ActiveIndex() int {
	for index, section := range library.Sections {
		if section.Active {
			return index
		}
	}
	return 0
}
