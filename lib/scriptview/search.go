// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptview

import "strings"

// Search filters the document by header text.
//
// An empty term restores navigation-driven visibility: only the active
// section is shown and no header keeps a hidden override.
//
// A non-empty term scans every section, active or not. A header matches
// when its lower-cased text content contains the term. A section is
// shown when at least one of its headers matches, and within a shown
// section each header (with its cards) is shown only if it matched.
// Headers of a section with no match are left without overrides.
//
// Card bodies are never searched; filtering is at header granularity.
// The term is normalized with [NormalizeTerm].
func (document *Document) Search(term string) {
	term = NormalizeTerm(term)

	if term == "" {
		active := document.ActiveSection()
		for _, section := range document.Sections {
			section.clearOverrides()
			section.Visible = section == active
		}
		return
	}

	for _, section := range document.Sections {
		matched := make([]bool, len(section.Headers))
		sectionHasMatch := false
		for index, header := range section.Headers {
			matched[index] = strings.Contains(strings.ToLower(header.TextContent()), term)
			if matched[index] {
				sectionHasMatch = true
			}
		}

		section.Visible = sectionHasMatch
		if !sectionHasMatch {
			section.clearOverrides()
			continue
		}
		for index, header := range section.Headers {
			header.Hidden = !matched[index]
		}
	}
}
