// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptview

import "testing"

func TestNavigateShowsExactlyOneSection(t *testing.T) {
	document := newTestDocument(t)

	for _, navID := range []string{"billing-nav", "closing-nav", "greeting-nav", "billing-nav"} {
		if !document.Navigate(navID, "") {
			t.Fatalf("Navigate(%q) returned false", navID)
		}
		visible := visibleSectionIDs(document)
		want := SectionIDForNav(navID)
		if len(visible) != 1 || visible[0] != want {
			t.Errorf("after Navigate(%q): visible = %v, want [%s]", navID, visible, want)
		}
		if document.ActiveNav().ID != navID {
			t.Errorf("active nav = %q, want %q", document.ActiveNav().ID, navID)
		}
	}
}

func TestNavigateIsIdempotent(t *testing.T) {
	document := newTestDocument(t)
	document.Navigate("billing-nav", "")
	document.Navigate("billing-nav", "")

	visible := visibleSectionIDs(document)
	if len(visible) != 1 || visible[0] != "billing-section" {
		t.Errorf("visible = %v", visible)
	}
	for _, button := range document.Nav {
		if button.Active != (button.ID == "billing-nav") {
			t.Errorf("button %s active=%v", button.ID, button.Active)
		}
	}
}

func TestNavigateClearsSearchOverrides(t *testing.T) {
	document := newTestDocument(t)
	document.Search("refund")
	billing := document.Section("billing-section")
	if !billing.Headers[1].Hidden {
		t.Fatal("precondition: non-matching header should be hidden")
	}

	document.Navigate("billing-nav", "")

	for _, header := range billing.Headers {
		if header.Hidden {
			t.Errorf("header %q kept hidden override after navigation", header.Title)
		}
	}
}

func TestNavigateReappliesSearch(t *testing.T) {
	document := newTestDocument(t)
	document.Navigate("closing-nav", "  REFUND ")

	visible := visibleSectionIDs(document)
	if len(visible) != 1 || visible[0] != "billing-section" {
		t.Errorf("visible = %v, want search result [billing-section]", visible)
	}
	if document.ActiveNav().ID != "closing-nav" {
		t.Errorf("active nav = %q, want closing-nav", document.ActiveNav().ID)
	}
}

func TestNavigateUnknownButton(t *testing.T) {
	document := newTestDocument(t)
	if document.Navigate("missing-nav", "") {
		t.Error("Navigate should report unknown button")
	}
	if document.ActiveNav().ID != "greeting-nav" {
		t.Error("unknown navigation must not change state")
	}
}

func TestNavigateRelativeWraps(t *testing.T) {
	document := newTestDocument(t)
	document.NavigateRelative(-1, "")
	if document.ActiveNav().ID != "closing-nav" {
		t.Errorf("previous from first = %q, want closing-nav", document.ActiveNav().ID)
	}
	document.NavigateRelative(1, "")
	if document.ActiveNav().ID != "greeting-nav" {
		t.Errorf("next from last = %q, want greeting-nav", document.ActiveNav().ID)
	}
	if document.NavigateIndex(7, "") {
		t.Error("out-of-range index should be ignored")
	}
}
