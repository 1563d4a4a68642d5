// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptdoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

const yamlLibrary = `
title: Test scripts
sections:
  - id: greeting
    title: Greeting
    headers:
      - title: Opening
        note: first contact
        cards:
          - body: "Hi {{customer_name}}"
  - id: billing
    title: Billing
    active: true
    headers:
      - title: Refunds
        cards:
          - title: Approved
            body: "Refund of [[amount]] issued."
`

func TestParseYAML(t *testing.T) {
	library, err := Parse([]byte(yamlLibrary), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if library.Title != "Test scripts" {
		t.Errorf("title = %q", library.Title)
	}
	if len(library.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(library.Sections))
	}
	if library.ActiveIndex() != 1 {
		t.Errorf("ActiveIndex = %d, want 1", library.ActiveIndex())
	}
	card := library.Sections[1].Headers[0].Cards[0]
	if card.Title != "Approved" || card.Body != "Refund of [[amount]] issued." {
		t.Errorf("unexpected card %+v", card)
	}
	if library.Sections[0].Headers[0].Note != "first contact" {
		t.Errorf("note = %q", library.Sections[0].Headers[0].Note)
	}
}

func TestParseJSONWithComments(t *testing.T) {
	data := `{
		// Library used by the night shift.
		"title": "Night",
		"sections": [
			{
				"id": "greeting",
				"title": "Greeting",
				"headers": [
					{"title": "Opening", "cards": [{"body": "Hello {{customer_name}}"},]},
				],
			},
		],
	}`
	library, err := Parse([]byte(data), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if library.Title != "Night" || library.Sections[0].Headers[0].Cards[0].Body != "Hello {{customer_name}}" {
		t.Errorf("unexpected library %+v", library)
	}
}

func TestParseMarkdown(t *testing.T) {
	data := `# Greeting {#hello}

## Opening

> First contact

### Standard

Hi {{customer_name}}, this is {{agent_name}}.

- Welcome back, {{customer_name}}!
- Your ticket is [[ticket number]].

# Closing

## Wrapping up

Anything else?
`
	library, err := Parse([]byte(data), FormatMarkdown)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(library.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(library.Sections))
	}

	greeting := library.Sections[0]
	if greeting.ID != "hello" || greeting.Title != "Greeting" {
		t.Errorf("first section = %q/%q, want hello/Greeting", greeting.ID, greeting.Title)
	}
	if library.Sections[1].ID != "closing" {
		t.Errorf("auto id = %q, want closing", library.Sections[1].ID)
	}

	header := greeting.Headers[0]
	if header.Title != "Opening" || header.Note != "First contact" {
		t.Errorf("header = %+v", header)
	}
	if len(header.Cards) != 3 {
		t.Fatalf("got %d cards, want 3: %+v", len(header.Cards), header.Cards)
	}
	if header.Cards[0].Title != "Standard" || header.Cards[0].Body != "Hi {{customer_name}}, this is {{agent_name}}." {
		t.Errorf("first card = %+v", header.Cards[0])
	}
	if header.Cards[1].Title != "" {
		t.Errorf("card title should apply to one card only, got %q", header.Cards[1].Title)
	}
	if header.Cards[2].Body != "Your ticket is [[ticket number]]." {
		t.Errorf("list card body = %q", header.Cards[2].Body)
	}
}

func TestParseMarkdownNestedList(t *testing.T) {
	data := "# Greeting {#greeting}\n\n## Opening\n\n- Hello {{customer_name}}\n  - follow up [[ticket]]\n- Bye\n"
	library, err := Parse([]byte(data), FormatMarkdown)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cards := library.Sections[0].Headers[0].Cards
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2: %+v", len(cards), cards)
	}
	want := "Hello {{customer_name}}\n- follow up [[ticket]]"
	if cards[0].Body != want {
		t.Errorf("nested list body = %q, want %q", cards[0].Body, want)
	}

	tokens, err := ParseBody(cards[0].Body)
	if err != nil {
		t.Fatalf("ParseBody: %v", err)
	}
	var manualEdits []string
	for _, token := range tokens {
		if token.Kind == TokenManualEdit {
			manualEdits = append(manualEdits, token.Text)
		}
	}
	if len(manualEdits) != 1 || manualEdits[0] != "ticket" {
		t.Errorf("manual edits = %q, want [ticket]", manualEdits)
	}
}

func TestParseMarkdownErrorExcerptKeepsRunes(t *testing.T) {
	body := strings.Repeat("é", 40)
	_, err := Parse([]byte(body+"\n"), FormatMarkdown)
	if err == nil {
		t.Fatal("expected placement error")
	}
	if !utf8.ValidString(err.Error()) {
		t.Errorf("error message is not valid UTF-8: %q", err.Error())
	}
	if !strings.Contains(err.Error(), strings.Repeat("é", 29)+"…") {
		t.Errorf("expected truncated excerpt, got %q", err.Error())
	}
}

func TestParseMarkdownCardOutsideHeader(t *testing.T) {
	_, err := Parse([]byte("# Greeting\n\nstray paragraph\n"), FormatMarkdown)
	if err == nil || !strings.Contains(err.Error(), "before any section header") {
		t.Errorf("expected placement error, got %v", err)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	data := `
sections:
  - id: Greeting
    active: true
    headers:
      - title: x
        cards:
          - body: "{{nope}}"
  - id: billing
    active: true
  - id: billing
`
	_, err := Parse([]byte(data), FormatYAML)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, fragment := range []string{
		`section "Greeting": id may only contain`,
		`unknown placeholder "nope"`,
		`section "billing": duplicate id`,
		"2 sections are marked active",
	} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error missing %q:\n%v", fragment, err)
		}
	}
}

func TestValidateEmptyLibrary(t *testing.T) {
	_, err := Parse([]byte("title: empty\n"), FormatYAML)
	if err == nil || !strings.Contains(err.Error(), "no sections") {
		t.Errorf("expected no-sections error, got %v", err)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"scripts.yaml":    FormatYAML,
		"scripts.YML":     FormatYAML,
		"scripts.json":    FormatJSON,
		"scripts.jsonc":   FormatJSON,
		"scripts.md":      FormatMarkdown,
		"a/b/c.markdown":  FormatMarkdown,
	}
	for path, want := range tests {
		got, err := FormatForPath(path)
		if err != nil || got != want {
			t.Errorf("FormatForPath(%q) = %q, %v; want %q", path, got, err, want)
		}
	}

	if _, err := FormatForPath("scripts.toml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadReportsPath(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "broken.yaml")
	if err := os.WriteFile(path, []byte("sections: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("expected error naming %s, got %v", path, err)
	}
}

func TestDefaultLibrary(t *testing.T) {
	library := Default()
	if len(library.Sections) == 0 {
		t.Fatal("default library has no sections")
	}
	if library.Sections[library.ActiveIndex()].ID != "greeting" {
		t.Errorf("default active section = %q", library.Sections[library.ActiveIndex()].ID)
	}
}

func TestFingerprint(t *testing.T) {
	first := Fingerprint([]byte("a"))
	if first != Fingerprint([]byte("a")) {
		t.Error("fingerprint not deterministic")
	}
	if first == Fingerprint([]byte("b")) {
		t.Error("different content produced the same fingerprint")
	}
	if len(first) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(first))
	}
}
