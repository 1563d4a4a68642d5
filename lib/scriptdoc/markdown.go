// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptdoc

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithAttribute(),
			),
		)
	})
	return markdownParserInstance
}

// parseMarkdown builds a library from a Markdown outline:
//
//	# Greeting {#greeting}       <- section (id from {#id} or the title)
//	## Opening                   <- header
//	> First contact              <- header note
//	### Standard                 <- title of the next card
//	Hi {{customer_name}}, ...    <- card (paragraph or list item)
//
// Card bodies are taken from the raw source lines so template tokens
// survive untouched.
func parseMarkdown(source []byte) (*Library, error) {
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	library := &Library{}
	var section *Section
	var header *Header
	pendingCardTitle := ""

	addCard := func(body string) error {
		if header == nil {
			return fmt.Errorf("card %q appears before any section header", excerpt(body))
		}
		header.Cards = append(header.Cards, Card{Title: pendingCardTitle, Body: body})
		pendingCardTitle = ""
		return nil
	}

	for node := document.FirstChild(); node != nil; node = node.NextSibling() {
		switch block := node.(type) {
		case *ast.Heading:
			title := inlineText(block, source)
			switch block.Level {
			case 1:
				library.Sections = append(library.Sections, Section{
					ID:    attributeString(block, "id"),
					Title: title,
				})
				section = &library.Sections[len(library.Sections)-1]
				header = nil
			case 2:
				if section == nil {
					return nil, fmt.Errorf("header %q appears before any section", title)
				}
				section.Headers = append(section.Headers, Header{Title: title})
				header = &section.Headers[len(section.Headers)-1]
			default:
				pendingCardTitle = title
			}

		case *ast.Blockquote:
			if header == nil {
				return nil, fmt.Errorf("note appears before any section header")
			}
			var parts []string
			for child := block.FirstChild(); child != nil; child = child.NextSibling() {
				parts = append(parts, inlineText(child, source))
			}
			header.Note = strings.Join(parts, " ")

		case *ast.Paragraph:
			if err := addCard(rawLines(block, source)); err != nil {
				return nil, err
			}

		case *ast.List:
			for item := block.FirstChild(); item != nil; item = item.NextSibling() {
				if err := addCard(itemBody(item, source)); err != nil {
					return nil, err
				}
			}
		}
	}

	return library, nil
}

func attributeString(node ast.Node, name string) string {
	value, ok := node.AttributeString(name)
	if !ok {
		return ""
	}
	switch typed := value.(type) {
	case []byte:
		return string(typed)
	case string:
		return typed
	}
	return ""
}

// inlineText concatenates the text content of node's inline children.
func inlineText(node ast.Node, source []byte) string {
	var builder strings.Builder
	_ = ast.Walk(node, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch typed := child.(type) {
		case *ast.Text:
			builder.Write(typed.Segment.Value(source))
			if typed.SoftLineBreak() || typed.HardLineBreak() {
				builder.WriteByte(' ')
			}
		case *ast.String:
			builder.Write(typed.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(builder.String())
}

// itemBody returns the text of a list item. Nested list items keep a
// "- " marker and are indented under their parent.
func itemBody(item ast.Node, source []byte) string {
	var parts []string
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		nested, ok := child.(*ast.List)
		if !ok {
			parts = append(parts, rawLines(child, source))
			continue
		}
		for nestedItem := nested.FirstChild(); nestedItem != nil; nestedItem = nestedItem.NextSibling() {
			lines := strings.Split(itemBody(nestedItem, source), "\n")
			for index, line := range lines {
				if index == 0 {
					lines[index] = "- " + line
				} else {
					lines[index] = "  " + line
				}
			}
			parts = append(parts, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(parts, "\n")
}

// rawLines returns a block's source lines joined by newlines.
func rawLines(node ast.Node, source []byte) string {
	lines := node.Lines()
	parts := make([]string, 0, lines.Len())
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		parts = append(parts, strings.TrimRight(string(segment.Value(source)), "\r\n"))
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func excerpt(body string) string {
	return ansi.Truncate(body, 30, "…")
}
