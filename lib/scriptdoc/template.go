// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptdoc

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/scriptdesk/lib/formstate"
)

// TokenKind distinguishes the pieces of a card body.
type TokenKind int

const (
	// TokenText is literal script text.
	TokenText TokenKind = iota
	// TokenPlaceholder is filled from a form field.
	TokenPlaceholder
	// TokenManualEdit is a blank the agent fills in by hand. Text holds
	// the default shown until it is filled.
	TokenManualEdit
)

// Token is one piece of a parsed card body.
type Token struct {
	Kind TokenKind
	Text string

	// Field is set for TokenPlaceholder.
	Field formstate.Field
}

const (
	placeholderOpen  = "{{"
	placeholderClose = "}}"
	manualEditOpen   = "[["
	manualEditClose  = "]]"
)

// ParseBody splits a card body into literal text, placeholders and
// manual-edit spans:
//
//	Hi {{customer_name}}, your order [[order number]] has shipped.
//
// Placeholder names are the form display classes (agent_name,
// customer_name, intent). Manual-edit defaults are kept verbatim; an
// empty "[[]]" is a blank with an empty default.
func ParseBody(body string) ([]Token, error) {
	var tokens []Token
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenText, Text: literal.String()})
			literal.Reset()
		}
	}

	remaining := body
	offset := 0
	for len(remaining) > 0 {
		placeholderAt := strings.Index(remaining, placeholderOpen)
		manualAt := strings.Index(remaining, manualEditOpen)

		next := placeholderAt
		if next < 0 || (manualAt >= 0 && manualAt < next) {
			next = manualAt
		}
		if next < 0 {
			literal.WriteString(remaining)
			break
		}

		literal.WriteString(remaining[:next])
		remaining = remaining[next:]
		offset += next

		if next == placeholderAt {
			end := strings.Index(remaining, placeholderClose)
			if end < 0 {
				return nil, fmt.Errorf("unterminated %q at offset %d", placeholderOpen, offset)
			}
			name := strings.TrimSpace(remaining[len(placeholderOpen):end])
			field, ok := formstate.ParseDisplayClass(name)
			if !ok {
				return nil, fmt.Errorf("unknown placeholder %q at offset %d", name, offset)
			}
			flush()
			tokens = append(tokens, Token{Kind: TokenPlaceholder, Field: field})
			consumed := end + len(placeholderClose)
			remaining = remaining[consumed:]
			offset += consumed
			continue
		}

		end := strings.Index(remaining, manualEditClose)
		if end < 0 {
			return nil, fmt.Errorf("unterminated %q at offset %d", manualEditOpen, offset)
		}
		flush()
		tokens = append(tokens, Token{Kind: TokenManualEdit, Text: remaining[len(manualEditOpen):end]})
		consumed := end + len(manualEditClose)
		remaining = remaining[consumed:]
		offset += consumed
	}
	flush()

	return tokens, nil
}
