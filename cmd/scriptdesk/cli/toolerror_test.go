// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestToolError_ErrorWithoutHint(t *testing.T) {
	err := Validation("unexpected argument: %s", "extra")
	if err.Error() != "unexpected argument: extra" {
		t.Errorf("Error() = %q, want %q", err.Error(), "unexpected argument: extra")
	}
}

func TestToolError_ErrorWithHint(t *testing.T) {
	err := NotFound("script library scripts.yaml does not exist").
		WithHint("Pass --scripts with an existing file.")

	want := "script library scripts.yaml does not exist\n\nPass --scripts with an existing file."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestToolError_WithHintReturnsReceiver(t *testing.T) {
	original := Validation("bad input")
	chained := original.WithHint("fix it")
	if original != chained {
		t.Error("WithHint should return the same pointer")
	}
}

func TestToolError_HintSurvivesErrorsAs(t *testing.T) {
	inner := Validation("bad config").WithHint("check search_debounce")
	wrapped := fmt.Errorf("startup failed: %w", inner)

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As should find ToolError in wrapped chain")
	}
	if toolErr.Hint != "check search_debounce" {
		t.Errorf("Hint = %q after unwrap, want %q", toolErr.Hint, "check search_debounce")
	}
}

func TestToolError_UnwrapReachesCause(t *testing.T) {
	err := NotFound("reading library: %w", fs.ErrNotExist)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see through ToolError to the wrapped cause")
	}
}

func TestToolError_EmptyHintNotAppended(t *testing.T) {
	err := Internal("unexpected failure")
	if strings.Contains(err.Error(), "\n\n") {
		t.Error("empty hint should not add blank line to error message")
	}
}

func TestToolError_AllCategories(t *testing.T) {
	tests := []struct {
		name     string
		err      *ToolError
		category ErrorCategory
	}{
		{"Validation", Validation("bad"), CategoryValidation},
		{"NotFound", NotFound("missing"), CategoryNotFound},
		{"Internal", Internal("bug"), CategoryInternal},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err.Category != test.category {
				t.Errorf("Category = %q, want %q", test.err.Category, test.category)
			}
			hinted := test.err.WithHint("try again")
			if hinted.Hint != "try again" {
				t.Errorf("Hint = %q after WithHint, want %q", hinted.Hint, "try again")
			}
		})
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 2}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok {
		t.Fatal("ExitError should expose ExitCode")
	}
	if coder.ExitCode() != 2 {
		t.Errorf("ExitCode() = %d, want 2", coder.ExitCode())
	}
	if err.Error() != "exit code 2" {
		t.Errorf("Error() = %q", err.Error())
	}
}
