// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestCommandLogger_JSONWhenPiped(t *testing.T) {
	var output bytes.Buffer
	logger := newCommandLogger(&output, false)
	logger.Info("script library loaded", "sections", 4)

	var record map[string]any
	if err := json.Unmarshal(output.Bytes(), &record); err != nil {
		t.Fatalf("piped output is not JSON: %v (%q)", err, output.String())
	}
	if record["msg"] != "script library loaded" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record["sections"] != float64(4) {
		t.Errorf("sections = %v", record["sections"])
	}
}

func TestCommandLogger_TextOnTerminal(t *testing.T) {
	var output bytes.Buffer
	logger := newCommandLogger(&output, true)
	logger.Info("script library loaded", "sections", 4)

	line := output.String()
	if !strings.Contains(line, `msg="script library loaded"`) || !strings.Contains(line, "sections=4") {
		t.Errorf("unexpected text output %q", line)
	}
}

func TestCommandLogger_DropsDebug(t *testing.T) {
	var output bytes.Buffer
	logger := newCommandLogger(&output, false)
	logger.Debug("noise")
	if output.Len() != 0 {
		t.Errorf("debug record written: %q", output.String())
	}
}
