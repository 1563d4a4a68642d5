// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.SearchDebounce != 300*time.Millisecond {
		t.Errorf("expected search_debounce=300ms, got %s", cfg.SearchDebounce)
	}
	if cfg.TooltipDuration != 2*time.Second {
		t.Errorf("expected tooltip_duration=2s, got %s", cfg.TooltipDuration)
	}
	if cfg.SwipeThreshold != 100 {
		t.Errorf("expected swipe_threshold=100, got %g", cfg.SwipeThreshold)
	}
	if !cfg.Watch {
		t.Error("expected watch=true")
	}
	if cfg.Scripts != "" {
		t.Errorf("expected built-in library, got scripts=%q", cfg.Scripts)
	}
	if cfg.Placeholders.CustomerName != "[Cx name]" {
		t.Errorf("expected customer label [Cx name], got %q", cfg.Placeholders.CustomerName)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_WithoutScriptdeskConfig(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load without %s: %v", EnvironmentVariable, err)
	}
	if cfg.SearchDebounce != Default().SearchDebounce {
		t.Error("expected defaults when no config file is named")
	}
}

func TestLoad_WithScriptdeskConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scriptdesk.yaml")
	configContent := `
agent_name: Sam
search_debounce: 150ms
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.AgentName != "Sam" {
		t.Errorf("expected agent_name=Sam, got %q", cfg.AgentName)
	}
	if cfg.SearchDebounce != 150*time.Millisecond {
		t.Errorf("expected search_debounce=150ms, got %s", cfg.SearchDebounce)
	}
	// Keys absent from the file keep their defaults.
	if cfg.TooltipDuration != 2*time.Second {
		t.Errorf("expected default tooltip_duration, got %s", cfg.TooltipDuration)
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scriptdesk.yaml")
	configContent := `
scripts: scripts/support.yaml
watch: false
tooltip_duration: 3s
swipe_threshold: 60
cell_width: 10
placeholders:
  customer_name: "[Customer]"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if want := filepath.Join(tmpDir, "scripts", "support.yaml"); cfg.Scripts != want {
		t.Errorf("expected relative scripts resolved to %s, got %s", want, cfg.Scripts)
	}
	if cfg.Watch {
		t.Error("expected watch=false")
	}
	if cfg.TooltipDuration != 3*time.Second {
		t.Errorf("expected tooltip_duration=3s, got %s", cfg.TooltipDuration)
	}
	if cfg.SwipeThreshold != 60 || cfg.CellWidth != 10 {
		t.Errorf("expected swipe 60/10, got %g/%g", cfg.SwipeThreshold, cfg.CellWidth)
	}

	labels := cfg.Labels()
	if labels.CustomerName != "[Customer]" {
		t.Errorf("expected customer label from file, got %q", labels.CustomerName)
	}
	if labels.AgentName != "[Agent name]" {
		t.Errorf("expected default agent label, got %q", labels.AgentName)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "scriptdesk.yaml")
	if err := os.WriteFile(configPath, []byte("search_debounce: soon\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("expected error for unparseable duration")
	}
	if !strings.Contains(err.Error(), configPath) {
		t.Errorf("error should name the file, got %v", err)
	}
}

func TestLoadFile_ExpandsVariables(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SCRIPTDESK_TEST_LIBRARY", "/srv/scripts/team.md")

	configPath := filepath.Join(tmpDir, "scriptdesk.yaml")
	if err := os.WriteFile(configPath, []byte("scripts: ${SCRIPTDESK_TEST_LIBRARY}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scripts != "/srv/scripts/team.md" {
		t.Errorf("expected expanded scripts path, got %q", cfg.Scripts)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/scripts.yaml",
			vars:     map[string]string{"HOME": "/home/agent"},
			expected: "/home/agent/scripts.yaml",
		},
		{
			input:    "${MISSING_SCRIPTDESK_VAR:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${SCRIPTDESK_CONFIG_DIR}/lib.md",
			vars:     map[string]string{"SCRIPTDESK_CONFIG_DIR": "/etc/scriptdesk"},
			expected: "/etc/scriptdesk/lib.md",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "scripts.yaml")
	if err := os.WriteFile(existing, []byte("sections: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "existing scripts file",
			modify:  func(c *Config) { c.Scripts = existing },
			wantErr: false,
		},
		{
			name:    "missing scripts file is left to the loader",
			modify:  func(c *Config) { c.Scripts = existing + ".missing" },
			wantErr: false,
		},
		{
			name:    "scripts is a directory",
			modify:  func(c *Config) { c.Scripts = filepath.Dir(existing) },
			wantErr: true,
		},
		{
			name:    "negative debounce",
			modify:  func(c *Config) { c.SearchDebounce = -time.Second },
			wantErr: true,
		},
		{
			name:    "zero debounce",
			modify:  func(c *Config) { c.SearchDebounce = 0 },
			wantErr: true,
		},
		{
			name:    "zero tooltip duration",
			modify:  func(c *Config) { c.TooltipDuration = 0 },
			wantErr: true,
		},
		{
			name:    "zero swipe threshold",
			modify:  func(c *Config) { c.SwipeThreshold = 0 },
			wantErr: true,
		},
		{
			name:    "zero cell width",
			modify:  func(c *Config) { c.CellWidth = 0 },
			wantErr: true,
		},
		{
			name:    "empty label",
			modify:  func(c *Config) { c.Placeholders.Intent = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.SwipeThreshold = -1
	cfg.CellWidth = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"swipe_threshold", "cell_width"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
