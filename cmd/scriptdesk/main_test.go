// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/scriptdesk/cmd/scriptdesk/cli"
	"github.com/bureau-foundation/scriptdesk/lib/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	directory := t.TempDir()
	scripts := filepath.Join(directory, "team.yaml")
	writeFile(t, scripts, "sections: []\n")
	configPath := filepath.Join(directory, "config.yaml")
	writeFile(t, configPath, "agent_name: Config\nwatch: true\n")

	cfg, err := loadConfig(options{
		configPath:  configPath,
		scriptsPath: scripts,
		agentName:   "Flag",
		noWatch:     true,
	})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Scripts != scripts || cfg.AgentName != "Flag" || cfg.Watch {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(options{configPath: filepath.Join(t.TempDir(), "absent.yaml")})
	var toolError *cli.ToolError
	if !errors.As(err, &toolError) || toolError.Category != cli.CategoryNotFound {
		t.Fatalf("err = %v, want not_found ToolError", err)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, configPath, "swipe_threshold: -1\n")
	t.Setenv(config.EnvironmentVariable, configPath)

	_, err := loadConfig(options{})
	if err == nil || !strings.Contains(err.Error(), "swipe_threshold") {
		t.Fatalf("err = %v, want swipe_threshold problem", err)
	}
}

func TestLoadLibrary(t *testing.T) {
	library, err := loadLibrary("")
	if err != nil || len(library.Sections) == 0 {
		t.Fatalf("built-in library: %v", err)
	}

	directory := t.TempDir()
	_, err = loadLibrary(filepath.Join(directory, "scripts.txt"))
	var toolError *cli.ToolError
	if !errors.As(err, &toolError) || toolError.Category != cli.CategoryValidation {
		t.Errorf("unsupported extension: err = %v", err)
	}

	_, err = loadLibrary(filepath.Join(directory, "missing.yaml"))
	if !errors.As(err, &toolError) || toolError.Category != cli.CategoryNotFound {
		t.Errorf("missing file: err = %v", err)
	}
}

func TestLoadConfigLeavesMissingLibraryToLoader(t *testing.T) {
	directory := t.TempDir()
	configPath := filepath.Join(directory, "config.yaml")
	writeFile(t, configPath, "agent_name: Sam\n")
	missing := filepath.Join(directory, "absent.yaml")

	cfg, err := loadConfig(options{configPath: configPath, scriptsPath: missing})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	_, err = loadLibrary(cfg.Scripts)
	var toolError *cli.ToolError
	if !errors.As(err, &toolError) || toolError.Category != cli.CategoryNotFound {
		t.Fatalf("err = %v, want not_found ToolError", err)
	}
	if !strings.Contains(err.Error(), "absent.yaml") {
		t.Errorf("error should name the library path: %v", err)
	}
}

func TestRunCheckLogsEachProblem(t *testing.T) {
	directory := t.TempDir()
	configPath := filepath.Join(directory, "config.yaml")
	writeFile(t, configPath, "swipe_threshold: -1\ncell_width: -1\n")
	scripts := filepath.Join(directory, "scripts.yaml")
	writeFile(t, scripts, `
sections:
  - id: "Bad ID"
    title: First
    active: true
  - id: second
    title: Second
    active: true
`)

	var output bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&output, nil))
	err := runCheck(options{configPath: configPath, scriptsPath: scripts}, logger)

	var exitError *cli.ExitError
	if !errors.As(err, &exitError) || exitError.Code != 1 {
		t.Fatalf("err = %v, want ExitError with code 1", err)
	}

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	count := func(message string) int {
		total := 0
		for _, line := range lines {
			if strings.Contains(line, message) {
				total++
			}
		}
		return total
	}
	if got := count("configuration problem"); got != 2 {
		t.Errorf("logged %d configuration problems, want 2:\n%s", got, output.String())
	}
	if got := count("script library problem"); got != 2 {
		t.Errorf("logged %d library problems, want 2:\n%s", got, output.String())
	}
	if !strings.Contains(output.String(), "swipe_threshold") || !strings.Contains(output.String(), "cell_width") {
		t.Errorf("config problems not named:\n%s", output.String())
	}
}

func TestRunCheckValidLibrary(t *testing.T) {
	directory := t.TempDir()
	configPath := filepath.Join(directory, "config.yaml")
	writeFile(t, configPath, "agent_name: Sam\n")

	var output bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&output, nil))
	if err := runCheck(options{configPath: configPath}, logger); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	if !strings.Contains(output.String(), "script library loaded") || !strings.Contains(output.String(), "source=built-in") {
		t.Errorf("summary not logged:\n%s", output.String())
	}
}

func TestSplitProblems(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	wrapped := cli.Validation("cannot load: %w", errors.Join(first, second))

	problems := splitProblems(wrapped)
	if len(problems) != 2 || problems[0] != first || problems[1] != second {
		t.Errorf("splitProblems = %v, want [first second]", problems)
	}

	single := errors.New("only")
	if problems := splitProblems(single); len(problems) != 1 || problems[0] != single {
		t.Errorf("splitProblems(single) = %v", problems)
	}
}

func TestFanoutHandler(t *testing.T) {
	var info, warn bytes.Buffer
	logger := slog.New(fanoutHandler{
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}).With("component", "watch")

	logger.Info("reloaded")
	logger.Warn("parse failed")

	if !strings.Contains(info.String(), "reloaded") || !strings.Contains(info.String(), "parse failed") {
		t.Errorf("info handler output = %q", info.String())
	}
	if strings.Contains(warn.String(), "reloaded") || !strings.Contains(warn.String(), "component=watch") {
		t.Errorf("warn handler output = %q", warn.String())
	}
	if (fanoutHandler{}).Enabled(context.Background(), slog.LevelError) {
		t.Error("empty fanout should not be enabled")
	}
}
