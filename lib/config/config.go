// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/scriptdesk/lib/formstate"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "SCRIPTDESK_CONFIG"

// Config is the scriptdesk configuration.
type Config struct {
	// Scripts is the path of the script library file (.yaml, .yml,
	// .json, .jsonc, .md). Empty selects the built-in library.
	Scripts string `yaml:"scripts"`

	// AgentName prefills the agent name field at startup.
	AgentName string `yaml:"agent_name"`

	// Watch reloads the script library when its file changes.
	// Default: true. Has no effect with the built-in library.
	Watch bool `yaml:"watch"`

	// SearchDebounce is how long the search input must be idle before
	// the filter is applied.
	// Default: 300ms
	SearchDebounce time.Duration `yaml:"search_debounce"`

	// TooltipDuration is how long the "Copied!" tooltip stays visible.
	// Default: 2s
	TooltipDuration time.Duration `yaml:"tooltip_duration"`

	// SwipeThreshold is the horizontal drag distance, in logical
	// pixels, that must be exceeded to open or close the sidebar.
	// Default: 100
	SwipeThreshold float64 `yaml:"swipe_threshold"`

	// CellWidth converts terminal columns to logical pixels for swipe
	// detection.
	// Default: 8
	CellWidth float64 `yaml:"cell_width"`

	// Placeholders configures the labels shown while a field is empty.
	Placeholders PlaceholdersConfig `yaml:"placeholders"`
}

// PlaceholdersConfig holds the fallback label for each form field.
type PlaceholdersConfig struct {
	AgentName    string `yaml:"agent_name"`
	CustomerName string `yaml:"customer_name"`
	Intent       string `yaml:"intent"`
}

// Default returns the default configuration. It is also the base that
// a config file is merged over, so a file only needs the keys it
// changes.
func Default() *Config {
	return &Config{
		Watch:           true,
		SearchDebounce:  300 * time.Millisecond,
		TooltipDuration: 2 * time.Second,
		SwipeThreshold:  100,
		CellWidth:       8,
		Placeholders: PlaceholdersConfig{
			AgentName:    formstate.DefaultLabels.AgentName,
			CustomerName: formstate.DefaultLabels.CustomerName,
			Intent:       formstate.DefaultLabels.Intent,
		},
	}
}

// Load loads configuration from the file named by SCRIPTDESK_CONFIG.
// When the variable is unset, the defaults are returned.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. The file is
// merged over [Default], then path variables are expanded.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.expandVariables(filepath.Dir(path))
	return cfg, nil
}

// Labels returns the placeholder labels as a formstate.Labels.
func (c *Config) Labels() formstate.Labels {
	return formstate.Labels{
		AgentName:    c.Placeholders.AgentName,
		CustomerName: c.Placeholders.CustomerName,
		Intent:       c.Placeholders.Intent,
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths
// and anchors a relative scripts path at configDir.
func (c *Config) expandVariables(configDir string) {
	vars := map[string]string{
		"HOME":                  os.Getenv("HOME"),
		"SCRIPTDESK_CONFIG_DIR": configDir,
	}

	c.Scripts = expandVars(c.Scripts, vars)
	if c.Scripts != "" && !filepath.IsAbs(c.Scripts) {
		c.Scripts = filepath.Join(configDir, c.Scripts)
	}
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.SearchDebounce <= 0 {
		errs = append(errs, fmt.Errorf("search_debounce must be positive, got %s", c.SearchDebounce))
	}
	if c.TooltipDuration <= 0 {
		errs = append(errs, fmt.Errorf("tooltip_duration must be positive, got %s", c.TooltipDuration))
	}
	if c.SwipeThreshold <= 0 {
		errs = append(errs, fmt.Errorf("swipe_threshold must be positive, got %g", c.SwipeThreshold))
	}
	if c.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("cell_width must be positive, got %g", c.CellWidth))
	}

	labels := map[string]string{
		"placeholders.agent_name":    c.Placeholders.AgentName,
		"placeholders.customer_name": c.Placeholders.CustomerName,
		"placeholders.intent":        c.Placeholders.Intent,
	}
	for _, key := range []string{"placeholders.agent_name", "placeholders.customer_name", "placeholders.intent"} {
		if labels[key] == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
	}

	// A missing file is left to the library loader, which reports it
	// as not found.
	if c.Scripts != "" {
		if info, err := os.Stat(c.Scripts); err == nil && info.IsDir() {
			errs = append(errs, fmt.Errorf("scripts: %s is a directory", c.Scripts))
		}
	}

	return errors.Join(errs...)
}
