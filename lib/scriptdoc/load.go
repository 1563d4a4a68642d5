// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptdoc

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is a library file encoding.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ErrUnsupportedFormat is returned for library files whose extension
// maps to no known format.
var ErrUnsupportedFormat = errors.New("unsupported script library format")

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q (want .yaml, .yml, .json, .jsonc, .md)", ErrUnsupportedFormat, filepath.Ext(path))
}

// Parse decodes and validates a library.
func Parse(data []byte, format Format) (*Library, error) {
	var library Library
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &library); err != nil {
			return nil, fmt.Errorf("decoding YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &library); err != nil {
			return nil, fmt.Errorf("decoding JSON: %w", err)
		}
	case FormatMarkdown:
		parsed, err := parseMarkdown(data)
		if err != nil {
			return nil, err
		}
		library = *parsed
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := library.Validate(); err != nil {
		return nil, err
	}
	return &library, nil
}

// Load reads and parses a library file.
func Load(path string) (*Library, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	library, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return library, nil
}

//go:embed default_scripts.yaml
var defaultScripts []byte

// Default returns the built-in library used when no file is configured.
func Default() *Library {
	library, err := Parse(defaultScripts, FormatYAML)
	if err != nil {
		panic("scriptdoc: embedded library is invalid: " + err.Error())
	}
	return library
}
