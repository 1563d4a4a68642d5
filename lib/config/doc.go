// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for scriptdesk.
//
// Configuration comes from a single file specified by either the
// SCRIPTDESK_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no automatic file search. When
// neither is given, [Load] returns [Default]: scriptdesk is usable
// with no configuration at all, showing its built-in script library.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${SCRIPTDESK_CONFIG_DIR} (the directory holding the config
// file), and ${VAR:-default} patterns are expanded. A relative scripts
// path is resolved against the config file's directory.
//
// Key exports:
//
//   - [Config] -- scripts path, prefill, timings, gesture and label settings
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
package config
