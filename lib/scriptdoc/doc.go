// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package scriptdoc defines the script library: the topic sections,
// header groups and script cards a support agent works from, and the
// loaders that read it from disk.
//
// A library file is YAML, JSON-with-comments, or Markdown (chosen by
// file extension). Card bodies are templates: "{{customer_name}}" style
// tokens are filled from the form, "[[default text]]" marks a blank the
// agent must fill in by hand before the card can be copied. See
// [ParseBody].
//
// [Watch] follows a library file on disk and delivers a freshly parsed
// [Library] whenever its content changes. Content is fingerprinted with
// BLAKE3 so editor save patterns that rewrite identical bytes do not
// cause reloads.
package scriptdoc
