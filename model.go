// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

// defaultFromPathPattern is used for keys without a rule pattern.
const defaultFromPathPattern = `.+`

// Fields maps placeholder keys to values.
//
// Values produced by extraction are strings unless the key's rule has a Converter.
type Fields map[string]any

// Template is one registered template definition.
type Template struct {
	// Name is the unique registry key.
	Name string `json:"name" yaml:"name" toml:"name"`
	// Fragment is the template text before parent expansion.
	Fragment string `json:"fragment" yaml:"fragment" toml:"fragment"`
	// Parent is the parent template name, empty for roots.
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty" toml:"parent,omitempty"`
}

// RuleOptions describes how one field key is rendered, parsed and typed.
// Zero-valued options fall back to defaults.
type RuleOptions struct {
	// Format is a format spec (for example "04d") used to render values into paths.
	// Empty renders with plain string conversion.
	Format string
	// Pattern is a regular expression fragment a value may match inside a path.
	// Empty means ".+".
	Pattern string
	// Type converts raw extracted text. Nil keeps the raw string.
	Type Converter
}

// Rule is one registered per-key rule.
type Rule struct {
	// Key is the field key shared by every template.
	Key string
	RuleOptions
}

// fromPathPattern returns the effective extraction pattern.
func (r Rule) fromPathPattern() string {
	if r.Pattern == "" {
		return defaultFromPathPattern
	}

	return r.Pattern
}

// RuleDefinition is the serializable form of a rule.
type RuleDefinition struct {
	// Key is the field key.
	Key string `json:"key" yaml:"key" toml:"key"`
	// Format is the render format spec.
	Format string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
	// Pattern is the extraction regular expression fragment.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	// Type is a built-in converter name, see LookupConverter.
	Type string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
}

// Definitions is a document of templates and rules.
type Definitions struct {
	Templates []Template       `json:"templates,omitempty" yaml:"templates,omitempty" toml:"templates,omitempty"`
	Rules     []RuleDefinition `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`
}
