// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

import (
	"fmt"
	"os"
)

// LoadDefinitionsFile reads and parses definitions from a YAML or TOML file.
func LoadDefinitionsFile(path string) (Definitions, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Definitions{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Definitions{}, fmt.Errorf("open definitions file: %w", err)
	}
	defer func() { _ = f.Close() }()

	defs, err := ParseDefinitions(f, format)
	if err != nil {
		return Definitions{}, fmt.Errorf("parse definitions file %s: %w", path, err)
	}

	return defs, nil
}

// LoadDefinitionsFiles reads and merges definitions from files in the given order.
func LoadDefinitionsFiles(paths ...string) (Definitions, error) {
	sets := make([]Definitions, 0, len(paths))
	for _, path := range paths {
		defs, err := LoadDefinitionsFile(path)
		if err != nil {
			return Definitions{}, err
		}

		sets = append(sets, defs)
	}

	return MergeDefinitions(sets...), nil
}

// Load registers every template and rule of defs.
//
// Definitions are validated before anything is registered. Later entries
// with the same name or key replace earlier ones.
func (m *Manager) Load(defs Definitions) error {
	if err := defs.Validate(); err != nil {
		return err
	}

	for _, t := range defs.Templates {
		m.AddTemplate(t.Name, t.Fragment, t.Parent)
	}

	for _, r := range defs.Rules {
		conv, err := LookupConverter(r.Type)
		if err != nil {
			return err
		}

		opts := RuleOptions{Format: r.Format, Pattern: r.Pattern}
		if r.Type != "" {
			opts.Type = conv
		}

		m.AddRule(r.Key, opts)
	}

	return nil
}
