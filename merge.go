// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

// MergeDefinitions merges definition documents preserving input order.
// Entries are appended, so on Load the last definition of a name wins.
func MergeDefinitions(sets ...Definitions) Definitions {
	templates, rules := 0, 0
	for _, set := range sets {
		templates += len(set.Templates)
		rules += len(set.Rules)
	}

	out := Definitions{
		Templates: make([]Template, 0, templates),
		Rules:     make([]RuleDefinition, 0, rules),
	}

	for _, set := range sets {
		out.Templates = append(out.Templates, set.Templates...)
		out.Rules = append(out.Rules, set.Rules...)
	}

	return out
}
