// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

import "regexp"

// templatePattern is a compiled, fully anchored template expression.
type templatePattern struct {
	re *regexp.Regexp
	// keys holds the placeholder key of each group in template order.
	keys []string
	// groups holds the submatch index of each group, parallel to keys.
	groups []int
}

// match returns raw captured text per key.
//
// A key that occurs several times must capture identical text at every
// occurrence, otherwise the path does not match.
func (p *templatePattern) match(candidate string) (map[string]string, bool) {
	sub := p.re.FindStringSubmatch(candidate)
	if sub == nil {
		return nil, false
	}

	out := make(map[string]string, len(p.keys))
	for i, key := range p.keys {
		value := sub[p.groups[i]]
		if prev, ok := out[key]; ok && prev != value {
			return nil, false
		}

		out[key] = value
	}

	return out, true
}

// matches reports whether candidate satisfies the pattern.
func (p *templatePattern) matches(candidate string) bool {
	_, ok := p.match(candidate)
	return ok
}
