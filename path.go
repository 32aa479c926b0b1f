// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

import "strings"

// normalizeSeparators replaces backslash separators with forward slashes.
func normalizeSeparators(raw string) string {
	if strings.Contains(raw, `\`) {
		return strings.ReplaceAll(raw, `\`, `/`)
	}

	return raw
}

// joinFragments joins root-to-leaf fragments with "/".
//
// Join follows the usual path-join contract: an absolute fragment discards
// everything accumulated before it, and no separator is doubled when the
// accumulated text already ends with one.
func joinFragments(fragments []string) string {
	var b strings.Builder

	for _, fragment := range fragments {
		fragment = normalizeSeparators(fragment)
		if strings.HasPrefix(fragment, "/") {
			b.Reset()
			b.WriteString(fragment)
			continue
		}

		if b.Len() > 0 && !strings.HasSuffix(b.String(), "/") {
			b.WriteByte('/')
		}

		b.WriteString(fragment)
	}

	return b.String()
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
