// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// placeholderRE matches "{key}" with optional horizontal whitespace inside braces.
var placeholderRE = regexp.MustCompile(`\{[\t ]*(.+?)[\t ]*\}`)

// token is one literal span or one placeholder of an expanded template.
type token struct {
	// text is the literal span, or the verbatim placeholder source ("{ key }").
	text string
	// key is the trimmed placeholder key, empty for literal spans.
	key string
}

// isPlaceholder reports whether token is a placeholder.
func (t token) isPlaceholder() bool {
	return t.key != ""
}

// tokenize splits an expanded template into literal and placeholder tokens
// preserving source order. Empty literal spans are omitted.
func tokenize(template string) []token {
	matches := placeholderRE.FindAllStringSubmatchIndex(template, -1)
	tokens := make([]token, 0, len(matches)*2+1)

	last := 0
	for _, m := range matches {
		if m[0] > last {
			tokens = append(tokens, token{text: template[last:m[0]]})
		}

		tokens = append(tokens, token{
			text: template[m[0]:m[1]],
			key:  template[m[2]:m[3]],
		})
		last = m[1]
	}

	if last < len(template) {
		tokens = append(tokens, token{text: template[last:]})
	}

	return tokens
}

// templateKeys returns distinct placeholder keys in declaration order.
func templateKeys(tokens []token) []string {
	seen := make(map[string]struct{}, len(tokens))
	keys := make([]string, 0, len(tokens))

	for _, t := range tokens {
		if !t.isPlaceholder() {
			continue
		}

		if _, ok := seen[t.key]; ok {
			continue
		}

		seen[t.key] = struct{}{}
		keys = append(keys, t.key)
	}

	return keys
}

// groupName returns the regexp group name of the n-th placeholder.
func groupName(n int) string {
	return "f" + strconv.Itoa(n)
}

// compilePattern builds an anchored regular expression from tokens.
//
// Every literal span is quoted. Every placeholder becomes a named group whose
// body is returned by body(key); groups are named by placeholder position so
// rule patterns may carry their own groups.
func compilePattern(tokens []token, body func(key string) string) (*templatePattern, error) {
	var b strings.Builder
	b.WriteByte('^')

	keys := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !t.isPlaceholder() {
			b.WriteString(regexp.QuoteMeta(t.text))
			continue
		}

		b.WriteString("(?P<")
		b.WriteString(groupName(len(keys)))
		b.WriteByte('>')
		b.WriteString(body(t.key))
		b.WriteByte(')')
		keys = append(keys, t.key)
	}

	b.WriteByte('$')

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	groups := make([]int, len(keys))
	for i := range keys {
		groups[i] = re.SubexpIndex(groupName(i))
	}

	return &templatePattern{re: re, keys: keys, groups: groups}, nil
}

// globPattern builds a filesystem glob from tokens: literals verbatim and
// every placeholder as a single "*".
func globPattern(tokens []token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.isPlaceholder() {
			b.WriteByte('*')
			continue
		}

		b.WriteString(t.text)
	}

	return b.String()
}

// hasWildcard reports whether a glob segment contains "*" or "?".
func hasWildcard(segment string) bool {
	return strings.ContainsAny(segment, "*?")
}

// matchSimpleWildcard matches "*" and "?" wildcard pattern against one segment.
func matchSimpleWildcard(pattern string, input string) bool {
	pIdx := 0
	sIdx := 0
	starPattern := -1
	starInput := 0

	for sIdx < len(input) {
		if pIdx < len(pattern) && (pattern[pIdx] == '?' || pattern[pIdx] == input[sIdx]) {
			pIdx++
			sIdx++
			continue
		}

		if pIdx < len(pattern) && pattern[pIdx] == '*' {
			// Remember star position and continue greedily from current input index.
			starPattern = pIdx
			pIdx++
			starInput = sIdx
			continue
		}

		if starPattern >= 0 {
			// Mismatch after a previous star: backtrack pattern to token after '*'
			// and let '*' consume one more input byte.
			pIdx = starPattern + 1
			starInput++
			sIdx = starInput
			continue
		}

		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}
