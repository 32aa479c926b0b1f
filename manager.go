// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Manager holds template and rule registries and converts between paths and fields.
//
// Manager is not safe for concurrent mutation. Register templates and rules
// during setup, then query.
type Manager struct {
	templates map[string]Template
	rules     map[string]Rule
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		templates: make(map[string]Template),
		rules:     make(map[string]Rule),
	}
}

// AddTemplate registers or replaces template name.
//
// The optional parent names the template whose expansion precedes fragment.
// Fragments are not validated at registration.
func (m *Manager) AddTemplate(name string, fragment string, parent ...string) {
	t := Template{Name: name, Fragment: fragment}
	if len(parent) > 0 {
		t.Parent = parent[0]
	}

	m.templates[name] = t
}

// AddRule registers or replaces the rule for key.
func (m *Manager) AddRule(key string, opts RuleOptions) {
	m.rules[key] = Rule{Key: key, RuleOptions: opts}
}

// Template returns the registered template definition.
func (m *Manager) Template(name string) (Template, bool) {
	t, ok := m.templates[name]
	return t, ok
}

// Rule returns the registered rule for key.
func (m *Manager) Rule(key string) (Rule, bool) {
	r, ok := m.rules[key]
	return r, ok
}

// Templates returns sorted registered template names.
func (m *Manager) Templates() []string {
	names := make([]string, 0, len(m.templates))
	for name := range m.templates {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}

// Expand returns the root-to-leaf joined template string of name.
//
// A parent name that was never registered ends the chain as if it were a root.
func (m *Manager) Expand(name string) (string, error) {
	if _, ok := m.templates[name]; !ok {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	var fragments []string
	visited := make(map[string]struct{}, 4)

	for current := name; ; {
		t, ok := m.templates[current]
		if !ok {
			break
		}

		if _, seen := visited[current]; seen {
			return "", fmt.Errorf("%w: %q reached again from %q", ErrTemplateCycle, current, name)
		}

		visited[current] = struct{}{}
		fragments = append(fragments, t.Fragment)
		if t.Parent == "" {
			break
		}

		current = t.Parent
	}

	slices.Reverse(fragments)
	return joinFragments(fragments), nil
}

// Keys returns distinct placeholder keys of the expanded template in declaration order.
func (m *Manager) Keys(name string) ([]string, error) {
	expanded, err := m.Expand(name)
	if err != nil {
		return nil, err
	}

	return templateKeys(tokenize(expanded)), nil
}

// Path renders template name with fields.
//
// Placeholders whose key is absent from fields stay verbatim in the result.
func (m *Manager) Path(name string, fields Fields) (string, error) {
	expanded, err := m.Expand(name)
	if err != nil {
		return "", err
	}

	return m.substitute(expanded, fields)
}

// Fields extracts field values from path using template name.
//
// A path that does not fit the template yields an empty map and nil error.
func (m *Manager) Fields(name string, path string) (Fields, error) {
	expanded, err := m.Expand(name)
	if err != nil {
		return nil, err
	}

	return m.extract(expanded, normalizeSeparators(path))
}

// TemplateName returns the single template that round-trips path.
//
// Every registered template is tried: fields are extracted and rendered back,
// and the template matches when the result equals path. Zero or several
// matches fail with *AmbiguousTemplateError.
func (m *Manager) TemplateName(path string) (string, error) {
	path = normalizeSeparators(path)

	var candidates []string
	for _, name := range m.Templates() {
		ok, err := m.roundTrips(name, path)
		if err != nil {
			return "", fmt.Errorf("template %q: %w", name, err)
		}

		if ok {
			candidates = append(candidates, name)
		}
	}

	if len(candidates) != 1 {
		return "", &AmbiguousTemplateError{Path: path, Candidates: candidates}
	}

	return candidates[0], nil
}

// ConvertFields converts raw text values with each key's rule converter.
// Keys without a rule or converter keep their text.
func (m *Manager) ConvertFields(raw map[string]string) (Fields, error) {
	out := make(Fields, len(raw))
	for key, text := range raw {
		v, err := convertField(key, text, m.rules[key].Type)
		if err != nil {
			return nil, err
		}

		out[key] = v
	}

	return out, nil
}

// roundTrips reports whether path extracted and rendered through name yields path.
//
// Values the template rules cannot convert or render mean the template does
// not produce path; only definition errors are returned.
func (m *Manager) roundTrips(name string, path string) (bool, error) {
	expanded, err := m.Expand(name)
	if err != nil {
		return false, err
	}

	fields, err := m.extract(expanded, path)
	if err != nil {
		if errors.Is(err, ErrFieldConversion) {
			return false, nil
		}

		return false, err
	}

	rendered, err := m.substitute(expanded, fields)
	if err != nil {
		if errors.Is(err, ErrInvalidFormat) {
			return false, nil
		}

		return false, err
	}

	return rendered == path, nil
}

// substitute replaces every placeholder whose key is in fields.
func (m *Manager) substitute(expanded string, fields Fields) (string, error) {
	var b strings.Builder

	for _, t := range tokenize(expanded) {
		if !t.isPlaceholder() {
			b.WriteString(t.text)
			continue
		}

		value, ok := fields[t.key]
		if !ok {
			b.WriteString(t.text)
			continue
		}

		rendered, err := m.render(t.key, value)
		if err != nil {
			return "", err
		}

		b.WriteString(rendered)
	}

	return b.String(), nil
}

// render formats one field value with its rule format.
func (m *Manager) render(key string, value any) (string, error) {
	out, err := formatValue(value, m.rules[key].Format)
	if err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}

	return out, nil
}

// extract matches path against expanded and converts captured values.
func (m *Manager) extract(expanded string, path string) (Fields, error) {
	pattern, err := compilePattern(tokenize(expanded), func(key string) string {
		return m.rules[key].fromPathPattern()
	})
	if err != nil {
		return nil, err
	}

	raw, ok := pattern.match(path)
	if !ok {
		return Fields{}, nil
	}

	out := make(Fields, len(raw))
	for key, text := range raw {
		v, err := convertField(key, text, m.rules[key].Type)
		if err != nil {
			return nil, err
		}

		out[key] = v
	}

	return out, nil
}

// validationPattern compiles the enumeration filter: supplied fields match
// their rendered value literally, others match their rule pattern.
func (m *Manager) validationPattern(tokens []token, fields Fields) (*templatePattern, error) {
	literal := make(map[string]string, len(fields))
	for key, value := range fields {
		rendered, err := m.render(key, value)
		if err != nil {
			return nil, err
		}

		literal[key] = regexp.QuoteMeta(rendered)
	}

	return compilePattern(tokens, func(key string) string {
		if lit, ok := literal[key]; ok {
			return lit
		}

		return m.rules[key].fromPathPattern()
	})
}
