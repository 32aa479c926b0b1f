// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pathtemplate operations.
var (
	// ErrTemplateNotFound indicates a query for a template name that was never registered.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrTemplateCycle indicates a parent chain that loops back onto itself.
	ErrTemplateCycle = errors.New("template parent cycle")
	// ErrAmbiguousTemplate indicates that a path does not resolve to exactly one template.
	ErrAmbiguousTemplate = errors.New("ambiguous template")
	// ErrNoTemplateMatch indicates that no registered template matches a path.
	ErrNoTemplateMatch = errors.New("no template matches path")
	// ErrInvalidPattern indicates a rule pattern that is not a valid regular expression.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidFormat indicates a malformed format spec or a value it cannot render.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrFieldConversion indicates a rule converter rejected an extracted value.
	ErrFieldConversion = errors.New("field conversion failed")
	// ErrInvalidDefinition indicates malformed template or rule definition input.
	ErrInvalidDefinition = errors.New("invalid definition")
)

// AmbiguousTemplateError is returned by Manager.TemplateName when a path
// resolves to zero or to more than one template.
type AmbiguousTemplateError struct {
	// Path is the normalized input path.
	Path string
	// Candidates are sorted names of every template that round-trips the path.
	Candidates []string
}

// Error implements error.
func (e *AmbiguousTemplateError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("%s: %q", ErrNoTemplateMatch, e.Path)
	}

	return fmt.Sprintf("%s: %q matches %s", ErrAmbiguousTemplate, e.Path, strings.Join(e.Candidates, ", "))
}

// Is reports ErrAmbiguousTemplate for every instance and ErrNoTemplateMatch
// when there are no candidates.
func (e *AmbiguousTemplateError) Is(target error) bool {
	switch target {
	case ErrAmbiguousTemplate:
		return true
	case ErrNoTemplateMatch:
		return len(e.Candidates) == 0
	default:
		return false
	}
}
