// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a definitions document encoding.
type Format string

const (
	// FormatYAML decodes YAML documents.
	FormatYAML Format = "yaml"
	// FormatTOML decodes TOML documents.
	FormatTOML Format = "toml"
)

// FormatFromPath returns the document format for a file extension.
func FormatFromPath(path string) (Format, error) {
	switch asciiLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: unsupported file extension %q", ErrInvalidDefinition, filepath.Ext(path))
	}
}

// ParseDefinitions decodes and validates a definitions document.
//
// Unknown document keys are rejected. An empty document yields empty definitions.
func ParseDefinitions(r io.Reader, format Format) (Definitions, error) {
	var defs Definitions

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&defs); err != nil && !errors.Is(err, io.EOF) {
			return Definitions{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalidDefinition, err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&defs); err != nil {
			return Definitions{}, fmt.Errorf("%w: decode toml: %v", ErrInvalidDefinition, err)
		}
	default:
		return Definitions{}, fmt.Errorf("%w: unsupported format %q", ErrInvalidDefinition, format)
	}

	if err := defs.Validate(); err != nil {
		return Definitions{}, err
	}

	return defs, nil
}

// ParseDefinitionsString decodes definitions from string input.
func ParseDefinitionsString(src string, format Format) (Definitions, error) {
	return ParseDefinitions(strings.NewReader(src), format)
}

// Validate checks names, keys and converter type names.
func (d Definitions) Validate() error {
	for i, t := range d.Templates {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%w: template %d has empty name", ErrInvalidDefinition, i)
		}
	}

	for i, r := range d.Rules {
		if strings.TrimSpace(r.Key) == "" {
			return fmt.Errorf("%w: rule %d has empty key", ErrInvalidDefinition, i)
		}

		if _, err := LookupConverter(r.Type); err != nil {
			return fmt.Errorf("rule %q: %w", r.Key, err)
		}
	}

	return nil
}
