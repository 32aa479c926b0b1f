// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

import (
	"fmt"
	"strconv"
	"strings"
)

// Converter turns raw text extracted from a path into a typed value.
type Converter interface {
	Convert(raw string) (any, error)
}

// ConverterFunc adapts a plain function to Converter.
type ConverterFunc func(raw string) (any, error)

// Convert calls f(raw).
func (f ConverterFunc) Convert(raw string) (any, error) {
	return f(raw)
}

// Built-in converters.
var (
	// String keeps raw text unchanged.
	String Converter = ConverterFunc(func(raw string) (any, error) {
		return raw, nil
	})
	// Int parses base-10 integers, leading zeros allowed ("0007" -> 7).
	Int Converter = ConverterFunc(func(raw string) (any, error) {
		return strconv.Atoi(raw)
	})
	// Float parses 64-bit floats.
	Float Converter = ConverterFunc(func(raw string) (any, error) {
		return strconv.ParseFloat(raw, 64)
	})
	// Bool parses strconv boolean forms ("1", "t", "true", ...).
	Bool Converter = ConverterFunc(func(raw string) (any, error) {
		return strconv.ParseBool(raw)
	})
)

var namedConverters = map[string]Converter{
	"":       String,
	"str":    String,
	"string": String,
	"int":    Int,
	"float":  Float,
	"bool":   Bool,
}

// LookupConverter returns a built-in converter by type name.
//
// Accepted names are "string" (or "str"), "int", "float" and "bool",
// case-insensitive. Empty name resolves to String.
func LookupConverter(name string) (Converter, error) {
	conv, ok := namedConverters[asciiLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidDefinition, name)
	}

	return conv, nil
}

// convertField applies conv to raw and wraps failures with key context.
func convertField(key string, raw string, conv Converter) (any, error) {
	if conv == nil {
		return raw, nil
	}

	v, err := conv.Convert(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q value %q: %v", ErrFieldConversion, key, raw, err)
	}

	return v, nil
}
