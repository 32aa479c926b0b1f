// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/woozymasta/pathtemplate"
)

// parseAssignments parses "key=value" arguments.
func parseAssignments(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid field %q: want key=value", arg)
		}

		out[key] = value
	}

	return out, nil
}

// fieldsFromArgs converts key=value arguments through the manager rules.
func (a *app) fieldsFromArgs(args []string) (pathtemplate.Fields, error) {
	raw, err := parseAssignments(args)
	if err != nil {
		return nil, err
	}

	return a.manager.ConvertFields(raw)
}

// printJSON writes v as indented JSON.
func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printFields writes fields as sorted "key=value" lines or JSON.
func (a *app) printFields(fields pathtemplate.Fields) error {
	if a.cfg.GetBool(cfgKeyJSON) {
		return a.printJSON(fields)
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(a.out, "%s=%v\n", key, fields[key]); err != nil {
			return err
		}
	}

	return nil
}

// printLine writes one plain value, or a JSON object with key when --json is set.
func (a *app) printLine(key string, value string) error {
	if a.cfg.GetBool(cfgKeyJSON) {
		return a.printJSON(map[string]string{key: value})
	}

	_, err := fmt.Fprintln(a.out, value)
	return err
}
