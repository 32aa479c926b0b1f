// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/pathtemplate"
)

const testDefinitions = `
templates:
  - name: project
    fragment: "{project}"
  - name: shot
    fragment: "shots/{shot}/v{version}.exr"
    parent: project
rules:
  - key: project
    pattern: '[^/]+'
  - key: shot
    pattern: '[^/]+'
  - key: version
    format: "03d"
    pattern: '\d+'
    type: int
`

func writeDefinitions(t *testing.T) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "defs.yaml")
	require.NoError(t, os.WriteFile(p, []byte(testDefinitions), 0o600))
	return p
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPathCommand(t *testing.T) {
	t.Parallel()

	defs := writeDefinitions(t)
	out, _, err := runCLI(t, "--definitions", defs, "path", "shot", "project=demo", "shot=sh010", "version=7")
	require.NoError(t, err)
	assert.Equal(t, "demo/shots/sh010/v007.exr\n", out)
}

func TestPathCommandBadField(t *testing.T) {
	t.Parallel()

	defs := writeDefinitions(t)
	_, _, err := runCLI(t, "--definitions", defs, "path", "shot", "version")
	require.Error(t, err)

	_, _, err = runCLI(t, "--definitions", defs, "path", "shot", "version=x")
	require.ErrorIs(t, err, pathtemplate.ErrFieldConversion)
}

func TestFieldsCommand(t *testing.T) {
	t.Parallel()

	defs := writeDefinitions(t)
	out, _, err := runCLI(t, "--definitions", defs, "fields", "shot", "demo/shots/sh010/v007.exr")
	require.NoError(t, err)
	assert.Equal(t, "project=demo\nshot=sh010\nversion=7\n", out)

	out, _, err = runCLI(t, "--definitions", defs, "--json", "fields", "shot", "demo/shots/sh010/v007.exr")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{"project": "demo", "shot": "sh010", "version": float64(7)}, got)
}

func TestNameCommand(t *testing.T) {
	t.Parallel()

	defs := writeDefinitions(t)
	out, _, err := runCLI(t, "--definitions", defs, "name", "demo/shots/sh010/v007.exr")
	require.NoError(t, err)
	assert.Equal(t, "shot\n", out)

	_, _, err = runCLI(t, "--definitions", defs, "name", "a/b/c")
	require.ErrorIs(t, err, pathtemplate.ErrNoTemplateMatch)
}

func TestPathsCommand(t *testing.T) {
	t.Parallel()

	defs := writeDefinitions(t)
	root := t.TempDir()
	for _, name := range []string{"demo/shots/sh010/v001.exr", "demo/shots/sh010/v002.exr", "demo/shots/sh020/v001.exr"} {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o600))
	}

	out, _, err := runCLI(t, "--definitions", defs, "paths", "--root", root, "shot", "version=1")
	require.NoError(t, err)
	assert.Equal(t, "demo/shots/sh010/v001.exr\ndemo/shots/sh020/v001.exr\n", out)
}

func TestTemplatesAndExpandCommands(t *testing.T) {
	t.Parallel()

	defs := writeDefinitions(t)
	out, _, err := runCLI(t, "--definitions", defs, "templates")
	require.NoError(t, err)
	assert.Equal(t, "project\t{project}\nshot\t{project}/shots/{shot}/v{version}.exr\n", out)

	out, _, err = runCLI(t, "--definitions", defs, "expand", "shot")
	require.NoError(t, err)
	assert.Equal(t, "{project}/shots/{shot}/v{version}.exr\n", out)

	_, _, err = runCLI(t, "--definitions", defs, "expand", "missing")
	require.ErrorIs(t, err, pathtemplate.ErrTemplateNotFound)
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	defs := writeDefinitions(t)
	cfg := filepath.Join(t.TempDir(), "pathtemplate.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("definitions:\n  - "+filepath.ToSlash(defs)+"\nverbose: true\n"), 0o600))

	out, errOut, err := runCLI(t, "--config", cfg, "expand", "project")
	require.NoError(t, err)
	assert.Equal(t, "{project}\n", out)
	assert.Contains(t, errOut, "definitions loaded")
}

func TestMissingConfigFile(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "templates")
	require.Error(t, err)
}

func TestDefinitionsFromEnv(t *testing.T) {
	t.Setenv("PATHTEMPLATE_DEFINITIONS", writeDefinitions(t))

	out, _, err := runCLI(t, "path", "project", "project=demo")
	require.NoError(t, err)
	assert.Equal(t, "demo\n", out)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pathtemplate dev\n", out)
}
