// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectPaths(t *testing.T, seq iter.Seq2[string, error]) []string {
	t.Helper()

	var out []string
	for p, err := range seq {
		require.NoError(t, err)
		out = append(out, p)
	}

	return out
}

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()

	for _, name := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
	}
}

func TestPathsLocalFilter(t *testing.T) {
	t.Parallel()

	root := filepath.ToSlash(t.TempDir())
	writeTree(t, root, "a/1.txt", "a/2.txt", "b/1.txt")

	m := NewManager()
	m.AddTemplate("root", root)
	m.AddTemplate("files", "{dir}/{num}.txt", "root")
	m.AddRule("dir", RuleOptions{Pattern: "a"})

	seq, err := m.Paths("files", Fields{})
	require.NoError(t, err)
	assert.Equal(t, []string{root + "/a/1.txt", root + "/a/2.txt"}, collectPaths(t, seq))
}

func TestPathsSuppliedField(t *testing.T) {
	t.Parallel()

	root := filepath.ToSlash(t.TempDir())
	writeTree(t, root, "a/1.txt", "a/2.txt", "b/1.txt", "b/01.txt")

	m := NewManager()
	m.AddTemplate("files", root+"/{dir}/{num}.txt")
	m.AddRule("num", RuleOptions{Format: "02d", Pattern: `\d+`, Type: Int})

	seq, err := m.Paths("files", Fields{"num": 1})
	require.NoError(t, err)
	assert.Equal(t, []string{root + "/b/01.txt"}, collectPaths(t, seq))
}

func TestPathsFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a/1.txt":       {},
		"a/2.txt":       {},
		"a/.hidden.txt": {},
		"a/notes.md":    {},
		"b/1.txt":       {},
		"c":             {},
	}

	m := NewManager()
	m.AddTemplate("files", "{dir}/{num}.txt")

	seq, err := m.PathsFS(fsys, "files", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/1.txt", "a/2.txt", "b/1.txt"}, collectPaths(t, seq))
}

func TestPathsFSHiddenSegment(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a/.cache.txt": {},
		"a/1.txt":      {},
	}

	m := NewManager()
	m.AddTemplate("hidden", "{dir}/.{name}.txt")

	seq, err := m.PathsFS(fsys, "hidden", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/.cache.txt"}, collectPaths(t, seq))
}

func TestPathsFSAbsoluteTemplate(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"data/show/sh010.exr": {},
		"data/show/sh020.exr": {},
		"data/other.exr":      {},
	}

	m := NewManager()
	m.AddTemplate("root", "/data")
	m.AddTemplate("shot", "{project}/{shot}.exr", "root")

	seq, err := m.PathsFS(fsys, "shot", Fields{"shot": "sh020"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/show/sh020.exr"}, collectPaths(t, seq))
}

func TestPathsFSLiteralLeaf(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a/meta.json": {},
		"b/other":     {},
	}

	m := NewManager()
	m.AddTemplate("meta", "{dir}/meta.json")

	seq, err := m.PathsFS(fsys, "meta", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/meta.json"}, collectPaths(t, seq))
}

func TestPathsMissingDirectory(t *testing.T) {
	t.Parallel()

	m := NewManager()
	m.AddTemplate("files", "missing/{dir}/{num}.txt")

	seq, err := m.PathsFS(fstest.MapFS{"other/x.txt": {}}, "files", nil)
	require.NoError(t, err)
	assert.Empty(t, collectPaths(t, seq))
}

func TestPathsStopEarlyAndRestart(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a/1.txt": {},
		"a/2.txt": {},
		"b/1.txt": {},
	}

	m := NewManager()
	m.AddTemplate("files", "{dir}/{num}.txt")

	seq, err := m.PathsFS(fsys, "files", nil)
	require.NoError(t, err)

	var first []string
	for p, err := range seq {
		require.NoError(t, err)
		first = append(first, p)
		break
	}
	assert.Equal(t, []string{"a/1.txt"}, first)

	assert.Len(t, collectPaths(t, seq), 3)
	assert.Len(t, collectPaths(t, seq), 3)
}

func TestPathsFSNil(t *testing.T) {
	t.Parallel()

	m := NewManager()
	m.AddTemplate("files", "{x}")

	_, err := m.PathsFS(nil, "files", nil)
	require.Error(t, err)
}

func TestSplitGlob(t *testing.T) {
	t.Parallel()

	root, segments := splitGlob("/data//*/x.*")
	assert.Equal(t, "/", root)
	assert.Equal(t, []string{"data", "", "*", "x.*"}, segments)

	root, segments = splitGlob("*/*.txt")
	assert.Empty(t, root)
	assert.Equal(t, []string{"*", "*.txt"}, segments)

	root, segments = splitGlob("/")
	assert.Equal(t, "/", root)
	assert.Empty(t, segments)
}

func TestMatchSimpleWildcard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{pattern: "*", input: "abc", want: true},
		{pattern: "*.txt", input: "a.txt", want: true},
		{pattern: "*.txt", input: "a.md", want: false},
		{pattern: "v*.*", input: "v003.exr", want: true},
		{pattern: "?.txt", input: "ab.txt", want: false},
		{pattern: "a*b*c", input: "axxbyyc", want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchSimpleWildcard(tt.pattern, tt.input), "%s vs %s", tt.pattern, tt.input)
	}
}

// readDirFailFS fails ReadDir for one directory and serves the rest from MapFS.
type readDirFailFS struct {
	fstest.MapFS
	fail string
}

func (f readDirFailFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name == f.fail {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrPermission}
	}

	return f.MapFS.ReadDir(name)
}

func TestPathsFSReadErrorContinues(t *testing.T) {
	t.Parallel()

	fsys := readDirFailFS{
		MapFS: fstest.MapFS{
			"a/1.txt": {},
			"b/1.txt": {},
			"c/1.txt": {},
		},
		fail: "b",
	}

	m := NewManager()
	m.AddTemplate("files", "{dir}/{num}.txt")

	seq, err := m.PathsFS(fsys, "files", nil)
	require.NoError(t, err)

	var paths []string
	var errs []error
	for p, err := range seq {
		if err != nil {
			assert.Equal(t, "b", p)
			errs = append(errs, err)
			continue
		}

		paths = append(paths, p)
	}

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], fs.ErrPermission)
	assert.Equal(t, []string{"a/1.txt", "c/1.txt"}, paths)
}

func TestPathsFSDoubledSeparator(t *testing.T) {
	t.Parallel()

	m := NewManager()
	m.AddTemplate("double", "a//{x}")

	rendered, err := m.Path("double", Fields{"x": "f"})
	require.NoError(t, err)
	require.Equal(t, "a//f", rendered)

	seq, err := m.PathsFS(fstest.MapFS{"a/f": {}}, "double", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a//f"}, collectPaths(t, seq))
}

func TestPathsFSTrailingSeparator(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"d/f": {},
		"g":   {},
	}

	m := NewManager()
	m.AddTemplate("dirs", "{x}/")

	seq, err := m.PathsFS(fsys, "dirs", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"d/"}, collectPaths(t, seq))
}
