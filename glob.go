// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path"
	"strings"
)

// Paths enumerates existing local filesystem paths matching template name.
//
// Keys present in fields must match their rendered value exactly; absent keys
// match their rule pattern. Absolute templates are enumerated from "/",
// relative ones from the working directory. The returned sequence is lazy:
// directories are read while the consumer iterates, and every iteration walks
// the filesystem again. Read failures are yielded as (dir, err) pairs and
// enumeration continues; missing directories yield nothing.
func (m *Manager) Paths(name string, fields Fields) (iter.Seq2[string, error], error) {
	return m.paths(localFS{}, name, fields)
}

// PathsFS is Paths over fsys. Relative templates resolve against the fsys
// root; absolute templates treat the fsys root as "/" and yield absolute paths.
func (m *Manager) PathsFS(fsys fs.FS, name string, fields Fields) (iter.Seq2[string, error], error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: nil filesystem", ErrInvalidDefinition)
	}

	return m.paths(subFS{fsys: fsys}, name, fields)
}

func (m *Manager) paths(fsys walkFS, name string, fields Fields) (iter.Seq2[string, error], error) {
	expanded, err := m.Expand(name)
	if err != nil {
		return nil, err
	}

	tokens := tokenize(expanded)
	pattern, err := m.validationPattern(tokens, fields)
	if err != nil {
		return nil, err
	}

	g := &globber{
		fsys:    fsys,
		pattern: pattern,
	}

	root, segments := splitGlob(globPattern(tokens))
	return func(yield func(string, error) bool) {
		g.walk(root, segments, yield)
	}, nil
}

// splitGlob separates an optional absolute root from glob segments.
// Empty segments are kept so doubled and trailing separators survive in
// candidate paths.
func splitGlob(glob string) (string, []string) {
	root := ""
	if rest, ok := strings.CutPrefix(glob, "/"); ok {
		root, glob = "/", rest
	}

	if glob == "" {
		return root, nil
	}

	return root, strings.Split(glob, "/")
}

// globber walks glob segments and filters candidates with the validation pattern.
type globber struct {
	fsys    walkFS
	pattern *templatePattern
}

// walk descends one segment and reports whether the consumer wants more.
func (g *globber) walk(dir string, segments []string, yield func(string, error) bool) bool {
	if len(segments) == 0 {
		if dir == "" || !g.pattern.matches(dir) {
			return true
		}

		return yield(dir, nil)
	}

	seg, rest := segments[0], segments[1:]
	if !hasWildcard(seg) {
		next := joinPath(dir, seg)
		if len(rest) > 0 {
			return g.walk(next, rest, yield)
		}

		if seg == "" {
			// Trailing separator matches directories only.
			info, err := g.fsys.stat(dir)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return true
				}

				return yield(dir, err)
			}

			if !info.IsDir() {
				return true
			}

			return g.walk(next, nil, yield)
		}

		if _, err := g.fsys.stat(next); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return true
			}

			return yield(next, err)
		}

		return g.walk(next, nil, yield)
	}

	entries, err := g.fsys.readDir(dir)
	if err != nil {
		if g.missingDir(dir) {
			return true
		}

		return yield(dir, err)
	}

	hidden := strings.HasPrefix(seg, ".")
	for _, entry := range entries {
		entryName := entry.Name()
		if strings.HasPrefix(entryName, ".") && !hidden {
			continue
		}

		if !matchSimpleWildcard(seg, entryName) {
			continue
		}

		if len(rest) > 0 && !g.isDir(joinPath(dir, entryName), entry) {
			continue
		}

		if !g.walk(joinPath(dir, entryName), rest, yield) {
			return false
		}
	}

	return true
}

// missingDir reports whether dir is absent or not a directory.
func (g *globber) missingDir(dir string) bool {
	info, err := g.fsys.stat(dir)
	if err != nil {
		return errors.Is(err, fs.ErrNotExist)
	}

	return !info.IsDir()
}

// isDir reports whether entry is a directory, following symlinks.
func (g *globber) isDir(p string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}

	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := g.fsys.stat(p)
	return err == nil && info.IsDir()
}

// joinPath appends name to dir with a "/" separator. An empty name keeps
// the separator, so "a" + "" + "f" walks as "a//f".
func joinPath(dir string, name string) string {
	switch dir {
	case "":
		return name
	case "/":
		return dir + name
	default:
		return dir + "/" + name
	}
}

// walkFS is the directory access used by enumeration.
type walkFS interface {
	readDir(name string) ([]fs.DirEntry, error)
	stat(name string) (fs.FileInfo, error)
}

// localFS reads the local filesystem; "" is the working directory.
type localFS struct{}

func (localFS) readDir(name string) ([]fs.DirEntry, error) {
	if name == "" {
		name = "."
	}

	return os.ReadDir(name)
}

func (localFS) stat(name string) (fs.FileInfo, error) {
	if name == "" {
		name = "."
	}

	return os.Stat(name)
}

// subFS maps slash paths onto an fs.FS rooted at "/".
type subFS struct {
	fsys fs.FS
}

func (s subFS) readDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(s.fsys, fsName(name))
}

func (s subFS) stat(name string) (fs.FileInfo, error) {
	return fs.Stat(s.fsys, fsName(name))
}

// fsName converts a walk path into a clean fs.FS name.
func fsName(name string) string {
	return path.Clean(strings.TrimPrefix(name, "/"))
}
