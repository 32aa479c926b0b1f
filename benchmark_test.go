// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

import (
	"fmt"
	"testing"
	"testing/fstest"
)

const benchTemplateCount = 64

var (
	benchPathSink   string
	benchFieldsSink Fields
	benchCountSink  int
)

func buildBenchmarkManager(n int) *Manager {
	m := newShotManager()
	for i := 0; i < n; i++ {
		m.AddTemplate(fmt.Sprintf("extra%03d", i), fmt.Sprintf("extra%03d/{item}.dat", i), "project")
	}

	return m
}

func BenchmarkPath(b *testing.B) {
	m := buildBenchmarkManager(benchTemplateCount)
	fields := Fields{"project": "demo", "shot": "sh010", "version": 3, "ext": "exr"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := m.Path("shot", fields)
		if err != nil {
			b.Fatal(err)
		}

		benchPathSink = p
	}
}

func BenchmarkFields(b *testing.B) {
	m := buildBenchmarkManager(benchTemplateCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, err := m.Fields("shot", "demo/shots/sh010/v003.exr")
		if err != nil {
			b.Fatal(err)
		}

		benchFieldsSink = f
	}
}

func BenchmarkTemplateName(b *testing.B) {
	m := buildBenchmarkManager(benchTemplateCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		name, err := m.TemplateName("demo/shots/sh010/v003.exr")
		if err != nil {
			b.Fatal(err)
		}

		benchPathSink = name
	}
}

func BenchmarkPathsFS(b *testing.B) {
	fsys := fstest.MapFS{}
	for i := 0; i < 256; i++ {
		fsys[fmt.Sprintf("demo/shots/sh%03d/v001.exr", i)] = &fstest.MapFile{}
	}

	m := buildBenchmarkManager(0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, err := m.PathsFS(fsys, "shot", Fields{"project": "demo"})
		if err != nil {
			b.Fatal(err)
		}

		count := 0
		for _, err := range seq {
			if err != nil {
				b.Fatal(err)
			}
			count++
		}

		benchCountSink = count
	}
}
