//go:build mage

// Package main provides build targets for the pathtemplate project using Mage.
//
// Usage:
//
//	mage build     Compile pathtemplate binary to bin/
//	mage test      Run all tests
//	mage bench     Run benchmarks for the root package
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "pathtemplate"
	binaryDir  = "bin"
	cmdDir     = "./cmd/pathtemplate"
)

// Default target to run when none is specified.
var Default = Build

// Build compiles the pathtemplate binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Bench runs benchmarks of the root package.
func Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem", ".")
}

// Lint runs golangci-lint after tests pass.
func Lint() error {
	mg.Deps(Test)
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
