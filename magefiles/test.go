//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const scriptPkg = "./cmd/glyph"

// Test groups test targets (all, unit, scripts).
type Test mg.Namespace

// All runs every test, including the CLI scripts.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs package tests, skipping the scripted CLI scenarios.
func (Test) Unit() error {
	pkgs, err := sh.Output(binGo, "list", "./...")
	if err != nil {
		return err
	}
	var unitPkgs []string
	for pkg := range strings.SplitSeq(pkgs, "\n") {
		if pkg != "" && !strings.HasSuffix(pkg, "/cmd/glyph") {
			unitPkgs = append(unitPkgs, pkg)
		}
	}
	if len(unitPkgs) == 0 {
		fmt.Println("No unit test packages found.")
		return nil
	}
	args := append([]string{"test"}, unitPkgs...)
	return sh.RunV(binGo, args...)
}

// Scripts runs the testscript scenarios in cmd/glyph/testdata/script.
func (Test) Scripts() error {
	return sh.RunV(binGo, "test", "-v", "-run", "TestScript", scriptPkg)
}
