//go:build mage

// Package main provides build targets for glyph using Mage.
//
// Usage:
//
//	mage build          Compile glyph binary to bin/
//	mage test:all       Run all tests (unit + scripts)
//	mage test:unit      Run package tests only
//	mage test:scripts   Run the testscript CLI scenarios
//	mage lint           Run golangci-lint
//	mage vet            Run go vet
//	mage clean          Remove build artifacts
//	mage install        Install glyph to GOPATH/bin
//	mage stats          Print Go LOC and documentation word counts
package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Stats prints Go lines of code and documentation word counts.
func Stats() error {
	var prodLines, testLines, scriptLines int

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			switch path {
			case "vendor", ".git", binaryDir, "magefiles", "_examples":
				return filepath.SkipDir
			}
			return nil
		}
		switch {
		case strings.HasSuffix(path, ".txtar"):
			n, err := countLines(path)
			if err == nil {
				scriptLines += n
			}
		case strings.HasSuffix(path, "_test.go"):
			n, err := countLines(path)
			if err == nil {
				testLines += n
			}
		case strings.HasSuffix(path, ".go"):
			n, err := countLines(path)
			if err == nil {
				prodLines += n
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	docWords, err := countDocWords()
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Lines of test scripts (txtar):  %d\n", scriptLines)
	fmt.Printf("Words (documentation):          %d\n", docWords)
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}

func countDocWords() (int, error) {
	total := 0
	for _, pattern := range []string{"*.md", "docs/*.md"} {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		for _, path := range matches {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			total += countWords(string(data))
		}
	}
	return total, nil
}

func countWords(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count
}
