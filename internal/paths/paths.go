// Package paths resolves the project root, configuration directory, and
// library search roots used by the glyph command line.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/cairo-glyph/glyph/pkg/types"
)

// DefaultConfigDirName is the project-relative configuration directory.
const DefaultConfigDirName = ".glyph"

// Environment variable names for directory overrides.
const (
	EnvProjectDir = "GLYPH_PROJECT_DIR"
	EnvConfigDir  = "GLYPH_CONFIG_DIR"
	EnvSearchPath = "GLYPH_PATH"
	EnvVirtualEnv = "VIRTUAL_ENV"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	getwd func() (string, error)
	goos  string
}{
	getwd: os.Getwd,
	goos:  runtime.GOOS,
}

// ResolveProjectDir returns the project root following the precedence chain:
// flag > GLYPH_PROJECT_DIR env > current working directory.
//
// The result is absolute and must name an existing directory.
func ResolveProjectDir(flag string) (string, error) {
	dir := flag
	if dir == "" {
		dir = os.Getenv(EnvProjectDir)
	}
	if dir == "" {
		cwd, err := platformDir.getwd()
		if err != nil {
			return "", err
		}
		dir = cwd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project dir: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project dir %s: %w", abs, types.ErrNotDirectory)
	}
	return abs, nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > GLYPH_CONFIG_DIR env > <project>/.glyph.
func ResolveConfigDir(flag, projectDir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return filepath.Join(projectDir, DefaultConfigDirName), nil
}

// ResolveSearchPaths returns the library search roots following the
// precedence chain: flag > config.yaml search_paths > GLYPH_PATH env >
// site-packages of the active virtual environment.
//
// GLYPH_PATH uses the OS path-list separator. Relative entries from the flag
// or the environment are made absolute against the working directory;
// relative entries from config.yaml resolve against projectDir. An empty
// result is valid and means only the registry contributes libraries.
func ResolveSearchPaths(flag, configValue []string, projectDir string) ([]string, error) {
	if len(flag) > 0 {
		return absAll(flag, "")
	}
	if len(configValue) > 0 {
		return absAll(configValue, projectDir)
	}
	if env := os.Getenv(EnvSearchPath); env != "" {
		return absAll(filepath.SplitList(env), "")
	}
	if venv := os.Getenv(EnvVirtualEnv); venv != "" {
		return VirtualEnvSitePackages(venv), nil
	}
	return nil, nil
}

// VirtualEnvSitePackages returns the site-packages directories of the
// virtual environment rooted at venv, sorted. Unix layouts use
// lib/python*/site-packages; Windows uses Lib/site-packages.
func VirtualEnvSitePackages(venv string) []string {
	var dirs []string
	if platformDir.goos == "windows" {
		dirs = append(dirs, filepath.Join(venv, "Lib", "site-packages"))
	} else {
		matches, _ := filepath.Glob(filepath.Join(venv, "lib", "python*", "site-packages"))
		sort.Strings(matches)
		dirs = append(dirs, matches...)
	}

	var existing []string
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			existing = append(existing, dir)
		}
	}
	return existing
}

// LibsDir returns the absolute directory project copies are written to.
func LibsDir(projectDir, libsDir string) string {
	return filepath.Join(projectDir, filepath.FromSlash(libsDir))
}

// absAll makes every entry absolute, resolving relative entries against base
// when base is non-empty and against the working directory otherwise.
// Empty entries are dropped.
func absAll(entries []string, base string) ([]string, error) {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e == "" {
			continue
		}
		if base != "" && !filepath.IsAbs(e) {
			e = filepath.Join(base, e)
		}
		abs, err := filepath.Abs(e)
		if err != nil {
			return nil, err
		}
		out = append(out, abs)
	}
	return out, nil
}
