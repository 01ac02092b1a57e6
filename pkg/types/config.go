package types

import (
	"errors"
	"path/filepath"
	"strings"
)

// Defaults applied when configuration leaves a field empty.
const (
	DefaultNamespace = "contracts"
	DefaultLibsDir   = "contracts/libs"
)

// DefaultExclude lists the build artifacts never copied into a project.
var DefaultExclude = []string{"__init__.py", "__pycache__"}

// SkipPolicy decides what install does when the destination copy exists.
type SkipPolicy string

// Supported skip policies.
const (
	// SkipExisting leaves an existing copy alone and reports it as skipped.
	SkipExisting SkipPolicy = "skip"
	// SkipVerify compares an existing copy against its source before skipping.
	SkipVerify SkipPolicy = "verify"
)

// Config holds the settings that drive discovery and install.
type Config struct {
	Namespace   string     `json:"namespace" yaml:"namespace"`
	LibsDir     string     `json:"libs_dir" yaml:"libs_dir"`
	SearchPaths []string   `json:"search_paths,omitempty" yaml:"search_paths,omitempty"`
	Registry    string     `json:"registry,omitempty" yaml:"registry,omitempty"`
	Exclude     []string   `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	SkipPolicy  SkipPolicy `json:"skip_policy" yaml:"skip_policy"`
}

// Config validation errors.
var (
	ErrNamespaceInvalid  = errors.New("namespace must be a dotted identifier")
	ErrLibsDirInvalid    = errors.New("libs_dir must be a relative path inside the project")
	ErrSkipPolicyUnknown = errors.New("unknown skip policy")
	ErrExcludeInvalid    = errors.New("invalid exclude pattern")
)

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{
		Namespace:  DefaultNamespace,
		LibsDir:    DefaultLibsDir,
		SkipPolicy: SkipExisting,
	}
}

// WithDefaults fills empty fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Namespace == "" {
		c.Namespace = d.Namespace
	}
	if c.LibsDir == "" {
		c.LibsDir = d.LibsDir
	}
	if c.SkipPolicy == "" {
		c.SkipPolicy = d.SkipPolicy
	}
	return c
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	for _, part := range strings.Split(c.Namespace, ".") {
		if !ValidName(part) {
			return ErrNamespaceInvalid
		}
	}

	libs := filepath.Clean(filepath.FromSlash(c.LibsDir))
	if c.LibsDir == "" || filepath.IsAbs(libs) || libs == "." ||
		libs == ".." || strings.HasPrefix(libs, ".."+string(filepath.Separator)) {
		return ErrLibsDirInvalid
	}

	switch c.SkipPolicy {
	case SkipExisting, SkipVerify:
	default:
		return ErrSkipPolicyUnknown
	}

	for _, pattern := range c.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return ErrExcludeInvalid
		}
	}
	return nil
}

// ExcludePatterns returns the default artifacts followed by any configured
// extra patterns.
func (c Config) ExcludePatterns() []string {
	patterns := make([]string, 0, len(DefaultExclude)+len(c.Exclude))
	patterns = append(patterns, DefaultExclude...)
	return append(patterns, c.Exclude...)
}
