package discovery

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/cairo-glyph/glyph/pkg/types"
)

// RegistryEntry maps a library name to its directory.
type RegistryEntry struct {
	Name string
	Path string
}

// registryFile is the on-disk registry layout shared by the YAML and TOML
// encodings:
//
//	libraries:
//	  mylib: ../vendor/mylib
type registryFile struct {
	Libraries map[string]string `yaml:"libraries" toml:"libraries"`
}

// LoadRegistry reads a registry file. The encoding is chosen by extension:
// .toml is TOML, anything else is YAML. Relative paths resolve against the
// registry file's directory. Entries are returned ordered by name.
func LoadRegistry(fs afero.Fs, path string) ([]RegistryEntry, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}

	var rf registryFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &rf)
	default:
		err = yaml.Unmarshal(data, &rf)
	}
	if err != nil {
		return nil, fmt.Errorf("registry: failed to parse %s: %w", path, err)
	}

	base := filepath.Dir(path)
	entries := make([]RegistryEntry, 0, len(rf.Libraries))
	for name, dir := range rf.Libraries {
		if !types.ValidName(name) {
			return nil, fmt.Errorf("registry: %q: %w", name, types.ErrInvalidName)
		}
		if dir == "" {
			return nil, fmt.Errorf("registry: %q has no path: %w", name, types.ErrRegistryEntry)
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		dir = filepath.Clean(dir)

		info, err := fs.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("registry: %q: %w", name, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("registry: %q: %s: %w", name, dir, types.ErrNotDirectory)
		}
		entries = append(entries, RegistryEntry{Name: name, Path: dir})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}
