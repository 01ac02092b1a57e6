package discovery

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/cairo-glyph/glyph/pkg/types"
)

// Options configures a discovery run.
type Options struct {
	// Namespace is the dotted namespace to look under, e.g. "contracts".
	Namespace string
	// SearchPaths are the roots scanned in order; the first root that
	// provides a name wins.
	SearchPaths []string
	// Registry is an optional registry file. Its entries replace scanned
	// libraries of the same name.
	Registry string
	// Exclude lists name patterns that never count as libraries.
	Exclude []string
}

// Discoverer scans search roots and registry files on a filesystem.
type Discoverer struct {
	fs     afero.Fs
	logger *log.Logger
}

// New returns a Discoverer reading from fs. A nil logger discards output.
func New(fs afero.Fs, logger *log.Logger) *Discoverer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Discoverer{fs: fs, logger: logger}
}

// Discover builds the catalog for opts.
func (d *Discoverer) Discover(opts Options) (*Catalog, error) {
	cat := NewCatalog(opts.Namespace)

	for _, root := range opts.SearchPaths {
		if err := d.scanRoot(cat, root, opts); err != nil {
			return nil, err
		}
	}

	if opts.Registry != "" {
		entries, err := LoadRegistry(d.fs, opts.Registry)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			lib := types.Library{
				Name:      e.Name,
				Namespace: opts.Namespace,
				Path:      e.Path,
				Origin:    opts.Registry,
			}
			if prev, replaced := cat.put(lib); replaced {
				d.logger.Debug("registry overrides scanned library", "library", lib.QualifiedName(), "scanned", prev.Path, "registry", lib.Path)
			}
		}
	}

	d.logger.Debug("discovery finished", "namespace", opts.Namespace, "libraries", cat.Len())
	return cat, nil
}

// scanRoot adds every library directory under <root>/<namespace path>.
func (d *Discoverer) scanRoot(cat *Catalog, root string, opts Options) error {
	nsDir := filepath.Join(append([]string{root}, strings.Split(opts.Namespace, ".")...)...)

	entries, err := afero.ReadDir(d.fs, nsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			d.logger.Debug("namespace not present in search root", "root", root)
			return nil
		}
		return fmt.Errorf("scan %s: %w", nsDir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !types.ValidName(name) || matchesAny(name, opts.Exclude) {
			continue
		}

		path := filepath.Join(nsDir, name)
		info := entry
		if entry.Mode()&os.ModeSymlink != 0 {
			if info, err = d.fs.Stat(path); err != nil {
				d.logger.Warn("skipping unreadable symlink", "path", path, "err", err)
				continue
			}
		}
		if !info.IsDir() {
			continue
		}

		lib := types.Library{
			Name:      name,
			Namespace: opts.Namespace,
			Path:      path,
			Origin:    root,
		}
		if !cat.add(lib) {
			d.logger.Debug("shadowed library ignored", "library", lib.QualifiedName(), "path", path)
		}
	}
	return nil
}

// matchesAny reports whether name matches one of patterns.
func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}
