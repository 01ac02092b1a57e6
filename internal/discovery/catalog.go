// Package discovery finds installed contract libraries and selects the ones
// a command should act on.
//
// Libraries come from two places: directories found under the namespace
// directory of each search root (for example
// site-packages/contracts/<name>), and entries of an optional registry file
// that maps names to directories.
package discovery

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cairo-glyph/glyph/pkg/types"
)

// Catalog is the set of discovered libraries, keyed by short name.
type Catalog struct {
	namespace string
	libs      map[string]types.Library
}

// NewCatalog returns an empty catalog for namespace.
func NewCatalog(namespace string) *Catalog {
	return &Catalog{
		namespace: namespace,
		libs:      make(map[string]types.Library),
	}
}

// Namespace returns the namespace the catalog was built for.
func (c *Catalog) Namespace() string {
	return c.namespace
}

// Len returns the number of libraries in the catalog.
func (c *Catalog) Len() int {
	return len(c.libs)
}

// add inserts lib unless a library of the same name is present. It reports
// whether lib was inserted.
func (c *Catalog) add(lib types.Library) bool {
	if _, ok := c.libs[lib.Name]; ok {
		return false
	}
	c.libs[lib.Name] = lib
	return true
}

// put inserts lib, replacing any library of the same name. It returns the
// replaced library, if any.
func (c *Catalog) put(lib types.Library) (types.Library, bool) {
	prev, ok := c.libs[lib.Name]
	c.libs[lib.Name] = lib
	return prev, ok
}

// Get looks a library up by short or fully-qualified name.
func (c *Catalog) Get(name string) (types.Library, bool) {
	lib, ok := c.libs[c.shortName(name)]
	return lib, ok
}

// All returns every library ordered by name.
func (c *Catalog) All() []types.Library {
	out := make([]types.Library, 0, len(c.libs))
	for _, lib := range c.libs {
		out = append(out, lib)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Select narrows the catalog to the libraries a command should act on.
//
// With all set the whole catalog is returned and name is ignored. Otherwise
// name must be present, given either as "<name>" or "<namespace>.<name>";
// an absent name yields ErrLibraryNotFound and an empty name yields
// ErrNoSelection.
func (c *Catalog) Select(all bool, name string) ([]types.Library, error) {
	if all {
		return c.All(), nil
	}
	if name == "" {
		return nil, types.ErrNoSelection
	}
	lib, ok := c.Get(name)
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", c.namespace, c.shortName(name), types.ErrLibraryNotFound)
	}
	return []types.Library{lib}, nil
}

func (c *Catalog) shortName(name string) string {
	return strings.TrimPrefix(name, c.namespace+".")
}
