package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cairo-glyph/glyph/pkg/types"
)

// writeFile creates path and its parents on fs.
func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func defaultOptions(roots ...string) Options {
	return Options{
		Namespace:   types.DefaultNamespace,
		SearchPaths: roots,
		Exclude:     types.DefaultExclude,
	}
}

func TestDiscover_ScansNamespaceDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/site/contracts/mylib/file.cairo", "func main() {}")
	writeFile(t, fs, "/site/contracts/mylib/__init__.py", "")
	writeFile(t, fs, "/site/contracts/other/lib.cairo", "")
	writeFile(t, fs, "/site/contracts/__pycache__/x.pyc", "")
	writeFile(t, fs, "/site/contracts/.hidden/a.cairo", "")
	writeFile(t, fs, "/site/contracts/not-an-ident/a.cairo", "")
	writeFile(t, fs, "/site/contracts/module.py", "")

	cat, err := New(fs, nil).Discover(defaultOptions("/site"))
	require.NoError(t, err)

	libs := cat.All()
	require.Len(t, libs, 2)
	assert.Equal(t, "mylib", libs[0].Name)
	assert.Equal(t, "contracts.mylib", libs[0].QualifiedName())
	assert.Equal(t, filepath.Join("/site", "contracts", "mylib"), libs[0].Path)
	assert.Equal(t, "/site", libs[0].Origin)
	assert.Equal(t, "other", libs[1].Name)
}

func TestDiscover_FirstRootWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/a/contracts/shared/a.cairo", "")
	writeFile(t, fs, "/b/contracts/shared/b.cairo", "")
	writeFile(t, fs, "/b/contracts/only_b/b.cairo", "")

	cat, err := New(fs, nil).Discover(defaultOptions("/a", "/b"))
	require.NoError(t, err)

	lib, ok := cat.Get("shared")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/a", "contracts", "shared"), lib.Path)

	_, ok = cat.Get("only_b")
	assert.True(t, ok)
}

func TestDiscover_MissingRootsContributeNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/empty-site", 0o755))

	cat, err := New(fs, nil).Discover(defaultOptions("/does-not-exist", "/empty-site"))
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
}

func TestDiscover_DottedNamespace(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/site/cairo/contracts/mylib/a.cairo", "")

	opts := defaultOptions("/site")
	opts.Namespace = "cairo.contracts"
	cat, err := New(fs, nil).Discover(opts)
	require.NoError(t, err)

	lib, ok := cat.Get("cairo.contracts.mylib")
	require.True(t, ok)
	assert.Equal(t, "cairo.contracts.mylib", lib.QualifiedName())
}

func TestDiscover_FollowsSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "elsewhere", "linked")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "a.cairo"), nil, 0o644))
	nsDir := filepath.Join(root, "site", "contracts")
	require.NoError(t, os.MkdirAll(nsDir, 0o755))
	if err := os.Symlink(target, filepath.Join(nsDir, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	cat, err := New(afero.NewOsFs(), nil).Discover(defaultOptions(filepath.Join(root, "site")))
	require.NoError(t, err)

	_, ok := cat.Get("linked")
	assert.True(t, ok)
}

func TestDiscover_RegistryOverridesScan(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/site/contracts/mylib/a.cairo", "")
	writeFile(t, fs, "/vendor/mylib/a.cairo", "")
	writeFile(t, fs, "/vendor/extra/b.cairo", "")
	writeFile(t, fs, "/project/glyph-registry.yaml", "libraries:\n  mylib: ../vendor/mylib\n  extra: /vendor/extra\n")

	opts := defaultOptions("/site")
	opts.Registry = "/project/glyph-registry.yaml"
	cat, err := New(fs, nil).Discover(opts)
	require.NoError(t, err)

	lib, ok := cat.Get("mylib")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/vendor", "mylib"), lib.Path)
	assert.Equal(t, "/project/glyph-registry.yaml", lib.Origin)

	_, ok = cat.Get("extra")
	assert.True(t, ok)
	assert.Equal(t, 2, cat.Len())
}

func TestDiscover_RegistryErrorPropagates(t *testing.T) {
	fs := afero.NewMemMapFs()
	opts := defaultOptions()
	opts.Registry = "/missing.yaml"

	_, err := New(fs, nil).Discover(opts)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
