package install

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeDigest(t *testing.T) {
	fs := afero.NewMemMapFs()
	write := func(path, content string) {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	require.NoError(t, fs.MkdirAll("/a/sub", 0o755))
	require.NoError(t, fs.MkdirAll("/b/sub", 0o755))
	require.NoError(t, fs.MkdirAll("/b/__pycache__", 0o755))
	write("/a/x.cairo", "x")
	write("/a/sub/y.cairo", "y")
	write("/b/x.cairo", "x")
	write("/b/sub/y.cairo", "y")
	write("/b/__init__.py", "")
	write("/b/__pycache__/c.pyc", "c")

	exclude := []string{"__init__.py", "__pycache__"}

	sumA, err := treeDigest(fs, "/a", exclude)
	require.NoError(t, err)
	sumB, err := treeDigest(fs, "/b", exclude)
	require.NoError(t, err)
	assert.Equal(t, sumA, sumB, "excluded artifacts must not change the digest")

	write("/b/sub/y.cairo", "changed")
	sumB, err = treeDigest(fs, "/b", exclude)
	require.NoError(t, err)
	assert.NotEqual(t, sumA, sumB)

	write("/b/sub/y.cairo", "y")
	require.NoError(t, fs.Rename("/b/x.cairo", "/b/z.cairo"))
	sumB, err = treeDigest(fs, "/b", exclude)
	require.NoError(t, err)
	assert.NotEqual(t, sumA, sumB, "renamed files must change the digest")
}
