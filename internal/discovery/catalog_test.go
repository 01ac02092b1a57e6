package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cairo-glyph/glyph/pkg/types"
)

func sampleCatalog() *Catalog {
	cat := NewCatalog("contracts")
	cat.add(types.Library{Name: "zeta", Namespace: "contracts", Path: "/s/contracts/zeta"})
	cat.add(types.Library{Name: "alpha", Namespace: "contracts", Path: "/s/contracts/alpha"})
	cat.add(types.Library{Name: "mylib", Namespace: "contracts", Path: "/s/contracts/mylib"})
	return cat
}

func TestCatalogSelect(t *testing.T) {
	t.Run("all returns every library in name order", func(t *testing.T) {
		libs, err := sampleCatalog().Select(true, "")
		require.NoError(t, err)
		require.Len(t, libs, 3)
		assert.Equal(t, []string{"alpha", "mylib", "zeta"}, names(libs))
	})

	t.Run("all wins over a name", func(t *testing.T) {
		libs, err := sampleCatalog().Select(true, "missing")
		require.NoError(t, err)
		assert.Len(t, libs, 3)
	})

	t.Run("single by short name", func(t *testing.T) {
		libs, err := sampleCatalog().Select(false, "mylib")
		require.NoError(t, err)
		assert.Equal(t, []string{"mylib"}, names(libs))
	})

	t.Run("single by qualified name", func(t *testing.T) {
		libs, err := sampleCatalog().Select(false, "contracts.mylib")
		require.NoError(t, err)
		assert.Equal(t, []string{"mylib"}, names(libs))
	})

	t.Run("missing name", func(t *testing.T) {
		libs, err := sampleCatalog().Select(false, "nope")
		assert.ErrorIs(t, err, types.ErrLibraryNotFound)
		assert.Contains(t, err.Error(), "contracts.nope")
		assert.Nil(t, libs)
	})

	t.Run("neither name nor all", func(t *testing.T) {
		_, err := sampleCatalog().Select(false, "")
		assert.ErrorIs(t, err, types.ErrNoSelection)
	})
}

func TestCatalogAddKeepsFirst(t *testing.T) {
	cat := NewCatalog("contracts")
	assert.True(t, cat.add(types.Library{Name: "a", Path: "/first"}))
	assert.False(t, cat.add(types.Library{Name: "a", Path: "/second"}))

	lib, ok := cat.Get("a")
	require.True(t, ok)
	assert.Equal(t, "/first", lib.Path)
}

func names(libs []types.Library) []string {
	out := make([]string, len(libs))
	for i, l := range libs {
		out[i] = l.Name
	}
	return out
}
