package chem

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Contents(t *testing.T) {
	cat := DefaultCatalog()

	// 5 chain families x 10 lengths, alkenes from C2, all esters, 6 aromatics.
	wantTotal := 5*10 + 9 + 10*10 + 6
	assert.Equal(t, wantTotal, cat.Len())

	// 10 alkanes, 3 light alkenes, benzene, methanol, ethanol.
	assert.Len(t, cat.StartingMaterials(), 16)

	for _, name := range []string{"methane", "ethanol", "acetaldehyde", "acetic acid", "ethyl acetate", "benzene", "phenol", "aniline"} {
		_, err := cat.Resolve(name)
		assert.NoError(t, err, "expected %q to resolve", name)
	}
}

func TestCatalog_ResolveUnknown(t *testing.T) {
	cat := DefaultCatalog()

	_, err := cat.Resolve("unobtainium")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCompound)
	assert.Contains(t, err.Error(), "unobtainium")
}

func TestCatalog_Names(t *testing.T) {
	cat := DefaultCatalog()

	names := cat.Names()
	require.Equal(t, cat.Len(), len(names))
	assert.True(t, sort.StringsAreSorted(names))

	// Every listed name must resolve back to a compound.
	for _, name := range names {
		_, err := cat.Resolve(name)
		require.NoError(t, err)
	}
}

func TestCatalog_IsStartingMaterial(t *testing.T) {
	cat := DefaultCatalog()

	ethanol, err := cat.Resolve("ethanol")
	require.NoError(t, err)
	assert.True(t, cat.IsStartingMaterial(ethanol))

	phenol, err := cat.Resolve("phenol")
	require.NoError(t, err)
	assert.False(t, cat.IsStartingMaterial(phenol))
}

func TestNewCatalog_Rejections(t *testing.T) {
	methane := Compound{Name: "methane", Class: ClassChain, Carbons: 1}

	t.Run("duplicate key", func(t *testing.T) {
		other := Compound{Name: "marsh gas", Class: ClassChain, Carbons: 1}
		_, err := NewCatalog([]Compound{methane, other}, nil)
		assert.ErrorContains(t, err, "duplicate key")
	})

	t.Run("duplicate name", func(t *testing.T) {
		other := Compound{Name: "methane", Class: ClassChain, Carbons: 2}
		_, err := NewCatalog([]Compound{methane, other}, nil)
		assert.ErrorContains(t, err, "duplicate name")
	})

	t.Run("unnamed compound", func(t *testing.T) {
		_, err := NewCatalog([]Compound{{Class: ClassRing}}, nil)
		assert.ErrorContains(t, err, "no name")
	})

	t.Run("unregistered starting material", func(t *testing.T) {
		benzene := Compound{Name: "benzene", Class: ClassRing}
		_, err := NewCatalog([]Compound{methane}, []Compound{benzene})
		assert.ErrorContains(t, err, "not registered")
	})
}

func TestEsterNames(t *testing.T) {
	tests := []struct {
		a, b int
		want string
	}{
		{1, 1, "methyl formate"},
		{2, 2, "ethyl acetate"},
		{3, 4, "butyl propanoate"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, esterName(tt.a, tt.b))
	}
}
