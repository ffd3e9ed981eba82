package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexflower/hex"
)

func TestAdd_SealedAfterIndex(t *testing.T) {
	b, err := New([]hex.Axial{{}})
	require.NoError(t, err)
	require.True(t, b.sealed)

	far := hex.Axial{Q: 9, R: 9}
	err = b.add(far, true)
	assert.ErrorIs(t, err, ErrSealed)
	err = b.add(far, false)
	assert.ErrorIs(t, err, ErrSealed)
	assert.Equal(t, 7, b.Len())
	_, ok := b.Index(far)
	assert.False(t, ok)

	// clones and decoded boards are sealed too
	assert.ErrorIs(t, b.Clone().add(far, true), ErrSealed)
	nb, err := Deserialize(b.Serialize())
	require.NoError(t, err)
	assert.ErrorIs(t, nb.add(far, true), ErrSealed)
}

func TestAdd_BeforeIndex(t *testing.T) {
	b, err := newBoard(nil)
	require.NoError(t, err)
	require.NoError(t, b.add(hex.Axial{}, false))
	require.NoError(t, b.add(hex.Axial{}, true))
	assert.ErrorIs(t, b.add(hex.Axial{}, false), ErrDuplicateHex)
	assert.Len(t, b.cells, 1)
}
