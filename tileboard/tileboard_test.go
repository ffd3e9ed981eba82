package tileboard_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexflower/board"
	"github.com/katalvlaran/hexflower/hex"
	"github.com/katalvlaran/hexflower/tileboard"
)

var (
	origin = hex.Axial{}
	far    = hex.Axial{Q: 4, R: 0}
)

// twoFlowers has flowers at (0,0) and (4,0); row b reads b1 b2 b3 _ b5 b6 b7.
func twoFlowers(t *testing.T) *tileboard.Board {
	t.Helper()
	b, err := tileboard.New([]hex.Axial{origin, far})
	require.NoError(t, err)
	return b
}

func sizes(groups [][]string) []int {
	out := make([]int, len(groups))
	for i, g := range groups {
		out[i] = len(g)
	}
	return out
}

func TestNew_StartsVirgin(t *testing.T) {
	b := twoFlowers(t)
	hs := b.Hexes()
	require.Len(t, hs, 14)
	for _, h := range hs {
		assert.Equal(t, tileboard.Virgin, h.Tile)
		assert.Empty(t, h.Stack)
	}
	assert.Equal(t, 14, b.Geometry().Len())
}

func TestLookups(t *testing.T) {
	b := twoFlowers(t)
	require.NoError(t, b.UpdateHexTile(origin, tileboard.Wall))

	byAx, ok := b.HexAtAxial(origin)
	require.True(t, ok)
	byLabel, ok := b.HexAtAlgebraic("b2")
	require.True(t, ok)
	byOff, ok := b.HexAtOffset(hex.Offset{})
	require.True(t, ok)
	assert.Equal(t, byAx, byLabel)
	assert.Equal(t, byAx, byOff)
	assert.Equal(t, tileboard.Wall, byAx.Tile)

	_, ok = b.HexAtAlgebraic("b4")
	assert.False(t, ok)
}

func TestUpdate_Errors(t *testing.T) {
	b := twoFlowers(t)
	gap := hex.Axial{Q: 2, R: 0}
	assert.ErrorIs(t, b.UpdateHexStack(gap, []tileboard.Owner{1}), tileboard.ErrHexNotFound)
	assert.ErrorIs(t, b.UpdateHexTile(gap, tileboard.Territory), tileboard.ErrHexNotFound)
	assert.ErrorIs(t, b.UpdateHexTile(origin, tileboard.Tile(9)), tileboard.ErrTile)
}

// Stacks are copied on write and on read.
func TestStack_NoAliasing(t *testing.T) {
	b := twoFlowers(t)
	stack := []tileboard.Owner{1, 2}
	require.NoError(t, b.UpdateHexStack(origin, stack))
	stack[0] = 9

	h, ok := b.HexAtAxial(origin)
	require.True(t, ok)
	assert.Equal(t, []tileboard.Owner{1, 2}, h.Stack)

	h.Stack[1] = 7
	again, _ := b.HexAtAxial(origin)
	assert.Equal(t, []tileboard.Owner{1, 2}, again.Stack)

	d := again.Dupe()
	d.Stack[0] = 5
	assert.Equal(t, tileboard.Owner(1), again.Stack[0])
}

// A-B-C is a chain of territory and D sits in the other flower.
func TestTerritories_ChainAndIsolated(t *testing.T) {
	b := twoFlowers(t)
	for _, a := range []hex.Axial{{Q: -1, R: 0}, origin, {Q: 1, R: 0}, {Q: 5, R: 0}} {
		require.NoError(t, b.UpdateHexTile(a, tileboard.Territory))
	}

	groups, err := b.Territories()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.ElementsMatch(t, []int{3, 1}, sizes(groups))
	assert.Equal(t, []string{"b1", "b2", "b3"}, groups[0])
	assert.Equal(t, []string{"b7"}, groups[1])
}

func TestNations_WallsSplit(t *testing.T) {
	b := twoFlowers(t)
	nations, err := b.Nations()
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7}, sizes(nations))

	// walling the column through the first centre splits its flower
	for _, a := range []hex.Axial{{Q: 1, R: -1}, origin, {Q: -1, R: 1}} {
		require.NoError(t, b.UpdateHexTile(a, tileboard.Wall))
	}
	nations, err = b.Nations()
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 2, 7}, sizes(nations))

	territories, err := b.Territories()
	require.NoError(t, err)
	assert.Empty(t, territories)
}

func TestReach_StopsAtWalls(t *testing.T) {
	b := twoFlowers(t)
	got, err := b.Reach(context.Background(), "b1", 1)
	require.NoError(t, err)
	assert.Len(t, got, 4)

	require.NoError(t, b.UpdateHexTile(origin, tileboard.Wall))
	got, err = b.Reach(context.Background(), "b1", 1)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	for _, s := range got {
		assert.NotEqual(t, "b2", s.Label)
	}
}

func TestOwnedBy_TopOfStack(t *testing.T) {
	b := twoFlowers(t)
	require.NoError(t, b.UpdateHexStack(hex.Axial{Q: -1, R: 0}, []tileboard.Owner{1, 2}))
	require.NoError(t, b.UpdateHexStack(origin, []tileboard.Owner{2}))
	require.NoError(t, b.UpdateHexStack(far, []tileboard.Owner{2, 1}))

	two := b.OwnedBy(2)
	require.Len(t, two, 2)
	assert.Equal(t, origin, two[0].Axial)
	assert.Equal(t, hex.Axial{Q: -1, R: 0}, two[1].Axial)

	one := b.OwnedBy(1)
	require.Len(t, one, 1)
	assert.Equal(t, far, one[0].Axial)

	assert.Empty(t, b.OwnedBy(3))
}

func TestClone_Isolation(t *testing.T) {
	b := twoFlowers(t)
	require.NoError(t, b.UpdateHexStack(origin, []tileboard.Owner{1}))

	c := b.Clone()
	require.NoError(t, c.UpdateHexStack(origin, []tileboard.Owner{2, 3}))
	require.NoError(t, c.UpdateHexTile(origin, tileboard.Wall))

	orig, _ := b.HexAtAxial(origin)
	assert.Equal(t, []tileboard.Owner{1}, orig.Stack)
	assert.Equal(t, tileboard.Virgin, orig.Tile)

	cl, _ := c.HexAtAxial(origin)
	assert.Equal(t, []tileboard.Owner{2, 3}, cl.Stack)
	assert.Equal(t, tileboard.Wall, cl.Tile)
}

func TestParseTile(t *testing.T) {
	for _, tile := range []tileboard.Tile{tileboard.Virgin, tileboard.Territory, tileboard.Wall} {
		got, err := tileboard.ParseTile(tile.String())
		require.NoError(t, err)
		assert.Equal(t, tile, got)
	}
	_, err := tileboard.ParseTile("lava")
	assert.ErrorIs(t, err, tileboard.ErrTile)
}

//----------------------------------------------------------------------------//
// Serialization
//----------------------------------------------------------------------------//

func stateful(t *testing.T) *tileboard.Board {
	t.Helper()
	b, err := tileboard.New([]hex.Axial{origin}, board.WithOrientation(hex.Flat), board.WithParity(hex.Even))
	require.NoError(t, err)
	require.NoError(t, b.UpdateHexTile(origin, tileboard.Territory))
	require.NoError(t, b.UpdateHexStack(origin, []tileboard.Owner{1, 2}))
	require.NoError(t, b.UpdateHexTile(hex.Axial{Q: 0, R: -1}, tileboard.Wall))
	return b
}

func TestSerialize_RoundTrip(t *testing.T) {
	b := stateful(t)
	nb, err := tileboard.Deserialize(b.Serialize())
	require.NoError(t, err)
	assert.Equal(t, b.Hexes(), nb.Hexes())

	_, err = tileboard.Deserialize([]tileboard.Record{{
		Record: board.Record{Orientation: hex.Pointy, Parity: hex.Odd},
		Tile:   tileboard.Tile(7),
	}})
	assert.ErrorIs(t, err, tileboard.ErrTile)
}

func TestJSON_RoundTrip(t *testing.T) {
	b := stateful(t)
	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tile":"territory"`)
	assert.Contains(t, string(data), `"stack":[1,2]`)

	var nb tileboard.Board
	require.NoError(t, json.Unmarshal(data, &nb))
	assert.Equal(t, b.Hexes(), nb.Hexes())

	bad := []byte(`[{"q":0,"r":0,"orientation":"flat","parity":1,"tile":"lava"}]`)
	assert.ErrorIs(t, json.Unmarshal(bad, &nb), tileboard.ErrTile)
}

func TestYAML_RoundTrip(t *testing.T) {
	b := stateful(t)
	data, err := yaml.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tile: wall")

	var nb tileboard.Board
	require.NoError(t, yaml.Unmarshal(data, &nb))
	assert.Equal(t, b.Hexes(), nb.Hexes())
}
