package lattice_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexflower/hex"
	"github.com/katalvlaran/hexflower/lattice"
)

func mustLattice(t *testing.T, w, h int, o hex.Orientation, p hex.Parity) *lattice.Lattice {
	t.Helper()
	l, err := lattice.New(w, h, o, p)
	require.NoError(t, err)
	return l
}

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		o    hex.Orientation
		p    hex.Parity
		err  error
	}{
		{"NegativeWidth", -1, 2, hex.Pointy, hex.Odd, lattice.ErrNegativeSize},
		{"NegativeHeight", 2, -1, hex.Pointy, hex.Odd, lattice.ErrNegativeSize},
		{"BadOrientation", 2, 2, 0, hex.Odd, hex.ErrOrientation},
		{"BadParity", 2, 2, hex.Flat, 0, hex.ErrParity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.New(tc.w, tc.h, tc.o, tc.p)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.err)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	l := mustLattice(t, 3, 2, hex.Pointy, hex.Odd)
	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, l.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, l.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	empty := mustLattice(t, 0, 0, hex.Flat, hex.Even)
	assert.False(t, empty.InBounds(0, 0))
	assert.Empty(t, empty.Cells())
}

//----------------------------------------------------------------------------//
// Algebraic label Tests
//----------------------------------------------------------------------------//

func TestAlgebraic_KnownLabels(t *testing.T) {
	l := mustLattice(t, 12, 30, hex.Pointy, hex.Odd)
	cases := []struct {
		x, y int
		want string
	}{
		{0, 29, "a1"},
		{11, 29, "a12"},
		{0, 4, "z1"},
		{2, 3, "aa3"},
		{0, 2, "ab1"},
		{9, 0, "ad10"},
	}
	for _, tc := range cases {
		got, err := l.Coords2Algebraic(tc.x, tc.y)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "(%d,%d)", tc.x, tc.y)
	}
}

func TestAlgebraic_RoundTrip(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {5, 7}, {3, 60}, {30, 703}} {
		l := mustLattice(t, size[0], size[1], hex.Flat, hex.Even)
		for _, c := range l.Cells() {
			label, err := l.Coords2Algebraic(c.X, c.Y)
			require.NoError(t, err)
			x, y, err := l.Algebraic2Coords(label)
			require.NoError(t, err)
			require.Equal(t, c, lattice.Point{X: x, Y: y}, "label %q", label)
		}
	}
}

func TestAlgebraic_ParseErrors(t *testing.T) {
	l := mustLattice(t, 4, 4, hex.Pointy, hex.Odd)
	for _, bad := range []string{"", "abc", "12", "A1", "a1x", "a-1", "é1", "a01", "b001",
		strings.Repeat("z", 20) + "1", "a99999999999999999999999"} {
		_, _, err := l.Algebraic2Coords(bad)
		assert.ErrorIs(t, err, lattice.ErrLabel, "label %q", bad)
		if err != nil {
			assert.Contains(t, err.Error(), bad)
		}
	}
	for _, far := range []string{"a0", "a5", "e1", "zz1"} {
		_, _, err := l.Algebraic2Coords(far)
		assert.ErrorIs(t, err, lattice.ErrOutOfBounds, "label %q", far)
	}
	_, err := l.Coords2Algebraic(4, 0)
	assert.ErrorIs(t, err, lattice.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Ray and adjacency Tests
//----------------------------------------------------------------------------//

// In a pointy/odd 3×3 lattice the odd middle row is shoved right, so a ray
// heading NE from the bottom-left cell climbs a1 → b1 → c2.
func TestRay_PointyOdd(t *testing.T) {
	l := mustLattice(t, 3, 3, hex.Pointy, hex.Odd)

	ne, err := l.RayLabels("a1", hex.NE)
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "c2"}, ne)

	e, err := l.RayLabels("a1", hex.E)
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a3"}, e)

	w, err := l.RayLabels("a1", hex.W)
	require.NoError(t, err)
	assert.Empty(t, w)

	_, err = l.RayLabels("a1", hex.N)
	assert.ErrorIs(t, err, hex.ErrDirection)
	_, err = l.Ray(5, 5, hex.E)
	assert.ErrorIs(t, err, lattice.ErrOutOfBounds)
}

func TestRay_FlatColumns(t *testing.T) {
	l := mustLattice(t, 2, 4, hex.Flat, hex.Even)
	n, err := l.RayLabels("a1", hex.N)
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "c1", "d1"}, n)
}

func TestNeighbours(t *testing.T) {
	l := mustLattice(t, 3, 3, hex.Pointy, hex.Odd)
	got := l.Neighbours(1, 1)
	assert.ElementsMatch(t, []lattice.Point{{1, 0}, {2, 0}, {0, 1}, {2, 1}, {1, 2}, {2, 2}}, got)

	corner := l.Neighbours(0, 0)
	assert.ElementsMatch(t, []lattice.Point{{1, 0}, {0, 1}}, corner)
}

func TestToCoreGraph(t *testing.T) {
	l := mustLattice(t, 2, 2, hex.Pointy, hex.Odd)
	g, err := l.ToCoreGraph()
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "b1", "b2"}, g.Vertices())
	// b1-b2, a1-a2, a1-b1, a1-b2, a2-b2
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge("a1", "b2"))
	assert.False(t, g.HasEdge("a2", "b1"))

	v, ok := g.Vertex("b1")
	require.True(t, ok)
	assert.Equal(t, 0, v.X)
	assert.Equal(t, 0, v.Y)
}
