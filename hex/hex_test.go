package hex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexflower/hex"
)

var orientations = []hex.Orientation{hex.Pointy, hex.Flat}
var parities = []hex.Parity{hex.Even, hex.Odd}

func TestDirection_Opposite(t *testing.T) {
	pairs := map[hex.Direction]hex.Direction{
		hex.N: hex.S, hex.NE: hex.SW, hex.E: hex.W, hex.SE: hex.NW,
		hex.S: hex.N, hex.SW: hex.NE, hex.W: hex.E, hex.NW: hex.SE,
	}
	for d, want := range pairs {
		assert.Equal(t, want, d.Opposite(), "Opposite(%v)", d)
	}
	assert.Equal(t, hex.None, hex.None.Opposite())
}

func TestParseDirection(t *testing.T) {
	d, err := hex.ParseDirection("ne")
	require.NoError(t, err)
	assert.Equal(t, hex.NE, d)

	_, err = hex.ParseDirection("up")
	assert.ErrorIs(t, err, hex.ErrDirection)
}

func TestParseOrientationAndParity(t *testing.T) {
	o, err := hex.ParseOrientation("Flat")
	require.NoError(t, err)
	assert.Equal(t, hex.Flat, o)
	_, err = hex.ParseOrientation("round")
	assert.ErrorIs(t, err, hex.ErrOrientation)

	p, err := hex.ParseParity("-1")
	require.NoError(t, err)
	assert.Equal(t, hex.Odd, p)
	p, err = hex.ParseParity("even")
	require.NoError(t, err)
	assert.Equal(t, hex.Even, p)
	_, err = hex.ParseParity("0")
	assert.ErrorIs(t, err, hex.ErrParity)
}

// Every neighbour direction must be undone by its opposite.
func TestDelta_OppositeCancels(t *testing.T) {
	for _, o := range orientations {
		for _, d := range o.Directions() {
			fwd, err := o.Delta(d)
			require.NoError(t, err)
			back, err := o.Delta(d.Opposite())
			require.NoError(t, err, "%v: opposite of %v missing", o, d)
			assert.Equal(t, hex.Axial{}, fwd.Add(back), "%v %v", o, d)
		}
	}
}

func TestDelta_InvalidDirection(t *testing.T) {
	_, err := hex.Pointy.Delta(hex.N)
	assert.ErrorIs(t, err, hex.ErrDirection)
	_, err = hex.Flat.Delta(hex.E)
	assert.ErrorIs(t, err, hex.ErrDirection)
	_, err = hex.Orientation(0).Delta(hex.N)
	assert.ErrorIs(t, err, hex.ErrOrientation)
}

func TestNeighbours_AreAtDistanceOne(t *testing.T) {
	c := hex.Axial{Q: -3, R: 7}
	for _, o := range orientations {
		ns, err := c.Neighbours(o)
		require.NoError(t, err)
		require.Len(t, ns, 6)
		for d, n := range ns {
			assert.Equal(t, 1, hex.Distance(c, n), "%v %v", o, d)
		}
	}
}

func TestFlowerRingDisk(t *testing.T) {
	c := hex.Axial{Q: 2, R: -1}
	f := hex.Flower(c)
	require.Len(t, f, 7)
	assert.Equal(t, c, f[0])

	ring := hex.Ring(c, 2)
	assert.Len(t, ring, 12)
	for _, a := range ring {
		assert.Equal(t, 2, hex.Distance(c, a))
	}
	assert.Len(t, hex.Disk(c, 2), 19)
	assert.Nil(t, hex.Ring(c, -1))
}

// The offset conversion must round-trip for negative coordinates too, where
// a naive modulo would flip the shoved rows/columns.
func TestOffset_RoundTrip(t *testing.T) {
	for _, o := range orientations {
		for _, p := range parities {
			for q := -7; q <= 7; q++ {
				for r := -7; r <= 7; r++ {
					a := hex.Axial{Q: q, R: r}
					off, err := hex.ToOffset(a, o, p)
					require.NoError(t, err)
					back, err := hex.FromOffset(off, o, p)
					require.NoError(t, err)
					require.Equal(t, a, back, "%v/%v %v -> %v", o, p, a, off)
				}
			}
		}
	}
}

func TestOffset_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		a    hex.Axial
		o    hex.Orientation
		p    hex.Parity
		want hex.Offset
	}{
		{"pointy odd row 1", hex.Axial{Q: 0, R: 1}, hex.Pointy, hex.Odd, hex.Offset{Col: 0, Row: 1}},
		{"pointy even row 1", hex.Axial{Q: 0, R: 1}, hex.Pointy, hex.Even, hex.Offset{Col: 1, Row: 1}},
		{"pointy odd row -1", hex.Axial{Q: 0, R: -1}, hex.Pointy, hex.Odd, hex.Offset{Col: -1, Row: -1}},
		{"flat odd col 1", hex.Axial{Q: 1, R: 0}, hex.Flat, hex.Odd, hex.Offset{Col: 1, Row: 0}},
		{"flat even col 1", hex.Axial{Q: 1, R: 0}, hex.Flat, hex.Even, hex.Offset{Col: 1, Row: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := hex.ToOffset(tc.a, tc.o, tc.p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOffset_InvalidFrame(t *testing.T) {
	_, err := hex.ToOffset(hex.Axial{}, hex.Pointy, 0)
	assert.ErrorIs(t, err, hex.ErrParity)
	_, err = hex.FromOffset(hex.Offset{}, 0, hex.Even)
	assert.ErrorIs(t, err, hex.ErrOrientation)
}

func TestOrientation_Text(t *testing.T) {
	b, err := hex.Flat.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "flat", string(b))

	var o hex.Orientation
	require.NoError(t, o.UnmarshalText([]byte("pointy")))
	assert.Equal(t, hex.Pointy, o)

	_, err = hex.Orientation(0).MarshalText()
	assert.ErrorIs(t, err, hex.ErrOrientation)
	assert.ErrorIs(t, o.UnmarshalText([]byte("round")), hex.ErrOrientation)
}
