package hex

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the direction algebra.
var (
	// ErrOrientation indicates an orientation other than Pointy or Flat.
	ErrOrientation = errors.New("hex: invalid orientation")
	// ErrParity indicates a parity other than Even or Odd.
	ErrParity = errors.New("hex: invalid offset parity")
	// ErrDirection indicates a direction outside the orientation's set.
	ErrDirection = errors.New("hex: invalid direction for orientation")
)

// Orientation selects pointy-top or flat-top hexes. The zero value is invalid.
type Orientation uint8

const (
	// Pointy hexes have a corner at north and south; rows are shoved.
	Pointy Orientation = iota + 1
	// Flat hexes have an edge at north and south; columns are shoved.
	Flat
)

// Valid reports whether o is Pointy or Flat.
func (o Orientation) Valid() bool { return o == Pointy || o == Flat }

func (o Orientation) String() string {
	switch o {
	case Pointy:
		return "pointy"
	case Flat:
		return "flat"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// MarshalText encodes o as "pointy" or "flat".
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrOrientation, uint8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText decodes "pointy" or "flat".
func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ParseOrientation decodes "pointy" or "flat" (case-insensitive).
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pointy":
		return Pointy, nil
	case "flat":
		return Flat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrOrientation, s)
}

// Parity says which rows (pointy) or columns (flat) are shoved in the
// offset frame. Even is +1 and Odd is -1; the zero value is invalid.
type Parity int8

const (
	// Even shoves even rows/columns.
	Even Parity = 1
	// Odd shoves odd rows/columns.
	Odd Parity = -1
)

// Valid reports whether p is Even or Odd.
func (p Parity) Valid() bool { return p == Even || p == Odd }

func (p Parity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return fmt.Sprintf("Parity(%d)", int8(p))
	}
}

// ParseParity accepts "even"/"odd" as well as "+1"/"1"/"-1".
func ParseParity(s string) (Parity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "even", "+1", "1":
		return Even, nil
	case "odd", "-1":
		return Odd, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrParity, s)
}

// Direction is a compass point. Each orientation uses a six-member subset
// for neighbours/edges and another for corners. The zero value None is
// never valid.
type Direction uint8

const (
	None Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	NW
)

var directionNames = [...]string{"", "N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Valid reports whether d is one of the eight compass points.
func (d Direction) Valid() bool { return d >= N && d <= NW }

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Opposite returns the direction rotated by 180 degrees; None stays None.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return None
	}
	return (d-1+4)%8 + 1
}

// ParseDirection decodes a compass abbreviation such as "NE" or "sw".
func ParseDirection(s string) (Direction, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for d := N; d <= NW; d++ {
		if directionNames[d] == u {
			return d, nil
		}
	}
	return None, fmt.Errorf("%w: unknown direction %q", ErrDirection, s)
}

// orientation tables, indexed by position in the six-member sets.
var (
	pointyDirections = [6]Direction{NE, E, SE, SW, W, NW}
	flatDirections   = [6]Direction{N, NE, SE, S, SW, NW}

	pointyCorners = [6]Direction{N, NE, SE, S, SW, NW}
	flatCorners   = [6]Direction{NE, E, SE, SW, W, NW}

	pointyDeltas = [6]Axial{{1, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}}
	flatDeltas   = [6]Axial{{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}}
)

// Directions returns the six neighbour (and edge) directions of o in
// clockwise order, or nil when o is invalid.
func (o Orientation) Directions() []Direction {
	switch o {
	case Pointy:
		return pointyDirections[:]
	case Flat:
		return flatDirections[:]
	default:
		return nil
	}
}

// Corners returns the six corner directions of o in clockwise order, or nil
// when o is invalid.
func (o Orientation) Corners() []Direction {
	switch o {
	case Pointy:
		return pointyCorners[:]
	case Flat:
		return flatCorners[:]
	default:
		return nil
	}
}

// HasDirection reports whether d is a neighbour/edge direction of o.
func (o Orientation) HasDirection(d Direction) bool {
	return indexOf(o.Directions(), d) >= 0
}

// HasCorner reports whether d is a corner direction of o.
func (o Orientation) HasCorner(d Direction) bool {
	return indexOf(o.Corners(), d) >= 0
}

// Delta returns the axial step for neighbour direction d.
func (o Orientation) Delta(d Direction) (Axial, error) {
	var deltas *[6]Axial
	switch o {
	case Pointy:
		deltas = &pointyDeltas
	case Flat:
		deltas = &flatDeltas
	default:
		return Axial{}, fmt.Errorf("%w: %v", ErrOrientation, o)
	}
	i := indexOf(o.Directions(), d)
	if i < 0 {
		return Axial{}, fmt.Errorf("%w: %v under %v", ErrDirection, d, o)
	}
	return deltas[i], nil
}

func indexOf(set []Direction, d Direction) int {
	for i, x := range set {
		if x == d {
			return i
		}
	}
	return -1
}
