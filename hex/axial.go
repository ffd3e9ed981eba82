package hex

import "fmt"

// Axial addresses a hex in the skewed (q, r) lattice. Two hexes are equal
// iff Q and R match, so Axial is usable as a map key.
type Axial struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// Offset is the rectangular (col, row) view of an Axial coordinate.
type Offset struct {
	Col int `json:"col" yaml:"col"`
	Row int `json:"row" yaml:"row"`
}

func (a Axial) String() string  { return fmt.Sprintf("(%d,%d)", a.Q, a.R) }
func (o Offset) String() string { return fmt.Sprintf("[%d,%d]", o.Col, o.Row) }

// S returns the implicit third cube coordinate.
func (a Axial) S() int { return -a.Q - a.R }

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Scale multiplies an axial vector by k.
func (a Axial) Scale(k int) Axial { return Axial{a.Q * k, a.R * k} }

// Neighbour returns the hex one step from a in direction d.
func (a Axial) Neighbour(o Orientation, d Direction) (Axial, error) {
	delta, err := o.Delta(d)
	if err != nil {
		return Axial{}, err
	}
	return a.Add(delta), nil
}

// Neighbours returns the six adjacent hexes keyed by direction.
func (a Axial) Neighbours(o Orientation) (map[Direction]Axial, error) {
	dirs := o.Directions()
	if dirs == nil {
		return nil, fmt.Errorf("%w: %v", ErrOrientation, o)
	}
	out := make(map[Direction]Axial, len(dirs))
	for _, d := range dirs {
		n, _ := a.Neighbour(o, d)
		out[d] = n
	}
	return out, nil
}

// axialRing lists the six unit vectors in a fixed order. The set is the same
// for both orientations; only the compass names differ.
var axialRing = [6]Axial{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}}

// Flower returns c followed by its six neighbours.
func Flower(c Axial) []Axial {
	return append([]Axial{c}, Ring(c, 1)...)
}

// Ring returns the hexes at exact distance k from c, walking the six sides
// in a fixed order. Ring(c, 0) is [c]; negative k yields nil.
func Ring(c Axial, k int) []Axial {
	if k < 0 {
		return nil
	}
	if k == 0 {
		return []Axial{c}
	}
	res := make([]Axial, 0, 6*k)
	cur := c.Add(axialRing[4].Scale(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(axialRing[side])
		}
	}
	return res
}

// Disk returns every hex within distance k of c.
func Disk(c Axial, k int) []Axial {
	if k < 0 {
		return nil
	}
	res := make([]Axial, 0, 1+3*k*(k+1))
	for q := -k; q <= k; q++ {
		for r := max(-k, -q-k); r <= min(k, -q+k); r++ {
			res = append(res, c.Add(Axial{q, r}))
		}
	}
	return res
}

// Distance returns the number of steps between a and b.
func Distance(a, b Axial) int {
	return max(abs(a.Q-b.Q), abs(a.R-b.R), abs(a.S()-b.S()))
}

// ToOffset converts a into the offset frame of o and p.
func ToOffset(a Axial, o Orientation, p Parity) (Offset, error) {
	if !p.Valid() {
		return Offset{}, fmt.Errorf("%w: %v", ErrParity, p)
	}
	k := int(p)
	switch o {
	case Pointy:
		return Offset{Col: a.Q + (a.R+k*(a.R&1))/2, Row: a.R}, nil
	case Flat:
		return Offset{Col: a.Q, Row: a.R + (a.Q+k*(a.Q&1))/2}, nil
	default:
		return Offset{}, fmt.Errorf("%w: %v", ErrOrientation, o)
	}
}

// FromOffset is the inverse of ToOffset.
func FromOffset(off Offset, o Orientation, p Parity) (Axial, error) {
	if !p.Valid() {
		return Axial{}, fmt.Errorf("%w: %v", ErrParity, p)
	}
	k := int(p)
	switch o {
	case Pointy:
		return Axial{Q: off.Col - (off.Row+k*(off.Row&1))/2, R: off.Row}, nil
	case Flat:
		return Axial{Q: off.Col, R: off.Row - (off.Col+k*(off.Col&1))/2}, nil
	default:
		return Axial{}, fmt.Errorf("%w: %v", ErrOrientation, o)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
