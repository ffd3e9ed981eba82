package canon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/hexflower/hex"
)

// Sentinel errors for canonicalization.
var (
	// ErrOrientation indicates an Edge or Vertex without a valid orientation.
	ErrOrientation = errors.New("canon: invalid orientation")
	// ErrDirection indicates a direction that cannot occur under the orientation.
	ErrDirection = errors.New("canon: direction not valid for orientation")
	// ErrKey indicates a malformed "q,r,DIR" key.
	ErrKey = errors.New("canon: malformed key")
)

// Edge is the canonical identity of the border between two adjacent hexes.
type Edge struct {
	q, r   int
	dir    hex.Direction
	orient hex.Orientation
}

// edgeOwners is the fixed ownership table; the opposite sides belong to the
// neighbour.
func edgeOwners(o hex.Orientation) [3]hex.Direction {
	switch o {
	case hex.Pointy:
		return [3]hex.Direction{hex.NE, hex.NW, hex.W}
	case hex.Flat:
		return [3]hex.Direction{hex.N, hex.NE, hex.NW}
	default:
		return [3]hex.Direction{}
	}
}

func ownsEdge(o hex.Orientation, d hex.Direction) bool {
	if !o.Valid() {
		return false
	}
	for _, x := range edgeOwners(o) {
		if x == d {
			return true
		}
	}
	return false
}

// NewEdge returns the canonical edge on side d of hex a.
func NewEdge(a hex.Axial, d hex.Direction, o hex.Orientation) (Edge, error) {
	if !o.Valid() {
		return Edge{}, fmt.Errorf("%w: %v", ErrOrientation, o)
	}
	if !o.HasDirection(d) {
		return Edge{}, fmt.Errorf("%w: edge %v under %v", ErrDirection, d, o)
	}
	if ownsEdge(o, d) {
		return Edge{q: a.Q, r: a.R, dir: d, orient: o}, nil
	}
	n, err := a.Neighbour(o, d)
	if err != nil {
		return Edge{}, err
	}
	return Edge{q: n.Q, r: n.R, dir: d.Opposite(), orient: o}, nil
}

// Axial returns the owning hex.
func (e Edge) Axial() hex.Axial { return hex.Axial{Q: e.q, R: e.r} }

// Direction returns the owning hex's side.
func (e Edge) Direction() hex.Direction { return e.dir }

// Orientation returns the orientation the edge was built under.
func (e Edge) Orientation() hex.Orientation { return e.orient }

// Key is the canonical string identity, e.g. "0,-1,NE".
func (e Edge) Key() string { return formatKey(e.q, e.r, e.dir) }

func (e Edge) String() string { return "edge(" + e.Key() + ")" }

func (e Edge) validate() error {
	if !e.orient.Valid() {
		return fmt.Errorf("%w: %v", ErrOrientation, e.orient)
	}
	if !ownsEdge(e.orient, e.dir) {
		return fmt.Errorf("%w: edge %v under %v", ErrDirection, e.dir, e.orient)
	}
	return nil
}

// HexEdges returns the canonical edge for each of a's six sides.
func HexEdges(a hex.Axial, o hex.Orientation) (map[hex.Direction]Edge, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrOrientation, o)
	}
	out := make(map[hex.Direction]Edge, 6)
	for _, d := range o.Directions() {
		e, err := NewEdge(a, d, o)
		if err != nil {
			return nil, err
		}
		out[d] = e
	}
	return out, nil
}

// EdgeHexes returns the two hexes that share e: the owner first, then the
// neighbour across the owning side.
func EdgeHexes(e Edge) ([2]hex.Axial, error) {
	if err := e.validate(); err != nil {
		return [2]hex.Axial{}, err
	}
	a := e.Axial()
	n, err := a.Neighbour(e.orient, e.dir)
	if err != nil {
		return [2]hex.Axial{}, err
	}
	return [2]hex.Axial{a, n}, nil
}

// sideCorners lists the two corners bounding each side.
func sideCorners(o hex.Orientation, d hex.Direction) ([2]hex.Direction, bool) {
	var t map[hex.Direction][2]hex.Direction
	switch o {
	case hex.Pointy:
		t = pointySideCorners
	case hex.Flat:
		t = flatSideCorners
	default:
		return [2]hex.Direction{}, false
	}
	c, ok := t[d]
	return c, ok
}

var (
	pointySideCorners = map[hex.Direction][2]hex.Direction{
		hex.NE: {hex.N, hex.NE},
		hex.E:  {hex.NE, hex.SE},
		hex.SE: {hex.SE, hex.S},
		hex.SW: {hex.S, hex.SW},
		hex.W:  {hex.SW, hex.NW},
		hex.NW: {hex.NW, hex.N},
	}
	flatSideCorners = map[hex.Direction][2]hex.Direction{
		hex.N:  {hex.NW, hex.NE},
		hex.NE: {hex.NE, hex.E},
		hex.SE: {hex.E, hex.SE},
		hex.S:  {hex.SE, hex.SW},
		hex.SW: {hex.SW, hex.W},
		hex.NW: {hex.W, hex.NW},
	}
)

// EdgeVertices returns the two vertices at the ends of e.
func EdgeVertices(e Edge) ([2]Vertex, error) {
	if err := e.validate(); err != nil {
		return [2]Vertex{}, err
	}
	corners, ok := sideCorners(e.orient, e.dir)
	if !ok {
		return [2]Vertex{}, fmt.Errorf("%w: edge %v under %v", ErrDirection, e.dir, e.orient)
	}
	var out [2]Vertex
	for i, c := range corners {
		v, err := NewVertex(e.Axial(), c, e.orient)
		if err != nil {
			return [2]Vertex{}, err
		}
		out[i] = v
	}
	return out, nil
}

// ParseEdge decodes a Key produced by Edge.Key. Only canonical keys are
// accepted.
func ParseEdge(key string, o hex.Orientation) (Edge, error) {
	q, r, d, err := parseKey(key)
	if err != nil {
		return Edge{}, err
	}
	e := Edge{q: q, r: r, dir: d, orient: o}
	if err = e.validate(); err != nil {
		return Edge{}, err
	}
	return e, nil
}

func formatKey(q, r int, d hex.Direction) string {
	return strconv.Itoa(q) + "," + strconv.Itoa(r) + "," + d.String()
}

func parseKey(key string) (q, r int, d hex.Direction, err error) {
	parts := strings.Split(key, ",")
	if len(parts) != 3 {
		return 0, 0, hex.None, fmt.Errorf("%w: %q", ErrKey, key)
	}
	if q, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, hex.None, fmt.Errorf("%w: %q: %v", ErrKey, key, err)
	}
	if r, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, hex.None, fmt.Errorf("%w: %q: %v", ErrKey, key, err)
	}
	if d, err = hex.ParseDirection(parts[2]); err != nil {
		return 0, 0, hex.None, fmt.Errorf("%w: %q: %v", ErrKey, key, err)
	}
	return q, r, d, nil
}
