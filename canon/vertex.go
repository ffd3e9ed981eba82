package canon

import (
	"fmt"

	"github.com/katalvlaran/hexflower/hex"
)

// Vertex is the canonical identity of a corner shared by up to three hexes.
type Vertex struct {
	q, r   int
	dir    hex.Direction
	orient hex.Orientation
}

// cornerRef says where a non-owner corner lives: the neighbour in direction
// via owns it as its corner owner.
type cornerRef struct {
	via, owner hex.Direction
}

var (
	pointyCornerRefs = map[hex.Direction]cornerRef{
		hex.NE: {hex.NE, hex.S},
		hex.NW: {hex.NW, hex.S},
		hex.SE: {hex.SE, hex.N},
		hex.SW: {hex.SW, hex.N},
	}
	flatCornerRefs = map[hex.Direction]cornerRef{
		hex.E:  {hex.NE, hex.SW},
		hex.NW: {hex.N, hex.SW},
		hex.W:  {hex.SW, hex.NE},
		hex.SE: {hex.S, hex.NE},
	}
)

// vertexFan describes an owner corner: the two neighbours that meet there
// (a, b) and the side of a that faces b.
type vertexFan struct {
	a, b, across hex.Direction
}

var (
	pointyFans = map[hex.Direction]vertexFan{
		hex.N: {hex.NE, hex.NW, hex.W},
		hex.S: {hex.SE, hex.SW, hex.W},
	}
	flatFans = map[hex.Direction]vertexFan{
		hex.NE: {hex.N, hex.NE, hex.SE},
		hex.SW: {hex.S, hex.SW, hex.NW},
	}
)

func fanFor(o hex.Orientation, d hex.Direction) (vertexFan, bool) {
	var f vertexFan
	var ok bool
	switch o {
	case hex.Pointy:
		f, ok = pointyFans[d]
	case hex.Flat:
		f, ok = flatFans[d]
	}
	return f, ok
}

// NewVertex returns the canonical vertex at corner c of hex a.
func NewVertex(a hex.Axial, c hex.Direction, o hex.Orientation) (Vertex, error) {
	if !o.Valid() {
		return Vertex{}, fmt.Errorf("%w: %v", ErrOrientation, o)
	}
	if !o.HasCorner(c) {
		return Vertex{}, fmt.Errorf("%w: corner %v under %v", ErrDirection, c, o)
	}
	if _, owner := fanFor(o, c); owner {
		return Vertex{q: a.Q, r: a.R, dir: c, orient: o}, nil
	}
	var ref cornerRef
	switch o {
	case hex.Pointy:
		ref = pointyCornerRefs[c]
	case hex.Flat:
		ref = flatCornerRefs[c]
	}
	n, err := a.Neighbour(o, ref.via)
	if err != nil {
		return Vertex{}, err
	}
	return Vertex{q: n.Q, r: n.R, dir: ref.owner, orient: o}, nil
}

// Axial returns the owning hex.
func (v Vertex) Axial() hex.Axial { return hex.Axial{Q: v.q, R: v.r} }

// Direction returns the owning hex's corner.
func (v Vertex) Direction() hex.Direction { return v.dir }

// Orientation returns the orientation the vertex was built under.
func (v Vertex) Orientation() hex.Orientation { return v.orient }

// Key is the canonical string identity, e.g. "2,-1,N".
func (v Vertex) Key() string { return formatKey(v.q, v.r, v.dir) }

func (v Vertex) String() string { return "vertex(" + v.Key() + ")" }

func (v Vertex) fan() (vertexFan, error) {
	if !v.orient.Valid() {
		return vertexFan{}, fmt.Errorf("%w: %v", ErrOrientation, v.orient)
	}
	f, ok := fanFor(v.orient, v.dir)
	if !ok {
		return vertexFan{}, fmt.Errorf("%w: vertex %v under %v", ErrDirection, v.dir, v.orient)
	}
	return f, nil
}

// HexVertices returns the canonical vertex at each of a's six corners.
func HexVertices(a hex.Axial, o hex.Orientation) (map[hex.Direction]Vertex, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrOrientation, o)
	}
	out := make(map[hex.Direction]Vertex, 6)
	for _, c := range o.Corners() {
		v, err := NewVertex(a, c, o)
		if err != nil {
			return nil, err
		}
		out[c] = v
	}
	return out, nil
}

// VertexHexes returns the three hexes meeting at v, owner first. Callers on
// a board filter the result to populated cells.
func VertexHexes(v Vertex) ([3]hex.Axial, error) {
	f, err := v.fan()
	if err != nil {
		return [3]hex.Axial{}, err
	}
	a := v.Axial()
	na, err := a.Neighbour(v.orient, f.a)
	if err != nil {
		return [3]hex.Axial{}, err
	}
	nb, err := a.Neighbour(v.orient, f.b)
	if err != nil {
		return [3]hex.Axial{}, err
	}
	return [3]hex.Axial{a, na, nb}, nil
}

// VertexEdges returns the three edges that meet at v.
func VertexEdges(v Vertex) ([3]Edge, error) {
	f, err := v.fan()
	if err != nil {
		return [3]Edge{}, err
	}
	a := v.Axial()
	e1, err := NewEdge(a, f.a, v.orient)
	if err != nil {
		return [3]Edge{}, err
	}
	e2, err := NewEdge(a, f.b, v.orient)
	if err != nil {
		return [3]Edge{}, err
	}
	na, err := a.Neighbour(v.orient, f.a)
	if err != nil {
		return [3]Edge{}, err
	}
	e3, err := NewEdge(na, f.across, v.orient)
	if err != nil {
		return [3]Edge{}, err
	}
	return [3]Edge{e1, e2, e3}, nil
}

// VertexNeighbours returns the three vertices one edge away from v, in the
// order of VertexEdges.
func VertexNeighbours(v Vertex) ([3]Vertex, error) {
	edges, err := VertexEdges(v)
	if err != nil {
		return [3]Vertex{}, err
	}
	var out [3]Vertex
	for i, e := range edges {
		ends, err := EdgeVertices(e)
		if err != nil {
			return [3]Vertex{}, err
		}
		switch v {
		case ends[0]:
			out[i] = ends[1]
		case ends[1]:
			out[i] = ends[0]
		default:
			return [3]Vertex{}, fmt.Errorf("canon: %v is not an end of %v", v, e)
		}
	}
	return out, nil
}

// ParseVertex decodes a Key produced by Vertex.Key. Only canonical keys are
// accepted.
func ParseVertex(key string, o hex.Orientation) (Vertex, error) {
	q, r, d, err := parseKey(key)
	if err != nil {
		return Vertex{}, err
	}
	v := Vertex{q: q, r: r, dir: d, orient: o}
	if _, err = v.fan(); err != nil {
		return Vertex{}, err
	}
	return v, nil
}
