package lattice

import (
	"fmt"

	"github.com/katalvlaran/hexflower/core"
	"github.com/katalvlaran/hexflower/hex"
)

// Point is a cell position in the lattice frame.
type Point struct {
	X, Y int
}

// Lattice is an immutable rectangle of hex cells in a normalized offset
// frame. Width and Height define dimensions; Orientation and Parity define
// how (x, y) maps to hex adjacency.
type Lattice struct {
	Width, Height int
	Orientation   hex.Orientation
	Parity        hex.Parity
}

// New constructs a Lattice. A 0×0 lattice is valid and has no cells.
// Returns ErrNegativeSize for negative dimensions and the hex package's
// orientation/parity errors for an invalid frame.
func New(width, height int, o hex.Orientation, p hex.Parity) (*Lattice, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeSize, width, height)
	}
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %v", hex.ErrOrientation, o)
	}
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %v", hex.ErrParity, p)
	}
	return &Lattice{Width: width, Height: height, Orientation: o, Parity: p}, nil
}

// InBounds reports whether (x,y) lies within the rectangle.
// Complexity: O(1).
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (l *Lattice) index(x, y int) int {
	return y*l.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// A zero-width lattice has no cells and always yields (0,0).
// Complexity: O(1).
func (l *Lattice) Coordinate(idx int) (x, y int) {
	if l.Width == 0 {
		return 0, 0
	}
	return idx % l.Width, idx / l.Width
}

// Cells returns every cell in row-major order.
func (l *Lattice) Cells() []Point {
	out := make([]Point, 0, l.Width*l.Height)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			out = append(out, Point{x, y})
		}
	}
	return out
}

// Step returns the cell one hex step from (x,y) in direction d. ok is false
// when the step leaves the rectangle. An invalid direction is an error.
func (l *Lattice) Step(x, y int, d hex.Direction) (p Point, ok bool, err error) {
	a, err := hex.FromOffset(hex.Offset{Col: x, Row: y}, l.Orientation, l.Parity)
	if err != nil {
		return Point{}, false, err
	}
	n, err := a.Neighbour(l.Orientation, d)
	if err != nil {
		return Point{}, false, err
	}
	off, err := hex.ToOffset(n, l.Orientation, l.Parity)
	if err != nil {
		return Point{}, false, err
	}
	return Point{off.Col, off.Row}, l.InBounds(off.Col, off.Row), nil
}

// Neighbours returns the in-bounds cells adjacent to (x,y), in the
// orientation's direction order.
func (l *Lattice) Neighbours(x, y int) []Point {
	out := make([]Point, 0, 6)
	for _, d := range l.Orientation.Directions() {
		if p, ok, err := l.Step(x, y, d); err == nil && ok {
			out = append(out, p)
		}
	}
	return out
}

// ToCoreGraph converts the lattice into an undirected *core.Graph.
// Each cell becomes a vertex identified by its algebraic label and carrying
// its (x,y); edges join hex-adjacent cells.
// Complexity: O(W×H×6) time, Memory: O(W×H + E).
func (l *Lattice) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	labels := make([]string, l.Width*l.Height)
	for _, c := range l.Cells() {
		id, err := l.Coords2Algebraic(c.X, c.Y)
		if err != nil {
			return nil, err
		}
		labels[l.index(c.X, c.Y)] = id
		if err = g.AddVertex(id, c.X, c.Y); err != nil {
			return nil, err
		}
	}
	for _, c := range l.Cells() {
		from := labels[l.index(c.X, c.Y)]
		for _, n := range l.Neighbours(c.X, c.Y) {
			if err := g.AddEdge(from, labels[l.index(n.X, n.Y)]); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
