package board

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/hexflower/hex"
)

// HexAtAxial looks a hex up by axial coordinate.
func (b *Board) HexAtAxial(a hex.Axial) (Cell, bool) {
	i, ok := b.byAxial[a]
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// HexAtOffset looks a hex up by its raw offset coordinate.
func (b *Board) HexAtOffset(off hex.Offset) (Cell, bool) {
	i, ok := b.byOffset[off]
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// HexAtAlgebraic looks a hex up by algebraic label. Malformed labels and
// holes both miss.
func (b *Board) HexAtAlgebraic(label string) (Cell, bool) {
	i, ok := b.byLabel[label]
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// Index returns the arena position of a. Positions are stable for the life
// of the board and are shared by Clone and Deserialize of Serialize.
func (b *Board) Index(a hex.Axial) (int, bool) {
	i, ok := b.byAxial[a]
	return i, ok
}

// Hexes returns every populated hex in arena order.
func (b *Board) Hexes() []Cell {
	return slices.Clone(b.cells)
}

// HexesOrdered returns the populated hexes row by row, top row first and
// left to right within a row. There is one slice per logical row; rows with
// no hexes are empty. Holes are omitted.
func (b *Board) HexesOrdered() [][]Cell {
	rows := make([][]Cell, b.Height())
	for _, c := range b.cells {
		_, y := b.normalize(c.Offset)
		rows[y] = append(rows[y], c)
	}
	for _, row := range rows {
		slices.SortFunc(row, func(p, q Cell) int {
			return cmp.Compare(p.Offset.Col, q.Offset.Col)
		})
	}
	return rows
}

// BlockedCells lists, in row-major order, the labels of the rectangle cells
// that hold no hex.
func (b *Board) BlockedCells() []string {
	var out []string
	for _, p := range b.lat.Cells() {
		label, err := b.lat.Coords2Algebraic(p.X, p.Y)
		if err != nil {
			continue
		}
		if _, ok := b.byLabel[label]; !ok {
			out = append(out, label)
		}
	}
	return out
}

// Neighbours returns the populated hexes adjacent to a, in the
// orientation's direction order. a itself need not be on the board.
func (b *Board) Neighbours(a hex.Axial) []Cell {
	out := make([]Cell, 0, 6)
	for _, d := range b.orientation.Directions() {
		n, err := a.Neighbour(b.orientation, d)
		if err != nil {
			continue
		}
		if i, ok := b.byAxial[n]; ok {
			out = append(out, b.cells[i])
		}
	}
	return out
}

// CastRay walks the logical rectangle from the cell labelled from in
// direction d and returns the populated labels passed, start excluded.
// The walk stops at the first hole unless IgnoreVoids is given, and always
// stops at the rectangle's edge.
//
// Errors: lattice.ErrLabel / lattice.ErrOutOfBounds for a bad start label,
// hex.ErrDirection for a direction the orientation lacks.
func (b *Board) CastRay(from string, d hex.Direction, opts ...RayOption) ([]string, error) {
	var cfg rayConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	ray, err := b.lat.RayLabels(from, d)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ray))
	for _, label := range ray {
		if _, ok := b.byLabel[label]; !ok {
			if cfg.ignoreVoids {
				continue
			}
			break
		}
		out = append(out, label)
	}
	return out, nil
}
