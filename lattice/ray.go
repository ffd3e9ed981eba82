package lattice

import (
	"fmt"

	"github.com/katalvlaran/hexflower/hex"
)

// Ray walks from (x,y) in direction d, one hex step at a time, and returns
// every cell passed until the walk leaves the rectangle. The start cell is
// not included. The result is a fresh slice; re-invoke to restart.
//
// Errors: ErrOutOfBounds for a start outside the rectangle, hex.ErrDirection
// for a direction the orientation does not have.
func (l *Lattice) Ray(x, y int, d hex.Direction) ([]Point, error) {
	if !l.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, l.Width, l.Height)
	}
	if !l.Orientation.HasDirection(d) {
		return nil, fmt.Errorf("%w: %v under %v", hex.ErrDirection, d, l.Orientation)
	}
	var out []Point
	for {
		p, ok, err := l.Step(x, y, d)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, p)
		x, y = p.X, p.Y
	}
}

// RayLabels is Ray expressed in algebraic labels.
func (l *Lattice) RayLabels(from string, d hex.Direction) ([]string, error) {
	x, y, err := l.Algebraic2Coords(from)
	if err != nil {
		return nil, err
	}
	pts, err := l.Ray(x, y, d)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(pts))
	for i, p := range pts {
		if out[i], err = l.Coords2Algebraic(p.X, p.Y); err != nil {
			return nil, err
		}
	}
	return out, nil
}
