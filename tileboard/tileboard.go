package tileboard

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/hexflower/board"
	"github.com/katalvlaran/hexflower/hex"
)

// Board is a board.Board with a tile and an owner stack on every hex.
type Board struct {
	geo    *board.Board
	states []State // aligned with geo's arena
}

// New builds the geometry from seed centers and starts every hex as an
// empty Virgin tile.
func New(centers []hex.Axial, opts ...board.Option) (*Board, error) {
	geo, err := board.New(centers, opts...)
	if err != nil {
		return nil, err
	}
	return Wrap(geo), nil
}

// Wrap adds fresh state to an existing board. The board is shared, not
// copied; it is read-only so sharing is safe.
func Wrap(geo *board.Board) *Board {
	return &Board{geo: geo, states: make([]State, geo.Len())}
}

// Geometry returns the underlying board.
func (b *Board) Geometry() *board.Board { return b.geo }

func (b *Board) detached(i int, c board.Cell) Hex {
	s := b.states[i]
	return Hex{Cell: c, Tile: s.Tile, Stack: slices.Clone(s.Stack)}
}

func (b *Board) lookup(c board.Cell, ok bool) (Hex, bool) {
	if !ok {
		return Hex{}, false
	}
	i, _ := b.geo.Index(c.Axial)
	return b.detached(i, c), true
}

// HexAtAxial looks a hex up by axial coordinate.
func (b *Board) HexAtAxial(a hex.Axial) (Hex, bool) {
	return b.lookup(b.geo.HexAtAxial(a))
}

// HexAtOffset looks a hex up by raw offset coordinate.
func (b *Board) HexAtOffset(off hex.Offset) (Hex, bool) {
	return b.lookup(b.geo.HexAtOffset(off))
}

// HexAtAlgebraic looks a hex up by algebraic label.
func (b *Board) HexAtAlgebraic(label string) (Hex, bool) {
	return b.lookup(b.geo.HexAtAlgebraic(label))
}

// Hexes returns every hex in arena order.
func (b *Board) Hexes() []Hex {
	cells := b.geo.Hexes()
	out := make([]Hex, len(cells))
	for i, c := range cells {
		out[i] = b.detached(i, c)
	}
	return out
}

func (b *Board) index(a hex.Axial) (int, error) {
	i, ok := b.geo.Index(a)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrHexNotFound, a)
	}
	return i, nil
}

// UpdateHexStack replaces the owner stack of hex a with a copy of stack.
func (b *Board) UpdateHexStack(a hex.Axial, stack []Owner) error {
	i, err := b.index(a)
	if err != nil {
		return err
	}
	b.states[i].Stack = slices.Clone(stack)
	return nil
}

// UpdateHexTile sets the tile of hex a.
func (b *Board) UpdateHexTile(a hex.Axial, t Tile) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrTile, uint8(t))
	}
	i, err := b.index(a)
	if err != nil {
		return err
	}
	b.states[i].Tile = t
	return nil
}

// Territories returns the connected groups of Territory hexes as labels.
func (b *Board) Territories() ([][]string, error) {
	return b.geo.Components(func(i int, _ board.Cell) bool {
		return b.states[i].Tile == Territory
	})
}

// Nations returns the connected groups of hexes that are not walls.
func (b *Board) Nations() ([][]string, error) {
	return b.geo.Components(func(i int, _ board.Cell) bool {
		return b.states[i].Tile != Wall
	})
}

// Reach lists the hexes a walk from the labelled hex reaches within steps
// moves without entering a wall. steps == 0 means no limit.
func (b *Board) Reach(ctx context.Context, from string, steps int) ([]board.Step, error) {
	return b.geo.Reach(ctx, from, steps, func(c board.Cell) bool {
		i, _ := b.geo.Index(c.Axial)
		return b.states[i].Tile != Wall
	})
}

// OwnedBy returns, in arena order, the hexes whose stack has o on top.
func (b *Board) OwnedBy(o Owner) []Hex {
	var out []Hex
	for i, c := range b.geo.Hexes() {
		h := b.detached(i, c)
		if top, ok := h.Top(); ok && top == o {
			out = append(out, h)
		}
	}
	return out
}

// Clone returns a board whose state is fully independent of b.
func (b *Board) Clone() *Board {
	nb := &Board{geo: b.geo.Clone(), states: make([]State, len(b.states))}
	for i, s := range b.states {
		nb.states[i] = State{Tile: s.Tile, Stack: slices.Clone(s.Stack)}
	}
	return nb
}
