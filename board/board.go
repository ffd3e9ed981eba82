package board

import (
	"fmt"

	"github.com/katalvlaran/hexflower/hex"
	"github.com/katalvlaran/hexflower/lattice"
)

// Cell is one populated hex: its axial identity, raw offset position and
// algebraic label in the normalized frame. Cell is a plain value.
type Cell struct {
	Axial  hex.Axial  `json:"axial" yaml:"axial"`
	Offset hex.Offset `json:"offset" yaml:"offset"`
	Label  string     `json:"label" yaml:"label"`
}

// Bounds is the raw offset bounding box of the populated hexes.
type Bounds struct {
	MinCol, MinRow int
	MaxCol, MaxRow int
}

// Board is an irregular set of hexes with axial, offset and algebraic
// lookups. Build it with New or Deserialize; after that it is read-only.
type Board struct {
	orientation hex.Orientation
	parity      hex.Parity

	cells    []Cell
	byAxial  map[hex.Axial]int
	byOffset map[hex.Offset]int
	byLabel  map[string]int

	bounds         Bounds
	shiftX, shiftY int
	lat            *lattice.Lattice
	sealed         bool
}

// New builds a board from seed centers. Each center contributes its flower
// (itself plus six neighbours); overlapping flowers merge silently.
// An empty center list yields an empty 0×0 board.
func New(centers []hex.Axial, opts ...Option) (*Board, error) {
	b, err := newBoard(opts)
	if err != nil {
		return nil, err
	}
	for _, c := range centers {
		for _, a := range hex.Flower(c) {
			if err = b.add(a, true); err != nil {
				return nil, err
			}
		}
	}
	if err = b.index(); err != nil {
		return nil, err
	}
	return b, nil
}

func newBoard(opts []Option) (*Board, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	return &Board{
		orientation: cfg.orientation,
		parity:      cfg.parity,
		byAxial:     make(map[hex.Axial]int),
	}, nil
}

// add appends a to the arena. A hex already present is kept as is when
// overwrite is true and rejected with ErrDuplicateHex otherwise.
func (b *Board) add(a hex.Axial, overwrite bool) error {
	if b.sealed {
		return fmt.Errorf("%w: add %v", ErrSealed, a)
	}
	if _, ok := b.byAxial[a]; ok {
		if overwrite {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrDuplicateHex, a)
	}
	off, err := hex.ToOffset(a, b.orientation, b.parity)
	if err != nil {
		return err
	}
	b.byAxial[a] = len(b.cells)
	b.cells = append(b.cells, Cell{Axial: a, Offset: off})
	return nil
}

// index finalizes the bounds, builds the lattice and rebuilds all three
// lookup maps in one pass over the arena. The board is sealed afterwards.
func (b *Board) index() error {
	b.bounds = Bounds{}
	for i, c := range b.cells {
		if i == 0 {
			b.bounds = Bounds{c.Offset.Col, c.Offset.Row, c.Offset.Col, c.Offset.Row}
			continue
		}
		b.bounds.MinCol = min(b.bounds.MinCol, c.Offset.Col)
		b.bounds.MinRow = min(b.bounds.MinRow, c.Offset.Row)
		b.bounds.MaxCol = max(b.bounds.MaxCol, c.Offset.Col)
		b.bounds.MaxRow = max(b.bounds.MaxRow, c.Offset.Row)
	}

	var w, h int
	if len(b.cells) > 0 {
		b.shiftX, b.shiftY = b.bounds.MinCol, b.bounds.MinRow
		if b.orientation == hex.Pointy {
			b.shiftY = evenFloor(b.shiftY)
		} else {
			b.shiftX = evenFloor(b.shiftX)
		}
		w = b.bounds.MaxCol - b.shiftX + 1
		h = b.bounds.MaxRow - b.shiftY + 1
	}
	lat, err := lattice.New(w, h, b.orientation, b.parity)
	if err != nil {
		return err
	}
	b.lat = lat

	b.byAxial = make(map[hex.Axial]int, len(b.cells))
	b.byOffset = make(map[hex.Offset]int, len(b.cells))
	b.byLabel = make(map[string]int, len(b.cells))
	for i := range b.cells {
		c := &b.cells[i]
		x, y := b.normalize(c.Offset)
		if c.Label, err = lat.Coords2Algebraic(x, y); err != nil {
			return err
		}
		b.byAxial[c.Axial] = i
		b.byOffset[c.Offset] = i
		b.byLabel[c.Label] = i
	}
	b.sealed = true
	return nil
}

// evenFloor returns n when even, n-1 when odd.
func evenFloor(n int) int {
	if n&1 != 0 {
		return n - 1
	}
	return n
}

// normalize maps a raw offset into the zero-based lattice frame.
func (b *Board) normalize(off hex.Offset) (x, y int) {
	return off.Col - b.shiftX, off.Row - b.shiftY
}

// Orientation reports the board's hex orientation.
func (b *Board) Orientation() hex.Orientation { return b.orientation }

// Parity reports the board's offset parity.
func (b *Board) Parity() hex.Parity { return b.parity }

// Len is the number of populated hexes.
func (b *Board) Len() int { return len(b.cells) }

// Width of the logical rectangle; 0 for an empty board.
func (b *Board) Width() int { return b.lat.Width }

// Height of the logical rectangle; 0 for an empty board.
func (b *Board) Height() int { return b.lat.Height }

// Shift returns the translation subtracted from raw offsets to reach the
// lattice frame. The shoved axis always has an even shift.
func (b *Board) Shift() (x, y int) { return b.shiftX, b.shiftY }

// Bounds returns the raw offset bounding box; zero for an empty board.
func (b *Board) Bounds() Bounds { return b.bounds }

// Lattice returns a copy of the board's logical rectangle.
func (b *Board) Lattice() *lattice.Lattice {
	l := *b.lat
	return &l
}
