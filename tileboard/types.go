package tileboard

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/hexflower/board"
)

// Sentinel errors for state updates and decoding.
var (
	// ErrHexNotFound indicates an update addressed to a hex not on the board.
	ErrHexNotFound = errors.New("tileboard: hex not on board")

	// ErrTile indicates a tile value outside Virgin, Territory and Wall.
	ErrTile = errors.New("tileboard: invalid tile")
)

// Tile classifies a hex. The zero value is Virgin.
type Tile uint8

const (
	// Virgin hexes are unclaimed and count towards nations.
	Virgin Tile = iota
	// Territory hexes are claimed ground; they form territories and nations.
	Territory
	// Wall hexes separate nations.
	Wall
)

var tileNames = [...]string{"virgin", "territory", "wall"}

// Valid reports whether t is a known tile.
func (t Tile) Valid() bool { return t <= Wall }

func (t Tile) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tile(%d)", uint8(t))
	}
	return tileNames[t]
}

// ParseTile decodes a tile name, case-insensitively.
func ParseTile(s string) (Tile, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tileNames {
		if n == name {
			return Tile(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrTile, s)
}

// MarshalText encodes the tile name.
func (t Tile) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrTile, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tile name.
func (t *Tile) UnmarshalText(text []byte) error {
	v, err := ParseTile(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Owner is a player token.
type Owner int

// State is the mutable part of a hex: its tile and its owner stack,
// bottom first.
type State struct {
	Tile  Tile
	Stack []Owner
}

// Hex is a detached view of one hex: geometry plus state.
type Hex struct {
	board.Cell `yaml:",inline"`
	Tile       Tile    `json:"tile" yaml:"tile"`
	Stack      []Owner `json:"stack" yaml:"stack"`
}

// Dupe returns a copy of h that shares no memory with it.
func (h Hex) Dupe() Hex {
	h.Stack = slices.Clone(h.Stack)
	return h
}

// Top returns the owner on top of the stack; ok is false for an empty stack.
func (h Hex) Top() (o Owner, ok bool) {
	if len(h.Stack) == 0 {
		return 0, false
	}
	return h.Stack[len(h.Stack)-1], true
}
