// Package layout reads board layouts from YAML files.
//
// A layout names the frame and the seed centers, and may preset tiles and
// owner stacks:
//
//	orientation: flat     # pointy (default) or flat
//	parity: even          # odd (default), even, -1 or 1
//	centers:
//	  - {q: 0, r: 0}
//	  - {q: 4, r: 0}
//	tiles:
//	  - {q: 0, r: 0, tile: territory, stack: [1]}
package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexflower/board"
	"github.com/katalvlaran/hexflower/hex"
	"github.com/katalvlaran/hexflower/tileboard"
)

// ErrLayout indicates a layout whose settings cannot be applied.
var ErrLayout = errors.New("layout: invalid layout")

// Layout is the decoded YAML document.
type Layout struct {
	Orientation string      `yaml:"orientation"`
	Parity      string      `yaml:"parity"`
	Centers     []hex.Axial `yaml:"centers"`
	Tiles       []TileSpec  `yaml:"tiles"`
}

// TileSpec presets the state of one hex.
type TileSpec struct {
	Q     int               `yaml:"q"`
	R     int               `yaml:"r"`
	Tile  tileboard.Tile    `yaml:"tile"`
	Stack []tileboard.Owner `yaml:"stack"`
}

// Load reads and parses a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a layout document and fills in defaults.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	// Set defaults if not provided
	if l.Orientation == "" {
		l.Orientation = hex.Pointy.String()
	}
	if l.Parity == "" {
		l.Parity = hex.Odd.String()
	}
	return &l, nil
}

// Options converts the layout's frame into board options.
func (l *Layout) Options() ([]board.Option, error) {
	o, err := hex.ParseOrientation(l.Orientation)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayout, err)
	}
	p, err := hex.ParseParity(l.Parity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayout, err)
	}
	return []board.Option{board.WithOrientation(o), board.WithParity(p)}, nil
}

// Build constructs the board described by the layout. Tile presets are
// ignored; see BuildTiles.
func (l *Layout) Build() (*board.Board, error) {
	opts, err := l.Options()
	if err != nil {
		return nil, err
	}
	return board.New(l.Centers, opts...)
}

// BuildTiles constructs a stateful board and applies the tile presets in
// order. A preset for a hex outside the flowers fails with
// tileboard.ErrHexNotFound.
func (l *Layout) BuildTiles() (*tileboard.Board, error) {
	geo, err := l.Build()
	if err != nil {
		return nil, err
	}
	b := tileboard.Wrap(geo)
	for i, ts := range l.Tiles {
		a := hex.Axial{Q: ts.Q, R: ts.R}
		if err = b.UpdateHexTile(a, ts.Tile); err != nil {
			return nil, fmt.Errorf("tiles[%d]: %w", i, err)
		}
		if err = b.UpdateHexStack(a, ts.Stack); err != nil {
			return nil, fmt.Errorf("tiles[%d]: %w", i, err)
		}
	}
	return b, nil
}
