package board

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexflower/hex"
)

// Record is the persisted form of one hex. Orientation and parity are the
// board's and are repeated on every record; labels are never persisted.
type Record struct {
	Q           int             `json:"q" yaml:"q"`
	R           int             `json:"r" yaml:"r"`
	Orientation hex.Orientation `json:"orientation" yaml:"orientation"`
	Parity      hex.Parity      `json:"parity" yaml:"parity"`
}

// Serialize returns one Record per hex in arena order.
func (b *Board) Serialize() []Record {
	out := make([]Record, len(b.cells))
	for i, c := range b.cells {
		out[i] = Record{Q: c.Axial.Q, R: c.Axial.R, Orientation: b.orientation, Parity: b.parity}
	}
	return out
}

// Deserialize rebuilds a board from records, re-deriving bounds and labels.
// The frame comes from the records; opts supply it only when records is
// empty. Arena order follows record order.
//
// Errors: ErrMixedFrame when records disagree on orientation or parity,
// ErrDuplicateHex when a hex repeats, hex errors for an invalid frame.
func Deserialize(records []Record, opts ...Option) (*Board, error) {
	if len(records) > 0 {
		first := records[0]
		opts = []Option{WithOrientation(first.Orientation), WithParity(first.Parity)}
	}
	b, err := newBoard(opts)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if rec.Orientation != b.orientation || rec.Parity != b.parity {
			return nil, fmt.Errorf("%w: record %d is %v/%v, board is %v/%v",
				ErrMixedFrame, i, rec.Orientation, rec.Parity, b.orientation, b.parity)
		}
		if err = b.add(hex.Axial{Q: rec.Q, R: rec.R}, false); err != nil {
			return nil, err
		}
	}
	if err = b.index(); err != nil {
		return nil, err
	}
	return b, nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	nb.cells = slices.Clone(b.cells)
	nb.byAxial = maps.Clone(b.byAxial)
	nb.byOffset = maps.Clone(b.byOffset)
	nb.byLabel = maps.Clone(b.byLabel)
	nb.lat = b.Lattice()
	return &nb
}

// MarshalJSON encodes the board as its record list.
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Serialize())
}

// UnmarshalJSON replaces b with the board described by a record list.
func (b *Board) UnmarshalJSON(data []byte) error {
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return err
	}
	nb, err := Deserialize(recs)
	if err != nil {
		return err
	}
	*b = *nb
	return nil
}

// MarshalYAML encodes the board as its record list.
func (b *Board) MarshalYAML() (interface{}, error) {
	return b.Serialize(), nil
}

// UnmarshalYAML replaces b with the board described by a record list.
func (b *Board) UnmarshalYAML(node *yaml.Node) error {
	var recs []Record
	if err := node.Decode(&recs); err != nil {
		return err
	}
	nb, err := Deserialize(recs)
	if err != nil {
		return err
	}
	*b = *nb
	return nil
}
