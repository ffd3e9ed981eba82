package tileboard

import (
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexflower/board"
)

// Record is the persisted form of one stateful hex.
type Record struct {
	board.Record `yaml:",inline"`
	Tile         Tile    `json:"tile" yaml:"tile"`
	Stack        []Owner `json:"stack,omitempty" yaml:"stack,omitempty"`
}

// Serialize returns one Record per hex in arena order.
func (b *Board) Serialize() []Record {
	geo := b.geo.Serialize()
	out := make([]Record, len(geo))
	for i, r := range geo {
		out[i] = Record{Record: r, Tile: b.states[i].Tile, Stack: slices.Clone(b.states[i].Stack)}
	}
	return out
}

// Deserialize rebuilds a stateful board. Geometry errors are those of
// board.Deserialize; an unknown tile fails with ErrTile.
func Deserialize(records []Record, opts ...board.Option) (*Board, error) {
	geoRecs := make([]board.Record, len(records))
	for i, r := range records {
		if !r.Tile.Valid() {
			return nil, fmt.Errorf("%w: record %d has tile %d", ErrTile, i, uint8(r.Tile))
		}
		geoRecs[i] = r.Record
	}
	geo, err := board.Deserialize(geoRecs, opts...)
	if err != nil {
		return nil, err
	}
	b := Wrap(geo)
	for i, r := range records {
		b.states[i] = State{Tile: r.Tile, Stack: slices.Clone(r.Stack)}
	}
	return b, nil
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
