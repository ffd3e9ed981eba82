// File: graph.go
// Role: Adjacency graph, connected groups and canonical edge/vertex queries.
// AI-HINT (file):
//   - Graph vertices are algebraic labels; only populated cells are kept.
//   - Components is the building block for tile-filtered groups (tileboard).

package board

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/hexflower/bfs"
	"github.com/katalvlaran/hexflower/canon"
	"github.com/katalvlaran/hexflower/core"
	"github.com/katalvlaran/hexflower/hex"
)

// Graph returns the adjacency graph of the populated hexes.
// Complexity: O(W×H) for the lattice plus O(V + E) for the induced view.
func (b *Board) Graph() (*core.Graph, error) {
	return b.Subgraph(func(int, Cell) bool { return true })
}

// Subgraph returns the adjacency graph restricted to the hexes for which
// keep returns true. keep receives the arena index and the cell.
func (b *Board) Subgraph(keep func(i int, c Cell) bool) (*core.Graph, error) {
	full, err := b.lat.ToCoreGraph()
	if err != nil {
		return nil, err
	}
	kept := make(map[string]bool, len(b.cells))
	for i, c := range b.cells {
		if keep(i, c) {
			kept[c.Label] = true
		}
	}
	return core.InducedSubgraph(full, kept), nil
}

// Components groups the kept hexes into connected groups of labels.
// Groups are seeded in sorted label order and list their members in
// breadth-first order.
func (b *Board) Components(keep func(i int, c Cell) bool) ([][]string, error) {
	g, err := b.Subgraph(keep)
	if err != nil {
		return nil, err
	}
	return bfs.Components(g)
}

// Path returns a shortest chain of adjacent populated hexes from one label
// to another, both ends included. Holes are never crossed.
//
// Errors: bfs.ErrStartVertexNotFound when from is not a populated label,
// bfs.ErrNoPath when to cannot be reached.
func (b *Board) Path(from, to string) ([]string, error) {
	g, err := b.Graph()
	if err != nil {
		return nil, err
	}
	res, err := bfs.BFS(g, from)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, from)
	}
	return res.PathTo(to)
}

// Step is one hex reached by Reach and its distance in moves.
type Step struct {
	Label string `json:"label" yaml:"label"`
	Depth int    `json:"depth" yaml:"depth"`
}

// Reach lists the populated hexes within steps moves of from, nearest first.
// steps == 0 means no limit. When pass is non-nil a walk only enters hexes
// for which it returns true; from itself is always listed.
//
// Errors: bfs.ErrStartVertexNotFound for an unknown from,
// bfs.ErrOptionViolation for negative steps, ctx.Err() on cancellation.
func (b *Board) Reach(ctx context.Context, from string, steps int, pass func(Cell) bool) ([]Step, error) {
	g, err := b.Graph()
	if err != nil {
		return nil, err
	}
	var out []Step
	opts := []bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(steps),
		bfs.WithOnVisit(func(id string, depth int) error {
			out = append(out, Step{Label: id, Depth: depth})
			return nil
		}),
	}
	if pass != nil {
		opts = append(opts, bfs.WithFilterNeighbor(func(_, next string) bool {
			return pass(b.cells[b.byLabel[next]])
		}))
	}
	if _, err = bfs.BFS(g, from, opts...); err != nil {
		return nil, fmt.Errorf("reach from %q: %w", from, err)
	}
	return out, nil
}

// Edges returns every canonical edge touching a populated hex, sorted by
// key. A side shared by two populated hexes appears once.
func (b *Board) Edges() ([]canon.Edge, error) {
	seen := make(map[canon.Edge]struct{}, 3*len(b.cells))
	for _, c := range b.cells {
		es, err := canon.HexEdges(c.Axial, b.orientation)
		if err != nil {
			return nil, err
		}
		for _, e := range es {
			seen[e] = struct{}{}
		}
	}
	out := make([]canon.Edge, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	slices.SortFunc(out, func(p, q canon.Edge) int { return cmp.Compare(p.Key(), q.Key()) })
	return out, nil
}

// Vertices returns every canonical vertex touching a populated hex, sorted
// by key.
func (b *Board) Vertices() ([]canon.Vertex, error) {
	seen := make(map[canon.Vertex]struct{}, 2*len(b.cells))
	for _, c := range b.cells {
		vs, err := canon.HexVertices(c.Axial, b.orientation)
		if err != nil {
			return nil, err
		}
		for _, v := range vs {
			seen[v] = struct{}{}
		}
	}
	out := make([]canon.Vertex, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	slices.SortFunc(out, func(p, q canon.Vertex) int { return cmp.Compare(p.Key(), q.Key()) })
	return out, nil
}

// EdgeCells returns the populated hexes on either side of e: two for an
// interior edge, one on the board's rim, none when e is off the board.
// An edge of the other orientation fails with hex.ErrOrientation.
func (b *Board) EdgeCells(e canon.Edge) ([]Cell, error) {
	if err := b.sameOrientation(e.Orientation()); err != nil {
		return nil, err
	}
	hs, err := canon.EdgeHexes(e)
	if err != nil {
		return nil, err
	}
	return b.present(hs[:]), nil
}

// VertexCells returns the populated hexes meeting at v (at most three).
func (b *Board) VertexCells(v canon.Vertex) ([]Cell, error) {
	if err := b.sameOrientation(v.Orientation()); err != nil {
		return nil, err
	}
	hs, err := canon.VertexHexes(v)
	if err != nil {
		return nil, err
	}
	return b.present(hs[:]), nil
}

func (b *Board) sameOrientation(o hex.Orientation) error {
	if o != b.orientation {
		return fmt.Errorf("%w: %v on a %v board", hex.ErrOrientation, o, b.orientation)
	}
	return nil
}

func (b *Board) present(hs []hex.Axial) []Cell {
	out := make([]Cell, 0, len(hs))
	for _, a := range hs {
		if i, ok := b.byAxial[a]; ok {
			out = append(out, b.cells[i])
		}
	}
	return out
}
