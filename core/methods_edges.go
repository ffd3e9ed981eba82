// File: methods_edges.go
// Role: Edge insertion and adjacency queries.
//
// Determinism:
//   - NeighborIDs() and Edges() return sorted results.

package core

import (
	"fmt"
	"sort"
)

// AddEdge joins two existing vertices. Adding an edge that already exists
// is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: either endpoint is "".
//   - ErrVertexNotFound: either endpoint is missing (wrapped with its ID).
//   - ErrLoopNotAllowed: from == to.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	for _, id := range [2]string{from, to} {
		if _, ok := g.vertices[id]; !ok {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	if _, dup := g.adjacency[from][to]; dup {
		return nil
	}
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether from and to are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.adjacency[from][to]

	return ok
}

// NeighborIDs returns the sorted IDs adjacent to id.
//
// Errors:
//   - ErrVertexNotFound: id is missing.
//
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Edges returns every edge once as a (lo, hi) pair, sorted.
// Complexity: O(E·log E).
func (g *Graph) Edges() [][2]string {
	out := make([][2]string, 0, g.edgeCount)
	for from, nbrs := range g.adjacency {
		for to := range nbrs {
			if from < to {
				out = append(out, [2]string{from, to})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}
