// Package core provides the undirected cell graph used for adjacency and
// component analysis over hex boards.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are board cells, identified by their algebraic label and
//     carrying the cell's (X, Y) position in the normalized lattice frame.
//   - Edges are undirected and unweighted: two cells are either hex-adjacent
//     or not. Self-loops and parallel edges are rejected.
//   - Adjacency is a nested set: adjacency[from][to] = struct{}{}, mirrored
//     for every edge.
//
// Why a separate graph?
//
//   - The lattice builds one graph for the whole logical rectangle; callers
//     carve out territories or nations with InducedSubgraph instead of
//     re-deriving adjacency by hand.
//   - Deterministic iteration: Vertices(), NeighborIDs() and Edges() all
//     return sorted results, so component order is reproducible.
//
// Core Methods:
//
//	AddVertex(id string, x, y int) error   // O(1), idempotent
//	HasVertex(id string) bool              // O(1)
//	AddEdge(from, to string) error         // O(1), idempotent
//	HasEdge(from, to string) bool          // O(1)
//	NeighborIDs(id string) ([]string, error) // O(d·log d)
//	Vertices() []string                    // O(V·log V)
//	Edges() [][2]string                    // O(E·log E)
//	Clone() *Graph                         // O(V+E)
//	InducedSubgraph(g, keep) *Graph        // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrLoopNotAllowed – edge from a vertex to itself
//
// A Graph is not safe for concurrent mutation; boards own their graphs
// exclusively and rebuild them on demand.
package core
