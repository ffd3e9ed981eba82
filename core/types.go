// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex and Graph declarations, sentinel errors and the constructor.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is a board cell inside the graph.
//
// ID is the cell's algebraic label; X and Y locate it in the lattice frame.
type Vertex struct {
	ID   string
	X, Y int
}

// Graph is an undirected, unweighted cell graph.
type Graph struct {
	vertices map[string]*Vertex

	// adjacency[from][to] = struct{}{}; every edge is stored in both directions.
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
	}
}
