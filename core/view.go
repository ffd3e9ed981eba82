// File: view.go
// Role: Cloning and non-mutating graph views.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.

package core

// Clone returns a deep copy of the Graph: vertices, adjacency and counters.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. A nil keep map retains every vertex. The input
// graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	kept := func(id string) bool { return keep == nil || keep[id] }

	out := NewGraph()
	for id, v := range g.vertices {
		if kept(id) {
			out.vertices[id] = &Vertex{ID: v.ID, X: v.X, Y: v.Y}
			out.adjacency[id] = make(map[string]struct{})
		}
	}
	for from, nbrs := range g.adjacency {
		if !kept(from) {
			continue
		}
		for to := range nbrs {
			if !kept(to) {
				continue
			}
			out.adjacency[from][to] = struct{}{}
			if from < to {
				out.edgeCount++
			}
		}
	}

	return out
}
