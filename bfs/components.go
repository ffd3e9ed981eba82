package bfs

import "github.com/katalvlaran/hexflower/core"

// Components splits g into connected components.
// Seeds are taken in sorted vertex order and each component lists its cells
// in BFS order, so the output is deterministic for a given graph.
//
// Time:   O(V + E·log d).
// Memory: O(V) for visited flags and output.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, res.Order)
	}
	return comps, nil
}
