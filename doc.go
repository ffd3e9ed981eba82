// Package hexflower is a geometric and graph substrate for hex boards
// assembled from overlapping flowers: a seed hex plus its six neighbours.
//
// 🚀 What is hexflower?
//
//	A small, dependency-light toolkit that brings together:
//		• Direction algebra: pointy/flat orientations, compass directions, axial ⇄ offset
//		• Canonical edges and vertices: one identity per shared side or corner
//		• Lattices: algebraic labels (a1, b2, aa3…), rays, adjacency graphs
//		• Boards: irregular hex sets with holes, normalized so parity survives translation
//		• Tile boards: per-hex tiles and owner stacks, territories and nations
//
// Under the hood, everything is organized under these subpackages:
//
//	hex/         Orientation, Parity, Direction, Axial and Offset coordinates
//	canon/       canonical Edge and Vertex identities and their incidence maps
//	lattice/     the logical rectangle: labels, rays, conversion to core.Graph
//	core/        undirected label graph with induced-subgraph views
//	bfs/         breadth-first search and connected components
//	board/       the modular board: arena, lookups, rays, codecs
//	tileboard/   stateful board: tiles, stacks, territories, nations
//	layout/      YAML board layouts
//
// Quick ASCII example (pointy, odd rows shoved right):
//
//	 c1  c2
//	b1  b2  b3
//	 a1  a2
//
// is the flower around the hex at axial (0,0); b2 is its center.
//
//	go run github.com/katalvlaran/hexflower/cmd/hexboard -layout board.yaml
package hexflower
