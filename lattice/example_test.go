// File: lattice/example_test.go
package lattice_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hexflower/hex"
	"github.com/katalvlaran/hexflower/lattice"
)

////////////////////////////////////////////////////////////////////////////////
// Example: algebraic labels and rays
////////////////////////////////////////////////////////////////////////////////

// ExampleLattice_RayLabels labels a 3×3 pointy lattice and casts a ray.
// Scenario:
//
//   - Odd rows are shoved right, so the middle row sits half a hex east.
//   - "a1" is the bottom-left cell; rows climb a, b, c.
//   - A NE ray from a1 zig-zags through the shoved row.
func ExampleLattice_RayLabels() {
	l, _ := lattice.New(3, 3, hex.Pointy, hex.Odd)

	for y := 0; y < l.Height; y++ {
		row := make([]string, 0, l.Width)
		for x := 0; x < l.Width; x++ {
			label, _ := l.Coords2Algebraic(x, y)
			row = append(row, label)
		}
		fmt.Println(strings.Join(row, " "))
	}
	ray, _ := l.RayLabels("a1", hex.NE)
	fmt.Println("NE from a1:", ray)

	// Output:
	// c1 c2 c3
	// b1 b2 b3
	// a1 a2 a3
	// NE from a1: [b1 c2]
}
