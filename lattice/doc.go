// Package lattice treats the normalized offset rectangle of a hex board as a
// graph of cells with human-readable algebraic labels.
//
// What:
//
//   - Lattice wraps a Width×Height rectangle whose (x, y) cells are offset
//     coordinates already shifted so that row (pointy) or column (flat)
//     parity matches the board's offset setting.
//   - Labels: letters name the row band counted from the bottom (a…z, aa, ab,
//     … like spreadsheet columns), digits name the column (x+1). "a1" is the
//     bottom-left cell.
//   - Rays walk from a cell in one of the orientation's six directions until
//     they leave the rectangle. Holes are the board's concern, not the
//     lattice's.
//   - ToCoreGraph converts the rectangle into a *core.Graph of hex-adjacent
//     cells for component analysis.
//
// Complexity:
//
//   - Coords2Algebraic / Algebraic2Coords: O(log26 H + log10 W).
//   - Ray: O(max(W, H)).
//   - ToCoreGraph: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrNegativeSize: width or height below zero.
//   - ErrLabel: malformed algebraic label (the label is included).
//   - ErrOutOfBounds: a coordinate or decoded label outside the rectangle.
package lattice
