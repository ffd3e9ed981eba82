// Package hex is the direction algebra underneath every modular board.
//
// What:
//
//   - Axial (q, r) coordinates and their rectangular Offset (col, row) view.
//   - Orientation (Pointy, Flat) and Parity (Even, Odd) fixed once per board.
//   - A compass Direction enum with orientation-specific subsets:
//     neighbour/edge directions, corner directions, canonical owners.
//   - Axial deltas per direction, flowers, rings, disks and distances.
//
// Orientation tables:
//
//	Pointy  neighbours: NE E SE SW W NW   corners: N NE SE S SW NW
//	Flat    neighbours: N NE SE S SW NW   corners: NE E SE SW W NW
//
// Offset frames:
//
//	Pointy: col = q + (r + p*(r&1))/2, row = r
//	Flat:   col = q,                   row = r + (q + p*(q&1))/2
//
// where p is +1 (Even rows/columns shoved) or -1 (Odd rows/columns shoved).
// The formulas are exact for negative coordinates.
//
// Errors:
//
//   - ErrOrientation: orientation value is neither Pointy nor Flat.
//   - ErrParity: parity value is neither Even nor Odd.
//   - ErrDirection: direction is not part of the requested orientation set.
package hex
