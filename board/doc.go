// Package board implements the modular hex board: an irregular, possibly
// hole-containing set of hexes assembled from overlapping flowers.
//
// What:
//
//   - New ingests seed centers; each expands to itself plus its six
//     neighbours and duplicates merge silently.
//   - Hexes live in an arena of Cell values addressed by integer index.
//     Three lookup indexes (axial, offset, algebraic label) map into the
//     arena and are rebuilt together in a single indexing pass.
//   - The offset bounding box is normalized so that the shoved axis (rows
//     for pointy, columns for flat) is shifted by an even amount. Row/column
//     parity therefore survives any translation of the seed centers, and the
//     lattice frame stays zero-based.
//   - Algebraic labels come from the lattice package and are derived only
//     after the bounds are final.
//
// Reads never expose internal state: Cell is a plain value and every slice
// returned is freshly allocated.
//
// Rays:
//
//	CastRay walks the logical rectangle, not the populated set. By default
//	it stops at the first hole; with IgnoreVoids it steps over holes and
//	keeps collecting populated labels until it leaves the rectangle.
//
// Serialization:
//
//	Serialize returns a flat []Record (axial coordinates plus the board's
//	orientation and parity on every record). Deserialize re-runs the whole
//	indexing pass, so labels are always re-derived and never trusted from
//	storage. Board implements json and yaml (gopkg.in/yaml.v3) marshalers on
//	top of the same records.
//
// Errors:
//
//   - ErrDuplicateHex: a record list contains the same axial hex twice.
//   - ErrMixedFrame: records disagree on orientation or parity.
//   - ErrSealed: an insertion after the board was indexed.
//   - Lookups that miss return (Cell{}, false); holes are expected.
package board
