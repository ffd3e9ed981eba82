// Package canon gives every hex edge and vertex a single canonical identity.
//
// An edge is shared by two hexes and a vertex by three. Describing "the same"
// edge or vertex from any of its hexes must produce an identical value, so
// each orientation assigns ownership with a fixed table:
//
//	            edge owners     vertex owners
//	Pointy      NE NW W         N S
//	Flat        N  NE NW        NE SW
//
// A side or corner outside the owner set is re-expressed from the neighbour
// that owns it. Edge and Vertex values are comparable with == and expose a
// stable string Key ("q,r,DIR").
//
// All functions are pure. They return ErrOrientation or ErrDirection when
// handed a direction that cannot occur under the value's orientation; this
// includes the zero Edge and zero Vertex.
package canon
