// Package tileboard layers per-hex game state over a board.Board: a tile
// classification and a stack of owner tokens for every hex.
//
// The geometry is shared and read-only; state lives in a slice aligned with
// the board's arena, so a hex's state is found by its arena index. Every
// read returns a detached Hex (its stack is copied) and every write copies
// the caller's stack, so no two boards ever share a stack.
//
// Territories and Nations are recomputed on each call: connected groups of
// hexes whose tile is Territory, or whose tile is anything but Wall.
package tileboard
