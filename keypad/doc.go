// Package keypad models a telephone dial pad as a small rectangular grid
// and exposes the legal chess-knight hops between its keys.
//
// What:
//
//   - Keypad wraps a fixed 3×4 grid of cells; each cell is either a Key
//     holding a digit 0..9 or Dead (no key present).
//   - Position addresses a cell by column X and row Y.
//   - LegalDestinations applies the eight knight offsets in a fixed order
//     and keeps only on-grid, non-dead targets.
//
// Layout:
//
//	1 2 3
//	4 5 6
//	7 8 9
//	  0
//
// Complexity:
//
//   - New:               O(W×H), Memory: O(W×H).
//   - PositionOf:        O(W×H) linear scan.
//   - IsValid, ValueAt:  O(1).
//   - LegalDestinations: O(8), Memory: O(8).
//
// Errors:
//
//   - ErrKeyNotFound: no cell holds the requested key.
package keypad
