// Package keypad defines core types for the dial-pad model: positions,
// tagged cell states, knight offsets and the immutable Keypad itself.
package keypad

import (
	"fmt"
	"strconv"
)

// Board dimensions of the canonical dial pad.
const (
	Width  = 3
	Height = 4
)

// Position identifies a cell by column X and row Y. Row 0 is the top row.
// Positions are plain comparable values; two positions are equal iff both
// coordinates match.
type Position struct {
	X, Y int
}

// Add returns p shifted by the offset d.
func (p Position) Add(d Offset) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Offset is a relative move on the grid.
type Offset struct {
	DX, DY int
}

// KnightOffsets lists the eight knight moves in the order LegalDestinations
// applies them. Downstream traversal order depends on this order.
var KnightOffsets = [8]Offset{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// cellKind tags a Cell as dead or holding a key.
type cellKind uint8

const (
	kindDead cellKind = iota
	kindKey
)

// Cell is the content of one grid position: either Dead or Key(digit).
// The zero value is Dead.
type Cell struct {
	kind  cellKind
	digit uint8
}

// Dead returns a cell with no key.
func Dead() Cell { return Cell{} }

// Key returns a cell holding digit d. It panics if d is outside 0..9.
func Key(d int) Cell {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("keypad: digit %d out of range 0..9", d))
	}

	return Cell{kind: kindKey, digit: uint8(d)}
}

// Digit returns the key value and true, or 0 and false for a dead cell.
func (c Cell) Digit() (int, bool) {
	if c.kind != kindKey {
		return 0, false
	}

	return int(c.digit), true
}

// IsDead reports whether the cell holds no key.
func (c Cell) IsDead() bool {
	return c.kind == kindDead
}

// String returns the digit, or an empty string for a dead cell.
func (c Cell) String() string {
	if d, ok := c.Digit(); ok {
		return strconv.Itoa(d)
	}

	return ""
}

// Keypad is an immutable grid of cells. It is never mutated after New
// returns, so any number of goroutines may read it concurrently.
// cells[y][x] holds the cell at Position{x, y}.
type Keypad struct {
	width, height int
	cells         [][]Cell
}
