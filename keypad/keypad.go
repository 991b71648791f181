// Package keypad provides the dial-pad grid and knight adjacency used by
// the dialer. It supports:
//
//   - Construction of the canonical 3×4 telephone keypad
//   - Key lookup by value and cell lookup by position
//   - Validity checks that reject off-grid and dead positions alike
//   - Ordered knight-move destinations from any position
package keypad

import "strings"

// New builds the canonical dial pad. Cells are numbered row-major from 1;
// slots 10 and 12 are dead and slot 11 becomes key 0, so every digit 0..9
// appears exactly once.
// Complexity: O(W×H) time and memory.
func New() *Keypad {
	cells := make([][]Cell, Height)
	n := 0
	for y := 0; y < Height; y++ {
		cells[y] = make([]Cell, Width)
		for x := 0; x < Width; x++ {
			n++
			switch n {
			case 10, 12:
				cells[y][x] = Dead()
			case 11:
				cells[y][x] = Key(0)
			default:
				cells[y][x] = Key(n)
			}
		}
	}

	return &Keypad{width: Width, height: Height, cells: cells}
}

// Width returns the number of columns.
func (kp *Keypad) Width() int { return kp.width }

// Height returns the number of rows.
func (kp *Keypad) Height() int { return kp.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (kp *Keypad) InBounds(p Position) bool {
	return p.X >= 0 && p.X < kp.width && p.Y >= 0 && p.Y < kp.height
}

// IsValid reports whether p is on the grid and holds a key.
// Off-grid and dead positions are rejected identically.
// Complexity: O(1).
func (kp *Keypad) IsValid(p Position) bool {
	return kp.InBounds(p) && !kp.cells[p.Y][p.X].IsDead()
}

// ValueAt returns the cell at p. It does not bounds-check; callers must
// validate p with IsValid or InBounds first.
// Complexity: O(1).
func (kp *Keypad) ValueAt(p Position) Cell {
	return kp.cells[p.Y][p.X]
}

// PositionOf returns the position holding key, or false if no cell does.
// Complexity: O(W×H).
func (kp *Keypad) PositionOf(key int) (Position, bool) {
	for y, row := range kp.cells {
		for x, c := range row {
			if d, ok := c.Digit(); ok && d == key {
				return Position{X: x, Y: y}, true
			}
		}
	}

	return Position{}, false
}

// LegalDestinations returns every position one knight move away from p
// that passes IsValid, in KnightOffsets order.
// Complexity: O(8).
func (kp *Keypad) LegalDestinations(p Position) []Position {
	out := make([]Position, 0, len(KnightOffsets))
	for _, d := range KnightOffsets {
		if q := p.Add(d); kp.IsValid(q) {
			out = append(out, q)
		}
	}

	return out
}

// Keys returns every live digit in row-major order.
func (kp *Keypad) Keys() []int {
	keys := make([]int, 0, kp.width*kp.height)
	for _, row := range kp.cells {
		for _, c := range row {
			if d, ok := c.Digit(); ok {
				keys = append(keys, d)
			}
		}
	}

	return keys
}

// String renders the board one row per line, each cell as its digit
// followed by a space; dead cells render as two spaces.
func (kp *Keypad) String() string {
	var sb strings.Builder
	for _, row := range kp.cells {
		for _, c := range row {
			if c.IsDead() {
				sb.WriteString("  ")
				continue
			}
			sb.WriteString(c.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
