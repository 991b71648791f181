// Package dialer implements exhaustive depth-first enumeration of knight
// hop chains on a keypad.Keypad.
//
// Key features:
//   - Enumerate(kp, startKey, length, opts...): all numbers of exact length
//   - Fixed offset order at every level for reproducible output
//   - Branch-local path state; sibling branches never observe each other
//   - Cancellation via context.Context and a per-number hook
//   - Optional fan-out of first-hop subtrees, merged back in order
package dialer

import (
	"fmt"

	"github.com/katalvlaran/knightdial/keypad"
)

// walker encapsulates state during one depth-first enumeration.
// path is indexed by depth-1 and overwritten on the way down, so a branch
// only ever sees its own prefix.
type walker struct {
	kp     *keypad.Keypad
	opts   Options
	length int
	path   []byte
	out    []string
	emit   bool // call OnNumber as numbers complete
}

// Enumerate returns every number of exactly length digits that a knight
// starting on startKey can dial on kp, in depth-first offset order.
// An unknown startKey yields an empty slice and a nil error.
func Enumerate(kp *keypad.Keypad, startKey, length int, opts ...Option) ([]string, error) {
	// 1. Validate input
	if kp == nil {
		return nil, ErrKeypadNil
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Resolve start; a missing key means no paths
	start, ok := kp.PositionOf(startKey)
	if !ok {
		return []string{}, nil
	}

	// 4. Fan out when requested and there is a second level to split
	if dopts.Workers > 1 && length > 1 {
		return enumerateParallel(kp, start, length, dopts)
	}

	w := newWalker(kp, length, dopts)
	w.emit = dopts.OnNumber != nil
	if err := w.traverse(start, 1); err != nil {
		return nil, err
	}

	return w.out, nil
}

func newWalker(kp *keypad.Keypad, length int, opts Options) *walker {
	return &walker{
		kp:     kp,
		opts:   opts,
		length: length,
		path:   make([]byte, length),
		out:    []string{},
	}
}

// traverse records the digit at p as the depth-th digit of the current
// path, then either finalizes the path or recurses into every knight hop.
func (w *walker) traverse(p keypad.Position, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Record current digit; a dead cell here is an adjacency defect
	d, ok := w.kp.ValueAt(p).Digit()
	if !ok {
		panic(fmt.Sprintf("dialer: hop landed on dead cell %v", p))
	}
	w.path[depth-1] = byte('0' + d)

	// 3. Base case: finalize the number
	if depth == w.length {
		num := string(w.path)
		w.out = append(w.out, num)
		if w.emit {
			if err := w.opts.OnNumber(num); err != nil {
				return fmt.Errorf("dialer: OnNumber hook for %q: %w", num, err)
			}
		}

		return nil
	}

	// 4. Explore each hop in offset order
	for _, q := range w.kp.LegalDestinations(p) {
		if q == p {
			panic(fmt.Sprintf("dialer: self hop at %v", p))
		}
		if err := w.traverse(q, depth+1); err != nil {
			return err
		}
	}

	return nil
}
