package dialer

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knightdial/keypad"
)

// enumerateParallel explores each first-hop subtree of start on its own
// walker and concatenates the subtree results in offset order, which is
// exactly the serial depth-first order. The OnNumber hook runs after the
// merge so it observes the same sequence as a serial run.
func enumerateParallel(kp *keypad.Keypad, start keypad.Position, length int, opts Options) ([]string, error) {
	d, ok := kp.ValueAt(start).Digit()
	if !ok {
		panic(fmt.Sprintf("dialer: start on dead cell %v", start))
	}

	hops := kp.LegalDestinations(start)
	parts := make([][]string, len(hops))

	g, ctx := errgroup.WithContext(opts.Ctx)
	g.SetLimit(opts.Workers)

	wopts := opts
	wopts.Ctx = ctx
	for i, q := range hops {
		i, q := i, q
		if q == start {
			panic(fmt.Sprintf("dialer: self hop at %v", start))
		}
		g.Go(func() error {
			w := newWalker(kp, length, wopts)
			w.path[0] = byte('0' + d)
			if err := w.traverse(q, 2); err != nil {
				return err
			}
			parts[i] = w.out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]string, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	if opts.OnNumber != nil {
		for _, num := range out {
			if err := opts.OnNumber(num); err != nil {
				return nil, fmt.Errorf("dialer: OnNumber hook for %q: %w", num, err)
			}
		}
	}

	return out, nil
}
