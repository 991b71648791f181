// Package dialer defines options and sentinel errors for knight-path
// enumeration.
package dialer

import (
	"context"
	"errors"
)

var (
	// ErrKeypadNil is returned when a nil *keypad.Keypad is passed to Enumerate.
	ErrKeypadNil = errors.New("dialer: keypad is nil")

	// ErrInvalidLength indicates a requested number length below 1.
	ErrInvalidLength = errors.New("dialer: length must be at least 1")
)

// Option configures optional behavior of Enumerate.
type Option func(*Options)

// Options holds configurable parameters for enumeration.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// Cancelling the context aborts enumeration and discards partial results.
	Ctx context.Context

	// OnNumber, if non-nil, is invoked once per completed number in output
	// order. Returning an error aborts enumeration with that error.
	OnNumber func(number string) error

	// Workers, if greater than 1, explores the first hop's subtrees
	// concurrently on at most Workers goroutines. Output order is unchanged.
	Workers int
}

// DefaultOptions returns Options with a background context, no hook and
// serial traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnNumber: nil,
		Workers:  0,
	}
}

// WithContext returns an Option that sets the Context for enumeration.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnNumber returns an Option that installs fn as the per-number hook.
func WithOnNumber(fn func(number string) error) Option {
	return func(o *Options) {
		o.OnNumber = fn
	}
}

// WithParallel returns an Option that enables fan-out over the first hop
// using up to workers goroutines. Values below 2 keep traversal serial.
func WithParallel(workers int) Option {
	return func(o *Options) {
		o.Workers = workers
	}
}
