package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/knightdial/dialer"
	"github.com/katalvlaran/knightdial/internal/config"
	"github.com/katalvlaran/knightdial/internal/logger"
	"github.com/katalvlaran/knightdial/keypad"
)

// LengthReport is the outcome of one enumeration.
type LengthReport struct {
	Length   int           `json:"length"`
	Count    int           `json:"count"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	Distinct bool          `json:"distinct"`
	Numbers  []string      `json:"numbers,omitempty"`
}

// Report is the full run, as emitted with --json.
type Report struct {
	Start   int            `json:"start"`
	Board   string         `json:"board"`
	Lengths []LengthReport `json:"lengths"`
}

// run enumerates numbers from c.Start for every length in
// [c.MinLength, c.MaxLength] and writes the report to out.
func run(ctx context.Context, out io.Writer, c config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	kp := keypad.New()
	if _, ok := kp.PositionOf(c.Start); !ok {
		logger.L.Warn("start key not on keypad; every length yields no numbers",
			"start", c.Start, "err", keypad.ErrKeyNotFound)
	}

	rep := Report{Start: c.Start, Board: kp.String()}
	if !c.JSON {
		fmt.Fprintln(out, "Dial board:")
		fmt.Fprint(out, rep.Board)
	}

	opts := []dialer.Option{dialer.WithContext(ctx)}
	if c.Workers > 1 {
		opts = append(opts, dialer.WithParallel(c.Workers))
	}

	for n := c.MinLength; n <= c.MaxLength; n++ {
		began := time.Now()
		numbers, err := dialer.Enumerate(kp, c.Start, n, opts...)
		if err != nil {
			return fmt.Errorf("enumerate length %d: %w", n, err)
		}
		lr := LengthReport{
			Length:   n,
			Count:    len(numbers),
			Elapsed:  time.Since(began),
			Distinct: dialer.Distinct(numbers),
		}
		logger.L.Debug("enumerated", "start", c.Start, "length", n, "count", lr.Count, "elapsed", lr.Elapsed)
		if c.Print {
			lr.Numbers = numbers
		}

		if c.JSON {
			rep.Lengths = append(rep.Lengths, lr)
			continue
		}
		printLength(out, lr)
	}

	if c.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(rep)
	}

	return nil
}

func printLength(out io.Writer, lr LengthReport) {
	fmt.Fprintf(out, "\nLength: %d, found numbers: %d (%d ms)\n", lr.Length, lr.Count, lr.Elapsed.Milliseconds())
	for i, num := range lr.Numbers {
		fmt.Fprintf(out, "%d:\t%s\n", i+1, num)
	}
	fmt.Fprintf(out, "All numbers are distinct: %t\n", lr.Distinct)
}
