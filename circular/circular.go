package circular

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/corrgram/eventgrid"
	"github.com/katalvlaran/corrgram/pairwise"
)

// LagVector — full periodic lag sequence over a shared discretized horizon
//
// Description:
//
//	LagVector enumerates every circular alignment of stream xi against
//	stream xj over the ring both streams share, and collects the
//	threshold-filtered pairwise lags of each alignment into one flat
//	sequence.
//
// Algorithm Outline:
//  1. horizon = max event time across xi and xj (both must be non-empty).
//  2. Build gi and gj as occupancy vectors of length N = horizon+1.
//  3. v = gj.Events(), computed once, never rotated.
//  4. For offset = 0..N-1:
//     u = gi.Shift(offset).Events()
//     lags(offset) = pairwise.Lags(u, v, ε)
//  5. Concatenate lags(0), lags(1), … lags(N-1) in ascending offset order.
//
// With Workers > 1, step 4 fans out to a bounded pool; each offset writes
// into its own slot and step 5 concatenates slots in offset order, so the
// result does not depend on goroutine scheduling.
//
// Complexity:
//
//	Time   = O(N²) worst case (dense grids, permissive ε)
//	Memory = O(N + k), k = collected lags
//
// Errors:
//   - ErrEmptySeries              — either input series is empty.
//   - ErrBadWorkers               — Options.Workers is negative.
//   - pairwise.ErrNegativeEpsilon — wrapped, when ε is negative or NaN.
//   - eventgrid.ErrNegativeEvent  — wrapped, when an event time is negative.
var (
	// ErrEmptySeries indicates one or both input series are empty, so no
	// shared horizon can be inferred.
	ErrEmptySeries = errors.New("circular: both event series must be non-empty")

	// ErrBadWorkers indicates a negative Options.Workers value.
	ErrBadWorkers = errors.New("circular: Workers must not be negative")
)

// LagVector computes the circular lag sequence between xi and xj.
// Returns (lags, error).
//
// A nil opts uses DefaultOptions (Epsilon = 10, sequential).
//
// Example:
//
//	lags, err := circular.LagVector([]int{1, 2}, []int{3}, nil)
//	// lags == []float64{-2, -1, -1, 0, -3, 0, -3, -2}
func LagVector(xi, xj []int, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers < 0 {
		return nil, ErrBadWorkers
	}
	if o.Epsilon < 0 || math.IsNaN(o.Epsilon) {
		return nil, fmt.Errorf("circular: validating options: %w", pairwise.ErrNegativeEpsilon)
	}
	if len(xi) == 0 || len(xj) == 0 {
		return nil, ErrEmptySeries
	}

	horizon, err := eventgrid.JointHorizon(xi, xj)
	if err != nil {
		return nil, fmt.Errorf("circular: deriving joint horizon: %w", err)
	}
	gi, err := eventgrid.Build(xi, horizon)
	if err != nil {
		return nil, fmt.Errorf("circular: building first grid: %w", err)
	}
	gj, err := eventgrid.Build(xj, horizon)
	if err != nil {
		return nil, fmt.Errorf("circular: building second grid: %w", err)
	}

	n := gi.Len()
	v := toFloat64s(gj.Events())
	pw := pairwise.Options{Epsilon: o.Epsilon}

	// One slot per offset; concatenation in slot order keeps output
	// deterministic whether slots are filled sequentially or by workers.
	perOffset := make([][]float64, n)

	workers := o.Workers
	if workers <= 1 || n == 1 {
		for off := 0; off < n; off++ {
			perOffset[off] = collectOffset(gi, v, off, pw)
		}
	} else {
		if workers > n {
			workers = n
		}
		offsets := make(chan int)
		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for off := range offsets {
					perOffset[off] = collectOffset(gi, v, off, pw)
				}
			}()
		}
		for off := 0; off < n; off++ {
			offsets <- off
		}
		close(offsets)
		wg.Wait()
	}

	total := 0
	for _, part := range perOffset {
		total += len(part)
	}
	out := make([]float64, 0, total)
	for _, part := range perOffset {
		out = append(out, part...)
	}

	return out, nil
}

// collectOffset evaluates a single alignment: rotate gi by off, recover its
// event times, and difference them against v under the threshold. Epsilon
// was validated by LagVector, so pairwise.Lags cannot fail here.
func collectOffset(gi eventgrid.Grid, v []float64, off int, pw pairwise.Options) []float64 {
	u := toFloat64s(gi.Shift(off).Events())
	lags, _ := pairwise.Lags(u, v, &pw)

	return lags
}

// toFloat64s widens integer event times to the float64 domain pairwise.Lags
// operates in.
func toFloat64s(events []int) []float64 {
	out := make([]float64, len(events))
	for i, e := range events {
		out[i] = float64(e)
	}

	return out
}
