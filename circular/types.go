// Package circular defines options for periodic lag collection.
package circular

import "github.com/katalvlaran/corrgram/pairwise"

// Options configures circular lag collection.
//
// Fields:
//   - Epsilon — absolute lag threshold applied to every per-offset pairwise
//     difference (see pairwise.Options). Must be non-negative.
//   - Workers — number of goroutines evaluating offsets. 1 (or 0) runs
//     sequentially; values above the offset count are clamped to it.
//     Output is identical for every valid worker count. Must not be
//     negative.
//
// Example:
//
//	opts := circular.DefaultOptions()
//	opts.Epsilon = 25
//	opts.Workers = 8
//
//	lags, err := circular.LagVector(xi, xj, &opts)
//	if err != nil {
//	  // handle ErrEmptySeries, ErrBadWorkers, or a wrapped input error
//	}
type Options struct {
	Epsilon float64
	Workers int
}

// DefaultOptions returns Options with Epsilon = pairwise.DefaultEpsilon
// and Workers = 1 (sequential evaluation).
func DefaultOptions() Options {
	return Options{
		Epsilon: pairwise.DefaultEpsilon,
		Workers: 1,
	}
}
