// Package pairwise defines options for threshold-filtered lag computation.
package pairwise

// DefaultEpsilon is the threshold used when the caller does not override
// Options.Epsilon. Lags with |uᵢ − vⱼ| above this value are discarded.
const DefaultEpsilon = 10.0

// Options configures pairwise lag computation.
//
// Fields:
//   - Epsilon — absolute lag threshold; a pair (uᵢ, vⱼ) contributes its
//     difference d = uᵢ − vⱼ to the output iff |d| ≤ Epsilon.
//     Must be non-negative. Epsilon = 0 keeps exact coincidences only.
//
// Example:
//
//	opts := pairwise.DefaultOptions()
//	opts.Epsilon = 5 // only differences within ±5 time units
//
//	lags, err := pairwise.Lags(u, v, &opts)
//	if err != nil {
//	  // handle ErrNegativeEpsilon
//	}
type Options struct {
	Epsilon float64
}

// DefaultOptions returns Options with Epsilon = DefaultEpsilon.
// The threshold is always an explicit per-call value; there is no
// package-level mutable default.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}
