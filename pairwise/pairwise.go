package pairwise

import (
	"errors"
	"math"
)

// Lags — threshold-filtered Cartesian lag differences
//
// Description:
//
//	Lags walks the full Cartesian product of two event-time sequences and
//	keeps every signed difference whose magnitude does not exceed ε.
//	The result is the flat lag sequence a cross-correlogram is built from.
//
// Algorithm Outline:
//  1. Resolve options (nil opts → DefaultOptions); reject ε < 0.
//  2. For i = 0..len(u)-1 (outer), j = 0..len(v)-1 (inner):
//     d = u[i] - v[j]
//     if |d| ≤ ε, append d to the result.
//  3. Return the result in iteration order.
//
// The output order (u outer, v inner) carries no semantic meaning but is
// fixed so repeated runs over identical inputs are byte-for-byte equal.
// Empty u or v yields an empty, non-nil result — not an error.
//
// The result buffer is sized up front: the worst case |u|·|v| is known
// before the loop, so growth never reallocates for small products and is
// amortized by a single product-bounded cap otherwise.
//
// Complexity:
//
//	Time   = O(|u|·|v|)
//	Memory = O(k), k = retained lags
//
// Errors:
//   - ErrNegativeEpsilon — if the resolved Epsilon is negative or NaN.
var (
	// ErrNegativeEpsilon indicates Options.Epsilon is negative or NaN.
	ErrNegativeEpsilon = errors.New("pairwise: epsilon must be a non-negative number")
)

// maxPrealloc bounds the up-front result capacity so a huge Cartesian
// product with a tight ε does not reserve memory it will never fill.
const maxPrealloc = 1 << 16

// Lags computes every pairwise difference u[i]-v[j] with magnitude ≤ ε.
// Returns (lags, error).
//
// A nil opts uses DefaultOptions (Epsilon = 10).
//
// Example:
//
//	lags, err := pairwise.Lags([]float64{2, 3}, []float64{3}, nil)
//	// lags == []float64{-1, 0}
func Lags(u, v []float64, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Epsilon < 0 || math.IsNaN(o.Epsilon) {
		return nil, ErrNegativeEpsilon
	}

	product := len(u) * len(v)
	if product > maxPrealloc {
		product = maxPrealloc
	}
	out := make([]float64, 0, product)

	for _, ui := range u {
		for _, vj := range v {
			d := ui - vj
			if math.Abs(d) <= o.Epsilon {
				out = append(out, d)
			}
		}
	}

	return out, nil
}
