// Package histogram aggregates a real-valued lag sequence into fixed-width
// bucket counts over a half-open range.
//
// 🚀 What is it for?
//
//	The last step before rendering a cross-correlogram: turn a flat lag
//	sequence into ceil((hi−lo)/width) buckets covering [lo, hi), each bucket
//	[lo+k·w, lo+(k+1)·w) holding the count of lags that fell inside it.
//
// ✨ Key features:
//   - half-open buckets, left-closed/right-open, no double counting
//   - values outside [lo, hi) are dropped by design, never an error
//   - immutable after construction; accessors return copies
//   - deterministic, single pass, O(|lags|)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/corrgram/histogram"
//
//	h, err := histogram.New(lags, -5, 5, 1)
//	if err != nil {
//	  // handle ErrBadRange or ErrBadWidth
//	}
//	counts := h.Buckets() // hand to your plotting collaborator
//
// The package computes counts and stops there: rendering, axis labels and
// styling belong to whatever consumes Buckets.
package histogram
