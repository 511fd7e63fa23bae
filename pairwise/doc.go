// Package pairwise computes threshold-filtered pairwise lags between two
// real-valued event-time sequences.
//
// 🚀 What is a pairwise lag?
//
//	For every ordered pair (uᵢ, vⱼ) drawn from two streams u and v, the lag
//	is the signed difference d = uᵢ − vⱼ.  Collecting every d with |d| ≤ ε
//	yields the raw material of a cross-correlogram: how often, and at what
//	offsets, events in one stream precede or follow events in the other.
//	It's widely used in:
//	  • Spike-train cross-correlation in neuroscience
//	  • Coincidence detection between sensor channels
//	  • Event-stream alignment diagnostics
//
// ✨ Key features:
//   - full Cartesian product: |u|·|v| comparisons, nothing sampled
//   - absolute threshold ε filters lags to the window of interest
//   - deterministic output order (u outer, v inner) for reproducible tests
//   - pure function: no globals, no shared state, empty inputs are fine
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/corrgram/pairwise"
//
//	opts := pairwise.DefaultOptions() // Epsilon = 10
//	opts.Epsilon = 2.5                // keep only lags within ±2.5
//
//	lags, err := pairwise.Lags(u, v, &opts)
//
// Performance:
//
//   - Time:   O(|u|·|v|)
//   - Memory: O(k) for k retained lags (≤ |u|·|v|)
//
// See example_test.go for worked scenarios.
package pairwise
