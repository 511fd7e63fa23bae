// Package circular collects the full periodic lag sequence between two
// discretized event streams by rotating one stream through every circular
// alignment over their shared horizon.
//
// 🚀 What is circular lag collection?
//
//	Treat two integer-time event streams as wrapped onto a ring of
//	N = horizon+1 slots.  For every rotation offset 0..N-1, re-align the
//	first stream, read its rotated event times back, and take all pairwise
//	differences against the second (unrotated) stream within ±ε.  The
//	concatenation over all offsets is the circular lag sequence — the
//	periodic analogue of a cross-correlogram's raw lags.
//
// ✨ Key features:
//   - one call from raw event lists to the full lag sequence
//   - shared-horizon discipline enforced internally (never mismatched grids)
//   - optional worker-pool parallelism across offsets with output
//     byte-for-byte identical to the sequential path
//   - deterministic: ascending offset order, then pair order
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/corrgram/circular"
//
//	opts := circular.DefaultOptions() // Epsilon = 10, sequential
//	opts.Workers = 4                  // fan offsets out to 4 goroutines
//
//	lags, err := circular.LagVector(xi, xj, &opts)
//
// ⚠️ Threshold semantics:
//
//	Rotated event times live in [0, N), so raw differences are bounded by N
//	rather than ε. The ε filter still applies per pair, but with ε ≥ N every
//	Cartesian difference survives at every offset. That degenerate case is
//	the documented contract of this component, not a defect to correct.
//
// Performance:
//
//   - Time:   O(N²) worst case (N offsets × dense per-offset products) —
//     intended for small discretized horizons (N up to a few thousand).
//     For fine-resolution real-valued timestamps, use pairwise.Lags
//     directly instead of discretizing into a large ring.
//   - Memory: O(N + k) for k collected lags
//
// See example_test.go for worked scenarios.
package circular
