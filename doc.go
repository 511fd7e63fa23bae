// Package corrgram is your in-memory toolkit for measuring the
// cross-correlation structure between two point-process event streams —
// from raw pairwise lags to periodic (circular) alignment and histograms.
//
// 🚀 What is corrgram?
//
//	A small, focused library for spike-train style analysis:
//		• Pairwise lags: every time difference between two streams within ±ε
//		• Event grids: binary occupancy vectors over a shared discrete horizon
//		• Circular shifts: wrap-around rotation of one stream against the other
//		• Circular lag collection: the full periodic lag sequence in one call
//		• Histograms: fixed-width bucket counts over a half-open range
//
// ✨ Why choose corrgram?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure functions, reproducible output order, no globals
//   - Pure Go – no cgo, no hidden deps
//   - Parallel-ready – circular collection fans offsets out to workers while
//     keeping output byte-for-byte identical to the sequential path
//
// Under the hood, everything is organized under four subpackages:
//
//	pairwise/  — threshold-filtered Cartesian lag differences
//	eventgrid/ — binary occupancy vectors, circular shifts, shift enumeration
//	circular/  — periodic lag collection over a shared discretized horizon
//	histogram/ — fixed-width bucket aggregation of a lag sequence
//
// Quick ASCII example:
//
//	    stream A:  ─●──●────────   events at t=1,2
//	    stream B:  ───────●─────   event  at t=3
//
//	pairwise lags within ε=10: {-2, -1}; wrap A around the shared horizon
//	and the circular path enumerates every periodic alignment too.
//
// Rendering, plotting and statistics live outside this module: the library
// hands you lag sequences and bucket counts, and stops there.
// Dive into README.md and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/corrgram
package corrgram
