// Package eventgrid converts integer event-time sequences into binary
// occupancy vectors over a shared discretized horizon, and rotates those
// vectors circularly for periodic alignment.
//
// 🚀 What is an event grid?
//
//	A Grid is a fixed-length 0/1 indicator vector: index t holds 1 iff an
//	event occurred in time slot t.  Two streams discretized onto the same
//	horizon share one index space, which is what makes circular (wrap-around)
//	shifting of one stream against the other well defined.  It supports:
//	  • Building a grid from non-negative integer event times
//	  • Recovering the event list from a grid (ascending slot order)
//	  • Circular rotation by any signed offset
//	  • Enumerating a whole family of rotations in one call
//
// ✨ Key features:
//   - joint-horizon helper so paired grids can never disagree on length
//   - duplicate event times are idempotent (a slot is set once)
//   - every operation returns a freshly owned vector; nothing is mutated
//   - rotations are independent of each other, safe to compute in parallel
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/corrgram/eventgrid"
//
//	h, err := eventgrid.JointHorizon(xi, xj) // shared index space
//	gi, err := eventgrid.Build(xi, h)
//	gj, err := eventgrid.Build(xj, h)
//
//	rotated := gi.Shift(3)      // wrap stream i forward by 3 slots
//	events  := rotated.Events() // back to integer event times
//
// Performance:
//
//   - Build / Events / Shift: O(horizon) time, O(horizon) memory
//   - EnumerateShifts: O(len(offsets)·horizon)
//
// See example_test.go for worked scenarios.
package eventgrid
