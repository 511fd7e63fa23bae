// Package eventgrid defines the binary occupancy vector type shared by the
// grid-building and circular-shift operations.
package eventgrid

// Grid is a fixed-length binary occupancy vector over discretized time.
// Index t (0-based) holds 1 iff an event occurred in slot t; every other
// slot holds 0. A Grid of length N covers horizon N-1.
//
// Grids are value types: Build, Shift and EnumerateShifts always return a
// freshly allocated vector, so a Grid handed to another component is never
// mutated behind the caller's back. Two grids participating in one circular
// computation must be built over the same horizon — use JointHorizon to
// derive it from both series at once.
type Grid []byte

// Len returns the number of time slots the grid covers (horizon + 1).
func (g Grid) Len() int { return len(g) }

// Horizon returns the largest representable time index, or -1 for an
// empty grid.
func (g Grid) Horizon() int { return len(g) - 1 }
