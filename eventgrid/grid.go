package eventgrid

// Build — event list to binary occupancy vector
//
// Description:
//
//	Build discretizes a sequence of non-negative integer event times onto a
//	zero-filled vector of length horizon+1, setting slot e to 1 for every
//	event e. Duplicate event times are idempotent: setting an already-set
//	slot is a no-op, so the grid records occupancy, not multiplicity.
//
//	The horizon is caller-supplied on purpose. When two series feed one
//	circular computation, both grids must share the joint maximum across
//	both series (see JointHorizon); letting each grid infer its own horizon
//	would corrupt the shared index space the circular shift rotates over.
//
//	An empty events slice is valid here — the caller supplied an explicit
//	horizon, so an all-zero grid of that length is a well-defined result.
//
// Complexity:
//
//	Time   = O(horizon + |events|)
//	Memory = O(horizon)
//
// Errors:
//   - ErrNegativeHorizon    — horizon < 0.
//   - ErrNegativeEvent      — any event time < 0.
//   - ErrEventBeyondHorizon — any event time > horizon.
func Build(events []int, horizon int) (Grid, error) {
	if horizon < 0 {
		return nil, ErrNegativeHorizon
	}
	g := make(Grid, horizon+1)
	for _, e := range events {
		if e < 0 {
			return nil, ErrNegativeEvent
		}
		if e > horizon {
			return nil, ErrEventBeyondHorizon
		}
		g[e] = 1
	}

	return g, nil
}

// JointHorizon returns the maximum event time across all supplied series —
// the horizon both grids of a paired computation must be built with.
// Returns ErrNoEvents if no series is supplied or any series is empty,
// since an empty series pins no horizon, and ErrNegativeEvent if any event
// time is below zero.
func JointHorizon(series ...[]int) (int, error) {
	if len(series) == 0 {
		return 0, ErrNoEvents
	}
	horizon := -1
	for _, s := range series {
		if len(s) == 0 {
			return 0, ErrNoEvents
		}
		for _, e := range s {
			if e < 0 {
				return 0, ErrNegativeEvent
			}
			if e > horizon {
				horizon = e
			}
		}
	}

	return horizon, nil
}

// Events returns, in ascending slot order, every time index whose slot is
// set — the inverse of Build up to duplicate collapsing. The returned slice
// is freshly allocated and safe for the caller to retain.
func (g Grid) Events() []int {
	out := make([]int, 0, len(g))
	for t, occupied := range g {
		if occupied != 0 {
			out = append(out, t)
		}
	}

	return out
}
