package eventgrid

// Shift — circular rotation of an occupancy vector
//
// Description:
//
//	Shift rotates the grid circularly by offset positions: the element at
//	index k moves to index (k+offset) mod len(g). Positive offsets rotate
//	forward (toward higher indices, wrapping at the end); negative offsets
//	rotate the opposite direction. Any integer offset is valid — it is
//	reduced modulo the grid length first, so Shift(k) followed by Shift(-k)
//	is the identity for every k.
//
//	The receiver is never mutated; the rotation lands in a fresh vector.
//	A zero-length grid rotates to a zero-length grid.
//
// Complexity:
//
//	Time   = O(len(g))
//	Memory = O(len(g))
func (g Grid) Shift(offset int) Grid {
	n := len(g)
	if n == 0 {
		return Grid{}
	}
	off := offset % n
	if off < 0 {
		off += n
	}
	out := make(Grid, n)
	for k, b := range g {
		out[(k+off)%n] = b
	}

	return out
}

// EnumerateShifts applies Shift for every offset in offsets, producing one
// freshly allocated rotation per offset, in offsets order. Each rotation
// depends only on the input grid, never on a previous rotation, so callers
// may compute elements of the family independently (or in parallel) without
// coordination.
func EnumerateShifts(g Grid, offsets []int) []Grid {
	out := make([]Grid, len(offsets))
	for i, off := range offsets {
		out[i] = g.Shift(off)
	}

	return out
}

// FullRotation returns the offsets 0..n-1 — the shift range that covers
// every periodic alignment of a grid of length n exactly once.
func FullRotation(n int) []int {
	if n <= 0 {
		return []int{}
	}
	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = i
	}

	return offsets
}
