package histogram

import (
	"errors"
	"math"
)

// New — fixed-width bucket aggregation over a half-open range
//
// Description:
//
//	New partitions [lo, hi) into ceil((hi−lo)/width) buckets of equal width
//	and counts, in one pass, how many input values land in each. A value v
//	belongs to bucket floor((v−lo)/width); values below lo or at/above hi
//	(and NaN) are dropped silently — out-of-range lags are a filtering
//	concern of the caller's chosen window, not an input error. When width
//	does not divide the range evenly, the last bucket is simply shorter on
//	the data side: its nominal upper bound may exceed hi, but no value ≥ hi
//	is ever counted.
//
//	A float-edge clamp guards the top bucket: a value just below hi whose
//	division rounds up still lands in the last bucket rather than past it.
//
// Complexity:
//
//	Time   = O(|lags|)
//	Memory = O(bucket count)
//
// Errors:
//   - ErrBadRange — hi ≤ lo, or lo/hi not finite.
//   - ErrBadWidth — width ≤ 0, or width not finite.
var (
	// ErrBadRange indicates hi ≤ lo or a non-finite range bound.
	ErrBadRange = errors.New("histogram: range must satisfy lo < hi with finite bounds")
	// ErrBadWidth indicates a non-positive or non-finite bucket width.
	ErrBadWidth = errors.New("histogram: bucket width must be positive and finite")
	// ErrBucketIndex indicates a requested bucket index is out of range.
	ErrBucketIndex = errors.New("histogram: bucket index out of range")
)

// Histogram holds fixed-width bucket counts over [lo, hi).
// It is immutable once built; accessors never expose internal storage.
type Histogram struct {
	lo, hi, width float64
	counts        []int
	total         int
}

// New builds a Histogram from a snapshot of lags. The input slice is only
// read; the Histogram keeps no reference to it.
//
// Example:
//
//	h, err := histogram.New([]float64{-3, -1, 0, 0, 2}, -5, 5, 1)
//	// h.Total() == 5
func New(lags []float64, lo, hi, width float64) (*Histogram, error) {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || hi <= lo {
		return nil, ErrBadRange
	}
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return nil, ErrBadWidth
	}

	n := int(math.Ceil((hi - lo) / width))
	h := &Histogram{
		lo:     lo,
		hi:     hi,
		width:  width,
		counts: make([]int, n),
	}
	for _, v := range lags {
		if math.IsNaN(v) || v < lo || v >= hi {
			continue
		}
		k := int(math.Floor((v - lo) / width))
		if k >= n {
			k = n - 1 // float-edge clamp for v just below hi
		}
		h.counts[k]++
		h.total++
	}

	return h, nil
}

// Len returns the number of buckets.
func (h *Histogram) Len() int { return len(h.counts) }

// Total returns the number of input values that landed in some bucket
// (out-of-range values are not counted).
func (h *Histogram) Total() int { return h.total }

// Buckets returns a copy of the per-bucket counts, bucket 0 first.
func (h *Histogram) Buckets() []int {
	out := make([]int, len(h.counts))
	copy(out, h.counts)

	return out
}

// Count returns the count in bucket k.
// Returns ErrBucketIndex if k is out of range.
func (h *Histogram) Count(k int) (int, error) {
	if k < 0 || k >= len(h.counts) {
		return 0, ErrBucketIndex
	}

	return h.counts[k], nil
}

// Bounds returns the half-open interval [bucketLo, bucketHi) covered by
// bucket k. The last bucket's nominal upper bound may exceed hi when the
// width does not divide the range evenly.
// Returns ErrBucketIndex if k is out of range.
func (h *Histogram) Bounds(k int) (bucketLo, bucketHi float64, err error) {
	if k < 0 || k >= len(h.counts) {
		return 0, 0, ErrBucketIndex
	}

	return h.lo + float64(k)*h.width, h.lo + float64(k+1)*h.width, nil
}
