package histogram_test

import (
	"testing"

	"github.com/katalvlaran/corrgram/histogram"
)

// benchmarkNew is a helper that bins n synthetic lags spread across the
// range into buckets of the given width.
func benchmarkNew(b *testing.B, n int, width float64) {
	lags := make([]float64, n)
	for i := 0; i < n; i++ {
		lags[i] = float64(i%200) - 100 // cycle through [-100, 100)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := histogram.New(lags, -100, 100, width)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_SmallCoarse benchmarks 1k lags into 20 buckets.
func BenchmarkNew_SmallCoarse(b *testing.B) {
	benchmarkNew(b, 1_000, 10)
}

// BenchmarkNew_SmallFine benchmarks 1k lags into 2000 buckets.
func BenchmarkNew_SmallFine(b *testing.B) {
	benchmarkNew(b, 1_000, 0.1)
}

// BenchmarkNew_LargeCoarse benchmarks 1M lags into 20 buckets.
func BenchmarkNew_LargeCoarse(b *testing.B) {
	benchmarkNew(b, 1_000_000, 10)
}
