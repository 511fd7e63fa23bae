package circular_test

import (
	"testing"

	"github.com/katalvlaran/corrgram/circular"
)

// benchmarkLagVector is a helper that collects circular lags over a ring of
// n slots with events every stride slots in both streams. It resets the
// timer before entering the loop and fails on unexpected errors.
func benchmarkLagVector(b *testing.B, n, stride int, opts circular.Options) {
	xi := make([]int, 0, n/stride+1)
	xj := make([]int, 0, n/stride+1)
	for t := 0; t < n; t += stride {
		xi = append(xi, t)
	}
	for t := stride / 2; t < n; t += stride {
		xj = append(xj, t)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := circular.LagVector(xi, xj, &opts)
		if err != nil {
			b.Fatalf("LagVector failed: %v", err)
		}
	}
}

// BenchmarkLagVector_SparseSequential benchmarks a 512-slot ring with sparse
// events, evaluated sequentially.
func BenchmarkLagVector_SparseSequential(b *testing.B) {
	benchmarkLagVector(b, 512, 32, circular.DefaultOptions())
}

// BenchmarkLagVector_DenseSequential benchmarks a 512-slot ring with dense
// events — the O(N²) worst-case shape.
func BenchmarkLagVector_DenseSequential(b *testing.B) {
	benchmarkLagVector(b, 512, 4, circular.DefaultOptions())
}

// BenchmarkLagVector_DenseParallel4 benchmarks the dense shape with four
// workers sharing the offset range.
func BenchmarkLagVector_DenseParallel4(b *testing.B) {
	opts := circular.DefaultOptions()
	opts.Workers = 4
	benchmarkLagVector(b, 512, 4, opts)
}

// BenchmarkLagVector_LargeRingParallel8 benchmarks a 4096-slot ring, eight
// workers — the upper end of the intended input size.
func BenchmarkLagVector_LargeRingParallel8(b *testing.B) {
	opts := circular.DefaultOptions()
	opts.Workers = 8
	benchmarkLagVector(b, 4096, 16, opts)
}
