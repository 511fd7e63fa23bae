package circular_test

import (
	"fmt"

	"github.com/katalvlaran/corrgram/circular"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleLagVector
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The reference pair from the package overview:
//	  xi = [1, 2]  — stream i fires at t=1 and t=2
//	  xj = [3]     — stream j fires at t=3
//	Joint horizon 3, so the ring has N=4 slots and offsets 0..3.
//
// Options:
//   - Epsilon = 10 (default; wider than the ring, so nothing is filtered)
//
// Use case:
//
//	The periodic cross-correlogram's raw lag sequence in one call.
//
// Complexity: O(N²) worst case
func ExampleLagVector() {
	lags, err := circular.LagVector([]int{1, 2}, []int{3}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(lags)
	// Output:
	// [-2 -1 -1 0 -3 0 -3 -2]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleLagVector_parallel
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same computation fanned out to four workers. Offsets are evaluated
//	concurrently, but slots are concatenated in offset order, so the output
//	is identical to the sequential run.
//
// Options:
//   - Workers = 4
//
// Use case:
//
//	Larger rings (N in the thousands) where per-offset work dominates.
func ExampleLagVector_parallel() {
	opts := circular.DefaultOptions()
	opts.Workers = 4

	lags, err := circular.LagVector([]int{1, 2}, []int{3}, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(lags)
	// Output:
	// [-2 -1 -1 0 -3 0 -3 -2]
}
