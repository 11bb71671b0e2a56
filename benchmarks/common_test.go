// Package benchmarks provides comparative benchmarks of min-stream
// against popular Go collection and stream processing libraries.
package benchmarks

// Test data sizes
const (
	SmallSize  = 100
	MediumSize = 1_000
	LargeSize  = 10_000
)

// generateInts creates a slice of integers for benchmarking.
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// Common transformation functions used across benchmarks.

func square(x int) int { return x * x }

func isEven(x int) bool { return x%2 == 0 }
