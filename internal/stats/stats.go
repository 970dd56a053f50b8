// Package stats provides the descriptive statistics and outlier detection
// used for competitive video-performance research. All computations are pure
// and guard every division, so degenerate batches (empty, zero variance)
// yield zeros instead of NaN.
package stats

import (
	"math"
	"sort"
)

// Summary holds batch-level descriptive statistics.
type Summary struct {
	Mean   float64
	StdDev float64
}

// Describe computes the arithmetic mean and population standard deviation
// (divide by N). An empty slice yields a zeroed summary.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))

	return Summary{Mean: mean, StdDev: math.Sqrt(variance)}
}

// Percentile returns the nearest-rank percentile: the value at index
// ceil(p/100*N)-1 of the ascending-sorted slice. No interpolation.
// An empty slice yields 0.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := int(math.Ceil(p/100*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}

// ZScore is the number of standard deviations value lies from mean.
// Zero standard deviation (flat distribution) is defined as 0.
func ZScore(value, mean, stdDev float64) float64 {
	if stdDev == 0 {
		return 0
	}
	return (value - mean) / stdDev
}
