// Package core has the aggregation and classification logic for gradeboard.
// Everything here is a pure, single-pass function over an in-memory table;
// loading and rendering live in internal packages.
package core

import (
	"math"
	"sort"
)

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to 1 decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Mean returns the arithmetic mean of vs, or NaN for an empty slice.
func Mean(vs []float64) float64 {
	if len(vs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// Median returns the median of vs, or NaN for an empty slice.
// The input is not reordered.
func Median(vs []float64) float64 {
	if len(vs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// SampleStdDev returns the sample (n-1) standard deviation of vs.
// Fewer than two values have no sample deviation and report NaN.
func SampleStdDev(vs []float64) float64 {
	if len(vs) < 2 {
		return math.NaN()
	}
	mean := Mean(vs)
	sumsq := 0.0
	for _, v := range vs {
		d := v - mean
		sumsq += d * d
	}
	return math.Sqrt(sumsq / float64(len(vs)-1))
}

// MinMax returns the smallest and largest of vs, or (NaN, NaN) for an
// empty slice.
func MinMax(vs []float64) (float64, float64) {
	if len(vs) == 0 {
		return math.NaN(), math.NaN()
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
