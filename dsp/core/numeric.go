package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// The comparison is absolute for small magnitudes and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Threshold converts an integer quantization threshold into the magnitude
// cutoff used by the quantizers. Negative thresholds clamp to zero.
func Threshold(t int) float64 {
	if t < 0 {
		return 0
	}

	return float64(t)
}

// HalveExtent returns n/2 floored at 1.
func HalveExtent(n int) int {
	if n <= 1 {
		return 1
	}

	return n / 2
}
