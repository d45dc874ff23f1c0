package common

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FloorInt floors v toward negative infinity, so -0.5 becomes -1 rather than 0.
func FloorInt(v float64) int {
	return int(math.Floor(v))
}
