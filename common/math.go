package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AngleDiff returns a-b wrapped into [-pi, pi].
func AngleDiff(a, b float64) float64 {
	return math.Remainder(a-b, 2*math.Pi)
}
