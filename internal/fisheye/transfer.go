package fisheye

import "math"

// Transfer maps a normalized distance x in [0,1] to a magnification fraction
// in [0,1]: 0.5*(cos(3x)+1), rounded to two decimals. Transfer(0) is 1 and
// the curve falls monotonically to about 0.01 at x = 1.
func Transfer(x float64) float64 {
	return round2(0.5 * (math.Cos(3*x) + 1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
