package design

import "math"

// round2 rounds to monetary precision (2 decimal places).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to one decimal place, used for percentages.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
