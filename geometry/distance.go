package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vector) float64 {
	return b.Sub(a).Magnitude()
}

// Round rounds x to precision decimals, halves to even.
func Round(x float64, precision int) float64 {
	r := scalar.RoundEven(x, precision)
	// keep -0 out of exact comparisons and printed output
	if r == 0 {
		return 0
	}
	return r
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
