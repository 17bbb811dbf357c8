package geometry

import "math"

func sqrt(x float64) float64 {
	return math.Sqrt(x)
}

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)
