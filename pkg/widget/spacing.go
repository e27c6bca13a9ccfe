package widget

import (
	"math"
	"strconv"
)

// PHI is the golden ratio used by the spacing ladder.
const PHI = 1.61803398875

// Sp converts a pixel value to a rem length, assuming a 16px root font.
//
//	Sp(16) == "1rem"
//	Sp(8)  == "0.5rem"
func Sp(px int) string {
	return strconv.FormatFloat(float64(px)/16, 'f', -1, 64) + "rem"
}

// Scale returns step k of the golden spacing ladder.
//
// For k > 0 it is the ceiling of the larger of PHI^k and k^PHI, which
// yields 2, 4, 6, 10, 14, 19, 30, ... For k <= 0 it is the ceiling of PHI^k,
// so the ladder never decreases.
func Scale(k int) int {
	v := math.Pow(PHI, float64(k))
	if k > 0 {
		v = math.Max(v, math.Pow(float64(k), PHI))
	}
	return int(math.Ceil(v))
}
