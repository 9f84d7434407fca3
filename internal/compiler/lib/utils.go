package lib

import "math"

// DigitWidth returns the number of decimal digits needed to print val,
// used to align the DEPTH column when the symbol table is dumped.
func DigitWidth(val int) int {
	if val < 0 {
		val = -val
	}

	if val == 0 {
		return 1
	}

	return int(math.Log10(float64(val))) + 1
}
