package keypad

import (
	"math"
	"strconv"
)

// FormatResult renders a calculator result for the display.
//
// Values in [1e-7, 1e21) use the shortest decimal that round-trips;
// anything outside that range switches to exponent form.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-7 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'e', -1, 64)
}
