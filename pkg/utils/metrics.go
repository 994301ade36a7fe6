package utils

import (
	"math"
	"strconv"
)

// Round rounds half to even on the exact binary value of v.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// FormatValue prints a float the way the plugin reports values: integral
// values keep one decimal ("2048.0"), others use the shortest form ("45.21").
// Magnitudes below 1e-4 or from 1e16 up switch to exponent form ("1e+16").
func FormatValue(v float64) string {
	if abs := math.Abs(v); v != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatThreshold prints a threshold for perfdata, or "" when unset.
func FormatThreshold(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
