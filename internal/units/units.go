// Package units provides distance units and number formatting for lane lengths
package units

import (
	"math"
	"strconv"
	"strings"
)

// Unit constants
const (
	KM = "km"
	MI = "mi"
)

// kmPerMile is the international mile in kilometers
const kmPerMile = 1.609344

// ValidUnits contains all valid unit values
var ValidUnits = []string{KM, MI}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return strings.Join(ValidUnits, ", ")
}

// ConvertDistance converts a length in kilometers to the target units.
// Lengths are always stored in km.
func ConvertDistance(lengthKm float64, targetUnits string) float64 {
	switch targetUnits {
	case MI:
		return lengthKm / kmPerMile
	default:
		return lengthKm
	}
}

// FormatKm renders a length the way lane reports always have: the shortest
// decimal that round-trips, with at least one fractional digit (2 -> "2.0").
// Magnitudes outside [1e-3, 1e7) use computerized scientific notation ("1.0E7");
// non-finite values print as "Infinity", "-Infinity" and "NaN".
func FormatKm(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(e)
}

// Format converts a length in km to unit and renders it with its suffix.
// Miles are rounded to three decimals.
func Format(lengthKm float64, unit string) string {
	if unit != MI {
		return FormatKm(lengthKm) + " " + KM
	}
	v := math.Round(ConvertDistance(lengthKm, MI)*1000) / 1000
	return FormatKm(v) + " " + MI
}
