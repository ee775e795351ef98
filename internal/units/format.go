package units

import (
	"math"
	"strconv"
	"strings"
)

// FormatResistanceEIA renders ohms in compact EIA notation: the unit letter
// doubles as the decimal point ("4K7", "3R3"), and integral values carry no
// fraction ("10K"). With forcePrecisionDigit set, an integral value gains an
// explicit trailing zero ("10K0") to preserve 1%-class precision intent.
func FormatResistanceEIA(ohms float64, forcePrecisionDigit bool) string {
	return resistance.formatEIA(ohms, forcePrecisionDigit)
}

// FormatCapacitanceEIA renders farads in compact EIA notation ("4n7",
// "100n", "10u"). See FormatResistanceEIA for the precision-digit rule.
func FormatCapacitanceEIA(farads float64, forcePrecisionDigit bool) string {
	return capacitance.formatEIA(farads, forcePrecisionDigit)
}

// FormatInductanceEIA renders henries in compact EIA notation ("2u2",
// "100n"). See FormatResistanceEIA for the precision-digit rule.
func FormatInductanceEIA(henries float64, forcePrecisionDigit bool) string {
	return inductance.formatEIA(henries, forcePrecisionDigit)
}

func (d *dialect) formatEIA(v float64, forcePrecision bool) string {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}

	// Pick the largest scale whose letter leaves a significand >= 1.
	// Values below the smallest scale still use it ("0R5", "0p5").
	chosen := d.formatLetters[len(d.formatLetters)-1]
	for _, sl := range d.formatLetters {
		if v >= math.Pow10(sl.exp) {
			chosen = sl
			break
		}
	}

	scaled := v / math.Pow10(chosen.exp)
	// Snap away float noise from parsing arithmetic (4.700000000000001).
	scaled = math.Round(scaled*1e6) / 1e6

	text := strconv.FormatFloat(scaled, 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(text, ".")

	if fracPart == "" {
		if forcePrecision {
			return intPart + chosen.letter + "0"
		}
		return intPart + chosen.letter
	}
	return intPart + chosen.letter + fracPart
}
