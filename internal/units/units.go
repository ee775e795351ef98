// Package units parses and formats electrical quantity strings: resistance
// in ohms, capacitance in farads, inductance in henries.
//
// Every parser tries the same fallback sequence, in this order:
//
//  1. plain decimal ("330", "4.7") scaled by the dialect's default unit
//  2. letter-as-decimal-point EIA notation ("4K7", "3R3", "10K0", "4n7")
//  3. magnitude-suffix notation ("22k", "330R", "100n", "4.7u")
//
// The first form that applies wins. Unrecognized input reports ok=false;
// no parser panics and no default value is substituted.
package units

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Absolute comparison tolerances. These absorb floating-point rounding
// between notations of the same nominal value, not real-world component
// tolerance.
const (
	EpsOhms    = 1e-12
	EpsFarads  = 1e-18
	EpsHenries = 1e-18
)

// dialect describes one quantity's unit letters and defaults.
type dialect struct {
	// letters maps a unit letter to its decimal exponent. The letter acts
	// both as magnitude suffix ("22k") and as decimal point ("2K2").
	letters map[byte]int

	// unitWords are trailing unit spellings stripped before parsing,
	// longest first ("Ω", "ohm", "F", "H", ...).
	unitWords []string

	// defaultExp scales bare decimals with no letter at all.
	defaultExp int

	// formatLetters lists the formatter's scale choices, largest first.
	formatLetters []scaleLetter

	eps float64
}

type scaleLetter struct {
	letter string
	exp    int
}

// Both upper- and lowercase M read as mega for resistors: the EIA resistor
// dialect has no milliohm notation.
var resistance = &dialect{
	letters: map[byte]int{
		'R': 0, 'r': 0,
		'K': 3, 'k': 3,
		'M': 6, 'm': 6,
		'G': 9, 'g': 9,
	},
	unitWords:  []string{"ohms", "ohm", "Ω", "ω"},
	defaultExp: 0,
	formatLetters: []scaleLetter{
		{"G", 9}, {"M", 6}, {"K", 3}, {"R", 0},
	},
	eps: EpsOhms,
}

// Bare capacitance decimals default to microfarads (legacy-compatible mode);
// plain farads cannot be expressed without an explicit "F" scale.
var capacitance = &dialect{
	letters: map[byte]int{
		'p': -12, 'P': -12,
		'n': -9, 'N': -9,
		'u': -6, 'U': -6,
		'm': -3,
	},
	unitWords:  []string{"farads", "farad", "F", "f"},
	defaultExp: -6,
	formatLetters: []scaleLetter{
		{"m", -3}, {"u", -6}, {"n", -9}, {"p", -12},
	},
	eps: EpsFarads,
}

// Bare inductance decimals default to microhenries.
var inductance = &dialect{
	letters: map[byte]int{
		'p': -12, 'P': -12,
		'n': -9, 'N': -9,
		'u': -6, 'U': -6,
		'm': -3,
	},
	unitWords:  []string{"henries", "henry", "H", "h"},
	defaultExp: -6,
	formatLetters: []scaleLetter{
		{"m", -3}, {"u", -6}, {"n", -9}, {"p", -12},
	},
	eps: EpsHenries,
}

// ParseResistance parses a resistance string into ohms.
func ParseResistance(s string) (float64, bool) {
	v, _, ok := resistance.parse(s)
	return v, ok
}

// ParseCapacitance parses a capacitance string into farads.
func ParseCapacitance(s string) (float64, bool) {
	v, _, ok := capacitance.parse(s)
	return v, ok
}

// ParseInductance parses an inductance string into henries.
func ParseInductance(s string) (float64, bool) {
	v, _, ok := inductance.parse(s)
	return v, ok
}

// EqualResistance reports whether two values in ohms are the same nominal
// value, within floating-point rounding.
func EqualResistance(a, b float64) bool { return scalar.EqualWithinAbs(a, b, EpsOhms) }

// EqualCapacitance reports whether two values in farads are the same
// nominal value, within floating-point rounding.
func EqualCapacitance(a, b float64) bool { return scalar.EqualWithinAbs(a, b, EpsFarads) }

// EqualInductance reports whether two values in henries are the same
// nominal value, within floating-point rounding.
func EqualInductance(a, b float64) bool { return scalar.EqualWithinAbs(a, b, EpsHenries) }

// eiaForm matches letter-as-decimal-point notation: integer digits, one
// letter, optional trailing digits ("4K7", "330R", "10K0").
var eiaForm = regexp.MustCompile(`^([0-9]+)([A-Za-zµ])([0-9]*)$`)

// suffixForm matches decimal-then-letter notation ("4.7k", "22k", ".1u").
var suffixForm = regexp.MustCompile(`^([0-9]*\.?[0-9]+)([A-Za-zµ])$`)

// HasPrecisionDigit reports whether an EIA value string carries an explicit
// precision digit: digits after the unit letter bringing the value to three
// or more significant figures. "10K0" and "9K76" qualify; "4K7" does not.
func HasPrecisionDigit(s string) bool {
	s = stripCommonUnits(s)
	s = strings.ReplaceAll(s, "µ", "u")
	m := eiaForm.FindStringSubmatch(s)
	if m == nil || m[3] == "" {
		return false
	}
	if !strings.ContainsAny(m[2], "RrKkMmGgPpNnUu") {
		return false
	}
	digits := strings.TrimLeft(m[1]+m[3], "0")
	return len(digits) >= 3
}

// stripCommonUnits removes any quantity's trailing unit spelling; used by
// HasPrecisionDigit, which is unit-agnostic.
func stripCommonUnits(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	for _, w := range []string{"ohms", "ohm", "Ω", "ω", "farads", "farad", "henries", "henry", "F", "f", "H", "h"} {
		if len(s) > len(w) && strings.HasSuffix(strings.ToLower(s), strings.ToLower(w)) {
			return s[:len(s)-len(w)]
		}
	}
	return s
}

// parse runs the documented fallback sequence. It reports the value, whether
// the notation carried an explicit precision digit, and whether any form
// matched.
func (d *dialect) parse(s string) (float64, bool, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false, false
	}
	s = d.stripUnitWord(s)
	if s == "" {
		return 0, false, false
	}
	// µ is multi-byte; fold it to 'u' so the byte-indexed letter table works.
	s = strings.ReplaceAll(s, "µ", "u")

	// Form 1: plain decimal, default unit.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 {
			return 0, false, false
		}
		return v * math.Pow10(d.defaultExp), false, true
	}

	// Form 2: letter as decimal point. The significand is assembled as an
	// integer and scaled by a power of ten so that "9M76" and "9760000"
	// land on the same float64.
	if m := eiaForm.FindStringSubmatch(s); m != nil {
		exp, ok := d.letters[m[2][0]]
		if !ok {
			return 0, false, false
		}
		digits := m[1] + m[3]
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return 0, false, false
		}
		v := float64(n) * math.Pow10(exp-len(m[3]))
		precise := m[3] != "" && len(strings.TrimLeft(digits, "0")) >= 3
		return v, precise, true
	}

	// Form 3: decimal number followed by a magnitude letter.
	if m := suffixForm.FindStringSubmatch(s); m != nil {
		exp, ok := d.letters[m[2][0]]
		if !ok {
			return 0, false, false
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || v < 0 {
			return 0, false, false
		}
		return v * math.Pow10(exp), false, true
	}

	return 0, false, false
}

// stripUnitWord removes the dialect's trailing unit spelling, if present.
// Only a strict suffix is stripped, so a lone "F" or "H" stays intact.
func (d *dialect) stripUnitWord(s string) string {
	for _, w := range d.unitWords {
		if len(s) > len(w) && strings.HasSuffix(strings.ToLower(s), strings.ToLower(w)) {
			return s[:len(s)-len(w)]
		}
	}
	return s
}
