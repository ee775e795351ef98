package model

import "github.com/StinkyLord/pcb-part-matcher/internal/units"

// ValuesEqual reports whether a design value and an inventory value denote
// the same part value for the given category.
//
// For resistors, capacitors and inductors both sides are parsed numerically
// and compared within the quantity's epsilon; when the design side itself is
// unparseable the comparison falls back to normalized string equality. All
// other categories compare as normalized strings. Parse failure never
// escapes: an unparseable inventory value simply does not match.
func ValuesEqual(cat Category, designValue, itemValue string) bool {
	if designValue == "" || itemValue == "" {
		return false
	}

	var parse func(string) (float64, bool)
	var equal func(a, b float64) bool
	switch cat {
	case Resistor:
		parse, equal = units.ParseResistance, units.EqualResistance
	case Capacitor:
		parse, equal = units.ParseCapacitance, units.EqualCapacitance
	case Inductor:
		parse, equal = units.ParseInductance, units.EqualInductance
	default:
		return NormalizeValue(designValue) == NormalizeValue(itemValue)
	}

	want, ok := parse(designValue)
	if !ok {
		return NormalizeValue(designValue) == NormalizeValue(itemValue)
	}
	have, ok := parse(itemValue)
	if !ok {
		return false
	}
	return equal(want, have)
}
