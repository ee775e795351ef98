package model

import "strings"

// Category is the closed set of component categories the classifier can
// assign. Unknown is the zero value so an unclassified component is the
// default, never an error.
type Category int

const (
	Unknown Category = iota
	Resistor
	Capacitor
	Inductor
	Diode
	LED
	Transistor
	IntegratedCircuit
	Connector
	Switch
	Crystal
	Fuse
)

var categoryNames = map[Category]string{
	Unknown:           "unknown",
	Resistor:          "resistor",
	Capacitor:         "capacitor",
	Inductor:          "inductor",
	Diode:             "diode",
	LED:               "led",
	Transistor:        "transistor",
	IntegratedCircuit: "ic",
	Connector:         "connector",
	Switch:            "switch",
	Crystal:           "crystal",
	Fuse:              "fuse",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// matchTerms lists the substrings that identify a category inside an
// inventory category label. Short tokens that would false-positive as
// substrings ("ic" is inside "ceramic") are matched per word instead.
var matchTerms = map[Category][]string{
	Resistor:          {"resistor"},
	Capacitor:         {"capacitor"},
	Inductor:          {"inductor", "ferrite"},
	Diode:             {"diode", "rectifier"},
	LED:               {"led", "light emitting"},
	Transistor:        {"transistor", "mosfet", "fet"},
	IntegratedCircuit: {"integrated circuit", "microcontroller", "ic"},
	Connector:         {"connector", "header", "socket"},
	Switch:            {"switch", "button"},
	Crystal:           {"crystal", "oscillator", "resonator"},
	Fuse:              {"fuse", "ptc"},
}

// shortTerms are tokens too short for substring containment; they must match
// a whole word of the label.
var shortTerms = map[string]bool{"ic": true, "led": true, "fet": true, "ptc": true}

// MatchesLabel reports whether an inventory category label describes this
// category. The check is case-insensitive; Unknown matches nothing.
func (c Category) MatchesLabel(label string) bool {
	if c == Unknown || label == "" {
		return false
	}
	lower := strings.ToLower(label)
	for _, term := range matchTerms[c] {
		if shortTerms[term] {
			for _, word := range strings.FieldsFunc(lower, func(r rune) bool {
				return r == ' ' || r == '-' || r == '_' || r == '/' || r == ',' || r == '(' || r == ')'
			}) {
				if word == term || word == term+"s" {
					return true
				}
			}
			continue
		}
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// IsPassive reports whether the category's values compare numerically
// (resistance, capacitance, inductance) rather than as strings.
func (c Category) IsPassive() bool {
	return c == Resistor || c == Capacitor || c == Inductor
}
