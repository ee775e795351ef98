// Package classify maps library identifiers and footprints to a canonical
// component category.
//
// Classification walks an ordered rule table top to bottom; the first rule
// that matches wins. Order is load-bearing: "LED" must be checked before the
// bare "L" inductor prefix, "SW" before "S", and so on.
package classify

import (
	"strings"

	"github.com/StinkyLord/pcb-part-matcher/internal/model"
)

// rule maps an identifier pattern to a category. A pattern matches either
// the symbol name exactly (single-letter designator prefixes like "R") or as
// a case-insensitive substring of longer identifiers.
type rule struct {
	pattern  string
	exact    bool // match the whole symbol token, not a substring
	category model.Category
}

// rules is the ordered classification table. More specific patterns come
// before broader prefixes.
var rules = []rule{
	{"LED", false, model.LED},
	{"Light", false, model.LED},
	{"Crystal", false, model.Crystal},
	{"Oscillator", false, model.Crystal},
	{"Resonator", false, model.Crystal},
	{"Fuse", false, model.Fuse},
	{"Polyfuse", false, model.Fuse},
	{"Ferrite", false, model.Inductor},
	{"Transistor", false, model.Transistor},
	{"MOSFET", false, model.Transistor},
	{"Relay", false, model.Switch},
	{"Switch", false, model.Switch},
	{"Button", false, model.Switch},
	{"Connector", false, model.Connector},
	{"Conn", false, model.Connector},
	{"Jack", false, model.Connector},
	{"Header", false, model.Connector},
	{"Socket", false, model.Connector},
	{"Diode", false, model.Diode},
	{"Zener", false, model.Diode},
	{"Regulator", false, model.IntegratedCircuit},
	{"Amplifier", false, model.IntegratedCircuit},
	{"MCU", false, model.IntegratedCircuit},
	{"Sensor", false, model.IntegratedCircuit},
	{"Resistor", false, model.Resistor},
	{"Capacitor", false, model.Capacitor},
	{"Inductor", false, model.Inductor},
	{"SW", true, model.Switch},
	{"XTAL", true, model.Crystal},
	{"CP", true, model.Capacitor},
	{"R", true, model.Resistor},
	{"C", true, model.Capacitor},
	{"L", true, model.Inductor},
	{"D", true, model.Diode},
	{"Q", true, model.Transistor},
	{"U", true, model.IntegratedCircuit},
	{"IC", true, model.IntegratedCircuit},
	{"J", true, model.Connector},
	{"P", true, model.Connector},
	{"F", true, model.Fuse},
	{"Y", true, model.Crystal},
	{"FB", true, model.Inductor},
	{"K", true, model.Switch},
}

// icShapes are footprint package families that identify an integrated
// circuit regardless of the library identifier.
var icShapes = []string{
	"SOIC", "SSOP", "TSSOP", "MSOP", "QFN", "DFN", "QFP", "LQFP", "TQFP",
	"BGA", "CSP", "DIP-", "PDIP", "SOP-",
}

// Classify maps a namespaced library identifier and a footprint string to a
// category. It is a pure function: identical inputs always yield the same
// category, and unrecognized inputs yield Unknown rather than an error.
func Classify(libraryID, footprint string) model.Category {
	// "Device:R" -> namespace "Device", symbol "R". Bare identifiers have
	// an empty namespace.
	namespace, symbol, found := strings.Cut(libraryID, ":")
	if !found {
		namespace, symbol = "", libraryID
	}

	for _, r := range rules {
		if matchToken(r, symbol) || matchToken(r, namespace) {
			return r.category
		}
	}

	// A recognizable IC package shape is a strong signal on its own.
	if isICShape(footprint) {
		return model.IntegratedCircuit
	}
	return model.Unknown
}

// Component classifies a component, falling back to the leading alphabetic
// run of its reference designator ("R10" -> "R") when the library identifier
// and footprint are inconclusive.
func Component(c *model.Component) model.Category {
	if cat := Classify(c.LibraryID, c.Footprint); cat != model.Unknown {
		return cat
	}
	if prefix := c.RefPrefix(); prefix != "" {
		for _, r := range rules {
			if matchToken(r, prefix) {
				return r.category
			}
		}
	}
	return model.Unknown
}

func matchToken(r rule, token string) bool {
	if token == "" {
		return false
	}
	if r.exact {
		// Exact rules match the designator-style prefix of the token, so
		// "R_Small" and "Q_NPN_BCE" resolve the same as "R" and "Q".
		return strings.EqualFold(leadingAlpha(token), r.pattern)
	}
	return strings.Contains(strings.ToLower(token), strings.ToLower(r.pattern))
}

func leadingAlpha(s string) string {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (b < 'A' || b > 'Z') && (b < 'a' || b > 'z') {
			return s[:i]
		}
	}
	return s
}

func isICShape(footprint string) bool {
	upper := strings.ToUpper(footprint)
	for _, shape := range icShapes {
		if strings.Contains(upper, shape) {
			return true
		}
	}
	return false
}
