// Package match implements the filter, score and rank pipeline that pairs
// design components with inventory items.
package match

import (
	"fmt"
	"strings"

	"github.com/StinkyLord/pcb-part-matcher/internal/classify"
	"github.com/StinkyLord/pcb-part-matcher/internal/footprint"
	"github.com/StinkyLord/pcb-part-matcher/internal/model"
	"github.com/StinkyLord/pcb-part-matcher/internal/units"
)

// Score weights. Scores are purely additive with no normalization or cap.
const (
	scoreType    = 50
	scoreValue   = 40
	scorePackage = 30

	scoreToleranceExact   = 15
	scoreToleranceTighter = 12
	scoreVoltage          = 10
	scoreAmperage         = 10
	scoreWattage          = 10

	scoreOscFrequency   = 12
	scoreICFamily       = 10
	scoreLEDWavelength  = 8
	scoreConnectorPitch = 8
	scoreOscStability   = 6
	scoreOscLoad        = 6
	scoreLEDIntensity   = 5
	scoreLEDAngle       = 5

	scoreProperty = 3
)

// dedicatedProps are component property names consumed by a dedicated
// filter or bonus; they are excluded from the generic +3 property sweep.
var dedicatedProps = map[string]bool{
	"tolerance": true, "voltage": true, "current": true, "amperage": true,
	"power": true, "wattage": true, "wavelength": true, "intensity": true,
	"viewing angle": true, "angle": true, "frequency": true,
	"stability": true, "load capacitance": true, "pitch": true,
	"family": true,
}

// PassesPrimaryFilters applies the hard filters: category containment,
// package-token containment, and value equality. Any failure excludes the
// item entirely; a missing field on either side is "no information" and
// never fails a filter on its own.
func PassesPrimaryFilters(c *model.Component, item *model.InventoryItem) bool {
	cat := classify.Component(c)
	if cat != model.Unknown && item.Category != "" && !cat.MatchesLabel(item.Category) {
		return false
	}

	if token := footprint.Extract(c.Footprint); token != "" && item.Package != "" {
		if !footprint.Matches(item.Package, token) {
			return false
		}
	}

	if c.Value != "" && item.Value != "" {
		if !model.ValuesEqual(cat, c.Value, item.Value) {
			return false
		}
	}
	return true
}

// Score computes the weighted suitability score of an item that already
// passed the primary filters.
func Score(c *model.Component, item *model.InventoryItem) int {
	total, _ := evaluate(c, item, false)
	return total
}

// ScoreWithTrace is Score plus a human-readable record of every filter and
// bonus that fired, for debug output.
func ScoreWithTrace(c *model.Component, item *model.InventoryItem) (int, []string) {
	return evaluate(c, item, true)
}

func evaluate(c *model.Component, item *model.InventoryItem, trace bool) (int, []string) {
	cat := classify.Component(c)
	var total int
	var notes []string

	add := func(points int, format string, args ...any) {
		total += points
		if trace {
			notes = append(notes, fmt.Sprintf(format, args...)+fmt.Sprintf(" (+%d)", points))
		}
	}

	if cat != model.Unknown && cat.MatchesLabel(item.Category) {
		add(scoreType, "type %s ~ %q", cat, item.Category)
	}
	if c.Value != "" && item.Value != "" && model.ValuesEqual(cat, c.Value, item.Value) {
		add(scoreValue, "value %q ~ %q", c.Value, item.Value)
	}
	if token := footprint.Extract(c.Footprint); token != "" && footprint.Matches(item.Package, token) {
		add(scorePackage, "package %s ~ %q", token, item.Package)
	}

	total += scoreTolerance(c, item, cat, trace, &notes)
	scoreRating(c, item, "Voltage", item.Voltage, scoreVoltage, add)
	scoreRatingAlias(c, item, "Current", "Amperage", item.Amperage, scoreAmperage, add)
	scoreRatingAlias(c, item, "Power", "Wattage", item.Wattage, scoreWattage, add)

	scoreCategoryBonuses(c, item, cat, add)
	scoreFreeProperties(c, item, add)

	return total, notes
}

// scoreTolerance awards the full bonus for an exact tolerance match and a
// reduced bonus when the stocked part is strictly tighter than required; a
// looser part earns nothing. Malformed tolerance strings are ignored.
//
// A resistor written with an explicit precision digit ("10K0", "9K76") and
// no tolerance property implies a 1% requirement.
func scoreTolerance(c *model.Component, item *model.InventoryItem, cat model.Category, trace bool, notes *[]string) int {
	required := c.Property("Tolerance")
	if required == "" && cat == model.Resistor && units.HasPrecisionDigit(c.Value) {
		required = "1%"
	}
	if required == "" || item.Tolerance == "" {
		return 0
	}
	want, okWant := units.ParsePercent(required)
	have, okHave := units.ParsePercent(item.Tolerance)
	if !okWant || !okHave {
		if trace {
			*notes = append(*notes, fmt.Sprintf("tolerance %q vs %q unparseable, ignored", required, item.Tolerance))
		}
		return 0
	}
	switch {
	case have == want:
		if trace {
			*notes = append(*notes, fmt.Sprintf("tolerance %q exact (+%d)", item.Tolerance, scoreToleranceExact))
		}
		return scoreToleranceExact
	case have < want:
		if trace {
			*notes = append(*notes, fmt.Sprintf("tolerance %q tighter than %q (+%d)", item.Tolerance, required, scoreToleranceTighter))
		}
		return scoreToleranceTighter
	}
	return 0
}

// scoreRating awards points when the item's rating field covers the
// component's required rating (containment on normalized text).
func scoreRating(c *model.Component, item *model.InventoryItem, prop, field string, points int, add func(int, string, ...any)) {
	want := c.Property(prop)
	if containsNormalized(field, want) {
		add(points, "%s %q ~ %q", strings.ToLower(prop), want, field)
	}
}

// scoreRatingAlias is scoreRating for requirements that appear under two
// property names ("Current"/"Amperage", "Power"/"Wattage").
func scoreRatingAlias(c *model.Component, item *model.InventoryItem, prop, alias, field string, points int, add func(int, string, ...any)) {
	want := c.Property(prop)
	if want == "" {
		want = c.Property(alias)
	}
	if containsNormalized(field, want) {
		add(points, "%s %q ~ %q", strings.ToLower(prop), want, field)
	}
}

// Category-specific bonuses read only the fields relevant to the category.
type ledSpec struct{ wavelength, intensity, angle string }
type oscSpec struct{ frequency, stability, load string }
type connSpec struct{ pitch string }
type icSpec struct{ family string }

func scoreCategoryBonuses(c *model.Component, item *model.InventoryItem, cat model.Category, add func(int, string, ...any)) {
	switch cat {
	case model.LED:
		spec := ledSpec{
			wavelength: c.Property("Wavelength"),
			intensity:  c.Property("Intensity"),
			angle:      firstProp(c, "Viewing Angle", "Angle"),
		}
		if attrMatch(item, "Wavelength", spec.wavelength) {
			add(scoreLEDWavelength, "wavelength %q", spec.wavelength)
		}
		if attrMatch(item, "Intensity", spec.intensity) {
			add(scoreLEDIntensity, "intensity %q", spec.intensity)
		}
		if attrMatch(item, "Viewing Angle", spec.angle) || attrMatch(item, "Angle", spec.angle) {
			add(scoreLEDAngle, "viewing angle %q", spec.angle)
		}
	case model.Crystal:
		spec := oscSpec{
			frequency: c.Property("Frequency"),
			stability: c.Property("Stability"),
			load:      c.Property("Load Capacitance"),
		}
		if attrMatch(item, "Frequency", spec.frequency) {
			add(scoreOscFrequency, "frequency %q", spec.frequency)
		}
		if attrMatch(item, "Stability", spec.stability) {
			add(scoreOscStability, "stability %q", spec.stability)
		}
		if attrMatch(item, "Load Capacitance", spec.load) {
			add(scoreOscLoad, "load capacitance %q", spec.load)
		}
	case model.Connector:
		spec := connSpec{pitch: c.Property("Pitch")}
		if attrMatch(item, "Pitch", spec.pitch) {
			add(scoreConnectorPitch, "pitch %q", spec.pitch)
		}
	case model.IntegratedCircuit:
		spec := icSpec{family: c.Property("Family")}
		if attrMatch(item, "Family", spec.family) {
			add(scoreICFamily, "family %q", spec.family)
		}
	case model.Resistor, model.Capacitor, model.Inductor, model.Diode,
		model.Transistor, model.Switch, model.Fuse, model.Unknown:
		// No category-specific bonuses.
	}
}

// scoreFreeProperties awards a small bonus for every remaining component
// property mirrored by the item's open attribute map.
func scoreFreeProperties(c *model.Component, item *model.InventoryItem, add func(int, string, ...any)) {
	for name, want := range c.Properties {
		if dedicatedProps[strings.ToLower(name)] {
			continue
		}
		if attrMatch(item, name, want) {
			add(scoreProperty, "property %s %q", name, want)
		}
	}
}

func firstProp(c *model.Component, names ...string) string {
	for _, n := range names {
		if v := c.Property(n); v != "" {
			return v
		}
	}
	return ""
}

func attrMatch(item *model.InventoryItem, name, want string) bool {
	if want == "" {
		return false
	}
	return containsNormalized(item.Attr(name), want)
}

// containsNormalized reports whether haystack contains needle after both
// are lowercased and stripped of whitespace and unit spellings. Empty
// strings never match.
func containsNormalized(haystack, needle string) bool {
	if haystack == "" || needle == "" {
		return false
	}
	return strings.Contains(model.NormalizeValue(haystack), model.NormalizeValue(needle))
}
