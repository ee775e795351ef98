package diagnose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StinkyLord/pcb-part-matcher/internal/model"
)

func inventory() []model.InventoryItem {
	return []model.InventoryItem{
		{IPN: "R-10K-0603", Category: "Resistors - Chip SMD", Value: "10K", Package: "0603"},
		{IPN: "R-10K-0805", Category: "Resistors - Chip SMD", Value: "10K", Package: "0805"},
		{IPN: "R-4K7-0603", Category: "Resistors - Chip SMD", Value: "4K7", Package: "0603"},
		{IPN: "C-100N-0603", Category: "Ceramic Capacitors", Value: "100nF", Package: "0603"},
	}
}

func TestAnalyze_TypeUnknown(t *testing.T) {
	c := model.Component{Reference: "X1", LibraryID: "Foo:Bar123"}
	d := Analyze(&c, inventory())
	assert.Equal(t, TypeUnknown, d.Kind)
	assert.Contains(t, d.Terse(), "unknown component type")
}

func TestAnalyze_NoTypeMatch(t *testing.T) {
	c := model.Component{Reference: "L1", LibraryID: "Device:L", Value: "10uH"}
	d := Analyze(&c, inventory())
	assert.Equal(t, NoTypeMatch, d.Kind)
	assert.Contains(t, d.Terse(), "inductor")
}

func TestAnalyze_NoValueMatch(t *testing.T) {
	c := model.Component{Reference: "R9", LibraryID: "Device:R", Value: "47K", Footprint: "R_0603_1608Metric"}
	d := Analyze(&c, inventory())
	assert.Equal(t, NoValueMatch, d.Kind)
	assert.Contains(t, d.Terse(), "47K")
}

func TestAnalyze_NoValueMatch_SuggestsClosestValues(t *testing.T) {
	c := model.Component{Reference: "C9", LibraryID: "Device:C", Value: "10n", Footprint: "C_0603_1608Metric"}
	d := Analyze(&c, inventory())
	require.Equal(t, NoValueMatch, d.Kind)
	assert.Contains(t, d.Suggestions, "100nF")
	assert.Contains(t, d.Verbose(), "closest stocked values")
}

func TestAnalyze_PackageMismatch(t *testing.T) {
	c := model.Component{Reference: "R9", LibraryID: "Device:R", Value: "10K", Footprint: "R_0402_1005Metric"}
	d := Analyze(&c, inventory())
	require.Equal(t, PackageMismatch, d.Kind)
	assert.Equal(t, []string{"0603", "0805"}, d.AvailablePackages)
	assert.Contains(t, d.Terse(), "available: 0603, 0805")
}

func TestAnalyze_PackageMismatchGeneric(t *testing.T) {
	inv := []model.InventoryItem{
		{IPN: "R-10K", Category: "Resistors", Value: "10K"}, // no package recorded
	}
	c := model.Component{Reference: "R9", LibraryID: "Device:R", Value: "10K", Footprint: "R_0402_1005Metric"}
	d := Analyze(&c, inv)
	assert.Equal(t, PackageMismatchGeneric, d.Kind)
}

func TestAnalyze_ExactlyOneKind(t *testing.T) {
	// Each unmatched component gets exactly one classification from the
	// closed taxonomy, and both renderings describe it.
	comps := []model.Component{
		{Reference: "X1", LibraryID: "Foo:Bar123"},
		{Reference: "L1", LibraryID: "Device:L", Value: "10uH"},
		{Reference: "R9", LibraryID: "Device:R", Value: "47K", Footprint: "R_0603_1608Metric"},
		{Reference: "R8", LibraryID: "Device:R", Value: "10K", Footprint: "R_0402_1005Metric"},
	}
	wantKinds := []Kind{TypeUnknown, NoTypeMatch, NoValueMatch, PackageMismatch}
	for i := range comps {
		d := Analyze(&comps[i], inventory())
		assert.Equal(t, wantKinds[i], d.Kind, "component %s", comps[i].Reference)
		assert.NotEmpty(t, d.Terse())
		assert.NotEmpty(t, d.Verbose())
	}
}

func TestRenderings_SameClassification(t *testing.T) {
	c := model.Component{Reference: "R9", LibraryID: "Device:R", Value: "10K", Footprint: "R_0402_1005Metric"}
	d := Analyze(&c, inventory())

	terse := d.Terse()
	verbose := d.Verbose()

	assert.False(t, strings.Contains(terse, "\n"), "terse form is a single line")
	assert.True(t, strings.Count(verbose, "\n") > 1, "verbose form is multi-line")
	// Both carry the same underlying facts.
	assert.Contains(t, terse, "0402")
	assert.Contains(t, verbose, "0402")
}
