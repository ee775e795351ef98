package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StinkyLord/pcb-part-matcher/internal/model"
)

func TestClassify_LibraryIdentifiers(t *testing.T) {
	cases := []struct {
		libraryID string
		footprint string
		want      model.Category
	}{
		{"Device:R", "", model.Resistor},
		{"Device:R_Small", "", model.Resistor},
		{"Device:C", "", model.Capacitor},
		{"Device:CP", "", model.Capacitor},
		{"Device:L", "", model.Inductor},
		{"Device:LED", "", model.LED}, // LED must not classify as inductor
		{"Device:LED_Small", "", model.LED},
		{"Device:D", "", model.Diode},
		{"Device:D_Schottky", "", model.Diode},
		{"Device:Q_NPN_BCE", "", model.Transistor},
		{"Device:Ferrite_Bead", "", model.Inductor},
		{"Device:Crystal", "", model.Crystal},
		{"Device:Fuse", "", model.Fuse},
		{"Switch:SW_Push", "", model.Switch},
		{"Connector:Conn_01x04_Pin", "", model.Connector},
		{"Connector_Generic:Conn_02x05_Odd_Even", "", model.Connector},
		{"Regulator_Linear:AMS1117-3.3", "", model.IntegratedCircuit},
		{"MCU_ST_STM32F1:STM32F103C8Tx", "", model.IntegratedCircuit},
		{"Amplifier_Operational:LM358", "", model.IntegratedCircuit},
		{"Foo:Bar123", "", model.Unknown},
		{"", "", model.Unknown},
	}
	for _, tc := range cases {
		got := Classify(tc.libraryID, tc.footprint)
		assert.Equal(t, tc.want, got, "Classify(%q, %q)", tc.libraryID, tc.footprint)
	}
}

func TestClassify_FootprintShapeImpliesIC(t *testing.T) {
	cases := []string{
		"Package_SO:SOIC-8_3.9x4.9mm_P1.27mm",
		"Package_QFP:LQFP-48_7x7mm_P0.5mm",
		"Package_DFN_QFN:QFN-32_5x5mm",
		"Package_BGA:BGA-256_14x14mm",
	}
	for _, fp := range cases {
		assert.Equal(t, model.IntegratedCircuit, Classify("Obscure:Part", fp),
			"Classify with footprint %q", fp)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("Device:R", "R_0603_1608Metric")
	second := Classify("Device:R", "R_0603_1608Metric")
	assert.Equal(t, first, second)
	assert.Equal(t, model.Resistor, first)
}

func TestComponent_ReferenceFallback(t *testing.T) {
	cases := []struct {
		ref  string
		want model.Category
	}{
		{"R10", model.Resistor},
		{"C5", model.Capacitor},
		{"SW2", model.Switch},
		{"U3", model.IntegratedCircuit},
		{"Y1", model.Crystal},
		{"FB1", model.Inductor},
		{"J4", model.Connector},
		{"X9", model.Unknown},
	}
	for _, tc := range cases {
		c := &model.Component{Reference: tc.ref, LibraryID: "Foo:Bar123"}
		assert.Equal(t, tc.want, Component(c), "reference %q", tc.ref)
	}
}

func TestComponent_LibraryWinsOverReference(t *testing.T) {
	// A classified library id is never overridden by the designator.
	c := &model.Component{Reference: "U7", LibraryID: "Device:R"}
	assert.Equal(t, model.Resistor, Component(c))
}

func TestCategoryMatchesLabel(t *testing.T) {
	cases := []struct {
		cat   model.Category
		label string
		want  bool
	}{
		{model.Resistor, "Resistors - Chip SMD", true},
		{model.Capacitor, "Ceramic Capacitors", true},
		{model.IntegratedCircuit, "Integrated Circuits", true},
		{model.IntegratedCircuit, "IC", true},
		{model.IntegratedCircuit, "Ceramic Capacitors", false}, // "ic" inside "ceramic"
		{model.LED, "LEDs - SMD", true},
		{model.Inductor, "Ferrite Beads", true},
		{model.Unknown, "Resistors", false},
		{model.Resistor, "", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.cat.MatchesLabel(tc.label),
			"%v.MatchesLabel(%q)", tc.cat, tc.label)
	}
}
