package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_ImperialCodes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"R_0603_1608Metric", "0603"},
		{"C_0402_1005Metric", "0402"},
		{"L_0805_2012Metric", "0805"},
		{"R_1206_3216Metric_Pad1.30x1.75mm_HandSolder", "1206"},
		{"R_2512_6332Metric", "2512"},
		{"LED_0603_1608Metric", "0603"},
		{"Resistor_SMD:R_1210_3225Metric", "1210"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Extract(tc.in), "Extract(%q)", tc.in)
	}
}

func TestExtract_NamedFamilies(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Package_SO:SOIC-8_3.9x4.9mm_P1.27mm", "SOIC-8"},
		{"Package_TO_SOT_SMD:SOT-23", "SOT-23"},
		{"Package_TO_SOT_SMD:SOT-223-3_TabPin2", "SOT-223"},
		{"Package_DFN_QFN:QFN-32-1EP_5x5mm_P0.5mm", "QFN-32"},
		{"Package_QFP:TQFP-64_10x10mm_P0.5mm", "TQFP-64"},
		{"Package_BGA:BGA-256_1.0_14.0x14.0mm", "BGA-256"},
		{"Package_SO:TSSOP-16_4.4x5mm_P0.65mm", "TSSOP-16"},
		{"Package_TO_SOT_THT:TO-220-3_Vertical", "TO-220"},
		{"Diode_SMD:D_SOD-123", "SOD-123"},
		{"Diode_SMD:D_DO-214AC", "DO-214AC"},
		{"Package_DIP:DIP-8_W7.62mm", "DIP-8"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Extract(tc.in), "Extract(%q)", tc.in)
	}
}

func TestExtract_Fallback(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Capacitor_THT:CP_Radial_D5.0mm_P2.50mm", "CP_Radial_D5.0mm"},
		{"Connector_PinHeader_2.54mm:PinHeader_1x05_P2.54mm_Vertical", "PinHeader"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Extract(tc.in), "Extract(%q)", tc.in)
	}
}

func TestExtract_PlainToken(t *testing.T) {
	// Inventory-side package fields are often already bare tokens.
	assert.Equal(t, "0603", Extract("0603"))
	assert.Equal(t, "SOIC-8", Extract("SOIC-8"))
	assert.Equal(t, "SOIC-8", Extract("soic8"))
}
