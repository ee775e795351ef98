package design

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "components.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeList(t, `Reference,Library ID,Value,Footprint,Tolerance,DNP
R1,Device:R,10K0,Resistor_SMD:R_0603_1608Metric,,
C1,Device:C,100nF,Capacitor_SMD:C_0603_1608Metric,,
R2,Device:R,4K7,Resistor_SMD:R_0603_1608Metric,5%,
R3,Device:R,1K,Resistor_SMD:R_0603_1608Metric,,DNP
`)
	comps, err := Load(path)
	require.NoError(t, err)
	require.Len(t, comps, 3, "DNP rows are dropped")

	assert.Equal(t, "R1", comps[0].Reference)
	assert.Equal(t, "Device:R", comps[0].LibraryID)
	assert.Equal(t, "10K0", comps[0].Value)
	assert.Equal(t, "Resistor_SMD:R_0603_1608Metric", comps[0].Footprint)
	assert.Nil(t, comps[0].Properties)

	assert.Equal(t, "5%", comps[2].Property("Tolerance"))
}

func TestLoad_HeaderAliases(t *testing.T) {
	path := writeList(t, "Designator,Symbol,Value,Package\nQ1,Transistor:BC847,BC847,SOT-23\n")
	comps, err := Load(path)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, "Q1", comps[0].Reference)
	assert.Equal(t, "Transistor:BC847", comps[0].LibraryID)
	assert.Equal(t, "SOT-23", comps[0].Footprint)
}

func TestLoad_SkipsRowsWithoutReference(t *testing.T) {
	path := writeList(t, "Reference,Value\nR1,10K\n,4K7\n")
	comps, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, comps, 1)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeList(t, "")
	comps, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, comps)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
