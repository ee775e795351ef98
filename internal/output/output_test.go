package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StinkyLord/pcb-part-matcher/internal/diagnose"
	"github.com/StinkyLord/pcb-part-matcher/internal/match"
	"github.com/StinkyLord/pcb-part-matcher/internal/model"
)

func makeGrouped() *match.GroupedResults {
	tenK := &model.InventoryItem{
		IPN:           "R-10K-0603",
		Category:      "Resistors - Chip SMD",
		Value:         "10K",
		Package:       "0603",
		Manufacturer:  "Yageo",
		DistributorID: "311-10.0KHRCT-ND",
	}
	alt := &model.InventoryItem{IPN: "R-10K-0603-B", Value: "10K", Package: "0603"}

	matched := &match.Group{
		Key:        model.GroupKey{Part: "R-10K-0603", Footprint: "R_0603_1608Metric"},
		References: []string{"R1", "R2"},
		Value:      "10K",
		Footprint:  "R_0603_1608Metric",
		Results: []model.MatchResult{
			{Item: tenK, Score: 120, Warnings: []string{"1% tolerance implied by value notation, but no <=1% part is stocked"}},
			{Item: alt, Score: 120, Alternate: true},
		},
	}

	d := diagnose.Diagnostic{
		Kind:      diagnose.NoValueMatch,
		Reference: "R9",
		Value:     "47K",
		Category:  model.Resistor,
	}
	unmatched := &match.Group{
		Key:        model.GroupKey{Part: "?47k", Footprint: "R_0603_1608Metric"},
		References: []string{"R9"},
		Value:      "47K",
		Footprint:  "R_0603_1608Metric",
		Diagnostic: &d,
	}

	return &match.GroupedResults{
		Groups: []*match.Group{matched, unmatched},
		ByKey: map[model.GroupKey]*match.Group{
			matched.Key:   matched,
			unmatched.Key: unmatched,
		},
	}
}

func TestWriteBOMCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	require.NoError(t, WriteBOMCSV(makeGrouped(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per group")

	assert.Equal(t, bomHeader, rows[0])

	matched := rows[1]
	assert.Equal(t, "R1 R2", matched[0])
	assert.Equal(t, "2", matched[1])
	assert.Equal(t, "10K", matched[2])
	assert.Equal(t, "0603", matched[3])
	assert.Equal(t, "R-10K-0603", matched[4])
	assert.Equal(t, "Yageo", matched[5])
	assert.Equal(t, "311-10.0KHRCT-ND", matched[6])
	assert.Equal(t, "120", matched[7])
	assert.Contains(t, matched[8], "1% tolerance implied")
	assert.Contains(t, matched[8], "alternates: R-10K-0603-B")

	unmatched := rows[2]
	assert.Equal(t, "R9", unmatched[0])
	assert.Empty(t, unmatched[4], "no IPN for an unmatched group")
	assert.Equal(t, "0603", unmatched[3], "package falls back to the footprint token")
	assert.Contains(t, unmatched[8], "47K")
}

func TestWriteTable(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteTable(&b, makeGrouped(), false))

	out := b.String()
	assert.Contains(t, out, "R1 R2")
	assert.Contains(t, out, "R-10K-0603")
	assert.Contains(t, out, `no resistor with value "47K"`)
	assert.Contains(t, out, "1/2 groups matched")
	assert.NotContains(t, out, "alt:", "alternates only appear in verbose mode")
}

func TestWriteTable_Verbose(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteTable(&b, makeGrouped(), true))

	out := b.String()
	assert.Contains(t, out, "alt:")
	assert.Contains(t, out, "R-10K-0603-B")
	assert.Contains(t, out, "R9: no match found", "verbose output carries the diagnostic block")
}
