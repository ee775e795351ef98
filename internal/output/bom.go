// Package output renders match results as an order-ready BOM file or a
// console table.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/StinkyLord/pcb-part-matcher/internal/footprint"
	"github.com/StinkyLord/pcb-part-matcher/internal/match"
)

var bomHeader = []string{
	"References", "Qty", "Value", "Package", "IPN",
	"Manufacturer", "Distributor", "Score", "Notes",
}

// WriteBOMCSV serialises grouped match results as an order-ready CSV and
// writes it to the given output path. If outputPath is "-", it writes to
// stdout. Groups appear in input order, one row per group.
func WriteBOMCSV(grouped *match.GroupedResults, outputPath string) error {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(bomHeader); err != nil {
		return fmt.Errorf("failed to write BOM header: %w", err)
	}
	for _, g := range grouped.Groups {
		if err := w.Write(bomRow(g)); err != nil {
			return fmt.Errorf("failed to write BOM row for %s: %w", strings.Join(g.References, " "), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush BOM: %w", err)
	}

	if outputPath == "-" {
		_, err := os.Stdout.WriteString(b.String())
		return err
	}
	return os.WriteFile(outputPath, []byte(b.String()), 0644)
}

func bomRow(g *match.Group) []string {
	row := []string{
		strings.Join(g.References, " "),
		strconv.Itoa(len(g.References)),
		g.Value,
		packageColumn(g),
		"", "", "", "",
		notesColumn(g),
	}
	if len(g.Results) == 0 {
		return row
	}
	best := g.Results[0]
	row[4] = best.Item.IPN
	row[5] = best.Item.Manufacturer
	row[6] = best.Item.DistributorID
	row[7] = strconv.Itoa(best.Score)
	return row
}

// packageColumn prefers the stocked item's package; for unmatched groups it
// falls back to the token extracted from the design footprint.
func packageColumn(g *match.Group) string {
	if len(g.Results) > 0 && g.Results[0].Item.Package != "" {
		return g.Results[0].Item.Package
	}
	return footprint.Extract(g.Footprint)
}

// notesColumn folds warnings, surfaced alternates and the diagnostic into a
// single spreadsheet cell.
func notesColumn(g *match.Group) string {
	var notes []string
	if len(g.Results) > 0 {
		notes = append(notes, g.Results[0].Warnings...)
		var alts []string
		for _, r := range g.Results[1:] {
			if r.Alternate {
				alts = append(alts, r.Item.IPN)
			}
		}
		if len(alts) > 0 {
			notes = append(notes, "alternates: "+strings.Join(alts, " "))
		}
	}
	if g.Diagnostic != nil {
		notes = append(notes, g.Diagnostic.Terse())
	}
	return strings.Join(notes, "; ")
}
