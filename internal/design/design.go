// Package design reads the component list exported from a board design.
package design

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/StinkyLord/pcb-part-matcher/internal/model"
)

// Load reads a CSV component list. Expected columns are Reference,
// Library ID, Value and Footprint (matched case-insensitively); every other
// column becomes a component property keyed by its header. Rows flagged DNP
// are dropped.
func Load(path string) ([]model.Component, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening component list: %w", err)
	}
	defer f.Close()
	return read(f)
}

func read(r io.Reader) ([]model.Component, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading component list header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = normalizeColumn(h)
	}

	var components []model.Component
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading component list line %d: %w", line, err)
		}

		var c model.Component
		dnp := false
		for i, cell := range record {
			if i >= len(columns) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			switch columns[i] {
			case "reference":
				c.Reference = cell
			case "library":
				c.LibraryID = cell
			case "value":
				c.Value = cell
			case "footprint":
				c.Footprint = cell
			case "dnp":
				dnp = isSet(cell)
			default:
				if c.Properties == nil {
					c.Properties = map[string]string{}
				}
				c.Properties[strings.TrimSpace(header[i])] = cell
			}
		}
		if c.Reference == "" || dnp {
			continue
		}
		components = append(components, c)
	}
	return components, nil
}

func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(name)
	switch name {
	case "reference", "ref", "refdes", "designator":
		return "reference"
	case "libraryid", "library", "libid", "symbol":
		return "library"
	case "value":
		return "value"
	case "footprint", "package":
		return "footprint"
	case "dnp", "donotpopulate", "donotplace":
		return "dnp"
	}
	return ""
}

// isSet reports whether a DNP cell marks the row as not populated.
func isSet(cell string) bool {
	switch strings.ToLower(cell) {
	case "1", "x", "y", "yes", "true", "dnp":
		return true
	}
	return false
}
