// Package inventory loads part catalogs into the matching engine's
// read-only inventory list. CSV, JSON and YAML catalogs are supported; the
// format is chosen by file extension.
package inventory

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/StinkyLord/pcb-part-matcher/internal/model"
)

// Load reads a catalog file and returns its items in file order.
func Load(path string) ([]model.InventoryItem, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported inventory format %q (supported: csv, json, yaml)", filepath.Ext(path))
	}
}

// parsePriority interprets a priority cell. Absent or malformed values map
// to DefaultPriority, never to zero.
func parsePriority(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.DefaultPriority
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return model.DefaultPriority
	}
	return n
}

// dedicated column names, normalized to lowercase without separators.
var columnAliases = map[string]string{
	"ipn":           "ipn",
	"partnumber":    "ipn",
	"internalpart":  "ipn",
	"category":      "category",
	"type":          "category",
	"value":         "value",
	"package":       "package",
	"footprint":     "package",
	"tolerance":     "tolerance",
	"voltage":       "voltage",
	"amperage":      "amperage",
	"current":       "amperage",
	"wattage":       "wattage",
	"power":         "wattage",
	"manufacturer":  "manufacturer",
	"mfr":           "manufacturer",
	"distributorid": "distributor",
	"distributor":   "distributor",
	"priority":      "priority",
}

func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(name)
	if canonical, ok := columnAliases[name]; ok {
		return canonical
	}
	return ""
}

// setField routes one cell into its dedicated item field, or into the open
// attribute map when the column has no dedicated field.
func setField(item *model.InventoryItem, column, header, value string) {
	if value == "" {
		return
	}
	switch column {
	case "ipn":
		item.IPN = value
	case "category":
		item.Category = value
	case "value":
		item.Value = value
	case "package":
		item.Package = value
	case "tolerance":
		item.Tolerance = value
	case "voltage":
		item.Voltage = value
	case "amperage":
		item.Amperage = value
	case "wattage":
		item.Wattage = value
	case "manufacturer":
		item.Manufacturer = value
	case "distributor":
		item.DistributorID = value
	case "priority":
		item.Priority = parsePriority(value)
	default:
		if item.Attrs == nil {
			item.Attrs = map[string]string{}
		}
		item.Attrs[header] = value
	}
}
