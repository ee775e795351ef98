package model

import "strings"

// DefaultPriority is assigned to inventory items that carry no explicit
// priority. Lower values are more desirable; 99 means "unranked".
const DefaultPriority = 99

// InventoryItem is one catalog entry of a stocked or sourceable part.
// The inventory is loaded once per run and treated as read-only.
type InventoryItem struct {
	IPN           string // Internal part number, the catalog primary key
	Category      string // Free-text category label (e.g., "Resistors - Chip")
	Value         string // Nominal value (e.g., "10K", "100n")
	Package       string // Package/footprint label (e.g., "0603", "SOIC-8")
	Tolerance     string // e.g., "1%", "±5%"
	Voltage       string // Rated voltage (e.g., "50V")
	Amperage      string // Rated current
	Wattage       string // Rated power (e.g., "0.1W")
	Manufacturer  string
	DistributorID string
	Priority      int // Lower = more preferred; DefaultPriority when absent

	// Attrs holds category-specific fields that have no dedicated column
	// (LED wavelength, oscillator load capacitance, connector pitch, ...).
	Attrs map[string]string
}

// Attr returns the named open attribute, matching the key case-insensitively.
func (it *InventoryItem) Attr(name string) string {
	if it.Attrs == nil {
		return ""
	}
	if v, ok := it.Attrs[name]; ok {
		return v
	}
	for k, v := range it.Attrs {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
