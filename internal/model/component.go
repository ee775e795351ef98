// Package model defines the internal data structures used by the matching engine.
package model

import "strings"

// Component is a single placed design element read from a schematic.
type Component struct {
	Reference  string            // Unique designator (e.g., "R10", "U3")
	LibraryID  string            // Namespaced type identifier (e.g., "Device:R")
	Value      string            // Free-text value as entered by the designer
	Footprint  string            // Free-text package/footprint name
	Properties map[string]string // Attribute name -> value (e.g., "Tolerance" -> "1%")
}

// RefPrefix returns the leading alphabetic run of the reference designator,
// so that:
//   - "R10" -> "R"
//   - "SW2" -> "SW"
//   - "3V3" -> "" (no leading letters)
func (c *Component) RefPrefix() string {
	for i := 0; i < len(c.Reference); i++ {
		b := c.Reference[i]
		if (b < 'A' || b > 'Z') && (b < 'a' || b > 'z') {
			return c.Reference[:i]
		}
	}
	return c.Reference
}

// Property returns the named property value, matching the key
// case-insensitively. Returns "" when the property is absent.
func (c *Component) Property(name string) string {
	if c.Properties == nil {
		return ""
	}
	if v, ok := c.Properties[name]; ok {
		return v
	}
	for k, v := range c.Properties {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// NormalizeValue returns a normalized form of a free-text value for use in
// grouping keys and string comparison: lowercase, whitespace removed, common
// unit-symbol spellings stripped, so that:
//   - "4.7 kΩ" and "4.7k" collapse to the same key
//   - "100nF" and "100nf" collapse to the same key
func NormalizeValue(v string) string {
	v = strings.ToLower(v)
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if r == ' ' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	s := b.String()
	for _, noise := range []string{"ω", "ohms", "ohm", "farads", "farad", "henries", "henry"} {
		s = strings.ReplaceAll(s, noise, "")
	}
	return s
}
