package units

import (
	"strconv"
	"strings"
)

// ParsePercent parses a tolerance string ("1%", "±5%", "+/-0.5%", "10")
// into a percentage number. Reports ok=false for malformed input.
func ParsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "±")
	s = strings.TrimPrefix(s, "+/-")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
