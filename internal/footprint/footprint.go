// Package footprint extracts a normalized package token from a free-text
// footprint name. Patterns are tried from most to least specific; the first
// hit wins. When nothing is recognized, known dimension noise is stripped
// and the cleaned remainder is returned as a best-effort token.
package footprint

import (
	"regexp"
	"strings"
)

// imperialCodes are the 4-digit chip package sizes recognized anywhere in a
// footprint name. Enumerated rather than matched as \d{4} so the metric
// half of names like "R_0603_1608Metric" is never mistaken for the token.
var imperialCodes = []string{
	"01005", "0201", "0402", "0603", "0805", "1008",
	"1206", "1210", "1218", "1812", "2010", "2220", "2512",
}

var imperialPattern = regexp.MustCompile(
	`(?:^|[^0-9])(` + strings.Join(imperialCodes, "|") + `)(?:[^0-9]|$)`)

// familyPattern matches named package families with a pin count or variant
// code ("SOIC-8", "SOT_23", "QFN-32", "TO-220", "DO-214AC"). Longer family
// names precede their substrings so "TSSOP" is not read as "SOP".
var familyPattern = regexp.MustCompile(`(?:^|[_\-:.( ])` +
	`(TSSOP|SSOP|MSOP|SOIC|SOT|SOD|SOP|QFN|DFN|LQFP|TQFP|QFP|BGA|CSP|PDIP|DIP|TO|DO|SMA|SMB|SMC)` +
	`[-_]?([0-9]+[A-Za-z]*)`)

// dimension noise stripped by the fallback: "_3.9x4.9mm", "_P1.27mm",
// "_1608Metric", "_Pad1.05x0.95mm", "_HandSolder" and similar annotations.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`_[0-9]+(\.[0-9]+)?x[0-9]+(\.[0-9]+)?(x[0-9]+(\.[0-9]+)?)?(mm)?.*$`),
	regexp.MustCompile(`_P[0-9]+(\.[0-9]+)?(mm)?.*$`),
	regexp.MustCompile(`_[0-9]+Metric.*$`),
	regexp.MustCompile(`_Pad.*$`),
	regexp.MustCompile(`_HandSolder.*$`),
}

// Matches reports whether an inventory package field covers the given
// package token: either the token appears in the field (case-insensitive),
// or the field normalizes to the same token.
func Matches(packageField, token string) bool {
	if packageField == "" || token == "" {
		return false
	}
	if strings.Contains(strings.ToUpper(packageField), strings.ToUpper(token)) {
		return true
	}
	return strings.EqualFold(Extract(packageField), token)
}

// Extract returns the normalized package token of a footprint name, or ""
// when nothing recognizable remains.
func Extract(fp string) string {
	if fp == "" {
		return ""
	}

	if m := imperialPattern.FindStringSubmatch(fp); m != nil {
		return m[1]
	}

	if m := familyPattern.FindStringSubmatch(strings.ToUpper(fp)); m != nil {
		return m[1] + "-" + m[2]
	}

	// Fallback: drop the library prefix and dimension annotations, keep
	// the cleaned remainder.
	if _, name, found := strings.Cut(fp, ":"); found {
		fp = name
	}
	for _, p := range noisePatterns {
		fp = p.ReplaceAllString(fp, "")
	}
	return strings.Trim(fp, "_-. ")
}
