// Package diagnose explains why a component found no qualifying inventory
// candidate. Every unmatched component receives exactly one classification
// from a closed taxonomy, rendered either as a single line (spreadsheet
// cell) or as a multi-line console block.
package diagnose

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/StinkyLord/pcb-part-matcher/internal/classify"
	"github.com/StinkyLord/pcb-part-matcher/internal/footprint"
	"github.com/StinkyLord/pcb-part-matcher/internal/model"
)

// Kind is the closed diagnostic taxonomy.
type Kind int

const (
	// TypeUnknown: the component's category could not be determined.
	TypeUnknown Kind = iota
	// NoTypeMatch: category known, but the inventory stocks nothing of it.
	NoTypeMatch
	// NoValueMatch: items of the category exist, none share the value.
	NoValueMatch
	// PackageMismatch: value and type are stocked, but not in the required
	// package; other packages exist for the value.
	PackageMismatch
	// PackageMismatchGeneric: as PackageMismatch, but no alternative
	// package is recorded for the value at all.
	PackageMismatchGeneric
	// NoMatch: none of the specific conditions apply.
	NoMatch
)

func (k Kind) String() string {
	switch k {
	case TypeUnknown:
		return "type-unknown"
	case NoTypeMatch:
		return "no-type-match"
	case NoValueMatch:
		return "no-value-match"
	case PackageMismatch:
		return "package-mismatch"
	case PackageMismatchGeneric:
		return "package-mismatch-generic"
	default:
		return "no-match"
	}
}

// maxSuggestions caps the near-miss values surfaced in verbose output.
const maxSuggestions = 3

// Diagnostic is the structured explanation for one unmatched component.
type Diagnostic struct {
	Kind      Kind
	Reference string
	LibraryID string
	Value     string
	Footprint string
	Category  model.Category

	// PackageWanted is the token extracted from the component footprint.
	PackageWanted string

	// AvailablePackages lists the packages the value IS stocked in, for
	// PackageMismatch.
	AvailablePackages []string

	// Suggestions lists the closest stocked values of the same category,
	// for NoValueMatch verbose output.
	Suggestions []string
}

// Analyze classifies why the component matched nothing. It must only be
// called for components whose match list came back empty; it re-walks the
// same filter conditions the scorer applied, from broadest to narrowest.
func Analyze(c *model.Component, inventory []model.InventoryItem) Diagnostic {
	d := Diagnostic{
		Kind:      NoMatch,
		Reference: c.Reference,
		LibraryID: c.LibraryID,
		Value:     c.Value,
		Footprint: c.Footprint,
		Category:  classify.Component(c),
	}
	d.PackageWanted = footprint.Extract(c.Footprint)

	if d.Category == model.Unknown {
		d.Kind = TypeUnknown
		return d
	}

	var typeItems []*model.InventoryItem
	for i := range inventory {
		if d.Category.MatchesLabel(inventory[i].Category) {
			typeItems = append(typeItems, &inventory[i])
		}
	}
	if len(typeItems) == 0 {
		d.Kind = NoTypeMatch
		return d
	}

	var valueItems []*model.InventoryItem
	for _, item := range typeItems {
		if model.ValuesEqual(d.Category, c.Value, item.Value) {
			valueItems = append(valueItems, item)
		}
	}
	if len(valueItems) == 0 {
		d.Kind = NoValueMatch
		d.Suggestions = closestValues(c.Value, typeItems)
		return d
	}

	if d.PackageWanted != "" {
		stocked := false
		for _, item := range valueItems {
			if footprint.Matches(item.Package, d.PackageWanted) {
				stocked = true
				break
			}
		}
		if !stocked {
			d.AvailablePackages = availablePackages(valueItems)
			if len(d.AvailablePackages) > 0 {
				d.Kind = PackageMismatch
			} else {
				d.Kind = PackageMismatchGeneric
			}
			return d
		}
	}

	return d
}

// closestValues ranks the category's stocked values by fuzzy similarity to
// the wanted value.
func closestValues(want string, items []*model.InventoryItem) []string {
	seen := map[string]bool{}
	var values []string
	for _, item := range items {
		v := item.Value
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	matches := fuzzy.Find(model.NormalizeValue(want), values)
	var out []string
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

func availablePackages(items []*model.InventoryItem) []string {
	seen := map[string]bool{}
	var out []string
	for _, item := range items {
		p := item.Package
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Terse renders the diagnostic as a single line suitable for a spreadsheet
// cell.
func (d Diagnostic) Terse() string {
	switch d.Kind {
	case TypeUnknown:
		return fmt.Sprintf("unknown component type (lib %q)", d.LibraryID)
	case NoTypeMatch:
		return fmt.Sprintf("no %s items in inventory", d.Category)
	case NoValueMatch:
		return fmt.Sprintf("no %s with value %q in inventory", d.Category, d.Value)
	case PackageMismatch:
		return fmt.Sprintf("%s %q not stocked in %s (available: %s)",
			d.Category, d.Value, d.PackageWanted, strings.Join(d.AvailablePackages, ", "))
	case PackageMismatchGeneric:
		return fmt.Sprintf("%s %q not stocked in %s", d.Category, d.Value, d.PackageWanted)
	default:
		return "no inventory match"
	}
}

// Verbose renders the diagnostic as a multi-line block for console display.
// It carries the same classification as Terse, with context added.
func (d Diagnostic) Verbose() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: no match found\n", d.Reference)
	fmt.Fprintf(&b, "  library:   %s\n", orDash(d.LibraryID))
	fmt.Fprintf(&b, "  value:     %s\n", orDash(d.Value))
	fmt.Fprintf(&b, "  footprint: %s\n", orDash(d.Footprint))

	switch d.Kind {
	case TypeUnknown:
		b.WriteString("  reason:    component type could not be determined\n")
	case NoTypeMatch:
		fmt.Fprintf(&b, "  reason:    inventory has no %s items at all\n", d.Category)
	case NoValueMatch:
		fmt.Fprintf(&b, "  reason:    no %s stocked with value %q\n", d.Category, d.Value)
		if len(d.Suggestions) > 0 {
			fmt.Fprintf(&b, "  closest stocked values: %s\n", strings.Join(d.Suggestions, ", "))
		}
	case PackageMismatch:
		fmt.Fprintf(&b, "  reason:    value %q exists, but not in package %s\n", d.Value, d.PackageWanted)
		fmt.Fprintf(&b, "  stocked packages for this value: %s\n", strings.Join(d.AvailablePackages, ", "))
	case PackageMismatchGeneric:
		fmt.Fprintf(&b, "  reason:    value %q exists, but not in package %s; no alternative packages recorded\n",
			d.Value, d.PackageWanted)
	default:
		b.WriteString("  reason:    no inventory item passed the match filters\n")
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
