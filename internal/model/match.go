package model

// MatchResult pairs one qualifying inventory item with its suitability
// score. Results are produced fresh per query and never mutated afterwards.
type MatchResult struct {
	Item     *InventoryItem
	Score    int
	Priority int

	// Alternate marks an equal-priority, equal-score tie surfaced in
	// verbose mode alongside the chosen best entry.
	Alternate bool

	// Warnings carries cross-cutting annotations, such as a 1%-precision
	// value matched only by looser-tolerance stock.
	Warnings []string

	// Trace records which filters passed and which bonuses fired, for
	// debug output. Empty unless tracing was requested.
	Trace []string
}

// GroupKey identifies a group of interchangeable components in batch
// output. Matched groups key on the chosen part and footprint; unmatched
// groups fall back to the normalized raw value so they still aggregate.
type GroupKey struct {
	Part      string // Best item's IPN, or "?"+normalized value when unmatched
	Footprint string
}
