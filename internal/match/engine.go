package match

import (
	"sort"
	"sync"

	"github.com/StinkyLord/pcb-part-matcher/internal/classify"
	"github.com/StinkyLord/pcb-part-matcher/internal/diagnose"
	"github.com/StinkyLord/pcb-part-matcher/internal/model"
	"github.com/StinkyLord/pcb-part-matcher/internal/units"
)

// maxAlternates caps the equal-priority, equal-score ties surfaced next to
// the chosen best entry in verbose mode.
const maxAlternates = 2

// Engine matches components against a read-only inventory snapshot.
// Every method is a pure function of its inputs, so one Engine may serve
// concurrent callers without synchronization.
type Engine struct {
	inventory []model.InventoryItem

	// Verbose surfaces tied alternates in BestMatches and enables trace
	// recording on results.
	Verbose bool
}

// New creates an Engine over the given inventory. The slice is used as-is
// and must not be mutated for the Engine's lifetime.
func New(inventory []model.InventoryItem) *Engine {
	return &Engine{inventory: inventory}
}

// FindMatches returns every inventory item passing the primary filters,
// ordered by priority ascending, then score descending, then original
// inventory order. The ordering is total, so output is reproducible across
// runs on unchanged input.
func (e *Engine) FindMatches(c *model.Component) []model.MatchResult {
	var results []model.MatchResult
	for i := range e.inventory {
		item := &e.inventory[i]
		if !PassesPrimaryFilters(c, item) {
			continue
		}
		r := model.MatchResult{
			Item:     item,
			Priority: item.Priority,
		}
		if e.Verbose {
			r.Score, r.Trace = ScoreWithTrace(c, item)
		} else {
			r.Score = Score(c, item)
		}
		results = append(results, r)
	}

	// SliceStable keeps inventory order as the final tiebreaker.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Priority != results[j].Priority {
			return results[i].Priority < results[j].Priority
		}
		return results[i].Score > results[j].Score
	})

	if len(results) > 0 {
		if w := precisionWarning(c, results); w != "" {
			results[0].Warnings = append(results[0].Warnings, w)
		}
	}
	return results
}

// BestMatches applies the tie-break policy to FindMatches output: the
// single stable best entry, plus (in verbose mode) up to maxAlternates
// equal-priority, equal-score ties flagged as alternates.
func (e *Engine) BestMatches(c *model.Component) []model.MatchResult {
	results := e.FindMatches(c)
	if len(results) == 0 {
		return nil
	}
	best := results[0]
	out := []model.MatchResult{best}
	if !e.Verbose {
		return out
	}
	for _, r := range results[1:] {
		if len(out) > maxAlternates {
			break
		}
		if r.Priority != best.Priority || r.Score != best.Score {
			break
		}
		r.Alternate = true
		out = append(out, r)
	}
	return out
}

// precisionWarning implements the 1%-class rule for resistors: when the
// design notation carries an explicit precision digit, or an explicit
// tolerance property of 1% or tighter, and no candidate in the filtered set
// is stocked at <=1% tolerance, the match is flagged rather than dropped.
func precisionWarning(c *model.Component, candidates []model.MatchResult) string {
	if classify.Component(c) != model.Resistor {
		return ""
	}
	implied := units.HasPrecisionDigit(c.Value)
	if !implied {
		if tol, ok := units.ParsePercent(c.Property("Tolerance")); ok && tol <= 1 {
			implied = true
		}
	}
	if !implied {
		return ""
	}
	for _, r := range candidates {
		if tol, ok := units.ParsePercent(r.Item.Tolerance); ok && tol <= 1 {
			return ""
		}
	}
	return "1% tolerance implied by value notation, but no <=1% part is stocked"
}

// Group is one batch-output entry: all references sharing a normalized
// value and footprint, the ranked matches of their representative, and a
// diagnostic when nothing qualified.
type Group struct {
	Key        model.GroupKey
	References []string
	Value      string
	Footprint  string
	Results    []model.MatchResult
	Diagnostic *diagnose.Diagnostic
}

// GroupedResults holds batch output keyed for lookup, with groups kept in
// first-seen component order.
type GroupedResults struct {
	Groups []*Group
	ByKey  map[model.GroupKey]*Group
}

// GroupAndMatch groups components sharing a normalized value and footprint,
// matches each group's representative against the inventory, and analyzes
// the groups that found nothing.
//
// Groups are independent and the inventory is read-only, so they are
// matched concurrently and merged back in input order.
func (e *Engine) GroupAndMatch(components []model.Component) *GroupedResults {
	type cluster struct {
		rep        *model.Component
		references []string
	}

	clusterKey := func(c *model.Component) string {
		return model.NormalizeValue(c.Value) + "|" + c.Footprint
	}

	var order []string
	clusters := map[string]*cluster{}
	for i := range components {
		c := &components[i]
		key := clusterKey(c)
		cl, ok := clusters[key]
		if !ok {
			cl = &cluster{rep: c}
			clusters[key] = cl
			order = append(order, key)
		}
		cl.references = append(cl.references, c.Reference)
	}

	groups := make([]*Group, len(order))
	var wg sync.WaitGroup
	for i, key := range order {
		wg.Add(1)
		go func(i int, cl *cluster) {
			defer wg.Done()
			groups[i] = e.matchCluster(cl.rep, cl.references)
		}(i, clusters[key])
	}
	wg.Wait()

	out := &GroupedResults{
		Groups: groups,
		ByKey:  make(map[model.GroupKey]*Group, len(groups)),
	}
	for _, g := range groups {
		out.ByKey[g.Key] = g
	}
	return out
}

func (e *Engine) matchCluster(rep *model.Component, references []string) *Group {
	g := &Group{
		References: references,
		Value:      rep.Value,
		Footprint:  rep.Footprint,
		Results:    e.BestMatches(rep),
	}
	if len(g.Results) > 0 {
		g.Key = model.GroupKey{
			Part:      g.Results[0].Item.IPN,
			Footprint: rep.Footprint,
		}
		return g
	}

	// No qualifying candidate: aggregate under the raw value instead of a
	// part number, and explain why.
	g.Key = model.GroupKey{
		Part:      "?" + model.NormalizeValue(rep.Value),
		Footprint: rep.Footprint,
	}
	d := diagnose.Analyze(rep, e.inventory)
	g.Diagnostic = &d
	return g
}

// Inventory returns the engine's inventory snapshot, for callers that need
// to run their own analysis pass.
func (e *Engine) Inventory() []model.InventoryItem {
	return e.inventory
}
