package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/clcc/cablegnosis/internal/registry"
)

// DefaultLimit caps the suggestion list shown in the orchestrator panel.
const DefaultLimit = 8

// Result is one search hit, presentation-agnostic.
type Result struct {
	ToolID string
	Label  string
	Tags   []string
}

type entry struct {
	result Result
	blob   string
}

// Index is a substring search over the registered service tabs. Build
// once after registry load; read-only afterwards.
type Index struct {
	entries []entry
}

// NewIndex builds the index from the registry's service tabs.
func NewIndex(reg *registry.Registry) *Index {
	services := reg.Services()
	idx := &Index{entries: make([]entry, 0, len(services))}
	for _, d := range services {
		blob := strings.ToLower(d.ID + " " + d.Label + " " + strings.Join(d.Tags, " "))
		idx.entries = append(idx.entries, entry{
			result: Result{ToolID: d.ID, Label: d.Label, Tags: d.Tags},
			blob:   blob,
		})
	}
	return idx
}

// Search tokenizes the query on whitespace and returns the tools whose
// id+label+tags blob contains every token as a substring. Results sort
// by (label length, label), shortest first; at most limit entries
// (DefaultLimit when limit <= 0). An empty or whitespace-only query
// returns nothing, never the whole index.
func (idx *Index) Search(query string, limit int) []Result {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var hits []Result
	for _, e := range idx.entries {
		match := true
		for _, tok := range tokens {
			if !strings.Contains(e.blob, tok) {
				match = false
				break
			}
		}
		if match {
			hits = append(hits, e.result)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if len(hits[i].Label) != len(hits[j].Label) {
			return len(hits[i].Label) < len(hits[j].Label)
		}
		return hits[i].Label < hits[j].Label
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

// Nearest returns the tool whose label is closest to the query by edit
// distance. Assistive only: the panel shows it as a "did you mean" hint
// when Search comes back empty. Never consulted by navigation.
func (idx *Index) Nearest(query string) (Result, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(idx.entries) == 0 {
		return Result{}, false
	}
	best, bestDist := Result{}, -1
	for _, e := range idx.entries {
		d := levenshtein.ComputeDistance(query, strings.ToLower(e.result.Label))
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.result, d
		}
	}
	return best, true
}
