package app

import (
	"sort"
	"strings"
)

// Valid SortBy values. Any other value leaves the input order untouched.
const (
	SortByStars      = "stars"
	SortByLastCommit = "last_commit"
	SortByName       = "name"
)

// Criteria describes a single catalog query. Zero-value fields are no
// constraint. Criteria is passed by value into Query on every change,
// there is no ambient filter state.
type Criteria struct {
	// Search is matched case-insensitively against name, slug, description and notes.
	Search   string
	Category string
	Status   string
	Language string
	SortBy   string
}

// Query filters and sorts enriched entries according to given criteria.
// Pure with respect to its inputs: the snapshot slice is not modified.
//
// All provided criteria are ANDed; the search term is ORed across its four
// target fields. Sorts are stable, so entries with equal keys keep their
// snapshot order.
func Query(entries []EnrichedEntry, c Criteria) []EnrichedEntry {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]EnrichedEntry, 0, len(entries))
	for _, e := range entries {
		if c.Category != "" && e.Category != c.Category {
			continue
		}
		if c.Status != "" && string(e.ActivityStatus) != c.Status {
			continue
		}
		if c.Language != "" && e.Language != c.Language {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		out = append(out, e)
	}

	switch c.SortBy {
	case SortByStars:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Stars > out[j].Stars
		})
	case SortByLastCommit:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LastCommit.After(out[j].LastCommit)
		})
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
	}

	return out
}

func matchesSearch(e EnrichedEntry, search string) bool {
	return strings.Contains(strings.ToLower(e.Name), search) ||
		strings.Contains(strings.ToLower(e.Slug), search) ||
		strings.Contains(strings.ToLower(e.Description), search) ||
		strings.Contains(strings.ToLower(e.Notes), search)
}

// Catalog holds a materialized snapshot in memory and answers queries over it.
type Catalog struct {
	entries []EnrichedEntry
}

// NewCatalog creates new Catalog instance over given snapshot entries.
func NewCatalog(entries []EnrichedEntry) *Catalog {
	return &Catalog{entries: entries}
}

// Len returns the total number of entries in the catalog, before any filtering.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Query returns entries matching given criteria.
func (c *Catalog) Query(criteria Criteria) []EnrichedEntry {
	return Query(c.entries, criteria)
}
