package dataset

import (
	"sort"
	"strings"
)

// Criteria is a conjunctive filter: every populated dimension must match,
// and within a dimension any listed value matches.
type Criteria struct {
	Scenes     []string
	Devices    []string
	Effectors  []string
	Categories []string
	Query      string // case-insensitive substring over name and tasks
}

// IsZero reports whether the criteria admit every record.
func (c Criteria) IsZero() bool {
	return len(c.Scenes) == 0 && len(c.Devices) == 0 && len(c.Effectors) == 0 &&
		len(c.Categories) == 0 && c.Query == ""
}

// Match reports whether a record satisfies the criteria.
func (c Criteria) Match(r *Record) bool {
	if len(c.Scenes) > 0 && !anyIn(r.Scenes, c.Scenes) {
		return false
	}
	if len(c.Devices) > 0 && !anyIn(r.Devices, c.Devices) {
		return false
	}
	if len(c.Effectors) > 0 && !contains(c.Effectors, r.Effector) {
		return false
	}
	if len(c.Categories) > 0 {
		hit := false
		for _, cat := range c.Categories {
			if r.HasCategory(cat) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if c.Query != "" && !matchQuery(r, c.Query) {
		return false
	}
	return true
}

// Filter returns the ordered sequence of records matching the criteria.
// Order follows catalog load order; the result never contains duplicate
// identities because the catalog itself is deduplicated on load.
func (c *Catalog) Filter(cr Criteria) []*Record {
	if cr.IsZero() {
		out := make([]*Record, len(c.Records))
		copy(out, c.Records)
		return out
	}
	var out []*Record
	for _, r := range c.Records {
		if cr.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Facets enumerates the distinct values of each filterable dimension,
// sorted, for building the filter pane.
type Facets struct {
	Scenes     []string
	Devices    []string
	Effectors  []string
	Categories []string
}

// Facets scans the catalog once and collects filter pane values.
func (c *Catalog) Facets() Facets {
	scenes := make(map[string]bool)
	devices := make(map[string]bool)
	effectors := make(map[string]bool)
	categories := make(map[string]bool)

	for _, r := range c.Records {
		for _, s := range r.Scenes {
			scenes[s] = true
		}
		for _, d := range r.Devices {
			devices[d] = true
		}
		if r.Effector != "" {
			effectors[r.Effector] = true
		}
		for _, cat := range r.Categories() {
			categories[cat] = true
		}
	}

	return Facets{
		Scenes:     sortedKeys(scenes),
		Devices:    sortedKeys(devices),
		Effectors:  sortedKeys(effectors),
		Categories: sortedKeys(categories),
	}
}

func matchQuery(r *Record, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	for _, task := range r.Tasks {
		if strings.Contains(strings.ToLower(task), q) {
			return true
		}
	}
	return false
}

func anyIn(have, want []string) bool {
	for _, h := range have {
		if contains(want, h) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
