package hookscan

import "sort"

// Category identifies one of the four recognised hook call conventions.
type Category string

const (
	// CategoryRegistered covers add_action() call sites.
	CategoryRegistered Category = "registered"

	// CategoryFired covers do_action() call sites.
	CategoryFired Category = "fired"

	// CategoryRegisteredFilter covers add_filter() call sites.
	CategoryRegisteredFilter Category = "registered-filter"

	// CategoryAppliedFilter covers apply_filters() call sites.
	CategoryAppliedFilter Category = "applied-filter"
)

// Categories returns the fixed category set in display order.
// A fresh slice is returned on every call.
func Categories() []Category {
	return []Category{
		CategoryRegistered,
		CategoryFired,
		CategoryRegisteredFilter,
		CategoryAppliedFilter,
	}
}

// IsValid reports whether c belongs to the fixed category set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryRegistered, CategoryFired, CategoryRegisteredFilter, CategoryAppliedFilter:
		return true
	default:
		return false
	}
}

// Occurrence is a single call site of a hook.
type Occurrence struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// ResultSet groups occurrences by category, then by hook name.
// Occurrences keep the order in which they were discovered.
// Every category of the fixed set is always present.
type ResultSet map[Category]map[string][]Occurrence

// NewResultSet creates an empty ResultSet with all categories present.
func NewResultSet() ResultSet {
	rs := make(ResultSet, 4)
	for _, c := range Categories() {
		rs[c] = make(map[string][]Occurrence)
	}
	return rs
}

// Add appends an occurrence of name under category.
// Only the scanner calls this; consumers treat a ResultSet as read-only.
func (rs ResultSet) Add(category Category, name string, occ Occurrence) {
	hooks, ok := rs[category]
	if !ok {
		hooks = make(map[string][]Occurrence)
		rs[category] = hooks
	}
	hooks[name] = append(hooks[name], occ)
}

// Count returns the number of distinct hook names in category.
func (rs ResultSet) Count(category Category) int {
	return len(rs[category])
}

// TotalCount returns the number of distinct (category, name) pairs.
func (rs ResultSet) TotalCount() int {
	total := 0
	for _, c := range Categories() {
		total += rs.Count(c)
	}
	return total
}

// Names returns the hook names of category sorted ascending.
func (rs ResultSet) Names(category Category) []string {
	hooks := rs[category]
	names := make([]string, 0, len(hooks))
	for name := range hooks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot is the name-only, sorted and deduplicated view of a ResultSet,
// persisted between runs to detect added and removed hooks.
type Snapshot map[Category][]string

// Diff describes the changes between two snapshots.
// Categories without changes are omitted from Added and Removed.
type Diff struct {
	Added   map[Category][]string `json:"added"`
	Removed map[Category][]string `json:"removed"`
	Match   bool                  `json:"match"`
}
