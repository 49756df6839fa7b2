package snapshot

import "github.com/vvka-141/hookscan/pkg/hookscan"

// Compare reports the hooks present in current but not in previous (Added)
// and those present in previous but not in current (Removed), per category.
// A category missing on either side counts as empty. Each difference keeps
// the order of the list it was taken from. Categories without changes are
// omitted, and Match is true only when nothing was added or removed.
func Compare(current, previous hookscan.Snapshot) hookscan.Diff {
	diff := hookscan.Diff{
		Added:   make(map[hookscan.Category][]string),
		Removed: make(map[hookscan.Category][]string),
	}

	for _, c := range hookscan.Categories() {
		if added := difference(current[c], previous[c]); len(added) > 0 {
			diff.Added[c] = added
		}
		if removed := difference(previous[c], current[c]); len(removed) > 0 {
			diff.Removed[c] = removed
		}
	}

	diff.Match = len(diff.Added) == 0 && len(diff.Removed) == 0
	return diff
}

// difference returns the elements of a not present in b, in a's order.
func difference(a, b []string) []string {
	exclude := make(map[string]struct{}, len(b))
	for _, name := range b {
		exclude[name] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{}, len(a))
	for _, name := range a {
		if _, skip := exclude[name]; skip {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
