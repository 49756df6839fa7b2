package report

import (
	"encoding/json"

	"github.com/vvka-141/hookscan/pkg/hookscan"
)

// resultsDocument fixes the category key order of the --json output to the
// display order, matching the snapshot file.
type resultsDocument struct {
	Registered       map[string][]hookscan.Occurrence `json:"registered"`
	Fired            map[string][]hookscan.Occurrence `json:"fired"`
	RegisteredFilter map[string][]hookscan.Occurrence `json:"registered-filter"`
	AppliedFilter    map[string][]hookscan.Occurrence `json:"applied-filter"`
}

// changesDocument is the display-ordered form of Diff.Added and Diff.Removed.
// Categories without changes are left out.
type changesDocument struct {
	Registered       []string `json:"registered,omitempty"`
	Fired            []string `json:"fired,omitempty"`
	RegisteredFilter []string `json:"registered-filter,omitempty"`
	AppliedFilter    []string `json:"applied-filter,omitempty"`
}

type diffDocument struct {
	Added   changesDocument `json:"added"`
	Removed changesDocument `json:"removed"`
	Match   bool            `json:"match"`
}

// JSON serializes rs verbatim (category → hook name → occurrences) as
// indented JSON with a trailing newline. The four categories are always
// present in display order, empty ones as {}.
func JSON(rs hookscan.ResultSet) ([]byte, error) {
	return marshal(resultsDocument{
		Registered:       hooksOf(rs, hookscan.CategoryRegistered),
		Fired:            hooksOf(rs, hookscan.CategoryFired),
		RegisteredFilter: hooksOf(rs, hookscan.CategoryRegisteredFilter),
		AppliedFilter:    hooksOf(rs, hookscan.CategoryAppliedFilter),
	})
}

func hooksOf(rs hookscan.ResultSet, c hookscan.Category) map[string][]hookscan.Occurrence {
	if hooks := rs[c]; hooks != nil {
		return hooks
	}
	return map[string][]hookscan.Occurrence{}
}

// DiffJSON serializes diff as indented JSON with a trailing newline.
// Added and Removed are always objects, never null, with categories in
// display order.
func DiffJSON(diff hookscan.Diff) ([]byte, error) {
	return marshal(diffDocument{
		Added:   changesOf(diff.Added),
		Removed: changesOf(diff.Removed),
		Match:   diff.Match,
	})
}

func changesOf(changes map[hookscan.Category][]string) changesDocument {
	return changesDocument{
		Registered:       changes[hookscan.CategoryRegistered],
		Fired:            changes[hookscan.CategoryFired],
		RegisteredFilter: changes[hookscan.CategoryRegisteredFilter],
		AppliedFilter:    changes[hookscan.CategoryAppliedFilter],
	}
}

func marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
