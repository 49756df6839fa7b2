package snapshot

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/hookscan/pkg/hookscan"
)

func sampleResults() hookscan.ResultSet {
	rs := hookscan.NewResultSet()
	rs.Add(hookscan.CategoryRegistered, "wp_loaded", hookscan.Occurrence{File: "/a.php", Line: 4})
	rs.Add(hookscan.CategoryRegistered, "init", hookscan.Occurrence{File: "/a.php", Line: 1})
	rs.Add(hookscan.CategoryRegistered, "init", hookscan.Occurrence{File: "/b.php", Line: 2})
	rs.Add(hookscan.CategoryAppliedFilter, "the_title", hookscan.Occurrence{File: "/b.php", Line: 7})
	return rs
}

func TestFromResults(t *testing.T) {
	snap := FromResults(sampleResults())

	assert.Equal(t, hookscan.Snapshot{
		hookscan.CategoryRegistered:       {"init", "wp_loaded"},
		hookscan.CategoryFired:            {},
		hookscan.CategoryRegisteredFilter: {},
		hookscan.CategoryAppliedFilter:    {"the_title"},
	}, snap)
}

func TestFromResults_SortedAndUnique(t *testing.T) {
	rs := hookscan.NewResultSet()
	for _, name := range []string{"z", "a", "m", "a", "Z", "b"} {
		rs.Add(hookscan.CategoryFired, name, hookscan.Occurrence{File: "f.php", Line: 1})
	}

	names := FromResults(rs)[hookscan.CategoryFired]
	assert.True(t, sort.StringsAreSorted(names), "names not sorted: %v", names)

	seen := map[string]bool{}
	for _, n := range names {
		assert.False(t, seen[n], "duplicate name %q", n)
		seen[n] = true
	}
	assert.Equal(t, []string{"Z", "a", "b", "m", "z"}, names)
}

func TestEncode_Format(t *testing.T) {
	data, err := Encode(hookscan.Snapshot{
		hookscan.CategoryRegistered: {"init"},
	})
	require.NoError(t, err)

	want := `{
  "registered": [
    "init"
  ],
  "fired": [],
  "registered-filter": [],
  "applied-filter": []
}
`
	assert.Equal(t, want, string(data))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hooks-snapshot.json")
	snap := FromResults(sampleResults())

	require.NoError(t, Save(path, snap))

	loaded, ok := Load(path)
	require.True(t, ok)
	assert.Equal(t, snap, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should not be left behind")
}

func TestSaveLoad_NormalizesMissingCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, Save(path, hookscan.Snapshot{hookscan.CategoryRegistered: {"init"}}))

	loaded, ok := Load(path)
	require.True(t, ok)
	assert.Equal(t, hookscan.Snapshot{
		hookscan.CategoryRegistered:       {"init"},
		hookscan.CategoryFired:            {},
		hookscan.CategoryRegisteredFilter: {},
		hookscan.CategoryAppliedFilter:    {},
	}, loaded)
}

func TestSave_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, Save(path, hookscan.Snapshot{hookscan.CategoryFired: {"old"}}))
	require.NoError(t, Save(path, hookscan.Snapshot{hookscan.CategoryFired: {"new"}}))

	loaded, ok := Load(path)
	require.True(t, ok)
	assert.Equal(t, []string{"new"}, loaded[hookscan.CategoryFired])
}

func TestSave_FailsWhenParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := Save(filepath.Join(blocker, "snap.json"), hookscan.Snapshot{})
	assert.Error(t, err)
}

func TestLoad_Absent(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content *string
	}{
		{"missing file", nil},
		{"invalid json", strPtr("{not json")},
		{"array", strPtr(`["init"]`)},
		{"string", strPtr(`"init"`)},
		{"null", strPtr(`null`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0644))
			}
			snap, ok := Load(path)
			assert.False(t, ok)
			assert.Nil(t, snap)
		})
	}
}

func TestLoad_DirectoryIsAbsent(t *testing.T) {
	_, ok := Load(t.TempDir())
	assert.False(t, ok)
}

func TestLoad_KeepsUnknownKeysAndSkipsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	content := `{"registered": ["init"], "legacy": ["x"], "fired": 3, "applied-filter": null}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	snap, ok := Load(path)
	require.True(t, ok)
	assert.Equal(t, []string{"init"}, snap[hookscan.CategoryRegistered])
	assert.Equal(t, []string{"x"}, snap["legacy"])
	assert.NotContains(t, snap, hookscan.CategoryFired)
	assert.Equal(t, []string{}, snap[hookscan.CategoryAppliedFilter])
}

func strPtr(s string) *string { return &s }
