// Package snapshot reduces scan results to a name-only form, persists it,
// and compares two snapshots to find added and removed hooks.
//
// A snapshot file is a JSON object with one key per category, each holding
// a sorted array of hook names, followed by a single trailing newline:
//
//	{
//	  "registered": ["init", "wp_loaded"],
//	  "fired": [],
//	  "registered-filter": ["the_title"],
//	  "applied-filter": []
//	}
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"github.com/vvka-141/hookscan/pkg/hookscan"
)

// document fixes the key order of the encoded snapshot.
type document struct {
	Registered       []string `json:"registered"`
	Fired            []string `json:"fired"`
	RegisteredFilter []string `json:"registered-filter"`
	AppliedFilter    []string `json:"applied-filter"`
}

// FromResults derives the snapshot of rs: for every category, the hook names
// sorted ascending without duplicates. Occurrence data is dropped.
func FromResults(rs hookscan.ResultSet) hookscan.Snapshot {
	snap := make(hookscan.Snapshot, 4)
	for _, c := range hookscan.Categories() {
		snap[c] = slices.Compact(rs.Names(c))
	}
	return snap
}

// Encode renders snap as indented JSON with the four category keys in display
// order and a trailing newline. Missing categories are written as empty arrays.
func Encode(snap hookscan.Snapshot) ([]byte, error) {
	doc := document{
		Registered:       nonNil(snap[hookscan.CategoryRegistered]),
		Fired:            nonNil(snap[hookscan.CategoryFired]),
		RegisteredFilter: nonNil(snap[hookscan.CategoryRegisteredFilter]),
		AppliedFilter:    nonNil(snap[hookscan.CategoryAppliedFilter]),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}

// Save writes snap to path atomically: the content goes to a temporary file
// in the same directory which is then renamed over path. Parent directories
// are created as needed.
//
// The file always holds all four categories: categories missing from snap
// are written as empty lists and come back from Load as empty, non-nil
// slices. Keys outside the fixed category set are not written.
func Save(path string, snap hookscan.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Load reads a snapshot from path. It returns false when the file does not
// exist, cannot be read, or is not a JSON object. Entries whose value is not
// an array of strings are ignored; no other shape validation is performed.
func Load(path string) (hookscan.Snapshot, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil, false
	}

	snap := make(hookscan.Snapshot, len(raw))
	for key, value := range raw {
		var names []string
		if err := json.Unmarshal(value, &names); err != nil {
			continue
		}
		snap[hookscan.Category(key)] = nonNil(names)
	}
	return snap, true
}
