// Package report renders scan results and snapshot diffs for humans and
// serializes them as JSON for tools.
//
// All text output goes through a ui.Styler, so the same characters are
// produced whether or not colour is enabled.
package report
