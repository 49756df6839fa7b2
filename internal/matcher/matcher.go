// Package matcher finds hook call sites in raw file content.
//
// Each hook category has one fixed pattern: the call token anchored on a
// word boundary, an opening parenthesis and a quoted first argument. Only
// the first quoted literal is captured and embedded quotes are not
// unescaped, so `add_action( "init", ...)` and `add_action('init', ...)`
// both yield "init" while `my_add_action('init')` yields nothing.
package matcher

import (
	"iter"
	"regexp"
	"strings"

	"github.com/vvka-141/hookscan/pkg/hookscan"
)

// Pattern binds a hook category to the regular expression that finds its call sites.
type Pattern struct {
	Category hookscan.Category
	Call     string
	re       *regexp.Regexp
}

// Match is a single hook call site found in content.
type Match struct {
	Name   string
	Offset int // byte offset of the call token
	Line   int // 1-based
}

func newPattern(category hookscan.Category, call string) Pattern {
	return Pattern{
		Category: category,
		Call:     call,
		re:       regexp.MustCompile(`\b` + regexp.QuoteMeta(call) + `\s*\(\s*['"]([^'"]+)['"]`),
	}
}

// patterns is indexed in hookscan.Categories() order.
var patterns = []Pattern{
	newPattern(hookscan.CategoryRegistered, "add_action"),
	newPattern(hookscan.CategoryFired, "do_action"),
	newPattern(hookscan.CategoryRegisteredFilter, "add_filter"),
	newPattern(hookscan.CategoryAppliedFilter, "apply_filters"),
}

// Patterns returns the fixed pattern table in category display order.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// PatternFor returns the pattern of category, or false for an unknown category.
func PatternFor(category hookscan.Category) (Pattern, bool) {
	for _, p := range patterns {
		if p.Category == category {
			return p, true
		}
	}
	return Pattern{}, false
}

// Regexp returns the expression source, mostly useful in verbose output.
func (p Pattern) Regexp() string {
	return p.re.String()
}

// Matches yields the non-overlapping matches of p in content, left to right.
// Line numbers are computed incrementally, so consuming the whole sequence
// costs a single pass over content.
func (p Pattern) Matches(content string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		line, counted := 1, 0
		for _, loc := range p.re.FindAllStringSubmatchIndex(content, -1) {
			start := loc[0]
			line += strings.Count(content[counted:start], "\n")
			counted = start

			if !yield(Match{Name: content[loc[2]:loc[3]], Offset: start, Line: line}) {
				return
			}
		}
	}
}

// LineAt converts a byte offset into a 1-based line number.
func LineAt(content string, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	if offset < 0 {
		offset = 0
	}
	return strings.Count(content[:offset], "\n") + 1
}
