package matcher

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/hookscan/pkg/hookscan"
)

func collect(t *testing.T, category hookscan.Category, content string) []Match {
	t.Helper()
	p, ok := PatternFor(category)
	require.True(t, ok, "no pattern for %q", category)
	return slices.Collect(p.Matches(content))
}

func names(matches []Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Name)
	}
	return out
}

func TestPatterns_FollowCategoryOrder(t *testing.T) {
	var got []hookscan.Category
	for _, p := range Patterns() {
		got = append(got, p.Category)
	}
	assert.Equal(t, hookscan.Categories(), got)
}

func TestPatternFor_Unknown(t *testing.T) {
	_, ok := PatternFor("removed")
	assert.False(t, ok)
}

func TestMatches_CallTokens(t *testing.T) {
	tests := []struct {
		category hookscan.Category
		content  string
		want     []string
	}{
		{hookscan.CategoryRegistered, `add_action('init', 'boot');`, []string{"init"}},
		{hookscan.CategoryFired, `do_action("plugin_loaded");`, []string{"plugin_loaded"}},
		{hookscan.CategoryRegisteredFilter, `add_filter( 'the_title' , 'x' );`, []string{"the_title"}},
		{hookscan.CategoryAppliedFilter, "apply_filters (\n\t'the_content', $c);", []string{"the_content"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, names(collect(t, tt.category, tt.content)))
		})
	}
}

func TestMatches_WordBoundary(t *testing.T) {
	content := `my_add_action('nope'); xadd_action('nope'); $this->add_action('yes'); Foo::add_action('also');`
	assert.Equal(t, []string{"yes", "also"}, names(collect(t, hookscan.CategoryRegistered, content)))
}

func TestMatches_CaseSensitive(t *testing.T) {
	assert.Empty(t, collect(t, hookscan.CategoryRegistered, `ADD_ACTION('init'); Add_Action('init');`))
}

func TestMatches_RequiresQuotedFirstArgument(t *testing.T) {
	content := `add_action($hook, 'cb'); add_action(HOOK, 'cb'); add_action('', 'cb');`
	assert.Empty(t, collect(t, hookscan.CategoryRegistered, content))
}

func TestMatches_CapturesFirstLiteralOnly(t *testing.T) {
	content := `do_action('first', 'second'); do_action("mixed', 'x');`
	assert.Equal(t, []string{"first", "mixed"}, names(collect(t, hookscan.CategoryFired, content)))
}

func TestMatches_DoesNotMatchLongerTokens(t *testing.T) {
	content := `do_action_ref_array('ref', $args); add_actions('plural');`
	assert.Empty(t, collect(t, hookscan.CategoryFired, content))
	assert.Empty(t, collect(t, hookscan.CategoryRegistered, content))
}

func TestMatches_LinesAndOffsets(t *testing.T) {
	content := "<?php\nadd_action('init', 'a'); add_action('init', 'b');\n\n\nadd_action(\n  'wp_loaded', 'c');\n"
	matches := collect(t, hookscan.CategoryRegistered, content)
	require.Len(t, matches, 3)

	assert.Equal(t, Match{Name: "init", Offset: 6, Line: 2}, matches[0])
	assert.Equal(t, "init", matches[1].Name)
	assert.Equal(t, 2, matches[1].Line)
	assert.Equal(t, "wp_loaded", matches[2].Name)
	assert.Equal(t, 5, matches[2].Line)

	for _, m := range matches {
		assert.Equal(t, LineAt(content, m.Offset), m.Line)
		assert.True(t, strings.HasPrefix(content[m.Offset:], "add_action"))
	}
}

func TestMatches_StopsEarly(t *testing.T) {
	p, _ := PatternFor(hookscan.CategoryFired)
	content := strings.Repeat("do_action('x');\n", 10)

	seen := 0
	for range p.Matches(content) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestLineAt(t *testing.T) {
	content := "a\nb\nc"
	assert.Equal(t, 1, LineAt(content, 0))
	assert.Equal(t, 1, LineAt(content, 1))
	assert.Equal(t, 2, LineAt(content, 2))
	assert.Equal(t, 3, LineAt(content, 4))
	assert.Equal(t, 3, LineAt(content, 100))
	assert.Equal(t, 1, LineAt(content, -1))
}

func BenchmarkMatches(b *testing.B) {
	content := strings.Repeat("add_action('init', 'boot');\nfoo();\napply_filters('the_title', $t);\n", 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range Patterns() {
			for range p.Matches(content) {
			}
		}
	}
}
