package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/hookscan/internal/ui"
	"github.com/vvka-141/hookscan/pkg/hookscan"
)

func TestRenderUnified_Identical(t *testing.T) {
	snap := hookscan.Snapshot{hookscan.CategoryRegistered: {"init"}}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, ui.Plain{}, "").RenderUnified("hooks-snapshot.json", snap, snap))
	assert.Empty(t, buf.String())
}

func TestRenderUnified_Changes(t *testing.T) {
	previous := hookscan.Snapshot{hookscan.CategoryRegistered: {"init"}, hookscan.CategoryFired: {"shutdown"}}
	current := hookscan.Snapshot{hookscan.CategoryRegistered: {"init", "loaded"}}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, ui.Plain{}, "").RenderUnified("hooks-snapshot.json", previous, current))

	out := buf.String()
	assert.Contains(t, out, "--- hooks-snapshot.json")
	assert.Contains(t, out, "+++ current scan")
	assert.Contains(t, out, "@@")
	assert.Contains(t, out, `+    "loaded"`)
	assert.Contains(t, out, `-    "shutdown"`)
}

func TestUnifiedRole(t *testing.T) {
	assert.Equal(t, ui.RoleTitle, unifiedRole("--- a"))
	assert.Equal(t, ui.RoleTitle, unifiedRole("+++ b"))
	assert.Equal(t, ui.RoleMuted, unifiedRole("@@ -1,2 +1,3 @@"))
	assert.Equal(t, ui.RoleAdded, unifiedRole(`+  "x"`))
	assert.Equal(t, ui.RoleRemoved, unifiedRole(`-  "x"`))
	assert.Equal(t, ui.RolePlain, unifiedRole(`   "x"`))
}
