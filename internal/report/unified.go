package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"

	"github.com/vvka-141/hookscan/internal/snapshot"
	"github.com/vvka-141/hookscan/internal/ui"
	"github.com/vvka-141/hookscan/pkg/hookscan"
)

// unifiedContext is the number of context lines around each hunk.
const unifiedContext = 3

// RenderUnified prints a unified diff between the encoded previous and
// current snapshots. Nothing is printed when they are identical.
func (r *Reporter) RenderUnified(previousName string, previous, current hookscan.Snapshot) error {
	a, err := snapshot.Encode(previous)
	if err != nil {
		return fmt.Errorf("failed to encode previous snapshot: %w", err)
	}
	b, err := snapshot.Encode(current)
	if err != nil {
		return fmt.Errorf("failed to encode current snapshot: %w", err)
	}
	if bytes.Equal(a, b) {
		return nil
	}

	patch, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: previousName,
		ToFile:   "current scan",
		Context:  unifiedContext,
	})
	if err != nil {
		return fmt.Errorf("failed to build unified diff: %w", err)
	}
	if patch == "" {
		return nil
	}

	var out strings.Builder
	out.WriteString("\n")
	for _, line := range strings.SplitAfter(patch, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		out.WriteString(r.styler.Render(unifiedRole(text), text) + "\n")
	}

	_, err = io.WriteString(r.out, out.String())
	return err
}

func unifiedRole(line string) ui.Role {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return ui.RoleTitle
	case strings.HasPrefix(line, "@@"):
		return ui.RoleMuted
	case strings.HasPrefix(line, "+"):
		return ui.RoleAdded
	case strings.HasPrefix(line, "-"):
		return ui.RoleRemoved
	default:
		return ui.RolePlain
	}
}
