package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/hookscan/internal/ui"
	"github.com/vvka-141/hookscan/pkg/hookscan"
)

// section is the display metadata of a category.
type section struct {
	Title  string
	Call   string
	Symbol string
}

var sections = map[hookscan.Category]section{
	hookscan.CategoryRegistered:       {Title: "Actions registered", Call: "add_action", Symbol: ui.SymbolPlus},
	hookscan.CategoryFired:            {Title: "Actions fired", Call: "do_action", Symbol: ui.SymbolArrowRight},
	hookscan.CategoryRegisteredFilter: {Title: "Filters registered", Call: "add_filter", Symbol: ui.SymbolPlus},
	hookscan.CategoryAppliedFilter:    {Title: "Filters applied", Call: "apply_filters", Symbol: ui.SymbolArrowRight},
}

// Reporter writes human-readable reports to an output stream.
type Reporter struct {
	out        io.Writer
	styler     ui.Styler
	workingDir string
}

// New creates a Reporter. Paths under workingDir are shown relative to it;
// pass "" to always show paths unmodified. A nil styler means plain text.
func New(out io.Writer, styler ui.Styler, workingDir string) *Reporter {
	if styler == nil {
		styler = ui.Plain{}
	}
	return &Reporter{
		out:        out,
		styler:     styler,
		workingDir: workingDir,
	}
}

// Render prints every non-empty category with its hooks sorted by name,
// followed by a summary line.
func (r *Reporter) Render(rs hookscan.ResultSet) error {
	var b strings.Builder
	s := r.styler

	b.WriteString(s.Render(ui.RoleTitle, "Hook scan results") + "\n\n")

	for _, c := range hookscan.Categories() {
		names := rs.Names(c)
		if len(names) == 0 {
			continue
		}
		sec := sections[c]

		header := fmt.Sprintf("%s %s (%s) [%d]", sec.Symbol, sec.Title, sec.Call, len(names))
		b.WriteString(s.Render(ui.CategoryRole(c), header) + "\n")

		width := 0
		for _, name := range names {
			width = max(width, lipgloss.Width(name))
		}

		for _, name := range names {
			occurrences := rs[c][name]
			padded := name + strings.Repeat(" ", width-lipgloss.Width(name))

			var where string
			if len(occurrences) == 1 {
				where = fmt.Sprintf("%s:%d", r.shortenPath(occurrences[0].File), occurrences[0].Line)
			} else {
				where = fmt.Sprintf("%d occurrences", len(occurrences))
			}
			fmt.Fprintf(&b, "    %s  %s\n", s.Render(ui.RoleHook, padded), s.Render(ui.RoleMuted, where))
		}
		b.WriteString("\n")
	}

	total := rs.TotalCount()
	if total == 0 {
		b.WriteString(s.Render(ui.RoleWarning, "No hooks found.") + "\n\n")
	}
	b.WriteString(summary(rs, s) + "\n")

	_, err := io.WriteString(r.out, b.String())
	return err
}

// summary builds "Total: N unique hooks (registered: 2, fired: 1)".
func summary(rs hookscan.ResultSet, s ui.Styler) string {
	total := rs.TotalCount()
	line := s.Render(ui.RoleTitle, fmt.Sprintf("Total: %d unique %s", total, plural(total, "hook", "hooks")))

	var parts []string
	for _, c := range hookscan.Categories() {
		if n := rs.Count(c); n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", c, n))
		}
	}
	if len(parts) > 0 {
		line += " (" + strings.Join(parts, ", ") + ")"
	}
	return line
}

// RenderDiff prints whether the hooks match the snapshot and, if not, which
// hooks were added and removed.
func (r *Reporter) RenderDiff(diff hookscan.Diff) error {
	var b strings.Builder
	s := r.styler

	if diff.Match {
		b.WriteString(s.Render(ui.RoleSuccess, ui.SymbolCheck+" Hooks match snapshot") + "\n")
		_, err := io.WriteString(r.out, b.String())
		return err
	}

	b.WriteString(s.Render(ui.RoleError, ui.SymbolCross+" Hooks differ from snapshot") + "\n")

	writeChanges(&b, s, "Added", diff.Added, ui.SymbolPlus, ui.RoleAdded)
	writeChanges(&b, s, "Removed", diff.Removed, ui.SymbolMinus, ui.RoleRemoved)

	b.WriteString("\n" + s.Render(ui.RoleMuted, "Run with --update to refresh the snapshot.") + "\n")

	_, err := io.WriteString(r.out, b.String())
	return err
}

// RenderSaved confirms that a snapshot was written to path.
func (r *Reporter) RenderSaved(path string, snap hookscan.Snapshot) error {
	total := 0
	for _, c := range hookscan.Categories() {
		total += len(snap[c])
	}
	line := fmt.Sprintf("%s Snapshot saved to %s (%d %s)",
		ui.SymbolCheck, r.shortenPath(path), total, plural(total, "hook", "hooks"))
	_, err := io.WriteString(r.out, r.styler.Render(ui.RoleSuccess, line)+"\n")
	return err
}

func writeChanges(b *strings.Builder, s ui.Styler, title string, changes map[hookscan.Category][]string, symbol string, role ui.Role) {
	if len(changes) == 0 {
		return
	}
	b.WriteString("\n" + s.Render(ui.RoleTitle, title+":") + "\n")
	for _, c := range hookscan.Categories() {
		names := changes[c]
		if len(names) == 0 {
			continue
		}
		b.WriteString("  " + s.Render(ui.CategoryRole(c), string(c)) + "\n")
		for _, name := range names {
			b.WriteString("    " + s.Render(role, symbol+" "+name) + "\n")
		}
	}
}

// shortenPath strips the working directory prefix for display.
func (r *Reporter) shortenPath(path string) string {
	return ShortenPath(path, r.workingDir)
}

// ShortenPath returns path without the workingDir prefix and any leading
// separators left behind. Paths outside workingDir are returned unchanged.
// The prefix test is textual, as a plain string comparison.
func ShortenPath(path, workingDir string) string {
	if workingDir == "" || !strings.HasPrefix(path, workingDir) {
		return path
	}
	trimmed := strings.TrimLeft(strings.TrimPrefix(path, workingDir), `/\`)
	if trimmed == "" {
		return path
	}
	return trimmed
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
