// Package ui holds terminal presentation concerns: colour capability
// detection and the Styler strategy the reporter renders through.
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vvka-141/hookscan/pkg/hookscan"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorAccent  = lipgloss.Color("170") // Magenta
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Role names what a piece of text is, independent of how it is shown.
type Role int

const (
	RolePlain Role = iota
	RoleTitle
	RoleMuted
	RoleSuccess
	RoleError
	RoleWarning
	RoleAdded
	RoleRemoved
	RoleHook
	RoleRegistered
	RoleFired
	RoleRegisteredFilter
	RoleAppliedFilter
)

// CategoryRole returns the role used to colour a category's section.
func CategoryRole(c hookscan.Category) Role {
	switch c {
	case hookscan.CategoryRegistered:
		return RoleRegistered
	case hookscan.CategoryFired:
		return RoleFired
	case hookscan.CategoryRegisteredFilter:
		return RoleRegisteredFilter
	case hookscan.CategoryAppliedFilter:
		return RoleAppliedFilter
	default:
		return RolePlain
	}
}

// Styler decorates text for a role. Implementations must not change the
// visible characters, only add styling around them.
type Styler interface {
	Render(role Role, text string) string
}

// Plain is a Styler that returns text unchanged.
type Plain struct{}

// Render returns text as is.
func (Plain) Render(_ Role, text string) string { return text }

// Palette is a lipgloss-backed Styler emitting ANSI escape sequences.
type Palette struct {
	styles map[Role]lipgloss.Style
}

// NewStyler returns a Palette bound to w when colour is enabled and Plain otherwise.
func NewStyler(w io.Writer, enabled bool) Styler {
	if !enabled {
		return Plain{}
	}
	return NewPalette(w)
}

// NewPalette builds the colour palette for w. The renderer is pinned to the
// 256-colour profile because the caller has already decided colour is wanted.
func NewPalette(w io.Writer) *Palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	return &Palette{styles: map[Role]lipgloss.Style{
		RoleTitle:            r.NewStyle().Bold(true).Foreground(ColorPrimary),
		RoleMuted:            r.NewStyle().Foreground(ColorMuted),
		RoleSuccess:          r.NewStyle().Bold(true).Foreground(ColorSuccess),
		RoleError:            r.NewStyle().Bold(true).Foreground(ColorError),
		RoleWarning:          r.NewStyle().Foreground(ColorWarning),
		RoleAdded:            r.NewStyle().Foreground(ColorSuccess),
		RoleRemoved:          r.NewStyle().Foreground(ColorError),
		RoleHook:             r.NewStyle().Bold(true),
		RoleRegistered:       r.NewStyle().Bold(true).Foreground(ColorSuccess),
		RoleFired:            r.NewStyle().Bold(true).Foreground(ColorPrimary),
		RoleRegisteredFilter: r.NewStyle().Bold(true).Foreground(ColorWarning),
		RoleAppliedFilter:    r.NewStyle().Bold(true).Foreground(ColorAccent),
	}}
}

// Render applies the role's style; unknown roles and empty text pass through.
func (p *Palette) Render(role Role, text string) string {
	style, ok := p.styles[role]
	if !ok || text == "" {
		return text
	}
	return style.Render(text)
}

// Symbols for visual feedback.
const (
	SymbolCheck      = "✓"
	SymbolCross      = "✗"
	SymbolArrowRight = "→"
	SymbolBullet     = "•"
	SymbolPlus       = "+"
	SymbolMinus      = "-"
)
