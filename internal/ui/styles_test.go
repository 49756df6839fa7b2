package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/hookscan/pkg/hookscan"
)

func TestNewStyler_Disabled(t *testing.T) {
	s := NewStyler(&bytes.Buffer{}, false)
	_, ok := s.(Plain)
	assert.True(t, ok, "expected Plain styler, got %T", s)
	assert.Equal(t, "init", s.Render(RoleHook, "init"))
}

func TestPalette_EmitsANSI(t *testing.T) {
	s := NewStyler(&bytes.Buffer{}, true)

	out := s.Render(RoleSuccess, "ok")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "ok")
	assert.NotEqual(t, "ok", out)
}

func TestPalette_PassThrough(t *testing.T) {
	p := NewPalette(&bytes.Buffer{})
	assert.Equal(t, "text", p.Render(RolePlain, "text"))
	assert.Equal(t, "", p.Render(RoleTitle, ""))
}

func TestPalette_CoversEveryCategory(t *testing.T) {
	p := NewPalette(&bytes.Buffer{})
	for _, c := range hookscan.Categories() {
		role := CategoryRole(c)
		assert.NotEqual(t, RolePlain, role, "category %q has no role", c)
		assert.True(t, strings.Contains(p.Render(role, "x"), "\x1b["), "category %q is not styled", c)
	}
	assert.Equal(t, RolePlain, CategoryRole("unknown"))
}
