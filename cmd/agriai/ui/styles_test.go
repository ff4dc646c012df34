package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogoCarriesBanner(t *testing.T) {
	logo := Logo(NewStyles(LightTheme()))
	assert.Contains(t, logo, "/_\\")
	assert.Contains(t, logo, "|___/")
}

func TestRenderDividerWidth(t *testing.T) {
	s := NewStyles(DarkTheme())
	assert.Equal(t, 12, strings.Count(s.RenderDivider(12), "─"))
	assert.Equal(t, 0, strings.Count(s.RenderDivider(0), "─"))
}
