package styles

import (
	"testing"

	lipglossv1 "github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_Sorted(t *testing.T) {
	names := ThemeNames()
	assert.Equal(t, []string{"gruvbox", "rose", "tokyo-night"}, names)
}

func TestGetPalette(t *testing.T) {
	p, ok := GetPalette(DefaultTheme)
	require.True(t, ok)
	assert.NotNil(t, p.Primary)

	_, ok = GetPalette("does-not-exist")
	assert.False(t, ok)
}

func TestSetTheme_UpdatesColors(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)
	SetTheme(p)

	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p, CurrentPalette)
}

func TestSetTheme_StatusStylesFollowPalette(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("tokyo-night")
	require.True(t, ok)
	SetTheme(p)

	assert.Equal(t, p.Success, SuccessStyle.GetForeground())
	assert.Equal(t, p.Warning, WarningStyle.GetForeground())
	assert.Equal(t, p.Secondary, SubtitleStyle.GetForeground())
	assert.Equal(t, p.Secondary, CounterStyle.GetForeground())
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.H1.Color)
	assert.Equal(t, "#e8a5b4", *cfg.H1.Color)
	require.NotNil(t, cfg.Document.Color)
}

func TestColorHexPtr_Nil(t *testing.T) {
	assert.Nil(t, colorHexPtr(nil))
}

func TestFormTheme(t *testing.T) {
	theme := FormTheme()
	require.NotNil(t, theme)
	assert.Equal(t, "> ", theme.Focused.SelectSelector.Value())
	assert.Equal(t, lipglossv1.Color("#e8a5b4"), theme.Focused.Title.GetForeground())
}
