package styles

import (
	"image/color"

	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
)

// FormTheme returns a huh theme using the active palette. huh still renders
// with lipgloss v1, so palette colours are passed across as hex strings.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := v1Color(ColorPrimary)
	fg := v1Color(ColorForeground)
	muted := v1Color(ColorMuted)
	errc := v1Color(ColorError)

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Title = lipglossv1.NewStyle().Foreground(primary).Bold(true)
	t.Focused.Description = lipglossv1.NewStyle().Foreground(muted)
	t.Focused.ErrorIndicator = lipglossv1.NewStyle().Foreground(errc).SetString(" *")
	t.Focused.ErrorMessage = lipglossv1.NewStyle().Foreground(errc)
	t.Focused.SelectSelector = lipglossv1.NewStyle().Foreground(primary).SetString("> ")
	t.Focused.SelectedOption = lipglossv1.NewStyle().Foreground(primary)
	t.Focused.UnselectedOption = lipglossv1.NewStyle().Foreground(fg)
	t.Focused.FocusedButton = lipglossv1.NewStyle().
		Foreground(v1Color(ColorBackground)).
		Background(primary).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = lipglossv1.NewStyle().
		Foreground(muted).
		Padding(0, 1)
	t.Focused.TextInput.Cursor = lipglossv1.NewStyle().Foreground(primary)
	t.Focused.TextInput.Placeholder = lipglossv1.NewStyle().Foreground(muted)
	t.Focused.TextInput.Prompt = lipglossv1.NewStyle().Foreground(primary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipglossv1.HiddenBorder())
	t.Blurred.Title = lipglossv1.NewStyle().Foreground(muted)

	return t
}

func v1Color(c color.Color) lipglossv1.TerminalColor {
	hex := colorHexPtr(c)
	if hex == nil {
		return lipglossv1.NoColor{}
	}
	return lipglossv1.Color(*hex)
}
