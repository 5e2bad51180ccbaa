package tui

import (
	"fmt"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/invite/internal/core/styles"
)

const (
	frameMaxWidth  = 60
	frameMaxHeight = 12
)

// renderLightbox renders the open viewer centred on screen. Navigation arrows
// are only drawn when there is more than one image.
func (m Model) renderLightbox(width, height int) string {
	img, ok := m.viewer.Current()
	if !ok {
		return m.renderPage()
	}
	state := m.viewer.State()
	n := m.viewer.Images().Len()
	km := m.viewer.KeyMap()

	frameW := min(frameMaxWidth, max(width-10, 20))
	frameH := min(frameMaxHeight, max(height-14, 3))

	frame := lipgloss.NewStyle().
		Width(frameW).
		Height(frameH).
		Border(lipgloss.NormalBorder()).
		BorderForeground(styles.ColorSurface).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(styles.IconCamera + "\n" + ansi.Truncate(img.URL, frameW-4, "…"))

	counter := styles.CounterStyle.Render(fmt.Sprintf("%d / %d", state.Index+1, n))
	nav := counter
	help := helpLine(km.Close)
	if m.viewer.CanNavigate() {
		nav = lipgloss.JoinHorizontal(lipgloss.Center,
			styles.NavArrowStyle.Render(styles.IconPrev),
			" ", counter, " ",
			styles.NavArrowStyle.Render(styles.IconNext),
		)
		help = helpLine(km.Prev, km.Next, km.Close)
	}

	dismiss := styles.ModalButtonStyle.Render(styles.IconClose + " Close")
	if m.page.dismissFocused {
		dismiss = styles.ModalButtonSelectedStyle.Render(styles.IconClose + " Close")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.ModalTitleStyle.Render(styles.IconImage+"  "+ansi.Truncate(altText(img, state.Index), frameW, "…")),
		"",
		frame,
		"",
		nav,
		"",
		dismiss,
		styles.ModalHelpStyle.Render(help),
	)

	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(content),
	)
}
