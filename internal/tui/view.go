package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/invite/internal/core/config"
	"github.com/colonyops/invite/internal/core/gallery"
	"github.com/colonyops/invite/internal/core/invitation"
	"github.com/colonyops/invite/internal/core/styles"
)

const (
	cardWidth  = 28
	cardHeight = 4 // border + title + url
	cardGap    = 1

	defaultWidth  = 80
	defaultHeight = 24

	// header and footer rows reserved around the cards
	chromeHeight = 7
)

func (m Model) dims() (int, int) {
	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	return w, h
}

// columns is the number of cards per grid row.
func (m Model) columns() int {
	w, _ := m.dims()
	return max(1, (w+cardGap)/(cardWidth+cardGap))
}

// rowsFit is the number of card rows that fit between header and footer.
func (m Model) rowsFit() int {
	_, h := m.dims()
	return max(1, (h-chromeHeight)/cardHeight)
}

// View renders the page, with the lightbox over it while open.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	if m.quitting {
		return ""
	}
	if m.viewer.IsOpen() {
		w, h := m.dims()
		return m.renderLightbox(w, h)
	}
	return m.renderPage()
}

func (m Model) renderPage() string {
	sections := []string{m.renderHeader()}

	items := m.visible()
	switch {
	case len(items) == 0:
		sections = append(sections, styles.MutedStyle.Render(styles.IconCamera+"  No photos yet"))
	case m.layout == config.LayoutSlider:
		sections = append(sections, m.renderSlider(items))
	default:
		sections = append(sections, m.renderGrid(items))
	}

	if m.hasMore() {
		remaining := m.viewer.Images().Len() - len(items)
		sections = append(sections, styles.ShowMoreStyle.Render(fmt.Sprintf("m: show %d more", remaining)))
	}

	sections = append(sections, m.renderFooter(len(items)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render(fmt.Sprintf("%s  %s & %s",
		styles.IconHeart, m.couple.Groom.Name, m.couple.Bride.Name))

	var details []string
	if start, err := m.event.Start(m.now().Location()); err == nil {
		details = append(details, styles.IconCalendar+" "+invitation.FormatDateTime(start))
		if days, err := m.event.DaysUntil(m.now()); err == nil {
			details = append(details, invitation.DDay(days))
		}
	}
	if m.event.VenueName != "" {
		venue := m.event.VenueName
		if m.event.HallName != "" {
			venue += " " + m.event.HallName
		}
		details = append(details, styles.IconMapPin+" "+venue)
	}
	if len(details) == 0 {
		return title
	}

	sep := " " + styles.IconDot + " "
	return lipgloss.JoinVertical(lipgloss.Left, title, styles.SubtitleStyle.Render(strings.Join(details, sep)))
}

func (m Model) renderCard(img gallery.Image, index int, selected bool) string {
	inner := cardWidth - 4
	title := ansi.Truncate(altText(img, index), inner, "…")
	url := ansi.Truncate(img.URL, inner, "…")

	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	return style.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.CardTitleStyle.Render(title),
		styles.CardURLStyle.Render(url),
	))
}

func (m Model) renderGrid(items []gallery.Image) string {
	cols := m.columns()
	fit := m.rowsFit()

	var rows []string
	for start := m.offset * cols; start < len(items) && len(rows) < fit; start += cols {
		end := min(start+cols, len(items))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.renderCard(items[i], i, i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSlider renders a single row of cards windowed around the cursor.
func (m Model) renderSlider(items []gallery.Image) string {
	w, _ := m.dims()
	fit := max(1, (w-4+cardGap)/(cardWidth+cardGap))
	start := max(0, min(m.cursor-fit/2, len(items)-fit))
	end := min(start+fit, len(items))

	parts := []string{sliderArrow(styles.IconPrev, start > 0)}
	for i := start; i < end; i++ {
		parts = append(parts, m.renderCard(items[i], i, i == m.cursor))
	}
	parts = append(parts, sliderArrow(styles.IconNext, end < len(items)))
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func sliderArrow(icon string, more bool) string {
	if !more {
		return styles.NavArrowStyle.Render(" ")
	}
	return styles.NavArrowStyle.Render(icon)
}

func (m Model) renderFooter(shown int) string {
	help := helpLine(m.keys.Left, m.keys.Right, m.keys.Open, m.keys.Quit)
	if m.hasMore() {
		help = helpLine(m.keys.Left, m.keys.Right, m.keys.Open, m.keys.ShowMore, m.keys.Quit)
	}
	if shown > 0 {
		help = fmt.Sprintf("%d/%d  %s", m.cursor+1, shown, help)
	}
	return styles.HelpStyle.Render(help)
}

func altText(img gallery.Image, index int) string {
	if img.Alt != "" {
		return img.Alt
	}
	return fmt.Sprintf("Photo %d", index+1)
}
