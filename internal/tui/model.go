// Package tui implements the Bubble Tea gallery page and its lightbox.
package tui

import (
	"slices"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/invite/internal/core/config"
	"github.com/colonyops/invite/internal/core/gallery"
	"github.com/colonyops/invite/internal/core/invitation"
)

// Options configures the gallery page.
type Options struct {
	Couple       invitation.Couple
	Event        invitation.Event
	Images       gallery.Collection
	Layout       string
	InitialCount int
	Logger       zerolog.Logger

	// ViewerOptions configure the lightbox. The page adds itself as the
	// viewer's ScrollLocker and Focuser.
	ViewerOptions []gallery.Option

	// Now is used for the D-day countdown. Defaults to time.Now.
	Now func() time.Time
}

// page is the ScrollLocker and Focuser handed to the viewer. The model keeps
// it behind a pointer so copies of Model share it with the viewer.
type page struct {
	scrollLocked   bool
	dismissFocused bool
}

func (p *page) ScrollLocked() bool          { return p.scrollLocked }
func (p *page) SetScrollLocked(locked bool) { p.scrollLocked = locked }
func (p *page) FocusDismiss()               { p.dismissFocused = true }

// focusSettledMsg carries a focus ticket back into the update loop once its
// delay has elapsed.
type focusSettledMsg struct {
	ticket gallery.FocusTicket
}

// Model is the gallery page: an invitation header, a grid or slider of image
// cards, and the lightbox overlay.
type Model struct {
	couple invitation.Couple
	event  invitation.Event
	now    func() time.Time

	viewer *gallery.Viewer
	page   *page
	keys   KeyMap
	logger zerolog.Logger

	layout       string
	initialCount int
	showAll      bool

	width    int
	height   int
	cursor   int
	offset   int // first visible grid row
	quitting bool
}

// New builds the page and its viewer.
func New(opts Options) Model {
	p := &page{}

	viewerOpts := append(slices.Clone(opts.ViewerOptions), gallery.WithPage(p), gallery.WithFocuser(p))
	v := gallery.NewViewer(opts.Images, viewerOpts...)
	v.Observe(func(t gallery.Transition) {
		if t.Opened() || t.Closed() {
			p.dismissFocused = false
		}
	})

	layout := opts.Layout
	if layout == "" {
		layout = config.LayoutGrid
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return Model{
		couple:       opts.Couple,
		event:        opts.Event,
		now:          now,
		viewer:       v,
		page:         p,
		keys:         DefaultKeyMap(),
		logger:       opts.Logger,
		layout:       layout,
		initialCount: opts.InitialCount,
	}
}

// Viewer returns the lightbox driven by the page.
func (m Model) Viewer() *gallery.Viewer {
	return m.viewer
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ensureVisible()
		return m, nil
	case focusSettledMsg:
		if m.viewer.SettleFocus(msg.ticket) {
			m.logger.Debug().Uint64("gen", msg.ticket.Gen).Msg("dismiss focused")
		}
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// The viewer sees every key first. While it is closed the hub has no
	// listener and nothing is consumed.
	if m.viewer.Keys.Dispatch(gallery.KeyEvent{Key: msg.String()}) {
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	if m.page.ScrollLocked() {
		return m.handleLockedKey(msg)
	}

	items := m.visible()
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Open):
		if len(items) == 0 {
			return m, nil
		}
		if err := m.viewer.Open(m.cursor); err != nil {
			return m, nil
		}
		return m, m.focusCmd()
	case key.Matches(msg, m.keys.ShowMore):
		if m.hasMore() {
			m.showAll = true
		}
	case key.Matches(msg, m.keys.Left):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor = min(m.cursor+1, max(len(items)-1, 0))
	case key.Matches(msg, m.keys.Up):
		if m.layout == config.LayoutGrid && m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.layout == config.LayoutGrid && (m.cursor/cols+1)*cols < len(items) {
			m.cursor = min(m.cursor+cols, len(items)-1)
		}
	case key.Matches(msg, m.keys.PageUp):
		if m.layout == config.LayoutGrid {
			m.cursor = max(m.cursor-cols*m.rowsFit(), m.cursor%cols)
		}
	case key.Matches(msg, m.keys.PageDown):
		if m.layout == config.LayoutGrid && len(items) > 0 {
			m.cursor = min(m.cursor+cols*m.rowsFit(), len(items)-1)
		}
	}

	m.ensureVisible()
	return m, nil
}

// handleLockedKey handles keys the viewer left alone while it is open. The
// page does not scroll or move its cursor; only the dismiss control reacts.
func (m Model) handleLockedKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Open) && m.page.dismissFocused {
		m.viewer.Close()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.viewer.Dispose()
	m.quitting = true
	return m, tea.Quit
}

// focusCmd schedules the deferred focus move issued by the last open.
func (m Model) focusCmd() tea.Cmd {
	t, ok := m.viewer.PendingFocus()
	if !ok {
		return nil
	}
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return focusSettledMsg{ticket: t}
	})
}

// visible returns the cards currently rendered. The grid shows a bounded
// prefix until "show more"; the slider always carries every image.
func (m Model) visible() []gallery.Image {
	images := m.viewer.Images()
	if m.layout == config.LayoutSlider || m.showAll {
		return images.All()
	}
	return images.Prefix(m.initialCount)
}

func (m Model) hasMore() bool {
	return m.layout == config.LayoutGrid &&
		!m.showAll &&
		m.initialCount > 0 &&
		m.viewer.Images().Len() > m.initialCount
}

func (m *Model) ensureVisible() {
	if m.layout != config.LayoutGrid {
		return
	}
	row := m.cursor / m.columns()
	fit := m.rowsFit()
	switch {
	case row < m.offset:
		m.offset = row
	case row >= m.offset+fit:
		m.offset = row - fit + 1
	}
}
