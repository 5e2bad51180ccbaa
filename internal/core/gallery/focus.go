package gallery

import "time"

// DefaultFocusDelay is how long the viewer is given to mount before focus
// moves to its dismiss control.
const DefaultFocusDelay = 100 * time.Millisecond

// ScrollLocker is the page whose scrolling is suspended while the viewer is
// open.
type ScrollLocker interface {
	ScrollLocked() bool
	SetScrollLocked(locked bool)
}

// Focuser moves keyboard focus to the viewer's dismiss control.
type Focuser interface {
	FocusDismiss()
}

// FocusTicket is a deferred focus move. The event loop holds it for Delay
// and hands it back to FocusManager.Settle.
type FocusTicket struct {
	Gen   uint64
	Delay time.Duration
}

// FocusManager locks page scrolling while the viewer is open and places
// initial focus on the dismiss control once the viewer has mounted.
type FocusManager struct {
	page  ScrollLocker
	focus Focuser
	delay time.Duration

	open      bool
	priorLock bool
	gen       uint64
}

// NewFocusManager returns a manager for page and focus. Either may be nil, in
// which case that half of the behaviour is skipped.
func NewFocusManager(page ScrollLocker, focus Focuser, delay time.Duration) *FocusManager {
	if delay < 0 {
		delay = 0
	}
	return &FocusManager{page: page, focus: focus, delay: delay}
}

// Opened locks scrolling, remembering the prior lock state, and returns the
// ticket for the deferred focus move.
func (f *FocusManager) Opened() FocusTicket {
	if !f.open && f.page != nil {
		f.priorLock = f.page.ScrollLocked()
		f.page.SetScrollLocked(true)
	}
	f.open = true
	f.gen++
	return FocusTicket{Gen: f.gen, Delay: f.delay}
}

// Settle performs the focus move for t. It returns false, doing nothing, when
// the viewer closed or reopened after t was issued.
func (f *FocusManager) Settle(t FocusTicket) bool {
	if !f.open || t.Gen != f.gen {
		return false
	}
	if f.focus != nil {
		f.focus.FocusDismiss()
	}
	return true
}

// Closed restores the scroll lock state captured by Opened and invalidates
// outstanding tickets.
func (f *FocusManager) Closed() {
	if !f.open {
		return
	}
	f.open = false
	f.gen++
	if f.page != nil {
		f.page.SetScrollLocked(f.priorLock)
	}
}

// Open reports whether the manager is holding the scroll lock.
func (f *FocusManager) Open() bool {
	return f.open
}
