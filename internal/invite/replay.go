package invite

import (
	"fmt"

	"github.com/colonyops/invite/internal/core/gallery"
)

// Replay event types.
const (
	EventOpen       = "open"
	EventClose      = "close"
	EventNext       = "next"
	EventPrev       = "prev"
	EventKey        = "key"
	EventTouchStart = "touchstart"
	EventTouchMove  = "touchmove"
	EventTouchEnd   = "touchend"
	EventSettle     = "settle"
)

// ReplayEvent is one step of a replay script.
type ReplayEvent struct {
	Type  string `json:"type"`
	Index int    `json:"index,omitempty"` // open
	Key   string `json:"key,omitempty"`   // key
	X     int    `json:"x,omitempty"`     // touch events
}

// ReplayStep is the viewer state after one event.
type ReplayStep struct {
	Seq            int            `json:"seq"`
	Event          ReplayEvent    `json:"event"`
	State          gallery.State  `json:"state"`
	Image          *gallery.Image `json:"image,omitempty"`
	Handled        bool           `json:"handled"`
	ScrollLocked   bool           `json:"scroll_locked"`
	DismissFocused bool           `json:"dismiss_focused"`
	Error          string         `json:"error,omitempty"`
}

// replayPage stands in for the page while replaying.
type replayPage struct {
	locked  bool
	focused bool
}

func (p *replayPage) ScrollLocked() bool          { return p.locked }
func (p *replayPage) SetScrollLocked(locked bool) { p.locked = locked }
func (p *replayPage) FocusDismiss()               { p.focused = true }

// Replayer drives a headless viewer from scripted events. Focus tickets are
// held until a settle event instead of waiting out their delay.
type Replayer struct {
	viewer  *gallery.Viewer
	page    *replayPage
	pending *gallery.FocusTicket
	seq     int
}

// NewReplayer returns a replayer over images.
func NewReplayer(images gallery.Collection, opts ...gallery.Option) *Replayer {
	p := &replayPage{}
	opts = append(opts, gallery.WithPage(p), gallery.WithFocuser(p))
	v := gallery.NewViewer(images, opts...)
	v.Observe(func(t gallery.Transition) {
		if t.Opened() || t.Closed() {
			p.focused = false
		}
	})
	return &Replayer{viewer: v, page: p}
}

// Viewer returns the viewer being driven.
func (r *Replayer) Viewer() *gallery.Viewer {
	return r.viewer
}

// Apply feeds ev to the viewer and reports the resulting state. Rejected
// events are reported in the step rather than returned, so a script keeps
// running past them. Only an unknown event type is an error.
func (r *Replayer) Apply(ev ReplayEvent) (ReplayStep, error) {
	r.seq++
	step := ReplayStep{Seq: r.seq, Event: ev}

	switch ev.Type {
	case EventOpen:
		if err := r.viewer.Open(ev.Index); err != nil {
			step.Error = err.Error()
		} else {
			step.Handled = true
		}
	case EventClose:
		r.viewer.Close()
		step.Handled = true
	case EventNext:
		r.viewer.Next()
		step.Handled = true
	case EventPrev:
		r.viewer.Prev()
		step.Handled = true
	case EventKey:
		step.Handled = r.viewer.Keys.Dispatch(gallery.KeyEvent{Key: ev.Key})
	case EventTouchStart:
		step.Handled = r.viewer.Touches.Dispatch(gallery.TouchEvent{Phase: gallery.TouchStart, X: ev.X})
	case EventTouchMove:
		step.Handled = r.viewer.Touches.Dispatch(gallery.TouchEvent{Phase: gallery.TouchMove, X: ev.X})
	case EventTouchEnd:
		step.Handled = r.viewer.Touches.Dispatch(gallery.TouchEvent{Phase: gallery.TouchEnd, X: ev.X})
	case EventSettle:
		if r.pending != nil {
			step.Handled = r.viewer.SettleFocus(*r.pending)
			r.pending = nil
		}
	default:
		r.seq--
		return ReplayStep{}, fmt.Errorf("unknown event type %q", ev.Type)
	}

	if t, ok := r.viewer.PendingFocus(); ok {
		r.pending = &t
	}

	step.State = r.viewer.State()
	if step.State.Open {
		if img, ok := r.viewer.Current(); ok {
			step.Image = &img
		}
	}
	step.ScrollLocked = r.page.locked
	step.DismissFocused = r.page.focused
	return step, nil
}

// Run applies events in order, handing each step to emit. It stops at the
// first unknown event or emit error. The viewer is disposed afterwards.
func (r *Replayer) Run(events []ReplayEvent, emit func(ReplayStep) error) error {
	defer r.viewer.Dispose()

	for i, ev := range events {
		step, err := r.Apply(ev)
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if err := emit(step); err != nil {
			return err
		}
	}
	return nil
}
