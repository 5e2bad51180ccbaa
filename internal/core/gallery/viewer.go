package gallery

import (
	"time"

	"github.com/rs/zerolog"
)

// Viewer composes the lightbox: a Controller for state, and the gesture,
// keyboard and focus collaborators that are attached only while it is open.
//
// The UI shell dispatches raw events into Keys and Touches. While the viewer
// is closed neither hub has a viewer listener, so events pass straight
// through to the rest of the page.
type Viewer struct {
	Keys    *Hub[KeyEvent]
	Touches *Hub[TouchEvent]

	images  Collection
	ctrl    *Controller
	gesture *GestureRecognizer
	router  *KeyboardRouter
	focus   *FocusManager
	logger  zerolog.Logger

	keySub   *Subscription
	touchSub *Subscription

	pendingFocus *FocusTicket
}

type viewerOptions struct {
	logger    zerolog.Logger
	threshold int
	delay     time.Duration
	keys      KeyMap
	page      ScrollLocker
	focuser   Focuser
}

// Option configures a Viewer.
type Option func(*viewerOptions)

// WithLogger sets the logger used for transition tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *viewerOptions) { o.logger = l }
}

// WithSwipeThreshold sets the swipe threshold in pixels.
func WithSwipeThreshold(px int) Option {
	return func(o *viewerOptions) { o.threshold = px }
}

// WithFocusDelay sets the delay before focus moves to the dismiss control.
func WithFocusDelay(d time.Duration) Option {
	return func(o *viewerOptions) { o.delay = d }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(o *viewerOptions) { o.keys = km }
}

// WithPage sets the page whose scrolling is locked while open.
func WithPage(p ScrollLocker) Option {
	return func(o *viewerOptions) { o.page = p }
}

// WithFocuser sets the receiver of the initial focus move.
func WithFocuser(f Focuser) Option {
	return func(o *viewerOptions) { o.focuser = f }
}

// NewViewer returns a closed viewer over images.
func NewViewer(images Collection, opts ...Option) *Viewer {
	o := viewerOptions{
		logger:    zerolog.Nop(),
		threshold: DefaultSwipeThreshold,
		delay:     DefaultFocusDelay,
		keys:      DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	v := &Viewer{
		Keys:    NewHub[KeyEvent](),
		Touches: NewHub[TouchEvent](),
		images:  images,
		ctrl:    NewController(images.Len()),
		gesture: NewGestureRecognizer(o.threshold),
		router:  NewKeyboardRouter(o.keys),
		focus:   NewFocusManager(o.page, o.focuser, o.delay),
		logger:  o.logger,
	}
	v.ctrl.Observe(v.onTransition)
	return v
}

// Open shows image index. Out-of-range indexes are rejected and leave the
// state unchanged.
func (v *Viewer) Open(index int) error {
	if err := v.ctrl.Open(index); err != nil {
		v.logger.Warn().Err(err).Int("index", index).Msg("rejected open")
		return err
	}
	return nil
}

// Close hides the viewer.
func (v *Viewer) Close() { v.ctrl.Close() }

// Next shows the following image.
func (v *Viewer) Next() { v.ctrl.Next() }

// Prev shows the preceding image.
func (v *Viewer) Prev() { v.ctrl.Prev() }

// State returns the current lightbox state.
func (v *Viewer) State() State { return v.ctrl.State() }

// IsOpen reports whether the viewer is shown.
func (v *Viewer) IsOpen() bool { return v.ctrl.State().Open }

// CurrentIndex returns the index of the displayed (or last displayed) image.
func (v *Viewer) CurrentIndex() int { return v.ctrl.State().Index }

// Current returns the image at the current index.
func (v *Viewer) Current() (Image, bool) { return v.images.At(v.ctrl.State().Index) }

// Images returns the collection the viewer navigates.
func (v *Viewer) Images() Collection { return v.images }

// CanNavigate reports whether next/prev controls should be offered.
func (v *Viewer) CanNavigate() bool { return v.images.CanNavigate() }

// KeyMap returns the bindings active while the viewer is open.
func (v *Viewer) KeyMap() KeyMap { return v.router.KeyMap() }

// Observe registers fn to be called after every state change.
func (v *Viewer) Observe(fn func(Transition)) { v.ctrl.Observe(fn) }

// PendingFocus returns, once, the focus ticket issued by the last open.
func (v *Viewer) PendingFocus() (FocusTicket, bool) {
	if v.pendingFocus == nil {
		return FocusTicket{}, false
	}
	t := *v.pendingFocus
	v.pendingFocus = nil
	return t, true
}

// SettleFocus applies a deferred focus move. Stale tickets are ignored.
func (v *Viewer) SettleFocus(t FocusTicket) bool {
	return v.focus.Settle(t)
}

// Dispose detaches every listener and releases the scroll lock. The viewer
// must not be used afterwards.
func (v *Viewer) Dispose() {
	v.detach()
	v.focus.Closed()
	v.pendingFocus = nil
}

func (v *Viewer) onTransition(t Transition) {
	v.logger.Debug().
		Str("intent", t.Intent.String()).
		Bool("open", t.To.Open).
		Int("from", t.From.Index).
		Int("to", t.To.Index).
		Msg("lightbox transition")

	switch {
	case t.Opened():
		v.attach()
		ticket := v.focus.Opened()
		v.pendingFocus = &ticket
	case t.Closed():
		v.detach()
		v.focus.Closed()
		v.pendingFocus = nil
	}
}

func (v *Viewer) attach() {
	if !v.keySub.Active() {
		v.keySub = v.Keys.Subscribe(v.handleKey)
	}
	if !v.touchSub.Active() {
		v.touchSub = v.Touches.Subscribe(v.handleTouch)
	}
}

func (v *Viewer) detach() {
	v.keySub.Close()
	v.touchSub.Close()
	v.gesture.Reset()
}

func (v *Viewer) handleKey(ev KeyEvent) bool {
	intent, handled := v.router.Route(ev)
	if handled {
		v.ctrl.Apply(intent)
	}
	return handled
}

func (v *Viewer) handleTouch(ev TouchEvent) bool {
	intent := v.gesture.Handle(ev)
	if intent == IntentNone {
		return false
	}
	v.ctrl.Apply(intent)
	return true
}
