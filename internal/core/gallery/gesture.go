package gallery

// DefaultSwipeThreshold is the minimum horizontal travel, in pixels, for a
// touch to count as a swipe.
const DefaultSwipeThreshold = 50

// TouchPhase identifies the stage of a touch sequence.
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
)

// TouchEvent is a single horizontal touch sample.
type TouchEvent struct {
	Phase TouchPhase
	X     int
}

// GestureRecognizer turns one start/move/end touch sequence into a
// navigation intent. Only the start point and the latest move sample matter.
type GestureRecognizer struct {
	threshold int
	startX    int
	lastX     int
	active    bool
	moved     bool
}

// NewGestureRecognizer returns a recognizer using threshold, or
// DefaultSwipeThreshold when threshold is not positive.
func NewGestureRecognizer(threshold int) *GestureRecognizer {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &GestureRecognizer{threshold: threshold}
}

// Threshold returns the swipe threshold in pixels.
func (g *GestureRecognizer) Threshold() int {
	return g.threshold
}

// Start begins a new gesture, discarding any incomplete one.
func (g *GestureRecognizer) Start(x int) {
	g.startX = x
	g.lastX = 0
	g.active = true
	g.moved = false
}

// Move records the most recent touch position. Samples outside a started
// gesture are dropped.
func (g *GestureRecognizer) Move(x int) {
	if !g.active {
		return
	}
	g.lastX = x
	g.moved = true
}

// End classifies the gesture and resets the recorded coordinates.
// Content dragged right-to-left (start > last) means next. A touch with no
// move samples is a tap and never navigates: it is not compared against an
// implicit zero last position, so Start(200) followed by End is not a swipe.
func (g *GestureRecognizer) End() Intent {
	diff := g.startX - g.lastX
	swiped := g.active && g.moved
	g.Reset()

	if !swiped {
		return IntentNone
	}

	switch {
	case diff > g.threshold:
		return IntentNext
	case diff < -g.threshold:
		return IntentPrev
	default:
		return IntentNone
	}
}

// Handle feeds a touch event through the recognizer. It returns the intent
// produced by a TouchEnd and IntentNone for every other phase.
func (g *GestureRecognizer) Handle(ev TouchEvent) Intent {
	switch ev.Phase {
	case TouchStart:
		g.Start(ev.X)
	case TouchMove:
		g.Move(ev.X)
	case TouchEnd:
		return g.End()
	}
	return IntentNone
}

// Reset drops any gesture in progress.
func (g *GestureRecognizer) Reset() {
	g.startX, g.lastX = 0, 0
	g.active, g.moved = false, false
}

// Pending returns the recorded start and latest positions.
func (g *GestureRecognizer) Pending() (startX, lastX int) {
	return g.startX, g.lastX
}
