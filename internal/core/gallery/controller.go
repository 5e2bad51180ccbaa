package gallery

import "fmt"

// Intent is a navigation request produced by a click, gesture or key press.
type Intent int

const (
	IntentNone Intent = iota
	IntentOpen
	IntentClose
	IntentNext
	IntentPrev
)

func (i Intent) String() string {
	switch i {
	case IntentOpen:
		return "open"
	case IntentClose:
		return "close"
	case IntentNext:
		return "next"
	case IntentPrev:
		return "prev"
	default:
		return "none"
	}
}

// State is the lightbox state read by the presentation layer.
type State struct {
	Open  bool `json:"open"`
	Index int  `json:"index"`
}

// Transition describes a state change and the intent that caused it.
type Transition struct {
	From   State
	To     State
	Intent Intent
}

// Opened reports whether the transition went from closed to open.
func (t Transition) Opened() bool {
	return !t.From.Open && t.To.Open
}

// Closed reports whether the transition went from open to closed.
func (t Transition) Closed() bool {
	return t.From.Open && !t.To.Open
}

// Controller is the lightbox state machine. It is the only writer of State;
// every other component requests changes through Open, Close, Next and Prev.
//
// Requests that do not apply to the current state (navigation while closed,
// navigation over a single image) are ignored rather than reported.
type Controller struct {
	n         int
	state     State
	observers []func(Transition)
}

// NewController returns a closed controller for a collection of n images.
func NewController(n int) *Controller {
	return &Controller{n: max(n, 0)}
}

// Observe registers fn to be called after every state change.
func (c *Controller) Observe(fn func(Transition)) {
	c.observers = append(c.observers, fn)
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Len returns the size of the collection the controller navigates.
func (c *Controller) Len() int {
	return c.n
}

// Open shows the image at index. It is valid from either state; opening while
// already open only moves the index.
func (c *Controller) Open(index int) error {
	if c.n == 0 {
		return ErrEmptyCollection
	}
	if index < 0 || index >= c.n {
		return fmt.Errorf("open %d of %d: %w", index, c.n, ErrInvalidIndex)
	}
	c.set(State{Open: true, Index: index}, IntentOpen)
	return nil
}

// Close hides the viewer, keeping the current index.
func (c *Controller) Close() {
	if !c.state.Open {
		return
	}
	c.set(State{Open: false, Index: c.state.Index}, IntentClose)
}

// Next advances to the following image, wrapping from the last to the first.
func (c *Controller) Next() {
	if !c.state.Open || c.n <= 1 {
		return
	}
	c.set(State{Open: true, Index: (c.state.Index + 1) % c.n}, IntentNext)
}

// Prev retreats to the preceding image, wrapping from the first to the last.
func (c *Controller) Prev() {
	if !c.state.Open || c.n <= 1 {
		return
	}
	c.set(State{Open: true, Index: (c.state.Index - 1 + c.n) % c.n}, IntentPrev)
}

// Apply dispatches a navigation intent. IntentOpen is not accepted here since
// it needs an index; use Open.
func (c *Controller) Apply(intent Intent) {
	switch intent {
	case IntentClose:
		c.Close()
	case IntentNext:
		c.Next()
	case IntentPrev:
		c.Prev()
	}
}

func (c *Controller) set(next State, intent Intent) {
	prev := c.state
	if prev == next {
		return
	}
	c.state = next
	for _, fn := range c.observers {
		fn(Transition{From: prev, To: next, Intent: intent})
	}
}
