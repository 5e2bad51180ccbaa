package gallery

// Hub is a registry of event listeners, the stand-in for a page-level event
// target. Listeners are called in subscription order; a listener returns true
// when it handled the event and the default action should be suppressed.
type Hub[E any] struct {
	next      int
	listeners map[int]func(E) bool
	order     []int
}

// NewHub returns an empty hub.
func NewHub[E any]() *Hub[E] {
	return &Hub[E]{listeners: make(map[int]func(E) bool)}
}

// Subscribe attaches fn and returns the handle that detaches it.
func (h *Hub[E]) Subscribe(fn func(E) bool) *Subscription {
	id := h.next
	h.next++
	h.listeners[id] = fn
	h.order = append(h.order, id)

	return &Subscription{release: func() { h.remove(id) }}
}

// Dispatch delivers ev to every attached listener and reports whether any of
// them handled it.
func (h *Hub[E]) Dispatch(ev E) bool {
	handled := false
	// Listeners may unsubscribe while handling (esc closes the viewer), so
	// iterate a snapshot.
	ids := append([]int(nil), h.order...)
	for _, id := range ids {
		fn, ok := h.listeners[id]
		if !ok {
			continue
		}
		if fn(ev) {
			handled = true
		}
	}
	return handled
}

// Len returns the number of attached listeners.
func (h *Hub[E]) Len() int {
	return len(h.listeners)
}

func (h *Hub[E]) remove(id int) {
	if _, ok := h.listeners[id]; !ok {
		return
	}
	delete(h.listeners, id)
	for i, v := range h.order {
		if v == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Subscription is a disposable listener registration.
type Subscription struct {
	release func()
}

// Close detaches the listener. Calling Close more than once is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.release == nil {
		return
	}
	s.release()
	s.release = nil
}

// Active reports whether the listener is still attached.
func (s *Subscription) Active() bool {
	return s != nil && s.release != nil
}
