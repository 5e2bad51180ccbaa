package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeImages() Collection {
	return NewCollection([]Image{
		{ID: "one", URL: "https://example.com/1.jpg", Alt: "first", Order: 1},
		{ID: "two", URL: "https://example.com/2.jpg", Alt: "second", Order: 2},
		{ID: "three", URL: "https://example.com/3.jpg", Alt: "third", Order: 3},
	})
}

func touch(v *Viewer, from, to int) bool {
	v.Touches.Dispatch(TouchEvent{Phase: TouchStart, X: from})
	v.Touches.Dispatch(TouchEvent{Phase: TouchMove, X: to})
	return v.Touches.Dispatch(TouchEvent{Phase: TouchEnd})
}

func TestViewer_ListenersOnlyWhileOpen(t *testing.T) {
	v := NewViewer(threeImages())
	assert.Equal(t, 0, v.Keys.Len())
	assert.Equal(t, 0, v.Touches.Len())

	require.NoError(t, v.Open(0))
	assert.Equal(t, 1, v.Keys.Len())
	assert.Equal(t, 1, v.Touches.Len())

	// Re-opening at another index does not stack listeners.
	require.NoError(t, v.Open(1))
	assert.Equal(t, 1, v.Keys.Len())

	v.Close()
	assert.Equal(t, 0, v.Keys.Len())
	assert.Equal(t, 0, v.Touches.Len())
}

func TestViewer_KeysIgnoredWhileClosed(t *testing.T) {
	v := NewViewer(threeImages())

	assert.False(t, v.Keys.Dispatch(KeyEvent{Key: "right"}))
	assert.False(t, v.Keys.Dispatch(KeyEvent{Key: "esc"}))
	assert.Equal(t, State{}, v.State())
}

func TestViewer_KeyboardScenario(t *testing.T) {
	v := NewViewer(threeImages())
	require.NoError(t, v.Open(0))

	assert.True(t, v.Keys.Dispatch(KeyEvent{Key: "ArrowRight"}))
	assert.Equal(t, 1, v.CurrentIndex())

	assert.False(t, v.Keys.Dispatch(KeyEvent{Key: "x"}))
	assert.Equal(t, 1, v.CurrentIndex())

	assert.True(t, v.Keys.Dispatch(KeyEvent{Key: "Escape"}))
	assert.False(t, v.IsOpen())

	// Listener is gone: esc after close is not handled.
	assert.False(t, v.Keys.Dispatch(KeyEvent{Key: "Escape"}))
}

func TestViewer_SwipeScenarios(t *testing.T) {
	v := NewViewer(threeImages())
	require.NoError(t, v.Open(1))

	assert.True(t, touch(v, 200, 100))
	assert.Equal(t, 2, v.CurrentIndex())

	assert.True(t, touch(v, 100, 200))
	assert.Equal(t, 1, v.CurrentIndex())

	assert.False(t, touch(v, 100, 70))
	assert.Equal(t, 1, v.CurrentIndex())
}

func TestViewer_SwipeIgnoredWhileClosed(t *testing.T) {
	v := NewViewer(threeImages())
	assert.False(t, touch(v, 300, 0))
	assert.Equal(t, State{}, v.State())
}

func TestViewer_GestureDroppedOnClose(t *testing.T) {
	v := NewViewer(threeImages())
	require.NoError(t, v.Open(0))

	v.Touches.Dispatch(TouchEvent{Phase: TouchStart, X: 400})
	v.Keys.Dispatch(KeyEvent{Key: "esc"})
	require.NoError(t, v.Open(0))

	// The half-finished gesture from before the close must not complete now.
	v.Touches.Dispatch(TouchEvent{Phase: TouchMove, X: 100})
	assert.False(t, v.Touches.Dispatch(TouchEvent{Phase: TouchEnd}))
	assert.Equal(t, 0, v.CurrentIndex())
}

func TestViewer_FocusLifecycle(t *testing.T) {
	page := &fakePage{}
	focus := &fakeFocuser{}
	v := NewViewer(threeImages(), WithPage(page), WithFocuser(focus))

	_, ok := v.PendingFocus()
	assert.False(t, ok)

	require.NoError(t, v.Open(2))
	assert.True(t, page.locked)

	ticket, ok := v.PendingFocus()
	require.True(t, ok)
	assert.Equal(t, DefaultFocusDelay, ticket.Delay)

	_, ok = v.PendingFocus()
	assert.False(t, ok, "ticket is handed out once")

	assert.True(t, v.SettleFocus(ticket))
	assert.Equal(t, 1, focus.focused)

	v.Close()
	assert.False(t, page.locked)
}

func TestViewer_FocusAfterCloseIsNoop(t *testing.T) {
	focus := &fakeFocuser{}
	v := NewViewer(threeImages(), WithFocuser(focus))

	require.NoError(t, v.Open(0))
	ticket, ok := v.PendingFocus()
	require.True(t, ok)
	v.Close()

	assert.False(t, v.SettleFocus(ticket))
	assert.Equal(t, 0, focus.focused)
}

func TestViewer_RejectsInvalidOpen(t *testing.T) {
	page := &fakePage{}
	v := NewViewer(threeImages(), WithPage(page))

	require.ErrorIs(t, v.Open(3), ErrInvalidIndex)
	assert.False(t, v.IsOpen())
	assert.False(t, page.locked)
	assert.Equal(t, 0, v.Keys.Len())
}

func TestViewer_EmptyCollection(t *testing.T) {
	v := NewViewer(NewCollection(nil))

	require.ErrorIs(t, v.Open(0), ErrEmptyCollection)
	v.Next()
	v.Prev()
	assert.Equal(t, State{}, v.State())
	assert.False(t, v.CanNavigate())
	_, ok := v.Current()
	assert.False(t, ok)
}

func TestViewer_SingleImage(t *testing.T) {
	v := NewViewer(NewCollection([]Image{{ID: "solo"}}))
	require.NoError(t, v.Open(0))

	assert.True(t, v.Keys.Dispatch(KeyEvent{Key: "right"}), "key is still consumed")
	assert.Equal(t, State{Open: true, Index: 0}, v.State())
	touch(v, 300, 0)
	assert.Equal(t, State{Open: true, Index: 0}, v.State())
	assert.False(t, v.CanNavigate())
}

func TestViewer_Current(t *testing.T) {
	v := NewViewer(threeImages())
	require.NoError(t, v.Open(2))

	img, ok := v.Current()
	require.True(t, ok)
	assert.Equal(t, "three", img.ID)

	v.Next()
	img, _ = v.Current()
	assert.Equal(t, "one", img.ID)
}

func TestViewer_Dispose(t *testing.T) {
	page := &fakePage{}
	v := NewViewer(threeImages(), WithPage(page))
	require.NoError(t, v.Open(0))

	v.Dispose()
	assert.Equal(t, 0, v.Keys.Len())
	assert.Equal(t, 0, v.Touches.Len())
	assert.False(t, page.locked)
}

func TestViewer_CustomThreshold(t *testing.T) {
	v := NewViewer(threeImages(), WithSwipeThreshold(10))
	require.NoError(t, v.Open(0))

	assert.True(t, touch(v, 100, 80))
	assert.Equal(t, 1, v.CurrentIndex())
}
