package gallery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_StartsClosed(t *testing.T) {
	c := NewController(3)
	assert.Equal(t, State{Open: false, Index: 0}, c.State())
}

func TestController_Open(t *testing.T) {
	c := NewController(3)

	require.NoError(t, c.Open(1))
	assert.Equal(t, State{Open: true, Index: 1}, c.State())

	// Opening while open only moves the index.
	require.NoError(t, c.Open(2))
	assert.Equal(t, State{Open: true, Index: 2}, c.State())
}

func TestController_OpenRejectsOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 3, 100} {
		t.Run(fmt.Sprintf("index %d", idx), func(t *testing.T) {
			c := NewController(3)
			require.NoError(t, c.Open(1))
			before := c.State()

			err := c.Open(idx)
			require.ErrorIs(t, err, ErrInvalidIndex)
			assert.Equal(t, before, c.State())
		})
	}
}

func TestController_OpenEmptyCollection(t *testing.T) {
	c := NewController(0)

	err := c.Open(0)
	require.ErrorIs(t, err, ErrEmptyCollection)
	require.ErrorIs(t, err, ErrInvalidIndex)
	assert.False(t, c.State().Open)
}

func TestController_Close(t *testing.T) {
	c := NewController(3)
	require.NoError(t, c.Open(2))

	c.Close()
	assert.Equal(t, State{Open: false, Index: 2}, c.State())
}

func TestController_ClosedIgnoresIntents(t *testing.T) {
	c := NewController(3)

	c.Next()
	c.Prev()
	c.Close()
	assert.Equal(t, State{}, c.State())
}

func TestController_FullCycle(t *testing.T) {
	for n := 2; n <= 6; n++ {
		for start := range n {
			t.Run(fmt.Sprintf("n=%d start=%d", n, start), func(t *testing.T) {
				c := NewController(n)
				require.NoError(t, c.Open(start))

				for range n {
					c.Next()
				}
				assert.Equal(t, start, c.State().Index)

				for range n {
					c.Prev()
				}
				assert.Equal(t, start, c.State().Index)
			})
		}
	}
}

func TestController_NextPrevAreInverse(t *testing.T) {
	for n := 2; n <= 5; n++ {
		for i := range n {
			c := NewController(n)
			require.NoError(t, c.Open(i))

			c.Next()
			c.Prev()
			assert.Equal(t, i, c.State().Index, "n=%d i=%d", n, i)

			c.Prev()
			c.Next()
			assert.Equal(t, i, c.State().Index, "n=%d i=%d", n, i)
		}
	}
}

func TestController_SingleImageNavigationIsNoop(t *testing.T) {
	c := NewController(1)
	require.NoError(t, c.Open(0))

	c.Next()
	assert.Equal(t, State{Open: true, Index: 0}, c.State())
	c.Prev()
	assert.Equal(t, State{Open: true, Index: 0}, c.State())
}

func TestController_EmptyNavigationIsNoop(t *testing.T) {
	c := NewController(0)
	c.Next()
	c.Prev()
	assert.Equal(t, State{}, c.State())
}

func TestController_WrapScenario(t *testing.T) {
	c := NewController(3)
	require.NoError(t, c.Open(2))

	c.Next()
	assert.Equal(t, 0, c.State().Index)

	c.Prev()
	assert.Equal(t, 2, c.State().Index)
}

func TestController_ObserverSeesOnlyChanges(t *testing.T) {
	c := NewController(2)
	var got []Transition
	c.Observe(func(tr Transition) { got = append(got, tr) })

	c.Next() // closed: ignored
	require.NoError(t, c.Open(0))
	require.NoError(t, c.Open(0)) // same state: no transition
	c.Next()
	c.Close()
	c.Close() // already closed

	require.Len(t, got, 3)
	assert.True(t, got[0].Opened())
	assert.Equal(t, IntentOpen, got[0].Intent)
	assert.Equal(t, IntentNext, got[1].Intent)
	assert.Equal(t, 1, got[1].To.Index)
	assert.True(t, got[2].Closed())
	assert.Equal(t, 1, got[2].To.Index)
}

func TestController_Apply(t *testing.T) {
	c := NewController(3)
	require.NoError(t, c.Open(0))

	c.Apply(IntentNext)
	assert.Equal(t, 1, c.State().Index)
	c.Apply(IntentPrev)
	assert.Equal(t, 0, c.State().Index)
	c.Apply(IntentNone)
	c.Apply(IntentOpen)
	assert.Equal(t, State{Open: true, Index: 0}, c.State())
	c.Apply(IntentClose)
	assert.False(t, c.State().Open)
}

func TestIntent_String(t *testing.T) {
	assert.Equal(t, "next", IntentNext.String())
	assert.Equal(t, "prev", IntentPrev.String())
	assert.Equal(t, "close", IntentClose.String())
	assert.Equal(t, "open", IntentOpen.String())
	assert.Equal(t, "none", IntentNone.String())
}
