package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func swipe(g *GestureRecognizer, from, to int) Intent {
	g.Start(from)
	g.Move(to)
	return g.End()
}

func TestGestureRecognizer_Classify(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     Intent
	}{
		{"swipe left is next", 200, 100, IntentNext},
		{"swipe right is prev", 100, 200, IntentPrev},
		{"sub threshold", 100, 70, IntentNone},
		{"exactly threshold", 100, 50, IntentNone},
		{"one past threshold", 100, 49, IntentNext},
		{"one past threshold reverse", 49, 100, IntentPrev},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGestureRecognizer(DefaultSwipeThreshold)
			assert.Equal(t, tt.want, swipe(g, tt.from, tt.to))
		})
	}
}

func TestGestureRecognizer_ResetsAfterEnd(t *testing.T) {
	g := NewGestureRecognizer(0)

	assert.Equal(t, IntentNone, swipe(g, 100, 70))
	start, last := g.Pending()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, last)

	assert.Equal(t, IntentNext, swipe(g, 200, 100))
	start, last = g.Pending()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, last)
}

func TestGestureRecognizer_LastMoveWins(t *testing.T) {
	g := NewGestureRecognizer(50)
	g.Start(100)
	g.Move(300)
	g.Move(20)
	g.Move(90)

	assert.Equal(t, IntentNone, g.End())
}

func TestGestureRecognizer_NewStartDiscardsIncomplete(t *testing.T) {
	g := NewGestureRecognizer(50)
	g.Start(400)
	g.Move(100)

	g.Start(100)
	g.Move(90)
	assert.Equal(t, IntentNone, g.End())
}

func TestGestureRecognizer_TapDoesNotNavigate(t *testing.T) {
	g := NewGestureRecognizer(50)
	g.Start(300)
	assert.Equal(t, IntentNone, g.End())
}

func TestGestureRecognizer_Threshold(t *testing.T) {
	assert.Equal(t, DefaultSwipeThreshold, NewGestureRecognizer(0).Threshold())
	assert.Equal(t, DefaultSwipeThreshold, NewGestureRecognizer(-5).Threshold())

	g := NewGestureRecognizer(10)
	assert.Equal(t, 10, g.Threshold())
	assert.Equal(t, IntentNext, swipe(g, 100, 89))
}

func TestGestureRecognizer_Handle(t *testing.T) {
	g := NewGestureRecognizer(50)

	assert.Equal(t, IntentNone, g.Handle(TouchEvent{Phase: TouchStart, X: 100}))
	assert.Equal(t, IntentNone, g.Handle(TouchEvent{Phase: TouchMove, X: 200}))
	assert.Equal(t, IntentPrev, g.Handle(TouchEvent{Phase: TouchEnd}))
}

func TestGestureRecognizer_MoveWithoutStart(t *testing.T) {
	g := NewGestureRecognizer(50)
	g.Move(500)
	assert.Equal(t, IntentNone, g.End())

	start, last := g.Pending()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, last)
}
