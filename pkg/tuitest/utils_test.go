package tuitest

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[31mred\x1b[0m   \nplain  \n\n"
	assert.Equal(t, "red\nplain", StripANSI(in))
}

func TestKeyMessages(t *testing.T) {
	tests := []struct {
		msg  tea.Msg
		want string
	}{
		{KeyPress('q'), "q"},
		{KeyLeft(), "left"},
		{KeyRight(), "right"},
		{KeyEsc(), "esc"},
		{KeyEnter(), "enter"},
	}

	for _, tt := range tests {
		km, ok := tt.msg.(tea.KeyPressMsg)
		if assert.True(t, ok) {
			assert.Equal(t, tt.want, km.String())
		}
	}
}
