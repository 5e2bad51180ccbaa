package gallery

import (
	"charm.land/bubbles/v2/key"
)

// KeyEvent is a key-down event. Key holds either a terminal key name ("esc",
// "left") or a DOM key name ("Escape", "ArrowLeft"); both match the same
// bindings.
type KeyEvent struct {
	Key string
}

// String returns the normalised key name, so KeyEvent can be matched with
// key.Matches.
func (k KeyEvent) String() string {
	return NormalizeKey(k.Key)
}

var domKeyNames = map[string]string{
	"Escape":     "esc",
	"Esc":        "esc",
	"ArrowLeft":  "left",
	"ArrowRight": "right",
	"ArrowUp":    "up",
	"ArrowDown":  "down",
	"Enter":      "enter",
	"Tab":        "tab",
	" ":          "space",
}

// NormalizeKey maps DOM key names onto terminal key names. Unknown names are
// returned unchanged.
func NormalizeKey(name string) string {
	if mapped, ok := domKeyNames[name]; ok {
		return mapped
	}
	return name
}

// KeyMap holds the bindings the router listens for while the viewer is open.
type KeyMap struct {
	Close key.Binding
	Prev  key.Binding
	Next  key.Binding
}

// DefaultKeyMap returns the escape/arrow bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Prev:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous")),
		Next:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
	}
}

// ShortHelp returns the bindings for a help line.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next, km.Close}
}

// KeyboardRouter maps key presses to navigation intents.
type KeyboardRouter struct {
	keys KeyMap
}

// NewKeyboardRouter returns a router for keys.
func NewKeyboardRouter(keys KeyMap) *KeyboardRouter {
	return &KeyboardRouter{keys: keys}
}

// Route returns the intent for ev. handled is true when the key was consumed
// and its default action should be suppressed; unknown keys are left alone.
func (r *KeyboardRouter) Route(ev KeyEvent) (intent Intent, handled bool) {
	switch {
	case key.Matches(ev, r.keys.Close):
		return IntentClose, true
	case key.Matches(ev, r.keys.Prev):
		return IntentPrev, true
	case key.Matches(ev, r.keys.Next):
		return IntentNext, true
	default:
		return IntentNone, false
	}
}

// KeyMap returns the router's bindings.
func (r *KeyboardRouter) KeyMap() KeyMap {
	return r.keys
}
