package config

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/invite/internal/core/gallery"
)

// KeyMap builds the lightbox bindings from the configured key lists. Key
// names may be terminal names ("esc") or DOM names ("Escape").
func (k Keybindings) KeyMap() gallery.KeyMap {
	defaults := gallery.DefaultKeyMap()
	return gallery.KeyMap{
		Close: binding(k.Close, "close", defaults.Close),
		Prev:  binding(k.Prev, "previous", defaults.Prev),
		Next:  binding(k.Next, "next", defaults.Next),
	}
}

func binding(keys []string, help string, fallback key.Binding) key.Binding {
	if len(keys) == 0 {
		return fallback
	}
	normalized := make([]string, len(keys))
	for i, k := range keys {
		normalized[i] = gallery.NormalizeKey(k)
	}
	return key.NewBinding(key.WithKeys(normalized...), key.WithHelp(normalized[0], help))
}
