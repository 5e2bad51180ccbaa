// Package invite wires configuration, storage and the core services into the
// App that commands, the TUI and the HTTP server consume.
package invite

import (
	"fmt"
	"time"

	"github.com/colonyops/invite/internal/core/config"
	"github.com/colonyops/invite/internal/core/gallery"
	"github.com/colonyops/invite/internal/core/guestbook"
	"github.com/colonyops/invite/internal/core/logging"
	"github.com/colonyops/invite/internal/core/rsvp"
	"github.com/colonyops/invite/internal/data/db"
	"github.com/colonyops/invite/internal/data/stores"
)

// App is the central entry point for all invite operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Config    *config.Config
	DB        *db.DB
	Images    gallery.Collection
	Guestbook *guestbook.Service
	RSVP      *rsvp.Service
}

// NewApp resolves the gallery and builds the services over database.
func NewApp(cfg *config.Config, database *db.DB) (*App, error) {
	images, err := cfg.ResolveImages()
	if err != nil {
		return nil, fmt.Errorf("resolve images: %w", err)
	}

	deadline, err := cfg.RSVP.DeadlineTime(time.Local)
	if err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		DB:     database,
		Images: images,
		Guestbook: guestbook.NewService(
			stores.NewGuestbookStore(database, cfg.WeddingID),
			cfg.Guestbook.MaxLength,
			logging.Component("guestbook"),
		),
		RSVP: rsvp.NewService(
			stores.NewRSVPStore(database, cfg.WeddingID),
			deadline,
			logging.Component("rsvp"),
		),
	}, nil
}

// ViewerOptions returns the lightbox options taken from the gallery config.
// Callers append page-specific options such as WithPage and WithFocuser.
func (a *App) ViewerOptions() []gallery.Option {
	g := a.Config.Gallery
	return []gallery.Option{
		gallery.WithLogger(logging.Component("lightbox")),
		gallery.WithSwipeThreshold(g.SwipeThreshold),
		gallery.WithFocusDelay(g.FocusDelay),
		gallery.WithKeyMap(a.Config.Keybindings.KeyMap()),
	}
}
