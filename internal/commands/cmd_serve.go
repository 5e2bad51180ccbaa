package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/invite/internal/core/logging"
	"github.com/colonyops/invite/internal/invite"
	"github.com/colonyops/invite/internal/server"
)

type ServeCmd struct {
	flags *Flags
	app   *invite.App

	addr string
}

// NewServeCmd creates a new serve command
func NewServeCmd(flags *Flags, app *invite.App) *ServeCmd {
	return &ServeCmd{flags: flags, app: app}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Serve the gallery, guestbook and RSVP as a JSON API",
		UsageText: "invite serve [--addr :8080]",
		Description: `Starts the HTTP API:

  GET    /api/gallery
  GET    /api/guestbook
  POST   /api/guestbook
  DELETE /api/guestbook/{id}
  POST   /api/rsvp
  GET    /api/rsvp/summary
  GET    /metrics
  GET    /healthz

Guestbook and RSVP routes are only mounted when enabled in config.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address (defaults to server.addr)",
				Sources:     cli.EnvVars("INVITE_ADDR"),
				Destination: &cmd.addr,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ServeCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.app.Config

	addr := cfg.Server.Addr
	if cmd.addr != "" {
		addr = cmd.addr
	}

	opts := server.Options{
		WeddingID: cfg.WeddingID,
		Gallery:   cmd.app.Images,
		Logger:    logging.Component("server"),
	}
	if cfg.Guestbook.Enabled {
		opts.Guestbook = cmd.app.Guestbook
	}
	if cfg.RSVP.Enabled {
		opts.RSVP = cmd.app.RSVP
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(opts).ListenAndServe(ctx, addr)
}
