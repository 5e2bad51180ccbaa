package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/invite/internal/core/config"
	"github.com/colonyops/invite/internal/core/logging"
	"github.com/colonyops/invite/internal/invite"
	"github.com/colonyops/invite/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *invite.App

	layout string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *invite.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "layout",
			Usage:       "gallery layout (grid, slider); overrides gallery.layout",
			Sources:     cli.EnvVars("INVITE_LAYOUT"),
			Destination: &cmd.layout,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(_ context.Context, _ *cli.Command) error {
	cfg := cmd.app.Config

	layout := cfg.Gallery.Layout
	if cmd.layout != "" {
		if cmd.layout != config.LayoutGrid && cmd.layout != config.LayoutSlider {
			return fmt.Errorf("invalid layout %q (want %s or %s)", cmd.layout, config.LayoutGrid, config.LayoutSlider)
		}
		layout = cmd.layout
	}

	m := tui.New(tui.Options{
		Couple:        cfg.Couple,
		Event:         cfg.Event,
		Images:        cmd.app.Images,
		Layout:        layout,
		InitialCount:  cfg.Gallery.InitialCount,
		Logger:        logging.Component("tui"),
		ViewerOptions: cmd.app.ViewerOptions(),
	})

	log.Debug().Int("images", cmd.app.Images.Len()).Str("layout", layout).Msg("starting gallery")

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
