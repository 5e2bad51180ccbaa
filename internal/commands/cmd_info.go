package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/invite/internal/core/invitation"
	"github.com/colonyops/invite/internal/core/styles"
	"github.com/colonyops/invite/internal/invite"
)

type InfoCmd struct {
	flags *Flags
	app   *invite.App

	raw   bool
	width int
}

// NewInfoCmd creates a new info command
func NewInfoCmd(flags *Flags, app *invite.App) *InfoCmd {
	return &InfoCmd{flags: flags, app: app}
}

// Register adds the info command to the application
func (cmd *InfoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "info",
		Usage:     "Show the invitation: couple, greeting and ceremony details",
		UsageText: "invite info [--raw] [--width N]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "word wrap width",
				Value:       80,
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *InfoCmd) run(_ context.Context, c *cli.Command) error {
	cfg := cmd.app.Config
	md := invitation.Markdown(cfg.Details(), time.Now())
	out := c.Root().Writer

	if cmd.raw {
		_, err := fmt.Fprint(out, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(cmd.width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render invitation: %w", err)
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}
