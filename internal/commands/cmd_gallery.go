package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/invite/internal/invite"
	"github.com/colonyops/invite/pkg/iojson"
)

type GalleryCmd struct {
	flags *Flags
	app   *invite.App

	// flags
	jsonOutput bool
	script     iojson.FileReader[[]invite.ReplayEvent]
}

// NewGalleryCmd creates a new gallery command
func NewGalleryCmd(flags *Flags, app *invite.App) *GalleryCmd {
	return &GalleryCmd{flags: flags, app: app}
}

// Register adds the gallery command to the application
func (cmd *GalleryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "gallery",
		Usage: "Inspect and drive the photo gallery",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List gallery images in display order",
				UsageText: "invite gallery ls [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runLs,
			},
			{
				Name:      "replay",
				Usage:     "Replay a scripted event sequence against the lightbox",
				UsageText: "invite gallery replay [-f script.json]",
				Description: `Reads a JSON array of events and prints the lightbox state after each one
as a JSON line.

Event types: open (index), close, next, prev, key (key), touchstart (x),
touchmove (x), touchend, settle.

Key names may be terminal names (esc, left) or DOM names (Escape, ArrowLeft).
"settle" delivers the focus move scheduled by the most recent open.`,
				Flags:  []cli.Flag{cmd.script.Flag()},
				Action: cmd.runReplay,
			},
		},
	})

	return app
}

func (cmd *GalleryCmd) runLs(_ context.Context, c *cli.Command) error {
	images := cmd.app.Images.All()
	out := c.Root().Writer

	if len(images) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No images configured\n")
		}
		return nil
	}

	if cmd.jsonOutput {
		for _, img := range images {
			if err := iojson.WriteLine(out, img); err != nil {
				return fmt.Errorf("encode image: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tID\tALT\tURL")
	for i, img := range images {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, img.ID, img.Alt, img.URL)
	}
	return w.Flush()
}

func (cmd *GalleryCmd) runReplay(_ context.Context, c *cli.Command) error {
	events, err := cmd.script.Read()
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	r := invite.NewReplayer(cmd.app.Images, cmd.app.ViewerOptions()...)
	out := c.Root().Writer
	return r.Run(events, func(step invite.ReplayStep) error {
		return iojson.WriteLine(out, step)
	})
}
