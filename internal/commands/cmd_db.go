package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/invite/internal/core/logging"
	"github.com/colonyops/invite/internal/data/db"
	"github.com/colonyops/invite/internal/invite"
)

type DBCmd struct {
	flags *Flags
	app   *invite.App

	steps int
	yes   bool
}

// NewDBCmd creates a new db command
func NewDBCmd(flags *Flags, app *invite.App) *DBCmd {
	return &DBCmd{flags: flags, app: app}
}

// Register adds the db command to the application
func (cmd *DBCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "db",
		Usage: "Database maintenance commands",
		Commands: []*cli.Command{
			{
				Name:      "rollback",
				Usage:     "Revert the most recent schema migrations",
				UsageText: "invite db rollback [--steps N] [--yes]",
				Description: `Reverts the last N applied migrations. Reverting a migration drops its
tables together with their guestbook or RSVP data. The next invite
command re-applies the migrations on an empty schema.`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "steps",
						Usage:       "number of migrations to revert",
						Value:       1,
						Destination: &cmd.steps,
					},
					&cli.BoolFlag{
						Name:        "yes",
						Aliases:     []string{"y"},
						Usage:       "skip the confirmation prompt",
						Destination: &cmd.yes,
					},
				},
				Action: cmd.runRollback,
			},
		},
	})

	return app
}

func (cmd *DBCmd) runRollback(ctx context.Context, c *cli.Command) error {
	if !cmd.yes {
		confirmed := false
		ok, err := runForm(huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Revert %d migration(s)?", cmd.steps)).
				Description("Data in the reverted tables is lost.").
				Value(&confirmed),
		)))
		if err != nil || !ok || !confirmed {
			return err
		}
	}

	if err := db.MigrateDown(ctx, cmd.app.DB.Conn(), cmd.steps, logging.Component("db")); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}

	success(c.Root().Writer, "Reverted %d migration(s)", cmd.steps)
	return nil
}
