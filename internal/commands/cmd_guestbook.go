package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/invite/internal/core/guestbook"
	"github.com/colonyops/invite/internal/core/invitation"
	"github.com/colonyops/invite/internal/core/styles"
	"github.com/colonyops/invite/internal/invite"
	"github.com/colonyops/invite/pkg/iojson"
)

type GuestbookCmd struct {
	flags *Flags
	app   *invite.App

	// flags
	jsonOutput bool
	input      guestbook.Input
	password   string
}

// NewGuestbookCmd creates a new guestbook command
func NewGuestbookCmd(flags *Flags, app *invite.App) *GuestbookCmd {
	return &GuestbookCmd{flags: flags, app: app}
}

// Register adds the guestbook command to the application
func (cmd *GuestbookCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "guestbook",
		Usage:  "Read and write guestbook messages",
		Before: cmd.requireEnabled,
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List messages, newest first",
				UsageText: "invite guestbook ls [--json]",
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
				Name:      "add",
				Usage:     "Leave a message",
				UsageText: "invite guestbook add [--name N --password P --message M]",
				Description: `Adds a guestbook message. Missing fields are asked for interactively.
The password is needed to delete the message later.`,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "your name", Destination: &cmd.input.Name},
					&cli.StringFlag{Name: "password", Usage: "password for deleting the message", Destination: &cmd.input.Password},
					&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "message text", Destination: &cmd.input.Message},
				},
				Action: cmd.runAdd,
			},
			{
				Name:      "rm",
				Usage:     "Delete a message",
				UsageText: "invite guestbook rm <id> [--password P]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "password", Usage: "password given when the message was left", Destination: &cmd.password},
				},
				Action: cmd.runRm,
			},
		},
	})

	return app
}

func (cmd *GuestbookCmd) requireEnabled(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if !cmd.app.Config.Guestbook.Enabled {
		return ctx, errors.New("guestbook is disabled (guestbook.enabled)")
	}
	return ctx, nil
}

func (cmd *GuestbookCmd) runLs(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.app.Guestbook.List(ctx)
	if err != nil {
		return fmt.Errorf("list guestbook: %w", err)
	}

	out := c.Root().Writer

	if len(entries) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No messages yet\n")
		}
		return nil
	}

	if cmd.jsonOutput {
		for _, e := range entries {
			if err := iojson.WriteLine(out, e); err != nil {
				return fmt.Errorf("encode entry: %w", err)
			}
		}
		return nil
	}

	header(out, styles.IconBook+"  Guestbook")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tWHEN\tMESSAGE")
	for _, e := range entries {
		msg := strings.ReplaceAll(e.Message, "\n", " ")
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.CreatedAt.Local().Format("2006-01-02 15:04"), msg)
	}
	return w.Flush()
}

func (cmd *GuestbookCmd) runAdd(ctx context.Context, c *cli.Command) error {
	in := cmd.input
	if in.Name == "" || in.Password == "" || in.Message == "" {
		ok, err := runForm(cmd.addForm(&in))
		if err != nil || !ok {
			return err
		}
	}

	entry, err := cmd.app.Guestbook.Add(ctx, in)
	if err != nil {
		return reportInvalid(c.Root().ErrWriter, err)
	}

	success(c.Root().Writer, "Message saved (%s)", entry.ID)
	return nil
}

func (cmd *GuestbookCmd) addForm(in *guestbook.Input) *huh.Form {
	maxLength := cmd.app.Config.Guestbook.MaxLength
	couple := cmd.app.Config.Couple

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Validate(required("name")).
				Value(&in.Name),
			huh.NewInput().
				Title("Password").
				Description("Needed to delete the message later").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if utf8.RuneCountInString(s) < guestbook.MinPasswordLength {
						return fmt.Errorf("at least %d characters", guestbook.MinPasswordLength)
					}
					return nil
				}).
				Value(&in.Password),
			huh.NewText().
				Title(fmt.Sprintf("Message for %s", coupleNames(couple))).
				CharLimit(maxLength).
				Validate(required("message")).
				Value(&in.Message),
		),
	)
}

func (cmd *GuestbookCmd) runRm(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return errors.New("usage: invite guestbook rm <id>")
	}

	password := cmd.password
	if password == "" {
		ok, err := runForm(huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		)))
		if err != nil || !ok {
			return err
		}
	}

	if err := cmd.app.Guestbook.Delete(ctx, id, password); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	success(c.Root().Writer, "Message deleted")
	return nil
}

func coupleNames(c invitation.Couple) string {
	switch {
	case c.Groom.Name != "" && c.Bride.Name != "":
		return c.Groom.Name + " & " + c.Bride.Name
	case c.Groom.Name != "":
		return c.Groom.Name
	case c.Bride.Name != "":
		return c.Bride.Name
	default:
		return "the couple"
	}
}
