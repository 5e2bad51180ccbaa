package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/invite/internal/core/rsvp"
	"github.com/colonyops/invite/internal/core/styles"
	"github.com/colonyops/invite/internal/invite"
	"github.com/colonyops/invite/pkg/iojson"
)

type RSVPCmd struct {
	flags *Flags
	app   *invite.App

	// flags
	jsonOutput bool
	name       string
	phone      string
	attending  bool
	declining  bool
	guests     int
	meal       string
	message    string
}

// NewRSVPCmd creates a new rsvp command
func NewRSVPCmd(flags *Flags, app *invite.App) *RSVPCmd {
	return &RSVPCmd{flags: flags, app: app}
}

// Register adds the rsvp command to the application
func (cmd *RSVPCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "rsvp",
		Usage:  "Record and review attendance replies",
		Before: cmd.requireEnabled,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Send a reply",
				UsageText: "invite rsvp add [--name N --phone P (--attending --guests N | --declining)]",
				Description: `Records an attendance reply. Without --name, --phone and one of
--attending/--declining the reply is collected interactively.`,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "guest name", Destination: &cmd.name},
					&cli.StringFlag{Name: "phone", Usage: "mobile number, e.g. 010-1234-5678", Destination: &cmd.phone},
					&cli.BoolFlag{Name: "attending", Usage: "will attend", Destination: &cmd.attending},
					&cli.BoolFlag{Name: "declining", Usage: "will not attend", Destination: &cmd.declining},
					&cli.IntFlag{Name: "guests", Usage: "number of guests including yourself", Value: 1, Destination: &cmd.guests},
					&cli.StringFlag{Name: "meal", Usage: "staying for the meal (yes, no)", Destination: &cmd.meal},
					&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "note for the couple", Destination: &cmd.message},
				},
				Action: cmd.runAdd,
			},
			{
				Name:      "ls",
				Usage:     "List replies, newest first",
				UsageText: "invite rsvp ls [--json]",
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
				Name:      "summary",
				Usage:     "Show attendance totals",
				UsageText: "invite rsvp summary [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runSummary,
			},
		},
	})

	return app
}

func (cmd *RSVPCmd) requireEnabled(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if !cmd.app.Config.RSVP.Enabled {
		return ctx, errors.New("rsvp is disabled (rsvp.enabled)")
	}
	return ctx, nil
}

func (cmd *RSVPCmd) runAdd(ctx context.Context, c *cli.Command) error {
	if cmd.attending && cmd.declining {
		return errors.New("--attending and --declining are mutually exclusive")
	}
	if !cmd.app.RSVP.Open() {
		return rsvp.ErrClosed
	}

	in := rsvp.Input{
		Name:       cmd.name,
		Phone:      cmd.phone,
		Attending:  cmd.attending,
		GuestCount: cmd.guests,
		Message:    cmd.message,
	}
	if cmd.declining {
		in.GuestCount = 0
	}

	switch cmd.meal {
	case "":
	case "yes", "y", "true":
		in.MealAttending = ptr(true)
	case "no", "n", "false":
		in.MealAttending = ptr(false)
	default:
		return fmt.Errorf("invalid --meal %q (want yes or no)", cmd.meal)
	}

	if in.Name == "" || in.Phone == "" || (!cmd.attending && !cmd.declining) {
		ok, err := cmd.runAddForm(&in)
		if err != nil || !ok {
			return err
		}
	}

	resp, err := cmd.app.RSVP.Submit(ctx, in)
	if err != nil {
		return reportInvalid(c.Root().ErrWriter, err)
	}

	if resp.Attending {
		success(c.Root().Writer, "Thank you, %s. See you there with %d guest(s)", resp.Name, resp.GuestCount)
	} else {
		success(c.Root().Writer, "Thank you, %s. Your reply has been recorded", resp.Name)
	}
	return nil
}

func (cmd *RSVPCmd) runAddForm(in *rsvp.Input) (bool, error) {
	guests := strconv.Itoa(max(in.GuestCount, 1))
	in.Attending = !cmd.declining

	ok, err := runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Validate(required("name")).
				Value(&in.Name),
			huh.NewInput().
				Title("Phone").
				Placeholder("010-1234-5678").
				Validate(func(s string) error {
					if !rsvp.ValidPhone(s) {
						return errors.New("enter a mobile number like 010-1234-5678")
					}
					return nil
				}).
				Value(&in.Phone),
			huh.NewConfirm().
				Title("Will you attend?").
				Affirmative("Attending").
				Negative("Not attending").
				Value(&in.Attending),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Guests").
				Description("Including yourself").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return errors.New("enter a number of at least 1")
					}
					return nil
				}).
				Value(&guests),
		).WithHideFunc(func() bool { return !in.Attending }),
	))
	if err != nil || !ok {
		return ok, err
	}

	if in.Attending {
		in.GuestCount, _ = strconv.Atoi(guests)
		if cmd.app.Config.RSVP.MealOption && in.MealAttending == nil {
			meal := true
			ok, err := runForm(huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title("Will you stay for the meal?").
					Value(&meal),
			)))
			if err != nil || !ok {
				return ok, err
			}
			in.MealAttending = &meal
		}
	} else {
		in.GuestCount = 0
		in.MealAttending = nil
	}

	return true, nil
}

func (cmd *RSVPCmd) runLs(ctx context.Context, c *cli.Command) error {
	responses, err := cmd.app.RSVP.List(ctx)
	if err != nil {
		return fmt.Errorf("list rsvp: %w", err)
	}

	out := c.Root().Writer

	if len(responses) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No replies yet\n")
		}
		return nil
	}

	if cmd.jsonOutput {
		for _, r := range responses {
			if err := iojson.WriteLine(out, r); err != nil {
				return fmt.Errorf("encode response: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tPHONE\tATTENDING\tGUESTS\tMEAL\tWHEN")
	for _, r := range responses {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			r.Name, r.Phone, yesNo(r.Attending), r.GuestCount, mealLabel(r.MealAttending),
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func (cmd *RSVPCmd) runSummary(ctx context.Context, c *cli.Command) error {
	sum, err := cmd.app.RSVP.Summary(ctx)
	if err != nil {
		return fmt.Errorf("summarize rsvp: %w", err)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteLine(out, sum)
	}

	header(out, styles.IconCalendar+"  RSVP")
	_, _ = fmt.Fprintf(out, "Replies:    %d\n", sum.Responses)
	_, _ = fmt.Fprintf(out, "Attending:  %s\n", styles.SuccessStyle.Render(strconv.Itoa(sum.Attending)))
	_, _ = fmt.Fprintf(out, "Declined:   %s\n", styles.MutedStyle.Render(strconv.Itoa(sum.Declined)))
	_, _ = fmt.Fprintf(out, "Guests:     %d\n", sum.Guests)
	if cmd.app.Config.RSVP.MealOption {
		_, _ = fmt.Fprintf(out, "Meal:       %d\n", sum.MealAttending)
	}
	if !cmd.app.RSVP.Open() {
		_, _ = fmt.Fprintln(out, styles.WarningStyle.Render("Replies are closed"))
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func mealLabel(m *bool) string {
	if m == nil {
		return "-"
	}
	return yesNo(*m)
}

func ptr[T any](v T) *T {
	return &v
}
