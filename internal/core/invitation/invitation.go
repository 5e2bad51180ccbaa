// Package invitation holds the couple and event details shown on the
// invitation and renders them as markdown.
package invitation

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Parent is a parent of the bride or groom.
type Parent struct {
	Name     string `yaml:"name"`
	Phone    string `yaml:"phone,omitempty"`
	Relation string `yaml:"relation,omitempty"`
}

// Person is the bride or the groom.
type Person struct {
	Name        string `yaml:"name"`
	EnglishName string `yaml:"english_name,omitempty"`
	Phone       string `yaml:"phone,omitempty"`
	Father      Parent `yaml:"father"`
	Mother      Parent `yaml:"mother"`
}

// Couple groups both partners and the greeting text.
type Couple struct {
	Groom    Person `yaml:"groom"`
	Bride    Person `yaml:"bride"`
	Greeting string `yaml:"greeting"`
}

// Event describes the ceremony.
type Event struct {
	Date            string `yaml:"date"` // YYYY-MM-DD
	Time            string `yaml:"time"` // HH:MM
	VenueName       string `yaml:"venue_name"`
	HallName        string `yaml:"hall_name,omitempty"`
	CalendarEnabled bool   `yaml:"calendar_enabled"` // offer an add-to-calendar link
}

// Details is everything the invitation page shows.
type Details struct {
	Couple   Couple
	Event    Event
	Location Location
	Accounts Accounts
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Start parses the event date and time in loc. A missing time means
// midnight.
func (e Event) Start(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if e.Time == "" {
		t, err := time.ParseInLocation(dateLayout, e.Date, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse event date %q: %w", e.Date, err)
		}
		return t, nil
	}

	t, err := time.ParseInLocation(dateTimeLayout, e.Date+" "+e.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse event date/time %q %q: %w", e.Date, e.Time, err)
	}
	return t, nil
}

// DaysUntil returns whole calendar days from now until the event date.
// Negative values mean the event has passed.
func (e Event) DaysUntil(now time.Time) (int, error) {
	start, err := e.Start(now.Location())
	if err != nil {
		return 0, err
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	y, m, d = start.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return int(math.Round(day.Sub(today).Hours() / 24)), nil
}

// DDay formats the countdown the way invitations print it: "D-12", "D-Day",
// "D+3".
func DDay(days int) string {
	switch {
	case days > 0:
		return fmt.Sprintf("D-%d", days)
	case days == 0:
		return "D-Day"
	default:
		return fmt.Sprintf("D+%d", -days)
	}
}

// FormatDateTime renders the event start as "Saturday, May 23, 2026 at 2:00 PM".
func FormatDateTime(t time.Time) string {
	return t.Format("Monday, January 2, 2006 at 3:04 PM")
}

// Markdown renders the invitation text.
func Markdown(d Details, now time.Time) string {
	var b strings.Builder
	c, e, l := d.Couple, d.Event, d.Location

	fmt.Fprintf(&b, "# %s & %s\n\n", c.Groom.Name, c.Bride.Name)

	if c.Greeting != "" {
		for _, line := range strings.Split(strings.TrimSpace(c.Greeting), "\n") {
			fmt.Fprintf(&b, "> %s\n", line)
		}
		b.WriteString("\n")
	}

	b.WriteString("## The couple\n\n")
	writePerson(&b, "Groom", c.Groom)
	writePerson(&b, "Bride", c.Bride)
	b.WriteString("\n## The day\n\n")

	if start, err := e.Start(now.Location()); err == nil {
		fmt.Fprintf(&b, "- **When:** %s\n", FormatDateTime(start))
		if days, err := e.DaysUntil(now); err == nil {
			fmt.Fprintf(&b, "- **Countdown:** %s\n", DDay(days))
		}
	} else if e.Date != "" {
		fmt.Fprintf(&b, "- **When:** %s %s\n", e.Date, e.Time)
	}

	venue := e.VenueName
	if e.HallName != "" {
		venue += ", " + e.HallName
	}
	if venue != "" {
		fmt.Fprintf(&b, "- **Where:** %s\n", venue)
	}
	if e.CalendarEnabled && l.Address != "" {
		if link, err := CalendarURL(e, l, now.Location()); err == nil {
			fmt.Fprintf(&b, "- [Add to calendar](%s)\n", link)
		}
	}

	writeLocation(&b, e.VenueName, l)
	writeAccounts(&b, d.Accounts)

	return b.String()
}

func writeLocation(b *strings.Builder, venue string, l Location) {
	if l.Address == "" {
		return
	}

	b.WriteString("\n## Getting there\n\n")
	fmt.Fprintf(b, "- **Address:** %s", l.Address)
	if l.DetailAddress != "" {
		fmt.Fprintf(b, " (%s)", l.DetailAddress)
	}
	b.WriteString("\n")

	for _, link := range l.MapLinks(venue) {
		fmt.Fprintf(b, "- [%s](%s)\n", link.Name, link.URL)
	}

	t := l.Transportation
	for _, mode := range []struct{ label, text string }{
		{"Subway", t.Subway},
		{"Bus", t.Bus},
		{"Car", t.Car},
		{"Parking", t.Parking},
	} {
		if mode.text != "" {
			fmt.Fprintf(b, "- **%s:** %s\n", mode.label, mode.text)
		}
	}
}

func writeAccounts(b *strings.Builder, a Accounts) {
	if a.Empty() {
		return
	}

	b.WriteString("\n## Sending a gift\n\n")
	for _, side := range []struct {
		label    string
		accounts []BankAccount
	}{
		{"Groom's side", a.Groom},
		{"Bride's side", a.Bride},
	} {
		if len(side.accounts) == 0 {
			continue
		}
		fmt.Fprintf(b, "**%s**\n\n", side.label)
		for _, acct := range side.accounts {
			fmt.Fprintf(b, "- %s %s (%s)\n", acct.Bank, acct.AccountNumber, acct.Holder)
		}
		b.WriteString("\n")
	}
}

func writePerson(b *strings.Builder, role string, p Person) {
	name := p.Name
	if p.EnglishName != "" {
		name += " (" + p.EnglishName + ")"
	}
	fmt.Fprintf(b, "- **%s:** %s", role, name)

	var parents []string
	if p.Father.Name != "" {
		parents = append(parents, p.Father.Name)
	}
	if p.Mother.Name != "" {
		parents = append(parents, p.Mother.Name)
	}
	if len(parents) > 0 {
		fmt.Fprintf(b, ", child of %s", strings.Join(parents, " and "))
	}
	b.WriteString("\n")
}
