package invitation

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_Start(t *testing.T) {
	e := Event{Date: "2026-05-23", Time: "14:30"}
	start, err := e.Start(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 23, 14, 30, 0, 0, time.UTC), start)

	e.Time = ""
	start, err = e.Start(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 23, 0, 0, 0, 0, time.UTC), start)

	_, err = Event{Date: "23/05/2026"}.Start(time.UTC)
	assert.Error(t, err)
}

func TestEvent_DaysUntil(t *testing.T) {
	e := Event{Date: "2026-05-23", Time: "14:00"}

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"weeks before", time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), 22},
		{"late the night before", time.Date(2026, 5, 22, 23, 59, 0, 0, time.UTC), 1},
		{"same day after ceremony", time.Date(2026, 5, 23, 18, 0, 0, 0, time.UTC), 0},
		{"after", time.Date(2026, 5, 26, 8, 0, 0, 0, time.UTC), -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.DaysUntil(tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDDay(t *testing.T) {
	assert.Equal(t, "D-12", DDay(12))
	assert.Equal(t, "D-Day", DDay(0))
	assert.Equal(t, "D+3", DDay(-3))
}

func TestMarkdown(t *testing.T) {
	c := Couple{
		Groom:    Person{Name: "Minjun", Father: Parent{Name: "Jiho"}, Mother: Parent{Name: "Sora"}},
		Bride:    Person{Name: "Seoyeon", EnglishName: "Grace"},
		Greeting: "Please join us\nas we begin our life together.",
	}
	e := Event{Date: "2026-05-23", Time: "14:00", VenueName: "Garden Hall", HallName: "Rose Room"}
	now := time.Date(2026, 5, 13, 12, 0, 0, 0, time.UTC)

	md := Markdown(Details{Couple: c, Event: e}, now)
	assert.Contains(t, md, "# Minjun & Seoyeon")
	assert.Contains(t, md, "> Please join us\n> as we begin our life together.")
	assert.Contains(t, md, "Seoyeon (Grace)")
	assert.Contains(t, md, "child of Jiho and Sora")
	assert.Contains(t, md, "Saturday, May 23, 2026 at 2:00 PM")
	assert.Contains(t, md, "D-10")
	assert.Contains(t, md, "Garden Hall, Rose Room")
}

func TestMarkdown_OmitsEmptySections(t *testing.T) {
	md := Markdown(Details{Event: Event{Date: "2026-05-23", CalendarEnabled: true}}, time.Now())
	assert.NotContains(t, md, "Getting there")
	assert.NotContains(t, md, "Sending a gift")
	assert.NotContains(t, md, "Add to calendar", "calendar needs an address")
}

func TestMarkdown_LocationAndAccounts(t *testing.T) {
	d := Details{
		Event: Event{Date: "2026-05-23", Time: "14:00", VenueName: "Garden Hall", CalendarEnabled: true},
		Location: Location{
			Address:       "123 Teheran-ro, Gangnam-gu, Seoul",
			DetailAddress: "3F",
			Coordinates:   Coordinates{Lat: 37.5, Lng: 127.03},
			Transportation: Transportation{
				Subway:  "Line 2, Gangnam station exit 3",
				Parking: "Two hours free",
			},
		},
		Accounts: Accounts{
			Groom: []BankAccount{{Bank: "Shinhan", AccountNumber: "110-123-456789", Holder: "Minjun"}},
		},
	}
	now := time.Date(2026, 5, 13, 12, 0, 0, 0, time.UTC)

	md := Markdown(d, now)
	assert.Contains(t, md, "## Getting there")
	assert.Contains(t, md, "- **Address:** 123 Teheran-ro, Gangnam-gu, Seoul (3F)")
	assert.Contains(t, md, "- **Subway:** Line 2, Gangnam station exit 3")
	assert.Contains(t, md, "- **Parking:** Two hours free")
	assert.NotContains(t, md, "**Bus:**")
	assert.Contains(t, md, "[Kakao Map](https://map.kakao.com/link/map/Garden%20Hall,37.5,127.03)")
	assert.Contains(t, md, "[Add to calendar](https://calendar.google.com/calendar/render?")

	assert.Contains(t, md, "## Sending a gift")
	assert.Contains(t, md, "**Groom's side**")
	assert.Contains(t, md, "- Shinhan 110-123-456789 (Minjun)")
	assert.NotContains(t, md, "Bride's side")
}

func TestMarkdown_CalendarDisabled(t *testing.T) {
	d := Details{
		Event:    Event{Date: "2026-05-23", Time: "14:00", VenueName: "Garden Hall"},
		Location: Location{Address: "Seoul"},
	}
	assert.NotContains(t, Markdown(d, time.Now()), "Add to calendar")
}

func TestCalendarURL(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	e := Event{Date: "2025-05-15", Time: "14:00", VenueName: "Grand Hall", HallName: "3F Grand"}
	l := Location{Address: "123 Teheran-ro"}

	link, err := CalendarURL(e, l, kst)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "calendar.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Grand Hall wedding", q.Get("text"))
	assert.Equal(t, "20250515T050000Z/20250515T070000Z", q.Get("dates"))
	assert.Equal(t, "123 Teheran-ro", q.Get("location"))
	assert.Equal(t, "3F Grand", q.Get("details"))

	_, err = CalendarURL(Event{Date: "someday"}, l, kst)
	assert.Error(t, err)
}

func TestLocation_MapLinks(t *testing.T) {
	l := Location{Address: "Seoul"}
	links := l.MapLinks("Garden Hall")
	require.Len(t, links, 1, "kakao needs coordinates")
	assert.Equal(t, "https://map.naver.com/v5/search/Garden%20Hall", links[0].URL)

	l.Coordinates = Coordinates{Lat: 37.5, Lng: 127}
	links = l.MapLinks("")
	require.Len(t, links, 2)
	assert.Equal(t, "https://map.kakao.com/link/map/Seoul,37.5,127", links[1].URL)

	assert.Nil(t, Location{}.MapLinks(""))
}
