package invitation

import (
	"fmt"
	"net/url"
	"time"
)

// ceremonyLength is the span given to calendar entries.
const ceremonyLength = 2 * time.Hour

// Coordinates locate the venue for map links.
type Coordinates struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// IsZero reports whether no coordinates were configured.
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

// Transportation holds directions to the venue by mode of travel.
type Transportation struct {
	Subway  string `yaml:"subway,omitempty"`
	Bus     string `yaml:"bus,omitempty"`
	Car     string `yaml:"car,omitempty"`
	Parking string `yaml:"parking,omitempty"`
}

// Location is where the ceremony takes place and how to get there.
type Location struct {
	Address        string         `yaml:"address"`
	DetailAddress  string         `yaml:"detail_address,omitempty"`
	Coordinates    Coordinates    `yaml:"coordinates"`
	Transportation Transportation `yaml:"transportation"`
}

// MapLink is a named web link to the venue on a map service.
type MapLink struct {
	Name string
	URL  string
}

// MapLinks returns Naver and Kakao map links for the venue. Kakao needs
// coordinates; without them only the Naver search link is returned.
func (l Location) MapLinks(venue string) []MapLink {
	if venue == "" {
		venue = l.Address
	}
	if venue == "" {
		return nil
	}

	links := []MapLink{{Name: "Naver Map", URL: "https://map.naver.com/v5/search/" + url.PathEscape(venue)}}
	if !l.Coordinates.IsZero() {
		links = append(links, MapLink{
			Name: "Kakao Map",
			URL:  fmt.Sprintf("https://map.kakao.com/link/map/%s,%g,%g", url.PathEscape(venue), l.Coordinates.Lat, l.Coordinates.Lng),
		})
	}
	return links
}

// CalendarURL builds a Google Calendar link for a two hour entry starting at
// the event time in loc, placed at the location's address.
func CalendarURL(e Event, l Location, loc *time.Location) (string, error) {
	start, err := e.Start(loc)
	if err != nil {
		return "", err
	}
	end := start.Add(ceremonyLength)

	const stamp = "20060102T150405Z"
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", e.VenueName+" wedding")
	params.Set("dates", start.UTC().Format(stamp)+"/"+end.UTC().Format(stamp))
	params.Set("location", l.Address)
	params.Set("details", e.HallName)

	return "https://calendar.google.com/calendar/render?" + params.Encode(), nil
}
