// Package rsvp records attendance replies.
package rsvp

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// ErrClosed is returned when a reply arrives after the RSVP deadline.
var ErrClosed = errors.New("rsvp is closed")

// phonePattern accepts Korean mobile numbers with optional hyphens,
// e.g. 010-1234-5678 or 01012345678.
var phonePattern = regexp.MustCompile(`^01[0-9]-?[0-9]{3,4}-?[0-9]{4}$`)

// Response is a stored reply.
type Response struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Attending     bool      `json:"attending"`
	GuestCount    int       `json:"guest_count"`
	MealAttending *bool     `json:"meal_attending,omitempty"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Input is what a guest submits.
type Input struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Attending     bool   `json:"attending"`
	GuestCount    int    `json:"guest_count"`
	MealAttending *bool  `json:"meal_attending,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Validate checks the input.
func (in Input) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if strings.TrimSpace(in.Name) == "" {
		errs = errs.Append("name", errors.New("name is required"))
	}
	if !ValidPhone(in.Phone) {
		errs = errs.Append("phone", errors.New("phone must look like 010-1234-5678"))
	}
	if in.Attending && in.GuestCount < 1 {
		errs = errs.Append("guest_count", errors.New("attending replies need at least one guest"))
	}
	if in.GuestCount < 0 {
		errs = errs.Append("guest_count", errors.New("guest count cannot be negative"))
	}

	return errs.ToError()
}

// ValidPhone reports whether phone is an accepted mobile number.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// Summary aggregates replies.
type Summary struct {
	Responses     int `json:"responses"`
	Attending     int `json:"attending"`
	Declined      int `json:"declined"`
	Guests        int `json:"guests"`
	MealAttending int `json:"meal_attending"`
}

// Summarize aggregates responses. Guests and meal counts only include
// attending replies.
func Summarize(responses []Response) Summary {
	var s Summary
	for _, r := range responses {
		s.Responses++
		if !r.Attending {
			s.Declined++
			continue
		}
		s.Attending++
		s.Guests += r.GuestCount
		if r.MealAttending != nil && *r.MealAttending {
			s.MealAttending += r.GuestCount
		}
	}
	return s
}

// Store persists replies for one wedding.
type Store interface {
	// List returns all replies, newest first.
	List(ctx context.Context) ([]Response, error)
	Insert(ctx context.Context, r Response) error
}
