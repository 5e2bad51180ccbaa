package rsvp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service implements RSVP operations on top of a Store.
type Service struct {
	store    Store
	deadline time.Time
	logger   zerolog.Logger
	now      func() time.Time
	newID    func() string
}

// NewService returns a Service. Replies are accepted until the end of the
// deadline day; a zero deadline never closes.
func NewService(store Store, deadline time.Time, logger zerolog.Logger) *Service {
	return &Service{
		store:    store,
		deadline: deadline,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Open reports whether replies are still accepted.
func (s *Service) Open() bool {
	if s.deadline.IsZero() {
		return true
	}
	return s.now().Before(s.deadline.AddDate(0, 0, 1))
}

// Submit validates and stores a reply.
func (s *Service) Submit(ctx context.Context, in Input) (Response, error) {
	if !s.Open() {
		return Response{}, ErrClosed
	}
	if err := in.Validate(); err != nil {
		return Response{}, err
	}

	r := Response{
		ID:         s.newID(),
		Name:       strings.TrimSpace(in.Name),
		Phone:      strings.TrimSpace(in.Phone),
		Attending:  in.Attending,
		GuestCount: in.GuestCount,
		Message:    strings.TrimSpace(in.Message),
		CreatedAt:  s.now().UTC(),
	}
	if in.MealAttending != nil {
		meal := *in.MealAttending
		r.MealAttending = &meal
	}

	if err := s.store.Insert(ctx, r); err != nil {
		return Response{}, fmt.Errorf("submit rsvp: %w", err)
	}

	s.logger.Info().Ctx(ctx).
		Str("id", r.ID).
		Bool("attending", r.Attending).
		Int("guests", r.GuestCount).
		Msg("rsvp submitted")
	return r, nil
}

// List returns every reply, newest first.
func (s *Service) List(ctx context.Context) ([]Response, error) {
	responses, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rsvp: %w", err)
	}
	return responses, nil
}

// Summary aggregates every stored reply.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	responses, err := s.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(responses), nil
}
