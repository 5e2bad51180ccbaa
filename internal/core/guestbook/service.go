package guestbook

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service implements guestbook operations on top of a Store.
type Service struct {
	store     Store
	maxLength int
	logger    zerolog.Logger
	now       func() time.Time
	newID     func() string
}

// NewService returns a Service. maxLength bounds message length in runes;
// zero disables the bound.
func NewService(store Store, maxLength int, logger zerolog.Logger) *Service {
	return &Service{
		store:     store,
		maxLength: maxLength,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// List returns every entry, newest first.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guestbook: %w", err)
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return entries, nil
}

// Add validates in, hashes its password, and stores a new entry.
func (s *Service) Add(ctx context.Context, in Input) (Entry, error) {
	if err := in.Validate(s.maxLength); err != nil {
		return Entry{}, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:           s.newID(),
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: hash,
		Message:      strings.TrimSpace(in.Message),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.Insert(ctx, e); err != nil {
		return Entry{}, fmt.Errorf("add guestbook entry: %w", err)
	}

	s.logger.Info().Ctx(ctx).Str("id", e.ID).Msg("guestbook entry added")
	return e, nil
}

// Delete removes entry id when password matches the one it was written with.
func (s *Service) Delete(ctx context.Context, id, password string) error {
	err := s.store.Delete(ctx, id, func(e Entry) error {
		return Verify(e.PasswordHash, password)
	})
	switch {
	case errors.Is(err, ErrPasswordMismatch):
		s.logger.Warn().Ctx(ctx).Str("id", id).Msg("guestbook delete with wrong password")
		return ErrPasswordMismatch
	case errors.Is(err, ErrNotFound):
		return err
	case err != nil:
		return fmt.Errorf("delete guestbook entry: %w", err)
	}

	s.logger.Info().Ctx(ctx).Str("id", id).Msg("guestbook entry deleted")
	return nil
}
