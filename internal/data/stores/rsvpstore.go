package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/colonyops/invite/internal/core/rsvp"
	"github.com/colonyops/invite/internal/data/db"
)

const (
	rsvpList = `
		SELECT id, name, phone, attending, guest_count, meal_attending, message, created_at
		FROM rsvp_responses
		WHERE wedding_id = ?
		ORDER BY created_at DESC, id`
	rsvpInsert = `
		INSERT INTO rsvp_responses
			(id, wedding_id, name, phone, attending, guest_count, meal_attending, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

// RSVPStore implements rsvp.Store using SQLite.
type RSVPStore struct {
	db        *db.DB
	weddingID string
}

var _ rsvp.Store = (*RSVPStore)(nil)

// NewRSVPStore creates a new SQLite-backed RSVP store.
func NewRSVPStore(db *db.DB, weddingID string) *RSVPStore {
	return &RSVPStore{db: db, weddingID: weddingID}
}

// List returns all responses ordered by newest first.
func (s *RSVPStore) List(ctx context.Context) ([]rsvp.Response, error) {
	rows, err := s.db.Conn().QueryContext(ctx, rsvpList, s.weddingID)
	if err != nil {
		return nil, fmt.Errorf("list rsvp responses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var responses []rsvp.Response
	for rows.Next() {
		var (
			r         rsvp.Response
			meal      sql.NullBool
			createdAt int64
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Phone, &r.Attending, &r.GuestCount, &meal, &r.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan rsvp response: %w", err)
		}
		if meal.Valid {
			r.MealAttending = &meal.Bool
		}
		r.CreatedAt = time.Unix(0, createdAt).UTC()
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

// Insert stores a new response.
func (s *RSVPStore) Insert(ctx context.Context, r rsvp.Response) error {
	var meal sql.NullBool
	if r.MealAttending != nil {
		meal = sql.NullBool{Bool: *r.MealAttending, Valid: true}
	}

	_, err := s.db.Conn().ExecContext(ctx, rsvpInsert,
		r.ID, s.weddingID, r.Name, r.Phone, r.Attending, r.GuestCount, meal, r.Message, r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert rsvp response: %w", err)
	}
	return nil
}
