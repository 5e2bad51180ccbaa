package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/colonyops/invite/internal/core/guestbook"
	"github.com/colonyops/invite/internal/data/db"
)

const (
	guestbookList = `
		SELECT id, name, password_hash, message, created_at
		FROM guestbook_entries
		WHERE wedding_id = ?
		ORDER BY created_at DESC, id`
	guestbookGet = `
		SELECT id, name, password_hash, message, created_at
		FROM guestbook_entries
		WHERE wedding_id = ? AND id = ?`
	guestbookInsert = `
		INSERT INTO guestbook_entries (id, wedding_id, name, password_hash, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	guestbookDelete = `
		DELETE FROM guestbook_entries WHERE wedding_id = ? AND id = ?`
)

// GuestbookStore implements guestbook.Store using SQLite. Every query is
// scoped to one wedding.
type GuestbookStore struct {
	db        *db.DB
	weddingID string
}

var _ guestbook.Store = (*GuestbookStore)(nil)

// NewGuestbookStore creates a new SQLite-backed guestbook store.
func NewGuestbookStore(db *db.DB, weddingID string) *GuestbookStore {
	return &GuestbookStore{db: db, weddingID: weddingID}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (guestbook.Entry, error) {
	var (
		e         guestbook.Entry
		createdAt int64
	)
	if err := row.Scan(&e.ID, &e.Name, &e.PasswordHash, &e.Message, &createdAt); err != nil {
		return guestbook.Entry{}, err
	}
	e.CreatedAt = time.Unix(0, createdAt).UTC()
	return e, nil
}

// List returns all entries ordered by newest first.
func (s *GuestbookStore) List(ctx context.Context) ([]guestbook.Entry, error) {
	rows, err := s.db.Conn().QueryContext(ctx, guestbookList, s.weddingID)
	if err != nil {
		return nil, fmt.Errorf("list guestbook entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []guestbook.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan guestbook entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns an entry by ID. Returns guestbook.ErrNotFound if not found.
func (s *GuestbookStore) Get(ctx context.Context, id string) (guestbook.Entry, error) {
	e, err := scanEntry(s.db.Conn().QueryRowContext(ctx, guestbookGet, s.weddingID, id))
	if IsNotFoundError(err) {
		return guestbook.Entry{}, fmt.Errorf("get %q: %w", id, guestbook.ErrNotFound)
	}
	if err != nil {
		return guestbook.Entry{}, fmt.Errorf("get guestbook entry: %w", err)
	}
	return e, nil
}

// Insert stores a new entry.
func (s *GuestbookStore) Insert(ctx context.Context, e guestbook.Entry) error {
	_, err := s.db.Conn().ExecContext(ctx, guestbookInsert,
		e.ID, s.weddingID, e.Name, e.PasswordHash, e.Message, e.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert guestbook entry: %w", err)
	}
	return nil
}

// Delete removes an entry inside a transaction, running check against the
// stored row first. Returns guestbook.ErrNotFound if the entry does not exist.
func (s *GuestbookStore) Delete(ctx context.Context, id string, check func(guestbook.Entry) error) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		e, err := scanEntry(tx.QueryRowContext(ctx, guestbookGet, s.weddingID, id))
		if IsNotFoundError(err) {
			return fmt.Errorf("delete %q: %w", id, guestbook.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("get guestbook entry: %w", err)
		}

		if check != nil {
			if err := check(e); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, guestbookDelete, s.weddingID, id); err != nil {
			return fmt.Errorf("delete guestbook entry: %w", err)
		}
		return nil
	})
}
