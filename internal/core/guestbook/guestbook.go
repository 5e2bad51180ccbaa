// Package guestbook manages congratulation messages left by guests. Entries
// are protected by a password chosen at write time and required to delete.
package guestbook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hay-kot/criterio"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrNotFound is returned when an entry does not exist.
	ErrNotFound = errors.New("guestbook entry not found")
	// ErrPasswordMismatch is returned when a delete presents the wrong password.
	ErrPasswordMismatch = errors.New("password does not match")
)

// MinPasswordLength is the shortest accepted entry password.
const MinPasswordLength = 4

// Entry is a stored guestbook message.
type Entry struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

// Input is what a guest submits.
type Input struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Message  string `json:"message"`
}

// Validate checks the input. maxLength bounds the message in runes; zero
// means unbounded.
func (in Input) Validate(maxLength int) error {
	var errs criterio.FieldErrorsBuilder

	if strings.TrimSpace(in.Name) == "" {
		errs = errs.Append("name", errors.New("name is required"))
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		errs = errs.Append("password", fmt.Errorf("password must be at least %d characters", MinPasswordLength))
	}

	msg := strings.TrimSpace(in.Message)
	switch {
	case msg == "":
		errs = errs.Append("message", errors.New("message is required"))
	case maxLength > 0 && utf8.RuneCountInString(msg) > maxLength:
		errs = errs.Append("message", fmt.Errorf("message must be at most %d characters", maxLength))
	}

	return errs.ToError()
}

// HashPassword returns a bcrypt hash of password. Passwords longer than
// bcrypt accepts are reported as a field error on "password".
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", criterio.NewFieldErrors("password", errors.New("password is too long"))
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify checks password against hash. A wrong password returns
// ErrPasswordMismatch.
func Verify(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("verify password: %w", err)
	}
	return nil
}

// Store persists entries for one wedding.
type Store interface {
	// List returns all entries, newest first.
	List(ctx context.Context) ([]Entry, error)
	// Get returns the entry with id or an error wrapping ErrNotFound.
	Get(ctx context.Context, id string) (Entry, error)
	Insert(ctx context.Context, e Entry) error
	// Delete removes the entry with id or returns an error wrapping ErrNotFound.
	// A non-nil check sees the stored entry first and aborts the delete by
	// returning an error; lookup, check and removal are atomic.
	Delete(ctx context.Context, id string, check func(Entry) error) error
}
