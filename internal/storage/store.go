package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pranav-19192/travelease/internal/domain"
)

const (
	usersKey       = "travelease_users"
	bookingsKey    = "travelease_bookings"
	currentUserKey = "travelease_current_user"
)

// Store keeps the user and booking collections in a string-only
// medium, one JSON array per collection. Every operation reads or
// rewrites the whole collection; there is no partial update.
type Store struct {
	medium Medium
}

func NewStore(medium Medium) *Store {
	return &Store{medium: medium}
}

func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.readCollection(ctx, usersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// UpsertUser replaces the record with the same email in place, or
// appends when the email is new. Email is the identity key here.
func (s *Store) UpsertUser(ctx context.Context, user domain.User) error {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range users {
		if users[i].Email == user.Email {
			users[i] = user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, user)
	}

	return s.writeCollection(ctx, usersKey, users)
}

func (s *Store) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := s.readCollection(ctx, bookingsKey, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Store) FindBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	all, err := s.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0)
	for _, b := range all {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

// AddBooking appends unconditionally. There is no de-duplication by
// id or pnr.
func (s *Store) AddBooking(ctx context.Context, booking domain.Booking) error {
	bookings, err := s.ListBookings(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, booking)
	return s.writeCollection(ctx, bookingsKey, bookings)
}

// CurrentUserEmail returns the session marker, or "" when no session
// is stored.
func (s *Store) CurrentUserEmail(ctx context.Context) (string, error) {
	email, err := s.medium.Get(ctx, currentUserKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("%w: read session: %v", ErrUnavailable, err)
	}
	return email, nil
}

func (s *Store) SetCurrentUserEmail(ctx context.Context, email string) error {
	if err := s.medium.Set(ctx, currentUserKey, email); err != nil {
		return fmt.Errorf("%w: write session: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *Store) ClearCurrentUser(ctx context.Context) error {
	if err := s.medium.Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("%w: clear session: %v", ErrUnavailable, err)
	}
	return nil
}

// readCollection unmarshals the slot into dest. A slot that has never
// been written is lazily initialized to an empty array so later reads
// see a consistent medium.
func (s *Store) readCollection(ctx context.Context, key string, dest interface{}) error {
	raw, err := s.medium.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if err := s.medium.Set(ctx, key, "[]"); err != nil {
				return fmt.Errorf("%w: init %s: %v", ErrUnavailable, key, err)
			}
			raw = "[]"
		} else {
			return fmt.Errorf("%w: read %s: %v", ErrUnavailable, key, err)
		}
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

func (s *Store) writeCollection(ctx context.Context, key string, collection interface{}) error {
	payload, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrUnavailable, key, err)
	}
	if err := s.medium.Set(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, key, err)
	}
	return nil
}
