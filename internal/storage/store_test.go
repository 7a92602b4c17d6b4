package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pranav-19192/travelease/internal/domain"
	"github.com/stretchr/testify/assert"
)

// memMedium is an in-memory Medium standing in for the external
// string store.
type memMedium struct {
	data    map[string]string
	failGet bool
	failSet bool
}

func newMemMedium() *memMedium {
	return &memMedium{data: map[string]string{}}
}

func (m *memMedium) Get(ctx context.Context, key string) (string, error) {
	if m.failGet {
		return "", errors.New("medium down")
	}
	value, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *memMedium) Set(ctx context.Context, key, value string) error {
	if m.failSet {
		return errors.New("medium down")
	}
	m.data[key] = value
	return nil
}

func (m *memMedium) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

var _ Medium = (*memMedium)(nil)

func TestStore_ListUsers_LazyInit(t *testing.T) {
	medium := newMemMedium()
	store := NewStore(medium)
	ctx := context.Background()

	users, err := store.ListUsers(ctx)

	assert.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, "[]", medium.data["travelease_users"])
}

func TestStore_UpsertUser_Idempotent(t *testing.T) {
	store := NewStore(newMemMedium())
	ctx := context.Background()

	user := domain.User{ID: "u1", Name: "Asha", Email: "asha@test.com"}
	for i := 0; i < 3; i++ {
		assert.NoError(t, store.UpsertUser(ctx, user))
	}

	users, err := store.ListUsers(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
}

func TestStore_UpsertUser_ReplacesInPlace(t *testing.T) {
	store := NewStore(newMemMedium())
	ctx := context.Background()

	assert.NoError(t, store.UpsertUser(ctx, domain.User{ID: "u1", Name: "Asha", Email: "asha@test.com"}))
	assert.NoError(t, store.UpsertUser(ctx, domain.User{ID: "u2", Name: "Ravi", Email: "ravi@test.com"}))
	assert.NoError(t, store.UpsertUser(ctx, domain.User{ID: "u1b", Name: "Asha S", Email: "asha@test.com"}))

	users, err := store.ListUsers(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "asha@test.com", users[0].Email)
	assert.Equal(t, "Asha S", users[0].Name)
	assert.Equal(t, "u1b", users[0].ID)
	assert.Equal(t, "ravi@test.com", users[1].Email)
}

func TestStore_FindUserByEmail(t *testing.T) {
	store := NewStore(newMemMedium())
	ctx := context.Background()

	assert.NoError(t, store.UpsertUser(ctx, domain.User{ID: "u1", Email: "asha@test.com"}))

	found, err := store.FindUserByEmail(ctx, "asha@test.com")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "u1", found.ID)

	// Lookup is case-sensitive.
	missing, err := store.FindUserByEmail(ctx, "Asha@test.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_AddBooking_RoundTripPreservesOrder(t *testing.T) {
	store := NewStore(newMemMedium())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		booking := domain.Booking{
			ID:         fmt.Sprintf("b%d", i),
			UserID:     "u1",
			From:       "Mumbai",
			To:         "Pune",
			Seats:      []string{"1A"},
			TotalPrice: 450,
			Status:     domain.BookingStatusActive,
			PNR:        fmt.Sprintf("PNR10000%d", i),
		}
		assert.NoError(t, store.AddBooking(ctx, booking))
	}

	bookings, err := store.ListBookings(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 5)
	for i, b := range bookings {
		assert.Equal(t, fmt.Sprintf("b%d", i), b.ID)
		assert.Equal(t, "Mumbai", b.From)
		assert.Equal(t, []string{"1A"}, b.Seats)
		assert.Equal(t, 450, b.TotalPrice)
	}
}

func TestStore_AddBooking_NoDeduplication(t *testing.T) {
	store := NewStore(newMemMedium())
	ctx := context.Background()

	booking := domain.Booking{ID: "b1", UserID: "u1", PNR: "PNR123456"}
	assert.NoError(t, store.AddBooking(ctx, booking))
	assert.NoError(t, store.AddBooking(ctx, booking))

	bookings, err := store.ListBookings(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestStore_FindBookingsByUser_Isolation(t *testing.T) {
	store := NewStore(newMemMedium())
	ctx := context.Background()

	assert.NoError(t, store.AddBooking(ctx, domain.Booking{ID: "b1", UserID: "u1", PNR: "PNR111111"}))
	assert.NoError(t, store.AddBooking(ctx, domain.Booking{ID: "b2", UserID: "u2", PNR: "PNR222222"}))

	u2Bookings, err := store.FindBookingsByUser(ctx, "u2")
	assert.NoError(t, err)
	assert.Len(t, u2Bookings, 1)
	assert.Equal(t, "b2", u2Bookings[0].ID)

	none, err := store.FindBookingsByUser(ctx, "u3")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_SessionMarker(t *testing.T) {
	store := NewStore(newMemMedium())
	ctx := context.Background()

	email, err := store.CurrentUserEmail(ctx)
	assert.NoError(t, err)
	assert.Empty(t, email)

	assert.NoError(t, store.SetCurrentUserEmail(ctx, "asha@test.com"))
	email, err = store.CurrentUserEmail(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "asha@test.com", email)

	assert.NoError(t, store.ClearCurrentUser(ctx))
	email, err = store.CurrentUserEmail(ctx)
	assert.NoError(t, err)
	assert.Empty(t, email)
}

func TestStore_MediumFailureIsUnavailable(t *testing.T) {
	medium := newMemMedium()
	store := NewStore(medium)
	ctx := context.Background()

	medium.failGet = true
	_, err := store.ListUsers(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	medium.failGet = false
	medium.failSet = true
	err = store.AddBooking(ctx, domain.Booking{ID: "b1"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestStore_CorruptCollectionIsUnavailable(t *testing.T) {
	medium := newMemMedium()
	medium.data["travelease_bookings"] = "{not json"
	store := NewStore(medium)

	_, err := store.ListBookings(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
