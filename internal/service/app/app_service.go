package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pranav-19192/travelease/internal/domain"
	"github.com/pranav-19192/travelease/internal/kafka"
)

type View string

const (
	ViewHome      View = "home"
	ViewLogin     View = "login"
	ViewItinerary View = "itinerary"
	ViewCheckout  View = "checkout"
	ViewSuccess   View = "success"
	ViewChat      View = "chat"
	ViewTickets   View = "tickets"
)

// ErrAuthenticationRequired is returned by FinalizeBooking when no
// user is signed in. The draft is kept so checkout can resume after
// login.
var ErrAuthenticationRequired = errors.New("authentication required")

// ErrNoPendingBooking means finalize was called with nothing staged.
// Normal navigation cannot reach this.
var ErrNoPendingBooking = errors.New("no pending booking")

// ErrNoFinalizedBooking means a ticket download was requested before
// any booking was finalized in this session.
var ErrNoFinalizedBooking = errors.New("no finalized booking")

// Navigator is the orchestrator surface the HTTP layer talks to.
type Navigator interface {
	RestoreSession(ctx context.Context) error
	Navigate(view View) View
	View() View
	CurrentUser() *domain.User
	PendingBooking() *domain.PendingBooking
	LastBooking() *domain.Booking
	Login(ctx context.Context, user domain.User) error
	Logout(ctx context.Context) error
	StartBooking(draft domain.PendingBooking)
	FinalizeBooking(ctx context.Context) (*domain.Booking, error)
	Pay(ctx context.Context) (*domain.Booking, error)
	Tickets(ctx context.Context) ([]domain.Booking, error)
	DownloadTicket(ctx context.Context) (string, error)
}

type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpsertUser(ctx context.Context, user domain.User) error
	FindBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	AddBooking(ctx context.Context, booking domain.Booking) error
	CurrentUserEmail(ctx context.Context) (string, error)
	SetCurrentUserEmail(ctx context.Context, email string) error
	ClearCurrentUser(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// App owns the session state: the current view, the signed-in user,
// the staged booking draft and the last finalized booking. All state
// lives here, not in package globals.
type App struct {
	store              Store
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	paymentDelay       time.Duration
	downloadDelay      time.Duration

	mu          sync.Mutex
	view        View
	currentUser *domain.User
	pending     *domain.PendingBooking
	lastBooking *domain.Booking
}

type AppOption func(*App)

func WithNotificationsTopic(topic string) AppOption {
	return func(a *App) {
		a.notificationsTopic = topic
	}
}

// WithPaymentDelay sets the simulated payment-gateway wait applied by
// Pay. Zero disables it.
func WithPaymentDelay(d time.Duration) AppOption {
	return func(a *App) {
		a.paymentDelay = d
	}
}

// WithDownloadDelay sets the simulated wait applied by DownloadTicket.
func WithDownloadDelay(d time.Duration) AppOption {
	return func(a *App) {
		a.downloadDelay = d
	}
}

func NewApp(store Store, producer Producer, bookingTopic string, opts ...AppOption) *App {
	a := &App{
		store:        store,
		producer:     producer,
		bookingTopic: bookingTopic,
		view:         ViewHome,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RestoreSession looks up the stored session marker and signs the
// matching user back in. A marker without a matching user is ignored.
func (a *App) RestoreSession(ctx context.Context) error {
	email, err := a.store.CurrentUserEmail(ctx)
	if err != nil {
		return err
	}
	if email == "" {
		return nil
	}

	user, err := a.store.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user != nil {
		a.mu.Lock()
		a.currentUser = user
		a.mu.Unlock()
	}
	return nil
}

func (a *App) Navigate(view View) View {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = view
	return a.view
}

func (a *App) View() View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

func (a *App) CurrentUser() *domain.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentUser
}

func (a *App) PendingBooking() *domain.PendingBooking {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending
}

func (a *App) LastBooking() *domain.Booking {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastBooking
}

// Login upserts the user, persists the session marker and resumes a
// staged checkout when one exists.
func (a *App) Login(ctx context.Context, user domain.User) error {
	if err := a.store.UpsertUser(ctx, user); err != nil {
		return err
	}
	if err := a.store.SetCurrentUserEmail(ctx, user.Email); err != nil {
		return err
	}

	a.mu.Lock()
	a.currentUser = &user
	if a.pending != nil {
		a.view = ViewCheckout
	} else {
		a.view = ViewHome
	}
	a.mu.Unlock()

	a.publish(ctx, "user_logged_in", kafka.BookingEvent{
		Type:   "user_logged_in",
		UserID: user.ID,
		Email:  user.Email,
	}, user.ID)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.store.ClearCurrentUser(ctx); err != nil {
		return err
	}

	a.mu.Lock()
	a.currentUser = nil
	a.view = ViewHome
	a.mu.Unlock()
	return nil
}

// StartBooking stages a draft and moves to checkout. Navigating away
// without finalizing discards nothing; the draft survives until it is
// replaced or finalized.
func (a *App) StartBooking(draft domain.PendingBooking) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = &draft
	a.view = ViewCheckout
}

// FinalizeBooking turns the staged draft into a stored booking. With
// no signed-in user it redirects to login and keeps the draft.
func (a *App) FinalizeBooking(ctx context.Context) (*domain.Booking, error) {
	a.mu.Lock()
	if a.currentUser == nil {
		a.view = ViewLogin
		a.mu.Unlock()
		return nil, ErrAuthenticationRequired
	}
	if a.pending == nil {
		a.mu.Unlock()
		log.Printf("finalize booking called with no pending booking")
		return nil, ErrNoPendingBooking
	}

	booking := domain.Booking{
		ID:         uuid.NewString(),
		UserID:     a.currentUser.ID,
		From:       a.pending.From,
		To:         a.pending.To,
		FromCode:   a.pending.FromCode,
		ToCode:     a.pending.ToCode,
		Date:       a.pending.Date,
		Time:       a.pending.Time,
		Company:    a.pending.Company,
		Seats:      a.pending.Seats,
		TotalPrice: a.pending.TotalPrice,
		Status:     domain.BookingStatusActive,
		PNR:        newPNR(),
	}
	email := a.currentUser.Email
	a.mu.Unlock()

	if err := a.store.AddBooking(ctx, booking); err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.lastBooking = &booking
	a.pending = nil
	a.view = ViewSuccess
	a.mu.Unlock()

	a.publish(ctx, "booking_finalized", kafka.BookingEvent{
		Type:       "booking_finalized",
		PNR:        booking.PNR,
		UserID:     booking.UserID,
		Email:      email,
		From:       booking.From,
		To:         booking.To,
		Date:       booking.Date,
		Seats:      booking.Seats,
		TotalPrice: booking.TotalPrice,
		Status:     string(booking.Status),
	}, booking.PNR)

	return &booking, nil
}

// Pay simulates the payment gateway wait, then finalizes.
func (a *App) Pay(ctx context.Context) (*domain.Booking, error) {
	if err := wait(ctx, a.paymentDelay); err != nil {
		return nil, err
	}
	return a.FinalizeBooking(ctx)
}

// Tickets returns the signed-in user's bookings.
func (a *App) Tickets(ctx context.Context) ([]domain.Booking, error) {
	a.mu.Lock()
	user := a.currentUser
	a.mu.Unlock()

	if user == nil {
		return nil, ErrAuthenticationRequired
	}
	return a.store.FindBookingsByUser(ctx, user.ID)
}

// DownloadTicket renders the last finalized booking as ticket text
// after the simulated preparation wait.
func (a *App) DownloadTicket(ctx context.Context) (string, error) {
	a.mu.Lock()
	booking := a.lastBooking
	a.mu.Unlock()

	if booking == nil {
		return "", ErrNoFinalizedBooking
	}
	if err := wait(ctx, a.downloadDelay); err != nil {
		return "", err
	}
	return TicketText(*booking), nil
}

func TicketText(b domain.Booking) string {
	text := "TRAVELEASE E-TICKET\n"
	text += fmt.Sprintf("PNR: %s\n", b.PNR)
	text += fmt.Sprintf("ROUTE: %s (%s) -> %s (%s)\n", b.From, b.FromCode, b.To, b.ToCode)
	text += fmt.Sprintf("DATE: %s %s\n", b.Date, b.Time)
	text += fmt.Sprintf("SEATS: %s\n", strings.Join(b.Seats, ", "))
	text += fmt.Sprintf("OPERATOR: %s\n", b.Company)
	return text
}

// newPNR builds a confirmation code: fixed prefix plus six random
// digits. Uniqueness against stored bookings is not verified.
func newPNR() string {
	return fmt.Sprintf("PNR%d", 100000+rand.Intn(900000))
}

func (a *App) publish(ctx context.Context, eventType string, event kafka.BookingEvent, key string) {
	if a.producer == nil || a.bookingTopic == "" {
		return
	}
	if err := a.producer.Publish(ctx, a.bookingTopic, key, event); err != nil {
		log.Printf("WARNING: failed to publish %s event: %v", eventType, err)
		return
	}
	if a.notificationsTopic != "" {
		if err := a.producer.Publish(ctx, a.notificationsTopic, key, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification: %v", eventType, err)
		}
	}
}

var _ Navigator = (*App)(nil)

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
