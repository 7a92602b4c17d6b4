package trips

import (
	"context"
	"errors"
	"fmt"

	"github.com/pranav-19192/travelease/internal/domain"
)

type TripUseCase interface {
	Trip(ctx context.Context) (*domain.Trip, error)
	SeatMap(ctx context.Context) ([]domain.Seat, error)
	BuildDraft(ctx context.Context, date string, seats []string) (*domain.PendingBooking, error)
}

type Cache interface {
	GetSeatMap(ctx context.Context) ([]domain.Seat, error)
	SetSeatMap(ctx context.Context, seats []domain.Seat) error
}

var ErrNoSeatsSelected = errors.New("no seats selected")

// TripService serves the demo catalog: a single fixed route with a
// static seat map. Sold seats never change.
type TripService struct {
	cache     Cache
	seatPrice int
}

func NewTripService(cache Cache, seatPrice int) *TripService {
	return &TripService{cache: cache, seatPrice: seatPrice}
}

func (s *TripService) Trip(ctx context.Context) (*domain.Trip, error) {
	return &domain.Trip{
		From:      "Mumbai",
		To:        "Pune",
		FromCode:  "BOM",
		ToCode:    "PNQ",
		Time:      "07:30",
		Company:   "Zingbus",
		SeatPrice: s.seatPrice,
	}, nil
}

func (s *TripService) SeatMap(ctx context.Context) ([]domain.Seat, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSeatMap(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	seats := buildSeatMap()
	if s.cache != nil {
		_ = s.cache.SetSeatMap(ctx, seats)
	}
	return seats, nil
}

// BuildDraft turns a seat selection into a pending booking. Total
// price is always price-per-seat times seat count.
func (s *TripService) BuildDraft(ctx context.Context, date string, seats []string) (*domain.PendingBooking, error) {
	if len(seats) == 0 {
		return nil, ErrNoSeatsSelected
	}

	seatMap, err := s.SeatMap(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.SeatStatus, len(seatMap))
	for _, seat := range seatMap {
		byID[seat.ID] = seat.Status
	}
	for _, id := range seats {
		status, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown seat %s", id)
		}
		if status == domain.SeatStatusSold {
			return nil, fmt.Errorf("seat %s is already sold", id)
		}
	}

	trip, err := s.Trip(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.PendingBooking{
		From:       trip.From,
		To:         trip.To,
		FromCode:   trip.FromCode,
		ToCode:     trip.ToCode,
		Date:       date,
		Time:       trip.Time,
		Company:    trip.Company,
		Seats:      seats,
		TotalPrice: len(seats) * s.seatPrice,
	}, nil
}

func buildSeatMap() []domain.Seat {
	sold := map[string]bool{"1B": true, "2C": true, "3C": true, "3D": true}

	seats := make([]domain.Seat, 0, 16)
	for row := 1; row <= 4; row++ {
		for _, col := range []string{"A", "B", "C", "D"} {
			id := fmt.Sprintf("%d%s", row, col)
			status := domain.SeatStatusFree
			if sold[id] {
				status = domain.SeatStatusSold
			}
			seats = append(seats, domain.Seat{ID: id, Status: status})
		}
	}
	return seats
}

var _ TripUseCase = (*TripService)(nil)
