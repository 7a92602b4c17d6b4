package domain

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID         string        `json:"id"`
	UserID     string        `json:"userId"`
	From       string        `json:"from"`
	To         string        `json:"to"`
	FromCode   string        `json:"fromCode"`
	ToCode     string        `json:"toCode"`
	Date       string        `json:"date"`
	Time       string        `json:"time"`
	Company    string        `json:"company"`
	Seats      []string      `json:"seats"`
	TotalPrice int           `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	PNR        string        `json:"pnr"`
}

// PendingBooking is a booking draft produced by seat selection. It
// carries everything a Booking does except the fields synthesized at
// finalization (id, userId, pnr, status).
type PendingBooking struct {
	From       string   `json:"from"`
	To         string   `json:"to"`
	FromCode   string   `json:"fromCode"`
	ToCode     string   `json:"toCode"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Company    string   `json:"company"`
	Seats      []string `json:"seats"`
	TotalPrice int      `json:"totalPrice"`
}
