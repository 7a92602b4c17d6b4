package domain

type SeatStatus string

const (
	SeatStatusFree SeatStatus = "free"
	SeatStatusSold SeatStatus = "sold"
)

type Seat struct {
	ID     string     `json:"id"`
	Status SeatStatus `json:"status"`
}

type Trip struct {
	From      string `json:"from"`
	To        string `json:"to"`
	FromCode  string `json:"fromCode"`
	ToCode    string `json:"toCode"`
	Time      string `json:"time"`
	Company   string `json:"company"`
	SeatPrice int    `json:"seatPrice"`
}
