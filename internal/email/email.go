package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/pranav-19192/travelease/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send email to %s about %s: %s %s-%s seats %s\n",
		event.Email, event.Type, event.PNR, event.From, event.To, strings.Join(event.Seats, ","))
	return nil
}
