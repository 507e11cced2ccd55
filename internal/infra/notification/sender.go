package notification

import (
	"context"
	"log/slog"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/property"
)

// Sender hands booking mail off to the external delivery pipeline. The
// current transport is the structured log stream consumed by the mail
// worker; delivery itself is not this service's concern.
type Sender struct {
	logger *slog.Logger
}

func NewSender(logger *slog.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) SendBookingConfirmed(_ context.Context, b *booking.Booking, p *property.Property) error {
	s.logger.Info("booking confirmation mail queued",
		"to", b.Contact().Email().Value(),
		"booking_code", b.Code(),
		"property", p.Name(),
		"stay", b.Stay().Format(),
		"amount", b.Amount(),
	)
	return nil
}

func (s *Sender) SendBookingCancelled(_ context.Context, b *booking.Booking, p *property.Property, refund int64) error {
	s.logger.Info("booking cancellation mail queued",
		"to", b.Contact().Email().Value(),
		"booking_code", b.Code(),
		"property", p.Name(),
		"stay", b.Stay().Format(),
		"refund", refund,
	)
	return nil
}
