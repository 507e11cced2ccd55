package booking

import (
	"errors"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/property"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrPropertyUnavailable = errors.New("property is not available for booking")
	ErrBookingImmutable    = errors.New("cancelled bookings cannot be modified")
	ErrBookingExpired      = errors.New("bookings for past stays cannot be modified")
)

const minDaysForModification = 3

// Services centralizes booking policy that must not be duplicated: how a new
// booking is constructed and how refunds are computed.
type Services struct {
	Clock clock.Clock
}

func NewServices(c clock.Clock) *Services {
	return &Services{Clock: c}
}

// CreateBooking builds a pending booking priced at the property's current
// nightly rate. An unpublished property rejects all bookings regardless of
// date conflicts; that check belongs here, not to availability.
func (s *Services) CreateBooking(
	id uuid.UUID,
	prop *property.Property,
	contact ContactInfo,
	stay DateRange,
	userID *uuid.UUID,
) (*Booking, error) {
	if !prop.Available() {
		return nil, ErrPropertyUnavailable
	}

	amount, err := prop.CalculateTotalPrice(stay.Nights())
	if err != nil {
		return nil, err
	}

	return NewBooking(id, prop.ID(), contact, stay, amount, userID, s.Clock.Now())
}

// RefundAmount applies the tiered cancellation policy against the booking's
// current state. Callers must compute this BEFORE cancelling: a cancelled
// booking is no longer paid and always refunds zero.
//
// Tiers by days until check-in: >7 full refund, 3 to 7 half, <3 none.
func (s *Services) RefundAmount(b *Booking) int64 {
	if !b.Status().IsPaid() {
		return 0
	}

	days := s.daysUntilStart(b)
	switch {
	case days > 7:
		return b.Amount()
	case days >= minDaysForModification:
		return b.Amount() / 2
	default:
		return 0
	}
}

// CanModifyDates reports whether a date change would currently be accepted.
// The modification flow itself is not exposed yet; the predicate is part of
// the domain contract.
func (s *Services) CanModifyDates(b *Booking) bool {
	if b.Status().IsCancelled() {
		return false
	}
	return s.daysUntilStart(b) >= minDaysForModification
}

// ValidateModification guards any mutation attempt against terminal states.
func (s *Services) ValidateModification(b *Booking) error {
	if b.Status().IsCancelled() {
		return ErrBookingImmutable
	}
	if b.Stay().IsInPast(s.Clock.Now()) {
		return ErrBookingExpired
	}
	return nil
}

func (s *Services) daysUntilStart(b *Booking) int {
	hours := b.Stay().Start().Sub(s.Clock.Now()).Hours()
	days := int(hours / 24)
	if hours > float64(days)*24 {
		days++
	}
	return days
}
