package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount  = errors.New("booking amount must be positive")
	ErrBlankProperty  = errors.New("booking must reference a property")
	ErrNotPending     = errors.New("only a pending booking can be marked as paid")
	ErrNotCancellable = errors.New("booking cannot be cancelled in its current state")
	ErrStayStarted    = errors.New("booking cannot be cancelled once the stay has started")
)

// Booking is immutable: state transitions return a fresh instance and never
// touch the receiver, so a loaded booking can be read concurrently and the
// pre-transition state stays available to the caller.
type Booking struct {
	id         uuid.UUID
	propertyID uuid.UUID
	contact    ContactInfo
	stay       DateRange
	amount     int64
	status     Status
	paymentID  *string
	userID     *uuid.UUID
	createdAt  time.Time
	updatedAt  *time.Time
}

func NewBooking(
	id uuid.UUID,
	propertyID uuid.UUID,
	contact ContactInfo,
	stay DateRange,
	amount int64,
	userID *uuid.UUID,
	createdAt time.Time,
) (*Booking, error) {
	if propertyID == uuid.Nil {
		return nil, ErrBlankProperty
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Booking{
		id:         id,
		propertyID: propertyID,
		contact:    contact,
		stay:       stay,
		amount:     amount,
		status:     StatusPending,
		userID:     userID,
		createdAt:  createdAt,
	}, nil
}

// ReconstructBooking hydrates a persisted booking without re-running creation
// policy; the store is trusted to hold only states the domain once produced.
func ReconstructBooking(
	id, propertyID uuid.UUID,
	contact ContactInfo,
	stay DateRange,
	amount int64,
	status Status,
	paymentID *string,
	userID *uuid.UUID,
	createdAt time.Time,
	updatedAt *time.Time,
) *Booking {
	return &Booking{
		id:         id,
		propertyID: propertyID,
		contact:    contact,
		stay:       stay,
		amount:     amount,
		status:     status,
		paymentID:  paymentID,
		userID:     userID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// MarkAsPaid is the only transition into paid. Everything except status,
// paymentID and updatedAt carries over unchanged.
func (b *Booking) MarkAsPaid(paymentID string, now time.Time) (*Booking, error) {
	if !b.status.IsPending() {
		return nil, ErrNotPending
	}
	next := *b
	next.status = StatusPaid
	next.paymentID = &paymentID
	next.updatedAt = &now
	return &next, nil
}

// Cancel is the only transition into cancelled. It requires a cancellable
// status and a stay that has not started; cancelled is terminal.
func (b *Booking) Cancel(now time.Time) (*Booking, error) {
	if !b.status.CanBeCancelled() {
		return nil, ErrNotCancellable
	}
	if !b.stay.IsInFuture(now) {
		return nil, ErrStayStarted
	}
	next := *b
	next.status = StatusCancelled
	next.updatedAt = &now
	return &next, nil
}

func (b *Booking) CanBeCancelled() bool {
	return b.status.CanBeCancelled()
}

// CanCompletePayment guards the pending→paid transition: paying for an
// already-paid, cancelled or already-started booking is rejected.
func (b *Booking) CanCompletePayment(now time.Time) bool {
	return b.status.IsPending() && b.stay.IsInFuture(now)
}

// Code is the short, human-shareable identifier guests use to look a booking
// up without an account.
func (b *Booking) Code() string {
	return strings.ToUpper(strings.ReplaceAll(b.id.String(), "-", "")[:8])
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) PropertyID() uuid.UUID { return b.propertyID }
func (b *Booking) Contact() ContactInfo  { return b.contact }
func (b *Booking) Stay() DateRange       { return b.stay }
func (b *Booking) Amount() int64         { return b.amount }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) PaymentID() *string    { return b.paymentID }
func (b *Booking) UserID() *uuid.UUID    { return b.userID }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() *time.Time { return b.updatedAt }
