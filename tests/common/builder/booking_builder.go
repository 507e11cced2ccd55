//go:build unit || e2e

package builder

import (
	"time"

	dombooking "github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/user"
	reqdto "github.com/GRAMAPHENIA/resio-sub000/internal/handler/dto/request"
	"github.com/GRAMAPHENIA/resio-sub000/internal/usecase"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	PropertyID   uuid.UUID
	ContactName  string
	ContactEmail string
	ContactPhone *string
	StartDate    string
	EndDate      string
	Amount       int64
	Status       dombooking.Status
	PaymentID    *string
	UserID       *uuid.UUID
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           uuid.New(),
		PropertyID:   uuid.New(),
		ContactName:  "Ana Torres",
		ContactEmail: "ana.torres@example.com",
		StartDate:    "2026-10-10",
		EndDate:      "2026-10-14",
		Amount:       40000,
		Status:       dombooking.StatusPending,
		CreatedAt:    time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStay(start, end string) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithStatus(s dombooking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithAmount(amount int64) *BookingBuilder {
	b.Amount = amount
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	email, err := user.NewEmail(b.ContactEmail)
	if err != nil {
		return nil, err
	}
	contact, err := dombooking.NewContactInfo(b.ContactName, email, b.ContactPhone)
	if err != nil {
		return nil, err
	}
	stay, err := dombooking.NewDateRangeFromStrings(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.ID, b.PropertyID, contact, stay, b.Amount, b.UserID, b.CreatedAt)
}

// BuildReconstructed hydrates a booking in an arbitrary status, the way the
// persistence layer does.
func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	email, _ := user.NewEmail(b.ContactEmail)
	contact, _ := dombooking.NewContactInfo(b.ContactName, email, b.ContactPhone)
	stay, _ := dombooking.NewDateRangeFromStrings(b.StartDate, b.EndDate)
	return dombooking.ReconstructBooking(
		b.ID, b.PropertyID, contact, stay, b.Amount, b.Status,
		b.PaymentID, b.UserID, b.CreatedAt, nil,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	var userID *string
	if b.UserID != nil {
		s := b.UserID.String()
		userID = &s
	}
	return reqdto.CreateBookingRequest{
		PropertyID:   b.PropertyID.String(),
		ContactName:  b.ContactName,
		ContactEmail: b.ContactEmail,
		ContactPhone: b.ContactPhone,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		UserID:       userID,
	}
}

func (b *BookingBuilder) BuildCreateInput() usecase.CreateBookingInput {
	var userID *string
	if b.UserID != nil {
		s := b.UserID.String()
		userID = &s
	}
	return usecase.CreateBookingInput{
		PropertyID: b.PropertyID.String(),
		Contact: usecase.ContactInput{
			Name:  b.ContactName,
			Email: b.ContactEmail,
			Phone: b.ContactPhone,
		},
		Stay: usecase.StayInput{
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
		},
		UserID: userID,
	}
}
