package usecase

import (
	"context"
	"time"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/property"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/user"

	"github.com/google/uuid"
)

// BookingRepository is the persistence port for bookings. FindConflicting is
// a coarse prefilter: it returns bookings whose dates are not provably
// disjoint from the given stay, and callers apply the exact overlap test.
type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByEmail(ctx context.Context, email user.Email) ([]*booking.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error)
	FindByStatus(ctx context.Context, status booking.Status) ([]*booking.Booking, error)
	FindConflicting(ctx context.Context, propertyID uuid.UUID, stay booking.DateRange, excludeID *uuid.UUID) ([]*booking.Booking, error)
	Save(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// CleanupExpired bulk-cancels pending bookings older than the given age
	// and reports how many rows changed.
	CleanupExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}

type PropertyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
	FindBySlug(ctx context.Context, slug string) (*property.Property, error)
	FindAll(ctx context.Context) ([]*property.Property, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*property.Property, error)
	FindAvailable(ctx context.Context) ([]*property.Property, error)
	Save(ctx context.Context, p *property.Property) (*property.Property, error)
	Update(ctx context.Context, p *property.Property) (*property.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// PaymentGateway is the preference-creation / payment-lookup surface of the
// external payment provider. Refund disbursement happens out of band.
type PaymentGateway interface {
	CreatePreference(ctx context.Context, pref PaymentPreference) (*PaymentPreferenceResult, error)
	GetPayment(ctx context.Context, paymentID string) (*PaymentInfo, error)
}

type PaymentPreference struct {
	BookingID  uuid.UUID
	Title      string
	Amount     int64
	PayerEmail string
}

type PaymentPreferenceResult struct {
	ID        string
	InitPoint string
}

type PaymentInfo struct {
	ID                string
	Status            string
	ExternalReference string
}

const PaymentStatusApproved = "approved"

// NotificationSender delivers guest-facing mail. Failures are logged, never
// propagated: a booking outcome must not depend on the mail pipeline.
type NotificationSender interface {
	SendBookingConfirmed(ctx context.Context, b *booking.Booking, p *property.Property) error
	SendBookingCancelled(ctx context.Context, b *booking.Booking, p *property.Property, refund int64) error
}
