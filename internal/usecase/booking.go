package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/property"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/user"
	"github.com/GRAMAPHENIA/resio-sub000/internal/infra"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/clock"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

// Sentinel errors. The message text is part of the observable contract: the
// calling UI renders it verbatim.
var (
	ErrPropertyIDRequired     = errors.New("Property ID is required")
	ErrContactNameRequired    = errors.New("Contact name is required")
	ErrContactEmailRequired   = errors.New("Contact email is required")
	ErrStartDateRequired      = errors.New("Start date is required")
	ErrEndDateRequired        = errors.New("End date is required")
	ErrBookingIDRequired      = errors.New("Booking ID is required")
	ErrPaymentIDRequired      = errors.New("Payment ID is required")
	ErrLookupKeyRequired      = errors.New("Either email or user ID is required")
	ErrInvalidUserID          = errors.New("invalid user ID format")
	ErrPropertyNotFound       = errors.New("Property not found")
	ErrBookingNotFound        = errors.New("Booking not found")
	ErrPropertyNotAvailable   = errors.New("Property is not available for the selected dates")
	ErrRecentPendingBooking   = errors.New("There is a recent pending booking for these dates. Please try again in a few minutes.")
	ErrPaymentNotAllowed      = errors.New("Payment cannot be completed for this booking")
	ErrCancellationNotAllowed = errors.New("Booking cannot be cancelled")
	ErrPaymentNotApproved     = errors.New("payment is not approved")
)

type ContactInput struct {
	Name  string
	Email string
	Phone *string
}

type StayInput struct {
	StartDate string
	EndDate   string
}

type CreateBookingInput struct {
	PropertyID string
	Contact    ContactInput
	Stay       StayInput
	UserID     *string
}

type GetUserBookingsInput struct {
	Email  *string
	UserID *string
}

type BookingWithProperty struct {
	Booking  *booking.Booking
	Property *property.Property
}

type CancelBookingResult struct {
	Booking      *booking.Booking
	RefundAmount int64
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingWithProperty, error)
	GetBooking(ctx context.Context, bookingID string) (*BookingWithProperty, error)
	GetUserBookings(ctx context.Context, in GetUserBookingsInput) ([]*booking.Booking, error)
	CompletePayment(ctx context.Context, bookingID, paymentID string) (*booking.Booking, error)
	CancelBooking(ctx context.Context, bookingID string, reason *string) (*CancelBookingResult, error)
	CreatePaymentPreference(ctx context.Context, bookingID string) (*PaymentPreferenceResult, error)
	ProcessPaymentNotification(ctx context.Context, paymentID string) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	bookings     BookingRepository
	properties   PropertyRepository
	availability *AvailabilityService
	services     *booking.Services
	gateway      PaymentGateway
	notifier     NotificationSender
	clock        clock.Clock
}

func NewBookingUseCase(
	bookings BookingRepository,
	properties PropertyRepository,
	availability *AvailabilityService,
	services *booking.Services,
	gateway PaymentGateway,
	notifier NotificationSender,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookings:     bookings,
		properties:   properties,
		availability: availability,
		services:     services,
		gateway:      gateway,
		notifier:     notifier,
		clock:        clock,
	}
}

// CreateBooking runs the creation gates strictly in order; the first failed
// gate aborts with no partial effects (the only write is the final Save).
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingWithProperty, error) {
	if err := validateCreateInput(in); err != nil {
		return nil, err
	}

	// Self-healing: stale holds never block a new booking attempt.
	if _, err := u.availability.CleanupExpiredPendingBookings(ctx); err != nil {
		return nil, err
	}

	prop, err := u.loadProperty(ctx, in.PropertyID)
	if err != nil {
		return nil, err
	}

	contact, stay, userID, err := parseCreateInput(in)
	if err != nil {
		return nil, err
	}

	available, err := u.availability.IsPropertyAvailable(ctx, prop.ID(), stay, nil)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrPropertyNotAvailable
	}

	recentPending, err := u.availability.HasRecentPendingBookings(ctx, prop.ID(), stay)
	if err != nil {
		return nil, err
	}
	if recentPending {
		return nil, ErrRecentPendingBooking
	}

	entity, err := u.services.CreateBooking(uuid.New(), prop, contact, stay, userID)
	if err != nil {
		return nil, err
	}

	saved, err := u.bookings.Save(ctx, entity)
	if err != nil {
		return nil, errs.Wrap(err, "failed to save booking")
	}

	return &BookingWithProperty{Booking: saved, Property: prop}, nil
}

// GetBooking always returns the booking together with its property, never a
// booking alone.
func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, bookingID string) (*BookingWithProperty, error) {
	b, err := u.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	prop, err := u.properties.FindByID(ctx, b.PropertyID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking property")
	}

	return &BookingWithProperty{Booking: b, Property: prop}, nil
}

// GetUserBookings looks bookings up by exactly one key; user ID takes
// precedence when both are present.
func (u *bookingUseCaseImpl) GetUserBookings(ctx context.Context, in GetUserBookingsInput) ([]*booking.Booking, error) {
	if in.UserID != nil && strings.TrimSpace(*in.UserID) != "" {
		userID, err := uuid.Parse(strings.TrimSpace(*in.UserID))
		if err != nil {
			return nil, ErrInvalidUserID
		}
		list, err := u.bookings.FindByUserID(ctx, userID)
		if err != nil {
			return nil, errs.Wrap(err, "failed to find bookings by user ID")
		}
		return list, nil
	}

	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		email, err := user.NewEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		list, err := u.bookings.FindByEmail(ctx, email)
		if err != nil {
			return nil, errs.Wrap(err, "failed to find bookings by email")
		}
		return list, nil
	}

	return nil, ErrLookupKeyRequired
}

// CompletePayment transitions pending→paid. Availability is deliberately not
// re-validated here: overlapping holds that both reach payment are resolved
// out of band via refund.
func (u *bookingUseCaseImpl) CompletePayment(ctx context.Context, bookingID, paymentID string) (*booking.Booking, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, ErrBookingIDRequired
	}
	if strings.TrimSpace(paymentID) == "" {
		return nil, ErrPaymentIDRequired
	}

	b, err := u.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !b.CanCompletePayment(u.clock.Now()) {
		return nil, ErrPaymentNotAllowed
	}

	paid, err := b.MarkAsPaid(paymentID, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentNotAllowed)
	}

	updated, err := u.bookings.Update(ctx, paid)
	if err != nil {
		return nil, errs.Wrap(err, "failed to update booking")
	}

	u.notifyConfirmed(ctx, updated)
	return updated, nil
}

// CancelBooking computes the refund against the still-paid booking before
// the transition; a cancelled booking always refunds zero.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID string, reason *string) (*CancelBookingResult, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, ErrBookingIDRequired
	}

	b, err := u.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !b.CanBeCancelled() || !b.Stay().IsInFuture(u.clock.Now()) {
		return nil, ErrCancellationNotAllowed
	}

	refund := u.services.RefundAmount(b)

	cancelled, err := b.Cancel(u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrCancellationNotAllowed)
	}

	updated, err := u.bookings.Update(ctx, cancelled)
	if err != nil {
		return nil, errs.Wrap(err, "failed to update booking")
	}

	if reason != nil && strings.TrimSpace(*reason) != "" {
		// Accepted for interface compatibility; not persisted and not part
		// of refund computation.
		slog.Info("booking cancelled", "booking_id", updated.ID(), "reason", *reason, "refund", refund)
	}

	u.notifyCancelled(ctx, updated, refund)
	return &CancelBookingResult{Booking: updated, RefundAmount: refund}, nil
}

// CreatePaymentPreference asks the gateway for a checkout preference for a
// booking that is still payable.
func (u *bookingUseCaseImpl) CreatePaymentPreference(ctx context.Context, bookingID string) (*PaymentPreferenceResult, error) {
	pair, err := u.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !pair.Booking.CanCompletePayment(u.clock.Now()) {
		return nil, ErrPaymentNotAllowed
	}

	result, err := u.gateway.CreatePreference(ctx, PaymentPreference{
		BookingID:  pair.Booking.ID(),
		Title:      pair.Property.Name() + " · " + pair.Booking.Stay().Format(),
		Amount:     pair.Booking.Amount(),
		PayerEmail: pair.Booking.Contact().Email().Value(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create payment preference")
	}
	return result, nil
}

// ProcessPaymentNotification resolves a gateway webhook: look the payment up,
// and complete the referenced booking when it is approved.
func (u *bookingUseCaseImpl) ProcessPaymentNotification(ctx context.Context, paymentID string) (*booking.Booking, error) {
	if strings.TrimSpace(paymentID) == "" {
		return nil, ErrPaymentIDRequired
	}

	info, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to look up payment")
	}
	if info.Status != PaymentStatusApproved {
		return nil, ErrPaymentNotApproved
	}

	return u.CompletePayment(ctx, info.ExternalReference, info.ID)
}

func (u *bookingUseCaseImpl) loadBooking(ctx context.Context, bookingID string) (*booking.Booking, error) {
	id, err := uuid.Parse(strings.TrimSpace(bookingID))
	if err != nil {
		return nil, ErrBookingNotFound
	}

	b, err := u.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return b, nil
}

func (u *bookingUseCaseImpl) loadProperty(ctx context.Context, propertyID string) (*property.Property, error) {
	id, err := uuid.Parse(strings.TrimSpace(propertyID))
	if err != nil {
		return nil, ErrPropertyNotFound
	}

	prop, err := u.properties.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "failed to find property")
	}
	return prop, nil
}

func (u *bookingUseCaseImpl) notifyConfirmed(ctx context.Context, b *booking.Booking) {
	prop, err := u.properties.FindByID(ctx, b.PropertyID())
	if err != nil {
		slog.Warn("skipping confirmation mail, property lookup failed", "booking_id", b.ID(), "error", err)
		return
	}
	if err := u.notifier.SendBookingConfirmed(ctx, b, prop); err != nil {
		slog.Warn("failed to send confirmation mail", "booking_id", b.ID(), "error", err)
	}
}

func (u *bookingUseCaseImpl) notifyCancelled(ctx context.Context, b *booking.Booking, refund int64) {
	prop, err := u.properties.FindByID(ctx, b.PropertyID())
	if err != nil {
		slog.Warn("skipping cancellation mail, property lookup failed", "booking_id", b.ID(), "error", err)
		return
	}
	if err := u.notifier.SendBookingCancelled(ctx, b, prop, refund); err != nil {
		slog.Warn("failed to send cancellation mail", "booking_id", b.ID(), "error", err)
	}
}

func validateCreateInput(in CreateBookingInput) error {
	if strings.TrimSpace(in.PropertyID) == "" {
		return ErrPropertyIDRequired
	}
	if strings.TrimSpace(in.Contact.Name) == "" {
		return ErrContactNameRequired
	}
	if strings.TrimSpace(in.Contact.Email) == "" {
		return ErrContactEmailRequired
	}
	if strings.TrimSpace(in.Stay.StartDate) == "" {
		return ErrStartDateRequired
	}
	if strings.TrimSpace(in.Stay.EndDate) == "" {
		return ErrEndDateRequired
	}
	return nil
}

func parseCreateInput(in CreateBookingInput) (booking.ContactInfo, booking.DateRange, *uuid.UUID, error) {
	email, err := user.NewEmail(in.Contact.Email)
	if err != nil {
		return booking.ContactInfo{}, booking.DateRange{}, nil, err
	}

	contact, err := booking.NewContactInfo(in.Contact.Name, email, in.Contact.Phone)
	if err != nil {
		return booking.ContactInfo{}, booking.DateRange{}, nil, err
	}

	stay, err := booking.NewDateRangeFromStrings(in.Stay.StartDate, in.Stay.EndDate)
	if err != nil {
		return booking.ContactInfo{}, booking.DateRange{}, nil, err
	}

	var userID *uuid.UUID
	if in.UserID != nil && strings.TrimSpace(*in.UserID) != "" {
		parsed, err := uuid.Parse(strings.TrimSpace(*in.UserID))
		if err != nil {
			return booking.ContactInfo{}, booking.DateRange{}, nil, ErrInvalidUserID
		}
		userID = &parsed
	}

	return contact, stay, userID, nil
}
