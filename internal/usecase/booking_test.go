//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/clock"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/config"
	"github.com/GRAMAPHENIA/resio-sub000/internal/usecase"
	"github.com/GRAMAPHENIA/resio-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	bookings   *mockBookingRepo
	properties *mockPropertyRepo
	gateway    *mockPaymentGateway
	notifier   *mockNotificationSender
	clock      *clock.MockClock
	uc         usecase.BookingUseCase
}

func newBookingFixture(now time.Time) *bookingFixture {
	bookings := new(mockBookingRepo)
	properties := new(mockPropertyRepo)
	gateway := new(mockPaymentGateway)
	notifier := new(mockNotificationSender)
	mc := clock.NewMockClock(now)

	availability := usecase.NewAvailabilityService(bookings, mc, config.BookingConfig{
		PendingWindow:   15 * time.Minute,
		CleanupInterval: 5 * time.Minute,
	})
	services := booking.NewServices(mc)

	return &bookingFixture{
		bookings:   bookings,
		properties: properties,
		gateway:    gateway,
		notifier:   notifier,
		clock:      mc,
		uc:         usecase.NewBookingUseCase(bookings, properties, availability, services, gateway, notifier, mc),
	}
}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestCreateBooking(t *testing.T) {
	t.Run("creates a pending booking priced per night", func(t *testing.T) {
		f := newBookingFixture(testNow)
		prop := builder.NewPropertyBuilder().WithPricePerNight(100).MustBuildDomain()

		input := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.PropertyID = prop.ID() }).
			WithStay("2026-10-10", "2026-10-14").
			BuildCreateInput()

		f.bookings.On("CleanupExpired", mock.Anything, 15*time.Minute).Return(int64(0), nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)
		f.bookings.On("FindConflicting", mock.Anything, prop.ID(), mock.Anything, mock.Anything).
			Return([]*booking.Booking{}, nil)
		f.bookings.On("Save", mock.Anything, mock.Anything).Return(nil, nil)

		pair, err := f.uc.CreateBooking(context.Background(), input)
		require.NoError(t, err)
		require.NotNil(t, pair)

		assert.Equal(t, int64(400), pair.Booking.Amount(), "4 nights at 100 per night")
		assert.Equal(t, booking.StatusPending, pair.Booking.Status())
		assert.Equal(t, prop.ID(), pair.Booking.PropertyID())
		assert.Equal(t, prop.ID(), pair.Property.ID())
		f.bookings.AssertExpectations(t)
	})

	t.Run("required field messages are verbatim", func(t *testing.T) {
		base := func() usecase.CreateBookingInput {
			return builder.NewBookingBuilder().BuildCreateInput()
		}

		cases := []struct {
			name   string
			mutate func(*usecase.CreateBookingInput)
			msg    string
		}{
			{
				name:   "missing property ID",
				mutate: func(in *usecase.CreateBookingInput) { in.PropertyID = "" },
				msg:    "Property ID is required",
			},
			{
				name:   "missing contact name",
				mutate: func(in *usecase.CreateBookingInput) { in.Contact.Name = "   " },
				msg:    "Contact name is required",
			},
			{
				name:   "missing contact email",
				mutate: func(in *usecase.CreateBookingInput) { in.Contact.Email = "" },
				msg:    "Contact email is required",
			},
			{
				name:   "missing start date",
				mutate: func(in *usecase.CreateBookingInput) { in.Stay.StartDate = "" },
				msg:    "Start date is required",
			},
			{
				name:   "missing end date",
				mutate: func(in *usecase.CreateBookingInput) { in.Stay.EndDate = "" },
				msg:    "End date is required",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newBookingFixture(testNow)
				input := base()
				tc.mutate(&input)

				_, err := f.uc.CreateBooking(context.Background(), input)
				require.Error(t, err)
				assert.Equal(t, tc.msg, err.Error())
				f.bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("unknown property", func(t *testing.T) {
		f := newBookingFixture(testNow)
		input := builder.NewBookingBuilder().BuildCreateInput()

		f.bookings.On("CleanupExpired", mock.Anything, mock.Anything).Return(int64(0), nil)
		f.properties.On("FindByID", mock.Anything, mock.Anything).Return(nil, notFoundErr())

		_, err := f.uc.CreateBooking(context.Background(), input)
		assert.ErrorIs(t, err, usecase.ErrPropertyNotFound)
	})

	t.Run("paid overlap blocks the booking", func(t *testing.T) {
		f := newBookingFixture(testNow)
		prop := builder.NewPropertyBuilder().MustBuildDomain()

		input := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.PropertyID = prop.ID() }).
			WithStay("2026-10-10", "2026-10-14").
			BuildCreateInput()

		paid := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.PropertyID = prop.ID() }).
			WithStay("2026-10-12", "2026-10-16").
			WithStatus(booking.StatusPaid).
			BuildReconstructed()

		f.bookings.On("CleanupExpired", mock.Anything, mock.Anything).Return(int64(0), nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)
		f.bookings.On("FindConflicting", mock.Anything, prop.ID(), mock.Anything, mock.Anything).
			Return([]*booking.Booking{paid}, nil)

		_, err := f.uc.CreateBooking(context.Background(), input)
		assert.ErrorIs(t, err, usecase.ErrPropertyNotAvailable)
		assert.Equal(t, "Property is not available for the selected dates", err.Error())
		f.bookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("adjacent paid booking does not block", func(t *testing.T) {
		f := newBookingFixture(testNow)
		prop := builder.NewPropertyBuilder().MustBuildDomain()

		input := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.PropertyID = prop.ID() }).
			WithStay("2026-10-10", "2026-10-14").
			BuildCreateInput()

		// Checks out the day this one checks in.
		adjacent := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.PropertyID = prop.ID() }).
			WithStay("2026-10-06", "2026-10-10").
			WithStatus(booking.StatusPaid).
			BuildReconstructed()

		f.bookings.On("CleanupExpired", mock.Anything, mock.Anything).Return(int64(0), nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)
		f.bookings.On("FindConflicting", mock.Anything, prop.ID(), mock.Anything, mock.Anything).
			Return([]*booking.Booking{adjacent}, nil)
		f.bookings.On("Save", mock.Anything, mock.Anything).Return(nil, nil)

		_, err := f.uc.CreateBooking(context.Background(), input)
		assert.NoError(t, err)
	})

	t.Run("recent pending hold blocks the booking", func(t *testing.T) {
		f := newBookingFixture(testNow)
		prop := builder.NewPropertyBuilder().MustBuildDomain()

		input := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.PropertyID = prop.ID() }).
			WithStay("2026-10-10", "2026-10-14").
			BuildCreateInput()

		recent := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.PropertyID = prop.ID()
				b.CreatedAt = testNow.Add(-5 * time.Minute)
			}).
			WithStay("2026-10-10", "2026-10-14").
			BuildReconstructed()

		f.bookings.On("CleanupExpired", mock.Anything, mock.Anything).Return(int64(0), nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)
		f.bookings.On("FindConflicting", mock.Anything, prop.ID(), mock.Anything, mock.Anything).
			Return([]*booking.Booking{recent}, nil)

		_, err := f.uc.CreateBooking(context.Background(), input)
		assert.ErrorIs(t, err, usecase.ErrRecentPendingBooking)
		assert.Equal(t,
			"There is a recent pending booking for these dates. Please try again in a few minutes.",
			err.Error())
	})

	t.Run("stale pending hold does not block", func(t *testing.T) {
		f := newBookingFixture(testNow)
		prop := builder.NewPropertyBuilder().MustBuildDomain()

		input := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.PropertyID = prop.ID() }).
			WithStay("2026-10-10", "2026-10-14").
			BuildCreateInput()

		stale := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.PropertyID = prop.ID()
				b.CreatedAt = testNow.Add(-30 * time.Minute)
			}).
			WithStay("2026-10-10", "2026-10-14").
			BuildReconstructed()

		f.bookings.On("CleanupExpired", mock.Anything, mock.Anything).Return(int64(0), nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)
		f.bookings.On("FindConflicting", mock.Anything, prop.ID(), mock.Anything, mock.Anything).
			Return([]*booking.Booking{stale}, nil)
		f.bookings.On("Save", mock.Anything, mock.Anything).Return(nil, nil)

		_, err := f.uc.CreateBooking(context.Background(), input)
		assert.NoError(t, err)
	})
}

func TestGetBooking(t *testing.T) {
	t.Run("returns booking with its property", func(t *testing.T) {
		f := newBookingFixture(testNow)
		prop := builder.NewPropertyBuilder().MustBuildDomain()
		b := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) { bb.PropertyID = prop.ID() }).
			BuildReconstructed()

		f.bookings.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)

		pair, err := f.uc.GetBooking(context.Background(), b.ID().String())
		require.NoError(t, err)
		assert.Equal(t, b.ID(), pair.Booking.ID())
		assert.Equal(t, prop.ID(), pair.Property.ID())
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(testNow)
		f.bookings.On("FindByID", mock.Anything, mock.Anything).Return(nil, notFoundErr())

		_, err := f.uc.GetBooking(context.Background(), uuid.New().String())
		assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
		assert.Equal(t, "Booking not found", err.Error())
	})

	t.Run("malformed booking ID reads as not found", func(t *testing.T) {
		f := newBookingFixture(testNow)

		_, err := f.uc.GetBooking(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, usecase.ErrBookingNotFound)
	})
}

func TestGetUserBookings(t *testing.T) {
	t.Run("user ID takes precedence over email", func(t *testing.T) {
		f := newBookingFixture(testNow)
		userID := uuid.New()
		b := builder.NewBookingBuilder().BuildReconstructed()

		f.bookings.On("FindByUserID", mock.Anything, userID).Return([]*booking.Booking{b}, nil)

		email := "guest@example.com"
		userIDStr := userID.String()
		list, err := f.uc.GetUserBookings(context.Background(), usecase.GetUserBookingsInput{
			Email:  &email,
			UserID: &userIDStr,
		})
		require.NoError(t, err)
		assert.Len(t, list, 1)
		f.bookings.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("falls back to email", func(t *testing.T) {
		f := newBookingFixture(testNow)
		b := builder.NewBookingBuilder().BuildReconstructed()

		f.bookings.On("FindByEmail", mock.Anything, mock.Anything).Return([]*booking.Booking{b}, nil)

		email := "guest@example.com"
		list, err := f.uc.GetUserBookings(context.Background(), usecase.GetUserBookingsInput{Email: &email})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("both keys absent", func(t *testing.T) {
		f := newBookingFixture(testNow)

		_, err := f.uc.GetUserBookings(context.Background(), usecase.GetUserBookingsInput{})
		assert.ErrorIs(t, err, usecase.ErrLookupKeyRequired)
		assert.Equal(t, "Either email or user ID is required", err.Error())
	})

	t.Run("malformed user ID", func(t *testing.T) {
		f := newBookingFixture(testNow)

		bad := "not-a-uuid"
		_, err := f.uc.GetUserBookings(context.Background(), usecase.GetUserBookingsInput{UserID: &bad})
		assert.ErrorIs(t, err, usecase.ErrInvalidUserID)
	})
}

func TestCompletePayment(t *testing.T) {
	t.Run("marks a pending booking paid and notifies", func(t *testing.T) {
		f := newBookingFixture(testNow)
		prop := builder.NewPropertyBuilder().MustBuildDomain()
		b := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) { bb.PropertyID = prop.ID() }).
			WithStay("2026-10-10", "2026-10-14").
			BuildReconstructed()

		f.bookings.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
		f.bookings.On("Update", mock.Anything, mock.Anything).Return(nil, nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)
		f.notifier.On("SendBookingConfirmed", mock.Anything, mock.Anything, prop).Return(nil)

		paid, err := f.uc.CompletePayment(context.Background(), b.ID().String(), "pay_123")
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPaid, paid.Status())
		require.NotNil(t, paid.PaymentID())
		assert.Equal(t, "pay_123", *paid.PaymentID())
		f.notifier.AssertExpectations(t)
	})

	t.Run("required field messages are verbatim", func(t *testing.T) {
		f := newBookingFixture(testNow)

		_, err := f.uc.CompletePayment(context.Background(), "", "pay_123")
		assert.Equal(t, "Booking ID is required", err.Error())

		_, err = f.uc.CompletePayment(context.Background(), uuid.New().String(), "  ")
		assert.Equal(t, "Payment ID is required", err.Error())
	})

	t.Run("rejects non-payable bookings", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusPaid, booking.StatusCancelled} {
			f := newBookingFixture(testNow)
			b := builder.NewBookingBuilder().
				WithStay("2026-10-10", "2026-10-14").
				WithStatus(status).
				BuildReconstructed()

			f.bookings.On("FindByID", mock.Anything, b.ID()).Return(b, nil)

			_, err := f.uc.CompletePayment(context.Background(), b.ID().String(), "pay_123")
			assert.ErrorIs(t, err, usecase.ErrPaymentNotAllowed, "status=%s", status)
			assert.Equal(t, "Payment cannot be completed for this booking", err.Error())
			f.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		}
	})

	t.Run("rejects payment once the stay has started", func(t *testing.T) {
		f := newBookingFixture(time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC))
		b := builder.NewBookingBuilder().WithStay("2026-10-10", "2026-10-14").BuildReconstructed()

		f.bookings.On("FindByID", mock.Anything, b.ID()).Return(b, nil)

		_, err := f.uc.CompletePayment(context.Background(), b.ID().String(), "pay_123")
		assert.ErrorIs(t, err, usecase.ErrPaymentNotAllowed)
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("computes refund before cancelling", func(t *testing.T) {
		// 39 days of lead time: full refund tier.
		f := newBookingFixture(testNow)
		prop := builder.NewPropertyBuilder().MustBuildDomain()
		b := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) { bb.PropertyID = prop.ID() }).
			WithStay("2026-10-10", "2026-10-14").
			WithAmount(40000).
			WithStatus(booking.StatusPaid).
			BuildReconstructed()

		f.bookings.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
		f.bookings.On("Update", mock.Anything, mock.Anything).Return(nil, nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)
		f.notifier.On("SendBookingCancelled", mock.Anything, mock.Anything, prop, int64(40000)).Return(nil)

		result, err := f.uc.CancelBooking(context.Background(), b.ID().String(), nil)
		require.NoError(t, err)

		assert.Equal(t, int64(40000), result.RefundAmount)
		assert.Equal(t, booking.StatusCancelled, result.Booking.Status())
		f.notifier.AssertExpectations(t)
	})

	t.Run("half refund inside the 3 to 7 day window", func(t *testing.T) {
		f := newBookingFixture(time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC))
		prop := builder.NewPropertyBuilder().MustBuildDomain()
		b := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) { bb.PropertyID = prop.ID() }).
			WithStay("2026-10-10", "2026-10-14").
			WithAmount(40000).
			WithStatus(booking.StatusPaid).
			BuildReconstructed()

		f.bookings.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
		f.bookings.On("Update", mock.Anything, mock.Anything).Return(nil, nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)
		f.notifier.On("SendBookingCancelled", mock.Anything, mock.Anything, prop, int64(20000)).Return(nil)

		result, err := f.uc.CancelBooking(context.Background(), b.ID().String(), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(20000), result.RefundAmount)
	})

	t.Run("pending booking cancels with zero refund", func(t *testing.T) {
		f := newBookingFixture(testNow)
		prop := builder.NewPropertyBuilder().MustBuildDomain()
		b := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) { bb.PropertyID = prop.ID() }).
			WithStay("2026-10-10", "2026-10-14").
			BuildReconstructed()

		f.bookings.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
		f.bookings.On("Update", mock.Anything, mock.Anything).Return(nil, nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)
		f.notifier.On("SendBookingCancelled", mock.Anything, mock.Anything, prop, int64(0)).Return(nil)

		result, err := f.uc.CancelBooking(context.Background(), b.ID().String(), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.RefundAmount)
	})

	t.Run("cancelled booking cannot cancel again", func(t *testing.T) {
		f := newBookingFixture(testNow)
		b := builder.NewBookingBuilder().
			WithStay("2026-10-10", "2026-10-14").
			WithStatus(booking.StatusCancelled).
			BuildReconstructed()

		f.bookings.On("FindByID", mock.Anything, b.ID()).Return(b, nil)

		_, err := f.uc.CancelBooking(context.Background(), b.ID().String(), nil)
		assert.ErrorIs(t, err, usecase.ErrCancellationNotAllowed)
		assert.Equal(t, "Booking cannot be cancelled", err.Error())
	})

	t.Run("started stay cannot cancel", func(t *testing.T) {
		f := newBookingFixture(time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC))
		b := builder.NewBookingBuilder().
			WithStay("2026-10-10", "2026-10-14").
			WithStatus(booking.StatusPaid).
			BuildReconstructed()

		f.bookings.On("FindByID", mock.Anything, b.ID()).Return(b, nil)

		_, err := f.uc.CancelBooking(context.Background(), b.ID().String(), nil)
		assert.ErrorIs(t, err, usecase.ErrCancellationNotAllowed)
	})
}

func TestCreatePaymentPreference(t *testing.T) {
	t.Run("builds a preference for a payable booking", func(t *testing.T) {
		f := newBookingFixture(testNow)
		prop := builder.NewPropertyBuilder().MustBuildDomain()
		b := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) { bb.PropertyID = prop.ID() }).
			WithStay("2026-10-10", "2026-10-14").
			BuildReconstructed()

		f.bookings.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)
		f.gateway.On("CreatePreference", mock.Anything, mock.MatchedBy(func(pref usecase.PaymentPreference) bool {
			return pref.BookingID == b.ID() && pref.Amount == b.Amount()
		})).Return(&usecase.PaymentPreferenceResult{ID: "pref_1", InitPoint: "https://pay.example.com/pref_1"}, nil)

		pref, err := f.uc.CreatePaymentPreference(context.Background(), b.ID().String())
		require.NoError(t, err)
		assert.Equal(t, "pref_1", pref.ID)
	})

	t.Run("rejects a paid booking", func(t *testing.T) {
		f := newBookingFixture(testNow)
		prop := builder.NewPropertyBuilder().MustBuildDomain()
		b := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) { bb.PropertyID = prop.ID() }).
			WithStay("2026-10-10", "2026-10-14").
			WithStatus(booking.StatusPaid).
			BuildReconstructed()

		f.bookings.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)

		_, err := f.uc.CreatePaymentPreference(context.Background(), b.ID().String())
		assert.ErrorIs(t, err, usecase.ErrPaymentNotAllowed)
	})
}

func TestProcessPaymentNotification(t *testing.T) {
	t.Run("approved payment completes the booking", func(t *testing.T) {
		f := newBookingFixture(testNow)
		prop := builder.NewPropertyBuilder().MustBuildDomain()
		b := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) { bb.PropertyID = prop.ID() }).
			WithStay("2026-10-10", "2026-10-14").
			BuildReconstructed()

		f.gateway.On("GetPayment", mock.Anything, "pay_9").Return(&usecase.PaymentInfo{
			ID:                "pay_9",
			Status:            "approved",
			ExternalReference: b.ID().String(),
		}, nil)
		f.bookings.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
		f.bookings.On("Update", mock.Anything, mock.Anything).Return(nil, nil)
		f.properties.On("FindByID", mock.Anything, prop.ID()).Return(prop, nil)
		f.notifier.On("SendBookingConfirmed", mock.Anything, mock.Anything, prop).Return(nil)

		paid, err := f.uc.ProcessPaymentNotification(context.Background(), "pay_9")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPaid, paid.Status())
	})

	t.Run("non-approved payment is rejected", func(t *testing.T) {
		f := newBookingFixture(testNow)

		f.gateway.On("GetPayment", mock.Anything, "pay_9").Return(&usecase.PaymentInfo{
			ID:     "pay_9",
			Status: "in_process",
		}, nil)

		_, err := f.uc.ProcessPaymentNotification(context.Background(), "pay_9")
		assert.ErrorIs(t, err, usecase.ErrPaymentNotApproved)
		f.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing payment ID", func(t *testing.T) {
		f := newBookingFixture(testNow)

		_, err := f.uc.ProcessPaymentNotification(context.Background(), " ")
		assert.Equal(t, "Payment ID is required", err.Error())
	})
}
