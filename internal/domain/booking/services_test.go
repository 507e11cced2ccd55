//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/property"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/user"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/clock"
	"github.com/GRAMAPHENIA/resio-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(now time.Time) (*booking.Services, *clock.MockClock) {
	mc := clock.NewMockClock(now)
	return booking.NewServices(mc), mc
}

func testContact(t *testing.T) booking.ContactInfo {
	t.Helper()
	email, err := user.NewEmail("guest@example.com")
	require.NoError(t, err)
	contact, err := booking.NewContactInfo("Ana Torres", email, nil)
	require.NoError(t, err)
	return contact
}

func TestServicesCreateBooking(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("prices the stay at the nightly rate", func(t *testing.T) {
		services, _ := newServices(now)
		prop := builder.NewPropertyBuilder().WithPricePerNight(100).MustBuildDomain()
		stay, err := booking.NewDateRangeFromStrings("2026-10-10", "2026-10-14")
		require.NoError(t, err)

		b, err := services.CreateBooking(uuid.New(), prop, testContact(t), stay, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(400), b.Amount(), "4 nights at 100 per night")
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, prop.ID(), b.PropertyID())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("rejects unpublished property", func(t *testing.T) {
		services, _ := newServices(now)
		prop := builder.NewPropertyBuilder().WithAvailable(false).MustBuildDomain()
		stay, err := booking.NewDateRangeFromStrings("2026-10-10", "2026-10-14")
		require.NoError(t, err)

		_, err = services.CreateBooking(uuid.New(), prop, testContact(t), stay, nil)
		assert.ErrorIs(t, err, booking.ErrPropertyUnavailable)
	})

	t.Run("attaches the user when present", func(t *testing.T) {
		services, _ := newServices(now)
		prop := builder.NewPropertyBuilder().MustBuildDomain()
		stay, err := booking.NewDateRangeFromStrings("2026-10-10", "2026-10-14")
		require.NoError(t, err)
		userID := uuid.New()

		b, err := services.CreateBooking(uuid.New(), prop, testContact(t), stay, &userID)
		require.NoError(t, err)
		require.NotNil(t, b.UserID())
		assert.Equal(t, userID, *b.UserID())
	})
}

func TestServicesRefundAmount(t *testing.T) {
	// Stay starts 2026-10-10; the clock moves to probe each tier.
	paidBooking := func(amount int64) *booking.Booking {
		return builder.NewBookingBuilder().
			WithStay("2026-10-10", "2026-10-14").
			WithAmount(amount).
			WithStatus(booking.StatusPaid).
			BuildReconstructed()
	}

	cases := []struct {
		name   string
		now    time.Time
		amount int64
		refund int64
	}{
		{
			name:   "10 days ahead refunds in full",
			now:    time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
			amount: 40000,
			refund: 40000,
		},
		{
			name:   "5 days ahead refunds half",
			now:    time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
			amount: 40000,
			refund: 20000,
		},
		{
			name:   "1 day ahead refunds nothing",
			now:    time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC),
			amount: 40000,
			refund: 0,
		},
		{
			name:   "exactly 7 days ahead refunds half",
			now:    time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
			amount: 40000,
			refund: 20000,
		},
		{
			name:   "exactly 3 days ahead refunds half",
			now:    time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC),
			amount: 40000,
			refund: 20000,
		},
		{
			name:   "2 days ahead refunds nothing",
			now:    time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC),
			amount: 40000,
			refund: 0,
		},
		{
			name:   "odd amount halves with integer division",
			now:    time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
			amount: 33333,
			refund: 16666,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			services, _ := newServices(tc.now)
			assert.Equal(t, tc.refund, services.RefundAmount(paidBooking(tc.amount)))
		})
	}

	t.Run("non-paid bookings refund zero", func(t *testing.T) {
		services, _ := newServices(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

		pending := builder.NewBookingBuilder().WithStay("2026-10-10", "2026-10-14").BuildReconstructed()
		assert.Equal(t, int64(0), services.RefundAmount(pending))

		cancelled := builder.NewBookingBuilder().
			WithStay("2026-10-10", "2026-10-14").
			WithStatus(booking.StatusCancelled).
			BuildReconstructed()
		assert.Equal(t, int64(0), services.RefundAmount(cancelled))
	})
}

func TestServicesCanModifyDates(t *testing.T) {
	stay := func(status booking.Status) *booking.Booking {
		return builder.NewBookingBuilder().
			WithStay("2026-10-10", "2026-10-14").
			WithStatus(status).
			BuildReconstructed()
	}

	t.Run("allowed with enough lead time", func(t *testing.T) {
		services, _ := newServices(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
		assert.True(t, services.CanModifyDates(stay(booking.StatusPaid)))
	})

	t.Run("rejected too close to check-in", func(t *testing.T) {
		services, _ := newServices(time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC))
		assert.False(t, services.CanModifyDates(stay(booking.StatusPaid)))
	})

	t.Run("rejected when cancelled", func(t *testing.T) {
		services, _ := newServices(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
		assert.False(t, services.CanModifyDates(stay(booking.StatusCancelled)))
	})
}

func TestServicesValidateModification(t *testing.T) {
	stay := func(status booking.Status) *booking.Booking {
		return builder.NewBookingBuilder().
			WithStay("2026-10-10", "2026-10-14").
			WithStatus(status).
			BuildReconstructed()
	}

	t.Run("cancelled bookings are immutable", func(t *testing.T) {
		services, _ := newServices(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, services.ValidateModification(stay(booking.StatusCancelled)), booking.ErrBookingImmutable)
	})

	t.Run("past stays are expired", func(t *testing.T) {
		services, _ := newServices(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, services.ValidateModification(stay(booking.StatusPaid)), booking.ErrBookingExpired)
	})

	t.Run("upcoming paid stay passes", func(t *testing.T) {
		services, _ := newServices(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
		assert.NoError(t, services.ValidateModification(stay(booking.StatusPaid)))
	})
}

func TestPropertyCalculateTotalPrice(t *testing.T) {
	prop := builder.NewPropertyBuilder().WithPricePerNight(12500).MustBuildDomain()

	total, err := prop.CalculateTotalPrice(4)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), total)

	_, err = prop.CalculateTotalPrice(0)
	assert.ErrorIs(t, err, property.ErrInvalidNights)

	_, err = prop.CalculateTotalPrice(-2)
	assert.ErrorIs(t, err, property.ErrInvalidNights)
}
