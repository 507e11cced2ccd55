package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/clock"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/config"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

// AvailabilityService answers "can this property be booked for these dates
// right now". Only paid bookings are hard conflicts; recent pending bookings
// are an advisory anti-double-submit window, not a lock.
type AvailabilityService struct {
	bookings      BookingRepository
	clock         clock.Clock
	pendingWindow time.Duration
}

func NewAvailabilityService(bookings BookingRepository, c clock.Clock, cfg config.BookingConfig) *AvailabilityService {
	return &AvailabilityService{
		bookings:      bookings,
		clock:         c,
		pendingWindow: cfg.PendingWindow,
	}
}

// IsPropertyAvailable reports whether no paid booking overlaps the stay.
// excludeID skips one booking, used when re-validating its own dates.
func (s *AvailabilityService) IsPropertyAvailable(
	ctx context.Context,
	propertyID uuid.UUID,
	stay booking.DateRange,
	excludeID *uuid.UUID,
) (bool, error) {
	conflicts, err := s.bookings.FindConflicting(ctx, propertyID, stay, excludeID)
	if err != nil {
		return false, errs.Wrap(err, "failed to load conflicting bookings")
	}

	for _, b := range conflicts {
		if b.Status().IsPaid() && b.Stay().Overlaps(stay) {
			return false, nil
		}
	}
	return true, nil
}

// HasRecentPendingBookings reports whether a pending booking created inside
// the configured window overlaps the stay. Two racing guests can still both
// end up pending outside the window; only payment settles the conflict.
func (s *AvailabilityService) HasRecentPendingBookings(
	ctx context.Context,
	propertyID uuid.UUID,
	stay booking.DateRange,
) (bool, error) {
	conflicts, err := s.bookings.FindConflicting(ctx, propertyID, stay, nil)
	if err != nil {
		return false, errs.Wrap(err, "failed to load conflicting bookings")
	}

	cutoff := s.clock.Now().Add(-s.pendingWindow)
	for _, b := range conflicts {
		if b.Status().IsPending() && !b.CreatedAt().Before(cutoff) && b.Stay().Overlaps(stay) {
			return true, nil
		}
	}
	return false, nil
}

// UnavailableDates returns the stays of all paid bookings for calendar
// rendering.
func (s *AvailabilityService) UnavailableDates(ctx context.Context, propertyID uuid.UUID) ([]booking.DateRange, error) {
	all, err := s.bookings.FindByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load property bookings")
	}

	ranges := make([]booking.DateRange, 0, len(all))
	for _, b := range all {
		if b.Status().IsPaid() {
			ranges = append(ranges, b.Stay())
		}
	}
	return ranges, nil
}

// CleanupExpiredPendingBookings sweeps stale pending holds so they never
// block a new booking attempt.
func (s *AvailabilityService) CleanupExpiredPendingBookings(ctx context.Context) (int64, error) {
	count, err := s.bookings.CleanupExpired(ctx, s.pendingWindow)
	if err != nil {
		return 0, errs.Wrap(err, "failed to cleanup expired pending bookings")
	}
	if count > 0 {
		slog.Info("expired pending bookings cancelled", "count", count)
	}
	return count, nil
}
