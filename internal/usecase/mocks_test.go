//go:build unit

package usecase_test

import (
	"context"
	"time"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/property"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/user"
	"github.com/GRAMAPHENIA/resio-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindByEmail(ctx context.Context, email user.Email) ([]*booking.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindByStatus(ctx context.Context, status booking.Status) ([]*booking.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindConflicting(ctx context.Context, propertyID uuid.UUID, stay booking.DateRange, excludeID *uuid.UUID) ([]*booking.Booking, error) {
	args := m.Called(ctx, propertyID, stay, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

// Save and Update echo the stored booking when configured with a nil result,
// matching a store that persists exactly what it was given.
func (m *mockBookingRepo) Save(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		if err := args.Error(1); err != nil {
			return nil, err
		}
		return b, nil
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		if err := args.Error(1); err != nil {
			return nil, err
		}
		return b, nil
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBookingRepo) CleanupExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

type mockPropertyRepo struct {
	mock.Mock
}

func (m *mockPropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *mockPropertyRepo) FindBySlug(ctx context.Context, slug string) (*property.Property, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *mockPropertyRepo) FindAll(ctx context.Context) ([]*property.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*property.Property), args.Error(1)
}

func (m *mockPropertyRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*property.Property, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*property.Property), args.Error(1)
}

func (m *mockPropertyRepo) FindAvailable(ctx context.Context) ([]*property.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*property.Property), args.Error(1)
}

func (m *mockPropertyRepo) Save(ctx context.Context, p *property.Property) (*property.Property, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *mockPropertyRepo) Update(ctx context.Context, p *property.Property) (*property.Property, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *mockPropertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPropertyRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockPaymentGateway struct {
	mock.Mock
}

func (m *mockPaymentGateway) CreatePreference(ctx context.Context, pref usecase.PaymentPreference) (*usecase.PaymentPreferenceResult, error) {
	args := m.Called(ctx, pref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PaymentPreferenceResult), args.Error(1)
}

func (m *mockPaymentGateway) GetPayment(ctx context.Context, paymentID string) (*usecase.PaymentInfo, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PaymentInfo), args.Error(1)
}

type mockNotificationSender struct {
	mock.Mock
}

func (m *mockNotificationSender) SendBookingConfirmed(ctx context.Context, b *booking.Booking, p *property.Property) error {
	args := m.Called(ctx, b, p)
	return args.Error(0)
}

func (m *mockNotificationSender) SendBookingCancelled(ctx context.Context, b *booking.Booking, p *property.Property, refund int64) error {
	args := m.Called(ctx, b, p, refund)
	return args.Error(0)
}
