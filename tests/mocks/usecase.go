//go:build unit || e2e

package mocks

import (
	"context"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/property"
	"github.com/GRAMAPHENIA/resio-sub000/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, in usecase.CreateBookingInput) (*usecase.BookingWithProperty, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.BookingWithProperty), args.Error(1)
}

func (m *MockBookingUseCase) GetBooking(ctx context.Context, bookingID string) (*usecase.BookingWithProperty, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.BookingWithProperty), args.Error(1)
}

func (m *MockBookingUseCase) GetUserBookings(ctx context.Context, in usecase.GetUserBookingsInput) ([]*booking.Booking, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CompletePayment(ctx context.Context, bookingID, paymentID string) (*booking.Booking, error) {
	args := m.Called(ctx, bookingID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CancelBooking(ctx context.Context, bookingID string, reason *string) (*usecase.CancelBookingResult, error) {
	args := m.Called(ctx, bookingID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CancelBookingResult), args.Error(1)
}

func (m *MockBookingUseCase) CreatePaymentPreference(ctx context.Context, bookingID string) (*usecase.PaymentPreferenceResult, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PaymentPreferenceResult), args.Error(1)
}

func (m *MockBookingUseCase) ProcessPaymentNotification(ctx context.Context, paymentID string) (*booking.Booking, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

type MockPropertyUseCase struct {
	mock.Mock
}

func (m *MockPropertyUseCase) GetProperty(ctx context.Context, propertyID string) (*property.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *MockPropertyUseCase) GetPropertyBySlug(ctx context.Context, slug string) (*property.Property, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *MockPropertyUseCase) ListProperties(ctx context.Context, onlyAvailable bool) ([]*property.Property, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*property.Property), args.Error(1)
}

func (m *MockPropertyUseCase) UnavailableDates(ctx context.Context, propertyID string) ([]booking.DateRange, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.DateRange), args.Error(1)
}
