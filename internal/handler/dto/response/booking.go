package response

import (
	"time"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/usecase"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID                `json:"id"`
	Code          string                   `json:"code"`
	PropertyID    uuid.UUID                `json:"propertyId"`
	Property      *PropertySummaryResponse `json:"property,omitempty"`
	ContactName   string                   `json:"contactName"`
	ContactEmail  string                   `json:"contactEmail"`
	ContactPhone  *string                  `json:"contactPhone,omitempty"`
	StartDate     string                   `json:"startDate"`
	EndDate       string                   `json:"endDate"`
	Nights        int                      `json:"nights"`
	Amount        int64                    `json:"amount"`
	Status        string                   `json:"status"`
	StatusDisplay string                   `json:"statusDisplay"`
	StatusColor   string                   `json:"statusColor"`
	PaymentID     *string                  `json:"paymentId,omitempty"`
	UserID        *uuid.UUID               `json:"userId,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     *time.Time               `json:"updatedAt,omitempty"`
}

type CancelBookingResponse struct {
	Booking      *BookingResponse `json:"booking"`
	RefundAmount int64            `json:"refundAmount"`
}

type PaymentPreferenceResponse struct {
	PreferenceID string `json:"preferenceId"`
	InitPoint    string `json:"initPoint"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID(),
		Code:          b.Code(),
		PropertyID:    b.PropertyID(),
		ContactName:   b.Contact().Name(),
		ContactEmail:  b.Contact().Email().Value(),
		ContactPhone:  b.Contact().Phone(),
		StartDate:     b.Stay().StartISO(),
		EndDate:       b.Stay().EndISO(),
		Nights:        b.Stay().Nights(),
		Amount:        b.Amount(),
		Status:        b.Status().String(),
		StatusDisplay: b.Status().DisplayName(),
		StatusColor:   b.Status().Color(),
		PaymentID:     b.PaymentID(),
		UserID:        b.UserID(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

func FromBookingWithProperty(pair *usecase.BookingWithProperty) *BookingResponse {
	resp := FromBooking(pair.Booking)
	resp.Property = FromPropertySummary(pair.Property)
	return resp
}

func FromCancelResult(result *usecase.CancelBookingResult) *CancelBookingResponse {
	return &CancelBookingResponse{
		Booking:      FromBooking(result.Booking),
		RefundAmount: result.RefundAmount,
	}
}

func FromPaymentPreference(pref *usecase.PaymentPreferenceResult) *PaymentPreferenceResponse {
	return &PaymentPreferenceResponse{
		PreferenceID: pref.ID,
		InitPoint:    pref.InitPoint,
	}
}
