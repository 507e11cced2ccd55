package request

// CreateBookingRequest carries the raw guest input. Presence and format
// checks happen in the usecase layer so the error messages stay uniform
// across entry points.
type CreateBookingRequest struct {
	PropertyID   string  `json:"property_id"`
	ContactName  string  `json:"contact_name"`
	ContactEmail string  `json:"contact_email"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	UserID       *string `json:"user_id,omitempty"`
}

type CompletePaymentRequest struct {
	PaymentID string `json:"payment_id"`
}

type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// PaymentWebhookRequest mirrors the gateway's notification payload; only the
// payment data reference is consumed.
type PaymentWebhookRequest struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}
