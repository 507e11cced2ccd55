package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// NewStatus parses a persisted status tag. Construction from arbitrary
// strings goes through here so an unknown tag can never enter the domain.
func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsPending() bool   { return s == StatusPending }
func (s Status) IsPaid() bool      { return s == StatusPaid }
func (s Status) IsCancelled() bool { return s == StatusCancelled }

// CanBeCancelled reports whether the status allows a cancel transition;
// the date guard lives on the entity.
func (s Status) CanBeCancelled() bool {
	return s == StatusPending || s == StatusPaid
}

func (s Status) DisplayName() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusPaid:
		return "Paid"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// Color is the presentation tag the booking UI uses for status badges.
func (s Status) Color() string {
	switch s {
	case StatusPending:
		return "yellow"
	case StatusPaid:
		return "green"
	case StatusCancelled:
		return "red"
	default:
		return "gray"
	}
}
