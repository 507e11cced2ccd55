package api

import (
	"errors"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/property"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/user"
)

// Validation failures raised while parsing guest input into value objects.
// Their messages are safe to show and map to a 400.
var domainErrors = []error{
	booking.ErrEndBeforeStart,
	booking.ErrInvalidDateFormat,
	booking.ErrInvalidName,
	booking.ErrInvalidStatus,
	booking.ErrInvalidAmount,
	booking.ErrPropertyUnavailable,
	property.ErrInvalidNights,
	user.ErrInvalidEmail,
}

func isDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
