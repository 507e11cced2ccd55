package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/user"
)

var (
	ErrEndBeforeStart    = errors.New("end date must be after start date")
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidName       = errors.New("contact name must be between 2 and 100 characters")
)

const isoDateLayout = "2006-01-02"

// DateRange is a stay interval at day granularity, half-open on the end:
// checkout day is free for the next guest's check-in.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if !start.Before(end) {
		return DateRange{}, ErrEndBeforeStart
	}
	return DateRange{start: start, end: end}, nil
}

func NewDateRangeFromStrings(startStr, endStr string) (DateRange, error) {
	start, err := time.Parse(isoDateLayout, strings.TrimSpace(startStr))
	if err != nil {
		return DateRange{}, ErrInvalidDateFormat
	}
	end, err := time.Parse(isoDateLayout, strings.TrimSpace(endStr))
	if err != nil {
		return DateRange{}, ErrInvalidDateFormat
	}
	return NewDateRange(start, end)
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

func (r DateRange) Nights() int {
	hours := r.end.Sub(r.start).Hours()
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	return nights
}

func (r DateRange) IsInFuture(now time.Time) bool {
	return now.Before(r.start)
}

func (r DateRange) IsInPast(now time.Time) bool {
	return now.After(r.end)
}

func (r DateRange) IsCurrent(now time.Time) bool {
	return !r.IsInFuture(now) && !r.IsInPast(now)
}

// Overlaps is half-open on both sides: ranges that only share a boundary day
// (one checkout, one check-in) do not conflict.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && r.end.After(other.start)
}

// Contains is inclusive of both boundary days.
func (r DateRange) Contains(t time.Time) bool {
	t = truncateToDay(t)
	return !t.Before(r.start) && !t.After(r.end)
}

func (r DateRange) StartISO() string {
	return r.start.Format(isoDateLayout)
}

func (r DateRange) EndISO() string {
	return r.end.Format(isoDateLayout)
}

func (r DateRange) Format() string {
	return fmt.Sprintf("%s – %s", r.start.Format("Jan 2, 2006"), r.end.Format("Jan 2, 2006"))
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ContactInfo identifies the guest on a booking; bookings can be placed
// without an account, so this is not tied to a User.
type ContactInfo struct {
	name  string
	email user.Email
	phone *string
}

func NewContactInfo(name string, email user.Email, phone *string) (ContactInfo, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 100 {
		return ContactInfo{}, ErrInvalidName
	}
	return ContactInfo{name: name, email: email, phone: phone}, nil
}

func (c ContactInfo) Name() string      { return c.name }
func (c ContactInfo) Email() user.Email { return c.email }
func (c ContactInfo) Phone() *string    { return c.phone }

func (c ContactInfo) Equals(other ContactInfo) bool {
	if c.name != other.name || c.email != other.email {
		return false
	}
	if (c.phone == nil) != (other.phone == nil) {
		return false
	}
	return c.phone == nil || *c.phone == *other.phone
}
