package property

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBlankName        = errors.New("property name cannot be blank")
	ErrBlankDescription = errors.New("property description cannot be blank")
	ErrBlankLocation    = errors.New("property location cannot be blank")
	ErrInvalidPrice     = errors.New("price per night must be positive")
	ErrInvalidBedrooms  = errors.New("property must have at least one bedroom")
	ErrInvalidBathrooms = errors.New("property must have at least one bathroom")
	ErrInvalidArea      = errors.New("property area must be positive")
	ErrInvalidNights    = errors.New("nights must be positive")
)

// Property is a read-only aggregate for the booking flow: listings are
// managed elsewhere, the booking core only prices stays against them.
type Property struct {
	id            uuid.UUID
	name          string
	description   string
	location      string
	pricePerNight int64
	images        []string
	ownerID       uuid.UUID
	available     bool
	bedrooms      int
	bathrooms     int
	area          float64
	slug          *string
	createdAt     time.Time
	updatedAt     time.Time
}

type NewPropertyParams struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Location      string
	PricePerNight int64
	Images        []string
	OwnerID       uuid.UUID
	Available     bool
	Bedrooms      int
	Bathrooms     int
	Area          float64
	Slug          *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewProperty(p NewPropertyParams) (*Property, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrBlankName
	}
	if strings.TrimSpace(p.Description) == "" {
		return nil, ErrBlankDescription
	}
	if strings.TrimSpace(p.Location) == "" {
		return nil, ErrBlankLocation
	}
	if p.PricePerNight <= 0 {
		return nil, ErrInvalidPrice
	}
	if p.Bedrooms < 1 {
		return nil, ErrInvalidBedrooms
	}
	if p.Bathrooms < 1 {
		return nil, ErrInvalidBathrooms
	}
	if p.Area <= 0 {
		return nil, ErrInvalidArea
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	images := make([]string, len(p.Images))
	copy(images, p.Images)

	return &Property{
		id:            p.ID,
		name:          strings.TrimSpace(p.Name),
		description:   strings.TrimSpace(p.Description),
		location:      strings.TrimSpace(p.Location),
		pricePerNight: p.PricePerNight,
		images:        images,
		ownerID:       p.OwnerID,
		available:     p.Available,
		bedrooms:      p.Bedrooms,
		bathrooms:     p.Bathrooms,
		area:          p.Area,
		slug:          p.Slug,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}, nil
}

// CalculateTotalPrice is the single place stay pricing happens; bookings
// capture the result at creation time and never re-derive it.
func (p *Property) CalculateTotalPrice(nights int) (int64, error) {
	if nights <= 0 {
		return 0, ErrInvalidNights
	}
	return p.pricePerNight * int64(nights), nil
}

func (p *Property) ID() uuid.UUID        { return p.id }
func (p *Property) Name() string         { return p.name }
func (p *Property) Description() string  { return p.description }
func (p *Property) Location() string     { return p.location }
func (p *Property) PricePerNight() int64 { return p.pricePerNight }
func (p *Property) OwnerID() uuid.UUID   { return p.ownerID }
func (p *Property) Available() bool      { return p.available }
func (p *Property) Bedrooms() int        { return p.bedrooms }
func (p *Property) Bathrooms() int       { return p.bathrooms }
func (p *Property) Area() float64        { return p.area }
func (p *Property) Slug() *string        { return p.slug }
func (p *Property) CreatedAt() time.Time { return p.createdAt }
func (p *Property) UpdatedAt() time.Time { return p.updatedAt }

func (p *Property) Images() []string {
	images := make([]string, len(p.images))
	copy(images, p.images)
	return images
}
