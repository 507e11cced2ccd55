package response

import (
	"time"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/property"

	"github.com/google/uuid"
)

type PropertyResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PricePerNight int64     `json:"pricePerNight"`
	Images        []string  `json:"images"`
	Available     bool      `json:"available"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Area          float64   `json:"area"`
	Slug          *string   `json:"slug,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PropertySummaryResponse is the trimmed listing shape embedded in booking
// responses.
type PropertySummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	PricePerNight int64     `json:"pricePerNight"`
	Slug          *string   `json:"slug,omitempty"`
}

type UnavailableRangeResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func FromProperty(p *property.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:            p.ID(),
		Name:          p.Name(),
		Description:   p.Description(),
		Location:      p.Location(),
		PricePerNight: p.PricePerNight(),
		Images:        p.Images(),
		Available:     p.Available(),
		Bedrooms:      p.Bedrooms(),
		Bathrooms:     p.Bathrooms(),
		Area:          p.Area(),
		Slug:          p.Slug(),
		CreatedAt:     p.CreatedAt(),
	}
}

func FromPropertySummary(p *property.Property) *PropertySummaryResponse {
	return &PropertySummaryResponse{
		ID:            p.ID(),
		Name:          p.Name(),
		Location:      p.Location(),
		PricePerNight: p.PricePerNight(),
		Slug:          p.Slug(),
	}
}

func FromUnavailableRanges(ranges []booking.DateRange) []UnavailableRangeResponse {
	out := make([]UnavailableRangeResponse, len(ranges))
	for i, r := range ranges {
		out[i] = UnavailableRangeResponse{
			StartDate: r.StartISO(),
			EndDate:   r.EndISO(),
		}
	}
	return out
}
