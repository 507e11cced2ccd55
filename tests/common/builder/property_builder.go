//go:build unit || e2e

package builder

import (
	"time"

	domproperty "github.com/GRAMAPHENIA/resio-sub000/internal/domain/property"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
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

func NewPropertyBuilder() *PropertyBuilder {
	now := time.Now()
	slug := "casa-del-mar"
	return &PropertyBuilder{
		ID:            uuid.New(),
		Name:          "Casa del Mar",
		Description:   "Beachfront house with a terrace",
		Location:      "Mar del Plata",
		PricePerNight: 10000,
		Images:        []string{"https://example.com/casa-del-mar.jpg"},
		OwnerID:       uuid.New(),
		Available:     true,
		Bedrooms:      3,
		Bathrooms:     2,
		Area:          120.5,
		Slug:          &slug,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (p *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(p)
	return p
}

func (p *PropertyBuilder) WithPricePerNight(price int64) *PropertyBuilder {
	p.PricePerNight = price
	return p
}

func (p *PropertyBuilder) WithAvailable(available bool) *PropertyBuilder {
	p.Available = available
	return p
}

func (p *PropertyBuilder) BuildDomain() (*domproperty.Property, error) {
	return domproperty.NewProperty(domproperty.NewPropertyParams{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Location:      p.Location,
		PricePerNight: p.PricePerNight,
		Images:        p.Images,
		OwnerID:       p.OwnerID,
		Available:     p.Available,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		Area:          p.Area,
		Slug:          p.Slug,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	})
}

// MustBuildDomain is for tests where the builder state is known valid.
func (p *PropertyBuilder) MustBuildDomain() *domproperty.Property {
	prop, err := p.BuildDomain()
	if err != nil {
		panic(err)
	}
	return prop
}
