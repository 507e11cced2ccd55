package usecase

import (
	"context"
	"strings"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/property"
	"github.com/GRAMAPHENIA/resio-sub000/internal/infra"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

// PropertyUseCase is the read side for listing pages and the availability
// calendar. Listing management itself lives outside this service.
type PropertyUseCase interface {
	GetProperty(ctx context.Context, propertyID string) (*property.Property, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*property.Property, error)
	ListProperties(ctx context.Context, onlyAvailable bool) ([]*property.Property, error)
	UnavailableDates(ctx context.Context, propertyID string) ([]booking.DateRange, error)
}

type propertyUseCaseImpl struct {
	properties   PropertyRepository
	availability *AvailabilityService
}

func NewPropertyUseCase(properties PropertyRepository, availability *AvailabilityService) PropertyUseCase {
	return &propertyUseCaseImpl{
		properties:   properties,
		availability: availability,
	}
}

func (u *propertyUseCaseImpl) GetProperty(ctx context.Context, propertyID string) (*property.Property, error) {
	id, err := uuid.Parse(strings.TrimSpace(propertyID))
	if err != nil {
		return nil, ErrPropertyNotFound
	}

	prop, err := u.properties.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "failed to find property")
	}
	return prop, nil
}

func (u *propertyUseCaseImpl) GetPropertyBySlug(ctx context.Context, slug string) (*property.Property, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrPropertyNotFound
	}

	prop, err := u.properties.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "failed to find property by slug")
	}
	return prop, nil
}

func (u *propertyUseCaseImpl) ListProperties(ctx context.Context, onlyAvailable bool) ([]*property.Property, error) {
	var (
		list []*property.Property
		err  error
	)
	if onlyAvailable {
		list, err = u.properties.FindAvailable(ctx)
	} else {
		list, err = u.properties.FindAll(ctx)
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to list properties")
	}
	return list, nil
}

func (u *propertyUseCaseImpl) UnavailableDates(ctx context.Context, propertyID string) ([]booking.DateRange, error) {
	id, err := uuid.Parse(strings.TrimSpace(propertyID))
	if err != nil {
		return nil, ErrPropertyNotFound
	}

	exists, err := u.properties.Exists(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check property existence")
	}
	if !exists {
		return nil, ErrPropertyNotFound
	}

	return u.availability.UnavailableDates(ctx, id)
}
