package components

import (
	repo_impl "github.com/GRAMAPHENIA/resio-sub000/internal/infra/repository"
	"github.com/GRAMAPHENIA/resio-sub000/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewPropertyRepository,
			fx.As(new(usecase.PropertyRepository)),
		),
	),
)
