package components

import (
	"log/slog"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/infra/notification"
	"github.com/GRAMAPHENIA/resio-sub000/internal/infra/payment"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/clock"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/config"
	"github.com/GRAMAPHENIA/resio-sub000/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		booking.NewServices,
		func(bookings usecase.BookingRepository, c clock.Clock, cfg config.Config) *usecase.AvailabilityService {
			return usecase.NewAvailabilityService(bookings, c, cfg.Booking)
		},
		fx.Annotate(
			func(cfg config.Config) *payment.Client {
				return payment.NewClient(cfg.Payment)
			},
			fx.As(new(usecase.PaymentGateway)),
		),
		fx.Annotate(
			func(logger *slog.Logger) *notification.Sender {
				return notification.NewSender(logger)
			},
			fx.As(new(usecase.NotificationSender)),
		),
		usecase.NewBookingUseCase,
		usecase.NewPropertyUseCase,
	),
)
