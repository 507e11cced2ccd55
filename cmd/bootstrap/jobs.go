package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/config"
	"github.com/GRAMAPHENIA/resio-sub000/internal/usecase"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Invoke(StartCleanupJob),
)

// StartCleanupJob runs the expired-hold sweep on a fixed interval for the
// whole process lifetime. Booking creation also sweeps inline, so the job is
// a backstop for idle periods, not the primary mechanism.
func StartCleanupJob(lc fx.Lifecycle, availability *usecase.AvailabilityService, cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Booking.CleanupInterval)
				defer ticker.Stop()

				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if _, err := availability.CleanupExpiredPendingBookings(ctx); err != nil {
							slog.Error("cleanup job failed", "error", err)
						}
					}
				}
			}()
			slog.Info("cleanup job started", "interval", cfg.Booking.CleanupInterval)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
