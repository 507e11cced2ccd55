package components

import (
	"github.com/GRAMAPHENIA/resio-sub000/internal/handler"
	"github.com/GRAMAPHENIA/resio-sub000/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewPropertyHandler,
		api.NewWebhookHandler,
	),
	fx.Invoke(handler.NewRouter),
)
