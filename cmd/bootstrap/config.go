package bootstrap

import (
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
