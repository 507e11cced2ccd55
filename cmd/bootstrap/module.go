package bootstrap

import (
	"github.com/GRAMAPHENIA/resio-sub000/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JobsModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
