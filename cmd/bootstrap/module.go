package bootstrap

import (
	"charterlink/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.SyncModule,
	components.WorkerModule,
	components.HandlerModule,
)
