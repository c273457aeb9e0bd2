package components

import (
	"charterlink/internal/infra/readstore"
	"charterlink/internal/infra/writerepo"
	"charterlink/internal/usecase/commands"
	"charterlink/internal/usecase/queries"
	"charterlink/internal/worker"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read side
		fx.Annotate(
			readstore.NewRecipientReadStore,
			fx.As(new(queries.RecipientReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(
			readstore.NewContactReadStore,
			fx.As(new(commands.RecipientContactReads)),
		),
		// Write side
		fx.Annotate(
			writerepo.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			writerepo.NewUserDeviceRepository,
			fx.As(new(commands.UserDeviceRepository)),
		),
		fx.Annotate(
			writerepo.NewWebhookLedgerRepository,
			fx.As(new(commands.WebhookLedger)),
		),
		fx.Annotate(
			writerepo.NewPaymentRepository,
			fx.As(new(commands.PaymentWrites)),
		),
		fx.Annotate(
			writerepo.NewBatchRepository,
			fx.As(new(worker.MaintenanceWrites)),
		),
	),
)
