package components

import (
	"log/slog"

	"charterlink/internal/infra/channels"
	"charterlink/internal/pkg/clock"
	"charterlink/internal/pkg/config"
	"charterlink/internal/usecase"
	"charterlink/internal/usecase/commands"
	"charterlink/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseChannelsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.PaymentsConfig { return cfg.Payments },
)

var usecaseChannelsModule = fx.Module("usecase/channels",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *channels.PushSender { return channels.NewPushSender(cfg.Push) },
			fx.As(new(commands.PushSender)),
		),
		fx.Annotate(
			func(cfg config.Config) *channels.EmailSender { return channels.NewEmailSender(cfg.Email) },
			fx.As(new(commands.EmailSender)),
		),
		fx.Annotate(
			func(cfg config.Config) *channels.SMSSender { return channels.NewSMSSender(cfg.SMS) },
			fx.As(new(commands.SMSSender)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(reads queries.RecipientReadStore, cfg config.Config, logger *slog.Logger) (queries.RecipientQueries, error) {
			adminID, err := uuid.Parse(cfg.Platform.AdminUserID)
			if err != nil {
				return nil, err
			}
			return queries.NewRecipientQueries(reads, adminID, logger), nil
		},
		queries.NewNotificationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewNotifyCommands,
		commands.NewWebhookCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
