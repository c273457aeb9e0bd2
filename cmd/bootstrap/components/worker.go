package components

import (
	"context"
	"log/slog"

	"charterlink/internal/pkg/config"
	"charterlink/internal/usecase/commands"
	"charterlink/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(StartScheduler),
)

func NewScheduler(cfg config.Config, repo worker.MaintenanceWrites, notify commands.NotifyCommands, logger *slog.Logger) *worker.Scheduler {
	return worker.NewScheduler(logger,
		worker.NewQuoteExpiryJob(cfg.Worker, repo, notify, logger),
		worker.NewOverdueInvoiceJob(cfg.Worker, repo, logger),
	)
}

func StartScheduler(lc fx.Lifecycle, s *worker.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start(context.WithoutCancel(ctx))
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
