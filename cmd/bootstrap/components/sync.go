package components

import (
	"context"
	"log/slog"

	"charterlink/internal/infra/crm"
	"charterlink/internal/pkg/clock"
	"charterlink/internal/pkg/config"
	syncpkg "charterlink/internal/sync"

	"go.uber.org/fx"
)

// SyncModule wires the durable CRM queue and its orchestrator. The queue
// starts online and drains in the background for the lifetime of the app.
var SyncModule = fx.Module("sync",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *crm.Client { return crm.NewClient(cfg.CRM) },
			fx.As(new(syncpkg.CRMClient)),
		),
		NewSyncQueue,
		NewOrchestrator,
	),
	fx.Invoke(StartOrchestrator),
)

func NewSyncQueue(cfg config.Config, logger *slog.Logger) *syncpkg.Queue {
	store := syncpkg.NewFileStore(cfg.CRM.QueuePath)
	q := syncpkg.NewQueue(store, logger)
	q.Initialize()
	q.SetOnlineStatus(true)
	return q
}

func NewOrchestrator(client syncpkg.CRMClient, q *syncpkg.Queue, clk clock.Clock, cfg config.Config, logger *slog.Logger) *syncpkg.Orchestrator {
	return syncpkg.NewOrchestrator(client, q, clk, logger,
		syncpkg.WithFlushInterval(cfg.CRM.FlushInterval),
	)
}

func StartOrchestrator(lc fx.Lifecycle, o *syncpkg.Orchestrator) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go o.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
