package worker

import (
	"context"
	"log/slog"
	"time"

	"charterlink/internal/domain/notification"
	"charterlink/internal/pkg/config"
	"charterlink/internal/pkg/errs"
	"charterlink/internal/usecase/commands"

	"github.com/google/uuid"
)

// MaintenanceWrites is the batch write surface the periodic jobs drive.
type MaintenanceWrites interface {
	ExpireQuotes(ctx context.Context) ([]uuid.UUID, error)
	MarkOverdueInvoices(ctx context.Context) (int64, error)
}

// NewQuoteExpiryJob expires quotes past their validity window and
// notifies the affected request's recipients.
func NewQuoteExpiryJob(cfg config.WorkerConfig, repo MaintenanceWrites, notify commands.NotifyCommands, logger *slog.Logger) Job {
	return Job{
		Name:     "quote_expiry",
		Interval: cfg.QuoteExpiryInterval,
		Run: func(ctx context.Context) error {
			requestIDs, err := repo.ExpireQuotes(ctx)
			if err != nil {
				return errs.Wrap(err, "expiring quotes")
			}
			for _, requestID := range requestIDs {
				id := requestID
				_, err := notify.Dispatch(ctx, commands.DispatchRequest{
					Event:     notification.EventQuoteExpired,
					Payload:   map[string]any{"request_id": id.String()},
					RequestID: &id,
				})
				if err != nil {
					// Expiry already committed; a failed notification must
					// not abort the remaining requests.
					logger.Warn("quote expiry notification failed", "request_id", id, "error", err)
				}
			}
			if len(requestIDs) > 0 {
				logger.Info("expired quotes", "count", len(requestIDs))
			}
			return nil
		},
	}
}

// NewOverdueInvoiceJob flags invoices unpaid past their due date.
func NewOverdueInvoiceJob(cfg config.WorkerConfig, repo MaintenanceWrites, logger *slog.Logger) Job {
	return Job{
		Name:     "overdue_invoices",
		Interval: cfg.OverdueInvoiceInterval,
		Run: func(ctx context.Context) error {
			start := time.Now()
			marked, err := repo.MarkOverdueInvoices(ctx)
			if err != nil {
				return errs.Wrap(err, "marking overdue invoices")
			}
			if marked > 0 {
				logger.Info("marked overdue invoices", "count", marked, "took", time.Since(start))
			}
			return nil
		},
	}
}
