package writerepo

import (
	"context"

	"charterlink/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WebhookLedgerRepository is the durable idempotency ledger for provider
// callbacks.
type WebhookLedgerRepository struct {
	pool *pgxpool.Pool
}

func NewWebhookLedgerRepository(pool *pgxpool.Pool) *WebhookLedgerRepository {
	return &WebhookLedgerRepository{pool: pool}
}

// TryInsert records the provider event id atomically. The unique constraint
// is the sole dedup gate; a concurrent duplicate delivery loses the insert
// race and reports inserted=false, with no separate existence check.
func (r *WebhookLedgerRepository) TryInsert(ctx context.Context, providerEventID, eventType string, payload []byte) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO webhook_events (provider_event_id, event_type, payload)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (provider_event_id) DO NOTHING`,
		providerEventID, eventType, payload,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert webhook event record", err)
	}
	return tag.RowsAffected() == 1, nil
}
