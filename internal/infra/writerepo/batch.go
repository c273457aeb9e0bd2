package writerepo

import (
	"context"

	"charterlink/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BatchRepository hosts the status-gated bulk transitions used by the cron
// jobs. Each update only touches rows in a specific prior status, so
// concurrent or repeated runs converge to the same state.
type BatchRepository struct {
	pool *pgxpool.Pool
}

func NewBatchRepository(pool *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{pool: pool}
}

// ExpireQuotes transitions sent quotes past their validity window and
// returns the affected request ids for notification fan-out.
func (r *BatchRepository) ExpireQuotes(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`UPDATE quotes SET status = 'expired', updated_at = NOW()
		 WHERE status = 'sent' AND valid_until < NOW()
		 RETURNING request_id`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire quotes", err)
	}
	defer rows.Close()

	var requestIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired quote row", err)
		}
		requestIDs = append(requestIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("expired quote iteration failed", err)
	}
	return requestIDs, nil
}

// MarkOverdueInvoices flags unpaid invoices past their due date.
func (r *BatchRepository) MarkOverdueInvoices(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE invoices SET status = 'overdue'
		 WHERE status = 'pending' AND due_at < NOW()`,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark overdue invoices", err)
	}
	return tag.RowsAffected(), nil
}
