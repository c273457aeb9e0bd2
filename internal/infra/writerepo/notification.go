package writerepo

import (
	"context"

	"charterlink/internal/infra"
	"charterlink/internal/pkg/errs"
	"charterlink/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// InsertBatch writes one in-app row per recipient in a single batched
// round-trip.
func (r *NotificationRepository) InsertBatch(ctx context.Context, rows []commands.InAppNotification) error {
	if len(rows) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(
			`INSERT INTO notifications (id, user_id, event_type, category, title, body, data, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			row.ID, row.UserID, string(row.EventType), string(row.Category),
			row.Title, row.Body, row.Data, row.CreatedAt,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range rows {
		if _, err := results.Exec(); err != nil {
			return infra.WrapRepoErr("failed to insert notification batch", err)
		}
	}
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notifications SET read_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND read_at IS NULL`,
		id, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		// Already read or not owned by the caller; both are fine to surface
		// as not found.
		var exists bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM notifications WHERE id = $1 AND user_id = $2)`,
			id, userID,
		).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check notification existence", err)
		}
		if !exists {
			return errs.Mark(
				infra.WrapRepoErr("notification not found", nil, infra.KindNotFound),
				errs.ErrNotificationNotFound,
			)
		}
	}
	return nil
}
