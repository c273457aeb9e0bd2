package readstore

import (
	"context"

	"charterlink/internal/domain/notification"
	"charterlink/internal/infra"
	"charterlink/internal/pkg/errs"
	"charterlink/internal/pkg/pgconv"
	"charterlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationReadStore struct {
	pool *pgxpool.Pool
}

func NewNotificationReadStore(pool *pgxpool.Pool) *NotificationReadStore {
	return &NotificationReadStore{pool: pool}
}

func (s *NotificationReadStore) ListForUser(ctx context.Context, userID uuid.UUID, cursor *queries.Cursor, limit int) ([]*queries.NotificationView, error) {
	var rows pgx.Rows
	var err error

	if cursor != nil && cursor.After != "" {
		afterTime, afterID, decErr := queries.DecodeAfterCursor(cursor.After)
		if decErr != nil {
			return nil, errs.Mark(errs.Wrap(decErr, "invalid pagination cursor"), errs.ErrDomainValidation)
		}
		rows, err = s.pool.Query(ctx,
			`SELECT id, user_id, event_type, category, title, body, data, read_at, created_at
			 FROM notifications
			 WHERE user_id = $1 AND (created_at, id) < ($2, $3)
			 ORDER BY created_at DESC, id DESC
			 LIMIT $4`,
			userID, afterTime, afterID, limit,
		)
	} else {
		rows, err = s.pool.Query(ctx,
			`SELECT id, user_id, event_type, category, title, body, data, read_at, created_at
			 FROM notifications
			 WHERE user_id = $1
			 ORDER BY created_at DESC, id DESC
			 LIMIT $2`,
			userID, limit,
		)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var result []*queries.NotificationView
	for rows.Next() {
		view, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("notification row iteration failed", err)
	}
	return result, nil
}

func (s *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read_at IS NULL`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}

func scanNotification(rows pgx.Rows) (*queries.NotificationView, error) {
	var (
		view      queries.NotificationView
		eventType string
		category  string
		readAt    pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)
	if err := rows.Scan(&view.ID, &view.UserID, &eventType, &category, &view.Title, &view.Body, &view.Data, &readAt, &createdAt); err != nil {
		return nil, infra.WrapRepoErr("failed to scan notification row", err)
	}

	view.EventType = notification.EventType(eventType)
	view.Category = notification.Category(category)
	view.ReadAt = pgconv.PgtypeToTimePtr(readAt)
	view.CreatedAt = createdAt.Time
	return &view, nil
}
