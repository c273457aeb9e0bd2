package queries

import (
	"context"

	"github.com/google/uuid"
)

// NotificationReadStore is the read side of the in-app notification feed.
type NotificationReadStore interface {
	ListForUser(ctx context.Context, userID uuid.UUID, afterCursor *Cursor, limit int) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	reads NotificationReadStore
}

func NewNotificationQueries(reads NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{reads: reads}
}

func (q *notificationQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error) {
	limit = ValidateLimit(limit)

	// Fetch one extra row to know whether a next page exists.
	items, err := q.reads.ListForUser(ctx, userID, cursor, limit+1)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}

	return items, next, nil
}

func (q *notificationQueriesImpl) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return q.reads.CountUnread(ctx, userID)
}
