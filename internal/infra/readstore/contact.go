package readstore

import (
	"context"

	"charterlink/internal/domain/notification"
	"charterlink/internal/infra"
	"charterlink/internal/pkg/pgconv"
	"charterlink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactReadStore batch-fetches channel endpoints and preference rows for a
// recipient list: one query per concern regardless of recipient count.
type ContactReadStore struct {
	pool *pgxpool.Pool
}

func NewContactReadStore(pool *pgxpool.Pool) *ContactReadStore {
	return &ContactReadStore{pool: pool}
}

func (s *ContactReadStore) ContactsByIDs(ctx context.Context, ids []uuid.UUID) ([]queries.UserContactView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, phone, device_token
		 FROM users WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch recipient contacts", err)
	}
	defer rows.Close()

	var result []queries.UserContactView
	for rows.Next() {
		var (
			view        queries.UserContactView
			email       pgtype.Text
			phone       pgtype.Text
			deviceToken pgtype.Text
		)
		if err := rows.Scan(&view.ID, &view.Name, &email, &phone, &deviceToken); err != nil {
			return nil, infra.WrapRepoErr("failed to scan contact row", err)
		}
		view.Email = pgconv.PgtypeToStringPtr(email)
		view.Phone = pgconv.PgtypeToStringPtr(phone)
		view.DeviceToken = pgconv.PgtypeToStringPtr(deviceToken)
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("contact row iteration failed", err)
	}
	return result, nil
}

func (s *ContactReadStore) PreferencesByIDs(ctx context.Context, ids []uuid.UUID, category notification.Category) (map[uuid.UUID]notification.Preference, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT user_id, push_enabled, email_enabled, sms_enabled
		 FROM notification_preferences
		 WHERE user_id = ANY($1) AND category = $2`,
		ids, string(category),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch notification preferences", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]notification.Preference, len(ids))
	for rows.Next() {
		var (
			userID uuid.UUID
			pref   notification.Preference
		)
		if err := rows.Scan(&userID, &pref.Push, &pref.Email, &pref.SMS); err != nil {
			return nil, infra.WrapRepoErr("failed to scan preference row", err)
		}
		pref.Category = category
		result[userID] = pref
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("preference row iteration failed", err)
	}
	return result, nil
}
