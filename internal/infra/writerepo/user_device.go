package writerepo

import (
	"context"

	"charterlink/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserDeviceRepository struct {
	pool *pgxpool.Pool
}

func NewUserDeviceRepository(pool *pgxpool.Pool) *UserDeviceRepository {
	return &UserDeviceRepository{pool: pool}
}

// ClearDeviceToken drops a push token the provider reported as permanently
// invalid so later dispatches stop retrying it.
func (r *UserDeviceRepository) ClearDeviceToken(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET device_token = NULL, updated_at = NOW() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to clear device token", err)
	}
	return nil
}
