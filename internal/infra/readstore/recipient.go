package readstore

import (
	"context"
	"errors"

	"charterlink/internal/infra"
	"charterlink/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecipientReadStore backs three-party resolution with single-purpose
// lookups. Missing rows come back as nil, never as errors.
type RecipientReadStore struct {
	pool *pgxpool.Pool
}

func NewRecipientReadStore(pool *pgxpool.Pool) *RecipientReadStore {
	return &RecipientReadStore{pool: pool}
}

func (s *RecipientReadStore) RequestIDForBooking(ctx context.Context, bookingID uuid.UUID) (*uuid.UUID, error) {
	var requestID uuid.UUID
	err := s.pool.QueryRow(ctx,
		`SELECT request_id FROM bookings WHERE id = $1`,
		bookingID,
	).Scan(&requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to resolve request for booking", err)
	}
	return &requestID, nil
}

func (s *RecipientReadStore) RequestOrganization(ctx context.Context, requestID uuid.UUID) (*uuid.UUID, error) {
	var orgID uuid.UUID
	err := s.pool.QueryRow(ctx,
		`SELECT organization_id FROM requests WHERE id = $1`,
		requestID,
	).Scan(&orgID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to resolve request organization", err)
	}
	return &orgID, nil
}

func (s *RecipientReadStore) OrganizationStaff(ctx context.Context, orgID uuid.UUID, roles []user.Role) ([]uuid.UUID, error) {
	roleStrings := make([]string, len(roles))
	for i, r := range roles {
		roleStrings[i] = string(r)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id FROM users
		 WHERE organization_id = $1 AND role = ANY($2) AND is_active`,
		orgID, roleStrings,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list organization staff", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan staff row", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("staff row iteration failed", err)
	}
	return ids, nil
}

// LatestQuoteBroker picks the broker from the most recently created quote
// for the request; creation timestamp breaks ties, most recent wins.
func (s *RecipientReadStore) LatestQuoteBroker(ctx context.Context, requestID uuid.UUID) (*uuid.UUID, error) {
	var brokerID uuid.UUID
	err := s.pool.QueryRow(ctx,
		`SELECT broker_id FROM quotes
		 WHERE request_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		requestID,
	).Scan(&brokerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to resolve latest quote broker", err)
	}
	return &brokerID, nil
}
