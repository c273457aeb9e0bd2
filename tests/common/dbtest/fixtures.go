//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Fixed ids so tests and the test config agree on the platform actors.
var (
	PlatformOrgID      = uuid.MustParse("00000000-0000-0000-0000-0000000000aa")
	PlatformAdminID    = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	DefaultClientOrg   = "Acme Jets"
	defaultClientOrgID = uuid.MustParse("00000000-0000-0000-0000-0000000000bb")
)

func CreateTestOrganization(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	orgID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO organizations (id, name) VALUES ($1, $2)", orgID, name)
	require.NoError(t, err)

	return orgID
}

func CreateTestUser(t *testing.T, db DBLike, orgID uuid.UUID, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, organization_id, name, email, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, orgID, "Test User", email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestRequest(t *testing.T, db DBLike, orgID, createdBy uuid.UUID) uuid.UUID {
	t.Helper()

	requestID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO requests (id, organization_id, created_by, trip_type, urgency, passengers) VALUES ($1, $2, $3, 'one_way', 'standard', 4)",
		requestID, orgID, createdBy)
	require.NoError(t, err)

	return requestID
}

func CreateTestBooking(t *testing.T, db DBLike, requestID uuid.UUID, totalCents int64) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO bookings (id, request_id, total_cents) VALUES ($1, $2, $3)",
		bookingID, requestID, totalCents)
	require.NoError(t, err)

	return bookingID
}

func CreateTestTransaction(t *testing.T, db DBLike, bookingID *uuid.UUID, providerRef string, amountCents int64) uuid.UUID {
	t.Helper()

	txnID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO transactions (id, booking_id, provider_ref, amount_cents) VALUES ($1, $2, $3, $4)",
		txnID, bookingID, providerRef, amountCents)
	require.NoError(t, err)

	return txnID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO organizations (id, name) VALUES
		    ($1, 'Charter Platform'),
		    ($2, $3)
		ON CONFLICT (id) DO NOTHING;
	`, PlatformOrgID, defaultClientOrgID, DefaultClientOrg)
	if err != nil {
		return err
	}

	// The platform admin the recipient resolver always includes.
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, organization_id, name, email, role, is_active)
		VALUES ($1, $2, 'Platform Admin', 'admin@charter.local', 'admin', true)
		ON CONFLICT (id) DO NOTHING;
	`, PlatformAdminID, PlatformOrgID)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
