//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"charterlink/internal/domain/user"
	"charterlink/internal/usecase/queries"
	queriesmock "charterlink/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var staffRoles = []user.Role{user.RoleTeamAdmin, user.RoleTravelCoordinator}

func newRecipientFixture(t *testing.T) (*queriesmock.MockRecipientReadStore, queries.RecipientQueries, uuid.UUID) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reads := queriesmock.NewMockRecipientReadStore(ctrl)
	admin := uuid.New()
	q := queries.NewRecipientQueries(reads, admin, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return reads, q, admin
}

func TestResolve(t *testing.T) {
	t.Run("nil request and booking yields admin only", func(t *testing.T) {
		_, q, admin := newRecipientFixture(t)

		set, err := q.Resolve(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Empty(t, set.ClientUserIDs)
		assert.Nil(t, set.BrokerUserID)
		assert.Equal(t, []uuid.UUID{admin}, set.All())
	})

	t.Run("unknown request yields admin only", func(t *testing.T) {
		reads, q, admin := newRecipientFixture(t)
		requestID := uuid.New()

		reads.EXPECT().RequestOrganization(gomock.Any(), requestID).Return(nil, nil)

		set, err := q.Resolve(context.Background(), &requestID, nil)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{admin}, set.All())
	})

	t.Run("full resolution from request", func(t *testing.T) {
		reads, q, admin := newRecipientFixture(t)
		requestID := uuid.New()
		orgID := uuid.New()
		staff := []uuid.UUID{uuid.New(), uuid.New()}
		broker := uuid.New()

		reads.EXPECT().RequestOrganization(gomock.Any(), requestID).Return(&orgID, nil)
		reads.EXPECT().OrganizationStaff(gomock.Any(), orgID, staffRoles).Return(staff, nil)
		reads.EXPECT().LatestQuoteBroker(gomock.Any(), requestID).Return(&broker, nil)

		set, err := q.Resolve(context.Background(), &requestID, nil)

		require.NoError(t, err)
		assert.Equal(t, staff, set.ClientUserIDs)
		require.NotNil(t, set.BrokerUserID)
		assert.Equal(t, broker, *set.BrokerUserID)
		assert.Equal(t, admin, set.AdminUserID)
		assert.ElementsMatch(t, append(append([]uuid.UUID{}, staff...), broker, admin), set.All())
	})

	t.Run("booking resolves to its request first", func(t *testing.T) {
		reads, q, _ := newRecipientFixture(t)
		bookingID := uuid.New()
		requestID := uuid.New()
		orgID := uuid.New()

		reads.EXPECT().RequestIDForBooking(gomock.Any(), bookingID).Return(&requestID, nil)
		reads.EXPECT().RequestOrganization(gomock.Any(), requestID).Return(&orgID, nil)
		reads.EXPECT().OrganizationStaff(gomock.Any(), orgID, staffRoles).Return(nil, nil)
		reads.EXPECT().LatestQuoteBroker(gomock.Any(), requestID).Return(nil, nil)

		set, err := q.Resolve(context.Background(), nil, &bookingID)

		require.NoError(t, err)
		assert.Nil(t, set.BrokerUserID)
	})

	t.Run("booking without a request yields admin only", func(t *testing.T) {
		reads, q, admin := newRecipientFixture(t)
		bookingID := uuid.New()

		reads.EXPECT().RequestIDForBooking(gomock.Any(), bookingID).Return(nil, nil)

		set, err := q.Resolve(context.Background(), nil, &bookingID)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{admin}, set.All())
	})

	t.Run("no quotes means no broker", func(t *testing.T) {
		reads, q, _ := newRecipientFixture(t)
		requestID := uuid.New()
		orgID := uuid.New()

		reads.EXPECT().RequestOrganization(gomock.Any(), requestID).Return(&orgID, nil)
		reads.EXPECT().OrganizationStaff(gomock.Any(), orgID, staffRoles).Return([]uuid.UUID{uuid.New()}, nil)
		reads.EXPECT().LatestQuoteBroker(gomock.Any(), requestID).Return(nil, nil)

		set, err := q.Resolve(context.Background(), &requestID, nil)

		require.NoError(t, err)
		assert.Nil(t, set.BrokerUserID)
	})
}

func TestRecipientSetAll(t *testing.T) {
	t.Run("deduplicates overlapping parties", func(t *testing.T) {
		shared := uuid.New()
		admin := uuid.New()
		set := queries.RecipientSet{
			ClientUserIDs: []uuid.UUID{shared, admin},
			BrokerUserID:  &shared,
			AdminUserID:   admin,
		}

		assert.Equal(t, []uuid.UUID{shared, admin}, set.All())
	})

	t.Run("ordering is clients then broker then admin", func(t *testing.T) {
		c1, c2, broker, admin := uuid.New(), uuid.New(), uuid.New(), uuid.New()
		set := queries.RecipientSet{
			ClientUserIDs: []uuid.UUID{c1, c2},
			BrokerUserID:  &broker,
			AdminUserID:   admin,
		}

		assert.Equal(t, []uuid.UUID{c1, c2, broker, admin}, set.All())
	})
}
