package queries

import (
	"context"
	"log/slog"

	"charterlink/internal/domain/user"

	"github.com/google/uuid"
)

// RecipientReadStore is the read contract three-party resolution runs on.
// Every method returns nil (not an error) when the row does not exist.
type RecipientReadStore interface {
	RequestIDForBooking(ctx context.Context, bookingID uuid.UUID) (*uuid.UUID, error)
	RequestOrganization(ctx context.Context, requestID uuid.UUID) (*uuid.UUID, error)
	OrganizationStaff(ctx context.Context, orgID uuid.UUID, roles []user.Role) ([]uuid.UUID, error)
	LatestQuoteBroker(ctx context.Context, requestID uuid.UUID) (*uuid.UUID, error)
}

// RecipientQueries computes the three logical recipient groups for a request
// or booking: client-organization staff, the assigned broker, and the
// platform admin.
type RecipientQueries interface {
	Resolve(ctx context.Context, requestID, bookingID *uuid.UUID) (RecipientSet, error)
}

type recipientQueriesImpl struct {
	reads       RecipientReadStore
	adminUserID uuid.UUID
	logger      *slog.Logger
}

func NewRecipientQueries(reads RecipientReadStore, adminUserID uuid.UUID, logger *slog.Logger) RecipientQueries {
	return &recipientQueriesImpl{
		reads:       reads,
		adminUserID: adminUserID,
		logger:      logger,
	}
}

// Resolve never fails on missing data: an unknown request yields empty
// client/broker sets but still the platform admin, so an operator always
// hears about the event.
func (q *recipientQueriesImpl) Resolve(ctx context.Context, requestID, bookingID *uuid.UUID) (RecipientSet, error) {
	set := RecipientSet{AdminUserID: q.adminUserID}

	if requestID == nil && bookingID != nil {
		resolved, err := q.reads.RequestIDForBooking(ctx, *bookingID)
		if err != nil {
			return set, err
		}
		requestID = resolved
	}
	if requestID == nil {
		return set, nil
	}

	orgID, err := q.reads.RequestOrganization(ctx, *requestID)
	if err != nil {
		return set, err
	}
	if orgID == nil {
		q.logger.Warn("request not found during recipient resolution", "request_id", *requestID)
		return set, nil
	}

	staff, err := q.reads.OrganizationStaff(ctx, *orgID, []user.Role{user.RoleTeamAdmin, user.RoleTravelCoordinator})
	if err != nil {
		return set, err
	}
	set.ClientUserIDs = staff

	// Most recently created quote wins; absent any quote the broker is nil.
	broker, err := q.reads.LatestQuoteBroker(ctx, *requestID)
	if err != nil {
		return set, err
	}
	set.BrokerUserID = broker

	return set, nil
}
