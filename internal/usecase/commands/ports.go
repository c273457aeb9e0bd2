package commands

import (
	"context"
	"time"

	"charterlink/internal/domain/notification"
	"charterlink/internal/usecase/queries"

	"github.com/google/uuid"
)

// InAppNotification is one row of the recipient's bell feed.
type InAppNotification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	EventType notification.EventType
	Category  notification.Category
	Title     string
	Body      string
	Data      []byte
	CreatedAt time.Time
}

// NotificationRepository is the write side of the in-app feed.
type NotificationRepository interface {
	InsertBatch(ctx context.Context, rows []InAppNotification) error
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

// RecipientContactReads batch-fetches preference rows and channel endpoints:
// one query per concern, not one per recipient.
type RecipientContactReads interface {
	ContactsByIDs(ctx context.Context, ids []uuid.UUID) ([]queries.UserContactView, error)
	PreferencesByIDs(ctx context.Context, ids []uuid.UUID, category notification.Category) (map[uuid.UUID]notification.Preference, error)
}

// UserDeviceRepository clears push tokens the provider reported as
// permanently invalid.
type UserDeviceRepository interface {
	ClearDeviceToken(ctx context.Context, userID uuid.UUID) error
}

// PushResult reports what the push provider accepted and which tokens it
// flagged as permanently invalid.
type PushResult struct {
	Sent          int
	InvalidTokens []string
}

type PushSender interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]any) (PushResult, error)
}

type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type SMSSender interface {
	Send(ctx context.Context, to, message string) (sid string, err error)
}

// WebhookLedger is the durable idempotency ledger. TryInsert is the sole
// dedup gate: it reports false when a record for the provider event id
// already exists, atomically.
type WebhookLedger interface {
	TryInsert(ctx context.Context, providerEventID, eventType string, payload []byte) (inserted bool, err error)
}

// PaymentWrites applies the booking/transaction state transitions driven by
// provider callbacks. All updates are conditional on prior status so
// repeated application converges.
type PaymentWrites interface {
	IncrementBookingAmountPaid(ctx context.Context, bookingID uuid.UUID, amountCents int64) error
	UpdateBookingPaymentStatus(ctx context.Context, bookingID uuid.UUID, status string) error
	MarkTransactionStatus(ctx context.Context, providerRef, status string) error
	BookingForTransaction(ctx context.Context, providerRef string) (*uuid.UUID, error)
}
