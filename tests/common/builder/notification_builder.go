//go:build unit || e2e

package builder

import (
	"time"

	"charterlink/internal/domain/notification"
	"charterlink/internal/pkg/ptr"
	"charterlink/internal/usecase/commands"
	"charterlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationBuilder struct {
	UserID    uuid.UUID
	EventType notification.EventType
	Title     string
	Body      string
	CreatedAt time.Time
}

func NewNotificationBuilder() *NotificationBuilder {
	return &NotificationBuilder{
		UserID:    uuid.New(),
		EventType: notification.EventQuoteReceived,
		Title:     "New quote received",
		Body:      "A broker sent a quote for your request",
		CreatedAt: time.Now().UTC(),
	}
}

func (b *NotificationBuilder) With(mutate func(*NotificationBuilder)) *NotificationBuilder {
	mutate(b)
	return b
}

func (b *NotificationBuilder) BuildView() *queries.NotificationView {
	return &queries.NotificationView{
		ID:        uuid.New(),
		UserID:    b.UserID,
		EventType: b.EventType,
		Category:  notification.CategoryFor(b.EventType),
		Title:     b.Title,
		Body:      b.Body,
		CreatedAt: b.CreatedAt,
	}
}

func (b *NotificationBuilder) BuildDispatchRequestDTO() map[string]any {
	return map[string]any{
		"event": string(b.EventType),
		"payload": map[string]any{
			"request_id": uuid.New().String(),
			"amount":     "$12,500.00",
		},
		"recipients": []string{b.UserID.String()},
	}
}

// ContactBuilder assembles recipient contact rows for fan-out tests.
type ContactBuilder struct {
	ID          uuid.UUID
	Name        string
	Email       *string
	Phone       *string
	DeviceToken *string
}

func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{
		ID:          uuid.New(),
		Name:        "Test User",
		Email:       ptr.To("user@example.com"),
		Phone:       ptr.To("+15550100"),
		DeviceToken: ptr.To("device-token-1"),
	}
}

func (b *ContactBuilder) With(mutate func(*ContactBuilder)) *ContactBuilder {
	mutate(b)
	return b
}

func (b *ContactBuilder) Build() queries.UserContactView {
	return queries.UserContactView{
		ID:          b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		DeviceToken: b.DeviceToken,
	}
}

func (b *ContactBuilder) BuildInApp(event notification.EventType) commands.InAppNotification {
	return commands.InAppNotification{
		ID:        uuid.New(),
		UserID:    b.ID,
		EventType: event,
		Category:  notification.CategoryFor(event),
		Title:     "title",
		Body:      "body",
		CreatedAt: time.Now().UTC(),
	}
}
