package queries

import (
	"time"

	"charterlink/internal/domain/notification"

	"github.com/google/uuid"
)

// RecipientSet is the result of three-party resolution. It is computed fresh
// per dispatch and never cached; broker assignment can change between quotes.
type RecipientSet struct {
	ClientUserIDs []uuid.UUID
	BrokerUserID  *uuid.UUID
	AdminUserID   uuid.UUID
}

// All flattens the set into a de-duplicated recipient list.
func (s RecipientSet) All() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(s.ClientUserIDs)+2)
	out := make([]uuid.UUID, 0, len(s.ClientUserIDs)+2)

	add := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, id := range s.ClientUserIDs {
		add(id)
	}
	if s.BrokerUserID != nil {
		add(*s.BrokerUserID)
	}
	add(s.AdminUserID)
	return out
}

// NotificationView represents read-optimized in-app notification data.
type NotificationView struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	EventType notification.EventType `json:"event_type"`
	Category  notification.Category  `json:"category"`
	Title     string                 `json:"title"`
	Body      string                 `json:"body"`
	Data      []byte                 `json:"data,omitempty"`
	ReadAt    *time.Time             `json:"read_at,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// UserContactView carries the channel endpoints for one recipient.
type UserContactView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	DeviceToken *string   `json:"device_token,omitempty"`
}
