package response

import (
	"encoding/json"

	"charterlink/internal/usecase/commands"
	"charterlink/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	Category  string          `json:"category"`
	Title     string          `json:"title"`
	Body      string          `json:"body"`
	Data      json.RawMessage `json:"data,omitempty"`
	Read      bool            `json:"read"`
	CreatedAt int64           `json:"created_at"`
}

func FromNotificationView(v *queries.NotificationView) *NotificationResponse {
	resp := &NotificationResponse{}
	_ = copier.Copy(resp, v)
	resp.ID = v.ID.String()
	resp.Data = json.RawMessage(v.Data)
	resp.Read = v.ReadAt != nil
	resp.CreatedAt = v.CreatedAt.Unix()
	return resp
}

type NotificationListResponse struct {
	Items      []*NotificationResponse `json:"items"`
	NextCursor string                  `json:"next_cursor,omitempty"`
	Unread     int64                   `json:"unread"`
}

func FromNotificationList(items []*queries.NotificationView, next *queries.Cursor, unread int64) *NotificationListResponse {
	res := &NotificationListResponse{
		Items:  make([]*NotificationResponse, len(items)),
		Unread: unread,
	}
	for i, it := range items {
		res.Items[i] = FromNotificationView(it)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type DispatchResultResponse struct {
	Success  bool                     `json:"success"`
	Notified int                      `json:"notified"`
	Failures []ChannelFailureResponse `json:"failures,omitempty"`
}

type ChannelFailureResponse struct {
	UserID  string `json:"user_id"`
	Channel string `json:"channel"`
	Error   string `json:"error"`
}

func FromDispatchResult(r *commands.DispatchResult) *DispatchResultResponse {
	resp := &DispatchResultResponse{Success: true, Notified: r.Notified}
	for _, o := range r.Outcomes {
		if o.Err == nil {
			continue
		}
		resp.Failures = append(resp.Failures, ChannelFailureResponse{
			UserID:  o.UserID.String(),
			Channel: string(o.Channel),
			Error:   o.Err.Error(),
		})
	}
	return resp
}

type WebhookAckResponse struct {
	Received  bool `json:"received"`
	Duplicate bool `json:"duplicate,omitempty"`
}
