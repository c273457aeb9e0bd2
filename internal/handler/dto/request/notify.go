package request

import (
	"charterlink/internal/domain/notification"
	"charterlink/internal/usecase/commands"

	"github.com/google/uuid"
)

type DispatchNotificationRequest struct {
	Event      string         `json:"event" binding:"required"`
	Payload    map[string]any `json:"payload"`
	Recipients []uuid.UUID    `json:"recipients"`
	RequestID  *uuid.UUID     `json:"request_id"`
	BookingID  *uuid.UUID     `json:"booking_id"`
}

func (r *DispatchNotificationRequest) ToCommand() commands.DispatchRequest {
	payload := r.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	return commands.DispatchRequest{
		Event:      notification.EventType(r.Event),
		Payload:    payload,
		Recipients: r.Recipients,
		RequestID:  r.RequestID,
		BookingID:  r.BookingID,
	}
}
