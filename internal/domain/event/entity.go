package event

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Metadata carries optional UI context captured alongside an event.
type Metadata struct {
	Screen       string `json:"screen,omitempty"`
	Component    string `json:"component,omitempty"`
	Action       string `json:"action,omitempty"`
	Value        string `json:"value,omitempty"`
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// TrackedEvent is an immutable behavioral event produced on the client. ID is
// globally unique and used for de-duplication and removal.
type TrackedEvent struct {
	ID         string         `json:"id"`
	Type       Type           `json:"type"`
	Timestamp  time.Time      `json:"timestamp"`
	UserID     *uuid.UUID     `json:"user_id,omitempty"`
	ContactID  *string        `json:"contact_id,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Metadata   Metadata       `json:"metadata"`
}

func NewTrackedEvent(t Type, userID *uuid.UUID, properties map[string]any, meta Metadata) TrackedEvent {
	return TrackedEvent{
		ID:         newEventID(),
		Type:       t,
		Timestamp:  time.Now().UTC(),
		UserID:     userID,
		Properties: properties,
		Metadata:   meta,
	}
}

// newEventID builds a time-prefixed id so lexical order roughly follows
// creation order; the random suffix keeps it unique under bursts.
func newEventID() string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("%d-%08d", time.Now().UnixMilli(), time.Now().UnixNano()%100000000)
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix))
}
