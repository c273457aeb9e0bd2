package channels

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"charterlink/internal/pkg/config"
	"charterlink/internal/pkg/errs"
	"charterlink/internal/usecase/commands"
)

// Push provider error codes indicating a token that will never work again.
const (
	pushErrNotRegistered       = "NotRegistered"
	pushErrInvalidRegistration = "InvalidRegistration"
)

type pushRequest struct {
	RegistrationIDs []string       `json:"registration_ids"`
	Notification    pushPayload    `json:"notification"`
	Data            map[string]any `json:"data,omitempty"`
}

type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type pushResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		MessageID string `json:"message_id,omitempty"`
		Error     string `json:"error,omitempty"`
	} `json:"results"`
}

// PushSender delivers notifications through the push provider's HTTP API.
type PushSender struct {
	endpoint  string
	serverKey string
	http      *http.Client
}

func NewPushSender(cfg config.PushConfig) *PushSender {
	return &PushSender{
		endpoint:  cfg.Endpoint,
		serverKey: cfg.ServerKey,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *PushSender) Send(ctx context.Context, tokens []string, title, body string, data map[string]any) (commands.PushResult, error) {
	reqBody, err := json.Marshal(pushRequest{
		RegistrationIDs: tokens,
		Notification:    pushPayload{Title: title, Body: body},
		Data:            data,
	})
	if err != nil {
		return commands.PushResult{}, errs.Wrap(err, "failed to encode push request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return commands.PushResult{}, errs.Wrap(err, "failed to build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+s.serverKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return commands.PushResult{}, errs.Wrap(err, "push request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return commands.PushResult{}, errs.New(fmt.Sprintf("push provider returned status %d", resp.StatusCode))
	}

	var parsed pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return commands.PushResult{}, errs.Wrap(err, "unreadable push response")
	}

	result := commands.PushResult{Sent: parsed.Success}
	for i, r := range parsed.Results {
		if i >= len(tokens) {
			break
		}
		if r.Error == pushErrNotRegistered || r.Error == pushErrInvalidRegistration {
			result.InvalidTokens = append(result.InvalidTokens, tokens[i])
		}
	}
	return result, nil
}
