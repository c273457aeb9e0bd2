package channels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"charterlink/internal/pkg/config"
	"charterlink/internal/pkg/errs"
)

type smsResponse struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// SMSSender delivers the high-urgency notifications through the SMS
// provider's REST API.
type SMSSender struct {
	endpoint   string
	accountSID string
	authToken  string
	fromNumber string
	http       *http.Client
}

func NewSMSSender(cfg config.SMSConfig) *SMSSender {
	return &SMSSender{
		endpoint:   cfg.Endpoint,
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		fromNumber: cfg.FromNumber,
		http:       &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *SMSSender) Send(ctx context.Context, to, message string) (string, error) {
	form := url.Values{}
	form.Set("From", s.fromNumber)
	form.Set("To", to)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "failed to build sms request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.http.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "sms request failed")
	}
	defer resp.Body.Close()

	var parsed smsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errs.Wrap(err, "unreadable sms response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parsed.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", errs.New("sms provider error: " + msg)
	}
	return parsed.SID, nil
}
