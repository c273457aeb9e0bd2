//go:build unit

package commands_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"charterlink/internal/pkg/errs"
	"charterlink/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
)

const testWebhookSecret = "whsec_test"

func signBody(secret string, signedAt time.Time, body []byte) string {
	ts := fmt.Sprintf("%d", signedAt.Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(body)
	return fmt.Sprintf("t=%s,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifySignature(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	body := []byte(`{"id":"evt_1"}`)
	tolerance := 5 * time.Minute

	t.Run("valid signature passes", func(t *testing.T) {
		header := signBody(testWebhookSecret, now, body)
		assert.NoError(t, commands.VerifySignature(testWebhookSecret, header, body, now, tolerance))
	})

	t.Run("signature just inside tolerance passes", func(t *testing.T) {
		header := signBody(testWebhookSecret, now.Add(-tolerance), body)
		assert.NoError(t, commands.VerifySignature(testWebhookSecret, header, body, now, tolerance))
	})

	t.Run("future timestamp inside tolerance passes", func(t *testing.T) {
		header := signBody(testWebhookSecret, now.Add(tolerance-time.Second), body)
		assert.NoError(t, commands.VerifySignature(testWebhookSecret, header, body, now, tolerance))
	})

	t.Run("stale timestamp rejected", func(t *testing.T) {
		header := signBody(testWebhookSecret, now.Add(-tolerance-time.Second), body)
		err := commands.VerifySignature(testWebhookSecret, header, body, now, tolerance)
		assert.True(t, errs.Is(err, errs.ErrStaleTimestamp))
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		header := signBody(testWebhookSecret, now, body)
		err := commands.VerifySignature(testWebhookSecret, header, []byte(`{"id":"evt_2"}`), now, tolerance)
		assert.True(t, errs.Is(err, errs.ErrInvalidSignature))
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		header := signBody("other_secret", now, body)
		err := commands.VerifySignature(testWebhookSecret, header, body, now, tolerance)
		assert.True(t, errs.Is(err, errs.ErrInvalidSignature))
	})

	t.Run("non-hex digest rejected", func(t *testing.T) {
		header := fmt.Sprintf("t=%d,v1=zzzz", now.Unix())
		err := commands.VerifySignature(testWebhookSecret, header, body, now, tolerance)
		assert.True(t, errs.Is(err, errs.ErrInvalidSignature))
	})

	t.Run("malformed headers rejected", func(t *testing.T) {
		for _, header := range []string{
			"",
			"garbage",
			"t=123",
			"v1=abcd",
			"t=notanumber,v1=abcd",
		} {
			err := commands.VerifySignature(testWebhookSecret, header, body, now, tolerance)
			assert.True(t, errs.Is(err, errs.ErrMalformedSignature), "header %q", header)
		}
	})
}
