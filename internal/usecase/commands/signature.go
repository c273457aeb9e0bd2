package commands

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"charterlink/internal/pkg/errs"
)

// VerifySignature checks a provider callback header of the form
// `t=<unix-seconds>,v1=<hex-hmac>` against the raw body. The HMAC-SHA256 is
// computed over "<timestamp>.<rawBody>" and compared in constant time; the
// timestamp must be within tolerance of now. Both checks must pass.
func VerifySignature(secret string, header string, rawBody []byte, now time.Time, tolerance time.Duration) error {
	timestamp, providedMAC, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}

	signedAt := time.Unix(timestamp, 0)
	drift := now.Sub(signedAt)
	if drift < 0 {
		drift = -drift
	}
	if drift > tolerance {
		return errs.Mark(errs.New("signature timestamp outside tolerance"), errs.ErrStaleTimestamp)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(rawBody)
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(providedMAC)
	if err != nil {
		return errs.Mark(errs.New("signature digest is not hex"), errs.ErrInvalidSignature)
	}

	if !hmac.Equal(expected, provided) {
		return errs.Mark(errs.New("signature digest mismatch"), errs.ErrInvalidSignature)
	}
	return nil
}

func parseSignatureHeader(header string) (timestamp int64, mac string, err error) {
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			timestamp, err = strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, "", errs.Mark(errs.New("unparsable signature timestamp"), errs.ErrMalformedSignature)
			}
		case "v1":
			mac = value
		}
	}

	if timestamp == 0 || mac == "" {
		return 0, "", errs.Mark(errs.New("signature header missing t or v1"), errs.ErrMalformedSignature)
	}
	return timestamp, mac, nil
}
