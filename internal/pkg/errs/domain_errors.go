package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Notification dispatch errors
	ErrUnknownEventType = errors.New("unknown event type")

	// Webhook ingestion errors
	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrStaleTimestamp     = errors.New("webhook timestamp outside tolerance")
	ErrMalformedSignature = errors.New("malformed signature header")

	// Lookup errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
