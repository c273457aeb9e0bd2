package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"charterlink/internal/domain/notification"
	"charterlink/internal/pkg/clock"
	"charterlink/internal/pkg/config"
	"charterlink/internal/pkg/errs"

	"github.com/google/uuid"
)

// Provider callback types we apply effects for. Unrecognized types still get
// a ledger record so the provider stops re-delivering them.
const (
	callbackPaymentSucceeded = "payment_intent.succeeded"
	callbackPaymentFailed    = "payment_intent.payment_failed"
	callbackChargeRefunded   = "charge.refunded"
)

type IngestResult struct {
	Duplicate bool
}

type WebhookCommands interface {
	IngestPayment(ctx context.Context, rawBody []byte, signatureHeader string) (*IngestResult, error)
}

// providerEvent is the wire shape of a payment provider callback.
type providerEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID          string     `json:"id"`
			AmountCents int64      `json:"amount"`
			BookingID   *uuid.UUID `json:"booking_id"`
		} `json:"object"`
	} `json:"data"`
}

type webhookUseCaseImpl struct {
	cfg      config.PaymentsConfig
	ledger   WebhookLedger
	payments PaymentWrites
	notify   NotifyCommands
	clock    clock.Clock
	logger   *slog.Logger
}

func NewWebhookCommands(
	cfg config.PaymentsConfig,
	ledger WebhookLedger,
	payments PaymentWrites,
	notify NotifyCommands,
	clk clock.Clock,
	logger *slog.Logger,
) WebhookCommands {
	return &webhookUseCaseImpl{
		cfg:      cfg,
		ledger:   ledger,
		payments: payments,
		notify:   notify,
		clock:    clk,
		logger:   logger,
	}
}

// IngestPayment runs the received → verified → deduplicated → applied state
// machine for one inbound callback. Verification failures write nothing;
// the ledger insert is the sole dedup gate and always precedes effects.
func (uc *webhookUseCaseImpl) IngestPayment(ctx context.Context, rawBody []byte, signatureHeader string) (*IngestResult, error) {
	if err := VerifySignature(uc.cfg.WebhookSecret, signatureHeader, rawBody, uc.clock.Now(), uc.cfg.SignatureTolerance); err != nil {
		// Treated as a potential attack; logged with detail, nothing persisted.
		uc.logger.Warn("webhook signature rejected", "error", err)
		return nil, err
	}

	var ev providerEvent
	if err := json.Unmarshal(rawBody, &ev); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "unparsable webhook payload"), errs.ErrDomainValidation)
	}
	if ev.ID == "" {
		return nil, errs.Mark(errs.New("webhook payload missing event id"), errs.ErrDomainValidation)
	}

	inserted, err := uc.ledger.TryInsert(ctx, ev.ID, ev.Type, rawBody)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "idempotency ledger insert failed"), errs.ErrDatabaseOperationFailed)
	}
	if !inserted {
		uc.logger.Info("duplicate webhook delivery ignored", "provider_event_id", ev.ID, "type", ev.Type)
		return &IngestResult{Duplicate: true}, nil
	}

	if err := uc.applyEffect(ctx, ev); err != nil {
		return nil, err
	}
	return &IngestResult{}, nil
}

func (uc *webhookUseCaseImpl) applyEffect(ctx context.Context, ev providerEvent) error {
	switch ev.Type {
	case callbackPaymentSucceeded:
		return uc.applyPaymentSucceeded(ctx, ev)
	case callbackPaymentFailed:
		return uc.applyPaymentFailed(ctx, ev)
	case callbackChargeRefunded:
		return uc.applyChargeRefunded(ctx, ev)
	default:
		// Record already written; unknown types are a deliberate no-op.
		uc.logger.Info("no effect for webhook type", "type", ev.Type, "provider_event_id", ev.ID)
		return nil
	}
}

func (uc *webhookUseCaseImpl) applyPaymentSucceeded(ctx context.Context, ev providerEvent) error {
	bookingID := ev.Data.Object.BookingID
	if bookingID == nil {
		resolved, err := uc.payments.BookingForTransaction(ctx, ev.Data.Object.ID)
		if err != nil {
			return errs.Wrap(err, "booking lookup failed")
		}
		bookingID = resolved
	}

	if bookingID == nil {
		// No booking linkage; settle the bare transaction record.
		return uc.payments.MarkTransactionStatus(ctx, ev.Data.Object.ID, "succeeded")
	}

	if err := uc.payments.IncrementBookingAmountPaid(ctx, *bookingID, ev.Data.Object.AmountCents); err != nil {
		return errs.Wrap(err, "failed to increment amount paid")
	}
	return uc.payments.MarkTransactionStatus(ctx, ev.Data.Object.ID, "succeeded")
}

func (uc *webhookUseCaseImpl) applyPaymentFailed(ctx context.Context, ev providerEvent) error {
	if err := uc.payments.MarkTransactionStatus(ctx, ev.Data.Object.ID, "failed"); err != nil {
		return errs.Wrap(err, "failed to mark transaction failed")
	}

	payload := map[string]any{
		"amount":      formatAmount(ev.Data.Object.AmountCents),
		"payment_ref": ev.Data.Object.ID,
	}
	if _, err := uc.notify.Dispatch(ctx, DispatchRequest{
		Event:     notification.EventPaymentFailed,
		Payload:   payload,
		BookingID: ev.Data.Object.BookingID,
	}); err != nil {
		// The state transition already happened; a notification failure is
		// logged, not escalated.
		uc.logger.Error("payment_failed dispatch failed", "provider_event_id", ev.ID, "error", err)
	}
	return nil
}

func (uc *webhookUseCaseImpl) applyChargeRefunded(ctx context.Context, ev providerEvent) error {
	if err := uc.payments.MarkTransactionStatus(ctx, ev.Data.Object.ID, "refunded"); err != nil {
		return errs.Wrap(err, "failed to mark transaction refunded")
	}

	if ev.Data.Object.BookingID != nil {
		if err := uc.payments.UpdateBookingPaymentStatus(ctx, *ev.Data.Object.BookingID, "refunded"); err != nil {
			return errs.Wrap(err, "failed to update booking payment status")
		}
	}
	return nil
}

func formatAmount(cents int64) string {
	rem := cents % 100
	if rem < 0 {
		rem = -rem
	}
	return fmt.Sprintf("$%d.%02d", cents/100, rem)
}
