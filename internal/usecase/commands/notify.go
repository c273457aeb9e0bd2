package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"charterlink/internal/domain/notification"
	"charterlink/internal/pkg/clock"
	"charterlink/internal/pkg/errs"
	"charterlink/internal/usecase/queries"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DispatchRequest is one server-side domain event to fan out.
type DispatchRequest struct {
	Event      notification.EventType
	Payload    map[string]any
	Recipients []uuid.UUID // explicit recipient list; empty means resolve
	RequestID  *uuid.UUID
	BookingID  *uuid.UUID
}

// ChannelOutcome is the per-recipient per-channel result of a fan-out,
// exposed so partial-failure behavior is verifiable.
type ChannelOutcome struct {
	UserID  uuid.UUID
	Channel notification.Channel
	Err     error
}

type DispatchResult struct {
	Notified int
	Outcomes []ChannelOutcome
}

type NotifyCommands interface {
	Dispatch(ctx context.Context, req DispatchRequest) (*DispatchResult, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
}

type notifyUseCaseImpl struct {
	recipients    queries.RecipientQueries
	contacts      RecipientContactReads
	notifications NotificationRepository
	devices       UserDeviceRepository
	push          PushSender
	email         EmailSender
	sms           SMSSender
	clock         clock.Clock
	logger        *slog.Logger
}

func NewNotifyCommands(
	recipients queries.RecipientQueries,
	contacts RecipientContactReads,
	notifications NotificationRepository,
	devices UserDeviceRepository,
	push PushSender,
	email EmailSender,
	sms SMSSender,
	clk clock.Clock,
	logger *slog.Logger,
) NotifyCommands {
	return &notifyUseCaseImpl{
		recipients:    recipients,
		contacts:      contacts,
		notifications: notifications,
		devices:       devices,
		push:          push,
		email:         email,
		sms:           sms,
		clock:         clk,
		logger:        logger,
	}
}

// Dispatch fans one domain event out to its recipients. Writing the in-app
// rows is the success criterion; channel failures are captured per outcome
// and logged, never escalated to an overall failure.
func (uc *notifyUseCaseImpl) Dispatch(ctx context.Context, req DispatchRequest) (*DispatchResult, error) {
	tpl, ok := notification.TemplateFor(req.Event)
	if !ok {
		return nil, errs.Mark(errs.New("no template for event type "+string(req.Event)), errs.ErrUnknownEventType)
	}
	title, body := tpl.Render(req.Payload)
	category := notification.CategoryFor(req.Event)

	recipients, err := uc.resolveRecipients(ctx, req)
	if err != nil {
		return nil, errs.Wrap(err, "recipient resolution failed")
	}
	recipients = excludeSender(recipients, req.Payload)
	if len(recipients) == 0 {
		return &DispatchResult{}, nil
	}

	prefs, err := uc.contacts.PreferencesByIDs(ctx, recipients, category)
	if err != nil {
		return nil, errs.Wrap(err, "preference fetch failed")
	}
	contacts, err := uc.contacts.ContactsByIDs(ctx, recipients)
	if err != nil {
		return nil, errs.Wrap(err, "contact fetch failed")
	}

	if err := uc.insertInApp(ctx, req, recipients, category, title, body); err != nil {
		return nil, errs.Wrap(err, "notification insert failed")
	}

	outcomes := uc.fanOut(ctx, req, contacts, prefs, category, title, body)

	return &DispatchResult{Notified: len(recipients), Outcomes: outcomes}, nil
}

func (uc *notifyUseCaseImpl) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	return uc.notifications.MarkRead(ctx, notificationID, userID)
}

func (uc *notifyUseCaseImpl) resolveRecipients(ctx context.Context, req DispatchRequest) ([]uuid.UUID, error) {
	if len(req.Recipients) > 0 {
		return dedupe(req.Recipients), nil
	}

	set, err := uc.recipients.Resolve(ctx, req.RequestID, req.BookingID)
	if err != nil {
		return nil, err
	}
	return set.All(), nil
}

func (uc *notifyUseCaseImpl) insertInApp(ctx context.Context, req DispatchRequest, recipients []uuid.UUID, category notification.Category, title, body string) error {
	data, err := json.Marshal(req.Payload)
	if err != nil {
		return errs.Wrap(err, "payload not serializable")
	}

	now := uc.clock.Now()
	rows := make([]InAppNotification, len(recipients))
	for i, id := range recipients {
		rows[i] = InAppNotification{
			ID:        uuid.New(),
			UserID:    id,
			EventType: req.Event,
			Category:  category,
			Title:     title,
			Body:      body,
			Data:      data,
			CreatedAt: now,
		}
	}
	if err := uc.notifications.InsertBatch(ctx, rows); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// fanOut issues every channel dispatch across every recipient concurrently.
// The group carries no shared cancellation: one recipient's push failure
// must not block another recipient's email.
func (uc *notifyUseCaseImpl) fanOut(
	ctx context.Context,
	req DispatchRequest,
	contacts []queries.UserContactView,
	prefs map[uuid.UUID]notification.Preference,
	category notification.Category,
	title, body string,
) []ChannelOutcome {
	var tasks []func() ChannelOutcome

	for _, contact := range contacts {
		pref, ok := prefs[contact.ID]
		if !ok {
			pref = notification.DefaultPreference(category)
		}

		if pref.Push && contact.DeviceToken != nil && *contact.DeviceToken != "" {
			c := contact
			tasks = append(tasks, func() ChannelOutcome {
				return uc.sendPush(ctx, c, req.Payload, title, body)
			})
		}
		if pref.Email && contact.Email != nil && *contact.Email != "" {
			c := contact
			tasks = append(tasks, func() ChannelOutcome {
				err := uc.email.Send(ctx, *c.Email, title, body)
				return ChannelOutcome{UserID: c.ID, Channel: notification.ChannelEmail, Err: err}
			})
		}
		if pref.SMS && notification.AllowSMS(req.Event) && contact.Phone != nil && *contact.Phone != "" {
			c := contact
			tasks = append(tasks, func() ChannelOutcome {
				_, err := uc.sms.Send(ctx, *c.Phone, title+": "+body)
				return ChannelOutcome{UserID: c.ID, Channel: notification.ChannelSMS, Err: err}
			})
		}
	}

	outcomes := make([]ChannelOutcome, len(tasks))
	var g errgroup.Group
	for i, task := range tasks {
		g.Go(func() error {
			outcomes[i] = task()
			return nil
		})
	}
	// Tasks never return errors; settle them all.
	_ = g.Wait()

	for _, o := range outcomes {
		if o.Err != nil {
			uc.logger.Warn("channel dispatch failed",
				"user_id", o.UserID,
				"channel", o.Channel,
				"event", req.Event,
				"error", o.Err)
		}
	}
	return outcomes
}

func (uc *notifyUseCaseImpl) sendPush(ctx context.Context, contact queries.UserContactView, payload map[string]any, title, body string) ChannelOutcome {
	result, err := uc.push.Send(ctx, []string{*contact.DeviceToken}, title, body, payload)

	// A permanently invalid token is cleared so subsequent notifications do
	// not keep retrying it.
	for _, invalid := range result.InvalidTokens {
		if invalid == *contact.DeviceToken {
			if clearErr := uc.devices.ClearDeviceToken(ctx, contact.ID); clearErr != nil {
				uc.logger.Warn("failed to clear invalid device token", "user_id", contact.ID, "error", clearErr)
			}
		}
	}

	return ChannelOutcome{UserID: contact.ID, Channel: notification.ChannelPush, Err: err}
}

// excludeSender removes the payload's sender_id from the recipient list and
// de-duplicates what remains.
func excludeSender(recipients []uuid.UUID, payload map[string]any) []uuid.UUID {
	var sender uuid.UUID
	if raw, ok := payload["sender_id"]; ok {
		if s, ok := raw.(string); ok {
			if id, err := uuid.Parse(s); err == nil {
				sender = id
			}
		}
	}

	seen := make(map[uuid.UUID]struct{}, len(recipients))
	out := make([]uuid.UUID, 0, len(recipients))
	for _, id := range recipients {
		if id == sender {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
