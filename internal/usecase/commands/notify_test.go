//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"charterlink/internal/domain/notification"
	"charterlink/internal/pkg/clock"
	"charterlink/internal/pkg/errs"
	"charterlink/internal/usecase/commands"
	"charterlink/internal/usecase/queries"
	"charterlink/tests/common/builder"
	commandsmock "charterlink/tests/mock/commands"
	queriesmock "charterlink/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type notifyFixture struct {
	recipients    *queriesmock.MockRecipientQueries
	contacts      *commandsmock.MockRecipientContactReads
	notifications *commandsmock.MockNotificationRepository
	devices       *commandsmock.MockUserDeviceRepository
	push          *commandsmock.MockPushSender
	email         *commandsmock.MockEmailSender
	sms           *commandsmock.MockSMSSender
	clock         *clock.MockClock
	uc            commands.NotifyCommands
}

func newNotifyFixture(t *testing.T) *notifyFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &notifyFixture{
		recipients:    queriesmock.NewMockRecipientQueries(ctrl),
		contacts:      commandsmock.NewMockRecipientContactReads(ctrl),
		notifications: commandsmock.NewMockNotificationRepository(ctrl),
		devices:       commandsmock.NewMockUserDeviceRepository(ctrl),
		push:          commandsmock.NewMockPushSender(ctrl),
		email:         commandsmock.NewMockEmailSender(ctrl),
		sms:           commandsmock.NewMockSMSSender(ctrl),
		clock:         clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.uc = commands.NewNotifyCommands(
		f.recipients,
		f.contacts,
		f.notifications,
		f.devices,
		f.push,
		f.email,
		f.sms,
		f.clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func outcomesByChannel(outcomes []commands.ChannelOutcome) map[notification.Channel]commands.ChannelOutcome {
	m := make(map[notification.Channel]commands.ChannelOutcome, len(outcomes))
	for _, o := range outcomes {
		m[o.Channel] = o
	}
	return m
}

func TestDispatchUnknownEventType(t *testing.T) {
	f := newNotifyFixture(t)

	_, err := f.uc.Dispatch(context.Background(), commands.DispatchRequest{
		Event: notification.EventType("made_up"),
	})

	assert.True(t, errs.Is(err, errs.ErrUnknownEventType))
}

func TestDispatchExplicitRecipients(t *testing.T) {
	f := newNotifyFixture(t)
	contact := builder.NewContactBuilder()
	other := uuid.New()

	// Duplicates collapse and the payload's sender is excluded.
	req := commands.DispatchRequest{
		Event:      notification.EventQuoteReceived,
		Payload:    map[string]any{"amount": "$12,500", "sender_id": other.String()},
		Recipients: []uuid.UUID{contact.ID, contact.ID, other},
	}

	f.contacts.EXPECT().
		PreferencesByIDs(gomock.Any(), []uuid.UUID{contact.ID}, notification.CategoryQuotes).
		Return(map[uuid.UUID]notification.Preference{}, nil)
	f.contacts.EXPECT().
		ContactsByIDs(gomock.Any(), []uuid.UUID{contact.ID}).
		Return([]queries.UserContactView{contact.Build()}, nil)
	f.notifications.EXPECT().
		InsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []commands.InAppNotification) error {
			require.Len(t, rows, 1)
			assert.Equal(t, contact.ID, rows[0].UserID)
			assert.Equal(t, notification.EventQuoteReceived, rows[0].EventType)
			assert.Equal(t, "Quote received", rows[0].Title)
			assert.Equal(t, f.clock.Now(), rows[0].CreatedAt)
			return nil
		})
	// Default preference: push and email on, SMS off.
	f.push.EXPECT().
		Send(gomock.Any(), []string{*contact.DeviceToken}, "Quote received", gomock.Any(), gomock.Any()).
		Return(commands.PushResult{Sent: 1}, nil)
	f.email.EXPECT().
		Send(gomock.Any(), *contact.Email, "Quote received", gomock.Any()).
		Return(nil)

	result, err := f.uc.Dispatch(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Notified)
	assert.Len(t, result.Outcomes, 2)
	for _, o := range result.Outcomes {
		assert.NoError(t, o.Err)
	}
}

func TestDispatchResolvesRecipientsWhenListEmpty(t *testing.T) {
	f := newNotifyFixture(t)
	requestID := uuid.New()
	admin := uuid.New()
	contact := builder.NewContactBuilder().With(func(b *builder.ContactBuilder) {
		b.ID = admin
		b.DeviceToken = nil
		b.Phone = nil
	})

	f.recipients.EXPECT().
		Resolve(gomock.Any(), &requestID, (*uuid.UUID)(nil)).
		Return(queries.RecipientSet{AdminUserID: admin}, nil)
	f.contacts.EXPECT().
		PreferencesByIDs(gomock.Any(), []uuid.UUID{admin}, notification.CategoryRequestUpdates).
		Return(map[uuid.UUID]notification.Preference{}, nil)
	f.contacts.EXPECT().
		ContactsByIDs(gomock.Any(), []uuid.UUID{admin}).
		Return([]queries.UserContactView{contact.Build()}, nil)
	f.notifications.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)
	f.email.EXPECT().Send(gomock.Any(), *contact.Email, gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.uc.Dispatch(context.Background(), commands.DispatchRequest{
		Event:     notification.EventRequestCreated,
		Payload:   map[string]any{"trip_type": "one_way", "passengers": 4},
		RequestID: &requestID,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Notified)
}

func TestDispatchAllRecipientsExcluded(t *testing.T) {
	f := newNotifyFixture(t)
	sender := uuid.New()

	result, err := f.uc.Dispatch(context.Background(), commands.DispatchRequest{
		Event:      notification.EventMessageReceived,
		Payload:    map[string]any{"sender_id": sender.String(), "sender_name": "Ann"},
		Recipients: []uuid.UUID{sender},
	})

	require.NoError(t, err)
	assert.Zero(t, result.Notified)
	assert.Empty(t, result.Outcomes)
}

func TestDispatchSMSGating(t *testing.T) {
	t.Run("sms sent for urgent event when opted in", func(t *testing.T) {
		f := newNotifyFixture(t)
		contact := builder.NewContactBuilder()
		pref := notification.Preference{
			Category: notification.CategoryPayments,
			Push:     false,
			Email:    false,
			SMS:      true,
		}

		f.contacts.EXPECT().
			PreferencesByIDs(gomock.Any(), gomock.Any(), notification.CategoryPayments).
			Return(map[uuid.UUID]notification.Preference{contact.ID: pref}, nil)
		f.contacts.EXPECT().
			ContactsByIDs(gomock.Any(), gomock.Any()).
			Return([]queries.UserContactView{contact.Build()}, nil)
		f.notifications.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)
		f.sms.EXPECT().
			Send(gomock.Any(), *contact.Phone, gomock.Any()).
			Return("SM123", nil)

		result, err := f.uc.Dispatch(context.Background(), commands.DispatchRequest{
			Event:      notification.EventPaymentFailed,
			Payload:    map[string]any{"amount": "$500"},
			Recipients: []uuid.UUID{contact.ID},
		})

		require.NoError(t, err)
		require.Len(t, result.Outcomes, 1)
		assert.Equal(t, notification.ChannelSMS, result.Outcomes[0].Channel)
	})

	t.Run("sms suppressed for routine event even when opted in", func(t *testing.T) {
		f := newNotifyFixture(t)
		contact := builder.NewContactBuilder()
		pref := notification.Preference{
			Category: notification.CategoryQuotes,
			Push:     false,
			Email:    false,
			SMS:      true,
		}

		f.contacts.EXPECT().
			PreferencesByIDs(gomock.Any(), gomock.Any(), notification.CategoryQuotes).
			Return(map[uuid.UUID]notification.Preference{contact.ID: pref}, nil)
		f.contacts.EXPECT().
			ContactsByIDs(gomock.Any(), gomock.Any()).
			Return([]queries.UserContactView{contact.Build()}, nil)
		f.notifications.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.uc.Dispatch(context.Background(), commands.DispatchRequest{
			Event:      notification.EventQuoteReceived,
			Payload:    map[string]any{"amount": "$500"},
			Recipients: []uuid.UUID{contact.ID},
		})

		require.NoError(t, err)
		assert.Empty(t, result.Outcomes)
	})
}

func TestDispatchClearsInvalidDeviceToken(t *testing.T) {
	f := newNotifyFixture(t)
	contact := builder.NewContactBuilder().With(func(b *builder.ContactBuilder) {
		b.Email = nil
		b.Phone = nil
	})

	f.contacts.EXPECT().
		PreferencesByIDs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]notification.Preference{}, nil)
	f.contacts.EXPECT().
		ContactsByIDs(gomock.Any(), gomock.Any()).
		Return([]queries.UserContactView{contact.Build()}, nil)
	f.notifications.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)
	f.push.EXPECT().
		Send(gomock.Any(), []string{*contact.DeviceToken}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(commands.PushResult{InvalidTokens: []string{*contact.DeviceToken}}, nil)
	f.devices.EXPECT().ClearDeviceToken(gomock.Any(), contact.ID).Return(nil)

	_, err := f.uc.Dispatch(context.Background(), commands.DispatchRequest{
		Event:      notification.EventQuoteReceived,
		Payload:    map[string]any{"amount": "$500"},
		Recipients: []uuid.UUID{contact.ID},
	})

	require.NoError(t, err)
}

func TestDispatchPartialChannelFailure(t *testing.T) {
	f := newNotifyFixture(t)
	contact := builder.NewContactBuilder()
	emailErr := errors.New("smtp unavailable")

	f.contacts.EXPECT().
		PreferencesByIDs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]notification.Preference{}, nil)
	f.contacts.EXPECT().
		ContactsByIDs(gomock.Any(), gomock.Any()).
		Return([]queries.UserContactView{contact.Build()}, nil)
	f.notifications.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)
	f.push.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(commands.PushResult{Sent: 1}, nil)
	f.email.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(emailErr)

	result, err := f.uc.Dispatch(context.Background(), commands.DispatchRequest{
		Event:      notification.EventQuoteReceived,
		Payload:    map[string]any{"amount": "$500"},
		Recipients: []uuid.UUID{contact.ID},
	})

	// The in-app write succeeded, so a channel failure is not an overall error.
	require.NoError(t, err)
	assert.Equal(t, 1, result.Notified)

	byChannel := outcomesByChannel(result.Outcomes)
	assert.NoError(t, byChannel[notification.ChannelPush].Err)
	assert.ErrorIs(t, byChannel[notification.ChannelEmail].Err, emailErr)
}

func TestDispatchInsertFailureIsFatal(t *testing.T) {
	f := newNotifyFixture(t)
	contact := builder.NewContactBuilder()

	f.contacts.EXPECT().
		PreferencesByIDs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]notification.Preference{}, nil)
	f.contacts.EXPECT().
		ContactsByIDs(gomock.Any(), gomock.Any()).
		Return([]queries.UserContactView{contact.Build()}, nil)
	f.notifications.EXPECT().
		InsertBatch(gomock.Any(), gomock.Any()).
		Return(errors.New("insert failed"))

	_, err := f.uc.Dispatch(context.Background(), commands.DispatchRequest{
		Event:      notification.EventQuoteReceived,
		Payload:    map[string]any{"amount": "$500"},
		Recipients: []uuid.UUID{contact.ID},
	})

	assert.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
}

func TestMarkReadDelegates(t *testing.T) {
	f := newNotifyFixture(t)
	notificationID := uuid.New()
	userID := uuid.New()

	f.notifications.EXPECT().MarkRead(gomock.Any(), notificationID, userID).Return(nil)

	assert.NoError(t, f.uc.MarkRead(context.Background(), notificationID, userID))
}
