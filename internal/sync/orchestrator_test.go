//go:build unit

package sync_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"charterlink/internal/domain/crm"
	"charterlink/internal/domain/event"
	"charterlink/internal/pkg/clock"
	"charterlink/internal/sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCRM records calls and serves canned contacts, keyed by email.
type fakeCRM struct {
	contacts map[string]*crm.Contact
	notes    []string
	noteErr  error

	lookups int
	creates int
	updates int
}

func newFakeCRM() *fakeCRM {
	return &fakeCRM{contacts: map[string]*crm.Contact{}}
}

func (f *fakeCRM) LookupContactByEmail(_ context.Context, email string) (*crm.Contact, error) {
	f.lookups++
	if c, ok := f.contacts[email]; ok {
		return c, nil
	}
	return nil, nil
}

func (f *fakeCRM) CreateContact(_ context.Context, c crm.Contact) (*crm.Contact, error) {
	f.creates++
	c.ID = "crm-" + uuid.NewString()[:8]
	f.contacts[c.Email] = &c
	return &c, nil
}

func (f *fakeCRM) UpdateContact(_ context.Context, id string, c crm.Contact) error {
	f.updates++
	c.ID = id
	f.contacts[c.Email] = &c
	return nil
}

func (f *fakeCRM) AddNote(_ context.Context, contactID, text string) error {
	if f.noteErr != nil {
		return f.noteErr
	}
	f.notes = append(f.notes, contactID+": "+text)
	return nil
}

func (f *fakeCRM) CreateOpportunity(_ context.Context, o crm.Opportunity) (*crm.Opportunity, error) {
	o.ID = "opp-" + uuid.NewString()[:8]
	return &o, nil
}

func (f *fakeCRM) UpdateOpportunity(_ context.Context, _ string, _ crm.Opportunity) error {
	return nil
}

func newTestOrchestrator(t *testing.T, client sync.CRMClient, clk clock.Clock) (*sync.Orchestrator, *sync.Queue) {
	t.Helper()
	q := sync.NewQueue(&memStore{}, slog.Default(), sync.WithBaseDelay(time.Millisecond))
	q.Initialize()
	q.SetOnlineStatus(true)
	return sync.NewOrchestrator(client, q, clk, slog.Default()), q
}

func profile() crm.UserProfile {
	return crm.UserProfile{
		ID:       uuid.New(),
		Email:    "pilot@example.com",
		FullName: "Ada Lovelace",
		Role:     "team_admin",
		OrgName:  "Acme Jets",
	}
}

func TestIdentifyCreatesContactOnce(t *testing.T) {
	client := newFakeCRM()
	o, _ := newTestOrchestrator(t, client, clock.NewRealClock())

	require.NoError(t, o.Identify(context.Background(), profile()))
	assert.NotEmpty(t, o.ContactID())
	assert.Equal(t, 1, client.lookups)
	assert.Equal(t, 1, client.creates)

	// Second identify within the cache TTL skips the lookup but still
	// refreshes the contact.
	require.NoError(t, o.Identify(context.Background(), profile()))
	assert.Equal(t, 1, client.lookups)
	assert.Equal(t, 1, client.creates)
	assert.Equal(t, 1, client.updates)
}

func TestIdentifyCacheExpiry(t *testing.T) {
	client := newFakeCRM()
	mockClock := clock.NewMockClock(time.Now().UTC())
	o, _ := newTestOrchestrator(t, client, mockClock)

	require.NoError(t, o.Identify(context.Background(), profile()))
	assert.Equal(t, 1, client.lookups)

	mockClock.Add(sync.ContactCacheTTL + time.Second)

	require.NoError(t, o.Identify(context.Background(), profile()))
	assert.Equal(t, 2, client.lookups)
}

func TestIdentifyExistingContactRefreshes(t *testing.T) {
	client := newFakeCRM()
	client.contacts["pilot@example.com"] = &crm.Contact{ID: "crm-existing", Email: "pilot@example.com"}
	o, _ := newTestOrchestrator(t, client, clock.NewRealClock())

	require.NoError(t, o.Identify(context.Background(), profile()))
	assert.Equal(t, "crm-existing", o.ContactID())
	assert.Equal(t, 0, client.creates)
	assert.Equal(t, 1, client.updates)
}

func TestIdentifyOrganizationPlaceholderEmail(t *testing.T) {
	client := newFakeCRM()
	o, _ := newTestOrchestrator(t, client, clock.NewRealClock())

	orgID := uuid.New()
	require.NoError(t, o.IdentifyOrganization(context.Background(), crm.OrganizationInfo{
		ID:   orgID,
		Name: "Acme Jets",
	}))

	_, ok := client.contacts["org-"+orgID.String()+"@placeholder.charter.local"]
	assert.True(t, ok)
}

func TestProcessEventWritesNote(t *testing.T) {
	client := newFakeCRM()
	o, q := newTestOrchestrator(t, client, clock.NewRealClock())

	require.NoError(t, o.Identify(context.Background(), profile()))

	q.Enqueue(event.NewTrackedEvent(event.TypeSearchPerformed, nil, map[string]any{"query": "LAX to JFK"}, event.Metadata{}))
	q.ProcessQueue(context.Background())

	require.Len(t, client.notes, 1)
	assert.Contains(t, client.notes[0], "LAX to JFK")
	assert.Equal(t, 0, q.Len())
}

func TestProcessEventWithoutContactDropsAsProcessed(t *testing.T) {
	client := newFakeCRM()
	o, q := newTestOrchestrator(t, client, clock.NewRealClock())

	err := o.ProcessEvent(context.Background(), event.NewTrackedEvent(event.TypeAppOpened, nil, nil, event.Metadata{}))
	assert.NoError(t, err)

	// Through the queue the event is consumed, not retried.
	q.Enqueue(event.NewTrackedEvent(event.TypeAppOpened, nil, nil, event.Metadata{}))
	q.ProcessQueue(context.Background())
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.FailedEvents())
	assert.Empty(t, client.notes)
}

func TestProcessEventNoteFailureRetries(t *testing.T) {
	client := newFakeCRM()
	client.noteErr = errors.New("api down")
	o, q := newTestOrchestrator(t, client, clock.NewRealClock())

	require.NoError(t, o.Identify(context.Background(), profile()))

	q.Enqueue(event.NewTrackedEvent(event.TypeAppOpened, nil, nil, event.Metadata{}))
	q.ProcessQueue(context.Background())

	assert.Equal(t, 0, q.Len())
	assert.Len(t, q.FailedEvents(), 1)
}

func TestCreateRequestOpportunity(t *testing.T) {
	client := newFakeCRM()
	o, _ := newTestOrchestrator(t, client, clock.NewRealClock())

	_, err := o.CreateRequestOpportunity(context.Background(), crm.RequestInfo{TripType: "round_trip", Passengers: 4})
	assert.Error(t, err, "no contact identified yet")

	require.NoError(t, o.Identify(context.Background(), profile()))

	opp, err := o.CreateRequestOpportunity(context.Background(), crm.RequestInfo{
		TripType:   "round_trip",
		Urgency:    crm.UrgencyStandard,
		Passengers: 4,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, opp.ID)
	assert.Equal(t, o.ContactID(), opp.ContactID)
}

func TestClearContact(t *testing.T) {
	client := newFakeCRM()
	o, _ := newTestOrchestrator(t, client, clock.NewRealClock())

	require.NoError(t, o.Identify(context.Background(), profile()))
	require.NotEmpty(t, o.ContactID())

	o.ClearContact()
	assert.Empty(t, o.ContactID())

	// The cache was cleared too, so the next identify hits the remote again.
	require.NoError(t, o.Identify(context.Background(), profile()))
	assert.Equal(t, 2, client.lookups)
}
