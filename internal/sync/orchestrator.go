package sync

import (
	"context"
	"log/slog"
	stdsync "sync"
	"time"

	"charterlink/internal/domain/crm"
	"charterlink/internal/domain/event"
	"charterlink/internal/pkg/clock"
	"charterlink/internal/pkg/errs"
)

// DefaultFlushInterval is how often the orchestrator re-drains the queue to
// pick up items persisted before an interrupted drain.
const DefaultFlushInterval = 30 * time.Second

// CRMClient is the consumed slice of the external relationship-management
// API. LookupContactByEmail returns (nil, nil) when no contact exists.
type CRMClient interface {
	LookupContactByEmail(ctx context.Context, email string) (*crm.Contact, error)
	CreateContact(ctx context.Context, c crm.Contact) (*crm.Contact, error)
	UpdateContact(ctx context.Context, id string, c crm.Contact) error
	AddNote(ctx context.Context, contactID, text string) error
	CreateOpportunity(ctx context.Context, o crm.Opportunity) (*crm.Opportunity, error)
	UpdateOpportunity(ctx context.Context, id string, o crm.Opportunity) error
}

// Orchestrator resolves the external contact for the active user, drains the
// durable queue into contact activity notes, and manages opportunities.
type Orchestrator struct {
	client        CRMClient
	queue         *Queue
	cache         *contactCache
	clock         clock.Clock
	logger        *slog.Logger
	flushInterval time.Duration

	mu        stdsync.Mutex
	contactID string
}

type OrchestratorOption func(*Orchestrator)

func WithFlushInterval(d time.Duration) OrchestratorOption {
	return func(o *Orchestrator) { o.flushInterval = d }
}

func NewOrchestrator(client CRMClient, queue *Queue, clk clock.Clock, logger *slog.Logger, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		client:        client,
		queue:         queue,
		cache:         newContactCache(clk),
		clock:         clk,
		logger:        logger,
		flushInterval: DefaultFlushInterval,
	}
	for _, opt := range opts {
		opt(o)
	}
	queue.SetProcessor(o.ProcessEvent)
	return o
}

// Identify resolves the external contact for the given profile: TTL cache,
// then remote lookup by email, then create-if-absent. The contact's profile,
// company and tags are refreshed on every call.
func (o *Orchestrator) Identify(ctx context.Context, profile crm.UserProfile) error {
	mapped := crm.UserToContact(profile)

	if cached, ok := o.cache.get(profile.Email); ok {
		o.setContactID(cached.ID)
		if err := o.client.UpdateContact(ctx, cached.ID, mapped); err != nil {
			return errs.Wrap(err, "failed to refresh cached contact")
		}
		return nil
	}

	existing, err := o.client.LookupContactByEmail(ctx, profile.Email)
	if err != nil {
		return errs.Wrap(err, "contact lookup failed")
	}

	if existing == nil {
		created, err := o.client.CreateContact(ctx, mapped)
		if err != nil {
			return errs.Wrap(err, "contact creation failed")
		}
		existing = created
	} else if err := o.client.UpdateContact(ctx, existing.ID, mapped); err != nil {
		return errs.Wrap(err, "contact refresh failed")
	}

	mapped.ID = existing.ID
	o.cache.put(profile.Email, mapped)
	o.setContactID(existing.ID)
	return nil
}

// IdentifyOrganization resolves a company-level contact, synthesizing a
// deterministic placeholder email when the organization has none.
func (o *Orchestrator) IdentifyOrganization(ctx context.Context, org crm.OrganizationInfo) error {
	mapped := crm.OrganizationToContact(org)

	if cached, ok := o.cache.get(mapped.Email); ok {
		o.setContactID(cached.ID)
		return nil
	}

	existing, err := o.client.LookupContactByEmail(ctx, mapped.Email)
	if err != nil {
		return errs.Wrap(err, "organization contact lookup failed")
	}
	if existing == nil {
		created, err := o.client.CreateContact(ctx, mapped)
		if err != nil {
			return errs.Wrap(err, "organization contact creation failed")
		}
		existing = created
	}

	mapped.ID = existing.ID
	o.cache.put(mapped.Email, mapped)
	o.setContactID(existing.ID)
	return nil
}

// ProcessEvent is the queue's processor: it turns a tracked event into an
// activity note on the resolved contact. With no identified contact the
// event is dropped as processed; retrying it forever would starve the FIFO
// queue behind it.
func (o *Orchestrator) ProcessEvent(ctx context.Context, ev event.TrackedEvent) error {
	contactID := o.ContactID()
	if ev.ContactID != nil && *ev.ContactID != "" {
		contactID = *ev.ContactID
	}

	if contactID == "" {
		o.logger.Warn("no contact identified, dropping event", "event_id", ev.ID, "event_type", ev.Type)
		return nil
	}

	if err := o.client.AddNote(ctx, contactID, event.Describe(ev)); err != nil {
		return errs.Wrap(err, "failed to write activity note")
	}
	return nil
}

// CreateRequestOpportunity creates an opportunity for a charter request
// against the currently identified contact.
func (o *Orchestrator) CreateRequestOpportunity(ctx context.Context, req crm.RequestInfo) (*crm.Opportunity, error) {
	contactID := o.ContactID()
	if contactID == "" {
		return nil, errs.New("no contact identified for opportunity")
	}

	opp := crm.RequestToOpportunity(req, contactID)
	created, err := o.client.CreateOpportunity(ctx, opp)
	if err != nil {
		return nil, errs.Wrap(err, "opportunity creation failed")
	}
	return created, nil
}

// UpdateRequestOpportunity pushes the request's current status and value to
// an existing opportunity.
func (o *Orchestrator) UpdateRequestOpportunity(ctx context.Context, opportunityID string, req crm.RequestInfo) error {
	contactID := o.ContactID()
	opp := crm.RequestToOpportunity(req, contactID)
	if err := o.client.UpdateOpportunity(ctx, opportunityID, opp); err != nil {
		return errs.Wrap(err, "opportunity update failed")
	}
	return nil
}

// Run owns the background flush ticker and the queue's worker loop; both
// stop when ctx is cancelled.
func (o *Orchestrator) Run(ctx context.Context) {
	go o.queue.Run(ctx)

	ticker := time.NewTicker(o.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.queue.ProcessQueue(ctx)
		}
	}
}

// ClearContact drops the identified contact and cache, e.g. on sign-out.
func (o *Orchestrator) ClearContact() {
	o.cache.clear()
	o.setContactID("")
}

func (o *Orchestrator) ContactID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.contactID
}

func (o *Orchestrator) setContactID(id string) {
	o.mu.Lock()
	o.contactID = id
	o.mu.Unlock()
}
