package sync

import (
	stdsync "sync"
	"time"

	"charterlink/internal/domain/crm"
	"charterlink/internal/pkg/clock"
)

// ContactCacheTTL bounds how long a resolved contact is reused before the
// orchestrator looks it up again.
const ContactCacheTTL = 5 * time.Minute

type cacheEntry struct {
	contact  crm.Contact
	cachedAt time.Time
}

// contactCache is a TTL-bounded map of contacts keyed by email.
type contactCache struct {
	mu      stdsync.Mutex
	entries map[string]cacheEntry
	clock   clock.Clock
	ttl     time.Duration
}

func newContactCache(clk clock.Clock) *contactCache {
	return &contactCache{
		entries: make(map[string]cacheEntry),
		clock:   clk,
		ttl:     ContactCacheTTL,
	}
}

func (c *contactCache) get(email string) (crm.Contact, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[email]
	if !ok {
		return crm.Contact{}, false
	}
	if c.clock.Now().Sub(entry.cachedAt) > c.ttl {
		delete(c.entries, email)
		return crm.Contact{}, false
	}
	return entry.contact, true
}

func (c *contactCache) put(email string, contact crm.Contact) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[email] = cacheEntry{contact: contact, cachedAt: c.clock.Now()}
}

func (c *contactCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
