package sync

import (
	"context"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"charterlink/internal/domain/event"
)

const (
	// MaxRetries is the per-item attempt ceiling; an item at the ceiling is
	// dropped without a further processor invocation.
	MaxRetries = 3

	// DefaultBaseDelay seeds the exponential backoff (1s, 2s, 4s).
	DefaultBaseDelay = time.Second
)

// QueueItem wraps a tracked event with retry accounting. It is owned
// exclusively by the queue and mutated in place on failed attempts.
type QueueItem struct {
	Event       event.TrackedEvent `json:"event"`
	RetryCount  int                `json:"retry_count"`
	CreatedAt   time.Time          `json:"created_at"`
	LastAttempt *time.Time         `json:"last_attempt,omitempty"`
	LastError   string             `json:"last_error,omitempty"`
}

// Processor delivers one event. A nil return removes the item from the
// queue; an error schedules a retry with backoff.
type Processor func(ctx context.Context, ev event.TrackedEvent) error

// Queue is the durable FIFO of pending events. A single worker goroutine
// drains it, so no two processor invocations ever run concurrently and
// per-contact ordering of activity notes is preserved structurally.
type Queue struct {
	store     Store
	logger    *slog.Logger
	baseDelay time.Duration

	mu        stdsync.Mutex
	items     []QueueItem
	failed    []event.TrackedEvent
	online    bool
	processor Processor

	// drainMu serializes drains when ProcessQueue races the worker loop.
	drainMu stdsync.Mutex

	wake chan struct{}
}

type QueueOption func(*Queue)

// WithBaseDelay overrides the backoff base, mainly for tests.
func WithBaseDelay(d time.Duration) QueueOption {
	return func(q *Queue) { q.baseDelay = d }
}

func NewQueue(store Store, logger *slog.Logger, opts ...QueueOption) *Queue {
	q := &Queue{
		store:     store,
		logger:    logger,
		baseDelay: DefaultBaseDelay,
		wake:      make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Initialize loads the persisted item list. Corrupt or unreadable storage is
// treated as an empty queue; it is logged, never fatal.
func (q *Queue) Initialize() {
	items, err := q.store.Load()
	if err != nil {
		q.logger.Warn("queue blob unreadable, starting empty", "error", err)
		items = nil
	}

	q.mu.Lock()
	q.items = items
	q.mu.Unlock()
}

// SetProcessor registers the delivery function. Without one the drain loop
// leaves items in place.
func (q *Queue) SetProcessor(p Processor) {
	q.mu.Lock()
	q.processor = p
	q.mu.Unlock()
}

// Enqueue appends an item, persists synchronously, and signals the worker if
// currently online. It never returns an error; persistence failures are
// logged and the in-memory queue stays authoritative for this process.
func (q *Queue) Enqueue(ev event.TrackedEvent) {
	q.mu.Lock()
	q.items = append(q.items, QueueItem{
		Event:     ev,
		CreatedAt: time.Now().UTC(),
	})
	q.persistLocked()
	online := q.online
	q.mu.Unlock()

	if online {
		q.signal()
	}
}

// SetOnlineStatus toggles the drain gate. Transitioning to online triggers a
// drain; offline stops further attempts until reset.
func (q *Queue) SetOnlineStatus(online bool) {
	q.mu.Lock()
	wasOnline := q.online
	q.online = online
	q.mu.Unlock()

	if online && !wasOnline {
		q.signal()
	}
}

// RemoveEvent deletes the item with the given event id. Unknown ids are a
// no-op.
func (q *Queue) RemoveEvent(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, item := range q.items {
		if item.Event.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			q.persistLocked()
			return
		}
	}
}

// RetryEvent resets the item's retry count and signals a drain. Unknown ids
// are a no-op.
func (q *Queue) RetryEvent(id string) {
	q.mu.Lock()
	found := false
	for i := range q.items {
		if q.items[i].Event.ID == id {
			q.items[i].RetryCount = 0
			q.items[i].LastError = ""
			q.persistLocked()
			found = true
			break
		}
	}
	q.mu.Unlock()

	if found {
		q.signal()
	}
}

// Len reports the number of pending items.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Items returns a snapshot of the pending items.
func (q *Queue) Items() []QueueItem {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]QueueItem, len(q.items))
	copy(out, q.items)
	return out
}

// FailedEvents lists events dropped after exhausting their retries.
func (q *Queue) FailedEvents() []event.TrackedEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]event.TrackedEvent, len(q.failed))
	copy(out, q.failed)
	return out
}

// Run is the single-consumer worker loop. Exactly one Run per queue; it
// exits when ctx is cancelled.
func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-q.wake:
			q.drain(ctx)
		}
	}
}

// ProcessQueue drains synchronously on the caller's goroutine. Used by the
// periodic flush and by tests; Enqueue/SetOnlineStatus go through the worker.
func (q *Queue) ProcessQueue(ctx context.Context) {
	q.drain(ctx)
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// drain walks the queue head to tail, one item in flight at a time. The item
// at the head stays there across failed attempts until it succeeds or hits
// the retry ceiling, so delivery order is strict FIFO.
func (q *Queue) drain(ctx context.Context) {
	q.drainMu.Lock()
	defer q.drainMu.Unlock()

	for {
		q.mu.Lock()
		if !q.online || q.processor == nil || len(q.items) == 0 {
			q.mu.Unlock()
			return
		}
		head := q.items[0]
		processor := q.processor

		if head.RetryCount >= MaxRetries {
			q.items = q.items[1:]
			q.failed = append(q.failed, head.Event)
			q.persistLocked()
			q.mu.Unlock()
			q.logger.Warn("dropping event after max retries",
				"event_id", head.Event.ID,
				"event_type", head.Event.Type,
				"last_error", head.LastError)
			continue
		}
		q.mu.Unlock()

		err := invoke(ctx, processor, head.Event)

		q.mu.Lock()
		// The head may have been removed or reordered by RemoveEvent while
		// the processor ran; only touch it if it is still the same item.
		if len(q.items) == 0 || q.items[0].Event.ID != head.Event.ID {
			q.mu.Unlock()
			continue
		}

		if err == nil {
			q.items = q.items[1:]
			q.persistLocked()
			q.mu.Unlock()
			continue
		}

		q.items[0].RetryCount++
		now := time.Now().UTC()
		q.items[0].LastAttempt = &now
		q.items[0].LastError = err.Error()
		retryCount := q.items[0].RetryCount
		q.persistLocked()
		q.mu.Unlock()

		q.logger.Debug("event delivery failed, backing off",
			"event_id", head.Event.ID,
			"retry_count", retryCount,
			"error", err)

		if !q.sleep(ctx, BackoffDelay(q.baseDelay, retryCount)) {
			return
		}
	}
}

// BackoffDelay returns base * 2^(retryCount-1) for the given attempt.
func BackoffDelay(base time.Duration, retryCount int) time.Duration {
	if retryCount < 1 {
		return base
	}
	return base << (retryCount - 1)
}

// sleep blocks the drain loop only; it returns false if ctx was cancelled.
func (q *Queue) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func invoke(ctx context.Context, p Processor, ev event.TrackedEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError{val: r}
		}
	}()
	return p(ctx, ev)
}

type panicError struct{ val any }

func (e panicError) Error() string { return fmt.Sprintf("processor panic: %v", e.val) }

func (q *Queue) persistLocked() {
	if err := q.store.Save(q.items); err != nil {
		q.logger.Warn("failed to persist queue, in-memory state remains authoritative", "error", err)
	}
}
