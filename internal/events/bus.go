// Package events carries the in-process notifications other subsystems
// subscribe to. Dispatch is synchronous and single-writer: handlers run
// in registration order on the goroutine that emitted the event.
package events

import (
	"sync"
	"time"

	"github.com/blargg/internal/db"
	"github.com/google/uuid"
)

// EntryPublished is emitted after an entry's row has been committed
// with a freshly stamped publish date. It fires at most once per entry
// under the first-publish guard, and before tag extraction runs, so
// subscribers see the entry's pre-extraction tag state.
type EntryPublished struct {
	EventID    uuid.UUID
	Entry      *db.Entry
	OccurredAt time.Time
}

// Bus is a minimal synchronous publish/subscribe hub.
type Bus struct {
	mu                 sync.Mutex
	entryPublishedSubs []func(EntryPublished)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// SubscribeEntryPublished registers a handler for publish notifications.
func (b *Bus) SubscribeEntryPublished(fn func(EntryPublished)) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entryPublishedSubs = append(b.entryPublishedSubs, fn)
}

// EmitEntryPublished assigns the event an ID and delivers it to every
// subscriber in registration order.
func (b *Bus) EmitEntryPublished(event EntryPublished) {
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}

	b.mu.Lock()
	subs := make([]func(EntryPublished), len(b.entryPublishedSubs))
	copy(subs, b.entryPublishedSubs)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(event)
	}
}
