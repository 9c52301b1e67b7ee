package events

import (
	"testing"
	"time"

	"github.com/blargg/internal/db"
	"github.com/google/uuid"
)

func TestBusDeliversInRegistrationOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.SubscribeEntryPublished(func(EntryPublished) {
		order = append(order, "first")
	})
	bus.SubscribeEntryPublished(func(EntryPublished) {
		order = append(order, "second")
	})

	bus.EmitEntryPublished(EntryPublished{Entry: &db.Entry{}, OccurredAt: time.Now()})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("expected handlers in registration order, got %v", order)
	}
}

func TestBusAssignsEventID(t *testing.T) {
	bus := NewBus()

	var got EntryPublished
	bus.SubscribeEntryPublished(func(e EntryPublished) {
		got = e
	})

	bus.EmitEntryPublished(EntryPublished{Entry: &db.Entry{}})

	if got.EventID == uuid.Nil {
		t.Fatal("expected a generated event id")
	}
}

func TestBusWithoutSubscribersIsANoOp(t *testing.T) {
	bus := NewBus()
	bus.EmitEntryPublished(EntryPublished{Entry: &db.Entry{}})
}
