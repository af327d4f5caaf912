package booking

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestListAvailabilityComputesRemaining(t *testing.T) {
	slots := newFakeSlotStore(
		testSlot(1, "2024-03-15", "10:00:00", 2, 1),
		testSlot(2, "2024-03-15", "16:30:00", 1, 3), // contador pasado de cupo
	)
	c := newFakeCache()

	uc := NewListAvailability(slots, c, zap.NewNop())

	entries, err := uc.Execute(context.Background(), "2024-03-15", "")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Time != "10:00" || entries[0].Remaining != 1 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Remaining != 0 {
		t.Fatalf("remaining must floor at zero, got %d", entries[1].Remaining)
	}

	if _, ok := c.data["avail:2024-03-15:default"]; !ok {
		t.Fatalf("expected availability cached")
	}
}

func TestListAvailabilityServesFromCache(t *testing.T) {
	slots := newFakeSlotStore()
	slots.listErr = errors.New("db down")
	c := newFakeCache()
	c.data["avail:2024-03-15:default"] = []byte(`[{"slot_id":1,"time":"10:00","capacity":2,"booked":1,"remaining":1}]`)

	uc := NewListAvailability(slots, c, zap.NewNop())

	entries, err := uc.Execute(context.Background(), "2024-03-15", "")
	if err != nil {
		t.Fatalf("expected cache hit to succeed, got %v", err)
	}
	if len(entries) != 1 || entries[0].Remaining != 1 {
		t.Fatalf("unexpected cached entries: %+v", entries)
	}
}

func TestListAvailabilityCacheFailureFallsThrough(t *testing.T) {
	slots := newFakeSlotStore(testSlot(1, "2024-03-15", "10:00:00", 2, 0))
	c := newFakeCache()
	c.getErr = errors.New("redis down")
	c.setErr = errors.New("redis down")

	uc := NewListAvailability(slots, c, zap.NewNop())

	entries, err := uc.Execute(context.Background(), "2024-03-15T00:00:00Z", "")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}
