package booking

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

func TestReconcileCapsAtCapacity(t *testing.T) {
	slots := newFakeSlotStore(testSlot(1, "2024-03-15", "10:00:00", 2, 0))
	appts := newFakeAppointmentStore()
	appts.stored = []models.Appointment{
		activeAppointment(1, domain.StatusPending),
		activeAppointment(1, domain.StatusPending),
		activeAppointment(1, domain.StatusConfirmed), // dato sucio: sobrecupo
	}
	c := newFakeCache()

	uc := NewReconcileSlot(slots, appts, c, zap.NewNop())
	uc.Execute(context.Background(), 1)

	if got := slots.bookedWrites[1]; got != 2 {
		t.Fatalf("expected booked capped at capacity 2, got %d", got)
	}
	if string(c.data["slot:1:booked"]) != "2" {
		t.Fatalf("cache counter not refreshed: %q", c.data["slot:1:booked"])
	}
}

func TestReconcileFlooredAtZero(t *testing.T) {
	slots := newFakeSlotStore(testSlot(1, "2024-03-15", "10:00:00", 2, 1))
	appts := newFakeAppointmentStore()
	appts.stored = []models.Appointment{activeAppointment(1, domain.StatusCancelled)}

	uc := NewReconcileSlot(slots, appts, newFakeCache(), zap.NewNop())
	uc.Execute(context.Background(), 1)

	if got := slots.bookedWrites[1]; got != 0 {
		t.Fatalf("expected booked=0, got %d", got)
	}
}

func TestReconcileSwallowsCountFailure(t *testing.T) {
	slots := newFakeSlotStore(testSlot(1, "2024-03-15", "10:00:00", 2, 1))
	appts := newFakeAppointmentStore()
	appts.countErr = errors.New("boom")

	uc := NewReconcileSlot(slots, appts, newFakeCache(), zap.NewNop())
	uc.Execute(context.Background(), 1) // no panic, no propagación

	if _, wrote := slots.bookedWrites[1]; wrote {
		t.Fatalf("must not write booked on count failure")
	}
}

func TestReconcileSwallowsSetFailure(t *testing.T) {
	slots := newFakeSlotStore(testSlot(1, "2024-03-15", "10:00:00", 2, 0))
	slots.setErr = errors.New("read-only replica")
	appts := newFakeAppointmentStore()

	uc := NewReconcileSlot(slots, appts, newFakeCache(), zap.NewNop())
	uc.Execute(context.Background(), 1)
}

func TestReconcileInvalidatesAvailability(t *testing.T) {
	slots := newFakeSlotStore(testSlot(1, "2024-03-15", "10:00:00", 2, 0))
	appts := newFakeAppointmentStore()
	appts.stored = []models.Appointment{activeAppointment(1, domain.StatusPending)}
	c := newFakeCache()
	c.data["avail:2024-03-15:default"] = []byte("[]")

	uc := NewReconcileSlot(slots, appts, c, zap.NewNop())
	uc.Execute(context.Background(), 1)

	if _, still := c.data["avail:2024-03-15:default"]; still {
		t.Fatalf("availability cache must be invalidated")
	}
}
