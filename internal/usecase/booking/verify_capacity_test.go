package booking

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

func activeAppointment(slotID uint, status domain.Status) models.Appointment {
	return models.Appointment{SlotID: slotID, Status: string(status)}
}

func TestVerifyCapacityAvailable(t *testing.T) {
	store := newFakeAppointmentStore()
	store.stored = []models.Appointment{activeAppointment(1, domain.StatusPending)}

	uc := NewVerifyCapacity(store, zap.NewNop())
	slot := &models.Slot{ID: 1, Capacity: 2, Booked: 0}

	if err := uc.Execute(context.Background(), slot); err != nil {
		t.Fatalf("expected available, got %v", err)
	}
}

func TestVerifyCapacityFull(t *testing.T) {
	store := newFakeAppointmentStore()
	store.stored = []models.Appointment{activeAppointment(1, domain.StatusConfirmed)}

	uc := NewVerifyCapacity(store, zap.NewNop())
	slot := &models.Slot{ID: 1, Capacity: 1, Booked: 0}

	err := uc.Execute(context.Background(), slot)
	var capErr *domain.CapacityExceededError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityExceededError, got %v", err)
	}
	if capErr.Capacity != 1 || capErr.BookedCount != 1 {
		t.Fatalf("unexpected payload: %+v", capErr)
	}
}

func TestVerifyCapacityCancelledDoesNotCount(t *testing.T) {
	store := newFakeAppointmentStore()
	store.stored = []models.Appointment{
		activeAppointment(1, domain.StatusCancelled),
		activeAppointment(1, domain.StatusNoShow),
	}

	uc := NewVerifyCapacity(store, zap.NewNop())
	slot := &models.Slot{ID: 1, Capacity: 1, Booked: 1}

	if err := uc.Execute(context.Background(), slot); err != nil {
		t.Fatalf("expected available, got %v", err)
	}
}

func TestVerifyCapacityLiveCountOverridesStaleBooked(t *testing.T) {
	// El contador dice lleno, el recuento en vivo dice que hay lugar: el
	// recuento manda.
	store := newFakeAppointmentStore()

	uc := NewVerifyCapacity(store, zap.NewNop())
	slot := &models.Slot{ID: 1, Capacity: 2, Booked: 2}

	if err := uc.Execute(context.Background(), slot); err != nil {
		t.Fatalf("expected available, got %v", err)
	}
}

func TestVerifyCapacityFallsBackToBooked(t *testing.T) {
	store := newFakeAppointmentStore()
	store.countErr = errors.New("boom")

	uc := NewVerifyCapacity(store, zap.NewNop())

	full := &models.Slot{ID: 1, Capacity: 2, Booked: 2}
	err := uc.Execute(context.Background(), full)
	var capErr *domain.CapacityExceededError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityExceededError from booked fallback, got %v", err)
	}

	open := &models.Slot{ID: 2, Capacity: 2, Booked: 1}
	if err := uc.Execute(context.Background(), open); err != nil {
		t.Fatalf("expected available from booked fallback, got %v", err)
	}
}

func TestVerifyCapacityFailsOpenWithoutSignals(t *testing.T) {
	store := newFakeAppointmentStore()
	store.countErr = errors.New("boom")

	uc := NewVerifyCapacity(store, zap.NewNop())
	slot := &models.Slot{ID: 1, Capacity: 1, Booked: -1}

	if err := uc.Execute(context.Background(), slot); err != nil {
		t.Fatalf("expected fail-open availability, got %v", err)
	}
}
