package booking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/VivientaServicios01/visitas-scheduler/internal/cache"
	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
)

const bookedKeyTTL = 10 * time.Minute

// ReconcileSlot recalcula el contador de cortesía de un horario:
// booked = min(capacity, citas activas). Siempre es mejor esfuerzo; una
// falla aquí se registra y se traga, jamás deshace la cita que la
// disparó. El verificador de cupo nunca depende de este contador como
// autoridad.
type ReconcileSlot struct {
	slots        domain.SlotStore
	appointments domain.AppointmentStore
	cache        cache.Cache
	log          *zap.Logger
}

func NewReconcileSlot(
	slots domain.SlotStore,
	appointments domain.AppointmentStore,
	c cache.Cache,
	log *zap.Logger,
) *ReconcileSlot {
	return &ReconcileSlot{
		slots:        slots,
		appointments: appointments,
		cache:        c,
		log:          log,
	}
}

func (uc *ReconcileSlot) Execute(ctx context.Context, slotID uint) {

	slot, err := uc.slots.Get(ctx, slotID)
	if err != nil {
		uc.log.Warn("reconciliación: horario ilegible",
			zap.Uint("slot_id", slotID), zap.Error(err))
		return
	}

	count, err := uc.appointments.CountActive(ctx, slotID)
	if err != nil {
		uc.log.Warn("reconciliación: conteo de citas falló",
			zap.Uint("slot_id", slotID), zap.Error(err))
		return
	}

	booked := count
	if booked > slot.Capacity {
		booked = slot.Capacity
	}
	if booked < 0 {
		booked = 0
	}

	if err := uc.slots.SetBooked(ctx, slotID, booked); err != nil {
		uc.log.Warn("reconciliación: no se pudo persistir el contador",
			zap.Uint("slot_id", slotID), zap.Int("booked", booked), zap.Error(err))
		return
	}

	// Refresco de las copias en cache, con el mismo contrato de mejor
	// esfuerzo que el resto de la reconciliación.
	if err := uc.cache.Set(ctx, bookedKey(slotID), []byte(strconv.Itoa(booked)), bookedKeyTTL); err != nil {
		uc.log.Warn("reconciliación: cache de contador no actualizado",
			zap.Uint("slot_id", slotID), zap.Error(err))
	}
	if err := uc.cache.Delete(ctx, availabilityKey(slot.Date, slot.AgentID)); err != nil {
		uc.log.Warn("reconciliación: cache de disponibilidad no invalidado",
			zap.String("date", slot.Date), zap.Error(err))
	}
}

func bookedKey(slotID uint) string {
	return fmt.Sprintf("slot:%d:booked", slotID)
}
