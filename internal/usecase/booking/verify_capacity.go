package booking

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

// VerifyCapacity decide si un horario resuelto aún tiene cupo. El conteo
// en vivo de citas activas manda sobre slot.Booked: el contador cacheado
// puede quedarse viejo en silencio.
//
// Esto es un pre-chequeo de aplicación; la carrera real del último lugar
// se cierra en el almacén (candado de fila al insertar).
type VerifyCapacity struct {
	appointments domain.AppointmentStore
	log          *zap.Logger
}

func NewVerifyCapacity(appointments domain.AppointmentStore, log *zap.Logger) *VerifyCapacity {
	return &VerifyCapacity{appointments: appointments, log: log}
}

// Execute regresa nil si hay cupo y *CapacityExceededError si no.
func (uc *VerifyCapacity) Execute(ctx context.Context, slot *models.Slot) error {

	count, err := uc.appointments.CountActive(ctx, slot.ID)
	if err != nil {
		// Capa 1 de respaldo: contador de cortesía, decisión de baja
		// confianza.
		if slot.Booked >= 0 && slot.Capacity > 0 {
			uc.log.Warn("conteo en vivo falló, decidiendo con contador de cortesía (baja confianza)",
				zap.Uint("slot_id", slot.ID),
				zap.Int("booked", slot.Booked),
				zap.Error(err),
			)
			count = slot.Booked
		} else {
			// Capa 2: ninguna señal sirve. Abrimos en vez de bloquear al
			// usuario; la garantía dura vive en el almacén.
			uc.log.Warn("sin señal de ocupación utilizable, declarando cupo disponible",
				zap.Uint("slot_id", slot.ID),
				zap.Error(err),
			)
			return nil
		}
	}

	if count >= slot.Capacity {
		return &domain.CapacityExceededError{
			Capacity:    slot.Capacity,
			BookedCount: count,
		}
	}

	return nil
}
