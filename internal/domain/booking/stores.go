package booking

import (
	"context"

	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

// Interfaces angostas hacia el almacén. El motor nunca toca gorm directo:
// recibe estas interfaces para que las pruebas inyecten dobles por caso.

type SlotStore interface {
	// ListEnabled regresa los horarios habilitados de (fecha, agente),
	// ordenados por id ascendente.
	ListEnabled(ctx context.Context, date string, agentID string) ([]models.Slot, error)

	Get(ctx context.Context, id uint) (*models.Slot, error)

	// SetBooked persiste el contador de cortesía.
	SetBooked(ctx context.Context, id uint, booked int) error
}

type AppointmentStore interface {
	// Insert guarda la cita omitiendo las columnas marcadas en omit.
	// Regresa *UnsupportedColumnError si el esquema rechaza una columna
	// opcional que no venía omitida.
	Insert(ctx context.Context, ap *models.Appointment, omit FieldSet) error

	Update(ctx context.Context, ap *models.Appointment, omit FieldSet) error

	GetByFolio(ctx context.Context, folio string) (*models.Appointment, error)

	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)

	// CountActive cuenta citas pending|confirmed del horario. Es la señal
	// autoritativa de ocupación.
	CountActive(ctx context.Context, slotID uint) (int, error)

	// Capabilities describe las columnas opcionales del esquema vigente.
	Capabilities(ctx context.Context) (Capabilities, error)
}

type ClientStore interface {
	// UpsertByEmail crea o actualiza al cliente con llave de correo
	// normalizado, fusionando nombre y teléfono.
	UpsertByEmail(ctx context.Context, email, name, phone string) (uint, error)
}

type PropertyResolver interface {
	// Resolve convierte una referencia externa en id interno. Una
	// referencia irresoluble regresa (nil, nil); nunca es un error de la
	// reserva.
	Resolve(ctx context.Context, externalRef string) (*uint, error)
}
