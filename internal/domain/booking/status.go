package booking

import "github.com/VivientaServicios01/visitas-scheduler/internal/httperr"

// ===============================
// Estado de la cita
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no-show"
)

// El motor de reservas siempre crea en pending; el resto de transiciones
// son acción del staff.
func InitialStatus() Status {
	return StatusPending
}

// IsActive indica si la cita cuenta contra el cupo del horario.
func IsActive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transiciones
// ===============================

// CanTransition valida pending → {confirmed, cancelled} y
// confirmed → {completed, no-show, cancelled}.
func CanTransition(current, next Status) error {
	switch next {
	case StatusConfirmed:
		if current == StatusPending {
			return nil
		}
	case StatusCancelled:
		if current == StatusPending || current == StatusConfirmed {
			return nil
		}
	case StatusCompleted, StatusNoShow:
		if current == StatusConfirmed {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}
