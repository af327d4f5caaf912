package booking

import "fmt"

// Taxonomía de errores del motor de reservas. Validation, NotFound y
// CapacityExceeded son terminales y visibles para el cliente; Persistence
// solo aparece cuando se agotaron los reintentos degradados del escritor.
// Las fallas de alta de cliente y de reconciliación nunca llegan aquí:
// se registran y la reserva sigue.

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// SlotNotFoundError lleva las horas normalizadas que sí existen ese día
// para que el usuario corrija su petición.
type SlotNotFoundError struct {
	Date           string
	Time           string
	AvailableTimes []string
}

func (e *SlotNotFoundError) Error() string {
	return fmt.Sprintf("no slot at %s %s", e.Date, e.Time)
}

type CapacityExceededError struct {
	Capacity    int
	BookedCount int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("slot full: %d/%d", e.BookedCount, e.Capacity)
}

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// UnsupportedColumnError la regresa el almacén cuando el esquema vigente
// no tiene una columna opcional; dispara el reintento degradado.
type UnsupportedColumnError struct {
	Column OptionalField
}

func (e *UnsupportedColumnError) Error() string {
	return fmt.Sprintf("unsupported column: %s", e.Column)
}
