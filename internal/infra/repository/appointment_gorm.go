package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

// SQLSTATE de Postgres para columna inexistente.
const pgUndefinedColumn = "42703"

var activeStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusConfirmed),
}

type AppointmentGormStore struct {
	db *gorm.DB

	capsOnce sync.Once
	caps     domain.Capabilities
}

func NewAppointmentGormStore(db *gorm.DB) *AppointmentGormStore {
	return &AppointmentGormStore{db: db}
}

// --------------------------------------------------
// Capabilities
// --------------------------------------------------

// Capabilities sondea el esquema una sola vez por proceso: el escritor
// decide qué columnas opcionales omitir con este descriptor, no leyendo
// mensajes de error.
func (s *AppointmentGormStore) Capabilities(ctx context.Context) (domain.Capabilities, error) {
	s.capsOnce.Do(func() {
		m := s.db.WithContext(ctx).Migrator()
		s.caps = domain.Capabilities{
			PropertyLink: m.HasColumn(&models.Appointment{}, "property_id"),
			ClientLink:   m.HasColumn(&models.Appointment{}, "client_id"),
		}
	})
	return s.caps, nil
}

// --------------------------------------------------
// Insert / Update
// --------------------------------------------------

// Insert guarda la cita dentro de una transacción que toma candado de
// fila sobre el horario y recuenta: dos peticiones por el último lugar se
// serializan aquí, no en el pre-chequeo de aplicación.
func (s *AppointmentGormStore) Insert(
	ctx context.Context,
	ap *models.Appointment,
	omit domain.FieldSet,
) error {

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var slot models.Slot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, ap.SlotID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Appointment{}).
			Where("slot_id = ? AND status IN ?", ap.SlotID, activeStatuses).
			Count(&count).Error; err != nil {
			return err
		}

		if int(count) >= slot.Capacity {
			return &domain.CapacityExceededError{
				Capacity:    slot.Capacity,
				BookedCount: int(count),
			}
		}

		return tx.Omit(omitColumns(omit)...).Create(ap).Error
	})

	return s.wrapColumnError(err, omit)
}

func (s *AppointmentGormStore) Update(
	ctx context.Context,
	ap *models.Appointment,
	omit domain.FieldSet,
) error {

	err := s.db.WithContext(ctx).
		Omit(omitColumns(omit)...).
		Save(ap).Error

	return s.wrapColumnError(err, omit)
}

// omitColumns junta las columnas degradadas con las asociaciones: el
// almacén de citas nunca crea horarios, clientes ni propiedades de paso.
func omitColumns(omit domain.FieldSet) []string {
	cols := append(omit.Columns(), clause.Associations)
	return cols
}

// wrapColumnError convierte el SQLSTATE 42703 en el error tipado que
// dispara la degradación. La columna reportada es la primera opcional que
// seguía incluida, en el orden de degradación.
func (s *AppointmentGormStore) wrapColumnError(err error, omit domain.FieldSet) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUndefinedColumn {
		return err
	}

	for _, f := range domain.DegradationOrder {
		if !omit.Omitted(f) {
			return &domain.UnsupportedColumnError{Column: f}
		}
	}

	return err
}

// --------------------------------------------------
// Lecturas
// --------------------------------------------------

func (s *AppointmentGormStore) GetByFolio(
	ctx context.Context,
	folio string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := s.db.WithContext(ctx).
		Preload("Slot").
		Preload("Client").
		Preload("Property").
		Where("folio = ?", folio).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (s *AppointmentGormStore) ListByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := s.db.WithContext(ctx).
		Joins("Slot").
		Preload("Client").
		Preload("Property").
		Where(`"Slot"."date" = ?`, date).
		Order(`"Slot"."start_time" ASC, "appointments"."id" ASC`).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// CountActive es la señal autoritativa de ocupación: citas pending o
// confirmed del horario.
func (s *AppointmentGormStore) CountActive(ctx context.Context, slotID uint) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("slot_id = ? AND status IN ?", slotID, activeStatuses).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// Compile-time check
var _ domain.AppointmentStore = (*AppointmentGormStore)(nil)
