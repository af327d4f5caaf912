package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

// Escritura con reintentos degradados, compartida por alta y edición de
// citas. Las columnas que el descriptor de esquema ya marca como ausentes
// se omiten desde el primer intento; si aun así el almacén rechaza una
// columna opcional, se suelta la siguiente del orden de degradación
// (property_id y luego client_id), con tope de dos reintentos.

const maxDegradationRetries = 2

func initialFieldSet(
	ctx context.Context,
	store domain.AppointmentStore,
	log *zap.Logger,
) domain.FieldSet {

	omit := domain.FieldSet{}

	caps, err := store.Capabilities(ctx)
	if err != nil {
		// Sin descriptor escribimos completo y dejamos que la degradación
		// haga su trabajo.
		log.Warn("no se pudo leer el descriptor de esquema", zap.Error(err))
		return omit
	}

	for _, f := range domain.DegradationOrder {
		if !caps.Supports(f) {
			omit.Omit(f)
		}
	}

	return omit
}

func writeDegraded(
	op string,
	log *zap.Logger,
	omit domain.FieldSet,
	write func(domain.FieldSet) error,
) (domain.FieldSet, error) {

	for attempt := 0; ; attempt++ {
		err := write(omit)
		if err == nil {
			return omit, nil
		}

		var uce *domain.UnsupportedColumnError
		if attempt >= maxDegradationRetries || !errors.As(err, &uce) {
			return omit, &domain.PersistenceError{Op: op, Err: err}
		}

		if !dropNext(omit, uce.Column) {
			// Ya no queda campo opcional que soltar.
			return omit, &domain.PersistenceError{Op: op, Err: err}
		}

		log.Warn("columna opcional rechazada, reintentando degradado",
			zap.String("op", op),
			zap.String("column", string(uce.Column)),
			zap.Strings("omitted", omit.Columns()),
		)
	}
}

// dropNext omite la columna señalada si es degradable y seguía incluida;
// si no, la siguiente del orden. Regresa false cuando no hay nada que
// soltar.
func dropNext(omit domain.FieldSet, column domain.OptionalField) bool {
	for _, f := range domain.DegradationOrder {
		if f == column && !omit.Omitted(f) {
			omit.Omit(f)
			return true
		}
	}
	for _, f := range domain.DegradationOrder {
		if !omit.Omitted(f) {
			omit.Omit(f)
			return true
		}
	}
	return false
}

// clearOmitted deja el registro en memoria igual que el persistido: los
// vínculos que no se guardaron no deben regresar al cliente.
func clearOmitted(ap *models.Appointment, omit domain.FieldSet) {
	if omit.Omitted(domain.FieldPropertyID) {
		ap.PropertyID = nil
	}
	if omit.Omitted(domain.FieldClientID) {
		ap.ClientID = nil
	}
}
