package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/VivientaServicios01/visitas-scheduler/internal/audit"
	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/httperr"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

// ChangeBookingStatus aplica una transición de staff (confirmar, cancelar,
// completar, no-show) y reconcilia el horario afectado: cancelar libera un
// lugar y el contador de cortesía debe reflejarlo.
type ChangeBookingStatus struct {
	appointments domain.AppointmentStore
	reconciler   *ReconcileSlot
	audit        *audit.Dispatcher
	log          *zap.Logger
}

func NewChangeBookingStatus(
	appointments domain.AppointmentStore,
	reconciler *ReconcileSlot,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ChangeBookingStatus {
	return &ChangeBookingStatus{
		appointments: appointments,
		reconciler:   reconciler,
		audit:        audit,
		log:          log,
	}
}

func (uc *ChangeBookingStatus) Execute(
	ctx context.Context,
	folio string,
	next domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.appointments.GetByFolio(ctx, folio)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanTransition(domain.Status(ap.Status), next); err != nil {
		return nil, err
	}

	ap.Status = string(next)

	omit := initialFieldSet(ctx, uc.appointments, uc.log)
	omit, err = writeDegraded("transition_appointment", uc.log, omit, func(o domain.FieldSet) error {
		return uc.appointments.Update(ctx, ap, o)
	})
	if err != nil {
		return nil, err
	}
	clearOmitted(ap, omit)

	uc.reconciler.Execute(ctx, ap.SlotID)

	uc.audit.Dispatch(audit.Event{
		AgentID:  ap.AgentID,
		Action:   "booking_" + string(next),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
