package booking

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/VivientaServicios01/visitas-scheduler/internal/audit"
	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/httperr"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateBookingInput struct {
	Folio   string
	Request *domain.Request
}

// ======================================================
// USE CASE
// ======================================================

// UpdateBooking reprograma una cita existente. Comparte con el alta el
// upsert de cliente y la escritura degradada; además, si el horario
// cambió, reconcilia tanto el horario anterior como el nuevo.
type UpdateBooking struct {
	resolver   *ResolveSlot
	verifier   *VerifyCapacity
	reconciler *ReconcileSlot

	appointments domain.AppointmentStore
	clients      domain.ClientStore
	properties   domain.PropertyResolver

	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewUpdateBooking(
	resolver *ResolveSlot,
	verifier *VerifyCapacity,
	reconciler *ReconcileSlot,
	appointments domain.AppointmentStore,
	clients domain.ClientStore,
	properties domain.PropertyResolver,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateBooking {
	return &UpdateBooking{
		resolver:     resolver,
		verifier:     verifier,
		reconciler:   reconciler,
		appointments: appointments,
		clients:      clients,
		properties:   properties,
		audit:        audit,
		log:          log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*models.Appointment, error) {

	req := in.Request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ap, err := uc.appointments.GetByFolio(ctx, in.Folio)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// --------------------------------------------------
	// Horario destino
	// --------------------------------------------------
	slot, err := uc.resolver.Execute(ctx, ResolveSlotInput{
		Date:    req.Date,
		Time:    req.Time,
		AgentID: req.Agent(),
	})
	if err != nil {
		return nil, err
	}

	previousSlotID := ap.SlotID
	slotChanged := slot.ID != previousSlotID

	// El cupo solo se re-verifica al mover la cita: quedarse en el mismo
	// horario no consume un lugar nuevo.
	if slotChanged {
		if err := uc.verifier.Execute(ctx, slot); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Cliente / propiedad, mismo contrato que el alta
	// --------------------------------------------------
	if id, err := uc.clients.UpsertByEmail(ctx, req.NormalizedEmail(), req.Name, req.Phone); err != nil {
		uc.log.Warn("alta de cliente falló al editar, se conserva el vínculo previo",
			zap.String("folio", in.Folio), zap.Error(err))
	} else {
		ap.ClientID = &id
	}

	if req.PropertyRef != "" {
		if id, err := uc.properties.Resolve(ctx, req.PropertyRef); err != nil {
			uc.log.Warn("referencia de propiedad irresoluble al editar",
				zap.String("property_ref", req.PropertyRef), zap.Error(err))
			ap.PropertyID = nil
		} else {
			ap.PropertyID = id
		}
	} else {
		ap.PropertyID = nil
	}

	// --------------------------------------------------
	// Campos de la cita
	// --------------------------------------------------
	detail, _ := json.Marshal(req.DetailDocument())

	ap.SlotID = slot.ID
	ap.AgentID = req.Agent()
	ap.ClientName = req.Name
	ap.ClientEmail = req.NormalizedEmail()
	ap.ClientPhone = req.Phone
	ap.OperationType = string(req.Operation.Type)
	ap.BudgetRange = req.Operation.Budget
	ap.Detail = detail
	ap.Notes = req.Notes

	omit := initialFieldSet(ctx, uc.appointments, uc.log)
	omit, err = writeDegraded("update_appointment", uc.log, omit, func(o domain.FieldSet) error {
		return uc.appointments.Update(ctx, ap, o)
	})
	if err != nil {
		return nil, err
	}
	clearOmitted(ap, omit)

	// --------------------------------------------------
	// Reconciliación: ambos horarios si la cita se movió
	// --------------------------------------------------
	uc.reconciler.Execute(ctx, slot.ID)
	if slotChanged {
		uc.reconciler.Execute(ctx, previousSlotID)
	}

	uc.audit.Dispatch(audit.Event{
		AgentID:  ap.AgentID,
		Action:   "booking_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"slot_changed": slotChanged},
	})

	return ap, nil
}
