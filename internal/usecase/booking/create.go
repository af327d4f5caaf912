package booking

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VivientaServicios01/visitas-scheduler/internal/audit"
	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	resolver   *ResolveSlot
	verifier   *VerifyCapacity
	reconciler *ReconcileSlot

	appointments domain.AppointmentStore
	clients      domain.ClientStore
	properties   domain.PropertyResolver

	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCreateBooking(
	resolver *ResolveSlot,
	verifier *VerifyCapacity,
	reconciler *ReconcileSlot,
	appointments domain.AppointmentStore,
	clients domain.ClientStore,
	properties domain.PropertyResolver,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateBooking {
	return &CreateBooking{
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

func (uc *CreateBooking) Execute(
	ctx context.Context,
	req *domain.Request,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Validación (antes de tocar el almacén)
	// --------------------------------------------------
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Resolución del horario
	// --------------------------------------------------
	slot, err := uc.resolver.Execute(ctx, ResolveSlotInput{
		Date:    req.Date,
		Time:    req.Time,
		AgentID: req.Agent(),
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Cupo
	// --------------------------------------------------
	if err := uc.verifier.Execute(ctx, slot); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Cliente (mejor esfuerzo: la reserva sigue sin vínculo)
	// --------------------------------------------------
	clientID := uc.upsertClient(ctx, req)

	// --------------------------------------------------
	// 5. Propiedad (irresoluble ⇒ sin vínculo, nunca error)
	// --------------------------------------------------
	propertyID := uc.resolveProperty(ctx, req.PropertyRef)

	// --------------------------------------------------
	// 6. Registro de la cita
	// --------------------------------------------------
	detail, _ := json.Marshal(req.DetailDocument())

	ap := &models.Appointment{
		Folio:   uuid.NewString(),
		SlotID:  slot.ID,
		AgentID: req.Agent(),

		ClientID:   clientID,
		PropertyID: propertyID,

		ClientName:  req.Name,
		ClientEmail: req.NormalizedEmail(),
		ClientPhone: req.Phone,

		OperationType: string(req.Operation.Type),
		BudgetRange:   req.Operation.Budget,
		Detail:        detail,

		Status: string(domain.InitialStatus()),
		Notes:  req.Notes,
	}

	omit := initialFieldSet(ctx, uc.appointments, uc.log)
	omit, err = writeDegraded("insert_appointment", uc.log, omit, func(o domain.FieldSet) error {
		return uc.appointments.Insert(ctx, ap, o)
	})
	if err != nil {
		return nil, err
	}
	clearOmitted(ap, omit)

	// --------------------------------------------------
	// 7. Reconciliación + auditoría (nunca revierten la cita)
	// --------------------------------------------------
	uc.reconciler.Execute(ctx, slot.ID)

	uc.audit.Dispatch(audit.Event{
		AgentID:  ap.AgentID,
		Action:   "booking_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *CreateBooking) upsertClient(ctx context.Context, req *domain.Request) *uint {
	id, err := uc.clients.UpsertByEmail(ctx, req.NormalizedEmail(), req.Name, req.Phone)
	if err != nil {
		uc.log.Warn("alta de cliente falló, la reserva sigue sin client_id",
			zap.String("email", req.NormalizedEmail()),
			zap.Error(err),
		)
		return nil
	}
	return &id
}

func (uc *CreateBooking) resolveProperty(ctx context.Context, ref string) *uint {
	if ref == "" {
		return nil
	}
	id, err := uc.properties.Resolve(ctx, ref)
	if err != nil {
		uc.log.Warn("referencia de propiedad irresoluble, cita sin vínculo",
			zap.String("property_ref", ref),
			zap.Error(err),
		)
		return nil
	}
	return id
}
