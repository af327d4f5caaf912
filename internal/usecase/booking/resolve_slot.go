package booking

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/VivientaServicios01/visitas-scheduler/internal/clock"
	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
	"github.com/VivientaServicios01/visitas-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ResolveSlotInput struct {
	Date    string
	Time    string
	AgentID string
}

// ======================================================
// USE CASE
// ======================================================

// ResolveSlot busca el horario habilitado de (fecha, agente) cuya hora
// normalizada coincide textualmente con la pedida. Solo coincidencia
// exacta: no hay fallback a la hora más cercana.
type ResolveSlot struct {
	slots domain.SlotStore
	log   *zap.Logger
}

func NewResolveSlot(slots domain.SlotStore, log *zap.Logger) *ResolveSlot {
	return &ResolveSlot{slots: slots, log: log}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ResolveSlot) Execute(
	ctx context.Context,
	in ResolveSlotInput,
) (*models.Slot, error) {

	date := clock.NormalizeDate(in.Date)
	want := clock.Normalize(in.Time)

	agent := in.AgentID
	if agent == "" {
		agent = domain.DefaultAgentID
	}

	candidates, err := uc.slots.ListEnabled(ctx, date, agent)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list_enabled_slots", Err: err}
	}

	matches := make([]models.Slot, 0, 1)
	seen := make(map[string]bool)
	others := make([]string, 0)

	for _, s := range candidates {
		at := clock.Normalize(s.StartTime)
		if at == want {
			matches = append(matches, s)
			continue
		}
		if !seen[at] {
			seen[at] = true
			others = append(others, at)
		}
	}

	if len(matches) == 0 {
		sort.Strings(others)
		return nil, &domain.SlotNotFoundError{
			Date:           date,
			Time:           want,
			AvailableTimes: others,
		}
	}

	// Filas duplicadas con la misma hora normalizada: nos quedamos con la
	// primera que regresó el almacén (id ASC) y dejamos rastro del dato
	// sucio, no lo resolvemos aquí.
	if len(matches) > 1 {
		ids := make([]uint, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		uc.log.Warn("horarios duplicados para la misma hora",
			zap.String("date", date),
			zap.String("time", want),
			zap.Uints("slot_ids", ids),
		)
	}

	slot := matches[0]
	return &slot, nil
}
