package booking

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/VivientaServicios01/visitas-scheduler/internal/cache"
	"github.com/VivientaServicios01/visitas-scheduler/internal/clock"
	domain "github.com/VivientaServicios01/visitas-scheduler/internal/domain/booking"
)

const availabilityTTL = 60 * time.Second

type AvailabilityEntry struct {
	SlotID    uint   `json:"slot_id"`
	Time      string `json:"time"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
}

// ListAvailability es el lector de calendario que vive del contador de
// cortesía: muestra cupo restante por horario sin recontar citas. Lee a
// través del cache y cae al almacén cuando no hay copia fresca.
type ListAvailability struct {
	slots domain.SlotStore
	cache cache.Cache
	log   *zap.Logger
}

func NewListAvailability(slots domain.SlotStore, c cache.Cache, log *zap.Logger) *ListAvailability {
	return &ListAvailability{slots: slots, cache: c, log: log}
}

func (uc *ListAvailability) Execute(
	ctx context.Context,
	date string,
	agentID string,
) ([]AvailabilityEntry, error) {

	date = clock.NormalizeDate(date)
	if agentID == "" {
		agentID = domain.DefaultAgentID
	}

	key := availabilityKey(date, agentID)

	if raw, ok, err := uc.cache.Get(ctx, key); err == nil && ok {
		var cached []AvailabilityEntry
		if json.Unmarshal(raw, &cached) == nil {
			return cached, nil
		}
	} else if err != nil {
		uc.log.Warn("cache de disponibilidad ilegible", zap.String("key", key), zap.Error(err))
	}

	slots, err := uc.slots.ListEnabled(ctx, date, agentID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list_enabled_slots", Err: err}
	}

	entries := make([]AvailabilityEntry, 0, len(slots))
	for _, s := range slots {
		remaining := s.Capacity - s.Booked
		if remaining < 0 {
			remaining = 0
		}
		entries = append(entries, AvailabilityEntry{
			SlotID:    s.ID,
			Time:      clock.Normalize(s.StartTime),
			Capacity:  s.Capacity,
			Booked:    s.Booked,
			Remaining: remaining,
		})
	}

	if raw, err := json.Marshal(entries); err == nil {
		if err := uc.cache.Set(ctx, key, raw, availabilityTTL); err != nil {
			uc.log.Warn("cache de disponibilidad no escrito", zap.String("key", key), zap.Error(err))
		}
	}

	return entries, nil
}

func availabilityKey(date, agentID string) string {
	return "avail:" + date + ":" + agentID
}
