package audit

import "go.uber.org/zap"

type Event struct {
	AgentID  string
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink recibe los eventos ya fuera de la ruta de la petición.
type Sink interface {
	Log(agentID string, action string, entity string, entityID *uint, metadata any) error
}

// Dispatcher escribe la bitácora fuera de la ruta de la petición; si la
// cola se llena el evento se descarta, nunca se bloquea una reserva por
// auditoría.
type Dispatcher struct {
	logger Sink
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.AgentID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
