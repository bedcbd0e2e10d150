package activity

import (
	"context"

	"github.com/vortexia/barbershop-manager/internal/logger"
)

type Event struct {
	Type        string
	Action      string
	Description string
	Section     string
}

// Dispatcher desacopla o registro de atividades do caminho da request:
// fila com buffer e um worker próprio, nunca bloqueia a API.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(l *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: l,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Record(
			context.Background(),
			ev.Type,
			ev.Action,
			ev.Description,
			ev.Section,
		); err != nil {
			logger.Log.Error().Err(err).Msg("activity record failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos a atividade (nunca quebrar API)
		logger.Log.Warn().Msg("activity queue full, dropping event")
	}
}
