package audit

import "log"

type Event struct {
	Action      string
	PerformedBy *uint
	Details     any
}

// Sink is what the use cases depend on; Dispatcher is the production
// implementation.
type Sink interface {
	Dispatch(ev Event)
}

// Dispatcher moves audit writes off the request path. The queue is bounded
// and drop-on-full: audit must never break the API.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev.Action, ev.PerformedBy, ev.Details); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
