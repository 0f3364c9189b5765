package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Action names recorded in the audit trail.
const (
	ActionAppointmentCreated   = "appointment_created"
	ActionAppointmentCancelled = "appointment_cancelled"
	ActionDateBlocked          = "date_blocked"
	ActionDateUnblocked        = "date_unblocked"
	ActionOverrideSaved        = "schedule_override_saved"
	ActionOverrideDeleted      = "schedule_override_deleted"
	ActionAdminLogin           = "admin_login"
	ActionAdminLogout          = "admin_logout"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink persists one event.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink   Sink
	log    *zap.Logger
	queue  chan Event
	onDrop func()

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}

	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

// OnDrop registers a hook called for every dropped event. Set it before the
// first Dispatch.
func (d *Dispatcher) OnDrop(fn func()) *Dispatcher {
	d.onDrop = fn
	return d
}

// Dispatch never blocks the caller; events are dropped when the queue is full.
// A nil dispatcher is a no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
		if d.onDrop != nil {
			d.onDrop()
		}
	}
}

// Close drains pending events and stops the worker.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
