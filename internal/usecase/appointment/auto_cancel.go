package appointment

import (
	"context"
	"time"

	"github.com/medagenda/scheduler-api/internal/audit"
	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
)

// AutoCancel is the system-driven cancellation used by the maintenance
// worker for pending appointments not confirmed in time. It bypasses the
// ownership matrix (no user is acting) but still honors the status machine.
type AutoCancel struct {
	appointments scheduling.AppointmentStore
	audit        audit.Sink
}

func NewAutoCancel(
	appointments scheduling.AppointmentStore,
	auditSink audit.Sink,
) *AutoCancel {
	return &AutoCancel{
		appointments: appointments,
		audit:        auditSink,
	}
}

func (uc *AutoCancel) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.NotFound("Appointment not found")
	}

	if scheduling.Status(ap.Status) != scheduling.StatusPending {
		return nil, httperr.Validation("Only pending appointments can be auto-cancelled")
	}

	now := time.Now()
	ap.Status = string(scheduling.StatusCancelled)
	ap.CancelledAt = &now

	if err := uc.appointments.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:      "appointment_auto_cancelled",
		PerformedBy: nil,
		Details:     map[string]any{"appointment_id": ap.ID},
	})

	return ap, nil
}
