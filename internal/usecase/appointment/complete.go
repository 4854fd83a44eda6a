package appointment

import (
	"context"
	"time"

	"github.com/medagenda/scheduler-api/internal/audit"
	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
	"github.com/medagenda/scheduler-api/internal/timeutil"
)

// CompleteAppointment is invoked by the maintenance worker, never by a
// user request: completed is a system-driven terminal state.
type CompleteAppointment struct {
	appointments scheduling.AppointmentStore
	audit        audit.Sink
}

func NewCompleteAppointment(
	appointments scheduling.AppointmentStore,
	auditSink audit.Sink,
) *CompleteAppointment {
	return &CompleteAppointment{
		appointments: appointments,
		audit:        auditSink,
	}
}

func (uc *CompleteAppointment) Execute(
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

	if err := scheduling.CanComplete(scheduling.Status(ap.Status)); err != nil {
		return nil, err
	}
	if ap.Date >= timeutil.Today() {
		return nil, httperr.Validation("Appointment date has not passed yet")
	}

	now := time.Now()
	ap.Status = string(scheduling.StatusCompleted)
	ap.CompletedAt = &now

	if err := uc.appointments.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:      "appointment_completed",
		PerformedBy: nil,
		Details:     map[string]any{"appointment_id": ap.ID},
	})

	return ap, nil
}
