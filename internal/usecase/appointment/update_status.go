package appointment

import (
	"context"
	"time"

	"github.com/medagenda/scheduler-api/internal/audit"
	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
)

type UpdateStatus struct {
	users        scheduling.UserDirectory
	appointments scheduling.AppointmentStore
	audit        audit.Sink
	notifier     scheduling.Notifier
}

func NewUpdateStatus(
	users scheduling.UserDirectory,
	appointments scheduling.AppointmentStore,
	auditSink audit.Sink,
	notifier scheduling.Notifier,
) *UpdateStatus {
	return &UpdateStatus{
		users:        users,
		appointments: appointments,
		audit:        auditSink,
		notifier:     notifier,
	}
}

// Execute moves an appointment to newStatus on behalf of the acting user,
// checking the authorization matrix and the status machine. Confirming an
// already confirmed appointment is a no-op by design; nothing else is
// re-validated on confirm.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	newStatus string,
	actorID uint,
	actorRole string,
) (*models.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.NotFound("Appointment not found")
	}

	target := scheduling.Status(newStatus)
	action, err := scheduling.ActionForStatus(target)
	if err != nil {
		return nil, err
	}

	if err := scheduling.Authorize(action, ap, actorID, actorRole); err != nil {
		return nil, err
	}

	now := time.Now()
	switch target {
	case scheduling.StatusConfirmed:
		if err := scheduling.CanConfirm(scheduling.Status(ap.Status)); err != nil {
			return nil, err
		}
		ap.Status = string(scheduling.StatusConfirmed)
	case scheduling.StatusCancelled:
		if err := scheduling.CanCancel(scheduling.Status(ap.Status)); err != nil {
			return nil, err
		}
		ap.Status = string(scheduling.StatusCancelled)
		ap.CancelledAt = &now
	}

	if err := uc.appointments.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:      "appointment_" + string(target),
		PerformedBy: &actorID,
		Details: map[string]any{
			"appointment_id": ap.ID,
			"status":         ap.Status,
		},
	})

	uc.notifyParties(ctx, ap)

	return ap, nil
}

func (uc *UpdateStatus) notifyParties(ctx context.Context, ap *models.Appointment) {
	if uc.notifier == nil {
		return
	}
	client, err := uc.users.FindByID(ctx, ap.ClientID)
	if err != nil || client == nil {
		return
	}
	professional, err := uc.users.FindByID(ctx, ap.ProfessionalID)
	if err != nil || professional == nil {
		return
	}
	notifyBoth(uc.notifier, ap, client, professional)
}
