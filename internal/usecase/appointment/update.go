package appointment

import (
	"context"

	"github.com/medagenda/scheduler-api/internal/audit"
	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
	"github.com/medagenda/scheduler-api/internal/timeutil"
)

// UpdateAppointmentInput carries the fields being changed; nil pointers
// leave the current value untouched.
type UpdateAppointmentInput struct {
	AppointmentID uint

	Date      *string
	StartTime *string
	EndTime   *string

	Title       *string
	Description *string
}

type UpdateAppointment struct {
	appointments scheduling.AppointmentStore
	audit        audit.Sink
}

func NewUpdateAppointment(
	appointments scheduling.AppointmentStore,
	auditSink audit.Sink,
) *UpdateAppointment {
	return &UpdateAppointment{
		appointments: appointments,
		audit:        auditSink,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
	actorID uint,
	actorRole string,
) (*models.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.NotFound("Appointment not found")
	}

	if err := scheduling.Authorize(scheduling.ActionModify, ap, actorID, actorRole); err != nil {
		return nil, err
	}

	if scheduling.Status(ap.Status).Terminal() {
		return nil, httperr.Validation("Appointment is already " + ap.Status)
	}

	date, start, end := ap.Date, ap.StartTime, ap.EndTime
	if in.Date != nil {
		date = *in.Date
	}
	if in.StartTime != nil {
		start = *in.StartTime
	}
	if in.EndTime != nil {
		end = *in.EndTime
	}

	slotChanged := date != ap.Date || start != ap.StartTime || end != ap.EndTime
	if slotChanged {
		if err := scheduling.ValidateTiming(date, start, end, timeutil.Today()); err != nil {
			return nil, err
		}

		sameDay, err := uc.appointments.ListForProfessionalOnDate(ctx, ap.ProfessionalID, date)
		if err != nil {
			return nil, err
		}

		// the appointment's own row must not collide with itself
		if overlaps := scheduling.FindOverlaps(ap.ProfessionalID, date, start, end, sameDay, ap.ID); len(overlaps) > 0 {
			return nil, httperr.Validation("Professional is not available at this time")
		}

		ap.Date, ap.StartTime, ap.EndTime = date, start, end
	}

	if in.Title != nil {
		ap.Title = *in.Title
	}
	if in.Description != nil {
		ap.Description = *in.Description
	}

	if err := uc.appointments.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:      "appointment_updated",
		PerformedBy: &actorID,
		Details: map[string]any{
			"appointment_id": ap.ID,
			"slot_changed":   slotChanged,
		},
	})

	return ap, nil
}
