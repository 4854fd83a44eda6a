package appointment

import (
	"context"
	"log"

	"github.com/medagenda/scheduler-api/internal/audit"
	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
	"github.com/medagenda/scheduler-api/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID       uint
	ProfessionalID uint

	Date      string
	StartTime string
	EndTime   string

	Title       string
	Description string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	users        scheduling.UserDirectory
	appointments scheduling.AppointmentStore
	rules        scheduling.RuleStore
	audit        audit.Sink
	notifier     scheduling.Notifier
}

func NewCreateAppointment(
	users scheduling.UserDirectory,
	appointments scheduling.AppointmentStore,
	rules scheduling.RuleStore,
	auditSink audit.Sink,
	notifier scheduling.Notifier,
) *CreateAppointment {
	return &CreateAppointment{
		users:        users,
		appointments: appointments,
		rules:        rules,
		audit:        auditSink,
		notifier:     notifier,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	client, err := uc.users.FindByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || !client.IsActive {
		return nil, httperr.NotFound("Client not found")
	}
	if client.Role != models.RoleClient {
		return nil, httperr.Forbidden("Only clients can book appointments")
	}

	professional, err := uc.users.FindByID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, httperr.NotFound("Professional not found")
	}
	if !professional.IsProfessional() {
		return nil, httperr.Validation("User is not a professional")
	}
	if !professional.IsActive {
		return nil, httperr.Validation("Professional is not active")
	}

	if err := scheduling.ValidateTiming(in.Date, in.StartTime, in.EndTime, timeutil.Today()); err != nil {
		return nil, err
	}

	if err := uc.checkDurationRule(ctx, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	sameDay, err := uc.appointments.ListForProfessionalOnDate(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		return nil, err
	}

	if err := uc.checkDailyCap(ctx, in.ProfessionalID, in.Date, sameDay); err != nil {
		return nil, err
	}

	if overlaps := scheduling.FindOverlaps(in.ProfessionalID, in.Date, in.StartTime, in.EndTime, sameDay, 0); len(overlaps) > 0 {
		return nil, httperr.Validation("Professional is not available at this time")
	}

	ap := &models.Appointment{
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Title:          in.Title,
		Description:    in.Description,
		Status:         string(scheduling.InitialStatus()),
	}

	if err := uc.appointments.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:      "appointment_created",
		PerformedBy: &in.ClientID,
		Details: map[string]any{
			"appointment_id":  ap.ID,
			"professional_id": ap.ProfessionalID,
			"date":            ap.Date,
		},
	})

	notifyBoth(uc.notifier, ap, client, professional)

	return ap, nil
}

func (uc *CreateAppointment) checkDurationRule(ctx context.Context, start, end string) error {
	rule, err := uc.rules.FindByName(ctx, scheduling.RuleMinAppointmentDuration)
	if err != nil {
		return err
	}
	if rule == nil {
		return nil
	}
	return scheduling.ValidateDuration(start, end, scheduling.MinDurationMinutes(rule.Value))
}

func (uc *CreateAppointment) checkDailyCap(ctx context.Context, professionalID uint, date string, sameDay []models.Appointment) error {
	rule, err := uc.rules.FindByName(ctx, scheduling.RuleMaxAppointmentsPerDay)
	if err != nil {
		return err
	}
	if rule == nil {
		// no rule configured: open policy
		return nil
	}
	return scheduling.ValidateDailyCap(professionalID, date, sameDay, scheduling.MaxPerDay(rule.Value))
}

// notifyBoth delivers best-effort notifications to both parties. Failures
// are logged and never propagate into the appointment mutation.
func notifyBoth(notifier scheduling.Notifier, ap *models.Appointment, client, professional *models.User) {
	if notifier == nil {
		return
	}

	notice := scheduling.AppointmentNotice{
		ProfessionalName: professional.Name,
		ClientName:       client.Name,
		Title:            ap.Title,
		Date:             ap.Date,
		StartTime:        ap.StartTime,
		EndTime:          ap.EndTime,
		Status:           ap.Status,
	}

	for _, email := range []string{client.Email, professional.Email} {
		if email == "" {
			continue
		}
		if err := notifier.SendAppointmentNotification(email, notice); err != nil {
			log.Println("notification error:", err)
		}
	}
}
