package appointment

import (
	"context"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
	"github.com/medagenda/scheduler-api/internal/timeutil"
)

type ListAppointments struct {
	appointments scheduling.AppointmentStore
}

func NewListAppointments(appointments scheduling.AppointmentStore) *ListAppointments {
	return &ListAppointments{appointments: appointments}
}

// ForUser lists the appointments the acting user is a party to.
func (uc *ListAppointments) ForUser(ctx context.Context, userID uint, role string) ([]models.Appointment, error) {
	switch role {
	case models.RoleClient:
		return uc.appointments.FindByClientID(ctx, userID)
	case models.RoleProfessional:
		return uc.appointments.FindByProfessionalID(ctx, userID)
	default:
		return nil, httperr.Forbidden("Listing requires a client or professional account")
	}
}

// ForProfessionalOnDate lists one professional's day.
func (uc *ListAppointments) ForProfessionalOnDate(ctx context.Context, professionalID uint, date string) ([]models.Appointment, error) {
	if !timeutil.IsDate(date) {
		return nil, httperr.Validation("Invalid date format, expected YYYY-MM-DD")
	}
	return uc.appointments.ListForProfessionalOnDate(ctx, professionalID, date)
}
