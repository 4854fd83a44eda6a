package scheduling

import (
	"context"

	"github.com/medagenda/scheduler-api/internal/models"
)

// Collaborator contracts consumed by the use cases. Implementations live in
// internal/infra/repository; use cases receive them through constructors.
// Find* methods return (nil, nil) when the record does not exist; a non-nil
// error always means the lookup itself failed.

type UserDirectory interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type AppointmentStore interface {
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindByProfessionalID(ctx context.Context, professionalID uint) ([]models.Appointment, error)
	FindByClientID(ctx context.Context, clientID uint) ([]models.Appointment, error)

	// ListForProfessionalOnDate returns every appointment (any status) for
	// one professional on one calendar date; the pure validator does the
	// filtering.
	ListForProfessionalOnDate(ctx context.Context, professionalID uint, date string) ([]models.Appointment, error)

	Create(ctx context.Context, ap *models.Appointment) error
	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, id uint) error

	// Maintenance reads for the background worker.
	ListConfirmedBefore(ctx context.Context, date string) ([]models.Appointment, error)
	ListPending(ctx context.Context) ([]models.Appointment, error)
}

type RuleStore interface {
	FindByName(ctx context.Context, name string) (*models.Rule, error)
	FindByID(ctx context.Context, id uint) (*models.Rule, error)
	FindAll(ctx context.Context) ([]models.Rule, error)
	Create(ctx context.Context, rule *models.Rule) error
	Update(ctx context.Context, rule *models.Rule) error
	Delete(ctx context.Context, id uint) error
}

type AvailabilityStore interface {
	ListForProfessional(ctx context.Context, professionalID uint) ([]models.Availability, error)
	ReplaceForProfessional(ctx context.Context, professionalID uint, windows []models.Availability) error
}

type LinkStore interface {
	Find(ctx context.Context, clientID, professionalID uint) (*models.ClientProfessionalLink, error)
	FindByID(ctx context.Context, id uint) (*models.ClientProfessionalLink, error)
	ListForProfessional(ctx context.Context, professionalID uint) ([]models.ClientProfessionalLink, error)
	ListForClient(ctx context.Context, clientID uint) ([]models.ClientProfessionalLink, error)
	Create(ctx context.Context, link *models.ClientProfessionalLink) error
	Update(ctx context.Context, link *models.ClientProfessionalLink) error
}

// AppointmentNotice is the payload handed to the notification dispatcher.
type AppointmentNotice struct {
	ProfessionalName string `json:"professional_name"`
	ClientName       string `json:"client_name"`
	Title            string `json:"title"`
	Date             string `json:"date"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	Status           string `json:"status"`
}

// Notifier delivery is best-effort: use cases log failures and move on,
// a failed notification never fails the appointment mutation.
type Notifier interface {
	SendAppointmentNotification(email string, notice AppointmentNotice) error
}
