package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/medagenda/scheduler-api/internal/audit"
	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/models"
	"github.com/medagenda/scheduler-api/internal/timeutil"
)

func tomorrow() string {
	return timeutil.FormatDate(time.Now().AddDate(0, 0, 1))
}

func yesterday() string {
	return timeutil.FormatDate(time.Now().AddDate(0, 0, -1))
}

func dayAfterTomorrow() string {
	return timeutil.FormatDate(time.Now().AddDate(0, 0, 2))
}

// --------------------------------------------------
// in-memory fakes
// --------------------------------------------------

type memUsers struct {
	byID map[uint]*models.User
}

func newMemUsers(users ...*models.User) *memUsers {
	m := &memUsers{byID: map[uint]*models.User{}}
	for _, u := range users {
		m.byID[u.ID] = u
	}
	return m
}

func (m *memUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	return m.byID[id], nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type memAppointments struct {
	nextID uint
	rows   map[uint]*models.Appointment
}

func newMemAppointments() *memAppointments {
	return &memAppointments{nextID: 1, rows: map[uint]*models.Appointment{}}
}

func (m *memAppointments) FindByID(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := m.rows[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, nil
}

func (m *memAppointments) FindByProfessionalID(_ context.Context, professionalID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.rows {
		if ap.ProfessionalID == professionalID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (m *memAppointments) FindByClientID(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.rows {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (m *memAppointments) ListForProfessionalOnDate(_ context.Context, professionalID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.rows {
		if ap.ProfessionalID == professionalID && ap.Date == date {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (m *memAppointments) Create(_ context.Context, ap *models.Appointment) error {
	ap.ID = m.nextID
	m.nextID++
	cp := *ap
	m.rows[ap.ID] = &cp
	return nil
}

func (m *memAppointments) Update(_ context.Context, ap *models.Appointment) error {
	if _, ok := m.rows[ap.ID]; !ok {
		return errors.New("not found")
	}
	cp := *ap
	m.rows[ap.ID] = &cp
	return nil
}

func (m *memAppointments) Delete(_ context.Context, id uint) error {
	delete(m.rows, id)
	return nil
}

func (m *memAppointments) ListConfirmedBefore(_ context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.rows {
		if ap.Status == string(scheduling.StatusConfirmed) && ap.Date < date {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (m *memAppointments) ListPending(_ context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.rows {
		if ap.Status == string(scheduling.StatusPending) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

type memRules struct {
	byName map[string]*models.Rule
}

func newMemRules(rules ...*models.Rule) *memRules {
	m := &memRules{byName: map[string]*models.Rule{}}
	for _, r := range rules {
		m.byName[r.Name] = r
	}
	return m
}

func (m *memRules) FindByName(_ context.Context, name string) (*models.Rule, error) {
	return m.byName[name], nil
}

func (m *memRules) FindByID(_ context.Context, id uint) (*models.Rule, error) {
	for _, r := range m.byName {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memRules) FindAll(_ context.Context) ([]models.Rule, error) {
	var out []models.Rule
	for _, r := range m.byName {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memRules) Create(_ context.Context, rule *models.Rule) error {
	m.byName[rule.Name] = rule
	return nil
}

func (m *memRules) Update(_ context.Context, rule *models.Rule) error {
	m.byName[rule.Name] = rule
	return nil
}

func (m *memRules) Delete(_ context.Context, id uint) error {
	for name, r := range m.byName {
		if r.ID == id {
			delete(m.byName, name)
		}
	}
	return nil
}

type recorderSink struct {
	events []audit.Event
}

func (s *recorderSink) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

type recorderNotifier struct {
	sent []string
	fail bool
}

func (n *recorderNotifier) SendAppointmentNotification(email string, _ scheduling.AppointmentNotice) error {
	if n.fail {
		return errors.New("smtp down")
	}
	n.sent = append(n.sent, email)
	return nil
}

// --------------------------------------------------
// common fixtures
// --------------------------------------------------

func activeClient(id uint) *models.User {
	return &models.User{ID: id, Name: "Client", Email: "client@example.com", Role: models.RoleClient, IsActive: true}
}

func activeProfessional(id uint) *models.User {
	return &models.User{
		ID: id, Name: "Dr. Pro", Email: "pro@example.com",
		Role: models.RoleProfessional, IsActive: true,
		Specialty: "Dermatology", LicenseNumber: "CRM-1234",
	}
}
