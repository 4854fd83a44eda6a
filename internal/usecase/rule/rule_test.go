package rule

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/medagenda/scheduler-api/internal/audit"
	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
)

type memRules struct {
	nextID uint
	byID   map[uint]*models.Rule
}

func newMemRules(rules ...*models.Rule) *memRules {
	m := &memRules{nextID: 1, byID: map[uint]*models.Rule{}}
	for _, r := range rules {
		if r.ID >= m.nextID {
			m.nextID = r.ID + 1
		}
		m.byID[r.ID] = r
	}
	return m
}

func (m *memRules) FindByName(_ context.Context, name string) (*models.Rule, error) {
	for _, r := range m.byID {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memRules) FindByID(_ context.Context, id uint) (*models.Rule, error) {
	if r, ok := m.byID[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (m *memRules) FindAll(_ context.Context) ([]models.Rule, error) {
	var out []models.Rule
	for _, r := range m.byID {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memRules) Create(_ context.Context, rule *models.Rule) error {
	rule.ID = m.nextID
	m.nextID++
	cp := *rule
	m.byID[rule.ID] = &cp
	return nil
}

func (m *memRules) Update(_ context.Context, rule *models.Rule) error {
	cp := *rule
	m.byID[rule.ID] = &cp
	return nil
}

func (m *memRules) Delete(_ context.Context, id uint) error {
	delete(m.byID, id)
	return nil
}

type recorderSink struct {
	events []audit.Event
}

func (s *recorderSink) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

const superadminID = uint(1)

func TestCreateRule(t *testing.T) {
	ctx := context.Background()

	t.Run("superadmin creates a valid rule", func(t *testing.T) {
		store := newMemRules()
		sink := &recorderSink{}
		uc := NewCreateRule(store, sink)

		rule, err := uc.Execute(ctx, scheduling.RuleMaxAppointmentsPerDay,
			json.RawMessage(`{"max_appointments_per_day": 5}`), superadminID, models.RoleSuperadmin)
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if rule.ID == 0 || rule.CreatedBy != superadminID {
			t.Errorf("rule = %+v", rule)
		}
		if len(sink.events) != 1 || sink.events[0].Action != "create_rule" {
			t.Errorf("audit events = %+v", sink.events)
		}
	})

	t.Run("non-superadmin is rejected before any write", func(t *testing.T) {
		store := newMemRules()
		sink := &recorderSink{}
		uc := NewCreateRule(store, sink)

		_, err := uc.Execute(ctx, scheduling.RuleMaxAppointmentsPerDay,
			json.RawMessage(`{"max_appointments_per_day": 5}`), 7, models.RoleProfessional)
		if !httperr.IsForbidden(err) {
			t.Fatalf("err = %v, want forbidden", err)
		}
		if len(store.byID) != 0 || len(sink.events) != 0 {
			t.Error("forbidden request must leave no trace")
		}
	})

	t.Run("invalid shape is rejected before any write", func(t *testing.T) {
		store := newMemRules()
		sink := &recorderSink{}
		uc := NewCreateRule(store, sink)

		_, err := uc.Execute(ctx, scheduling.RuleMaxAppointmentsPerDay,
			json.RawMessage(`{"max_appointments_per_day": -1}`), superadminID, models.RoleSuperadmin)
		if !httperr.IsValidation(err) {
			t.Fatalf("err = %v, want validation", err)
		}
		if len(store.byID) != 0 || len(sink.events) != 0 {
			t.Error("invalid rule must leave no trace")
		}
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		store := newMemRules(&models.Rule{ID: 3, Name: scheduling.RuleWorkingHours, Value: `{"start_time": "08:00", "end_time": "18:00"}`})
		uc := NewCreateRule(store, &recorderSink{})

		_, err := uc.Execute(ctx, scheduling.RuleWorkingHours,
			json.RawMessage(`{"start_time": "09:00", "end_time": "17:00"}`), superadminID, models.RoleSuperadmin)
		if !httperr.IsValidation(err) {
			t.Fatalf("err = %v, want validation", err)
		}
	})

	t.Run("unknown rule name", func(t *testing.T) {
		uc := NewCreateRule(newMemRules(), &recorderSink{})

		_, err := uc.Execute(ctx, "max_no_shows", json.RawMessage(`{"value": 3}`), superadminID, models.RoleSuperadmin)
		if !httperr.IsValidation(err) || err.Error() != "Unknown rule type" {
			t.Fatalf("err = %v, want validation %q", err, "Unknown rule type")
		}
	})
}

func TestUpdateRule(t *testing.T) {
	ctx := context.Background()
	seed := func() *memRules {
		return newMemRules(&models.Rule{
			ID:    3,
			Name:  scheduling.RuleMaxAppointmentsPerDay,
			Value: `{"max_appointments_per_day": 5}`,
		})
	}

	t.Run("superadmin replaces the value", func(t *testing.T) {
		store := seed()
		sink := &recorderSink{}
		uc := NewUpdateRule(store, sink)

		rule, err := uc.Execute(ctx, 3, json.RawMessage(`{"max_appointments_per_day": 8}`), superadminID, models.RoleSuperadmin)
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if rule.Value != `{"max_appointments_per_day": 8}` {
			t.Errorf("value = %q", rule.Value)
		}
		if len(sink.events) != 1 || sink.events[0].Action != "update_rule" {
			t.Errorf("audit events = %+v", sink.events)
		}
	})

	t.Run("missing rule reports a validation error", func(t *testing.T) {
		store := seed()
		sink := &recorderSink{}
		uc := NewUpdateRule(store, sink)

		_, err := uc.Execute(ctx, 404, json.RawMessage(`{"max_appointments_per_day": 8}`), superadminID, models.RoleSuperadmin)
		if !httperr.IsValidation(err) || err.Error() != "Rule not found" {
			t.Fatalf("err = %v, want validation %q", err, "Rule not found")
		}
		if len(sink.events) != 0 {
			t.Error("failed update must not be audited")
		}
	})

	t.Run("new value is validated against the existing name", func(t *testing.T) {
		store := seed()
		uc := NewUpdateRule(store, &recorderSink{})

		_, err := uc.Execute(ctx, 3, json.RawMessage(`{"max_appointments_per_day": "five"}`), superadminID, models.RoleSuperadmin)
		if !httperr.IsValidation(err) {
			t.Fatalf("err = %v, want validation", err)
		}
		if got, _ := store.FindByID(ctx, 3); got.Value != `{"max_appointments_per_day": 5}` {
			t.Errorf("stored value mutated to %q", got.Value)
		}
	})

	t.Run("non-superadmin is rejected", func(t *testing.T) {
		uc := NewUpdateRule(seed(), &recorderSink{})

		_, err := uc.Execute(ctx, 3, json.RawMessage(`{"max_appointments_per_day": 8}`), 10, models.RoleClient)
		if !httperr.IsForbidden(err) {
			t.Fatalf("err = %v, want forbidden", err)
		}
	})
}

func TestDeleteRule(t *testing.T) {
	ctx := context.Background()

	t.Run("superadmin deletes a rule", func(t *testing.T) {
		store := newMemRules(&models.Rule{ID: 3, Name: scheduling.RuleWorkingHours, Value: `{"start_time": "08:00", "end_time": "18:00"}`})
		sink := &recorderSink{}
		uc := NewDeleteRule(store, sink)

		if err := uc.Execute(ctx, 3, superadminID, models.RoleSuperadmin); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if got, _ := store.FindByID(ctx, 3); got != nil {
			t.Error("rule still present after delete")
		}
		if len(sink.events) != 1 || sink.events[0].Action != "delete_rule" {
			t.Errorf("audit events = %+v", sink.events)
		}
	})

	t.Run("missing rule", func(t *testing.T) {
		uc := NewDeleteRule(newMemRules(), &recorderSink{})

		if err := uc.Execute(ctx, 404, superadminID, models.RoleSuperadmin); !httperr.IsNotFound(err) {
			t.Fatalf("err = %v, want not found", err)
		}
	})

	t.Run("non-superadmin is rejected", func(t *testing.T) {
		store := newMemRules(&models.Rule{ID: 3, Name: scheduling.RuleWorkingHours, Value: `{"start_time": "08:00", "end_time": "18:00"}`})
		uc := NewDeleteRule(store, &recorderSink{})

		if err := uc.Execute(ctx, 3, 10, models.RoleClient); !httperr.IsForbidden(err) {
			t.Fatalf("err = %v, want forbidden", err)
		}
		if got, _ := store.FindByID(ctx, 3); got == nil {
			t.Error("rule deleted despite forbidden actor")
		}
	})
}
