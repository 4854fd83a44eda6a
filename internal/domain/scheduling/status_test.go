package scheduling

import (
	"testing"

	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
)

func TestStatusMachine(t *testing.T) {
	if err := CanConfirm(StatusPending); err != nil {
		t.Fatalf("pending should be confirmable: %v", err)
	}
	if err := CanConfirm(StatusConfirmed); err != nil {
		t.Fatalf("re-confirm should be a no-op: %v", err)
	}
	if err := CanConfirm(StatusCancelled); err == nil {
		t.Fatal("cancelled must not be confirmable")
	}

	if err := CanCancel(StatusPending); err != nil {
		t.Fatalf("pending should be cancellable: %v", err)
	}
	if err := CanCancel(StatusConfirmed); err != nil {
		t.Fatalf("confirmed should be cancellable: %v", err)
	}
	if err := CanCancel(StatusCompleted); err == nil {
		t.Fatal("completed is terminal")
	}
	if err := CanCancel(StatusCancelled); err == nil {
		t.Fatal("cancelled is terminal")
	}

	if err := CanComplete(StatusConfirmed); err != nil {
		t.Fatalf("confirmed should be completable: %v", err)
	}
	if err := CanComplete(StatusPending); err == nil {
		t.Fatal("pending must not be completable")
	}
}

func TestAuthorizeMatrix(t *testing.T) {
	ap := &models.Appointment{ID: 1, ClientID: 10, ProfessionalID: 20}

	cases := []struct {
		name    string
		action  Action
		actorID uint
		role    string
		allowed bool
	}{
		{"assigned professional confirms", ActionConfirm, 20, models.RoleProfessional, true},
		{"other professional confirms", ActionConfirm, 21, models.RoleProfessional, false},
		{"assigned client confirms", ActionConfirm, 10, models.RoleClient, false},
		{"superadmin confirms any", ActionConfirm, 99, models.RoleSuperadmin, true},

		{"assigned client cancels", ActionCancel, 10, models.RoleClient, true},
		{"other client cancels", ActionCancel, 11, models.RoleClient, false},
		{"assigned professional cancels", ActionCancel, 20, models.RoleProfessional, true},
		{"superadmin cancels any", ActionCancel, 99, models.RoleSuperadmin, true},

		{"assigned client modifies", ActionModify, 10, models.RoleClient, true},
		{"other professional modifies", ActionModify, 21, models.RoleProfessional, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.action, ap, tc.actorID, tc.role)
			if tc.allowed && err != nil {
				t.Fatalf("expected allowed, got %v", err)
			}
			if !tc.allowed {
				if err == nil {
					t.Fatal("expected forbidden, got nil")
				}
				if !httperr.IsForbidden(err) {
					t.Fatalf("expected forbidden kind, got %v", err)
				}
			}
		})
	}
}

func TestActionForStatus(t *testing.T) {
	if _, err := ActionForStatus(StatusCompleted); err == nil {
		t.Fatal("completed is not a user-requestable transition")
	}
	if _, err := ActionForStatus(StatusPending); err == nil {
		t.Fatal("pending is not a transition target")
	}
	if action, err := ActionForStatus(StatusConfirmed); err != nil || action != ActionConfirm {
		t.Fatalf("got %v, %v", action, err)
	}
	if action, err := ActionForStatus(StatusCancelled); err != nil || action != ActionCancel {
		t.Fatalf("got %v, %v", action, err)
	}
}
