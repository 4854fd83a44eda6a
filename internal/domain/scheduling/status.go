package scheduling

import "github.com/medagenda/scheduler-api/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanConfirm allows pending -> confirmed and the idempotent re-confirm.
func CanConfirm(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.Validation("Only pending appointments can be confirmed")
	}
	return nil
}

func CanCancel(current Status) error {
	if current.Terminal() {
		return httperr.Validation("Appointment is already " + string(current))
	}
	return nil
}

// CanComplete is driven by the maintenance worker, never by a user action.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.Validation("Only confirmed appointments can be completed")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
