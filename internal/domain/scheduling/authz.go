package scheduling

import (
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
)

// Action is a lifecycle operation subject to the authorization matrix.
type Action string

const (
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
	ActionModify  Action = "modify"
)

type ownership int

const (
	ownAssignedClient ownership = iota
	ownAssignedProfessional
	ownAny
)

type grant struct {
	role      string
	ownership ownership
}

// matrix is the single source of truth for who may perform which lifecycle
// action on an appointment. Superadmin rows use ownAny.
var matrix = map[Action][]grant{
	ActionConfirm: {
		{models.RoleProfessional, ownAssignedProfessional},
		{models.RoleSuperadmin, ownAny},
	},
	ActionCancel: {
		{models.RoleClient, ownAssignedClient},
		{models.RoleProfessional, ownAssignedProfessional},
		{models.RoleSuperadmin, ownAny},
	},
	ActionModify: {
		{models.RoleClient, ownAssignedClient},
		{models.RoleProfessional, ownAssignedProfessional},
		{models.RoleSuperadmin, ownAny},
	},
}

// Authorize checks action against the matrix for the acting user.
func Authorize(action Action, ap *models.Appointment, actorID uint, actorRole string) error {
	for _, g := range matrix[action] {
		if g.role != actorRole {
			continue
		}
		switch g.ownership {
		case ownAny:
			return nil
		case ownAssignedClient:
			if ap.ClientID == actorID {
				return nil
			}
		case ownAssignedProfessional:
			if ap.ProfessionalID == actorID {
				return nil
			}
		}
	}
	return httperr.Forbidden("You are not allowed to " + string(action) + " this appointment")
}

// ActionForStatus maps a requested target status to its matrix action.
func ActionForStatus(target Status) (Action, error) {
	switch target {
	case StatusConfirmed:
		return ActionConfirm, nil
	case StatusCancelled:
		return ActionCancel, nil
	default:
		return "", httperr.Validation("Unsupported status transition: " + string(target))
	}
}
