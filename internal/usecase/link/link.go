package link

import (
	"context"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
)

// Service manages client-professional affiliations: a client requests a
// link, the professional approves or rejects it.
type Service struct {
	users scheduling.UserDirectory
	links scheduling.LinkStore
}

func NewService(users scheduling.UserDirectory, links scheduling.LinkStore) *Service {
	return &Service{users: users, links: links}
}

func (s *Service) Request(ctx context.Context, clientID, professionalID uint) (*models.ClientProfessionalLink, error) {
	professional, err := s.users.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil || !professional.IsProfessional() || !professional.IsActive {
		return nil, httperr.NotFound("Professional not found")
	}

	existing, err := s.links.Find(ctx, clientID, professionalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.Validation("Link request already exists")
	}

	lk := &models.ClientProfessionalLink{
		ClientID:       clientID,
		ProfessionalID: professionalID,
		Status:         models.LinkStatusPending,
	}
	if err := s.links.Create(ctx, lk); err != nil {
		return nil, err
	}
	return lk, nil
}

// Decide approves or rejects a pending link. Only the professional on the
// link (or a superadmin) may decide it.
func (s *Service) Decide(ctx context.Context, linkID uint, approve bool, actorID uint, actorRole string) (*models.ClientProfessionalLink, error) {
	lk, err := s.links.FindByID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if lk == nil {
		return nil, httperr.NotFound("Link not found")
	}

	if actorRole != models.RoleSuperadmin && (actorRole != models.RoleProfessional || lk.ProfessionalID != actorID) {
		return nil, httperr.Forbidden("You are not allowed to decide this link")
	}

	if lk.Status != models.LinkStatusPending {
		return nil, httperr.Validation("Link is already " + lk.Status)
	}

	if approve {
		lk.Status = models.LinkStatusApproved
	} else {
		lk.Status = models.LinkStatusRejected
	}

	if err := s.links.Update(ctx, lk); err != nil {
		return nil, err
	}
	return lk, nil
}

func (s *Service) ListForUser(ctx context.Context, userID uint, role string) ([]models.ClientProfessionalLink, error) {
	switch role {
	case models.RoleClient:
		return s.links.ListForClient(ctx, userID)
	case models.RoleProfessional:
		return s.links.ListForProfessional(ctx, userID)
	default:
		return nil, httperr.Forbidden("Listing requires a client or professional account")
	}
}
