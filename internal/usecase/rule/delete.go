package rule

import (
	"context"

	"github.com/medagenda/scheduler-api/internal/audit"
	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
)

// DeleteRule is a real delete, unlike user deactivation.
type DeleteRule struct {
	rules scheduling.RuleStore
	audit audit.Sink
}

func NewDeleteRule(rules scheduling.RuleStore, auditSink audit.Sink) *DeleteRule {
	return &DeleteRule{rules: rules, audit: auditSink}
}

func (uc *DeleteRule) Execute(
	ctx context.Context,
	ruleID uint,
	actorID uint,
	actorRole string,
) error {

	if actorRole != models.RoleSuperadmin {
		return httperr.Forbidden("Only superadmins can manage rules")
	}

	rule, err := uc.rules.FindByID(ctx, ruleID)
	if err != nil {
		return err
	}
	if rule == nil {
		return httperr.NotFound("Rule not found")
	}

	if err := uc.rules.Delete(ctx, ruleID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:      "delete_rule",
		PerformedBy: &actorID,
		Details: map[string]any{
			"ruleName": rule.Name,
		},
	})

	return nil
}
