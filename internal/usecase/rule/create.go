package rule

import (
	"context"
	"encoding/json"

	"github.com/medagenda/scheduler-api/internal/audit"
	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
)

type CreateRule struct {
	rules scheduling.RuleStore
	audit audit.Sink
}

func NewCreateRule(rules scheduling.RuleStore, auditSink audit.Sink) *CreateRule {
	return &CreateRule{rules: rules, audit: auditSink}
}

// Execute persists a new named rule. Only superadmins may mutate rules;
// nothing is written, audit included, when the actor or the payload shape
// fails validation.
func (uc *CreateRule) Execute(
	ctx context.Context,
	name string,
	value json.RawMessage,
	actorID uint,
	actorRole string,
) (*models.Rule, error) {

	if actorRole != models.RoleSuperadmin {
		return nil, httperr.Forbidden("Only superadmins can manage rules")
	}

	if err := scheduling.ValidateRuleValue(name, value); err != nil {
		return nil, err
	}

	existing, err := uc.rules.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.Validation("Rule " + name + " already exists")
	}

	rule := &models.Rule{
		Name:      name,
		Value:     string(value),
		CreatedBy: actorID,
	}

	if err := uc.rules.Create(ctx, rule); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:      "create_rule",
		PerformedBy: &actorID,
		Details: map[string]any{
			"ruleName":  name,
			"ruleValue": json.RawMessage(value),
		},
	})

	return rule, nil
}
