package rule

import (
	"context"
	"encoding/json"

	"github.com/medagenda/scheduler-api/internal/audit"
	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/models"
)

type UpdateRule struct {
	rules scheduling.RuleStore
	audit audit.Sink
}

func NewUpdateRule(rules scheduling.RuleStore, auditSink audit.Sink) *UpdateRule {
	return &UpdateRule{rules: rules, audit: auditSink}
}

func (uc *UpdateRule) Execute(
	ctx context.Context,
	ruleID uint,
	value json.RawMessage,
	actorID uint,
	actorRole string,
) (*models.Rule, error) {

	if actorRole != models.RoleSuperadmin {
		return nil, httperr.Forbidden("Only superadmins can manage rules")
	}

	rule, err := uc.rules.FindByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		// a validation error, not a not-found one: API clients match on
		// this kind for the missing-rule path
		return nil, httperr.Validation("Rule not found")
	}

	// shape is re-validated against the existing rule's name; the name
	// itself cannot change
	if err := scheduling.ValidateRuleValue(rule.Name, value); err != nil {
		return nil, err
	}

	oldValue := rule.Value
	rule.Value = string(value)

	if err := uc.rules.Update(ctx, rule); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:      "update_rule",
		PerformedBy: &actorID,
		Details: map[string]any{
			"ruleName": rule.Name,
			"oldValue": json.RawMessage(oldValue),
			"newValue": json.RawMessage(value),
		},
	})

	return rule, nil
}
