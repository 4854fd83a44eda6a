package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/httpresp"
	"github.com/medagenda/scheduler-api/internal/middleware"
	ucRule "github.com/medagenda/scheduler-api/internal/usecase/rule"
)

type RuleHandler struct {
	createUC *ucRule.CreateRule
	updateUC *ucRule.UpdateRule
	deleteUC *ucRule.DeleteRule
	rules    scheduling.RuleStore
}

func NewRuleHandler(
	createUC *ucRule.CreateRule,
	updateUC *ucRule.UpdateRule,
	deleteUC *ucRule.DeleteRule,
	rules scheduling.RuleStore,
) *RuleHandler {
	return &RuleHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		rules:    rules,
	}
}

type CreateRuleRequest struct {
	Name  string          `json:"name" binding:"required"`
	Value json.RawMessage `json:"value" binding:"required"`
}

type UpdateRuleRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

func (h *RuleHandler) List(c *gin.Context) {
	rules, err := h.rules.FindAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_rules", "Could not load rules.")
		return
	}
	httpresp.List(c, rules)
}

func (h *RuleHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	rule, err := h.createUC.Execute(c.Request.Context(), req.Name, req.Value, userID, role)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.Created(c, rule)
}

func (h *RuleHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return
	}

	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	rule, err := h.updateUC.Execute(c.Request.Context(), uint(id), req.Value, userID, role)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, rule)
}

func (h *RuleHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id), userID, role); err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
