package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medagenda/scheduler-api/internal/audit"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/httpresp"
	"github.com/medagenda/scheduler-api/internal/middleware"
	"github.com/medagenda/scheduler-api/internal/models"
)

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

// List returns audit entries, superadmin only. ?performer= filters by the
// acting user recorded on the entry.
func (h *AuditLogsHandler) List(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)
	if role != models.RoleSuperadmin {
		httperr.WriteDomain(c, httperr.Forbidden("Only superadmins can read the audit log"))
		return
	}

	performer := c.Query("performer")
	if performer == "" {
		httperr.BadRequest(c, "missing_performer", "The performer query parameter is required.")
		return
	}

	performerID, err := strconv.ParseUint(performer, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_performer", "Invalid performer id.")
		return
	}

	entries, err := h.logger.FindByPerformer(uint(performerID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not load audit logs.")
		return
	}

	httpresp.List(c, entries)
}
