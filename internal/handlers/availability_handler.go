package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/httpresp"
	"github.com/medagenda/scheduler-api/internal/middleware"
	"github.com/medagenda/scheduler-api/internal/models"
	ucAvailability "github.com/medagenda/scheduler-api/internal/usecase/availability"
)

type AvailabilityHandler struct {
	putUC *ucAvailability.PutAvailability
	store scheduling.AvailabilityStore
}

func NewAvailabilityHandler(putUC *ucAvailability.PutAvailability, store scheduling.AvailabilityStore) *AvailabilityHandler {
	return &AvailabilityHandler{putUC: putUC, store: store}
}

type PutAvailabilityRequest struct {
	Windows []ucAvailability.WindowInput `json:"windows" binding:"required"`
}

// Get returns the acting professional's weekly windows.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	windows, err := h.store.ListForProfessional(c.Request.Context(), professionalID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Could not load availability.")
		return
	}

	httpresp.List(c, windows)
}

// GetForProfessional is the read path clients use before booking.
func (h *AvailabilityHandler) GetForProfessional(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return
	}

	windows, err := h.store.ListForProfessional(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Could not load availability.")
		return
	}

	httpresp.List(c, windows)
}

func (h *AvailabilityHandler) Put(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != models.RoleProfessional {
		httperr.WriteDomain(c, httperr.Forbidden("Only professionals can set availability"))
		return
	}

	var req PutAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	windows, err := h.putUC.Execute(c.Request.Context(), professionalID, req.Windows)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, windows)
}
