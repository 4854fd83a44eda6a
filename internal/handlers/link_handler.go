package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/httpresp"
	"github.com/medagenda/scheduler-api/internal/middleware"
	"github.com/medagenda/scheduler-api/internal/models"
	ucLink "github.com/medagenda/scheduler-api/internal/usecase/link"
)

type LinkHandler struct {
	service *ucLink.Service
}

func NewLinkHandler(service *ucLink.Service) *LinkHandler {
	return &LinkHandler{service: service}
}

type RequestLinkRequest struct {
	ProfessionalID uint `json:"professional_id" binding:"required"`
}

type DecideLinkRequest struct {
	Approve bool `json:"approve"`
}

func (h *LinkHandler) Request(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != models.RoleClient {
		httperr.WriteDomain(c, httperr.Forbidden("Only clients can request links"))
		return
	}

	var req RequestLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	lk, err := h.service.Request(c.Request.Context(), userID, req.ProfessionalID)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.Created(c, lk)
}

func (h *LinkHandler) Decide(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return
	}

	var req DecideLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	lk, err := h.service.Decide(c.Request.Context(), uint(id), req.Approve, userID, role)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, lk)
}

func (h *LinkHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	links, err := h.service.ListForUser(c.Request.Context(), userID, role)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, links)
}
