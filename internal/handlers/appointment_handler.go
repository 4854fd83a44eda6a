package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medagenda/scheduler-api/internal/domain/scheduling"
	"github.com/medagenda/scheduler-api/internal/httperr"
	"github.com/medagenda/scheduler-api/internal/httpresp"
	"github.com/medagenda/scheduler-api/internal/middleware"
	"github.com/medagenda/scheduler-api/internal/models"
	ucAppointment "github.com/medagenda/scheduler-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	updateStatusUC *ucAppointment.UpdateStatus
	listUC         *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	updateStatusUC *ucAppointment.UpdateStatus,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		updateStatusUC: updateStatusUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	Title          string `json:"title"`
	Description    string `json:"description"`
}

type UpdateAppointmentRequest struct {
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:       userID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Title:          req.Title,
		Description:    req.Description,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	apps, err := h.listUC.ForUser(c.Request.Context(), userID, role)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != models.RoleProfessional {
		httperr.WriteDomain(c, httperr.Forbidden("Only professionals can list a day's schedule"))
		return
	}

	apps, err := h.listUC.ForProfessionalOnDate(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AppointmentID: id,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Title:         req.Title,
		Description:   req.Description,
	}, userID, role)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	h.transition(c, req.Status)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, string(scheduling.StatusConfirmed))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, string(scheduling.StatusCancelled))
}

func (h *AppointmentHandler) transition(c *gin.Context, status string) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), id, status, userID, role)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}
