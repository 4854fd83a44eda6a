package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/medagenda/scheduler-api/internal/audit"
	"github.com/medagenda/scheduler-api/internal/cache"
	"github.com/medagenda/scheduler-api/internal/config"
	"github.com/medagenda/scheduler-api/internal/handlers"
	infraRepo "github.com/medagenda/scheduler-api/internal/infra/repository"
	"github.com/medagenda/scheduler-api/internal/middleware"
	"github.com/medagenda/scheduler-api/internal/notification"
	ucAppointment "github.com/medagenda/scheduler-api/internal/usecase/appointment"
	ucAvailability "github.com/medagenda/scheduler-api/internal/usecase/availability"
	ucLink "github.com/medagenda/scheduler-api/internal/usecase/link"
	ucRule "github.com/medagenda/scheduler-api/internal/usecase/rule"
)

// Services bundles what main needs beyond the HTTP surface.
type Services struct {
	Appointments *infraRepo.AppointmentGormRepository
	CompleteUC   *ucAppointment.CompleteAppointment
	AutoCancelUC *ucAppointment.AutoCancel
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) *Services {

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(db)
	linkRepo := infraRepo.NewLinkGormRepository(db)
	ruleRepo := cache.NewCachedRuleStore(infraRepo.NewRuleGormRepository(db), rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailer := notification.NewMailer(cfg.MailAPIKey, cfg.MailBaseURL, cfg.MailFrom)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		userRepo, appointmentRepo, ruleRepo, auditDispatcher, mailer,
	)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateStatus(userRepo, appointmentRepo, auditDispatcher, mailer)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, auditDispatcher)
	autoCancelUC := ucAppointment.NewAutoCancel(appointmentRepo, auditDispatcher)

	putAvailabilityUC := ucAvailability.NewPutAvailability(availabilityRepo)

	createRuleUC := ucRule.NewCreateRule(ruleRepo, auditDispatcher)
	updateRuleUC := ucRule.NewUpdateRule(ruleRepo, auditDispatcher)
	deleteRuleUC := ucRule.NewDeleteRule(ruleRepo, auditDispatcher)

	linkService := ucLink.NewService(userRepo, linkRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		updateStatusUC,
		listAppointmentsUC,
	)
	availabilityHandler := handlers.NewAvailabilityHandler(putAvailabilityUC, availabilityRepo)
	ruleHandler := handlers.NewRuleHandler(createRuleUC, updateRuleUC, deleteRuleUC, ruleRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)
	linkHandler := handlers.NewLinkHandler(linkService)

	// ======================================================
	// ROUTES
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/deactivate", meHandler.Deactivate)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/day", appointmentHandler.ListByDate)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/me/availability", availabilityHandler.Get)
			secured.PUT("/me/availability", availabilityHandler.Put)
			secured.GET("/professionals/:id/availability", availabilityHandler.GetForProfessional)

			secured.GET("/rules", ruleHandler.List)
			secured.POST("/rules", ruleHandler.Create)
			secured.PATCH("/rules/:id", ruleHandler.Update)
			secured.DELETE("/rules/:id", ruleHandler.Delete)

			secured.POST("/links", linkHandler.Request)
			secured.GET("/links", linkHandler.List)
			secured.PATCH("/links/:id", linkHandler.Decide)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return &Services{
		Appointments: appointmentRepo,
		CompleteUC:   completeUC,
		AutoCancelUC: autoCancelUC,
	}
}
