package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/export"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/session"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

// Infra groups the long-lived dependencies built in main.
type Infra struct {
	DB      *gorm.DB
	Store   session.Store
	Audit   *audit.Dispatcher
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, infra Infra) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(logger.GinMiddleware(infra.Log))
	r.Use(middleware.MetricsMiddleware(infra.Metrics))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(infra.DB)
	scheduleRepo := infraRepo.NewScheduleGormRepository(infra.DB)

	settings := ucAppointment.Settings{
		Schedule:    cfg.Booking.Schedule,
		Location:    cfg.Location(),
		PhoneRegion: cfg.Booking.PhoneRegion,
		Prices:      cfg.Prices(),
	}

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, scheduleRepo, settings)

	submitBookingUC := ucAppointment.NewSubmitBooking(
		appointmentRepo,
		scheduleRepo,
		infra.Audit,
		validator.New(),
		settings,
	)

	getConfirmationUC := ucAppointment.NewGetConfirmation(appointmentRepo, settings)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, settings)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, infra.Audit)

	// ======================================================
	// USE CASES - SCHEDULE
	// ======================================================
	blockDateUC := ucSchedule.NewBlockDate(scheduleRepo, infra.Audit)
	unblockDateUC := ucSchedule.NewUnblockDate(scheduleRepo, infra.Audit)
	listBlockedUC := ucSchedule.NewListBlockedDates(scheduleRepo)

	saveOverrideUC := ucSchedule.NewSaveOverride(scheduleRepo, infra.Audit)
	deleteOverrideUC := ucSchedule.NewDeleteOverride(scheduleRepo, infra.Audit)
	listOverridesUC := ucSchedule.NewListOverrides(scheduleRepo)

	selections := session.NewSelectionService(infra.Store, getAvailabilityUC, cfg.Redis.SessionTTL)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		handlers.Catalogue{
			BusinessName:  cfg.Business.Name,
			Slogan:        cfg.Business.Slogan,
			ContactNumber: cfg.Business.ContactNumber,
			Prices:        cfg.Prices(),
		},
		appointmentRepo,
		getAvailabilityUC,
		submitBookingUC,
		getConfirmationUC,
		selections,
		infra.Metrics,
		infra.Log,
	)
	sessionHandler := handlers.NewSessionHandler(selections)

	authHandler := handlers.NewAuthHandler(
		handlers.AuthSettings{
			JWTSecret:    cfg.Admin.JWTSecret,
			TokenTTL:     cfg.Admin.TokenTTL,
			PasswordHash: cfg.Admin.PasswordHash,
		},
		infra.Store,
		infra.Audit,
		infra.Log,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		cancelAppointmentUC,
		export.NewAgendaPDF(cfg.Business.Name),
		infra.Log,
	)
	blockedDatesHandler := handlers.NewBlockedDatesHandler(listBlockedUC, blockDateUC, unblockDateUC)
	overridesHandler := handlers.NewScheduleOverridesHandler(listOverridesUC, saveOverrideUC, deleteOverrideUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(infra.DB, cfg.Location())

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(infra.Metrics.Handler()))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/appointments/:id", publicHandler.GetAppointment)

			publicAPI.POST("/sessions", sessionHandler.Create)
			publicAPI.GET("/sessions/:id", sessionHandler.Get)
			publicAPI.PUT("/sessions/:id/date", sessionHandler.SelectDate)
			publicAPI.PUT("/sessions/:id/slot", sessionHandler.SelectSlot)
			publicAPI.DELETE("/sessions/:id", sessionHandler.Clear)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(cfg.Admin.JWTSecret, infra.Store))
		{
			admin.POST("/logout", authHandler.Logout)

			admin.GET("/appointments", appointmentHandler.List)
			admin.GET("/appointments/export", appointmentHandler.Export)
			admin.DELETE("/appointments/:id", appointmentHandler.Cancel)

			admin.GET("/blocked-dates", blockedDatesHandler.List)
			admin.POST("/blocked-dates", blockedDatesHandler.Create)
			admin.DELETE("/blocked-dates/:id", blockedDatesHandler.Delete)

			admin.GET("/schedule-overrides", overridesHandler.List)
			admin.PUT("/schedule-overrides", overridesHandler.Upsert)
			admin.DELETE("/schedule-overrides/:id", overridesHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
