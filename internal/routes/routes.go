package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/abruzzobarber/abruzzo-api/internal/audit"
	"github.com/abruzzobarber/abruzzo-api/internal/config"
	"github.com/abruzzobarber/abruzzo-api/internal/handlers"
	infraRepo "github.com/abruzzobarber/abruzzo-api/internal/infra/repository"
	"github.com/abruzzobarber/abruzzo-api/internal/infra/session"
	"github.com/abruzzobarber/abruzzo-api/internal/infra/storage"
	"github.com/abruzzobarber/abruzzo-api/internal/infra/tokens"
	"github.com/abruzzobarber/abruzzo-api/internal/middleware"
	ucAppointment "github.com/abruzzobarber/abruzzo-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewGormRepository(db)

	wizardStore := session.NewRedisStore(rdb)
	denylist := tokens.NewDenylist(rdb)

	var uploader *storage.Uploader
	if cfg.StorageEnabled() {
		uploader = storage.NewUploader(cfg)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	listDashboardUC := ucAppointment.NewListDashboard(repo)
	confirmUC := ucAppointment.NewConfirmAppointment(repo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(repo, auditDispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, denylist)
	publicHandler := handlers.NewPublicHandler(db, cfg)
	bookingHandler := handlers.NewBookingHandler(wizardStore, repo, cfg, auditDispatcher)

	adminAppointments := handlers.NewAdminAppointmentHandler(
		cfg, listDashboardUC, confirmUC, cancelUC, completeUC,
	)
	adminBarbers := handlers.NewAdminBarberHandler(db, uploader, auditDispatcher)
	adminServices := handlers.NewAdminServiceHandler(db, auditDispatcher)
	adminAudit := handlers.NewAdminAuditHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.GET("/landing", publicHandler.Landing)
		api.GET("/services", publicHandler.ListServices)
		api.GET("/barbers", publicHandler.ListBarbers)

		booking := api.Group("/booking")
		{
			booking.POST("", bookingHandler.Start)
			booking.GET("/:id", bookingHandler.Get)
			booking.POST("/:id/barber", bookingHandler.SelectBarber)
			booking.POST("/:id/service", bookingHandler.SelectService)
			booking.POST("/:id/datetime", bookingHandler.SelectDateTime)
			booking.POST("/:id/contact", bookingHandler.SetContact)
			booking.POST("/:id/advance", bookingHandler.Advance)
			booking.POST("/:id/retreat", bookingHandler.Retreat)
			booking.GET("/:id/confirmation", bookingHandler.Confirmation)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		authed := api.Group("/")
		authed.Use(middleware.AuthMiddleware(cfg, denylist))
		{
			authed.POST("/auth/logout", authHandler.Logout)

			// ------------------------------
			// PANEL ADMIN (fail-closed)
			// ------------------------------
			admin := authed.Group("/admin")
			admin.Use(middleware.RequireAdmin(repo, denylist))
			{
				admin.GET("/appointments", adminAppointments.List)
				admin.PATCH("/appointments/:id/confirm", adminAppointments.Confirm)
				admin.PATCH("/appointments/:id/cancel", adminAppointments.Cancel)
				admin.PATCH("/appointments/:id/complete", adminAppointments.Complete)

				admin.GET("/barbers", adminBarbers.List)
				admin.POST("/barbers", adminBarbers.Create)
				admin.PATCH("/barbers/:id/deactivate", adminBarbers.Deactivate)
				admin.POST("/barbers/:id/photo", adminBarbers.UploadPhoto)

				admin.GET("/services", adminServices.List)
				admin.PATCH("/services/:id", adminServices.Update)

				admin.POST("/users", authHandler.CreateUser)

				admin.GET("/audit-logs", adminAudit.List)
			}
		}
	}
}
