package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-admin/internal/audit"
	"github.com/BruksfildServices01/barbershop-admin/internal/cache"
	"github.com/BruksfildServices01/barbershop-admin/internal/config"
	"github.com/BruksfildServices01/barbershop-admin/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-admin/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-admin/internal/middleware"
	"github.com/BruksfildServices01/barbershop-admin/internal/storage"
	ucAppointment "github.com/BruksfildServices01/barbershop-admin/internal/usecase/appointment"
	ucFinance "github.com/BruksfildServices01/barbershop-admin/internal/usecase/finance"
	ucReview "github.com/BruksfildServices01/barbershop-admin/internal/usecase/review"
	"github.com/BruksfildServices01/barbershop-admin/internal/validators"
)

// Deps são as dependências de infraestrutura criadas no main.
// Redis e Storage são opcionais (nil).
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Audit   *audit.Dispatcher
	Redis   *redis.Client
	Storage *storage.Store
}

// catalog junta serviços e barbeiros para os formulários de agendamento
type catalog struct {
	*infraRepo.ServiceGormRepository
	*infraRepo.BarberGormRepository
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	tz := cfg.ShopTimezone

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins...))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB, tz)
	barberRepo := infraRepo.NewBarberGormRepository(d.DB)
	clientRepo := infraRepo.NewClientGormRepository(d.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)
	financeRepo := infraRepo.NewFinanceGormRepository(d.DB)
	reviewRepo := infraRepo.NewReviewGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	auditRepo := infraRepo.NewAuditGormRepository(d.DB)

	formCatalog := catalog{serviceRepo, barberRepo}
	publicCatalog := cache.NewPublicCatalog(formCatalog, d.Redis)

	var limiter handlers.LoginThrottle
	if d.Redis != nil {
		limiter = cache.NewLoginLimiter(
			d.Redis,
			cfg.LoginMaxAttempts,
			time.Duration(cfg.LoginWindowMinute)*time.Minute,
		)
	}

	// interface nil de verdade quando o S3 não está configurado
	var media handlers.MediaStore
	if d.Storage != nil {
		media = d.Storage
	}

	var emails handlers.EmailChecker
	if cfg.VerifyEmailDomain {
		emails = validators.NewEmailDomainChecker(nil)
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	saveAppointmentUC := ucAppointment.NewSaveAppointment(appointmentRepo, formCatalog, d.Audit, tz)
	changeStatusUC := ucAppointment.NewChangeStatus(appointmentRepo, d.Audit)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo)
	quoteUC := ucAppointment.NewQuoteAppointment(formCatalog)
	dashboardUC := ucAppointment.NewDashboard(appointmentRepo, tz)

	shopReportUC := ucFinance.NewShopReport(financeRepo, tz)
	barberReportUC := ucFinance.NewBarberReport(financeRepo, barberRepo, tz)
	addPayoutUC := ucFinance.NewAddPayout(financeRepo, barberRepo, d.Audit)
	reversePayoutUC := ucFinance.NewReversePayout(financeRepo, d.Audit)
	listPayoutsUC := ucFinance.NewListPayouts(financeRepo, tz)

	moderateUC := ucReview.NewModerate(reviewRepo, d.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, cfg, limiter)
	barberHandler := handlers.NewBarberHandler(barberRepo, publicCatalog, emails, d.Audit, tz)
	clientHandler := handlers.NewClientHandler(clientRepo)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, publicCatalog)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		saveAppointmentUC,
		changeStatusUC,
		listAppointmentsUC,
		deleteAppointmentUC,
		quoteUC,
	)

	financeHandler := handlers.NewFinanceHandler(
		shopReportUC,
		barberReportUC,
		addPayoutUC,
		reversePayoutUC,
		listPayoutsUC,
		tz,
	)

	reviewHandler := handlers.NewReviewHandler(moderateUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC, tz)
	mediaHandler := handlers.NewMediaHandler(media, d.Audit)
	publicHandler := handlers.NewPublicHandler(publicCatalog, moderateUC, media)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditRepo, tz)

	// ======================================================
	// 🩺 OPERAÇÃO
	// ======================================================
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.Services)
			publicAPI.GET("/barbers", publicHandler.Barbers)
			publicAPI.GET("/reviews", publicHandler.Reviews)
			publicAPI.GET("/site", publicHandler.Site)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (admin e barbeiro)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)
			secured.GET("/me/report", middleware.RequireRole(middleware.RoleBarber), financeHandler.MyReport)

			secured.GET("/ui/layout", dashboardHandler.Layout)

			// barbeiro só enxerga a própria agenda (forçado no handler)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
		}

		// ------------------------------
		// 🔐 ADMIN
		// ------------------------------
		admin := api.Group("/")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(middleware.RoleAdmin))
		{
			admin.GET("/dashboard", dashboardHandler.Summary)

			admin.GET("/barbers", barberHandler.List)
			admin.GET("/barbers/:id", barberHandler.Get)
			admin.POST("/barbers", barberHandler.Create)
			admin.PUT("/barbers/:id", barberHandler.Update)
			admin.DELETE("/barbers/:id", barberHandler.Delete)

			admin.GET("/clients", clientHandler.List)
			admin.GET("/clients/:id", clientHandler.Get)
			admin.POST("/clients", clientHandler.Create)
			admin.PUT("/clients/:id", clientHandler.Update)
			admin.DELETE("/clients/:id", clientHandler.Delete)

			admin.GET("/services", serviceHandler.List)
			admin.GET("/services/categories", serviceHandler.Categories)
			admin.GET("/services/:id", serviceHandler.Get)
			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			admin.GET("/appointments/quote", appointmentHandler.Quote)
			admin.POST("/appointments", appointmentHandler.Create)
			admin.POST("/appointments/walk-in", appointmentHandler.CreateWalkIn)
			admin.PUT("/appointments/:id", appointmentHandler.Update)
			admin.PATCH("/appointments/:id/status", appointmentHandler.ChangeStatus)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// REVIEWS
			// ------------------------------
			admin.GET("/reviews", reviewHandler.List)
			admin.PATCH("/reviews/:id/approve", reviewHandler.Approve)
			admin.DELETE("/reviews/:id", reviewHandler.Reject)

			// ------------------------------
			// FINANCE
			// ------------------------------
			admin.GET("/finance/report", financeHandler.ShopReport)
			admin.GET("/finance/report/export", financeHandler.Export)
			admin.GET("/finance/barbers/:id/report", financeHandler.BarberReport)
			admin.GET("/finance/payouts", financeHandler.ListPayouts)
			admin.POST("/finance/payouts", financeHandler.AddPayout)
			admin.POST("/finance/payouts/:id/reverse", financeHandler.ReversePayout)

			// ------------------------------
			// MEDIA
			// ------------------------------
			admin.GET("/media/:kind", mediaHandler.List)
			admin.POST("/media/:kind", mediaHandler.Upload)
			admin.GET("/media/:kind/:key", mediaHandler.URL)
			admin.DELETE("/media/:kind/:key", mediaHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
