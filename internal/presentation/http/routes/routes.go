package routes

import (
	"time"

	"github.com/facturio/facturio-api/internal/config"
	domainRepo "github.com/facturio/facturio-api/internal/domain/repository"
	"github.com/facturio/facturio-api/internal/presentation/http/handler"
	"github.com/facturio/facturio-api/internal/presentation/http/middleware"
	"github.com/facturio/facturio-api/pkg/logger"
	"github.com/facturio/facturio-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	Client        *handler.ClientHandler
	Company       *handler.CompanyHandler
	PaymentMethod *handler.PaymentMethodHandler
	Quote         *handler.DocumentHandler
	Invoice       *handler.DocumentHandler
	Dashboard     *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	Log             *logger.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	registerClientRoutes(protected, h)
	registerCompanyRoutes(protected, h)
	registerPaymentMethodRoutes(protected, h)
	registerDocumentRoutes(protected, "/quotes", h.Quote, deps)
	registerDocumentRoutes(protected, "/invoices", h.Invoice, deps)

	// Quote to invoice conversion
	protected.POST("/quotes/:id/convert", h.Quote.Convert)
}

func registerClientRoutes(protected *gin.RouterGroup, h *Handlers) {
	clients := protected.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}
}

func registerCompanyRoutes(protected *gin.RouterGroup, h *Handlers) {
	companies := protected.Group("/companies")
	{
		companies.GET("", h.Company.List)
		companies.POST("", h.Company.Create)
		companies.GET("/:id", h.Company.Get)
		companies.PUT("/:id", h.Company.Update)
		companies.DELETE("/:id", h.Company.Delete)
		companies.GET("/:id/pdf-config", h.Company.GetPDFConfig)
		companies.PUT("/:id/pdf-config", h.Company.UpdatePDFConfig)
	}
}

func registerPaymentMethodRoutes(protected *gin.RouterGroup, h *Handlers) {
	methods := protected.Group("/payment-methods")
	{
		methods.GET("", h.PaymentMethod.List)
		methods.POST("", h.PaymentMethod.Create)
		methods.GET("/:id", h.PaymentMethod.Get)
		methods.PUT("/:id", h.PaymentMethod.Update)
		methods.DELETE("/:id", h.PaymentMethod.Delete)
	}
}

func registerDocumentRoutes(protected *gin.RouterGroup, path string, h *handler.DocumentHandler, deps *Deps) {
	docs := protected.Group(path)
	{
		docs.GET("", h.List)
		// Creation honors idempotency keys to prevent duplicate documents
		docs.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Create)
		docs.GET("/:id", h.Get)
		docs.PUT("/:id", h.Update)
		docs.DELETE("/:id", h.Delete)
		docs.GET("/:id/pdf", h.DownloadPDF)
		docs.POST("/:id/send", h.Send)
	}
}
