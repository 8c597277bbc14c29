package main

import (
	"github.com/facturio/facturio-api/internal/application/service"
	"github.com/facturio/facturio-api/internal/config"
	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/facturio/facturio-api/internal/infrastructure/database"
	"github.com/facturio/facturio-api/internal/infrastructure/pdf"
	"github.com/facturio/facturio-api/internal/infrastructure/repository"
	"github.com/facturio/facturio-api/internal/presentation/http/handler"
	"github.com/facturio/facturio-api/internal/presentation/http/routes"
	"github.com/facturio/facturio-api/pkg/email"
	"github.com/facturio/facturio-api/pkg/logger"
	"github.com/facturio/facturio-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Warn().Err(err).Msg("failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	pdfConfigRepo := repository.NewPDFConfigRepository(db)
	paymentMethodRepo := repository.NewPaymentMethodRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.SMTP.FromName,
		FromEmail:    cfg.SMTP.FromEmail,
	})

	// Initialize the PDF pipeline
	renderer := pdf.NewRenderer()
	rasterizer := pdf.NewChromiumRasterizer(cfg.PDF.ChromiumPath, cfg.PDF.Timeout)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	clientService := service.NewClientService(clientRepo)
	companyService := service.NewCompanyService(companyRepo, pdfConfigRepo)
	paymentMethodService := service.NewPaymentMethodService(paymentMethodRepo)
	documentService := service.NewDocumentService(documentRepo, clientRepo, companyRepo, paymentMethodRepo)
	pdfService := service.NewPDFService(documentRepo, renderer, rasterizer, emailService, log)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Client:        handler.NewClientHandler(clientService),
		Company:       handler.NewCompanyHandler(companyService),
		PaymentMethod: handler.NewPaymentMethodHandler(paymentMethodService),
		Quote:         handler.NewDocumentHandler(enum.DocumentTypeQuote, documentService, pdfService),
		Invoice:       handler.NewDocumentHandler(enum.DocumentTypeInvoice, documentService, pdfService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Log:             log,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("port", port).
		Str("env", cfg.App.Env).
		Msgf("starting %s", cfg.App.Name)

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
