package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medcore-clinic/config"
	deliveryHttp "medcore-clinic/internal/delivery/http"
	"medcore-clinic/internal/delivery/http/handler"
	"medcore-clinic/internal/delivery/http/middleware"
	"medcore-clinic/internal/domain/repository"
	repoImpl "medcore-clinic/internal/repository"
	"medcore-clinic/internal/seed"
	"medcore-clinic/internal/service"
	"medcore-clinic/internal/usecase"
	"medcore-clinic/pkg/jwt"
	"medcore-clinic/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize all layers
	app.Server = initializeServer(cfg)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize in-memory repositories with the demo data set
	visitRepo := repoImpl.NewVisitRepository()
	seedVisits(log, visitRepo)

	appointmentRepo := repoImpl.NewAppointmentRepository()
	seedAppointments(log, appointmentRepo)

	userRepo := repoImpl.NewUserRepository(seed.Users())
	catalogRepo := repoImpl.NewCatalogRepository(
		seed.CIE10Catalog(),
		seed.LabExamCatalog(),
		seed.ImagingExamCatalog(),
		seed.MedicationCatalog(),
	)
	auditRepo := repoImpl.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditRepo)
	receiptIssuer := service.NewReceiptIssuer(cfg.Issuers.ReceiptLatency)
	signatureIssuer := service.NewSignatureIssuer(cfg.Issuers.SignatureLatency)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, auditService)
	admissionUsecase := usecase.NewAdmissionUsecase(log, visitRepo, receiptIssuer, auditService)
	triageUsecase := usecase.NewTriageUsecase(log, visitRepo, auditService)
	consultationUsecase := usecase.NewConsultationUsecase(log, visitRepo, catalogRepo, signatureIssuer, auditService)
	dispatchUsecase := usecase.NewDispatchUsecase(log, visitRepo, auditService)
	queueUsecase := usecase.NewQueueUsecase(log, visitRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, auditService)
	catalogUsecase := usecase.NewCatalogUsecase(log, catalogRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	admissionHandler := handler.NewAdmissionHandler(admissionUsecase, customValidator)
	triageHandler := handler.NewTriageHandler(triageUsecase, customValidator)
	consultationHandler := handler.NewConsultationHandler(consultationUsecase, customValidator)
	dispatchHandler := handler.NewDispatchHandler(dispatchUsecase)
	visitHandler := handler.NewVisitHandler(queueUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		admissionHandler,
		triageHandler,
		consultationHandler,
		dispatchHandler,
		visitHandler,
		appointmentHandler,
		catalogHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// seedVisits loads the demo patient queue into the fresh store
func seedVisits(log *logrus.Logger, visitRepo repository.VisitRepository) {
	visits := seed.Visits()
	for i := range visits {
		if err := visitRepo.Create(&visits[i]); err != nil {
			log.Warnf("Failed to seed visit %s: %+v", visits[i].Name, err)
		}
	}
	log.Infof("Seeded %d visits", len(visits))
}

// seedAppointments loads the demo appointment book
func seedAppointments(log *logrus.Logger, appointmentRepo repository.AppointmentRepository) {
	appointments := seed.Appointments()
	for i := range appointments {
		if err := appointmentRepo.Create(&appointments[i]); err != nil {
			log.Warnf("Failed to seed appointment %s: %+v", appointments[i].ID, err)
		}
	}
	log.Infof("Seeded %d appointments", len(appointments))
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server shutdown complete")
}
