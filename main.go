package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lapidclinic/config"
	"lapidclinic/cron"
	"lapidclinic/database"
	appointmentRepo "lapidclinic/database/repository/appointment"
	catalogRepo "lapidclinic/database/repository/catalog"
	hoursRepo "lapidclinic/database/repository/hours"
	journeyRepo "lapidclinic/database/repository/journey"
	settingsRepo "lapidclinic/database/repository/settings"
	"lapidclinic/handlers"
	"lapidclinic/middleware"
	"lapidclinic/models"
	"lapidclinic/routes"
	"lapidclinic/services/admin"
	"lapidclinic/services/booking"
	ai "lapidclinic/services/intelligence"
	"lapidclinic/services/journey"
	"lapidclinic/services/notification"
	"lapidclinic/utils"
)

// repositories holds the store adapter behind each entity. The backing
// store is picked once at startup: a configured DATABASE_URL selects Mongo,
// an empty one runs the whole server on the in-memory adapters.
type repositories struct {
	Appointments appointmentRepo.AppointmentRepository
	Catalog      catalogRepo.ServiceRepository
	Hours        hoursRepo.HoursRepository
	Journey      journeyRepo.JourneyRepository
	Settings     settingsRepo.SettingsRepository
}

func buildRepositories() repositories {
	if config.AppConfig.DatabaseURL == "" {
		utils.GetLogger().Warn("main: no DATABASE_URL configured, using the in-memory store; data will not survive a restart")
		return repositories{
			Appointments: appointmentRepo.NewMemoryAppointmentRepo(),
			Catalog:      catalogRepo.NewMemoryServiceRepo(),
			Hours:        hoursRepo.NewMemoryHoursRepo(),
			Journey:      journeyRepo.NewMemoryJourneyRepo(),
			Settings:     settingsRepo.NewMemorySettingsRepo(),
		}
	}

	database.InitDB()
	return repositories{
		Appointments: appointmentRepo.NewMongoAppointmentRepo(),
		Catalog:      catalogRepo.NewMongoServiceRepo(),
		Hours:        hoursRepo.NewMongoHoursRepo(),
		Journey:      journeyRepo.NewMongoJourneyRepo(),
		Settings:     settingsRepo.NewMongoSettingsRepo(),
	}
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: image storage disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	repos := buildRepositories()
	apptRepo := repos.Appointments
	svcRepo := repos.Catalog
	hrsRepo := repos.Hours
	jrnRepo := repos.Journey
	cfgRepo := repos.Settings

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := svcRepo.Seed(seedCtx, models.DefaultServices()); err != nil {
		logger.Warn("main: failed to seed service catalog", zap.Error(err))
	}
	cancelSeed()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:  apptRepo,
		Hours: hrsRepo,
		Cache: utils.GetCacheClient(),
	}
	notificationService := &notification.DefaultNotificationService{
		Settings: cfgRepo,
		Catalog:  svcRepo,
	}
	journeyService := &journey.DefaultJourneyService{
		Repo: jrnRepo,
	}
	statsService := &admin.DefaultStatsService{
		Appointments: apptRepo,
		Catalog:      svcRepo,
	}
	aiService := ai.NewDefaultAIService(config.AppConfig.GeminiAPIKey)

	cron.InitReminderWorker(bookingService, notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService, notificationService, aiService, svcRepo, logger),
		Appointments: handlers.NewAppointmentHandler(bookingService, notificationService, logger),
		Services:     handlers.NewServiceHandler(svcRepo),
		Hours:        handlers.NewHoursHandler(bookingService),
		Journey:      handlers.NewJourneyHandler(journeyService, bookingService),
		Settings:     handlers.NewSettingsHandler(notificationService, cfgRepo),
		Dashboard:    handlers.NewDashboardHandler(statsService, bookingService, svcRepo, aiService),
		Storage:      handlers.NewStorageHandler(storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
