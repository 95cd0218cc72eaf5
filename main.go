package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelbook/config"
	"travelbook/cron"
	"travelbook/database"
	bookingRepoPkg "travelbook/database/repository/booking"
	offeringRepoPkg "travelbook/database/repository/offering"
	"travelbook/handlers"
	"travelbook/middleware"
	"travelbook/routes"
	bookingSvc "travelbook/services/booking"
	"travelbook/services/notification"
	"travelbook/services/search"
	"travelbook/services/wizard"
	"travelbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	offeringRepo := offeringRepoPkg.NewMongoOfferingRepo()

	// notification queue.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	notifier := notification.NewAsynqNotificationService(queueClient)
	mailer := &notification.LogMailer{Logger: logger}
	worker := cron.InitConfirmationWorker(mailer, bookingRepo)
	defer worker.Shutdown()

	// services.
	searchService := &search.DefaultSearchService{Repo: offeringRepo}
	sessionStore := wizard.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	wizardService := &wizard.DefaultWizardService{
		SearchSvc: searchService,
		Bookings:  bookingRepo,
		Notifier:  notifier,
		Sessions:  sessionStore,
		Logger:    logger,
	}
	bookingService := &bookingSvc.DefaultBookingService{Repo: bookingRepo}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Wizard:  handlers.NewWizardHandler(wizardService),
		Booking: handlers.NewBookingHandler(bookingService),
	}

	routes.RegisterRoutes(router, handlerBundle)
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

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
