package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"travel/internal/app"
	"travel/internal/config"
	"travel/internal/gateway"
	"travel/internal/handler"
	internalRedis "travel/internal/redis"
	"travel/internal/repository/postgres"
	"travel/internal/service"
	"travel/internal/worker"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	if err := app.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server, emailWorker := wireServer(db, redisClient, nrApp, cfg)

	// Start the email worker.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go emailWorker.Run(workerCtx)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	stopWorker()

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server plus the
// email worker to run alongside it.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, *worker.EmailWorker) {
	// Initialize the email task queue.
	taskQueue := internalRedis.NewTaskQueue(redisClient)

	// Initialize repositories.
	userRepo := postgres.NewUserRepository(db)
	listingRepo := postgres.NewListingRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	// Initialize the payment gateway client.
	gatewayClient := gateway.NewHTTPClient(gateway.Config{
		BaseURL:     cfg.Gateway.BaseURL,
		SecretKey:   cfg.Gateway.SecretKey,
		Currency:    cfg.Gateway.Currency,
		CallbackURL: cfg.Gateway.CallbackURL,
		Timeout:     cfg.Gateway.Timeout,
	})

	// Initialize services.
	notificationService := service.NewNotificationService(taskQueue)
	listingService := service.NewListingService(listingRepo, reviewRepo, userRepo)
	bookingService := service.NewBookingService(bookingRepo, listingRepo, userRepo, notificationService)
	paymentService := service.NewPaymentService(bookingRepo, paymentRepo, userRepo, gatewayClient)

	// Initialize the email worker.
	var mailer worker.Mailer
	if cfg.Mail.Host != "" {
		mailer = worker.NewSMTPMailer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From)
	} else {
		mailer = &worker.LogMailer{}
	}
	emailWorker := worker.NewEmailWorker(taskQueue, mailer)

	// Initialize handlers.
	userHandler := handler.NewUserHandler(userRepo)
	listingHandler := handler.NewListingHandler(listingService)
	bookingHandler := handler.NewBookingHandler(bookingService, paymentService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		UserHandler:    userHandler,
		ListingHandler: listingHandler,
		BookingHandler: bookingHandler,
		PaymentHandler: paymentHandler,
		NewRelicApp:    nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, emailWorker
}
