// File: mltransport/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"mltransport/config"
	"mltransport/handlers"
	"mltransport/middleware"
	"mltransport/routes"
	"mltransport/services/booking"
	"mltransport/services/checkout"
	"mltransport/services/gateway"
	"mltransport/services/notification"
	"mltransport/services/pricing"
	"mltransport/services/verification"
	"mltransport/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.SquareAccessToken == "" || config.AppConfig.SquareLocationID == "" {
		logger.Sugar().Fatal("main: SQUARE_ACCESS_TOKEN and SQUARE_LOCATION_ID must be configured")
	}
	if config.AppConfig.SendGridAPIKey == "" || config.AppConfig.EmailFrom == "" {
		logger.Sugar().Fatal("main: SENDGRID_API_KEY and EMAIL_FROM must be configured")
	}

	utils.InitDedupeStore()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigins,
		AllowMethods:     []string{"POST", "OPTIONS", "GET"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// services.
	squareClient := gateway.NewSquareClient(
		config.AppConfig.SquareAccessToken,
		config.AppConfig.SquareEnv,
		config.AppConfig.SquareVersion,
		logger,
	)

	resolver := pricing.NewTableResolver()

	notifier := notification.NewSendGridNotifier(
		config.AppConfig.SendGridAPIKey,
		config.AppConfig.EmailFrom,
	)
	dispatcher := notification.NewDefaultDispatcher(notifier, config.AppConfig.EmailToOwner, logger)

	verifier := verification.NewDefaultVerifier(squareClient, logger)
	dedupeStore := booking.NewRedisDedupeStore(utils.GetDedupeClient())
	confirmationService := booking.NewDefaultConfirmationService(verifier, dispatcher, dedupeStore, logger)

	merchant := checkout.MerchantConfig{
		LocationID:    config.AppConfig.SquareLocationID,
		Currency:      "USD",
		PublicBaseURL: config.AppConfig.PublicBaseURL,
		ConfirmPath:   config.AppConfig.ConfirmPath,
	}

	paymentHandler := handlers.NewPaymentHandler(
		resolver,
		squareClient,
		confirmationService,
		merchant,
		config.AppConfig.MinChargeCents,
		config.AppConfig.MaxChargeCents,
		logger,
	)

	routes.RegisterPaymentRoutes(router, paymentHandler)

	utils.StartHealthMonitor([]*redis.Client{utils.GetDedupeClient(), utils.GetCacheClient()})

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
