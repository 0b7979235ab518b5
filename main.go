package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"onehour/config"
	"onehour/database"
	bookingRepoPkg "onehour/database/repository/booking"
	paymentRepoPkg "onehour/database/repository/payment"
	"onehour/handlers"
	"onehour/middleware"
	"onehour/routes"
	"onehour/services/booking"
	"onehour/services/notification"
	"onehour/services/payment"
	"onehour/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	redisClient := utils.GetQueueRedisClient()

	ctx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := bookingRepoPkg.EnsureBookingIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}
	if err := paymentRepoPkg.EnsurePaymentIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create payment indexes: %v", err)
	}
	cancelIndexes()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.IdentityMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// Outbound notification queue: dispatcher on the request side, worker on
	// the delivery side, both over the same Redis connection.
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	dispatcher := notification.NewAsynqDispatcher(redisOpt, logger)
	defer dispatcher.Close()

	mailer := notification.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPassword,
	)
	worker := notification.NewWorker(redisOpt, mailer, config.AppConfig.AdminEmail, logger)
	worker.Start()

	// Payment gateway: constructed once here, injected below. Left nil when
	// unconfigured so order creation fails with a clear 503.
	var gateway payment.GatewayClient
	if config.AppConfig.RazorpayKeyID != "" && config.AppConfig.RazorpayKeySecret != "" {
		gateway = payment.NewRazorpayGateway(
			config.AppConfig.RazorpayKeyID,
			config.AppConfig.RazorpayKeySecret,
		)
	} else {
		logger.Warn("main: payment gateway credentials not configured; order creation disabled")
	}

	// services.
	ledger := &payment.Ledger{Bookings: bookingRepo, Logger: logger}
	paymentService := &payment.DefaultPaymentService{
		Payments:       paymentRepo,
		Gateway:        gateway,
		Ledger:         ledger,
		Notifier:       dispatcher,
		Logger:         logger,
		GatewayTimeout: time.Duration(config.AppConfig.GatewayTimeoutSec) * time.Second,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Notifier: dispatcher,
		Logger:   logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)
	upiHandler := handlers.NewUPIHandler(paymentService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateBooking:   bookingHandler.CreateBooking,
		GetUserBookings: bookingHandler.GetUserBookings,
		GetAllBookings:  bookingHandler.GetAllBookings,

		CreateOrder:     paymentHandler.CreateOrder,
		VerifyPayment:   paymentHandler.VerifyPayment,
		GetUserPayments: paymentHandler.GetUserPayments,
		GetAllPayments:  paymentHandler.GetAllPayments,
		GetPricing:      paymentHandler.GetPricing,

		SubmitUTR: upiHandler.SubmitUTR,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(redisClient, database.MongoClient)

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

	worker.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
