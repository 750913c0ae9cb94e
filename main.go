package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtside/config"
	"courtside/cron"
	"courtside/database"
	aidRepoPkg "courtside/database/repository/aid"
	bookingRepoPkg "courtside/database/repository/booking"
	contentRepoPkg "courtside/database/repository/content"
	donationRepoPkg "courtside/database/repository/donation"
	facilityRepoPkg "courtside/database/repository/facility"
	trainerRepoPkg "courtside/database/repository/trainer"
	userRepoPkg "courtside/database/repository/user"
	"courtside/handlers"
	"courtside/middleware"
	"courtside/routes"
	"courtside/services/admin"
	"courtside/services/aid"
	"courtside/services/booking"
	"courtside/services/content"
	"courtside/services/donation"
	"courtside/services/facility"
	"courtside/services/trainer"
	"courtside/services/user"
	"courtside/services/weather"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	facilityRepo := facilityRepoPkg.NewMongoFacilityRepo()
	trainerRepo := trainerRepoPkg.NewMongoTrainerRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	donationRepo := donationRepoPkg.NewMongoDonationRepo()
	contentRepo := contentRepoPkg.NewMongoContentRepo()
	aidRepo := aidRepoPkg.NewMongoAidRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// Task queue client for booking expiry and reminders.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	facilityService := &facility.DefaultFacilityService{Repo: facilityRepo}
	trainerService := &trainer.DefaultTrainerService{Repo: trainerRepo}
	contentService := &content.DefaultContentService{Repo: contentRepo}
	donationService := &donation.DefaultDonationService{Repo: donationRepo}
	userService := &user.DefaultUserService{Repo: userRepo, TokenDuration: 24 * time.Hour}

	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		Facilities: facilityRepo,
		Queue:      queueClient,
		HoldWindow: time.Duration(config.AppConfig.BookingHoldMinutes) * time.Minute,
	}

	aidSessions := aid.NewSessionStore(utils.GetDraftCacheClient(), 24*time.Hour)
	aidService := &aid.DefaultAidService{
		Repo:     aidRepo,
		Sessions: aidSessions,
		Storage:  cloudinaryStorageService,
	}

	geminiClient, err := weather.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize weather assistant: %v", err)
	}
	chatHistory := weather.NewHistoryStore(utils.GetChatCacheClient(), 7*24*time.Hour)
	weatherService := weather.NewDefaultAssistantService(
		geminiClient,
		weather.NewOpenMeteoProvider(config.AppConfig.WeatherLatitude, config.AppConfig.WeatherLongitude),
		chatHistory,
	)

	adminService := &admin.DefaultAdminService{
		Bookings:   bookingRepo,
		Donations:  donationRepo,
		Aid:        aidRepo,
		Facilities: facilityRepo,
		Trainers:   trainerRepo,
		Users:      userRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Facilities: &handlers.FacilityHandler{Service: facilityService},
		Trainers:   &handlers.TrainerHandler{Service: trainerService},
		Bookings:   &handlers.BookingHandler{Service: bookingService},
		Aid:        &handlers.AidHandler{Service: aidService},
		Donations:  &handlers.DonationHandler{Service: donationService},
		Weather:    &handlers.WeatherHandler{Service: weatherService},
		Content:    &handlers.ContentHandler{Service: contentService},
		Users:      &handlers.UserHandler{Service: userService},
		Admin:      &handlers.AdminHandler{Service: adminService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for booking holds and reminders.
	cron.InitBookingWorker(bookingRepo)

	// Periodic dependency health checks surfaced at /health.
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetDraftCacheClient(),
		utils.GetChatCacheClient(),
	}, database.MongoClient)

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
