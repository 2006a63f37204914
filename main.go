// File: tutorhive/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorhive/config"
	jobs "tutorhive/cron"
	"tutorhive/database"
	bookingRepoPkg "tutorhive/database/repository/booking"
	studentRepoPkg "tutorhive/database/repository/student"
	tutorRepoPkg "tutorhive/database/repository/tutor"
	"tutorhive/handlers"
	"tutorhive/middleware"
	"tutorhive/routes"
	"tutorhive/services/availability"
	"tutorhive/services/booking"
	"tutorhive/services/notification"
	"tutorhive/services/student"
	"tutorhive/services/tutor"
	"tutorhive/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAvailabilityCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tutorRepo := tutorRepoPkg.NewMongoTutorRepo()
	studentRepo := studentRepoPkg.NewMongoStudentRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	if repo, ok := tutorRepo.(*tutorRepoPkg.MongoTutorRepo); ok {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to create tutor indexes: %v", err)
		}
	}
	if repo, ok := studentRepo.(*studentRepoPkg.MongoStudentRepo); ok {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to create student indexes: %v", err)
		}
	}

	// services.
	reminderQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer reminderQueue.Close()

	notificationService := &notification.DefaultNotificationService{
		Queue: reminderQueue,
	}

	tutorService := &tutor.DefaultTutorService{Repo: tutorRepo}
	studentService := &student.DefaultStudentService{Repo: studentRepo}
	availabilityService := &availability.DefaultAvailabilityService{
		Tutors: tutorRepo,
		Cache:  utils.GetAvailabilityCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Tutors:   tutorRepo,
		Bookings: bookingRepo,
		Notifier: notificationService,
	}

	// Background workers: the status sweep and the reminder consumer.
	sweeper := jobs.StartSweeper(bookingService, utils.GetCacheClient())
	defer sweeper.Stop()
	jobs.InitReminderWorker()

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Auth:         handlers.NewAuthHandler(tutorService, studentService),
		Tutors:       handlers.NewTutorHandler(tutorService),
		Students:     handlers.NewStudentHandler(studentService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Bookings:     handlers.NewBookingHandler(bookingService),
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
