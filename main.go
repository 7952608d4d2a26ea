package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"vhotelok-backend/config"
	"vhotelok-backend/controllers"
	"vhotelok-backend/repositories"
	"vhotelok-backend/routes"
	"vhotelok-backend/services"
	"vhotelok-backend/tasks"
	"vhotelok-backend/utils"
)

const checkInReminderInterval = 24 * time.Hour

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		logrus.Warn("⚠️ .env not found or couldn't load it; continuing with environment variables")
	}

	settings, err := config.Load()
	if err != nil {
		logrus.Fatalf("❌ failed to load settings: %v", err)
	}
	config.SetupLogger(settings.LogLevel)
	if settings.Mode != "local" {
		gin.SetMode(gin.ReleaseMode)
		if settings.JWTSecretKey == "" || settings.JWTSecretKey == config.DevJWTSecret {
			logrus.Fatal("❌ JWT_SECRET_KEY must be set outside local mode")
		}
	}

	db, err := config.ConnectDatabase(settings)
	if err != nil {
		logrus.Fatalf("❌ database connect failed: %v", err)
	}

	rdb := config.ConnectRedis(settings)

	store := repositories.NewStore(db)
	mailer := utils.NewMailer(settings)

	ctx, cancel := context.WithCancel(context.Background())
	worker := tasks.NewWorker(settings.ResizeWorkers)
	worker.Start(ctx)

	authService := services.NewAuthService(store, settings)
	hotelService := services.NewHotelService(store)
	roomService := services.NewRoomService(store)
	bookingService := services.NewBookingService(store, mailer)
	facilityService := services.NewFacilityService(store)
	imageService := services.NewImageService(store, worker, settings)

	router := routes.Setup(settings, rdb, routes.Controllers{
		Auth:       controllers.NewAuthController(authService),
		Hotels:     controllers.NewHotelController(hotelService),
		Rooms:      controllers.NewRoomController(roomService),
		Bookings:   controllers.NewBookingController(bookingService),
		Facilities: controllers.NewFacilityController(facilityService),
		Images:     controllers.NewImageController(imageService),
	}, authService)

	reminders := tasks.NewScheduler(checkInReminderInterval, bookingService.SendTodayCheckInReminders)
	reminders.Start(ctx)

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("🚀 server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Warn("⚠️ shutdown signal received, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("❌ server forced to shutdown: %v", err)
	}

	// Stop producers before draining the queue.
	cancel()
	worker.Stop()

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logrus.Warnf("⚠️ failed to close redis client: %v", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.Warnf("⚠️ failed to close database: %v", err)
		}
	}

	logrus.Info("✅ server stopped gracefully")
}
