package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikkim/foodreview-backend/config"
	"github.com/ikkim/foodreview-backend/internal/app/controller"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/internal/app/service"
	"github.com/ikkim/foodreview-backend/internal/db"
	"github.com/ikkim/foodreview-backend/internal/middleware"
	"github.com/ikkim/foodreview-backend/internal/router"
	"github.com/ikkim/foodreview-backend/internal/session"
	"github.com/ikkim/foodreview-backend/internal/storage"
	"github.com/ikkim/foodreview-backend/pkg/google"
	"github.com/ikkim/foodreview-backend/pkg/logger"
	pkgredis "github.com/ikkim/foodreview-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		EnableColor: cfg.Server.Environment == "development",
	})

	logger.Info("Starting foodreview backend server", logger.Fields{
		"environment":     cfg.Server.Environment,
		"port":            cfg.Server.Port,
		"db_driver":       cfg.Database.Driver,
		"session_backend": cfg.Session.Backend,
	})

	ctx := context.Background()

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(db.GetDB()); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	tm := repository.NewTransactionManager(db.GetDB())

	// Session store
	var store session.Store
	switch cfg.Session.Backend {
	case "redis":
		client, err := pkgredis.Connect(ctx, &cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", err)
		}
		defer func() {
			if err := pkgredis.Close(client); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
		store = session.NewRedisStore(client, cfg.Session.TTL)
	default:
		store = session.NewCookieStore(cfg.Session.Secret, cfg.Session.TTL)
	}

	// External clients
	googleClient, err := google.NewClient(google.Config{
		UserInfoURL: cfg.Google.UserInfoURL,
		Timeout:     cfg.Google.Timeout,
	})
	if err != nil {
		logger.Fatal("Failed to create Google client", err)
	}

	imageStorage := storage.NewS3Storage(
		ctx,
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize services
	authService := service.NewAuthService(tm, googleClient)
	userService := service.NewUserService(tm)
	sessionService := service.NewSessionService(store, tm)
	restaurantService := service.NewRestaurantService(tm)
	menuService := service.NewMenuService(tm)
	dishService := service.NewDishService(tm)
	reviewService := service.NewReviewService(tm)
	favoriteService := service.NewFavoriteService(tm)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(sessionService, middleware.CookieConfig{
		Name:   cfg.Session.CookieName,
		MaxAge: cfg.Session.TTL,
		Secure: cfg.Session.Secure,
	})
	metrics := middleware.NewMetrics()

	// Initialize controllers
	authController := controller.NewAuthController(authService, userService, authMiddleware)
	userController := controller.NewUserController(userService, authMiddleware)
	restaurantController := controller.NewRestaurantController(restaurantService)
	menuController := controller.NewMenuController(menuService)
	dishController := controller.NewDishController(dishService)
	reviewController := controller.NewReviewController(reviewService)
	favoriteController := controller.NewFavoriteController(favoriteService)
	uploadController := controller.NewUploadController(imageStorage)

	// Setup router
	r := router.NewRouter(
		authController,
		userController,
		restaurantController,
		menuController,
		dishController,
		reviewController,
		favoriteController,
		uploadController,
		authMiddleware,
		metrics,
		cfg,
	)
	engine := r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", logger.Fields{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}

	logger.Info("Server stopped successfully")
}
