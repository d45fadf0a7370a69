package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Mrwowow/WaoCard-Landing/internal/auth"
	"github.com/Mrwowow/WaoCard-Landing/internal/config"
	"github.com/Mrwowow/WaoCard-Landing/internal/events"
	"github.com/Mrwowow/WaoCard-Landing/internal/handlers"
	"github.com/Mrwowow/WaoCard-Landing/internal/waocard"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	// Optional redis-backed cache for upstream tokens and the event
	// collection. The site works without it; every render then pays a
	// full upstream round-trip.
	var cache events.Cache
	if cfg.Redis.Enabled {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Fatal("Error parsing Redis URL", zap.Error(err))
		}
		redisClient := redis.NewClient(redisOpts)
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		logger.Info("Connected to Redis", zap.String("url", cfg.Redis.URL))
		cache = events.NewRedisCache(redisClient)
	} else {
		logger.Info("Redis cache disabled; fetching upstream on every render")
	}

	// Upstream gateway client
	gateway := waocard.NewClient(waocard.Config{
		BaseURL:   cfg.Upstream.BaseURL,
		ServerKey: cfg.Upstream.ServerKey,
		Username:  cfg.Upstream.Username,
		Password:  cfg.Upstream.Password,
		Timeout:   cfg.Upstream.Timeout,
		Retries:   cfg.Upstream.Retries,
	}, logger)

	eventService := events.NewService(gateway, cache, cfg.Site.CacheTTL, logger)
	authenticator := auth.NewJWTAuthenticator(cfg.Session.Secret, cfg.Session.Expiration, logger)

	// Set Gin mode
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	r := gin.New()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(handlers.CORSMiddleware())

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	pages := handlers.NewPages(eventService, authenticator, cfg.Site.CanonicalURL, logger)
	api := handlers.NewAPI(eventService, logger)

	// Page routes
	r.GET("/", pages.Home)
	r.GET("/events", pages.EventsIndex)
	r.GET("/events/:id", pages.EventDetail)
	r.GET("/events/:id/qr.png", pages.EventQR)
	r.POST("/events/:id/attendance", pages.Attendance)
	r.POST("/login", pages.Login)
	r.POST("/logout", pages.Logout)

	// JSON API consumed by the page scripts
	apiRoutes := r.Group("/api")
	{
		apiRoutes.GET("/events", api.ListEvents)
		apiRoutes.GET("/events/:id/countdown", api.EventCountdown)
	}

	r.GET("/health", handlers.Health)

	// Start server
	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("Starting WaoCard web server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func initLogger(level string) *zap.Logger {
	var logLevel zapcore.Level
	switch level {
	case "debug":
		logLevel = zap.DebugLevel
	case "info":
		logLevel = zap.InfoLevel
	case "warn":
		logLevel = zap.WarnLevel
	case "error":
		logLevel = zapcore.ErrorLevel
	default:
		logLevel = zap.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	return logger
}
