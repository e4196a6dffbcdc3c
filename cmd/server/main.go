package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	_ "github.com/lamsaclean/backoffice-api/docs"
	"github.com/lamsaclean/backoffice-api/internal/api"
	"github.com/lamsaclean/backoffice-api/internal/core/service"
	"github.com/lamsaclean/backoffice-api/internal/infrastructure/db/redis"
	"github.com/lamsaclean/backoffice-api/internal/infrastructure/jsonstore"
	"github.com/lamsaclean/backoffice-api/internal/infrastructure/queue"
	"github.com/lamsaclean/backoffice-api/internal/pkg/config"
	"github.com/lamsaclean/backoffice-api/pkg/logger"
)

const (
	tokenTTL        = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

// @title Lamsa Clean Back-Office API
// @version 1.0
// @description Administration and public site API for the Lamsa Clean website.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Optional .env for local development; the environment wins in deployment.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		if cfg.Env != "development" {
			log.Fatal().Msg("JWT_SECRET is required outside development")
		}
		jwtSecret = "dev-only-insecure-secret"
		log.Warn().Msg("JWT_SECRET not set, using insecure development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storeOpts := jsonstore.Options{
		Dir:           cfg.DataDir,
		RelaxedWrites: cfg.RelaxedWrites,
		Logger:        log,
	}

	authRepo := jsonstore.NewAuthRepository(storeOpts, cfg.AdminPassword)
	customerRepo := jsonstore.NewCustomerRepository(storeOpts)
	messageRepo := jsonstore.NewMessageRepository(storeOpts)
	notificationRepo := jsonstore.NewNotificationRepository(storeOpts)
	settingsRepo := jsonstore.NewSettingsRepository(storeOpts)
	contentRepo := jsonstore.NewContentRepository(storeOpts)
	paletteRepo := jsonstore.NewPaletteRepository(storeOpts)

	redisClient := connectRedis(ctx, cfg, log)
	var loginLimiter service.LoginLimiter
	if redisClient != nil {
		loginLimiter = redis.NewLoginLimiter(redisClient)
	}

	authService := service.NewAuthService(authRepo, loginLimiter, jwtSecret, tokenTTL, log)
	customerService := service.NewCustomerService(customerRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, log)

	dispatcher := queue.NewDispatcher(0, notificationService, log)
	dispatcher.Start(ctx)

	messageService := service.NewMessageService(messageRepo, dispatcher, log)
	settingsService := service.NewSettingsService(settingsRepo, log)
	contentService := service.NewContentService(contentRepo, paletteRepo, log)
	reportService := service.NewReportService(customerRepo, messageRepo, notificationRepo)

	e := api.NewRouter(api.Deps{
		Log:           log,
		JWTSecret:     jwtSecret,
		SecureCookies: cfg.Env == "production",
		DataDir:       cfg.DataDir,
		RelaxedWrites: cfg.RelaxedWrites,
		Redis:         redisClient,

		AuthService:   authService,
		AuthRepo:      authRepo,
		Customers:     customerService,
		Messages:      messageService,
		Notifications: notificationService,
		Settings:      settingsService,
		Content:       contentService,
		Reports:       reportService,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	log.Info().Msg("server stopped")
}

// connectRedis establishes the optional Redis connection. A connection
// failure disables the rate limiter rather than aborting startup.
func connectRedis(ctx context.Context, cfg *config.Config, log zerolog.Logger) *redisv9.Client {
	if !cfg.Redis.Enabled {
		return nil
	}
	client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, login rate limiting disabled")
		return nil
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	return client
}
