package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	backendClient "nclexfront/internal/frontend/adapters/backend"
	"nclexfront/internal/frontend/adapters/cache"
	credentialsAdapter "nclexfront/internal/frontend/adapters/credentials"
	httpServer "nclexfront/internal/frontend/app/http"
	"nclexfront/internal/frontend/app/services"
	"nclexfront/internal/frontend/app/session"
	"nclexfront/internal/frontend/config"
	"nclexfront/pkg/logger"
	"nclexfront/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "FRONTEND_LOGGER_MODE"
	EnvLoggerLevel = "FRONTEND_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "frontend service started"
	LogServiceShutdownDone = "frontend service shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitBackendClient   = "initializing backend client"
	LogInitCache           = "initializing cache"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		// Инициализация Redis
		log.Info(ctx, LogInitCache)
		redisCache, err := cache.NewRedisCache(ctx, &cfg.Redis)
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitBackendClient, zap.String("base_url", cfg.Backend.BaseURL))
		client := backendClient.NewClient(&cfg.Backend)

		log.Info(ctx, LogInitServices)
		provider := credentialsAdapter.NewCacheProvider(redisCache, cfg.Session.TTL)
		sessions := session.NewManager(client, redisCache, cfg.Session.UserCacheTTL)

		svc := httpServer.Services{
			Auth:      services.NewAuthService(client, client, sessions),
			Security:  services.NewSecurityService(client, sessions),
			Courses:   services.NewCourseService(client),
			Messaging: services.NewMessagingService(client),
			Admin:     services.NewAdminService(client),
			Payments:  services.NewPaymentService(client),
		}

		log.Info(ctx, LogInitHTTPServer)
		app := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			BodyLimit:    cfg.HTTP.BodyLimit,
		})

		httpServer.SetupRouter(app, &cfg.Session, provider, sessions, svc)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := app.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Закрытие Redis соединения.
			func(ctx context.Context) error {
				log.Info(ctx, "Closing Redis connection")
				return redisCache.Close()
			},
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return app.Shutdown()
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
