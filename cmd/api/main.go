package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	campaignUseCase "github.com/launchvest/launchvest/internal/domain/usecase/campaign"
	investmentUseCase "github.com/launchvest/launchvest/internal/domain/usecase/investment"
	reportUseCase "github.com/launchvest/launchvest/internal/domain/usecase/report"
	userUseCase "github.com/launchvest/launchvest/internal/domain/usecase/user"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/handler"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/routes"
	authAdapter "github.com/launchvest/launchvest/internal/infrastructure/adapter/auth"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/cache"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/database"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/events"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/logger"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/repository"
	timeProvider "github.com/launchvest/launchvest/internal/infrastructure/adapter/time"
	"github.com/launchvest/launchvest/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(parseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(&cfg.Database, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories and the unit of work
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	campaignRepo := repository.NewCampaignRepository(dbManager.DB(), appLogger)
	investmentRepo := repository.NewInvestmentRepository(dbManager.DB(), appLogger)
	reviewRepo := repository.NewReviewRepository(dbManager.DB(), appLogger)
	uow := dbManager.CreateUnitOfWork()

	// Optional response cache
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(cfg.Redis, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, response caching disabled", map[string]any{
				"error": err.Error(),
			})
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// Optional event publisher
	var publisher coreport.EventPublisher
	if cfg.RabbitMQ.Enabled {
		rabbitPublisher, err := events.NewRabbitMQPublisher(cfg.RabbitMQ, appLogger)
		if err != nil {
			appLogger.Warn("RabbitMQ unavailable, event publishing disabled", map[string]any{
				"error": err.Error(),
			})
		} else {
			publisher = rabbitPublisher
			defer rabbitPublisher.Close()
		}
	}

	// Auth adapters
	hasher := authAdapter.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := authAdapter.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime, tp)

	// Initialize use cases
	userService := userUseCase.NewUserService(userRepo, hasher, tokens, tp, appLogger)
	campaignService := campaignUseCase.NewCampaignService(campaignRepo, userRepo, reviewRepo, tp, appLogger)
	investmentService := investmentUseCase.NewInvestmentService(uow, investmentRepo, campaignRepo, publisher, tp, appLogger)
	reportService := reportUseCase.NewReportService(userRepo, campaignRepo, investmentRepo, appLogger)

	// Initialize API handlers
	handlers := routes.Handlers{
		Auth:       handler.NewAuthHandler(userService, appLogger),
		User:       handler.NewUserHandler(userService, appLogger),
		Campaign:   handler.NewCampaignHandler(campaignService, appLogger),
		Investment: handler.NewInvestmentHandler(investmentService, appLogger),
		Report:     handler.NewReportHandler(reportService, appLogger),
		Admin:      handler.NewAdminHandler(userService, campaignService, investmentService, reportService, appLogger),
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, handlers, tokens, redisClient, cfg.Redis.TTL, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests first, then drain the campaign queues so
	// no in-flight investment is dropped
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down investment queues...", nil)
	investmentService.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

// parseLogLevel maps the configured level name to a logger level
func parseLogLevel(level string) coreport.LogLevel {
	switch level {
	case "debug":
		return coreport.LogLevelDebug
	case "warn":
		return coreport.LogLevelWarn
	case "error":
		return coreport.LogLevelError
	default:
		return coreport.LogLevelInfo
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missing = append(missing, "database.host")
	}
	if cfg.Database.Port == "" {
		missing = append(missing, "database.port")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database")
	}

	if cfg.Auth.JWTSecret == "" {
		missing = append(missing, "auth.jwtSecret")
	}
	if cfg.Auth.TokenLifetime == 0 {
		missing = append(missing, "auth.tokenLifetime")
	}

	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if cfg.RabbitMQ.Enabled && cfg.RabbitMQ.URL == "" {
		missing = append(missing, "rabbitmq.url")
	}
	if cfg.Redis.Enabled && cfg.Redis.Host == "" {
		missing = append(missing, "redis.host")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}
