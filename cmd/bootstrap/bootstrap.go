package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"advocate-directory/config"
	deliveryHttp "advocate-directory/internal/delivery/http"
	"advocate-directory/internal/delivery/http/handler"
	"advocate-directory/internal/delivery/http/middleware"
	domainRepo "advocate-directory/internal/domain/repository"
	"advocate-directory/internal/infrastructure/cache"
	"advocate-directory/internal/infrastructure/database"
	"advocate-directory/internal/repository"
	"advocate-directory/internal/service"
	"advocate-directory/internal/usecase"
	"advocate-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Warmer      *service.SnapshotWarmer
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	log := logrus.StandardLogger()

	advocateRepo, err := app.initStore(cfg, log)
	if err != nil {
		app.Close()
		return nil, err
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, log, advocateRepo)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initStore selects the record store and wraps it with the Redis snapshot cache when enabled
func (app *App) initStore(cfg *config.Config, log *logrus.Logger) (domainRepo.AdvocateRepository, error) {
	var advocateRepo domainRepo.AdvocateRepository

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := OpenDatabase(cfg.DB)
		if err != nil {
			return nil, err
		}
		app.DB = db
		advocateRepo = repository.NewAdvocateRepository(db)
	case config.StoreDriverSeed, "":
		advocateRepo = repository.NewSeedAdvocateRepository()
		logrus.Info("Serving built-in seed directory")
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		logrus.Info("Redis connected successfully")

		cached := repository.NewCachedAdvocateRepository(advocateRepo, cache.NewSnapshotCache(redisClient), cfg.Store.CacheTTL, log)
		app.Warmer = service.NewSnapshotWarmer(cached, log, cfg.Store.CacheTTL/2)
		app.Warmer.Start(context.Background())
		advocateRepo = cached
	}

	return advocateRepo, nil
}

// OpenDatabase connects to PostgreSQL and migrates the advocates table
func OpenDatabase(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	logrus.Info("Database connected successfully")
	return db, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, advocateRepo domainRepo.AdvocateRepository) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	advocateUsecase := usecase.NewAdvocateUsecase(log, advocateRepo, customValidator)

	// Initialize handlers
	advocateHandler := handler.NewAdvocateHandler(log, advocateUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLogMiddleware := middleware.NewRequestLogMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(advocateHandler, corsMiddleware, requestLogMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Stop background snapshot refresh
	if app.Warmer != nil {
		app.Warmer.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
