package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-doctor-appointment/config"
	deliveryHttp "go-doctor-appointment/internal/delivery/http"
	"go-doctor-appointment/internal/delivery/http/handler"
	"go-doctor-appointment/internal/delivery/http/middleware"
	domainRepo "go-doctor-appointment/internal/domain/repository"
	"go-doctor-appointment/internal/infrastructure/cache"
	"go-doctor-appointment/internal/infrastructure/database"
	"go-doctor-appointment/internal/repository"
	"go-doctor-appointment/internal/service"
	"go-doctor-appointment/internal/usecase"
	"go-doctor-appointment/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// startupTimeout bounds the initial catalog fetch and ledger load
const startupTimeout = 15 * time.Second

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	DB           *gorm.DB
	RedisClient  *redis.Client
	Server       *http.Server
	Appointments usecase.AppointmentUsecase
	Doctors      usecase.DoctorUsecase
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	log := logrus.StandardLogger()

	// Initialize the appointment store
	store, err := app.initializeStore(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	slotCache, err := service.NewSlotCache(cfg.Slot.CacheSize, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create slot cache: %w", err)
	}

	source := repository.NewHTTPDoctorSource(cfg.DoctorSource.URL, cfg.DoctorSource.Timeout)

	// Initialize usecases
	app.Appointments = usecase.NewAppointmentUsecase(log, store)
	app.Doctors = usecase.NewDoctorUsecase(log, source, slotCache, cfg.Slot.Duration)

	app.seed()

	app.Server = initializeServer(cfg, log, app.Doctors, app.Appointments)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeStore connects the backend selected by STORAGE_DRIVER
func (app *App) initializeStore(cfg *config.Config) (domainRepo.AppointmentStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		return repository.NewRedisAppointmentStore(redisClient, cfg.Storage.Key), nil

	case config.StorageDriverPostgres:
		db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		if err := repository.MigrateKeyValues(db); err != nil {
			return nil, fmt.Errorf("failed to migrate key_values: %w", err)
		}
		return repository.NewPostgresAppointmentStore(db, cfg.Storage.Key), nil

	case config.StorageDriverMemory:
		logrus.Warn("Using in-memory appointment store, bookings will not survive a restart")
		return repository.NewMemoryAppointmentStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// seed loads persisted appointments and the doctor catalog concurrently.
// Neither failure is fatal: the ledger falls back to empty and the catalog
// can be refetched through the refresh endpoint.
func (app *App) seed() {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		app.Appointments.LoadAppointments(ctx)
		return nil
	})
	g.Go(func() error {
		if _, err := app.Doctors.ListDoctors(ctx); err != nil {
			logrus.Warnf("Doctor catalog unavailable at startup: %+v", err)
		}
		return nil
	})
	g.Wait()
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, doctors usecase.DoctorUsecase, appointments usecase.AppointmentUsecase) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctors, appointments)
	appointmentHandler := handler.NewAppointmentHandler(appointments, doctors, customValidator)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, appointmentHandler, loggingMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
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
