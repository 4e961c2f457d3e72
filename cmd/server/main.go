// Command server runs the inventory admin HTTP API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/inventorydb/backend/internal/application/catalog"
	identityapp "github.com/inventorydb/backend/internal/application/identity"
	inventoryapp "github.com/inventorydb/backend/internal/application/inventory"
	"github.com/inventorydb/backend/internal/infrastructure/auth"
	"github.com/inventorydb/backend/internal/infrastructure/cache"
	"github.com/inventorydb/backend/internal/infrastructure/config"
	"github.com/inventorydb/backend/internal/infrastructure/logger"
	"github.com/inventorydb/backend/internal/infrastructure/migration"
	"github.com/inventorydb/backend/internal/infrastructure/persistence"
	"github.com/inventorydb/backend/internal/infrastructure/telemetry"
	"github.com/inventorydb/backend/internal/interfaces/http/handler"
	"github.com/inventorydb/backend/internal/interfaces/http/middleware"
	"github.com/inventorydb/backend/internal/interfaces/http/router"
	"github.com/inventorydb/backend/migrations"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Inventory Admin API
//	@version		1.0
//	@description	Administrative API for categories, products, per-country inventories and stock transactions.

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}

	// Bootstrap logger, used until the log exporter is ready
	bootLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()

	// Telemetry providers
	tp, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	mp, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	lp, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize logger provider", zap.Error(err))
	}

	// Application logger, teed into the OTLP log pipeline when enabled
	log, err := logger.New(logCfg, lp.ZapCore(cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level)))
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting inventory backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Database.SlowQueryThresh)
	db, err := persistence.NewDatabase(&cfg.Database, persistence.WithLogger(gormLog))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		DBName:          cfg.Database.DBName,
		IncludeVars:     cfg.App.Env == "development",
		SlowQueryThresh: cfg.Database.SlowQueryThresh,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		sqlDB, err := db.DB.DB()
		if err != nil {
			log.Fatal("Failed to get sql.DB", zap.Error(err))
		}
		migrator, err := migration.NewFromFS(sqlDB, migrations.FS, log)
		if err != nil {
			log.Fatal("Failed to initialize migrator", zap.Error(err))
		}
		if err := migrator.Up(); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
		// Closing the migrator would close the shared connection pool
	}

	// Rate limit counters
	counter := cache.NewCounter(cfg.Redis, log)
	defer func() {
		if err := counter.Close(); err != nil {
			log.Error("Error closing rate limit counter", zap.Error(err))
		}
	}()

	// Token signing
	keys, err := auth.LoadKeyPair(cfg.JWT)
	if err != nil {
		log.Fatal("Failed to load JWT keys", zap.Error(err))
	}
	tokens := auth.NewTokenService(keys, cfg.JWT.AccessTokenExpiration)

	// Application services
	scope := persistence.NewGormTransactionScope(db.DB)
	adminService := identityapp.NewAdminService(scope, tokens, log)
	categoryService := catalogapp.NewCategoryService(scope, log)
	productService := catalogapp.NewProductService(scope, log)
	inventoryService := inventoryapp.NewInventoryService(scope, log)

	// Business metrics
	businessMetrics, err := telemetry.NewBusinessMetrics(
		mp.Meter(cfg.Telemetry.ServiceName),
		telemetry.NewGormStockProvider(db.DB),
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize business metrics", zap.Error(err))
	}
	adminService.SetBusinessMetrics(businessMetrics)
	inventoryService.SetBusinessMetrics(businessMetrics)
	if mp.IsEnabled() {
		businessMetrics.StartPeriodicCollection(ctx, cfg.Telemetry.MetricsInterval)
	}

	// Continuous profiling
	profiler, err := telemetry.NewProfiler(cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() && tp.IsEnabled() {
		tp.EnableSpanProfiles()
	}

	// HTTP engine
	middleware.SetupValidator()
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		logger.GinMiddleware(log),
		middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     tp.IsEnabled(),
			SkipPaths:   []string{"/health"},
		}),
		middleware.SpanAttributes(),
		middleware.HTTPMetrics(mp.Meter(cfg.Telemetry.ServiceName), log),
		middleware.ProfilingWithConfig(middleware.ProfilingConfig{
			Enabled:   profiler.IsEnabled(),
			SkipPaths: []string{"/health"},
		}),
		middleware.CORSWithConfig(corsCfg),
		middleware.Secure(),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	guards := router.Guards{
		Auth: middleware.BearerAuth(adminService, log),
	}
	if cfg.HTTP.RateLimitEnabled {
		guards.CredentialLimit = middleware.RateLimit(middleware.RateLimitConfig{
			Counter: counter,
			Limit:   cfg.HTTP.RateLimitRequests,
			Window:  cfg.HTTP.RateLimitWindow,
			Logger:  log,
		})
	}

	router.Mount(engine, router.Handlers{
		Admin:     handler.NewAdminHandler(adminService),
		Category:  handler.NewCategoryHandler(categoryService),
		Product:   handler.NewProductHandler(productService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		System:    handler.NewSystemHandler(db, cfg.App.Name, version),
	}, guards)

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	businessMetrics.Stop()
	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}
	if err := mp.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	if err := lp.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down logger provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
