package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	shippingapp "github.com/erp/shipping/internal/application/shipping"
	"github.com/erp/shipping/internal/infrastructure/auth"
	"github.com/erp/shipping/internal/infrastructure/cache"
	"github.com/erp/shipping/internal/infrastructure/config"
	"github.com/erp/shipping/internal/infrastructure/logger"
	"github.com/erp/shipping/internal/infrastructure/persistence"
	"github.com/erp/shipping/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/erp/shipping/docs"
)

//	@title			Shipping Rates API
//	@version		1.0
//	@description	Matches shipments against configured rate records and prices every available shipping method.

//	@contact.name	API Support
//	@contact.url	https://github.com/erp/shipping

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: logger.DefaultTimeFormat,
		Service:    cfg.App.Name,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx := context.Background()

	// Telemetry
	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	lp, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	log = lp.Bridge(log, zapcore.InfoLevel)

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Telemetry.ProfilingEnabled,
		ServerAddress:   cfg.Telemetry.ProfilingServerAddress,
		ApplicationName: cfg.Telemetry.ServiceName,
		Tags:            map[string]string{"env": cfg.App.Env},
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if cfg.Telemetry.ProfilingSpanProfiles && profiler.IsEnabled() {
		tp.EnableSpanProfiles()
	}

	log.Info("Starting shipping rates service",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.Bool("weight_by_total", cfg.Shipping.WeightByTotalEnabled),
		zap.Bool("auth", cfg.Auth.Enabled),
	)

	// Database
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:    cfg.Telemetry.DBTraceEnabled,
		LogFullSQL: cfg.Telemetry.DBLogFullSQL,
	}, log)
	if err := dbTracing.Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	dbMetrics, err := telemetry.RegisterDBMetrics(db.DB, mp, telemetry.DBMetricsConfig{}, log)
	if err != nil {
		log.Fatal("Failed to register database metrics", zap.Error(err))
	}
	if dbMetrics != nil {
		defer func() { _ = dbMetrics.Close() }()
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatal("Failed to get sql.DB", zap.Error(err))
	}
	log.Info("Database connected")

	// Repositories
	recordRepo := persistence.NewGormRateRecordRepository(db.DB)
	carrierRepo := persistence.NewGormCarrierRepository(db.DB)
	methodRepo := persistence.NewGormShippingMethodRepository(db.DB)
	cutOffRepo := persistence.NewGormCutOffTimeRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB)

	settings, err := cache.NewSettingCacheFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithCacheOptions(cache.WithTTL(cfg.Shipping.SettingCacheTTL)),
	).Create(settingRepo)
	if err != nil {
		log.Fatal("Failed to create setting cache", zap.Error(err))
	}
	defer func() {
		if err := settings.Close(); err != nil {
			log.Error("Error closing setting cache", zap.Error(err))
		}
	}()

	// Application services
	policy := cfg.Shipping.Policy()
	ratingService, err := shippingapp.NewRatingService(
		recordRepo, carrierRepo, methodRepo, cutOffRepo, warehouseRepo, settings, policy, log,
	)
	if err != nil {
		log.Fatal("Invalid rating policy", zap.Error(err))
	}
	svc := services{
		db:      sqlDB,
		rating:  ratingService,
		records: shippingapp.NewRateRecordService(recordRepo, carrierRepo, methodRepo, log),
		catalog: shippingapp.NewCatalogService(carrierRepo, methodRepo, cutOffRepo, warehouseRepo, settings, policy.SystemName, log),
		jwt:     auth.NewJWTService(cfg.Auth),
	}
	if mp.IsEnabled() {
		ratingMetrics, err := telemetry.NewRatingMetrics(mp.Meter("shipping.rating"), log)
		if err != nil {
			log.Fatal("Failed to create rating metrics", zap.Error(err))
		}
		ratingService.SetRatingMetrics(ratingMetrics)
		svc.meter = mp.Meter("http.server")
	}
	if cfg.HTTP.RateLimitRequests > 0 {
		svc.limiter = cache.NewRateLimiter(cfg.Redis, cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow, log)
		defer func() {
			_ = svc.limiter.Close()
		}()
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine, r := newEngine(cfg, svc, log)
	for _, route := range r.Routes() {
		log.Debug("Route registered",
			zap.String("group", route.Group),
			zap.String("method", route.Method),
			zap.String("path", route.Path),
		)
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
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
