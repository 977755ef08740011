package main

import (
	shippingapp "github.com/erp/shipping/internal/application/shipping"
	"github.com/erp/shipping/internal/infrastructure/auth"
	"github.com/erp/shipping/internal/infrastructure/cache"
	"github.com/erp/shipping/internal/infrastructure/config"
	"github.com/erp/shipping/internal/infrastructure/logger"
	"github.com/erp/shipping/internal/interfaces/http/handler"
	"github.com/erp/shipping/internal/interfaces/http/middleware"
	"github.com/erp/shipping/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const version = "1.0.0"

// services groups everything the HTTP layer needs
type services struct {
	db      handler.Pinger
	rating  *shippingapp.RatingService
	records *shippingapp.RateRecordService
	catalog *shippingapp.CatalogService
	jwt     *auth.JWTService
	limiter cache.RateLimiter
	meter   metric.Meter // nil disables HTTP metrics
}

// newEngine builds the gin engine with the full middleware chain and routes
func newEngine(cfg *config.Config, svc services, log *zap.Logger) (*gin.Engine, *router.Router) {
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Tracing sits before every middleware that can abort
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log, "/health"))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
		SkipPaths:   []string{"/health", "/metrics"},
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig(cfg.HTTP.CORSAllowOrigins...)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))

	engine.GET("/health", handler.NewHealthHandler(svc.db).Check)

	var swaggerAuth gin.HandlerFunc
	if cfg.Auth.Enabled {
		swaggerAuth = middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			JWTService: svc.jwt,
			Logger:     log,
		})
	}
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger, swaggerAuth),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	if cfg.Auth.Enabled {
		r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			JWTService: svc.jwt,
			SkipPaths: []string{
				"/api/v1/system/ping",
				"/api/v1/system/info",
			},
			Logger: log,
		}))
	} else {
		log.Warn("Authentication disabled, every route is open")
	}
	r.Use(middleware.TracingAttributeInjector())
	if cfg.Telemetry.ProfilingEnabled {
		r.Use(middleware.Profiling())
	}
	if svc.meter != nil {
		r.Use(middleware.HTTPMetricsWithMeter(svc.meter, true))
	}
	if svc.limiter != nil {
		r.Use(middleware.RateLimit(svc.limiter))
	}

	registerRoutes(r, cfg, svc, log)
	r.Setup()
	return engine, r
}

// registerRoutes declares the API. Rating routes need the rate scope and
// administration routes the admin scope; scopes are only enforced with auth on.
func registerRoutes(r *router.Router, cfg *config.Config, svc services, log *zap.Logger) {
	scope := func(name string) []gin.HandlerFunc {
		if !cfg.Auth.Enabled {
			return nil
		}
		return []gin.HandlerFunc{middleware.RequireScopeWithConfig(name, middleware.ScopeConfig{Logger: log})}
	}

	shippingHandler := handler.NewShippingHandler(svc.rating)
	rating := router.NewDomainGroup("rating", "/shipping").Use(scope(auth.ScopeRate)...)
	rating.POST("/options", shippingHandler.GetShippingOptions)
	rating.POST("/fixed-rate", shippingHandler.GetFixedRate)

	recordHandler := handler.NewRateRecordHandler(svc.records)
	catalogHandler := handler.NewCatalogHandler(svc.catalog)
	admin := router.NewDomainGroup("shipping-admin", "/shipping").Use(scope(auth.ScopeAdmin)...)
	admin.GET("/rate-records", recordHandler.List).
		POST("/rate-records", recordHandler.Create).
		GET("/rate-records/:id", recordHandler.GetByID).
		PUT("/rate-records/:id", recordHandler.Update).
		DELETE("/rate-records/:id", recordHandler.Delete)
	admin.GET("/carriers", catalogHandler.ListCarriers).
		POST("/carriers", catalogHandler.CreateCarrier).
		GET("/carriers/:id", catalogHandler.GetCarrier)
	admin.GET("/methods", catalogHandler.ListShippingMethods).
		POST("/methods", catalogHandler.CreateShippingMethod)
	admin.GET("/cutoff-times", catalogHandler.ListCutOffTimes).
		POST("/cutoff-times", catalogHandler.CreateCutOffTime)
	admin.GET("/warehouses", catalogHandler.ListWarehouses).
		POST("/warehouses", catalogHandler.CreateWarehouse)
	admin.GET("/fixed-rates", catalogHandler.GetFixedRate).
		PUT("/fixed-rates", catalogHandler.SetFixedRate)

	systemHandler := handler.NewSystemHandler(cfg.App.Name, version)
	system := router.NewDomainGroup("system", "/system")
	system.GET("/info", systemHandler.GetSystemInfo)
	system.GET("/ping", systemHandler.Ping)

	r.Register(rating).Register(admin).Register(system)
}
