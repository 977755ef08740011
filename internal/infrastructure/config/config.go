package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/spf13/viper"
)

// Config is the service configuration. Keys follow the mapstructure tags,
// grouped by section: database.max_open_conns, shipping.weight_unit, ...
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Shipping  ShippingConfig  `mapstructure:"shipping"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Swagger   SwaggerConfig   `mapstructure:"swagger"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
	Output string `mapstructure:"output"` // stdout, stderr, or file path
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // minutes
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // minutes
}

// RedisConfig locates the setting cache and rate limiter store.
// An empty Host keeps both in process memory.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type HTTPConfig struct {
	ReadTimeout      time.Duration `mapstructure:"read_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
	IdleTimeout      time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes   int           `mapstructure:"max_header_bytes"`
	MaxBodySize      int64         `mapstructure:"max_body_size"`
	CORSAllowOrigins []string      `mapstructure:"cors_allow_origins"`
	TrustedProxies   []string      `mapstructure:"trusted_proxies"`
	// RequestTimeout bounds handler work per request; 0 disables it.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// RateLimitRequests per client per RateLimitWindow; 0 disables limiting.
	RateLimitRequests int           `mapstructure:"rate_limit_requests"`
	RateLimitWindow   time.Duration `mapstructure:"rate_limit_window"`
}

// TelemetryConfig covers the OTLP exporters and Pyroscope.
type TelemetryConfig struct {
	Enabled           bool          `mapstructure:"enabled"` // traces
	MetricsEnabled    bool          `mapstructure:"metrics_enabled"`
	LogsEnabled       bool          `mapstructure:"logs_enabled"`
	CollectorEndpoint string        `mapstructure:"collector_endpoint"`
	SamplingRatio     float64       `mapstructure:"sampling_ratio"`
	ServiceName       string        `mapstructure:"service_name"`
	Insecure          bool          `mapstructure:"insecure"`
	DBTraceEnabled    bool          `mapstructure:"db_trace_enabled"`
	DBLogFullSQL      bool          `mapstructure:"db_log_full_sql"`
	MetricsInterval   time.Duration `mapstructure:"metrics_interval"`

	ProfilingEnabled       bool   `mapstructure:"profiling_enabled"`
	ProfilingServerAddress string `mapstructure:"profiling_server_address"`
	// ProfilingSpanProfiles labels CPU samples with span ids; needs tracing on.
	ProfilingSpanProfiles bool `mapstructure:"profiling_span_profiles"`
}

// AuthConfig holds the bearer token settings for the HTTP API.
// With Enabled false every route is open, which is only allowed outside production.
type AuthConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Secret          string        `mapstructure:"secret"`
	Issuer          string        `mapstructure:"issuer"`
	TokenExpiration time.Duration `mapstructure:"token_expiration"`
}

type SwaggerConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	RequireAuth bool `mapstructure:"require_auth"`
	// AllowedIPs are addresses or CIDR ranges; empty allows everyone.
	AllowedIPs []string `mapstructure:"allowed_ips"`
}

// ShippingConfig holds the rating engine settings
type ShippingConfig struct {
	SystemName              string        `mapstructure:"system_name"`
	WeightByTotalEnabled    bool          `mapstructure:"weight_by_total_enabled"`
	LimitMethodsToCreated   bool          `mapstructure:"limit_methods_to_created"`
	DisplayCutOffTime       bool          `mapstructure:"display_cutoff_time"`
	InternationalOperations bool          `mapstructure:"international_operations"`
	TestMode                bool          `mapstructure:"test_mode"`
	WeightUnit              string        `mapstructure:"weight_unit"`
	DimensionUnit           string        `mapstructure:"dimension_unit"`
	PackagingMethod         string        `mapstructure:"packaging_method"`
	SettingCacheTTL         time.Duration `mapstructure:"setting_cache_ttl"`
	// Integrations is parsed from shipping.integrations after decoding.
	Integrations []shipping.CarrierKind `mapstructure:"-"`
}

// Policy converts the configuration into the engine's parameter object.
func (s ShippingConfig) Policy() shipping.Policy {
	return shipping.Policy{
		SystemName:            s.SystemName,
		WeightByTotalEnabled:  s.WeightByTotalEnabled,
		LimitMethodsToCreated: s.LimitMethodsToCreated,
		DisplayCutOffTime:     s.DisplayCutOffTime,
		IgnoreRegion:          s.InternationalOperations,
		TestMode:              s.TestMode,
		Integrations:          append([]shipping.CarrierKind(nil), s.Integrations...),
		WeightUnit:            s.WeightUnit,
		DimensionUnit:         s.DimensionUnit,
		Packaging:             shipping.PackagingMethod(s.PackagingMethod),
	}
}

// defaults registers every key with viper. AutomaticEnv only reaches
// Unmarshal for keys viper already knows about.
var defaults = map[string]any{
	"app.name": "shipping-rates",
	"app.env":  "development",
	"app.port": "8080",

	"database.host":               "localhost",
	"database.port":               5432,
	"database.user":               "postgres",
	"database.password":           "",
	"database.dbname":             "shipping",
	"database.sslmode":            "disable",
	"database.max_open_conns":     25,
	"database.max_idle_conns":     5,
	"database.conn_max_lifetime":  60,
	"database.conn_max_idle_time": 30,

	"redis.host":     "",
	"redis.port":     6379,
	"redis.password": "",
	"redis.db":       0,

	"log.level":  "info",
	"log.format": "console",
	"log.output": "stdout",

	"http.read_timeout":        "15s",
	"http.write_timeout":       "15s",
	"http.idle_timeout":        "60s",
	"http.shutdown_timeout":    "30s",
	"http.max_header_bytes":    1 << 20,
	"http.max_body_size":       1 << 20,
	"http.cors_allow_origins":  []string{},
	"http.trusted_proxies":     []string{},
	"http.request_timeout":     "10s",
	"http.rate_limit_requests": 600,
	"http.rate_limit_window":   "1m",

	"telemetry.enabled":                  false,
	"telemetry.metrics_enabled":          false,
	"telemetry.logs_enabled":             false,
	"telemetry.collector_endpoint":       "localhost:4317",
	"telemetry.sampling_ratio":           1.0,
	"telemetry.service_name":             "shipping-rates",
	"telemetry.insecure":                 false,
	"telemetry.db_trace_enabled":         false,
	"telemetry.db_log_full_sql":          false,
	"telemetry.metrics_interval":         "60s",
	"telemetry.profiling_enabled":        false,
	"telemetry.profiling_server_address": "",
	"telemetry.profiling_span_profiles":  false,

	"shipping.system_name":              shipping.DefaultSystemName,
	"shipping.weight_by_total_enabled":  true,
	"shipping.limit_methods_to_created": false,
	"shipping.display_cutoff_time":      false,
	"shipping.international_operations": false,
	"shipping.test_mode":                false,
	"shipping.weight_unit":              "KG",
	"shipping.dimension_unit":           "CM",
	"shipping.packaging_method":         string(shipping.PackagingCubeRoot),
	"shipping.integrations":             []string{},
	"shipping.setting_cache_ttl":        "5m",

	"auth.enabled":          false,
	"auth.secret":           "",
	"auth.issuer":           "shipping-rates",
	"auth.token_expiration": "24h",

	"swagger.enabled":      true,
	"swagger.require_auth": false,
	"swagger.allowed_ips":  []string{},
}

// Load reads config.toml from the working directory or /app, then lets
// SHIP_ environment variables override it (SHIP_DATABASE_PASSWORD sets
// database.password). A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("SHIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	integrations, err := shipping.ParseCarrierKinds(splitList(v.GetStringSlice("shipping.integrations")))
	if err != nil {
		return nil, fmt.Errorf("shipping.integrations: %w", err)
	}
	cfg.Shipping.Integrations = integrations
	cfg.HTTP.CORSAllowOrigins = splitList(cfg.HTTP.CORSAllowOrigins)
	cfg.HTTP.TrustedProxies = splitList(cfg.HTTP.TrustedProxies)
	cfg.Swagger.AllowedIPs = splitList(cfg.Swagger.AllowedIPs)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList accepts both TOML arrays and comma separated env values
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.App.Env == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
		if c.Telemetry.DBLogFullSQL {
			return fmt.Errorf("telemetry.db_log_full_sql must be false in production")
		}
		if c.Shipping.TestMode {
			return fmt.Errorf("shipping.test_mode must be false in production")
		}
		if !c.Auth.Enabled {
			return fmt.Errorf("auth.enabled must be true in production")
		}
		if len(c.Auth.Secret) < 32 {
			return fmt.Errorf("auth.secret must be at least 32 characters in production")
		}
		// Swagger must be disabled OR protected in production
		if c.Swagger.Enabled && !c.Swagger.RequireAuth && len(c.Swagger.AllowedIPs) == 0 {
			return fmt.Errorf("swagger endpoint must be disabled, require authentication, or have IP restriction in production")
		}
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		return fmt.Errorf("auth.secret is required when auth is enabled")
	}
	if c.Swagger.RequireAuth && !c.Auth.Enabled {
		return fmt.Errorf("swagger.require_auth needs auth.enabled")
	}
	if c.HTTP.RateLimitRequests < 0 {
		return fmt.Errorf("http.rate_limit_requests cannot be negative")
	}
	if c.HTTP.RequestTimeout < 0 {
		return fmt.Errorf("http.request_timeout cannot be negative")
	}

	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}
	if c.Telemetry.ProfilingEnabled && c.Telemetry.ProfilingServerAddress == "" {
		return fmt.Errorf("telemetry.profiling_server_address is required when profiling is enabled")
	}

	// Fail at startup rather than on the first checkout
	if _, err := shipping.NewMeasureConverter(c.Shipping.Policy()); err != nil {
		return fmt.Errorf("shipping units: %w", err)
	}

	return nil
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
