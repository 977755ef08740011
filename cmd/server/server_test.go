package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	shippingapp "github.com/erp/shipping/internal/application/shipping"
	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/erp/shipping/internal/infrastructure/auth"
	"github.com/erp/shipping/internal/infrastructure/config"
	"github.com/erp/shipping/internal/infrastructure/persistence"
	"github.com/erp/shipping/internal/infrastructure/persistence/models"
	"github.com/erp/shipping/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(authEnabled bool) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "shipping-rates", Env: "test", Port: "0"},
		HTTP: config.HTTPConfig{
			MaxBodySize:    1 << 20,
			RequestTimeout: 5 * time.Second,
		},
		Telemetry: config.TelemetryConfig{ServiceName: "shipping-rates"},
		Auth: config.AuthConfig{
			Enabled:         authEnabled,
			Secret:          "test-secret-with-enough-entropy-0123456789",
			Issuer:          "shipping-rates",
			TokenExpiration: time.Hour,
		},
	}
}

func newTestServices(t *testing.T, cfg *config.Config) services {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.All()...))
	t.Cleanup(func() { _ = sqlDB.Close() })

	recordRepo := persistence.NewGormRateRecordRepository(db)
	carrierRepo := persistence.NewGormCarrierRepository(db)
	methodRepo := persistence.NewGormShippingMethodRepository(db)
	cutOffRepo := persistence.NewGormCutOffTimeRepository(db)
	warehouseRepo := persistence.NewGormWarehouseRepository(db)
	settingRepo := persistence.NewGormSettingRepository(db)

	policy := shipping.DefaultPolicy()
	rating, err := shippingapp.NewRatingService(recordRepo, carrierRepo, methodRepo, cutOffRepo, warehouseRepo, settingRepo, policy, nil)
	require.NoError(t, err)

	return services{
		db:      sqlDB,
		rating:  rating,
		records: shippingapp.NewRateRecordService(recordRepo, carrierRepo, methodRepo, nil),
		catalog: shippingapp.NewCatalogService(carrierRepo, methodRepo, cutOffRepo, warehouseRepo, settingRepo, policy.SystemName, nil),
		jwt:     auth.NewJWTService(cfg.Auth),
	}
}

func send(engine *gin.Engine, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func issue(t *testing.T, svc services, scopes ...string) string {
	t.Helper()
	tok, err := svc.jwt.GenerateToken(auth.GenerateTokenInput{ClientID: "checkout", Scopes: scopes})
	require.NoError(t, err)
	return tok.Token
}

func TestNewEngine_Health(t *testing.T) {
	cfg := testConfig(false)
	engine, _ := newEngine(cfg, newTestServices(t, cfg), zap.NewNop())

	w := send(engine, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewEngine_Routes(t *testing.T) {
	cfg := testConfig(false)
	_, r := newEngine(cfg, newTestServices(t, cfg), zap.NewNop())

	routes := r.Routes()
	expected := []router.RouteInfo{
		{Group: "rating", Method: http.MethodPost, Path: "/api/v1/shipping/options"},
		{Group: "rating", Method: http.MethodPost, Path: "/api/v1/shipping/fixed-rate"},
		{Group: "shipping-admin", Method: http.MethodGet, Path: "/api/v1/shipping/rate-records"},
		{Group: "shipping-admin", Method: http.MethodDelete, Path: "/api/v1/shipping/rate-records/:id"},
		{Group: "shipping-admin", Method: http.MethodPut, Path: "/api/v1/shipping/fixed-rates"},
		{Group: "system", Method: http.MethodGet, Path: "/api/v1/system/ping"},
	}
	for _, route := range expected {
		assert.Contains(t, routes, route)
	}
	assert.Len(t, routes, 20)
}

func TestNewEngine_AuthDisabled(t *testing.T) {
	cfg := testConfig(false)
	engine, _ := newEngine(cfg, newTestServices(t, cfg), zap.NewNop())

	w := send(engine, http.MethodGet, "/api/v1/shipping/carriers", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = send(engine, http.MethodPost, "/api/v1/shipping/fixed-rate", "", `{}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"configured":false`)
}

func TestNewEngine_AuthEnabled(t *testing.T) {
	cfg := testConfig(true)
	svc := newTestServices(t, cfg)
	engine, _ := newEngine(cfg, svc, zap.NewNop())

	t.Run("missing token", func(t *testing.T) {
		w := send(engine, http.MethodGet, "/api/v1/shipping/carriers", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("public system routes", func(t *testing.T) {
		w := send(engine, http.MethodGet, "/api/v1/system/ping", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rate scope cannot administer", func(t *testing.T) {
		token := issue(t, svc, auth.ScopeRate)
		w := send(engine, http.MethodGet, "/api/v1/shipping/carriers", token, "")
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = send(engine, http.MethodPost, "/api/v1/shipping/fixed-rate", token, `{}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin scope also rates", func(t *testing.T) {
		token := issue(t, svc, auth.ScopeAdmin)
		w := send(engine, http.MethodGet, "/api/v1/shipping/carriers", token, "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = send(engine, http.MethodPost, "/api/v1/shipping/fixed-rate", token, `{}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("token without scopes", func(t *testing.T) {
		token := issue(t, svc)
		w := send(engine, http.MethodPost, "/api/v1/shipping/fixed-rate", token, `{}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestNewEngine_SwaggerDisabled(t *testing.T) {
	cfg := testConfig(false)
	engine, _ := newEngine(cfg, newTestServices(t, cfg), zap.NewNop())

	w := send(engine, http.MethodGet, "/swagger/index.html", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewEngine_SwaggerEnabled(t *testing.T) {
	cfg := testConfig(false)
	cfg.Swagger.Enabled = true
	engine, _ := newEngine(cfg, newTestServices(t, cfg), zap.NewNop())

	w := send(engine, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/shipping/options")
}
