package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler reports process-level facts about the running service.
type SystemHandler struct {
	BaseHandler
	name    string
	version string
	started time.Time
}

func NewSystemHandler(name, version string) *SystemHandler {
	return &SystemHandler{name: name, version: version, started: time.Now()}
}

// SystemInfoResponse describes the running binary
// @name HandlerSystemInfoResponse
type SystemInfoResponse struct {
	Name       string `json:"name" example:"shipping-rates"`
	Version    string `json:"version" example:"1.0.0"`
	GoVersion  string `json:"go_version" example:"go1.25.5"`
	StartedAt  string `json:"started_at" example:"2026-01-23T12:00:00Z"`
	Uptime     string `json:"uptime" example:"1h30m45s"`
	Goroutines int    `json:"goroutines" example:"12"`
}

// PingResponse
// @name HandlerPingResponse
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2026-01-23T12:00:00Z"`
}

// GetSystemInfo godoc
// @ID           getSystemInfo
// @Summary      Service information
// @Description  Name, build version and uptime of the rating service
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfoResponse]
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:       h.name,
		Version:    h.version,
		GoVersion:  runtime.Version(),
		StartedAt:  h.started.UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.started).Round(time.Second).String(),
		Goroutines: runtime.NumGoroutine(),
	})
}

// Ping godoc
// @ID           pingSystem
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[PingResponse]
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{Message: "pong", Timestamp: time.Now().UTC().Format(time.RFC3339)})
}
