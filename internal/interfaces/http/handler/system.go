package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	appprocurement "github.com/erp/mockerp/internal/application/procurement"
)

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	appName     string
	appVersion  string
	startTime   time.Time
	procurement *appprocurement.Service
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(appName, appVersion string, procurement *appprocurement.Service) *SystemHandler {
	return &SystemHandler{
		appName:     appName,
		appVersion:  appVersion,
		startTime:   time.Now(),
		procurement: procurement,
	}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	system.GET("/ping", h.Ping)
	system.GET("/info", h.GetSystemInfo)
	system.POST("/reset", h.Reset)
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GetSystemInfo returns basic system information including version and uptime
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      h.appName,
		Version:   h.appVersion,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping checks if the API is responsive
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// ResetResponse confirms a document store reset
type ResetResponse struct {
	Message string `json:"message"`
}

// Reset clears all procure-to-pay documents and number sequences.
// Material master data is left intact.
func (h *SystemHandler) Reset(c *gin.Context) {
	if err := h.procurement.Reset(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ResetResponse{Message: "Document store reset"})
}
