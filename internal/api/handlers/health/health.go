package health

import (
	"net/http"
	"runtime"
	"time"

	"pantry-scan/internal/infrastructure/config"
	"pantry-scan/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuotaReporter 供應商額度用量來源
type QuotaReporter interface {
	Usage() map[string]map[string]interface{}
}

// CacheReporter 快取統計來源
type CacheReporter interface {
	Stats() map[string]interface{}
}

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                            `json:"status"`
	Timestamp time.Time                         `json:"timestamp"`
	Version   string                            `json:"version"`
	Runtime   map[string]interface{}            `json:"runtime"`
	Providers map[string]map[string]interface{} `json:"providers,omitempty"`
	Cache     map[string]interface{}            `json:"cache,omitempty"`
}

// Handler 健康檢查處理器
type Handler struct {
	config *config.Config
	quota  QuotaReporter
	cache  CacheReporter
}

// NewHandler 創建健康檢查處理器
func NewHandler(cfg *config.Config, quota QuotaReporter, cache CacheReporter) *Handler {
	return &Handler{
		config: cfg,
		quota:  quota,
		cache:  cache,
	}
}

// HealthCheck 健康檢查，附帶供應商額度用量與快取統計
func (h *Handler) HealthCheck(c *gin.Context) {
	// 獲取運行時信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if h.quota != nil {
		response.Providers = h.quota.Usage()
	}
	if h.cache != nil {
		response.Cache = h.cache.Stats()
	}

	common.LogInfo("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器
func (h *Handler) ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
