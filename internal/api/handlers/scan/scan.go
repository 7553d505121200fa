package scan

import (
	"errors"
	"net/http"

	"pantry-scan/internal/core/detection"
	"pantry-scan/internal/core/image"
	"pantry-scan/internal/core/match"
	"pantry-scan/internal/core/session"
	"pantry-scan/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalyzeRequest 掃描分析請求
// image: base64、data URI 或 URL
type AnalyzeRequest struct {
	Image    string `json:"image" binding:"required"` // base64 encoded image 或 image URL
	ScanType string `json:"scan_type"`                // food 或 ingredient，預設 ingredient
}

// AnalyzeResponse 掃描分析回應
type AnalyzeResponse struct {
	ScanID           string                `json:"scan_id"`
	ScanType         string                `json:"scan_type"`
	DetectedItems    []common.DetectedItem `json:"detected_items"`
	SuggestedRecipes []match.Result        `json:"suggested_recipes"`
	SessionCount     int                   `json:"session_count"`
}

// Handler 掃描相關處理器
type Handler struct {
	images     *image.Service
	normalizer *detection.Normalizer
	sessions   *session.Store
	matcher    *match.Matcher
}

// NewHandler 創建掃描處理器
func NewHandler(images *image.Service, normalizer *detection.Normalizer, sessions *session.Store, matcher *match.Matcher) *Handler {
	return &Handler{
		images:     images,
		normalizer: normalizer,
		sessions:   sessions,
		matcher:    matcher,
	}
}

// HandleAnalyze 處理 POST /scan/analyze
// 辨識失敗或零項目不是錯誤，回傳佔位項目讓前端顯示「未偵測到」
func (h *Handler) HandleAnalyze(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header is required"})
		return
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	mode := common.ScanMode(req.ScanType)
	switch mode {
	case "":
		mode = common.ScanModeIngredient
	case common.ScanModeFood, common.ScanModeIngredient:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidScanType.Message,
			"code":  common.ErrInvalidScanType.Code,
		})
		return
	}

	common.LogInfo("開始處理掃描請求",
		zap.String("request_id", requestID),
		zap.String("scan_type", string(mode)),
		zap.String("client_ip", c.ClientIP()),
	)

	imageBytes, err := h.images.Prepare(req.Image)
	if err != nil {
		var cerr *common.CustomError
		if errors.As(err, &cerr) {
			c.JSON(cerr.Status, gin.H{"error": cerr.Message, "code": cerr.Code})
			return
		}
		common.LogError("圖片處理失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image data"})
		return
	}

	scanID := uuid.New().String()

	items, err := h.normalizer.Classify(c.Request.Context(), imageBytes, mode)
	if err != nil {
		// 視覺端點故障降級為零項目，不回傳錯誤
		common.LogWarn("視覺辨識失敗，降級為零項目",
			zap.String("request_id", requestID),
			zap.String("scan_id", scanID),
			zap.Error(err),
		)
		items = nil
	}

	if len(items) == 0 {
		c.JSON(http.StatusOK, AnalyzeResponse{
			ScanID:   scanID,
			ScanType: string(mode),
			DetectedItems: []common.DetectedItem{
				{Name: "No items detected", Confidence: 0, Category: common.CategoryOther},
			},
			SuggestedRecipes: []match.Result{},
			SessionCount:     len(h.sessions.List(userID)),
		})
		return
	}

	common.LogDebug("偵測項目",
		zap.String("request_id", requestID),
		zap.String("items", common.FormatDetectedItems(items)),
	)

	// 食材掃描併入工作階段，食物掃描只做建議不動階段
	if mode == common.ScanModeIngredient {
		for _, item := range items {
			h.sessions.AddDetected(userID, item)
		}
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	suggestions, err := h.matcher.Match(c.Request.Context(), names, match.ModePartial)
	if err != nil {
		common.LogWarn("食譜建議查詢失敗",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		suggestions = []match.Result{}
	}

	common.LogInfo("掃描請求完成",
		zap.String("request_id", requestID),
		zap.String("scan_id", scanID),
		zap.Int("detected_count", len(items)),
		zap.Int("suggestion_count", len(suggestions)),
	)

	c.JSON(http.StatusOK, AnalyzeResponse{
		ScanID:           scanID,
		ScanType:         string(mode),
		DetectedItems:    items,
		SuggestedRecipes: suggestions,
		SessionCount:     len(h.sessions.List(userID)),
	})
}
