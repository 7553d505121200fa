package session

import (
	"errors"
	"net/http"

	"pantry-scan/internal/core/session"
	"pantry-scan/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddIngredientRequest 手動新增食材請求
type AddIngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

// Handler 工作階段食材的 CRUD 處理器
type Handler struct {
	sessions *session.Store
}

// NewHandler 創建工作階段處理器
func NewHandler(sessions *session.Store) *Handler {
	return &Handler{sessions: sessions}
}

// userID 從標頭取出使用者 ID，缺少時回應 400
func userID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-User-ID")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header is required"})
		return "", false
	}
	return id, true
}

// HandleList 處理 GET /session/ingredients
// 沒有工作階段視為空階段，不是錯誤
func (h *Handler) HandleList(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	items := h.sessions.List(id)
	c.JSON(http.StatusOK, gin.H{
		"ingredients": items,
		"count":       len(items),
	})
}

// HandleAdd 處理 POST /session/ingredients
func (h *Handler) HandleAdd(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req AddIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.sessions.AddManual(id, req.Name)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, common.ErrDuplicateIngredient) {
			// 重複不是致命錯誤，階段維持不變
			c.JSON(http.StatusConflict, gin.H{
				"error": "ingredient already in session",
				"code":  common.ErrCodeConflict,
			})
			return
		}
		common.LogError("手動新增食材失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ingredient": item,
		"count":      len(h.sessions.List(id)),
	})
}

// HandleRemove 處理 DELETE /session/ingredients/:name
func (h *Handler) HandleRemove(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	name := c.Param("name")
	if err := h.sessions.Remove(id, name); err != nil {
		if errors.Is(err, common.ErrSessionNotFound) || errors.Is(err, common.ErrIngredientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
				"code":  common.ErrCodeNotFound,
			})
			return
		}
		common.LogError("移除食材失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"removed": name,
		"count":   len(h.sessions.List(id)),
	})
}

// HandleClear 處理 DELETE /session
func (h *Handler) HandleClear(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	h.sessions.Clear(id)
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
