package recipe

import (
	"net/http"

	"pantry-scan/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FoodLookupResponse 料理食譜查詢回應
type FoodLookupResponse struct {
	FoodName string            `json:"food_name"`
	Recipe   *common.RecipeDTO `json:"recipe"`
}

// HandleFoodLookup 處理 GET /recipes/food/:name
// 供應商鏈尾是模板供應商，除了輸入驗證外不會失敗
func (h *Handler) HandleFoodLookup(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	name := c.Param("name")

	common.LogInfo("開始查詢料理食譜",
		zap.String("request_id", requestID),
		zap.String("food_name", name),
	)

	dto, err := h.lookup.Lookup(c.Request.Context(), name)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		common.LogError("料理食譜查詢失敗",
			zap.String("request_id", requestID),
			zap.String("food_name", name),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, FoodLookupResponse{
		FoodName: name,
		Recipe:   dto,
	})
}
