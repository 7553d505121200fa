package recipe

import (
	"context"
	"errors"
	"net/http"

	"pantry-scan/internal/core/catalog"
	"pantry-scan/internal/core/shopping"
	"pantry-scan/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogReader 購物清單解析食譜 ID 時使用的唯讀目錄
type CatalogReader interface {
	FindByID(ctx context.Context, id string) (*catalog.Recipe, error)
}

// ShoppingListRequest 購物清單請求
// recipe_ids 由本地目錄解析，recipes 直接帶入外部取得的食譜
type ShoppingListRequest struct {
	RecipeIDs       []string           `json:"recipe_ids"`
	Recipes         []common.RecipeDTO `json:"recipes"`
	HaveIngredients []string           `json:"have_ingredients"`
}

// ShoppingListResponse 購物清單回應
type ShoppingListResponse struct {
	Items []common.ShoppingListItem `json:"items"`
	Count int                       `json:"count"`
}

// HandleShoppingList 處理 POST /recipes/shopping-list
func (h *Handler) HandleShoppingList(c *gin.Context) {
	var req ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if len(req.RecipeIDs) == 0 && len(req.Recipes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_ids or recipes is required"})
		return
	}

	selections := make([]shopping.Selection, 0, len(req.RecipeIDs)+len(req.Recipes))

	for _, id := range req.RecipeIDs {
		r, err := h.catalog.FindByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"error": "recipe not found: " + id,
					"code":  common.ErrCodeNotFound,
				})
				return
			}
			common.LogError("食譜查詢失敗", zap.String("recipe_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		selections = append(selections, shopping.Selection{
			Title:       r.Title,
			Ingredients: r.Ingredients,
		})
	}

	for _, dto := range req.Recipes {
		selections = append(selections, shopping.Selection{
			Title:       dto.Title,
			Ingredients: dto.Ingredients,
		})
	}

	items := shopping.Build(selections, req.HaveIngredients)

	c.JSON(http.StatusOK, ShoppingListResponse{
		Items: items,
		Count: len(items),
	})
}
