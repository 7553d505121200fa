package recipe

import (
	"context"
	"net/http"

	"pantry-scan/internal/core/match"
	"pantry-scan/internal/core/session"
	"pantry-scan/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecipeLookup 外部食譜查詢（供應商鏈）
type RecipeLookup interface {
	Lookup(ctx context.Context, foodName string) (*common.RecipeDTO, error)
}

// MatchRequest 食譜配對請求
// ingredients 為空且 use_session 為真時改用工作階段內容
type MatchRequest struct {
	Ingredients []string `json:"ingredients"`
	Mode        string   `json:"mode"` // partial 或 exact，預設 partial
	UseSession  bool     `json:"use_session"`
}

// MatchResponse 食譜配對回應
type MatchResponse struct {
	Mode    string         `json:"mode"`
	Input   []string       `json:"input"`
	Results []match.Result `json:"results"`
}

// Handler 食譜相關處理器
type Handler struct {
	matcher  *match.Matcher
	sessions *session.Store
	lookup   RecipeLookup
	catalog  CatalogReader
}

// NewHandler 創建食譜處理器
func NewHandler(matcher *match.Matcher, sessions *session.Store, lookup RecipeLookup, catalog CatalogReader) *Handler {
	return &Handler{
		matcher:  matcher,
		sessions: sessions,
		lookup:   lookup,
		catalog:  catalog,
	}
}

// HandleMatch 處理 POST /recipes/match
func (h *Handler) HandleMatch(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	mode := match.Mode(req.Mode)
	switch mode {
	case "":
		mode = match.ModePartial
	case match.ModePartial, match.ModeExact:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be partial or exact"})
		return
	}

	names := req.Ingredients
	if len(names) == 0 && req.UseSession {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header is required when use_session is set"})
			return
		}
		names = h.sessions.Names(userID)
	}

	results, err := h.matcher.Match(c.Request.Context(), names, mode)
	if err != nil {
		common.LogError("食譜配對失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, MatchResponse{
		Mode:    string(mode),
		Input:   names,
		Results: results,
	})
}
