package api

import (
	"context"
	"net/http"
	"time"

	"pantry-scan/internal/api/handlers/health"
	recipeHandler "pantry-scan/internal/api/handlers/recipe"
	scanHandler "pantry-scan/internal/api/handlers/scan"
	sessionHandler "pantry-scan/internal/api/handlers/session"
	"pantry-scan/internal/api/middleware"
	"pantry-scan/internal/core/cache"
	"pantry-scan/internal/core/catalog"
	"pantry-scan/internal/core/detection"
	"pantry-scan/internal/core/image"
	"pantry-scan/internal/core/match"
	"pantry-scan/internal/core/provider"
	"pantry-scan/internal/core/session"
	"pantry-scan/internal/infrastructure/config"
	"pantry-scan/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 單一請求的上限：視覺呼叫加供應商鏈的最壞情況
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (10MB)
	maxBodySize = 10 << 20
)

// Services 路由層用到的核心服務集合
type Services struct {
	Sessions *session.Store
	Cache    cache.Store
	Chain    *provider.Chain
}

// SetupRouter 設置路由並組裝核心服務
func SetupRouter(cfg *config.Config, svcs *Services) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流與去重
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("spoonacular_enabled", cfg.Providers.Spoonacular.Enabled),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化核心服務
	imageService := image.NewService(cfg.Image.MaxSizeBytes)
	normalizer := detection.NewNormalizer(detection.NewRoboflowClient(&cfg.Vision))
	recipeCatalog := catalog.NewMemoryCatalog(nil)
	matcher := match.NewMatcher(recipeCatalog)

	// 全局中間件：請求超時
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
			c.Abort()
		}
	})

	// 健康檢查路由
	healthH := health.NewHandler(cfg, svcs.Chain, svcs.Cache)
	router.GET("/health", healthH.HealthCheck)
	router.GET("/ready", healthH.ReadinessCheck)
	router.GET("/live", healthH.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		scanH := scanHandler.NewHandler(imageService, normalizer, svcs.Sessions, matcher)
		sessionH := sessionHandler.NewHandler(svcs.Sessions)
		recipeH := recipeHandler.NewHandler(matcher, svcs.Sessions, svcs.Chain, recipeCatalog)

		// 掃描
		scanGroup := api.Group("/scan")
		{
			scanGroup.POST("/analyze", scanH.HandleAnalyze)
		}

		// 工作階段食材
		sessionGroup := api.Group("/session")
		{
			sessionGroup.GET("/ingredients", sessionH.HandleList)
			sessionGroup.POST("/ingredients", sessionH.HandleAdd)
			sessionGroup.DELETE("/ingredients/:name", sessionH.HandleRemove)
			sessionGroup.DELETE("", sessionH.HandleClear)
		}

		// 食譜
		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.POST("/match", recipeH.HandleMatch)
			recipeGroup.GET("/food/:name", recipeH.HandleFoodLookup)
			recipeGroup.POST("/shopping-list", recipeH.HandleShoppingList)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
