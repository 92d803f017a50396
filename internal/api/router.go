package api

import (
	"context"
	"net/http"
	"time"

	"pantry-chef/internal/api/handlers/health"
	"pantry-chef/internal/api/handlers/pantryhandler"
	recipeHandler "pantry-chef/internal/api/handlers/recipe"
	"pantry-chef/internal/api/middleware"
	"pantry-chef/internal/core/extract"
	"pantry-chef/internal/core/pantry"
	"pantry-chef/internal/core/suggest"
	"pantry-chef/internal/infrastructure/config"
	"pantry-chef/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 請求超時
	timeoutDuration = 60 * time.Second
	// 請求體大小限制 (10MB)，涵蓋 base64 圖片
	maxBodySize = 10 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, store pantry.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 初始化服務
	pantrySvc := pantry.NewService(store)
	importSvc := extract.NewService(
		extract.NewOCRClient(&cfg.OCR),
		extract.NewFormatter(&cfg.AI),
	)

	catalogIngredients, err := pantrySvc.CatalogIngredients(context.Background())
	if err != nil {
		common.LogWarn("讀取食材目錄失敗，分類器以空目錄啟動", zap.Error(err))
		catalogIngredients = nil
	}
	ranker := suggest.NewRanker(catalogIngredients, cfg.Suggest.ExcludedSpiceIDs, cfg.Suggest.MaxResults)

	common.LogInfo("Services initialized",
		zap.Bool("ocr_enabled", cfg.OCR.Enabled),
		zap.Bool("ai_enabled", cfg.AI.Enabled),
		zap.Int("catalog_ingredients", len(catalogIngredients)),
		zap.Int("suggest_max_results", cfg.Suggest.MaxResults),
	)

	// 全局中間件：設置超時與注入服務
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("pantry_service", pantrySvc)
		c.Set("import_service", importSvc)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
			c.Abort()
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		recipes := recipeHandler.NewHandler(importSvc, pantrySvc, ranker)
		states := pantryhandler.NewHandler(pantrySvc)

		recipeGroup := api.Group("/recipe")
		{
			recipeGroup.POST("/parse", recipes.HandleParse)
			recipeGroup.POST("/import/text", recipes.HandleImportText)
			recipeGroup.POST("/import/image", middleware.Deduplication(cfg), recipes.HandleImportImage)
			recipeGroup.POST("/suggest", recipes.HandleSuggest)
		}

		api.POST("/units/convert", recipes.HandleConvert)
		api.GET("/shopping-list/:user", recipes.HandleShoppingList)

		fridgeGroup := api.Group("/fridge/:user")
		{
			fridgeGroup.GET("", states.HandleFridge)
			fridgeGroup.POST("/toggle", states.HandleToggleFridge)
			fridgeGroup.POST("/custom", states.HandleAddCustomIngredient)
		}

		collectionGroup := api.Group("/collection/:user")
		{
			collectionGroup.POST("/toggle", states.HandleToggleCollection)
			collectionGroup.POST("/settings", states.HandleCollectionSettings)
		}

		cookbookGroup := api.Group("/cookbook/:user")
		{
			cookbookGroup.GET("", states.HandleCookbook)
			cookbookGroup.POST("", states.HandleSaveUserRecipe)
			cookbookGroup.DELETE("/:id", states.HandleDeleteUserRecipe)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
