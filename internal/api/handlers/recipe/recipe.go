// Package recipe 食譜解析、匯入與建議端點
package recipe

import (
	"errors"
	"net/http"
	"time"

	"pantry-chef/internal/core/extract"
	"pantry-chef/internal/core/pantry"
	"pantry-chef/internal/core/parser"
	"pantry-chef/internal/core/suggest"
	"pantry-chef/internal/core/units"
	"pantry-chef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 食譜端點處理器
type Handler struct {
	importSvc *extract.Service
	pantrySvc *pantry.Service
	ranker    *suggest.Ranker
}

// NewHandler 建立食譜處理器
func NewHandler(importSvc *extract.Service, pantrySvc *pantry.Service, ranker *suggest.Ranker) *Handler {
	return &Handler{
		importSvc: importSvc,
		pantrySvc: pantrySvc,
		ranker:    ranker,
	}
}

// ParseRequest 本地解析請求
type ParseRequest struct {
	Text string `json:"text" binding:"required"`
}

// HandleParse 只走本地解析器，不呼叫任何外部協作方
func (h *Handler) HandleParse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "text is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	start := time.Now()
	result := parser.Parse(req.Text)
	common.LogParseResult("local", len(result.Ingredients), len(result.Instructions), result.Confidence, time.Since(start))

	c.JSON(http.StatusOK, result)
}

// HandleImportText 文字匯入，AI 擷取失敗時退回本地解析
func (h *Handler) HandleImportText(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "text is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	c.JSON(http.StatusOK, h.importSvc.ImportText(c.Request.Context(), req.Text))
}

// ImportImageRequest 圖片匯入請求，image 為 base64 編碼
type ImportImageRequest struct {
	Image string `json:"image" binding:"required"`
}

// HandleImportImage 圖片匯入：OCR 辨識後走文字匯入流程
func (h *Handler) HandleImportImage(c *gin.Context) {
	var req ImportImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "image is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	result, err := h.importSvc.ImportImage(c.Request.Context(), req.Image)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SuggestRequest 食譜建議請求
type SuggestRequest struct {
	User string `json:"user" binding:"required"`
}

// HandleSuggest 依冰箱內容排序建議食譜
// 每次都重新計算，不做增量維護
func (h *Handler) HandleSuggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "user is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}
	ctx := c.Request.Context()

	catalogIngredients, err := h.pantrySvc.CatalogIngredients(ctx)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	catalogRecipes, err := h.pantrySvc.CatalogRecipes(ctx)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	owned, err := h.pantrySvc.OwnedIngredients(ctx, req.User, catalogIngredients)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	collection, err := h.pantrySvc.Collection(ctx, req.User)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	collected := make(map[int]bool, len(collection))
	for _, entry := range collection {
		collected[entry.RecipeID] = true
	}

	suggestions := h.ranker.Rank(catalogRecipes, owned, collected)
	common.LogInfo("建議計算完成",
		zap.String("使用者", req.User),
		zap.Int("持有食材數", len(owned)),
		zap.Int("建議數", len(suggestions)),
	)

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// HandleShoppingList 彙總購物清單
// query 參數 system 可為 original、metric、imperial
func (h *Handler) HandleShoppingList(c *gin.Context) {
	user := c.Param("user")
	system := units.System(c.DefaultQuery("system", string(units.SystemOriginal)))
	ctx := c.Request.Context()

	catalogIngredients, err := h.pantrySvc.CatalogIngredients(ctx)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	catalogRecipes, err := h.pantrySvc.CatalogRecipes(ctx)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	owned, err := h.pantrySvc.OwnedIngredients(ctx, user, catalogIngredients)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	collection, err := h.pantrySvc.Collection(ctx, user)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	cookbook, err := h.pantrySvc.Cookbook(ctx, user)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	byID := make(map[int]common.Recipe, len(catalogRecipes))
	for _, r := range catalogRecipes {
		byID[r.ID] = r
	}

	list := suggest.BuildShoppingList(suggest.ShoppingListInput{
		Collection: collection,
		Catalog:    byID,
		Cookbook:   cookbook,
		Owned:      owned,
		System:     system,
	})

	c.JSON(http.StatusOK, gin.H{"items": list})
}

// ConvertRequest 單位換算請求
type ConvertRequest struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	System string  `json:"system" binding:"required"`
}

// HandleConvert 單位換算
func (h *Handler) HandleConvert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "system is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	c.JSON(http.StatusOK, units.ConvertUnit(req.Amount, req.Unit, units.System(req.System)))
}

// writeServiceError 將服務層錯誤轉為 HTTP 響應
func writeServiceError(c *gin.Context, err error) {
	var custom *common.CustomError
	if errors.As(err, &custom) {
		c.JSON(custom.Status, gin.H{
			"error": custom.Message,
			"code":  custom.Code,
		})
		return
	}
	common.LogError("未分類的服務錯誤", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  common.ErrCodeInternalError,
	})
}
