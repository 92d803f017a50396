// Package pantryhandler 冰箱、收藏與自建食譜端點
package pantryhandler

import (
	"errors"
	"net/http"
	"strconv"

	"pantry-chef/internal/core/pantry"
	"pantry-chef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 使用者狀態端點處理器
type Handler struct {
	pantrySvc *pantry.Service
}

// NewHandler 建立使用者狀態處理器
func NewHandler(pantrySvc *pantry.Service) *Handler {
	return &Handler{pantrySvc: pantrySvc}
}

// ToggleFridgeRequest 冰箱切換請求
type ToggleFridgeRequest struct {
	IngredientID int  `json:"ingredientId" binding:"required"`
	IsCustom     bool `json:"isCustom"`
}

// HandleFridge 取得冰箱內容
func (h *Handler) HandleFridge(c *gin.Context) {
	entries, err := h.pantrySvc.Fridge(c.Request.Context(), c.Param("user"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// HandleToggleFridge 切換冰箱食材
// 同一食材的切換尚未完成時回傳 409
func (h *Handler) HandleToggleFridge(c *gin.Context) {
	var req ToggleFridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "ingredientId is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	owned, err := h.pantrySvc.ToggleFridge(c.Request.Context(), c.Param("user"), req.IngredientID, req.IsCustom)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"owned": owned})
}

// CustomIngredientRequest 自建食材請求
type CustomIngredientRequest struct {
	Name string `json:"name" binding:"required"`
	Unit string `json:"unit"`
}

// HandleAddCustomIngredient 新增自建食材
func (h *Handler) HandleAddCustomIngredient(c *gin.Context) {
	var req CustomIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "name is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	created, err := h.pantrySvc.AddCustomIngredient(c.Request.Context(), c.Param("user"), req.Name, req.Unit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ToggleCollectionRequest 收藏切換請求
type ToggleCollectionRequest struct {
	RecipeID int `json:"recipeId" binding:"required"`
}

// HandleToggleCollection 切換食譜收藏
func (h *Handler) HandleToggleCollection(c *gin.Context) {
	var req ToggleCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "recipeId is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	saved, err := h.pantrySvc.ToggleCollection(c.Request.Context(), c.Param("user"), req.RecipeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// CollectionSettingsRequest 收藏項目設定請求，nil 欄位不變更
type CollectionSettingsRequest struct {
	RecipeID              int      `json:"recipeId" binding:"required"`
	IncludeInShoppingList *bool    `json:"includeInShoppingList"`
	Multiplier            *float64 `json:"multiplier"`
}

// HandleCollectionSettings 調整收藏項目的購物清單設定與份量倍率
func (h *Handler) HandleCollectionSettings(c *gin.Context) {
	var req CollectionSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "recipeId is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	err := h.pantrySvc.UpdateCollectionEntry(c.Request.Context(), c.Param("user"), req.RecipeID, req.IncludeInShoppingList, req.Multiplier)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleCookbook 取得自建食譜
func (h *Handler) HandleCookbook(c *gin.Context) {
	recipes, err := h.pantrySvc.Cookbook(c.Request.Context(), c.Param("user"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// HandleSaveUserRecipe 新增或更新自建食譜
func (h *Handler) HandleSaveUserRecipe(c *gin.Context) {
	var recipe common.UserRecipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid recipe payload",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	saved, err := h.pantrySvc.SaveUserRecipe(c.Request.Context(), c.Param("user"), recipe)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	common.LogDebug("儲存自建食譜",
		zap.String("使用者", c.Param("user")),
		zap.Int("id", saved.ID),
		zap.String("食材", common.FormatIngredientLines(saved.Ingredients)),
	)
	c.JSON(http.StatusOK, saved)
}

// HandleDeleteUserRecipe 刪除自建食譜
func (h *Handler) HandleDeleteUserRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid recipe id",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	if err := h.pantrySvc.DeleteUserRecipe(c.Request.Context(), c.Param("user"), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

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
