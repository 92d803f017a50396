package ingredient

import (
	"pantry-chef/internal/pkg/common"
)

// spiceCategories 視為常備調味料的分類
var spiceCategories = map[string]bool{
	"spices": true,
	"herbs":  true,
}

// keyCategories 主要食材分類，用於推薦排序
var keyCategories = map[string]bool{
	"meat":    true,
	"seafood": true,
	"produce": true,
	"dairy":   true,
	"grains":  true,
	"grain":   true,
	"baking":  true,
}

// DefaultExcludedSpiceIDs 目錄中分類錯誤的 id（Salt Cod、Unsalted Pistachio）
// 資料品質修正，綁定特定目錄內容，不可由分類欄位重新推導
var DefaultExcludedSpiceIDs = []int{334, 679}

// Classifier 依目錄資料分類食材
type Classifier struct {
	catalog     []common.Ingredient
	excludedIDs map[int]bool
}

// NewClassifier 創建分類器；excludedIDs 為 nil 時採用預設排除清單
func NewClassifier(catalog []common.Ingredient, excludedIDs []int) *Classifier {
	if excludedIDs == nil {
		excludedIDs = DefaultExcludedSpiceIDs
	}
	excluded := make(map[int]bool, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = true
	}
	return &Classifier{
		catalog:     catalog,
		excludedIDs: excluded,
	}
}

// IsSpiceOrHerb 判斷名稱是否為香料或香草
// 排除清單中的 id 即使分類欄位是 spices/herbs 也不視為香料
func (c *Classifier) IsSpiceOrHerb(name string) bool {
	matched, ok := MatchCatalog(name, c.catalog)
	if !ok {
		return false
	}
	if c.excludedIDs[matched.ID] {
		return false
	}
	return spiceCategories[matched.Category]
}

// IsKeyIngredient 判斷名稱是否屬於主要食材分類
func (c *Classifier) IsKeyIngredient(name string) bool {
	matched, ok := MatchCatalog(name, c.catalog)
	if !ok {
		return false
	}
	return keyCategories[matched.Category]
}
