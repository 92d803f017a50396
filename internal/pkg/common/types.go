package common

import (
	"fmt"
	"strings"
)

// Ingredient 目錄食材
type Ingredient struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Unit             string   `json:"unit"`
	AlternativeNames []string `json:"alternativeNames,omitempty"` // 別名列表
}

// CustomIngredient 使用者自建食材，id 與目錄 id 各自獨立編號
type CustomIngredient struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit,omitempty"`
}

// Named 食材名稱能力介面，目錄食材與自建食材共用
// 匹配邏輯只依賴這個介面，不依賴具體型別
type Named interface {
	IngredientName() string
	IngredientAliases() []string
}

// IngredientName 實現 Named 介面
func (i Ingredient) IngredientName() string { return i.Name }

// IngredientAliases 實現 Named 介面
func (i Ingredient) IngredientAliases() []string { return i.AlternativeNames }

// IngredientName 實現 Named 介面
func (c CustomIngredient) IngredientName() string { return c.Name }

// IngredientAliases 自建食材沒有別名
func (c CustomIngredient) IngredientAliases() []string { return nil }

// RecipeIngredientLine 食譜中的單行食材
type RecipeIngredientLine struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"` // 0 表示未指定／適量
	Unit        string  `json:"unit"`
	Preparation string  `json:"preparation,omitempty"`
	Optional    bool    `json:"optional,omitempty"`
}

// Instruction 食譜步驟
type Instruction struct {
	Step int    `json:"step"`
	Text string `json:"text"`
}

// Recipe 目錄食譜（唯讀資料）
type Recipe struct {
	ID           int                    `json:"id"`
	Name         string                 `json:"name"`
	Cuisine      string                 `json:"cuisine"`
	Category     string                 `json:"category"`
	Servings     int                    `json:"servings"`
	PrepTime     string                 `json:"prepTime"`
	CookTime     string                 `json:"cookTime"`
	Ingredients  []RecipeIngredientLine `json:"ingredients"`
	Instructions []Instruction          `json:"instructions"`
}

// UserRecipe 使用者自建食譜，結構與目錄食譜相同但可編輯
type UserRecipe struct {
	ID                    int                    `json:"id"`
	Name                  string                 `json:"name"`
	Cuisine               string                 `json:"cuisine,omitempty"`
	Category              string                 `json:"category,omitempty"`
	Servings              int                    `json:"servings,omitempty"`
	PrepTime              string                 `json:"prepTime,omitempty"`
	CookTime              string                 `json:"cookTime,omitempty"`
	Ingredients           []RecipeIngredientLine `json:"ingredients"`
	Instructions          []Instruction          `json:"instructions"`
	Multiplier            float64                `json:"multiplier,omitempty"` // 份量倍率，0 視為 1
	IncludeInShoppingList *bool                  `json:"includeInShoppingList,omitempty"`
}

// FridgeEntry 冰箱項目：使用者擁有的食材
// (ingredientId, isCustom) 為唯一鍵，重複加入視為 no-op
type FridgeEntry struct {
	IngredientID int    `json:"ingredientId"`
	IsCustom     bool   `json:"isCustom"`
	AddedDate    string `json:"addedDate"`
}

// CollectionEntry 收藏的目錄食譜
type CollectionEntry struct {
	RecipeID              int     `json:"recipeId"`
	AddedDate             string  `json:"addedDate"`
	IncludeInShoppingList *bool   `json:"includeInShoppingList,omitempty"`
	Multiplier            float64 `json:"multiplier,omitempty"`
}

// ParsedIngredient 自由文字解析出的食材行，amount 保留原始字串
type ParsedIngredient struct {
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
	Name   string `json:"name"`
}

// ParsedRecipe 自由文字解析結果，與 AI 擷取結果共用同一格式
// 呼叫端可互換使用兩個來源
type ParsedRecipe struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Ingredients  []ParsedIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	PrepTime     string             `json:"prepTime"`
	CookTime     string             `json:"cookTime"`
	Servings     string             `json:"servings"`
	Cuisine      string             `json:"cuisine"`
	Category     string             `json:"category"`
	Confidence   float64            `json:"confidence"` // 0~1 啟發式品質估計，非機率
}

// ShoppingListEntry 購物清單項目，以小寫食材名稱為鍵彙總
type ShoppingListEntry struct {
	Name    string   `json:"name"`
	Amount  float64  `json:"amount"`
	Unit    string   `json:"unit"`
	Recipes []string `json:"recipes"` // 來源食譜名稱
}

// OCRResult OCR 協作方的回傳結果
type OCRResult struct {
	Success bool   `json:"success"`
	RawText string `json:"rawText"`
	Error   string `json:"error,omitempty"`
}

// FormatResult AI 擷取協作方的回傳結果
type FormatResult struct {
	Success bool          `json:"success"`
	Recipe  *ParsedRecipe `json:"recipe"`
	Error   string        `json:"error,omitempty"`
}

// FormatIngredientLines 格式化食材行列表（記錄與除錯用）
func FormatIngredientLines(lines []RecipeIngredientLine) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("- %s: %g %s\n", line.Name, line.Amount, line.Unit))
	}
	return sb.String()
}
