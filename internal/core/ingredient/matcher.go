// Package ingredient 提供食材名稱匹配與分類
// 食譜中的食材名稱來自多個獨立來源（目錄、AI 擷取、OCR），
// 匹配策略刻意採用大小寫不敏感的精確比對加別名，完全確定性，不做模糊比對
package ingredient

import (
	"strings"

	"pantry-chef/internal/pkg/common"
)

// Match 在候選清單中尋找名稱相符的食材
// 先比對 name，再比對 alternativeNames；回傳第一個符合者，找不到回傳 nil
func Match(searchName string, candidates []common.Named) common.Named {
	needle := normalizeName(searchName)
	if needle == "" {
		return nil
	}

	for _, cand := range candidates {
		if normalizeName(cand.IngredientName()) == needle {
			return cand
		}
	}
	for _, cand := range candidates {
		for _, alias := range cand.IngredientAliases() {
			if normalizeName(alias) == needle {
				return cand
			}
		}
	}
	return nil
}

// Has 檢查名稱是否存在於候選清單中
func Has(searchName string, candidates []common.Named) bool {
	return Match(searchName, candidates) != nil
}

// MatchCatalog 在目錄食材中尋找名稱相符者（含別名）
func MatchCatalog(searchName string, catalog []common.Ingredient) (common.Ingredient, bool) {
	needle := normalizeName(searchName)
	if needle == "" {
		return common.Ingredient{}, false
	}

	for _, cand := range catalog {
		if normalizeName(cand.Name) == needle {
			return cand, true
		}
	}
	for _, cand := range catalog {
		for _, alias := range cand.AlternativeNames {
			if normalizeName(alias) == needle {
				return cand, true
			}
		}
	}
	return common.Ingredient{}, false
}

// Owned 將目錄食材與自建食材合併為統一的匹配候選清單
func Owned(catalog []common.Ingredient, custom []common.CustomIngredient) []common.Named {
	out := make([]common.Named, 0, len(catalog)+len(custom))
	for _, ing := range catalog {
		out = append(out, ing)
	}
	for _, ing := range custom {
		out = append(out, ing)
	}
	return out
}

// normalizeName 名稱比對鍵：去除前後空白並小寫化
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
