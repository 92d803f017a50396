// Package suggest 依使用者冰箱內容排序可做的食譜，並彙總購物清單
package suggest

import (
	"sort"

	"pantry-chef/internal/core/ingredient"
	"pantry-chef/internal/pkg/common"
)

// DefaultMaxResults 建議清單的預設上限
const DefaultMaxResults = 50

// Suggestion 單筆食譜建議與其匹配統計
type Suggestion struct {
	Recipe             common.Recipe `json:"recipe"`
	HaveCount          int           `json:"haveCount"`
	MissingCount       int           `json:"missingCount"`
	KeyMatchCount      int           `json:"keyMatchCount"`
	MissingIngredients []string      `json:"missingIngredients"`
}

// Ranker 食譜建議排序器
type Ranker struct {
	classifier *ingredient.Classifier
	maxResults int
}

// NewRanker 建立排序器，maxResults 小於等於 0 時使用預設上限
func NewRanker(catalog []common.Ingredient, excludedSpiceIDs []int, maxResults int) *Ranker {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Ranker{
		classifier: ingredient.NewClassifier(catalog, excludedSpiceIDs),
		maxResults: maxResults,
	}
}

// Rank 對目錄食譜排序建議
// 已收藏的食譜不列入；完全沒有任何匹配食材的食譜也不列入
// 排序鍵：關鍵食材匹配數由大到小，缺少數由小到大，食譜 id 由小到大
func (r *Ranker) Rank(recipes []common.Recipe, owned []common.Named, collected map[int]bool) []Suggestion {
	suggestions := make([]Suggestion, 0, len(recipes))
	for _, recipe := range recipes {
		if collected[recipe.ID] {
			continue
		}
		s := r.evaluate(recipe, owned)
		if s.HaveCount == 0 {
			continue
		}
		suggestions = append(suggestions, s)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].KeyMatchCount != suggestions[j].KeyMatchCount {
			return suggestions[i].KeyMatchCount > suggestions[j].KeyMatchCount
		}
		if suggestions[i].MissingCount != suggestions[j].MissingCount {
			return suggestions[i].MissingCount < suggestions[j].MissingCount
		}
		return suggestions[i].Recipe.ID < suggestions[j].Recipe.ID
	})

	if len(suggestions) > r.maxResults {
		suggestions = suggestions[:r.maxResults]
	}
	return suggestions
}

// evaluate 計算單一食譜與持有食材的匹配統計
// 香料與香草不計入缺少數，可選食材也不計入
func (r *Ranker) evaluate(recipe common.Recipe, owned []common.Named) Suggestion {
	s := Suggestion{Recipe: recipe, MissingIngredients: []string{}}
	for _, line := range recipe.Ingredients {
		if ingredient.Has(line.Name, owned) {
			s.HaveCount++
			if r.classifier.IsKeyIngredient(line.Name) {
				s.KeyMatchCount++
			}
			continue
		}
		if line.Optional {
			continue
		}
		if r.classifier.IsSpiceOrHerb(line.Name) {
			continue
		}
		s.MissingCount++
		s.MissingIngredients = append(s.MissingIngredients, line.Name)
	}
	return s
}
