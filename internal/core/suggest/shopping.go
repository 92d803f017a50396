package suggest

import (
	"sort"
	"strings"

	"pantry-chef/internal/core/ingredient"
	"pantry-chef/internal/core/units"
	"pantry-chef/internal/pkg/common"
)

// ShoppingListInput 購物清單的彙總來源
type ShoppingListInput struct {
	Collection []common.CollectionEntry
	Catalog    map[int]common.Recipe
	Cookbook   []common.UserRecipe
	Owned      []common.Named
	System     units.System
}

// BuildShoppingList 彙總購物清單
// 收藏與自建食譜中標記排除的食譜不列入；已持有的食材不列入
// 相同名稱與單位的食材加總數量，數量先乘上食譜倍率再轉換單位制
func BuildShoppingList(in ShoppingListInput) []common.ShoppingListEntry {
	acc := map[string]*common.ShoppingListEntry{}

	for _, entry := range in.Collection {
		if entry.IncludeInShoppingList != nil && !*entry.IncludeInShoppingList {
			continue
		}
		recipe, ok := in.Catalog[entry.RecipeID]
		if !ok {
			continue
		}
		addRecipeLines(acc, recipe.Name, recipe.Ingredients, entry.Multiplier, in.Owned, in.System)
	}

	for _, recipe := range in.Cookbook {
		if recipe.IncludeInShoppingList != nil && !*recipe.IncludeInShoppingList {
			continue
		}
		addRecipeLines(acc, recipe.Name, recipe.Ingredients, recipe.Multiplier, in.Owned, in.System)
	}

	list := make([]common.ShoppingListEntry, 0, len(acc))
	for _, entry := range acc {
		list = append(list, *entry)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].Unit < list[j].Unit
	})
	return list
}

// addRecipeLines 將單一食譜未持有的食材行併入彙總表
func addRecipeLines(acc map[string]*common.ShoppingListEntry, recipeName string, lines []common.RecipeIngredientLine, multiplier float64, owned []common.Named, system units.System) {
	if multiplier <= 0 {
		multiplier = 1
	}
	for _, line := range lines {
		if ingredient.Has(line.Name, owned) {
			continue
		}
		qty := units.ConvertUnit(line.Amount*multiplier, line.Unit, system)
		key := strings.ToLower(strings.TrimSpace(line.Name)) + "|" + qty.Unit
		entry, ok := acc[key]
		if !ok {
			entry = &common.ShoppingListEntry{
				Name: strings.TrimSpace(line.Name),
				Unit: qty.Unit,
			}
			acc[key] = entry
		}
		entry.Amount += qty.Amount
		if !containsString(entry.Recipes, recipeName) {
			entry.Recipes = append(entry.Recipes, recipeName)
		}
	}
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
