package suggest

import (
	"testing"

	"pantry-chef/internal/core/units"
	"pantry-chef/internal/pkg/common"
)

func suggestCatalog() []common.Ingredient {
	return []common.Ingredient{
		{ID: 1, Name: "Chicken Breast", Category: "meat"},
		{ID: 2, Name: "Rice", Category: "grains"},
		{ID: 3, Name: "Salt", Category: "spices"},
		{ID: 4, Name: "Basil", Category: "herbs"},
		{ID: 5, Name: "Tomato", Category: "produce"},
		{ID: 6, Name: "Butter", Category: "dairy"},
	}
}

func ownedSet(names ...string) []common.Named {
	owned := make([]common.Named, 0, len(names))
	for i, name := range names {
		owned = append(owned, common.Ingredient{ID: 100 + i, Name: name})
	}
	return owned
}

func TestRankOrdering(t *testing.T) {
	recipes := []common.Recipe{
		{ID: 1, Name: "Chicken Rice", Ingredients: []common.RecipeIngredientLine{
			{Name: "Chicken Breast", Amount: 2}, {Name: "Rice", Amount: 1, Unit: "cup"},
		}},
		{ID: 2, Name: "Tomato Soup", Ingredients: []common.RecipeIngredientLine{
			{Name: "Tomato", Amount: 4}, {Name: "Butter", Amount: 2, Unit: "tbsp"},
		}},
		{ID: 3, Name: "Plain Toast", Ingredients: []common.RecipeIngredientLine{
			{Name: "Bread", Amount: 2}, {Name: "Butter", Amount: 1, Unit: "tbsp"},
		}},
	}
	ranker := NewRanker(suggestCatalog(), nil, 0)
	owned := ownedSet("Chicken Breast", "Rice", "Tomato")

	got := ranker.Rank(recipes, owned, nil)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}
	// 雞肉飯匹配兩個關鍵食材且零缺少，排最前
	if got[0].Recipe.ID != 1 {
		t.Errorf("第一名 = %d, want 1", got[0].Recipe.ID)
	}
	if got[0].KeyMatchCount != 2 || got[0].MissingCount != 0 {
		t.Errorf("第一名統計 = %+v", got[0])
	}
	if got[1].Recipe.ID != 2 {
		t.Errorf("第二名 = %d, want 2", got[1].Recipe.ID)
	}
	if got[1].MissingCount != 1 || got[1].MissingIngredients[0] != "Butter" {
		t.Errorf("第二名缺少 = %+v", got[1])
	}
}

func TestRankExcludesCollected(t *testing.T) {
	recipes := []common.Recipe{
		{ID: 1, Name: "Chicken Rice", Ingredients: []common.RecipeIngredientLine{{Name: "Rice"}}},
	}
	ranker := NewRanker(suggestCatalog(), nil, 0)
	got := ranker.Rank(recipes, ownedSet("Rice"), map[int]bool{1: true})
	if len(got) != 0 {
		t.Errorf("已收藏的食譜不應列入建議: %+v", got)
	}
}

func TestRankSpicesNotCountedMissing(t *testing.T) {
	recipes := []common.Recipe{
		{ID: 1, Name: "Seasoned Rice", Ingredients: []common.RecipeIngredientLine{
			{Name: "Rice", Amount: 1, Unit: "cup"},
			{Name: "Salt", Amount: 1, Unit: "tsp"},
			{Name: "Basil", Amount: 1, Unit: "tbsp"},
		}},
	}
	ranker := NewRanker(suggestCatalog(), nil, 0)
	got := ranker.Rank(recipes, ownedSet("Rice"), nil)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].MissingCount != 0 {
		t.Errorf("香料與香草不應計入缺少數: %+v", got[0])
	}
}

func TestRankTruncatesToMax(t *testing.T) {
	recipes := make([]common.Recipe, 0, 60)
	for i := 1; i <= 60; i++ {
		recipes = append(recipes, common.Recipe{ID: i, Name: "R", Ingredients: []common.RecipeIngredientLine{{Name: "Rice"}}})
	}
	ranker := NewRanker(suggestCatalog(), nil, 0)
	got := ranker.Rank(recipes, ownedSet("Rice"), nil)
	if len(got) != DefaultMaxResults {
		t.Errorf("len = %d, want %d", len(got), DefaultMaxResults)
	}
}

func TestBuildShoppingListAggregates(t *testing.T) {
	include := true
	exclude := false
	catalog := map[int]common.Recipe{
		1: {ID: 1, Name: "Pancakes", Ingredients: []common.RecipeIngredientLine{
			{Name: "Flour", Amount: 2, Unit: "cup"},
			{Name: "Milk", Amount: 1, Unit: "cup"},
		}},
		2: {ID: 2, Name: "Bread", Ingredients: []common.RecipeIngredientLine{
			{Name: "Flour", Amount: 3, Unit: "cup"},
		}},
		3: {ID: 3, Name: "Excluded Cake", Ingredients: []common.RecipeIngredientLine{
			{Name: "Sugar", Amount: 1, Unit: "cup"},
		}},
	}
	got := BuildShoppingList(ShoppingListInput{
		Collection: []common.CollectionEntry{
			{RecipeID: 1, IncludeInShoppingList: &include},
			{RecipeID: 2},
			{RecipeID: 3, IncludeInShoppingList: &exclude},
		},
		Catalog: catalog,
		Owned:   ownedSet("Milk"),
		System:  units.SystemOriginal,
	})

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1: %+v", len(got), got)
	}
	if got[0].Name != "Flour" || got[0].Amount != 5 || got[0].Unit != "cup" {
		t.Errorf("Flour 彙總 = %+v, want 5 cup", got[0])
	}
	if len(got[0].Recipes) != 2 {
		t.Errorf("來源食譜 = %v, want 2 筆", got[0].Recipes)
	}
}

func TestBuildShoppingListMultiplierAndConversion(t *testing.T) {
	catalog := map[int]common.Recipe{
		1: {ID: 1, Name: "Dough", Ingredients: []common.RecipeIngredientLine{
			{Name: "Flour", Amount: 2, Unit: "cup"},
		}},
	}
	got := BuildShoppingList(ShoppingListInput{
		Collection: []common.CollectionEntry{{RecipeID: 1, Multiplier: 2}},
		Catalog:    catalog,
		System:     units.SystemMetric,
	})
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	// 2 cup x2 = 4 cup = 960 ml
	if got[0].Unit != "ml" || got[0].Amount != 960 {
		t.Errorf("換算結果 = %+v, want 960 ml", got[0])
	}
}

func TestBuildShoppingListCookbook(t *testing.T) {
	got := BuildShoppingList(ShoppingListInput{
		Cookbook: []common.UserRecipe{
			{ID: 1, Name: "House Curry", Ingredients: []common.RecipeIngredientLine{
				{Name: "Potato", Amount: 3},
			}},
		},
		System: units.SystemOriginal,
	})
	if len(got) != 1 || got[0].Name != "Potato" || got[0].Amount != 3 {
		t.Errorf("自建食譜彙總 = %+v", got)
	}
}
