package ingredient

import (
	"testing"

	"pantry-chef/internal/pkg/common"
)

func named(ings ...common.Ingredient) []common.Named {
	out := make([]common.Named, len(ings))
	for i, ing := range ings {
		out[i] = ing
	}
	return out
}

func TestMatchCaseInsensitive(t *testing.T) {
	candidates := named(common.Ingredient{ID: 1, Name: "salt"})

	if !Has("SALT", candidates) {
		t.Error("Has(\"SALT\") should match lowercase \"salt\"")
	}
	if !Has("  salt  ", candidates) {
		t.Error("Has should trim whitespace before matching")
	}
	if Has("salted butter", candidates) {
		t.Error("Has must not match partial substrings")
	}
}

func TestMatchAliases(t *testing.T) {
	candidates := named(common.Ingredient{
		ID:               7,
		Name:             "Scallion",
		AlternativeNames: []string{"Green Onion", "Spring Onion"},
	})

	if !Has("green onion", candidates) {
		t.Error("Has should match alternativeNames case-insensitively")
	}
	got := Match("spring onion", candidates)
	if got == nil || got.IngredientName() != "Scallion" {
		t.Errorf("Match via alias should return the candidate, got %v", got)
	}
}

func TestMatchAbsence(t *testing.T) {
	if Has("unicorn meat", nil) {
		t.Error("Has on empty candidates should be false")
	}
	if Match("", named(common.Ingredient{Name: "salt"})) != nil {
		t.Error("Match on blank search name should be nil")
	}
}

func TestMatchCustomIngredients(t *testing.T) {
	// 匹配邏輯對自建食材必須一視同仁
	candidates := []common.Named{
		common.Ingredient{ID: 1, Name: "Salt"},
		common.CustomIngredient{ID: 1, Name: "Grandma's Chili Oil"},
	}
	if !Has("grandma's chili oil", candidates) {
		t.Error("Has should match custom ingredients by name")
	}
}

func TestDirectNameBeatsAlias(t *testing.T) {
	// 直接名稱比對優先於別名
	candidates := named(
		common.Ingredient{ID: 1, Name: "Onion", AlternativeNames: []string{"Shallot"}},
		common.Ingredient{ID: 2, Name: "Shallot"},
	)
	got := Match("shallot", candidates)
	if got == nil || got.IngredientName() != "Shallot" {
		t.Errorf("direct name match should win over alias, got %v", got)
	}
}

func testCatalog() []common.Ingredient {
	return []common.Ingredient{
		{ID: 10, Name: "Paprika", Category: "spices"},
		{ID: 11, Name: "Basil", Category: "herbs", AlternativeNames: []string{"Sweet Basil"}},
		{ID: 334, Name: "Salt Cod", Category: "spices"},   // 目錄資料分類錯誤
		{ID: 679, Name: "Unsalted Pistachio", Category: "spices"},
		{ID: 20, Name: "Chicken Breast", Category: "meat"},
		{ID: 21, Name: "Milk", Category: "dairy"},
		{ID: 22, Name: "Soy Sauce", Category: "condiments"},
	}
}

func TestIsSpiceOrHerb(t *testing.T) {
	c := NewClassifier(testCatalog(), nil)

	if !c.IsSpiceOrHerb("paprika") {
		t.Error("paprika should classify as spice")
	}
	if !c.IsSpiceOrHerb("sweet basil") {
		t.Error("alias lookup should reach the herbs entry")
	}
	if c.IsSpiceOrHerb("soy sauce") {
		t.Error("condiments should not classify as spice")
	}
	if c.IsSpiceOrHerb("no such thing") {
		t.Error("unmatched names should return false")
	}
}

func TestIsSpiceOrHerbExclusions(t *testing.T) {
	c := NewClassifier(testCatalog(), nil)

	// 排除清單中的 id 即使 category 為 spices 也不得視為香料
	if c.IsSpiceOrHerb("Salt Cod") {
		t.Error("id 334 is excluded and must not classify as spice")
	}
	if c.IsSpiceOrHerb("Unsalted Pistachio") {
		t.Error("id 679 is excluded and must not classify as spice")
	}
}

func TestIsKeyIngredient(t *testing.T) {
	c := NewClassifier(testCatalog(), nil)

	if !c.IsKeyIngredient("chicken breast") {
		t.Error("meat should be a key category")
	}
	if !c.IsKeyIngredient("MILK") {
		t.Error("dairy should be a key category")
	}
	if c.IsKeyIngredient("paprika") {
		t.Error("spices are not a key category")
	}
	if c.IsKeyIngredient("unknown") {
		t.Error("unmatched names should return false")
	}
}
