package pantry

import (
	"context"
	"errors"
	"testing"

	"pantry-chef/internal/pkg/common"
)

func TestToggleFridgeSetSemantics(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	added, err := svc.ToggleFridge(ctx, "u1", 5, false)
	if err != nil || !added {
		t.Fatalf("第一次切換 = (%v, %v), want (true, nil)", added, err)
	}

	entries, err := svc.Fridge(ctx, "u1")
	if err != nil || len(entries) != 1 {
		t.Fatalf("Fridge = (%v, %v), want 1 筆", entries, err)
	}
	if entries[0].AddedDate == "" {
		t.Error("AddedDate 不應為空")
	}

	added, err = svc.ToggleFridge(ctx, "u1", 5, false)
	if err != nil || added {
		t.Fatalf("第二次切換 = (%v, %v), want (false, nil)", added, err)
	}
	entries, _ = svc.Fridge(ctx, "u1")
	if len(entries) != 0 {
		t.Errorf("切換兩次後應為空, got %v", entries)
	}
}

func TestToggleFridgeCustomNamespace(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	// 目錄 id 與自建 id 數值相同但彼此獨立
	if _, err := svc.ToggleFridge(ctx, "u1", 7, false); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleFridge(ctx, "u1", 7, true); err != nil {
		t.Fatal(err)
	}
	entries, _ := svc.Fridge(ctx, "u1")
	if len(entries) != 2 {
		t.Errorf("len = %d, want 2: %v", len(entries), entries)
	}
}

func TestGuardRejectsOverlappingToggle(t *testing.T) {
	g := NewGuard()
	if !g.TryAcquire("k") {
		t.Fatal("第一次取得應成功")
	}
	if g.TryAcquire("k") {
		t.Error("重疊取得應失敗")
	}
	g.Release("k")
	if !g.TryAcquire("k") {
		t.Error("釋放後應可再次取得")
	}
}

func TestAddCustomIngredientSequentialIDs(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	first, err := svc.AddCustomIngredient(ctx, "u1", "Homemade Stock", "ml")
	if err != nil || first.ID != 1 {
		t.Fatalf("first = (%+v, %v), want ID 1", first, err)
	}
	second, err := svc.AddCustomIngredient(ctx, "u1", "Chili Paste", "g")
	if err != nil || second.ID != 2 {
		t.Fatalf("second = (%+v, %v), want ID 2", second, err)
	}

	// 另一個使用者的編號獨立
	other, err := svc.AddCustomIngredient(ctx, "u2", "Pesto", "g")
	if err != nil || other.ID != 1 {
		t.Fatalf("other = (%+v, %v), want ID 1", other, err)
	}
}

func TestToggleCollectionAndUpdate(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	saved, err := svc.ToggleCollection(ctx, "u1", 42)
	if err != nil || !saved {
		t.Fatalf("收藏 = (%v, %v), want (true, nil)", saved, err)
	}

	exclude := false
	mult := 2.5
	if err := svc.UpdateCollectionEntry(ctx, "u1", 42, &exclude, &mult); err != nil {
		t.Fatal(err)
	}
	entries, _ := svc.Collection(ctx, "u1")
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}
	if entries[0].IncludeInShoppingList == nil || *entries[0].IncludeInShoppingList {
		t.Errorf("IncludeInShoppingList = %v, want false", entries[0].IncludeInShoppingList)
	}
	if entries[0].Multiplier != 2.5 {
		t.Errorf("Multiplier = %v, want 2.5", entries[0].Multiplier)
	}

	if err := svc.UpdateCollectionEntry(ctx, "u1", 99, nil, nil); !errors.Is(err, common.ErrRecipeNotFound) {
		t.Errorf("更新不存在的收藏應回傳 ErrRecipeNotFound, got %v", err)
	}
}

func TestCookbookLifecycle(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	created, err := svc.SaveUserRecipe(ctx, "u1", common.UserRecipe{Name: "House Curry"})
	if err != nil || created.ID != 1 {
		t.Fatalf("created = (%+v, %v), want ID 1", created, err)
	}

	created.Name = "House Curry v2"
	updated, err := svc.SaveUserRecipe(ctx, "u1", created)
	if err != nil || updated.Name != "House Curry v2" {
		t.Fatalf("updated = (%+v, %v)", updated, err)
	}
	recipes, _ := svc.Cookbook(ctx, "u1")
	if len(recipes) != 1 || recipes[0].Name != "House Curry v2" {
		t.Errorf("Cookbook = %+v, want 覆寫後的一筆", recipes)
	}

	if _, err := svc.SaveUserRecipe(ctx, "u1", common.UserRecipe{ID: 99, Name: "Ghost"}); !errors.Is(err, common.ErrRecipeNotFound) {
		t.Errorf("更新不存在的食譜應回傳 ErrRecipeNotFound, got %v", err)
	}

	if err := svc.DeleteUserRecipe(ctx, "u1", 1); err != nil {
		t.Fatal(err)
	}
	recipes, _ = svc.Cookbook(ctx, "u1")
	if len(recipes) != 0 {
		t.Errorf("刪除後應為空, got %+v", recipes)
	}
}
