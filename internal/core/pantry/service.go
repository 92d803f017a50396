package pantry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pantry-chef/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 使用者狀態服務
// 冰箱與收藏採集合語意：重複加入與移除不存在的項目皆為 no-op
type Service struct {
	store Store
	guard *Guard
}

// NewService 建立使用者狀態服務
func NewService(store Store) *Service {
	return &Service{
		store: store,
		guard: NewGuard(),
	}
}

func fridgeKey(user string) string     { return fmt.Sprintf("pantry:fridge:%s", user) }
func customKey(user string) string     { return fmt.Sprintf("pantry:custom:%s", user) }
func collectionKey(user string) string { return fmt.Sprintf("pantry:collection:%s", user) }
func cookbookKey(user string) string   { return fmt.Sprintf("pantry:cookbook:%s", user) }

// 目錄資料的鍵，目錄為唯讀資料、不分使用者
const (
	catalogIngredientsKey = "catalog:ingredients"
	catalogRecipesKey     = "catalog:recipes"
)

// load 讀取 JSON 區塊，鍵不存在時維持 out 的零值
func (s *Service) load(ctx context.Context, key string, out interface{}) error {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		common.LogError("讀取使用者狀態失敗", zap.String("鍵", key), zap.Error(err))
		return common.ErrStorageUnavailable
	}
	if err := common.ParseJSONBytes(data, out); err != nil {
		common.LogError("使用者狀態格式錯誤", zap.String("鍵", key), zap.Error(err))
		return common.ErrStorageUnavailable
	}
	return nil
}

func (s *Service) save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		common.LogError("寫入使用者狀態失敗", zap.String("鍵", key), zap.Error(err))
		return common.ErrStorageUnavailable
	}
	return nil
}

// CatalogIngredients 取得食材目錄
func (s *Service) CatalogIngredients(ctx context.Context) ([]common.Ingredient, error) {
	items := []common.Ingredient{}
	if err := s.load(ctx, catalogIngredientsKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CatalogRecipes 取得食譜目錄
func (s *Service) CatalogRecipes(ctx context.Context) ([]common.Recipe, error) {
	recipes := []common.Recipe{}
	if err := s.load(ctx, catalogRecipesKey, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// SeedCatalog 寫入目錄資料（初始化與測試用）
func (s *Service) SeedCatalog(ctx context.Context, ingredients []common.Ingredient, recipes []common.Recipe) error {
	if err := s.save(ctx, catalogIngredientsKey, ingredients); err != nil {
		return err
	}
	return s.save(ctx, catalogRecipesKey, recipes)
}

// OwnedIngredients 解析冰箱項目為具名食材列表
// 目錄項目以目錄 id 解析，自建項目以自建 id 解析，解析不到的項目略過
func (s *Service) OwnedIngredients(ctx context.Context, user string, catalog []common.Ingredient) ([]common.Named, error) {
	entries, err := s.Fridge(ctx, user)
	if err != nil {
		return nil, err
	}
	custom, err := s.CustomIngredients(ctx, user)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]common.Ingredient, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}
	customByID := make(map[int]common.CustomIngredient, len(custom))
	for _, item := range custom {
		customByID[item.ID] = item
	}

	owned := make([]common.Named, 0, len(entries))
	for _, e := range entries {
		if e.IsCustom {
			if item, ok := customByID[e.IngredientID]; ok {
				owned = append(owned, item)
			}
			continue
		}
		if item, ok := byID[e.IngredientID]; ok {
			owned = append(owned, item)
		}
	}
	return owned, nil
}

// Fridge 取得冰箱內容
func (s *Service) Fridge(ctx context.Context, user string) ([]common.FridgeEntry, error) {
	entries := []common.FridgeEntry{}
	if err := s.load(ctx, fridgeKey(user), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ToggleFridge 切換冰箱食材，回傳切換後是否持有
// 同一 (使用者, 食材) 的切換同時只允許一個進行中
func (s *Service) ToggleFridge(ctx context.Context, user string, ingredientID int, isCustom bool) (bool, error) {
	guardKey := fmt.Sprintf("fridge:%s:%d:%t", user, ingredientID, isCustom)
	if !s.guard.TryAcquire(guardKey) {
		return false, common.ErrToggleInFlight
	}
	defer s.guard.Release(guardKey)

	entries, err := s.Fridge(ctx, user)
	if err != nil {
		return false, err
	}

	kept := entries[:0]
	removed := false
	for _, e := range entries {
		if e.IngredientID == ingredientID && e.IsCustom == isCustom {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		kept = append(kept, common.FridgeEntry{
			IngredientID: ingredientID,
			IsCustom:     isCustom,
			AddedDate:    time.Now().UTC().Format(time.RFC3339),
		})
	}

	if err := s.save(ctx, fridgeKey(user), kept); err != nil {
		return false, err
	}
	return !removed, nil
}

// CustomIngredients 取得自建食材
func (s *Service) CustomIngredients(ctx context.Context, user string) ([]common.CustomIngredient, error) {
	items := []common.CustomIngredient{}
	if err := s.load(ctx, customKey(user), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddCustomIngredient 新增自建食材，id 由使用者範圍內遞增編號
func (s *Service) AddCustomIngredient(ctx context.Context, user, name, unit string) (common.CustomIngredient, error) {
	items, err := s.CustomIngredients(ctx, user)
	if err != nil {
		return common.CustomIngredient{}, err
	}

	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	created := common.CustomIngredient{ID: maxID + 1, Name: name, Unit: unit}
	items = append(items, created)

	if err := s.save(ctx, customKey(user), items); err != nil {
		return common.CustomIngredient{}, err
	}
	return created, nil
}

// Collection 取得收藏的目錄食譜
func (s *Service) Collection(ctx context.Context, user string) ([]common.CollectionEntry, error) {
	entries := []common.CollectionEntry{}
	if err := s.load(ctx, collectionKey(user), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ToggleCollection 切換食譜收藏，回傳切換後是否在收藏中
func (s *Service) ToggleCollection(ctx context.Context, user string, recipeID int) (bool, error) {
	guardKey := fmt.Sprintf("collection:%s:%d", user, recipeID)
	if !s.guard.TryAcquire(guardKey) {
		return false, common.ErrToggleInFlight
	}
	defer s.guard.Release(guardKey)

	entries, err := s.Collection(ctx, user)
	if err != nil {
		return false, err
	}

	kept := entries[:0]
	removed := false
	for _, e := range entries {
		if e.RecipeID == recipeID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		kept = append(kept, common.CollectionEntry{
			RecipeID:  recipeID,
			AddedDate: time.Now().UTC().Format(time.RFC3339),
		})
	}

	if err := s.save(ctx, collectionKey(user), kept); err != nil {
		return false, err
	}
	return !removed, nil
}

// UpdateCollectionEntry 調整收藏項目的購物清單設定與份量倍率
// nil 表示不變更該欄位；食譜不在收藏中時回傳 ErrRecipeNotFound
func (s *Service) UpdateCollectionEntry(ctx context.Context, user string, recipeID int, include *bool, multiplier *float64) error {
	entries, err := s.Collection(ctx, user)
	if err != nil {
		return err
	}

	found := false
	for i := range entries {
		if entries[i].RecipeID != recipeID {
			continue
		}
		found = true
		if include != nil {
			entries[i].IncludeInShoppingList = include
		}
		if multiplier != nil {
			entries[i].Multiplier = *multiplier
		}
	}
	if !found {
		return common.ErrRecipeNotFound
	}

	return s.save(ctx, collectionKey(user), entries)
}

// Cookbook 取得自建食譜
func (s *Service) Cookbook(ctx context.Context, user string) ([]common.UserRecipe, error) {
	recipes := []common.UserRecipe{}
	if err := s.load(ctx, cookbookKey(user), &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// SaveUserRecipe 新增或更新自建食譜
// id 為 0 時視為新增並遞增編號，否則覆寫同 id 的既有食譜
func (s *Service) SaveUserRecipe(ctx context.Context, user string, recipe common.UserRecipe) (common.UserRecipe, error) {
	recipes, err := s.Cookbook(ctx, user)
	if err != nil {
		return common.UserRecipe{}, err
	}

	if recipe.ID == 0 {
		maxID := 0
		for _, r := range recipes {
			if r.ID > maxID {
				maxID = r.ID
			}
		}
		recipe.ID = maxID + 1
		recipes = append(recipes, recipe)
	} else {
		found := false
		for i := range recipes {
			if recipes[i].ID == recipe.ID {
				recipes[i] = recipe
				found = true
				break
			}
		}
		if !found {
			return common.UserRecipe{}, common.ErrRecipeNotFound
		}
	}

	if err := s.save(ctx, cookbookKey(user), recipes); err != nil {
		return common.UserRecipe{}, err
	}
	return recipe, nil
}

// DeleteUserRecipe 刪除自建食譜，不存在時為 no-op
func (s *Service) DeleteUserRecipe(ctx context.Context, user string, recipeID int) error {
	recipes, err := s.Cookbook(ctx, user)
	if err != nil {
		return err
	}

	kept := recipes[:0]
	for _, r := range recipes {
		if r.ID != recipeID {
			kept = append(kept, r)
		}
	}
	return s.save(ctx, cookbookKey(user), kept)
}
