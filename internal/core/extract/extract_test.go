package extract

import (
	"context"
	"testing"

	"pantry-chef/internal/infrastructure/config"
)

func TestDecodeRecipeSalvagesFencedJSON(t *testing.T) {
	content := "Here is the recipe:\n```json\n{\"name\": \"Pancakes\", \"ingredients\": [{\"amount\": \"2\", \"unit\": \"cup\", \"name\": \"flour\"}], \"instructions\": [\"Mix.\"]}\n```"
	recipe, err := decodeRecipe(content)
	if err != nil {
		t.Fatal(err)
	}
	if recipe.Name != "Pancakes" || len(recipe.Ingredients) != 1 {
		t.Errorf("recipe = %+v", recipe)
	}
	if recipe.Confidence != aiDefaultConfidence {
		t.Errorf("Confidence = %v, want %v", recipe.Confidence, aiDefaultConfidence)
	}
}

func TestDecodeRecipeRejectsEmpty(t *testing.T) {
	for _, content := range []string{"no json here", "{}", "```json\n{\"description\": \"x\"}\n```"} {
		if _, err := decodeRecipe(content); err == nil {
			t.Errorf("decodeRecipe(%q) 應回傳錯誤", content)
		}
	}
}

func TestImportTextFallsBackToLocalParser(t *testing.T) {
	svc := NewService(
		NewOCRClient(&config.OCRConfig{Enabled: false}),
		NewFormatter(&config.AIConfig{Enabled: false}),
	)

	got := svc.ImportText(context.Background(), "Quick Salsa\n2 cups tomatoes\n1 tbsp lime juice\nChop the tomatoes before combining everything in a serving bowl.")
	if got.Name != "Quick Salsa" {
		t.Errorf("Name = %q, want %q", got.Name, "Quick Salsa")
	}
	if len(got.Ingredients) != 2 {
		t.Errorf("len(Ingredients) = %d, want 2: %+v", len(got.Ingredients), got.Ingredients)
	}
}

func TestImportImageFailsWhenOCRDisabled(t *testing.T) {
	svc := NewService(NewOCRClient(&config.OCRConfig{Enabled: false}), nil)
	if _, err := svc.ImportImage(context.Background(), "base64data"); err == nil {
		t.Error("OCR 未啟用時應回傳錯誤")
	}
}
