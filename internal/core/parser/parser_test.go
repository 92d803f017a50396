package parser

import (
	"strings"
	"testing"

	"pantry-chef/internal/pkg/common"
)

const sampleRecipe = `Classic Pancakes

Prep time: 10 minutes
Cook time: 15 minutes
Serves: 4

Ingredients:
2 cups flour
1/2 tsp salt
1 tbsp sugar
2 eggs

Instructions:
1. Mix everything.
2. Whisk until smooth.
3. Cook on a hot griddle until golden.`

func TestParseCompleteRecipe(t *testing.T) {
	result := Parse(sampleRecipe)

	if result.Name != "Classic Pancakes" {
		t.Errorf("Name = %q, want %q", result.Name, "Classic Pancakes")
	}
	if result.PrepTime != "10 minutes" {
		t.Errorf("PrepTime = %q, want %q", result.PrepTime, "10 minutes")
	}
	if result.CookTime != "15 minutes" {
		t.Errorf("CookTime = %q, want %q", result.CookTime, "15 minutes")
	}
	if result.Servings != "4" {
		t.Errorf("Servings = %q, want %q", result.Servings, "4")
	}

	wantIngredients := []common.ParsedIngredient{
		{Amount: "2", Unit: "cup", Name: "flour"},
		{Amount: "1/2", Unit: "tsp", Name: "salt"},
		{Amount: "1", Unit: "tbsp", Name: "sugar"},
		{Amount: "2", Unit: "", Name: "eggs"},
	}
	if len(result.Ingredients) != len(wantIngredients) {
		t.Fatalf("len(Ingredients) = %d, want %d: %+v", len(result.Ingredients), len(wantIngredients), result.Ingredients)
	}
	for i, want := range wantIngredients {
		if result.Ingredients[i] != want {
			t.Errorf("Ingredients[%d] = %+v, want %+v", i, result.Ingredients[i], want)
		}
	}

	if len(result.Instructions) != 3 {
		t.Fatalf("len(Instructions) = %d, want 3: %v", len(result.Instructions), result.Instructions)
	}
	if result.Instructions[0] != "Mix everything." {
		t.Errorf("Instructions[0] = %q, want %q", result.Instructions[0], "Mix everything.")
	}

	if result.Confidence <= 0.8 {
		t.Errorf("Confidence = %v, want > 0.8", result.Confidence)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\n"} {
		result := Parse(input)
		if result.Name != UntitledRecipe {
			t.Errorf("Parse(%q).Name = %q, want %q", input, result.Name, UntitledRecipe)
		}
		if result.Confidence != 0 {
			t.Errorf("Parse(%q).Confidence = %v, want 0", input, result.Confidence)
		}
		if len(result.Ingredients) != 0 || len(result.Instructions) != 0 {
			t.Errorf("Parse(%q) 應回傳空食材與空步驟", input)
		}
	}
}

func TestParseHeadingless(t *testing.T) {
	text := `Quick Salsa
2 cups tomatoes
1/4 cup onion
1 tbsp lime juice
Chop the tomatoes and onion very finely before combining them in a bowl.
Stir in the lime juice and let rest for ten minutes.`

	result := Parse(text)
	if result.Name != "Quick Salsa" {
		t.Errorf("Name = %q, want %q", result.Name, "Quick Salsa")
	}
	if len(result.Ingredients) != 3 {
		t.Fatalf("len(Ingredients) = %d, want 3: %+v", len(result.Ingredients), result.Ingredients)
	}
	if result.Ingredients[0].Name != "tomatoes" {
		t.Errorf("Ingredients[0].Name = %q, want %q", result.Ingredients[0].Name, "tomatoes")
	}
	if len(result.Instructions) != 2 {
		t.Fatalf("len(Instructions) = %d, want 2: %v", len(result.Instructions), result.Instructions)
	}
}

func TestParseIngredientLineVariants(t *testing.T) {
	tests := []struct {
		line string
		want common.ParsedIngredient
		ok   bool
	}{
		{"2 cups flour", common.ParsedIngredient{Amount: "2", Unit: "cup", Name: "flour"}, true},
		{"1/2 tsp salt", common.ParsedIngredient{Amount: "1/2", Unit: "tsp", Name: "salt"}, true},
		{"1 1/2 cups milk", common.ParsedIngredient{Amount: "1 1/2", Unit: "cup", Name: "milk"}, true},
		{"1½ cups milk", common.ParsedIngredient{Amount: "1 1/2", Unit: "cup", Name: "milk"}, true},
		{"1 T sugar", common.ParsedIngredient{Amount: "1", Unit: "tbsp", Name: "sugar"}, true},
		{"2 eggs", common.ParsedIngredient{Amount: "2", Unit: "", Name: "eggs"}, true},
		{"Salt to taste", common.ParsedIngredient{Amount: "", Unit: "", Name: "Salt to taste"}, true},
		{"fresh basil leaves", common.ParsedIngredient{Amount: "", Unit: "", Name: "fresh basil leaves"}, true},
	}
	for _, tt := range tests {
		got, ok := ParseIngredientLine(tt.line)
		if ok != tt.ok {
			t.Errorf("ParseIngredientLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseIngredientLine(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestDetectSectionHeader(t *testing.T) {
	tests := []struct {
		line    string
		section SectionType
		ok      bool
	}{
		{"Ingredients:", SectionIngredients, true},
		{"INGREDIENTS", SectionIngredients, true},
		{"What you'll need", SectionIngredients, true},
		{"Directions", SectionInstructions, true},
		{"Method:", SectionInstructions, true},
		{"2 cups flour", "", false},
		{"Ingredients are fresh here", "", false},
	}
	for _, tt := range tests {
		section, ok := DetectSectionHeader(tt.line)
		if ok != tt.ok || section != tt.section {
			t.Errorf("DetectSectionHeader(%q) = (%q, %v), want (%q, %v)", tt.line, section, ok, tt.section, tt.ok)
		}
	}
}

func TestIsInstructionLine(t *testing.T) {
	positives := []string{"1. Mix everything.", "2) Whisk until smooth", "Preheat the oven to 350F", "mix the dry ingredients"}
	for _, line := range positives {
		if !IsInstructionLine(line) {
			t.Errorf("IsInstructionLine(%q) = false, want true", line)
		}
	}
	negatives := []string{"2 cups flour", "fresh basil", "Ingredients:"}
	for _, line := range negatives {
		if IsInstructionLine(line) {
			t.Errorf("IsInstructionLine(%q) = true, want false", line)
		}
	}
}

func TestConfidenceNeverExceedsOne(t *testing.T) {
	result := Parse(sampleRecipe)
	if result.Confidence < 0 || result.Confidence > 1 {
		t.Errorf("Confidence = %v, 應介於 0 與 1 之間", result.Confidence)
	}
}

func TestInstructionContinuationLines(t *testing.T) {
	text := `Bread

Ingredients:
3 cups flour
1 tsp yeast

Instructions:
1. Mix the flour and yeast
together in a large bowl.
2. Knead for ten minutes.`

	result := Parse(text)
	if len(result.Instructions) != 2 {
		t.Fatalf("len(Instructions) = %d, want 2: %v", len(result.Instructions), result.Instructions)
	}
	if !strings.Contains(result.Instructions[0], "together in a large bowl") {
		t.Errorf("續行應併入前一步驟, got %q", result.Instructions[0])
	}
}
