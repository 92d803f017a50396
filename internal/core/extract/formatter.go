package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pantry-chef/internal/infrastructure/config"
	"pantry-chef/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// formatPrompt 要求模型回傳與本地解析器相同結構的 JSON
const formatPrompt = `Extract the recipe from the following text. Respond with a single JSON object only, no commentary, using exactly these keys: name, description, ingredients (array of {amount, unit, name}, amount as string), instructions (array of strings), prepTime, cookTime, servings, cuisine, category. Use empty strings for unknown fields.

Text:
%s`

// Formatter AI 食譜擷取協作方客戶端
type Formatter struct {
	config *config.AIConfig
	client *resty.Client
}

// NewFormatter 建立 AI 擷取客戶端
func NewFormatter(cfg *config.AIConfig) *Formatter {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetTimeout(cfg.Timeout)

	return &Formatter{
		config: cfg,
		client: client,
	}
}

// Format 請求 AI 將原始文字擷取為結構化食譜
func (f *Formatter) Format(ctx context.Context, rawText string) common.FormatResult {
	if !f.config.Enabled {
		return common.FormatResult{Success: false, Error: "AI 擷取服務未啟用"}
	}

	req := map[string]interface{}{
		"model": f.config.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": fmt.Sprintf(formatPrompt, rawText),
			},
		},
		"max_tokens": f.config.MaxTokens,
	}

	start := time.Now()
	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	common.LogCollaboratorCall("ai-formatter", time.Since(start), err)

	if err != nil {
		return common.FormatResult{Success: false, Error: err.Error()}
	}
	if resp.StatusCode() != http.StatusOK {
		return common.FormatResult{Success: false, Error: fmt.Sprintf("AI API returned error: %s", resp.String())}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return common.FormatResult{Success: false, Error: fmt.Sprintf("failed to parse AI response: %v", err)}
	}
	if len(result.Choices) == 0 {
		return common.FormatResult{Success: false, Error: "no choices in AI response"}
	}

	recipe, err := decodeRecipe(result.Choices[0].Message.Content)
	if err != nil {
		return common.FormatResult{Success: false, Error: err.Error()}
	}
	return common.FormatResult{Success: true, Recipe: recipe}
}

// decodeRecipe 從模型輸出中搶救 JSON 物件並解碼
// 模型常在 JSON 前後夾帶說明文字或程式碼圍欄
func decodeRecipe(content string) (*common.ParsedRecipe, error) {
	raw := common.ExtractJSONObject(content)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in AI output")
	}
	raw = common.QuoteJSONKeys(raw)

	var recipe common.ParsedRecipe
	if err := common.ParseJSON(raw, &recipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe: %w", err)
	}
	if recipe.Name == "" && len(recipe.Ingredients) == 0 {
		return nil, fmt.Errorf("AI output contains no recipe content")
	}
	if recipe.Confidence <= 0 || recipe.Confidence > 1 {
		recipe.Confidence = aiDefaultConfidence
	}
	return &recipe, nil
}

// aiDefaultConfidence AI 擷取結果未附信心值時的預設值
const aiDefaultConfidence = 0.9
