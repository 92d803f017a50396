// Package extract 對接外部協作方：OCR 文字辨識與 AI 食譜擷取
// 協作方失敗時一律退回本地解析器，匯入流程不因外部服務中斷
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

// OCRClient OCR 協作方客戶端
type OCRClient struct {
	config *config.OCRConfig
	client *resty.Client
}

// NewOCRClient 建立 OCR 客戶端
func NewOCRClient(cfg *config.OCRConfig) *OCRClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetTimeout(cfg.Timeout)

	return &OCRClient{
		config: cfg,
		client: client,
	}
}

// Recognize 辨識圖片中的文字
func (c *OCRClient) Recognize(ctx context.Context, imageData string) common.OCRResult {
	if !c.config.Enabled {
		return common.OCRResult{Success: false, Error: "OCR 服務未啟用"}
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"image": imageData}).
		Post("/v1/recognize")
	common.LogCollaboratorCall("ocr", time.Since(start), err)

	if err != nil {
		return common.OCRResult{Success: false, Error: err.Error()}
	}
	if resp.StatusCode() != http.StatusOK {
		return common.OCRResult{Success: false, Error: fmt.Sprintf("OCR API returned error: %s", resp.String())}
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return common.OCRResult{Success: false, Error: fmt.Sprintf("failed to parse OCR response: %v", err)}
	}
	if result.Text == "" {
		return common.OCRResult{Success: false, Error: "OCR 未辨識到任何文字"}
	}

	return common.OCRResult{Success: true, RawText: result.Text}
}
