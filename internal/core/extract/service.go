package extract

import (
	"context"
	"time"

	"pantry-chef/internal/core/parser"
	"pantry-chef/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 食譜匯入服務
// 文字來源優先走 AI 擷取，失敗或未啟用時退回本地解析器
type Service struct {
	ocr       *OCRClient
	formatter *Formatter
}

// NewService 建立匯入服務
func NewService(ocr *OCRClient, formatter *Formatter) *Service {
	return &Service{
		ocr:       ocr,
		formatter: formatter,
	}
}

// ImportText 從自由文字匯入食譜
func (s *Service) ImportText(ctx context.Context, text string) common.ParsedRecipe {
	traceID := common.GenerateUUID()
	if s.formatter != nil {
		result := s.formatter.Format(ctx, text)
		if result.Success && result.Recipe != nil {
			common.LogInfo("AI 擷取成功",
				zap.String("trace_id", traceID),
				zap.Int("食材數", len(result.Recipe.Ingredients)),
			)
			return *result.Recipe
		}
		if result.Error != "" {
			common.LogWarn("AI 擷取失敗，改用本地解析",
				zap.String("trace_id", traceID),
				zap.String("原因", result.Error),
			)
		}
	}

	start := time.Now()
	parsed := parser.Parse(text)
	common.LogParseResult("local", len(parsed.Ingredients), len(parsed.Instructions), parsed.Confidence, time.Since(start))
	return parsed
}

// ImportImage 從圖片匯入食譜，OCR 失敗時回傳錯誤
func (s *Service) ImportImage(ctx context.Context, imageData string) (common.ParsedRecipe, error) {
	if s.ocr == nil {
		return common.ParsedRecipe{}, common.ErrOCRFailed
	}

	ocrResult := s.ocr.Recognize(ctx, imageData)
	if !ocrResult.Success {
		common.LogWarn("OCR 辨識失敗", zap.String("原因", ocrResult.Error))
		return common.ParsedRecipe{}, common.ErrOCRFailed
	}

	return s.ImportText(ctx, ocrResult.RawText), nil
}
