// Package parser 將 OCR／HTML 的原始多行文字解析為結構化食譜
// 作為 AI 擷取的無依賴後備與驗證層，輸出格式與 AI 擷取結果一致
package parser

import (
	"regexp"
	"strings"

	"pantry-chef/internal/pkg/common"
)

// UntitledRecipe 找不到標題時的預設值
const UntitledRecipe = "Untitled Recipe"

// titleScanLimit 標題只在最前面的非空行中尋找
const titleScanLimit = 10

// ambiguousLineLength 啟發式模式下，超過此長度且無數量單位的行視為步驟
const ambiguousLineLength = 50

var lineSplitPattern = regexp.MustCompile(`\r\n|\r|\n`)

// passResult 單一解析策略的產出，兩種策略回傳同構結果以便逐欄合併
type passResult struct {
	ingredients  []common.ParsedIngredient
	instructions []string
}

// Parse 解析自由文字為結構化食譜
// 單趟管線：行切分 → 標題 → 中繼資料 → 段落定位 → 段落解析，
// 段落解析產出不足時改用啟發式重掃，逐欄保留產出較多者
func Parse(text string) common.ParsedRecipe {
	result := common.ParsedRecipe{
		Name:         UntitledRecipe,
		Ingredients:  []common.ParsedIngredient{},
		Instructions: []string{},
	}

	lines := splitLines(text)
	if len(lines) == 0 {
		return result
	}

	title, titleIdx := extractTitle(lines)
	if title != "" {
		result.Name = title
	}
	result.PrepTime, result.CookTime, result.Servings = extractMetadata(text)

	sectionPass := parseSections(lines)

	// 段落解析產出不足時啟用啟發式重掃
	if len(sectionPass.ingredients) < 2 || len(sectionPass.instructions) < 1 {
		heuristicPass := parseHeuristic(lines, titleIdx+1)
		if len(heuristicPass.ingredients) > len(sectionPass.ingredients) {
			sectionPass.ingredients = heuristicPass.ingredients
		}
		if len(heuristicPass.instructions) > len(sectionPass.instructions) {
			sectionPass.instructions = heuristicPass.instructions
		}
	}

	result.Ingredients = sectionPass.ingredients
	result.Instructions = sectionPass.instructions
	result.Confidence = scoreConfidence(result)
	return result
}

// splitLines 以任意換行切分、去除前後空白、丟棄空行
func splitLines(text string) []string {
	raw := lineSplitPattern.Split(text, -1)
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// extractTitle 在最前面的非空行中尋找標題
// 跳過樣板雜訊、過短的行、段落標頭、編號行，以及帶數量與單位的完整食材行
// 找不到時回傳空字串與 -1
func extractTitle(lines []string) (string, int) {
	limit := titleScanLimit
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		if isBoilerplate(line) {
			continue
		}
		if len(line) < 3 {
			continue
		}
		if _, ok := DetectSectionHeader(line); ok {
			continue
		}
		if numberedLinePattern.MatchString(line) {
			continue
		}
		if isFullIngredientLine(line) {
			continue
		}
		return line, i
	}
	return "", -1
}

// extractMetadata 從全文擷取準備時間、烹調時間與份量，未匹配的欄位為空字串
func extractMetadata(text string) (prepTime, cookTime, servings string) {
	if m := prepTimePattern.FindStringSubmatch(text); m != nil {
		prepTime = strings.TrimSpace(m[1])
	}
	if m := cookTimePattern.FindStringSubmatch(text); m != nil {
		cookTime = strings.TrimSpace(m[1])
	}
	if m := servingsPattern.FindStringSubmatch(text); m != nil {
		servings = strings.TrimSpace(m[1])
	}
	return prepTime, cookTime, servings
}

// parseSections 段落解析：依標頭定位食材與步驟範圍後分別解析
func parseSections(lines []string) passResult {
	ingHeaderIdx, insHeaderIdx := -1, -1
	for i, line := range lines {
		section, ok := DetectSectionHeader(line)
		if !ok {
			continue
		}
		switch {
		case section == SectionIngredients && ingHeaderIdx == -1:
			ingHeaderIdx = i
		case section == SectionInstructions && insHeaderIdx == -1:
			insHeaderIdx = i
		}
	}

	var result passResult

	// 食材範圍：標頭後一行起，到下一個標頭前
	// 沒有步驟標頭時，以第一個步驟樣式的行為界
	ingStart, ingEnd := -1, -1
	insStart := -1
	if ingHeaderIdx >= 0 {
		ingStart = ingHeaderIdx + 1
		if insHeaderIdx > ingHeaderIdx {
			ingEnd = insHeaderIdx
		} else {
			ingEnd = len(lines)
			for i := ingStart; i < len(lines); i++ {
				if IsInstructionLine(lines[i]) {
					ingEnd = i
					insStart = i
					break
				}
			}
		}
	}
	if insHeaderIdx >= 0 {
		insStart = insHeaderIdx + 1
	}

	if ingStart >= 0 {
		for i := ingStart; i < ingEnd && i < len(lines); i++ {
			line := lines[i]
			if _, ok := DetectSectionHeader(line); ok {
				continue
			}
			if len(line) < 3 {
				continue
			}
			if parsed, ok := ParseIngredientLine(line); ok {
				result.ingredients = append(result.ingredients, parsed)
			}
		}
	}

	if insStart >= 0 {
		result.instructions = collectInstructions(lines[insStart:])
	}

	return result
}

// parseHeuristic 無標頭時的啟發式重掃
// 從標題後一行起以「食材模式」開始，遇到步驟標頭、步驟動詞行、
// 或無數量單位的長行時切換為「步驟模式」
func parseHeuristic(lines []string, start int) passResult {
	if start < 0 {
		start = 0
	}

	var result passResult
	var current strings.Builder
	inInstructions := false

	flush := func() {
		if current.Len() > 0 {
			result.instructions = append(result.instructions, current.String())
			current.Reset()
		}
	}
	startInstruction := func(line string) {
		flush()
		current.WriteString(stripInstructionMarker(line))
	}

	for i := start; i < len(lines); i++ {
		line := lines[i]
		if section, ok := DetectSectionHeader(line); ok {
			if section == SectionInstructions {
				inInstructions = true
			} else {
				inInstructions = false
			}
			continue
		}

		if !inInstructions {
			if IsInstructionLine(line) {
				inInstructions = true
				startInstruction(line)
				continue
			}
			parsed, ok := ParseIngredientLine(line)
			measurable := ok && parsed.Amount != "" && parsed.Unit != ""
			// 模稜兩可的長行：沒有可度量的數量單位時視為步驟
			if !measurable && len(line) >= ambiguousLineLength {
				inInstructions = true
				startInstruction(line)
				continue
			}
			if ok {
				result.ingredients = append(result.ingredients, parsed)
			}
			continue
		}

		if numberedLinePattern.MatchString(line) || IsInstructionLine(line) {
			startInstruction(line)
			continue
		}
		// 續行接在目前步驟之後
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(line)
	}
	flush()

	return result
}

// collectInstructions 解析步驟區塊：編號或動詞行開新步驟，其餘為續行
func collectInstructions(lines []string) []string {
	var out []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			out = append(out, current.String())
			current.Reset()
		}
	}

	for _, line := range lines {
		if _, ok := DetectSectionHeader(line); ok {
			continue
		}
		if len(line) < 2 {
			continue
		}
		if numberedLinePattern.MatchString(line) || IsInstructionLine(line) {
			flush()
			current.WriteString(stripInstructionMarker(line))
			continue
		}
		if current.Len() > 0 {
			current.WriteString(" ")
			current.WriteString(line)
			continue
		}
		current.WriteString(line)
	}
	flush()

	return out
}

// scoreConfidence 加權評分：標題 20、食材數 40、數量覆蓋率 10、步驟數 30、中繼資料 10
// 回傳 earned/possible，落在 [0,1]
func scoreConfidence(rec common.ParsedRecipe) float64 {
	var earned, possible float64

	possible += 20
	if rec.Name != "" && rec.Name != UntitledRecipe {
		earned += 20
	}

	possible += 40
	switch {
	case len(rec.Ingredients) >= 3:
		earned += 40
	case len(rec.Ingredients) >= 1:
		earned += 20
	}

	possible += 10
	if len(rec.Ingredients) > 0 {
		withAmount := 0
		for _, ing := range rec.Ingredients {
			if ing.Amount != "" {
				withAmount++
			}
		}
		if withAmount*2 >= len(rec.Ingredients) {
			earned += 10
		}
	}

	possible += 30
	switch {
	case len(rec.Instructions) >= 3:
		earned += 30
	case len(rec.Instructions) >= 1:
		earned += 15
	}

	possible += 10
	if rec.PrepTime != "" || rec.CookTime != "" || rec.Servings != "" {
		earned += 10
	}

	return earned / possible
}
