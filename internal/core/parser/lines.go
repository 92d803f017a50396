package parser

import (
	"strings"

	"pantry-chef/internal/core/units"
	"pantry-chef/internal/pkg/common"
)

// ParseIngredientLine 解析單行食材文字
// 依序嘗試：完整樣式（數量+可選單位+名稱）→ 無數量樣式 → 純名稱後備
// 三者皆不符時回傳 false，該行不視為食材
func ParseIngredientLine(line string) (common.ParsedIngredient, bool) {
	text := strings.TrimSpace(units.NormalizeUnicodeFractions(line))
	if text == "" {
		return common.ParsedIngredient{}, false
	}

	// (a) 完整樣式
	if m := fullLinePattern.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[3])
		if name != "" {
			unit := ""
			if m[2] != "" {
				unit = units.NormalizeUnit(m[2])
			}
			return common.ParsedIngredient{
				Amount: strings.TrimSpace(m[1]),
				Unit:   unit,
				Name:   name,
			}, true
		}
	}

	// (b) 無數量樣式，整行保留為名稱
	for _, pat := range noAmountPatterns {
		if pat.MatchString(text) {
			return common.ParsedIngredient{Name: text}, true
		}
	}

	// (c) 後備：字母開頭且長度在限制內的行保留為純名稱食材
	if nameOnlyPattern.MatchString(text) {
		return common.ParsedIngredient{Name: text}, true
	}

	return common.ParsedIngredient{}, false
}

// IsInstructionLine 判斷該行是否為步驟起始行
// 編號標記（"1. "、"2) "）或料理動詞開頭皆視為步驟
func IsInstructionLine(line string) bool {
	text := strings.TrimSpace(line)
	if text == "" {
		return false
	}
	if numberedLinePattern.MatchString(text) {
		return true
	}
	first := strings.ToLower(strings.TrimRight(strings.Fields(text)[0], ".,:;!"))
	return instructionVerbs[first]
}

// DetectSectionHeader 判斷該行是否為段落標頭，回傳段落類型
func DetectSectionHeader(line string) (SectionType, bool) {
	text := strings.TrimSpace(line)
	if ingredientsHeaderPattern.MatchString(text) {
		return SectionIngredients, true
	}
	if instructionsHeaderPattern.MatchString(text) {
		return SectionInstructions, true
	}
	return "", false
}

// isBoilerplate 判斷標題掃描時要跳過的雜訊行
func isBoilerplate(line string) bool {
	for _, pat := range boilerplatePatterns {
		if pat.MatchString(line) {
			return true
		}
	}
	return false
}

// isFullIngredientLine 同時帶有數量與單位的行（標題掃描排除用）
func isFullIngredientLine(line string) bool {
	parsed, ok := ParseIngredientLine(line)
	return ok && parsed.Amount != "" && parsed.Unit != ""
}

// stripInstructionMarker 去除步驟編號標記
func stripInstructionMarker(line string) string {
	return strings.TrimSpace(numberedLinePattern.ReplaceAllString(strings.TrimSpace(line), ""))
}
