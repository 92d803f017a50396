package parser

import (
	"regexp"
	"sort"
	"strings"

	"pantry-chef/internal/core/units"
)

// OCR / HTML 雜訊與版面樣式
var (
	// 標題掃描時要跳過的樣板行：頁碼、純數字、網址、帳號、版權聲明
	boilerplatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^page\s+\d+`),
		regexp.MustCompile(`^\d+$`),
		regexp.MustCompile(`(?i)(https?://|www\.)`),
		regexp.MustCompile(`^@[\w.]+`),
		regexp.MustCompile(`(?i)(copyright|©|all rights reserved)`),
	}

	// 編號清單標記："1. "、"2) "、"(3) "
	numberedLinePattern = regexp.MustCompile(`^\(?\d+[\.\)]\s+`)

	// 中繼資料
	timeValue          = `\d+\s*(?:hours?|hrs?|hr|h|minutes?|mins?|min|m)\b(?:\s*(?:and\s+)?\d+\s*(?:minutes?|mins?|min|m)\b)?`
	prepTimePattern    = regexp.MustCompile(`(?i)\bprep(?:aration)?(?:\s+time)?\s*[:\-]?\s*(` + timeValue + `)`)
	cookTimePattern    = regexp.MustCompile(`(?i)\bcook(?:ing)?(?:\s+time)?\s*[:\-]?\s*(` + timeValue + `)`)
	servingsPattern    = regexp.MustCompile(`(?i)\b(?:servings?|serves|yields?|makes)\s*[:\-]?\s*(\d+)`)
)

// SectionType 段落標頭類型
type SectionType string

const (
	SectionIngredients  SectionType = "ingredients"
	SectionInstructions SectionType = "instructions"
)

// 段落標頭同義詞（行首比對，可帶結尾冒號）
var (
	ingredientsHeaderPattern  = regexp.MustCompile(`(?i)^(?:ingredients?|ingredient list|what you(?:'ll)? need|you will need|shopping list)\s*:?\s*$`)
	instructionsHeaderPattern = regexp.MustCompile(`(?i)^(?:instructions?|directions?|method|steps?|preparation|how to make(?: it)?)\s*:?\s*$`)
)

// 食材行樣式
var (
	// 數量：帶整數的斜線分數、斜線分數、或一般數字
	amountPattern = `(?:\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?)`
	// 區間："1-2"、"1 to 2"
	amountRangePattern = amountPattern + `(?:\s*(?:-|–|to)\s*` + amountPattern + `)?`

	// 完整樣式：<數量><可選單位>[.,]? <名稱>
	fullLinePattern = regexp.MustCompile(
		`(?i)^(` + amountRangePattern + `)\s*(` + unitAlternation() + `)?\b[.,]?\s+(.+)$`)

	// 無數量樣式："Salt to taste"、"Pepper as needed"、"... for garnish"、"... (optional)"
	noAmountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^.+\s+to taste$`),
		regexp.MustCompile(`(?i)^.+\s+as needed$`),
		regexp.MustCompile(`(?i)^.+\s+for (?:garnish|serving|dusting)$`),
		regexp.MustCompile(`(?i)^.+\s*\(optional\)$`),
	}

	// 後備樣式：字母開頭且長度 < 100 的行保留為純名稱食材
	nameOnlyPattern = regexp.MustCompile(`(?i)^[a-z].{0,98}$`)
)

// unitAlternation 由單位變體表組出正規表達式選項，長拼寫在前
func unitAlternation() string {
	variations := units.AllUnitVariations()
	// 單字母 T/t 不在變體索引中（大小寫有別，索引只收小寫）
	// 比對時仍需接受，原樣捕捉後由 NormalizeUnit 分辨
	variations = append(variations, "t")
	sort.Slice(variations, func(i, j int) bool {
		if len(variations[i]) != len(variations[j]) {
			return len(variations[i]) > len(variations[j])
		}
		return variations[i] < variations[j]
	})
	quoted := make([]string, len(variations))
	for i, v := range variations {
		quoted[i] = regexp.QuoteMeta(v)
	}
	return strings.Join(quoted, "|")
}

// instructionVerbs 步驟起始動詞
var instructionVerbs = map[string]bool{
	"preheat": true, "mix": true, "stir": true, "add": true, "combine": true,
	"pour": true, "bake": true, "cook": true, "heat": true, "boil": true,
	"simmer": true, "whisk": true, "fold": true, "beat": true, "chop": true,
	"slice": true, "dice": true, "mince": true, "grate": true, "blend": true,
	"puree": true, "saute": true, "fry": true, "roast": true, "grill": true,
	"broil": true, "steam": true, "drain": true, "rinse": true, "season": true,
	"serve": true, "garnish": true, "let": true, "allow": true, "set": true,
	"place": true, "remove": true, "transfer": true, "cover": true, "uncover": true,
}
