package units

import (
	"strconv"
	"strings"
)

// NormalizeUnit 將 OCR 拼寫／縮寫正規化為標準單位名稱
// 查無對應時原樣回傳小寫輸入，不視為錯誤
func NormalizeUnit(raw string) string {
	trimmed := strings.TrimSpace(raw)
	// 單字母 T/t 有大小寫意義，必須在小寫化之前判斷
	switch trimmed {
	case "T":
		return "tbsp"
	case "t":
		return "tsp"
	}

	lower := strings.ToLower(trimmed)
	if canonical, ok := variationIndex[lower]; ok {
		return canonical
	}
	return lower
}

// ParseFractionAmount 將數量字串解析為十進位數
// 解析順序：unicode 分數 → 整數+unicode 分數 → N/D → W N/D → 一般浮點數
// 解析失敗一律回傳 0，不拋出錯誤
func ParseFractionAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	// (a) 單一 unicode 分數
	if val, ok := unicodeFractions[s]; ok {
		return val
	}

	// (b) 整數 + unicode 分數（"1 ½" 或 "1½"）
	for glyph, val := range unicodeFractions {
		if strings.HasSuffix(s, glyph) {
			whole := strings.TrimSpace(strings.TrimSuffix(s, glyph))
			if whole == "" {
				return val
			}
			if w, err := strconv.ParseFloat(whole, 64); err == nil {
				return w + val
			}
			return 0
		}
	}

	// (c) 斜線分數 "N/D"
	if num, den, ok := splitSlashFraction(s); ok {
		return num / den
	}

	// (d) 帶整數的斜線分數 "W N/D"
	if parts := strings.Fields(s); len(parts) == 2 {
		if w, err := strconv.ParseFloat(parts[0], 64); err == nil {
			if num, den, ok := splitSlashFraction(parts[1]); ok {
				return w + num/den
			}
		}
	}

	// (e) 一般浮點數
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val
	}
	return 0
}

// splitSlashFraction 解析 "N/D"，分母為零或格式不符時回傳 false
func splitSlashFraction(s string) (num, den float64, ok bool) {
	idx := strings.Index(s, "/")
	if idx <= 0 || idx == len(s)-1 {
		return 0, 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s[:idx]))
	if err != nil {
		return 0, 0, false
	}
	d, err := strconv.Atoi(strings.TrimSpace(s[idx+1:]))
	if err != nil || d == 0 {
		return 0, 0, false
	}
	return float64(n), float64(d), true
}

// NormalizeUnicodeFractions 將文字中的 unicode 分數字元置換為 ASCII N/D 寫法
// 供行模式比對前使用；"1½" 會先補空格成 "1 1/2"
func NormalizeUnicodeFractions(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	prevDigit := false
	for _, r := range text {
		glyph := string(r)
		if ascii, ok := unicodeFractionASCII[glyph]; ok {
			if prevDigit {
				sb.WriteByte(' ')
			}
			sb.WriteString(ascii)
			prevDigit = false
			continue
		}
		sb.WriteRune(r)
		prevDigit = r >= '0' && r <= '9'
	}
	return sb.String()
}
