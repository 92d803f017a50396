package units

// 單位正規化與換算表
// 正規名稱採用換算表鍵（cup、tbsp、tsp、g...），所有拼寫變體都映射到正規名稱

// unitVariations 正規單位對應接受的拼寫／縮寫（皆為小寫比對）
var unitVariations = map[string][]string{
	// 容量
	"cup":    {"cup", "cups", "c"},
	"tbsp":   {"tbsp", "tbsps", "tbs", "tablespoon", "tablespoons", "tbl"},
	"tsp":    {"tsp", "tsps", "teaspoon", "teaspoons"},
	"ml":     {"ml", "milliliter", "milliliters", "millilitre", "millilitres"},
	"l":      {"l", "liter", "liters", "litre", "litres"},
	"fl-oz":  {"fl-oz", "fl oz", "floz", "fluid ounce", "fluid ounces"},
	"pint":   {"pint", "pints", "pt"},
	"quart":  {"quart", "quarts", "qt"},
	"gallon": {"gallon", "gallons", "gal"},

	// 重量
	"g":  {"g", "gram", "grams", "gr"},
	"kg": {"kg", "kgs", "kilogram", "kilograms"},
	"oz": {"oz", "ozs", "ounce", "ounces"},
	"lb": {"lb", "lbs", "pound", "pounds"},

	// 不可換算的計數單位
	"piece":   {"piece", "pieces", "pc", "pcs"},
	"clove":   {"clove", "cloves"},
	"slice":   {"slice", "slices"},
	"can":     {"can", "cans"},
	"package": {"package", "packages", "pkg", "pack"},
	"pinch":   {"pinch", "pinches"},
	"dash":    {"dash", "dashes"},
	"bunch":   {"bunch", "bunches"},
	"stick":   {"stick", "sticks"},
}

// variationIndex 拼寫 → 正規名稱的反向索引，init 時建立
var variationIndex = map[string]string{}

func init() {
	for canonical, variations := range unitVariations {
		for _, v := range variations {
			variationIndex[v] = canonical
		}
	}
}

// unicodeFractions unicode 分數字元的十進位值（13 個）
var unicodeFractions = map[string]float64{
	"½": 0.5,
	"⅓": 1.0 / 3.0,
	"⅔": 2.0 / 3.0,
	"¼": 0.25,
	"¾": 0.75,
	"⅕": 0.2,
	"⅖": 0.4,
	"⅗": 0.6,
	"⅘": 0.8,
	"⅛": 0.125,
	"⅜": 0.375,
	"⅝": 0.625,
	"⅞": 0.875,
}

// unicodeFractionASCII unicode 分數字元對應的 ASCII N/D 寫法，供行解析前置換
var unicodeFractionASCII = map[string]string{
	"½": "1/2",
	"⅓": "1/3",
	"⅔": "2/3",
	"¼": "1/4",
	"¾": "3/4",
	"⅕": "1/5",
	"⅖": "2/5",
	"⅗": "3/5",
	"⅘": "4/5",
	"⅛": "1/8",
	"⅜": "3/8",
	"⅝": "5/8",
	"⅞": "7/8",
}

// weightFactors 重量單位換算為公克的係數
var weightFactors = map[string]float64{
	"g":  1,
	"kg": 1000,
	"oz": 28.35,
	"lb": 453.59,
}

// volumeFactors 容量單位換算為毫升的係數
var volumeFactors = map[string]float64{
	"ml":     1,
	"l":      1000,
	"cup":    240,
	"tbsp":   15,
	"tsp":    5,
	"fl-oz":  30,
	"pint":   473,
	"quart":  946,
	"gallon": 3785,
}

// AllUnitVariations 回傳所有拼寫變體（行解析的單位比對用）
// 長拼寫在前，避免正規表達式先匹配到較短的前綴
func AllUnitVariations() []string {
	out := make([]string, 0, len(variationIndex))
	for v := range variationIndex {
		out = append(out, v)
	}
	return out
}
