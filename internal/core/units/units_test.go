package units

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"tbsp", "tbsp"},
		{"Tbsps", "tbsp"},
		{"TABLESPOONS", "tbsp"},
		{"tbs", "tbsp"},
		{"T", "tbsp"},
		{"t", "tsp"},
		{"teaspoons", "tsp"},
		{"Cups", "cup"},
		{"c", "cup"},
		{"grams", "g"},
		{"  fl oz  ", "fl-oz"},
		{"cloves", "clove"},
		// 未知單位原樣小寫通過
		{"handful", "handful"},
		{"Handful", "handful"},
	}
	for _, tt := range tests {
		if got := NormalizeUnit(tt.raw); got != tt.want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseFractionAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"2", 2},
		{"2.5", 2.5},
		{"½", 0.5},
		{"⅔", 2.0 / 3.0},
		{"1 ½", 1.5},
		{"1½", 1.5},
		{"1/2", 0.5},
		{"3/4", 0.75},
		{"1 1/2", 1.5},
		{"2 3/4", 2.75},
		// 分母為零降級為 0
		{"1/0", 0},
	}
	for _, tt := range tests {
		if got := ParseFractionAmount(tt.raw); !almostEqual(got, tt.want) {
			t.Errorf("ParseFractionAmount(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseFractionAmountSlashProperty(t *testing.T) {
	// 對所有 N/D（D≠0），結果應在浮點誤差內等於 N/D
	for n := 1; n <= 8; n++ {
		for d := 1; d <= 8; d++ {
			raw := string(rune('0'+n)) + "/" + string(rune('0'+d))
			want := float64(n) / float64(d)
			if got := ParseFractionAmount(raw); math.Abs(got-want) > epsilon {
				t.Errorf("ParseFractionAmount(%q) = %v, want %v", raw, got, want)
			}
		}
	}
}

func TestNormalizeUnicodeFractions(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"½ cup sugar", "1/2 cup sugar"},
		{"1½ cups flour", "1 1/2 cups flour"},
		{"1 ½ cups flour", "1 1/2 cups flour"},
		{"no fractions here", "no fractions here"},
	}
	for _, tt := range tests {
		if got := NormalizeUnicodeFractions(tt.raw); got != tt.want {
			t.Errorf("NormalizeUnicodeFractions(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestConvertUnitMetric(t *testing.T) {
	tests := []struct {
		amount float64
		unit   string
		want   Quantity
	}{
		{1000, "g", Quantity{1, "kg"}},
		{500, "g", Quantity{500, "g"}},
		{2, "kg", Quantity{2, "kg"}},
		{1, "cup", Quantity{240, "ml"}},
		{5, "cup", Quantity{1.2, "l"}},
	}
	for _, tt := range tests {
		got := ConvertUnit(tt.amount, tt.unit, SystemMetric)
		if got.Unit != tt.want.Unit || !almostEqual(got.Amount, tt.want.Amount) {
			t.Errorf("ConvertUnit(%v, %q, metric) = %+v, want %+v", tt.amount, tt.unit, got, tt.want)
		}
	}
}

func TestConvertUnitImperial(t *testing.T) {
	got := ConvertUnit(16, "oz", SystemImperial)
	if got.Unit != "lb" || !almostEqual(got.Amount, 1) {
		t.Errorf("ConvertUnit(16, oz, imperial) = %+v, want {1 lb}", got)
	}

	got = ConvertUnit(240, "ml", SystemImperial)
	if got.Unit != "cup" || !almostEqual(got.Amount, 1) {
		t.Errorf("ConvertUnit(240, ml, imperial) = %+v, want {1 cup}", got)
	}

	got = ConvertUnit(3785, "ml", SystemImperial)
	if got.Unit != "gallon" {
		t.Errorf("ConvertUnit(3785, ml, imperial) = %+v, want gallon", got)
	}

	// 不足 1 fl-oz 改以 tsp 表示
	got = ConvertUnit(10, "ml", SystemImperial)
	if got.Unit != "tsp" || !almostEqual(got.Amount, 2) {
		t.Errorf("ConvertUnit(10, ml, imperial) = %+v, want {2 tsp}", got)
	}
}

func TestConvertUnitPassThrough(t *testing.T) {
	// original 一律原樣通過
	got := ConvertUnit(42, "cup", SystemOriginal)
	if got.Amount != 42 || got.Unit != "cup" {
		t.Errorf("original system should pass through, got %+v", got)
	}

	// 數量為零原樣通過
	got = ConvertUnit(0, "g", SystemMetric)
	if got.Amount != 0 || got.Unit != "g" {
		t.Errorf("zero amount should pass through, got %+v", got)
	}

	// 無法辨識的單位原樣通過
	got = ConvertUnit(3, "handful", SystemMetric)
	if got.Amount != 3 || got.Unit != "handful" {
		t.Errorf("unknown unit should pass through, got %+v", got)
	}

	// 單位大小寫不同仍可換算
	got = ConvertUnit(1000, "G", SystemMetric)
	if got.Unit != "kg" || !almostEqual(got.Amount, 1) {
		t.Errorf("case-insensitive unit lookup failed, got %+v", got)
	}
}
