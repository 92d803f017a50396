package units

import "strings"

// System 目標單位系統
type System string

const (
	SystemOriginal System = "original"
	SystemMetric   System = "metric"
	SystemImperial System = "imperial"
)

// Quantity 數量與單位
type Quantity struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// ConvertUnit 在單位系統間換算數量
// 純函數；不做四捨五入，顯示層自行處理小數位
func ConvertUnit(amount float64, unit string, target System) Quantity {
	original := Quantity{Amount: amount, Unit: unit}
	if target == SystemOriginal || target == "" || amount == 0 {
		return original
	}

	key := strings.ToLower(strings.TrimSpace(unit))
	if factor, ok := weightFactors[key]; ok {
		return convertWeight(amount*factor, target, original)
	}
	if factor, ok := volumeFactors[key]; ok {
		return convertVolume(amount*factor, target, original)
	}
	// 無法辨識的單位原樣通過
	return original
}

// convertWeight 以公克為基準換算重量
func convertWeight(grams float64, target System, original Quantity) Quantity {
	switch target {
	case SystemMetric:
		if grams >= 1000 {
			return Quantity{Amount: grams / 1000, Unit: "kg"}
		}
		return Quantity{Amount: grams, Unit: "g"}
	case SystemImperial:
		oz := grams / weightFactors["oz"]
		if oz >= 16 {
			return Quantity{Amount: oz / 16, Unit: "lb"}
		}
		return Quantity{Amount: oz, Unit: "oz"}
	}
	return original
}

// convertVolume 以毫升為基準換算容量
func convertVolume(ml float64, target System, original Quantity) Quantity {
	switch target {
	case SystemMetric:
		if ml >= 1000 {
			return Quantity{Amount: ml / 1000, Unit: "l"}
		}
		return Quantity{Amount: ml, Unit: "ml"}
	case SystemImperial:
		// 加侖門檻以毫升比較：表中係數經過取整，128 fl-oz 與 1 gallon 不相等
		if ml >= volumeFactors["gallon"] {
			return Quantity{Amount: ml / volumeFactors["gallon"], Unit: "gallon"}
		}
		flOz := ml / volumeFactors["fl-oz"]
		switch {
		case flOz >= 8:
			return Quantity{Amount: flOz / 8, Unit: "cup"}
		case flOz >= 1:
			return Quantity{Amount: flOz, Unit: "fl-oz"}
		default:
			return Quantity{Amount: ml / volumeFactors["tsp"], Unit: "tsp"}
		}
	}
	return original
}
