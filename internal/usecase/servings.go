package usecase

import "strings"

// liquidDensities maps food-name keywords to g/ml densities so that
// milliliter servings can be scaled against per-100g nutrient data.
// Ordered list: the first matching keyword wins.
var liquidDensities = []struct {
	keyword string
	density float64
}{
	{"water", 1.0},
	{"milk", 1.03},
	{"cream", 1.0},
	{"oil", 0.92},
	{"juice", 1.05},
	{"soup", 1.0},
	{"broth", 1.0},
	{"stock", 1.0},
	{"coffee", 1.0},
	{"tea", 1.0},
	{"wine", 0.99},
	{"beer", 1.0},
	{"yogurt", 1.1},
	{"smoothie", 1.1},
	{"sauce", 1.1},
	{"syrup", 1.3},
	{"honey", 1.4},
}

// ServingRatio converts a serving size to the multiplier applied to
// per-100g nutrient data. Milliliter servings go through a density lookup;
// everything else is treated as grams.
func ServingRatio(serving float64, unit, foodName string) float64 {
	if unit == "ml" {
		grams := serving * DensityForFood(foodName)
		return grams / 100
	}
	return serving / 100
}

// DensityForFood returns the g/ml density for a liquid food name, or 1.0
// when the name matches no known liquid.
func DensityForFood(foodName string) float64 {
	nameLower := strings.ToLower(foodName)
	for _, entry := range liquidDensities {
		if strings.Contains(nameLower, entry.keyword) {
			return entry.density
		}
	}
	return 1.0
}
