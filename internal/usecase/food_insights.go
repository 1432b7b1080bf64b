package usecase

import "strings"

// FoodRating is the long-COVID recovery rating for a food name.
type FoodRating string

const (
	FoodBeneficial FoodRating = "beneficial"
	FoodCaution    FoodRating = "caution"
	FoodNeutral    FoodRating = "neutral"
)

// beneficialFoods are keywords for foods supporting recovery: fatty fish,
// berries, leafy greens, nuts and seeds, anti-inflammatory staples.
var beneficialFoods = []string{
	"salmon", "mackerel", "sardines", "tuna", "trout",
	"blueberries", "strawberries", "raspberries", "blackberries",
	"spinach", "kale", "broccoli", "brussels sprouts",
	"walnuts", "almonds", "chia seeds", "flax seeds",
	"turmeric", "ginger", "garlic", "onion",
	"olive oil", "avocado", "sweet potato",
	"green tea", "dark chocolate",
}

// cautionFoods are keywords for processed and high-glycemic foods that work
// against recovery.
var cautionFoods = []string{
	"processed meat", "bacon", "sausage", "hot dog",
	"french fries", "fried chicken", "fried",
	"white bread", "white rice", "pastry",
	"candy", "soda", "sugar", "margarine",
	"ice cream", "chips",
}

// ClassifyFoodName rates a food by keyword match on its name. Beneficial
// keywords win over caution keywords; anything unmatched is neutral.
func ClassifyFoodName(name string) FoodRating {
	nameLower := strings.ToLower(name)

	for _, keyword := range beneficialFoods {
		if strings.Contains(nameLower, keyword) {
			return FoodBeneficial
		}
	}
	for _, keyword := range cautionFoods {
		if strings.Contains(nameLower, keyword) {
			return FoodCaution
		}
	}
	return FoodNeutral
}
