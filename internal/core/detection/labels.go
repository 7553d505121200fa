package detection

import (
	"strings"

	"pantry-scan/internal/pkg/common"
)

// ingredientNameMap 食材模型的類別標籤 → 顯示名稱
var ingredientNameMap = map[string]string{
	"tomato":         "Tomato",
	"tomatoes":       "Tomato",
	"onion":          "Onion",
	"onions":         "Onion",
	"garlic":         "Garlic",
	"garlic_clove":   "Garlic",
	"garlic_cloves":  "Garlic",
	"carrot":         "Carrot",
	"carrots":        "Carrot",
	"potato":         "Potato",
	"potatoes":       "Potato",
	"cabbage":        "Cabbage",
	"lettuce":        "Lettuce",
	"spinach":        "Spinach",
	"broccoli":       "Broccoli",
	"bell_pepper":    "Bell Pepper",
	"bell_peppers":   "Bell Pepper",
	"pepper":         "Pepper",
	"chili":          "Chili Pepper",
	"ginger":         "Ginger",
	"lemon":          "Lemon",
	"lime":           "Lime",
	"calamansi":      "Calamansi",
	"chicken":        "Chicken",
	"chicken_breast": "Chicken Breast",
	"chicken_thigh":  "Chicken Thigh",
	"pork":           "Pork",
	"pork_belly":     "Pork Belly",
	"beef":           "Beef",
	"ground_beef":    "Ground Beef",
	"fish":           "Fish",
	"shrimp":         "Shrimp",
	"prawns":         "Shrimp",
	"crab":           "Crab",
	"egg":            "Egg",
	"eggs":           "Egg",
	"rice":           "Rice",
	"noodles":        "Noodles",
	"pasta":          "Pasta",
	"soy_sauce":      "Soy Sauce",
	"vinegar":        "Vinegar",
	"salt":           "Salt",
	"oil":            "Cooking Oil",
	"cooking_oil":    "Cooking Oil",
	"flour":          "Flour",
	"sugar":          "Sugar",
	"banana":         "Banana",
	"apple":          "Apple",
	"orange":         "Orange",
	"mango":          "Mango",
	"pineapple":      "Pineapple",
	"coconut":        "Coconut",
	"milk":           "Milk",
	"coconut_milk":   "Coconut Milk",
	"butter":         "Butter",
}

// foodNameMap 食物模型的類別標籤 → 顯示名稱
var foodNameMap = map[string]string{
	"adobo":           "Chicken Adobo",
	"lechon":          "Lechon",
	"sinigang":        "Sinigang",
	"lumpia":          "Lumpia",
	"pancit":          "Pancit",
	"rice":            "Rice",
	"kare_kare":       "Kare-Kare",
	"sisig":           "Sisig",
	"bicol_express":   "Bicol Express",
	"dinuguan":        "Dinuguan",
	"fried_rice":      "Fried Rice",
	"chicken_curry":   "Chicken Curry",
	"beef_stew":       "Beef Stew",
	"pork_chop":       "Pork Chop",
	"fish_fillet":     "Fish Fillet",
	"vegetable_salad": "Vegetable Salad",
	"noodle_soup":     "Noodle Soup",
	"grilled_chicken": "Grilled Chicken",
	"steamed_fish":    "Steamed Fish",
}

// categoryMap 類別標籤 → 分類
var categoryMap = map[string]common.Category{
	"adobo":           common.CategoryDish,
	"lechon":          common.CategoryDish,
	"sinigang":        common.CategoryDish,
	"lumpia":          common.CategoryDish,
	"pancit":          common.CategoryDish,
	"kare_kare":       common.CategoryDish,
	"sisig":           common.CategoryDish,
	"bicol_express":   common.CategoryDish,
	"dinuguan":        common.CategoryDish,
	"fried_rice":      common.CategoryDish,
	"chicken_curry":   common.CategoryDish,
	"beef_stew":       common.CategoryDish,
	"pork_chop":       common.CategoryDish,
	"fish_fillet":     common.CategoryDish,
	"vegetable_salad": common.CategoryDish,
	"noodle_soup":     common.CategoryDish,
	"grilled_chicken": common.CategoryDish,
	"steamed_fish":    common.CategoryDish,

	"tomato":      common.CategoryVegetable,
	"onion":       common.CategoryVegetable,
	"garlic":      common.CategoryVegetable,
	"carrot":      common.CategoryVegetable,
	"potato":      common.CategoryVegetable,
	"cabbage":     common.CategoryVegetable,
	"lettuce":     common.CategoryVegetable,
	"spinach":     common.CategoryVegetable,
	"broccoli":    common.CategoryVegetable,
	"bell_pepper": common.CategoryVegetable,

	"apple":     common.CategoryFruit,
	"banana":    common.CategoryFruit,
	"orange":    common.CategoryFruit,
	"mango":     common.CategoryFruit,
	"pineapple": common.CategoryFruit,
	"coconut":   common.CategoryFruit,
	"lemon":     common.CategoryFruit,
	"lime":      common.CategoryFruit,
	"calamansi": common.CategoryFruit,

	"chicken": common.CategoryMeat,
	"pork":    common.CategoryMeat,
	"beef":    common.CategoryMeat,
	"fish":    common.CategoryMeat,
	"shrimp":  common.CategoryMeat,
	"crab":    common.CategoryMeat,

	"rice":    common.CategoryGrain,
	"noodles": common.CategoryGrain,
	"pasta":   common.CategoryGrain,
	"flour":   common.CategoryGrain,

	"milk":         common.CategoryDairy,
	"coconut_milk": common.CategoryDairy,
	"butter":       common.CategoryDairy,
	"egg":          common.CategoryDairy,

	"salt":   common.CategorySpice,
	"pepper": common.CategorySpice,
	"chili":  common.CategorySpice,
	"ginger": common.CategorySpice,

	"soy_sauce": common.CategoryCondiment,
	"vinegar":   common.CategoryCondiment,
	"sugar":     common.CategoryCondiment,

	"oil":         common.CategoryOil,
	"cooking_oil": common.CategoryOil,
}

// cleanLabel 統一類別標籤格式：小寫、連字號換底線
func cleanLabel(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), "-", "_")
}

// displayName 依模式把原始標籤對應成顯示名稱，未知標籤直接 title-case
func displayName(label string, mode common.ScanMode) string {
	clean := cleanLabel(label)
	if mode == common.ScanModeIngredient {
		if name, ok := ingredientNameMap[clean]; ok {
			return name
		}
	} else {
		if name, ok := foodNameMap[clean]; ok {
			return name
		}
	}
	return common.TitleCaseName(strings.ReplaceAll(clean, "_", " "))
}

// categorize 標籤分類，查不到時依模式給預設值
func categorize(label string, mode common.ScanMode) common.Category {
	if cat, ok := categoryMap[cleanLabel(label)]; ok {
		return cat
	}
	if mode == common.ScanModeIngredient {
		return common.CategoryOther
	}
	return common.CategoryFood
}
