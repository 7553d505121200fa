package provider

import (
	"context"
	"fmt"
	"strings"

	"pantry-scan/internal/pkg/common"
)

// GeneratedProvider 鏈尾的模板供應商，永不失敗
// 依料理名稱中的關鍵字挑選主食材並套入固定模板
type GeneratedProvider struct{}

// NewGeneratedProvider 創建模板供應商
func NewGeneratedProvider() *GeneratedProvider {
	return &GeneratedProvider{}
}

func (p *GeneratedProvider) ID() string {
	return ProviderGenerated
}

func (p *GeneratedProvider) Lookup(_ context.Context, foodName string) (*common.RecipeDTO, error) {
	name := common.TitleCaseName(foodName)
	protein := mainProtein(foodName)

	return &common.RecipeDTO{
		Title: fmt.Sprintf("Simple %s", name),
		Ingredients: []common.RecipeIngredient{
			{Name: protein, Amount: "500 g"},
			{Name: "Garlic", Amount: "4 cloves"},
			{Name: "Onion", Amount: "1 piece"},
			{Name: "Soy Sauce", Amount: "3 tbsp"},
			{Name: "Cooking Oil", Amount: "2 tbsp"},
			{Name: "Salt", Amount: "to taste"},
			{Name: "Black Pepper", Amount: "to taste"},
		},
		Steps: []string{
			"Prepare and wash all the ingredients.",
			fmt.Sprintf("Cut the %s into bite-sized pieces.", strings.ToLower(protein)),
			"Mince the garlic and slice the onion.",
			"Heat the oil in a pan over medium heat.",
			"Saute the garlic and onion until fragrant.",
			fmt.Sprintf("Add the %s and cook until lightly browned.", strings.ToLower(protein)),
			"Pour in the soy sauce and a splash of water.",
			"Simmer for 15 to 20 minutes until tender.",
			"Season with salt and pepper.",
			"Serve hot with steamed rice.",
		},
		PrepMinutes:    15,
		CookMinutes:    30,
		Servings:       4,
		SourceProvider: ProviderGenerated,
	}, nil
}

// mainProtein 從料理名稱推測主食材
func mainProtein(foodName string) string {
	name := common.NormalizeName(foodName)
	switch {
	case strings.Contains(name, "chicken"):
		return "Chicken"
	case strings.Contains(name, "pork"):
		return "Pork"
	case strings.Contains(name, "beef"):
		return "Beef"
	case strings.Contains(name, "fish"):
		return "Fish"
	case strings.Contains(name, "shrimp"):
		return "Shrimp"
	default:
		return "Meat"
	}
}
