package shopping

import (
	"testing"

	"pantry-scan/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeduplicatesAcrossRecipes(t *testing.T) {
	selections := []Selection{
		{
			Title: "Chicken Adobo",
			Ingredients: []common.RecipeIngredient{
				{Name: "Chicken", Amount: "1 kg"},
				{Name: "Garlic", Amount: "6 cloves"},
			},
		},
		{
			Title: "Pancit Canton",
			Ingredients: []common.RecipeIngredient{
				{Name: "garlic", Amount: "4 cloves"},
				{Name: "Egg Noodles", Amount: "400 g"},
			},
		},
	}

	items := Build(selections, nil)
	require.Len(t, items, 3)

	byName := make(map[string]common.ShoppingListItem)
	for _, it := range items {
		byName[it.Name] = it
	}

	assert.Equal(t, 2, byName["Garlic"].UsedInRecipeCount)
	assert.Equal(t, 1, byName["Chicken"].UsedInRecipeCount)
	assert.Equal(t, "6", byName["Garlic"].Amount)
	assert.Equal(t, "cloves", byName["Garlic"].Unit)
}

func TestBuildFiltersHaveIngredients(t *testing.T) {
	selections := []Selection{
		{
			Ingredients: []common.RecipeIngredient{
				{Name: "Coconut Milk", Amount: "1 cup"},
				{Name: "Chicken", Amount: "1 kg"},
			},
		},
	}

	// "milk" 以子字串對應 "Coconut Milk"
	items := Build(selections, []string{"milk"})
	require.Len(t, items, 1)
	assert.Equal(t, "Chicken", items[0].Name)
}

func TestBuildDefaultsAmountAndUnit(t *testing.T) {
	selections := []Selection{
		{
			Ingredients: []common.RecipeIngredient{
				{Name: "Salt", Amount: ""},
				{Name: "Pepper", Amount: "1"},
			},
		},
	}

	items := Build(selections, nil)
	require.Len(t, items, 2)

	byName := make(map[string]common.ShoppingListItem)
	for _, it := range items {
		byName[it.Name] = it
	}

	assert.Equal(t, "1", byName["Salt"].Amount)
	assert.Equal(t, "piece", byName["Salt"].Unit)
	assert.Equal(t, "1", byName["Pepper"].Amount)
	assert.Equal(t, "piece", byName["Pepper"].Unit)
}

func TestBuildSortedAndUnchecked(t *testing.T) {
	selections := []Selection{
		{
			Ingredients: []common.RecipeIngredient{
				{Name: "Vinegar", Amount: "1/3 cup"},
				{Name: "Bay Leaves", Amount: "3 pieces"},
				{Name: "Onion", Amount: "1 piece"},
			},
		},
	}

	items := Build(selections, nil)
	require.Len(t, items, 3)
	assert.Equal(t, "Bay Leaves", items[0].Name)
	assert.Equal(t, "Onion", items[1].Name)
	assert.Equal(t, "Vinegar", items[2].Name)
	for _, it := range items {
		assert.False(t, it.Checked)
	}
}

func TestBuildEmptySelections(t *testing.T) {
	items := Build(nil, []string{"garlic"})
	assert.Empty(t, items)
}
