package match

import (
	"context"
	"fmt"
	"testing"

	"pantry-scan/internal/core/catalog"
	"pantry-scan/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecipes() []catalog.Recipe {
	return []catalog.Recipe{
		{
			ID:    "adobo",
			Title: "Chicken Adobo",
			Ingredients: []common.RecipeIngredient{
				{Name: "Chicken", Amount: "1 kg"},
				{Name: "Soy Sauce", Amount: "1/2 cup"},
				{Name: "Garlic", Amount: "6 cloves"},
			},
			Rating:    4.8,
			Likes:     300,
			Bookmarks: 100,
			Published: true,
		},
		{
			ID:    "pancit",
			Title: "Pancit Canton",
			Ingredients: []common.RecipeIngredient{
				{Name: "Egg Noodles", Amount: "400 g"},
				{Name: "Chicken Breast", Amount: "250 g"},
				{Name: "Soy Sauce", Amount: "3 tbsp"},
			},
			Rating:    4.8,
			Likes:     100,
			Bookmarks: 50,
			Published: true,
		},
		{
			ID:    "salad",
			Title: "Garden Salad",
			Ingredients: []common.RecipeIngredient{
				{Name: "Lettuce", Amount: "1 head"},
				{Name: "Tomato", Amount: "2 pieces"},
			},
			Rating:    3.9,
			Published: true,
		},
	}
}

func newTestMatcher() *Matcher {
	return NewMatcher(catalog.NewMemoryCatalog(testRecipes()))
}

func TestMatchPartial(t *testing.T) {
	m := newTestMatcher()

	results, err := m.Match(context.Background(), []string{"chicken", "soy sauce"}, ModePartial)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// 兩個輸入都對應，分數為 1.0
	assert.Equal(t, 1.0, results[0].MatchScore)
	assert.Equal(t, 1.0, results[1].MatchScore)

	// 分數與評分相同時以互動數決勝
	assert.Equal(t, "adobo", results[0].Recipe.ID)
	assert.Equal(t, "pancit", results[1].Recipe.ID)
}

func TestMatchPartialScore(t *testing.T) {
	m := newTestMatcher()

	results, err := m.Match(context.Background(), []string{"chicken", "lettuce"}, ModePartial)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, res := range results {
		assert.Equal(t, 0.5, res.MatchScore)
	}
}

func TestMatchPartialSubstringContainment(t *testing.T) {
	m := newTestMatcher()

	// "noodles" 需對應 "Egg Noodles"
	results, err := m.Match(context.Background(), []string{"noodles"}, ModePartial)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "pancit", results[0].Recipe.ID)
	assert.Equal(t, []string{"noodles"}, results[0].MatchedIngredients)
	assert.Contains(t, results[0].MissingIngredients, "Chicken Breast")
}

func TestMatchExact(t *testing.T) {
	m := newTestMatcher()

	results, err := m.Match(context.Background(), []string{"lettuce", "tomato"}, ModeExact)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "salad", results[0].Recipe.ID)
	assert.Equal(t, 1.0, results[0].MatchScore)
	assert.Empty(t, results[0].MissingIngredients)
}

func TestMatchExactRejectsPartialCoverage(t *testing.T) {
	m := newTestMatcher()

	// 缺少 garlic，無法完全覆蓋 adobo
	results, err := m.Match(context.Background(), []string{"chicken", "soy sauce"}, ModeExact)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchScoreIsExactQuotient(t *testing.T) {
	corpus := []catalog.Recipe{
		{
			ID:    "aglio",
			Title: "Garlic Oil Pasta",
			Ingredients: []common.RecipeIngredient{
				{Name: "Garlic", Amount: "4 cloves"},
				{Name: "Olive Oil", Amount: "1/4 cup"},
			},
			Published: true,
		},
	}
	m := NewMatcher(catalog.NewMemoryCatalog(corpus))

	results, err := m.Match(context.Background(), []string{"garlic", "onion", "tomato"}, ModePartial)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// 三個輸入對應一個，分數必須是未捨入的 1/3
	assert.Equal(t, 1.0/3.0, results[0].MatchScore)
	assert.NotEqual(t, 0.33, results[0].MatchScore)
}

// recordingCatalog 記錄查詢名稱的測試食譜庫
type recordingCatalog struct {
	catalog.Catalog
	queried [][]string
}

func (r *recordingCatalog) FindByAnyName(ctx context.Context, names []string) ([]catalog.Recipe, error) {
	r.queried = append(r.queried, names)
	return r.Catalog.FindByAnyName(ctx, names)
}

func TestMatchQueriesCatalogByNames(t *testing.T) {
	rec := &recordingCatalog{Catalog: catalog.NewMemoryCatalog(testRecipes())}
	m := NewMatcher(rec)

	results, err := m.Match(context.Background(), []string{"chicken", "soy sauce"}, ModePartial)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// 候選集必須以輸入名稱向食譜庫查詢
	require.Len(t, rec.queried, 1)
	assert.Equal(t, []string{"chicken", "soy sauce"}, rec.queried[0])
}

func TestMatchEmptyInput(t *testing.T) {
	m := newTestMatcher()

	results, err := m.Match(context.Background(), nil, ModePartial)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchNoHits(t *testing.T) {
	m := newTestMatcher()

	results, err := m.Match(context.Background(), []string{"durian"}, ModePartial)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchCapsAtTen(t *testing.T) {
	recipes := make([]catalog.Recipe, 0, 15)
	for i := 0; i < 15; i++ {
		recipes = append(recipes, catalog.Recipe{
			ID:    fmt.Sprintf("r%d", i),
			Title: fmt.Sprintf("Recipe %d", i),
			Ingredients: []common.RecipeIngredient{
				{Name: "Chicken", Amount: "1 kg"},
			},
			Rating:    float64(i),
			Published: true,
		})
	}
	m := NewMatcher(catalog.NewMemoryCatalog(recipes))

	results, err := m.Match(context.Background(), []string{"chicken"}, ModePartial)
	require.NoError(t, err)
	require.Len(t, results, 10)

	// 同分時評分高者優先
	assert.Equal(t, "r14", results[0].Recipe.ID)
}
