package catalog

import (
	"context"
	"testing"

	"pantry-scan/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByAnyNameMatchesIngredient(t *testing.T) {
	c := NewMemoryCatalog(nil)

	recipes, err := c.FindByAnyName(context.Background(), []string{"soy sauce"})
	require.NoError(t, err)

	titles := make([]string, 0, len(recipes))
	for _, r := range recipes {
		titles = append(titles, r.Title)
	}
	assert.Contains(t, titles, "Chicken Adobo")
	assert.Contains(t, titles, "Pancit Canton")
}

func TestFindByAnyNameMatchesTitle(t *testing.T) {
	c := NewMemoryCatalog(nil)

	recipes, err := c.FindByAnyName(context.Background(), []string{"adobo"})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Chicken Adobo", recipes[0].Title)
}

func TestFindByAnyNameFiltersUnpublished(t *testing.T) {
	c := NewMemoryCatalog(nil)

	// Tinola 是未發布的草稿，不應出現在結果中
	recipes, err := c.FindByAnyName(context.Background(), []string{"tinola"})
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestFindByAnyNameEmptyInput(t *testing.T) {
	c := NewMemoryCatalog(nil)

	recipes, err := c.FindByAnyName(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestFindByID(t *testing.T) {
	c := NewMemoryCatalog(nil)

	r, err := c.FindByID(context.Background(), "sinigang")
	require.NoError(t, err)
	assert.Equal(t, "Pork Sinigang", r.Title)

	_, err = c.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAllExcludesUnpublished(t *testing.T) {
	c := NewMemoryCatalog(nil)

	recipes, err := c.All(context.Background())
	require.NoError(t, err)
	for _, r := range recipes {
		assert.True(t, r.Published, r.Title)
	}
}
