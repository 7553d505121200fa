package catalog

import (
	"context"

	"pantry-scan/internal/pkg/common"
)

// Recipe 本地食譜庫中的一筆食譜
type Recipe struct {
	ID           string                    `json:"id"`
	Title        string                    `json:"title"`
	Description  string                    `json:"description,omitempty"`
	Ingredients  []common.RecipeIngredient `json:"ingredients"`
	Instructions []string                  `json:"instructions"`
	Tags         []string                  `json:"tags,omitempty"`
	Rating       float64                   `json:"rating"`
	Likes        int                       `json:"likes"`
	Bookmarks    int                       `json:"bookmarks"`
	Published    bool                      `json:"published"`
	PrepMinutes  int                       `json:"prep_minutes"`
	CookMinutes  int                       `json:"cook_minutes"`
	Servings     int                       `json:"servings"`
}

// Engagement 配對排序時的互動分數
func (r Recipe) Engagement() int {
	return r.Likes + r.Bookmarks
}

// Catalog 本地食譜庫的查詢介面
type Catalog interface {
	// FindByAnyName 回傳任一名稱與標題、食材或標籤對應的已發布食譜
	FindByAnyName(ctx context.Context, names []string) ([]Recipe, error)
	// FindByID 依 ID 取得食譜，找不到時回傳 common.ErrNotFound
	FindByID(ctx context.Context, id string) (*Recipe, error)
	// All 回傳全部已發布食譜
	All(ctx context.Context) ([]Recipe, error)
}

// memoryCatalog 內建種子資料的記憶體食譜庫
type memoryCatalog struct {
	recipes []Recipe
}

// NewMemoryCatalog 創建記憶體食譜庫
// recipes 為 nil 時載入內建種子資料
func NewMemoryCatalog(recipes []Recipe) Catalog {
	if recipes == nil {
		recipes = seedRecipes()
	}
	return &memoryCatalog{recipes: recipes}
}

func (c *memoryCatalog) All(_ context.Context) ([]Recipe, error) {
	out := make([]Recipe, 0, len(c.recipes))
	for _, r := range c.recipes {
		if r.Published {
			out = append(out, r)
		}
	}
	return out, nil
}

func (c *memoryCatalog) FindByAnyName(ctx context.Context, names []string) ([]Recipe, error) {
	if len(names) == 0 {
		return []Recipe{}, nil
	}

	published, err := c.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Recipe, 0, len(published))
	for _, r := range published {
		if recipeMatchesAny(r, names) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (c *memoryCatalog) FindByID(_ context.Context, id string) (*Recipe, error) {
	for i := range c.recipes {
		if c.recipes[i].ID == id {
			r := c.recipes[i]
			return &r, nil
		}
	}
	return nil, common.ErrNotFound
}

// recipeMatchesAny 標題、食材名稱或標籤其中之一與任一查詢名稱對應即成立
func recipeMatchesAny(r Recipe, names []string) bool {
	for _, name := range names {
		if common.NamesCorrespond(r.Title, name) {
			return true
		}
		for _, ing := range r.Ingredients {
			if common.NamesCorrespond(ing.Name, name) {
				return true
			}
		}
		for _, tag := range r.Tags {
			if common.NamesCorrespond(tag, name) {
				return true
			}
		}
	}
	return false
}
