package match

import (
	"context"
	"sort"

	"pantry-scan/internal/core/catalog"
	"pantry-scan/internal/pkg/common"

	"go.uber.org/zap"
)

// 配對結果最多回傳的食譜數
const maxResults = 10

// Mode 配對模式
type Mode string

const (
	// ModePartial 只要有任一食材對應即納入結果
	ModePartial Mode = "partial"
	// ModeExact 輸入食材與食譜食材需雙向完全覆蓋
	ModeExact Mode = "exact"
)

// Result 單筆配對結果
type Result struct {
	Recipe             catalog.Recipe `json:"recipe"`
	MatchScore         float64        `json:"match_score"`
	MatchedIngredients []string       `json:"matched_ingredients"`
	MissingIngredients []string       `json:"missing_ingredients"`
}

// Matcher 以輸入食材配對本地食譜庫
type Matcher struct {
	catalog catalog.Catalog
}

// NewMatcher 創建食譜配對器
func NewMatcher(c catalog.Catalog) *Matcher {
	return &Matcher{catalog: c}
}

// Match 依模式配對食譜
// 空輸入回傳空結果；結果依分數、評分、互動數遞減排序，最多十筆
func (m *Matcher) Match(ctx context.Context, names []string, mode Mode) ([]Result, error) {
	if len(names) == 0 {
		return []Result{}, nil
	}
	if mode == "" {
		mode = ModePartial
	}

	// 候選集由食譜庫以名稱查出，零對應的食譜在評分時仍會被濾掉
	recipes, err := m.catalog.FindByAnyName(ctx, names)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(recipes))
	for _, r := range recipes {
		res, ok := score(r, names, mode)
		if ok {
			results = append(results, res)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		if results[i].Recipe.Rating != results[j].Recipe.Rating {
			return results[i].Recipe.Rating > results[j].Recipe.Rating
		}
		return results[i].Recipe.Engagement() > results[j].Recipe.Engagement()
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}

	common.LogInfo("食譜配對完成",
		zap.String("mode", string(mode)),
		zap.Int("input_count", len(names)),
		zap.Int("result_count", len(results)),
	)

	return results, nil
}

// score 計算單一食譜對輸入食材的配對結果
func score(r catalog.Recipe, names []string, mode Mode) (Result, bool) {
	matched := make([]string, 0, len(names))
	matchedRecipe := make(map[int]bool, len(r.Ingredients))

	for _, name := range names {
		hit := false
		for i, ing := range r.Ingredients {
			if common.NamesCorrespond(ing.Name, name) {
				matchedRecipe[i] = true
				hit = true
			}
		}
		if hit {
			matched = append(matched, name)
		}
	}

	missing := make([]string, 0, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		if !matchedRecipe[i] {
			missing = append(missing, ing.Name)
		}
	}

	switch mode {
	case ModeExact:
		// 雙向覆蓋：每個輸入都有對應，且每個食譜食材都被覆蓋
		if len(matched) == len(names) && len(missing) == 0 {
			return Result{
				Recipe:             r,
				MatchScore:         1.0,
				MatchedIngredients: matched,
				MissingIngredients: []string{},
			}, true
		}
		return Result{}, false
	default:
		if len(matched) == 0 {
			return Result{}, false
		}
		// 分數是未捨入的商，捨入會併掉相近分數改變排序
		return Result{
			Recipe:             r,
			MatchScore:         float64(len(matched)) / float64(len(names)),
			MatchedIngredients: matched,
			MissingIngredients: missing,
		}, true
	}
}
