package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"pantry-scan/internal/infrastructure/config"
	"pantry-scan/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// spoonacularRecipe complexSearch 回傳的單一食譜
type spoonacularRecipe struct {
	Title               string `json:"title"`
	PreparationMinutes  int    `json:"preparationMinutes"`
	CookingMinutes      int    `json:"cookingMinutes"`
	ReadyInMinutes      int    `json:"readyInMinutes"`
	Servings            int    `json:"servings"`
	ExtendedIngredients []struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	} `json:"extendedIngredients"`
	AnalyzedInstructions []struct {
		Steps []struct {
			Number int    `json:"number"`
			Step   string `json:"step"`
		} `json:"steps"`
	} `json:"analyzedInstructions"`
}

// SpoonacularProvider Spoonacular 食譜查詢客戶端
type SpoonacularProvider struct {
	config *config.SpoonacularConfig
	client *resty.Client
}

// NewSpoonacularProvider 創建 Spoonacular 供應商
func NewSpoonacularProvider(cfg *config.SpoonacularConfig) *SpoonacularProvider {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetBaseURL(cfg.BaseURL)

	return &SpoonacularProvider{
		config: cfg,
		client: client,
	}
}

func (p *SpoonacularProvider) ID() string {
	return ProviderSpoonacular
}

// Lookup 以單一查詢字串呼叫 complexSearch 並轉換為統一格式
// 部分名稱重試由查詢鏈負責，這裡一次呼叫只發一個請求
func (p *SpoonacularProvider) Lookup(ctx context.Context, query string) (*common.RecipeDTO, error) {
	var result struct {
		Results []spoonacularRecipe `json:"results"`
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apiKey":               p.config.APIKey,
			"query":                query,
			"number":               "1",
			"addRecipeInformation": "true",
			"fillIngredients":      "true",
		}).
		SetResult(&result).
		Get("/complexSearch")

	if err != nil {
		return nil, fmt.Errorf("spoonacular request failed: %w", err)
	}

	if resp.StatusCode() == http.StatusPaymentRequired || resp.StatusCode() == http.StatusTooManyRequests {
		// 遠端已拒絕配額，視同當日額度已滿
		return nil, common.ErrProviderQuotaExceeded
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("spoonacular returned status %d", resp.StatusCode())
	}

	if len(result.Results) == 0 {
		return nil, common.ErrProviderNoResult
	}

	return convertSpoonacular(result.Results[0]), nil
}

// convertSpoonacular 轉換 Spoonacular schema 為統一格式
func convertSpoonacular(r spoonacularRecipe) *common.RecipeDTO {
	ingredients := make([]common.RecipeIngredient, 0, len(r.ExtendedIngredients))
	for _, ing := range r.ExtendedIngredients {
		amount := strings.TrimSpace(fmt.Sprintf("%g %s", ing.Amount, ing.Unit))
		ingredients = append(ingredients, common.RecipeIngredient{
			Name:   common.TitleCaseName(ing.Name),
			Amount: amount,
		})
	}

	var steps []string
	for _, instr := range r.AnalyzedInstructions {
		for _, s := range instr.Steps {
			if strings.TrimSpace(s.Step) != "" {
				steps = append(steps, strings.TrimSpace(s.Step))
			}
		}
	}

	prep := r.PreparationMinutes
	cook := r.CookingMinutes
	if prep <= 0 && cook <= 0 && r.ReadyInMinutes > 0 {
		// 僅提供總時間時全部計入烹調時間
		cook = r.ReadyInMinutes
	}

	servings := r.Servings
	if servings <= 0 {
		servings = 4
	}

	return &common.RecipeDTO{
		Title:          r.Title,
		Ingredients:    ingredients,
		Steps:          steps,
		PrepMinutes:    prep,
		CookMinutes:    cook,
		Servings:       servings,
		SourceProvider: ProviderSpoonacular,
	}
}
