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

// TheMealDB 不提供時間與份量，統一使用預設值
const (
	mealDBDefaultPrepMinutes = 15
	mealDBDefaultCookMinutes = 30
	mealDBDefaultServings    = 4
	mealDBIngredientSlots    = 20
)

// MealDBProvider TheMealDB 食譜查詢客戶端
type MealDBProvider struct {
	config *config.MealDBConfig
	client *resty.Client
}

// NewMealDBProvider 創建 TheMealDB 供應商
func NewMealDBProvider(cfg *config.MealDBConfig) *MealDBProvider {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetBaseURL(cfg.BaseURL)

	return &MealDBProvider{
		config: cfg,
		client: client,
	}
}

func (p *MealDBProvider) ID() string {
	return ProviderMealDB
}

// Lookup 以單一查詢字串呼叫 search.php 並轉換為統一格式
// 部分名稱重試由查詢鏈負責；strIngredient1..20 與 strMeasure1..20 以 map 逐欄讀出
func (p *MealDBProvider) Lookup(ctx context.Context, query string) (*common.RecipeDTO, error) {
	var result struct {
		Meals []map[string]interface{} `json:"meals"`
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("s", query).
		SetResult(&result).
		Get("/search.php")

	if err != nil {
		return nil, fmt.Errorf("themealdb request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("themealdb returned status %d", resp.StatusCode())
	}

	if len(result.Meals) == 0 {
		return nil, common.ErrProviderNoResult
	}

	return convertMealDB(result.Meals[0]), nil
}

// convertMealDB 轉換 TheMealDB schema 為統一格式
func convertMealDB(meal map[string]interface{}) *common.RecipeDTO {
	title, _ := meal["strMeal"].(string)

	var ingredients []common.RecipeIngredient
	for i := 1; i <= mealDBIngredientSlots; i++ {
		name := stringField(meal, fmt.Sprintf("strIngredient%d", i))
		if name == "" {
			continue
		}
		measure := stringField(meal, fmt.Sprintf("strMeasure%d", i))
		ingredients = append(ingredients, common.RecipeIngredient{
			Name:   common.TitleCaseName(name),
			Amount: measure,
		})
	}

	var steps []string
	instructions := stringField(meal, "strInstructions")
	for _, line := range strings.Split(instructions, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			steps = append(steps, line)
		}
	}

	return &common.RecipeDTO{
		Title:          title,
		Ingredients:    ingredients,
		Steps:          steps,
		PrepMinutes:    mealDBDefaultPrepMinutes,
		CookMinutes:    mealDBDefaultCookMinutes,
		Servings:       mealDBDefaultServings,
		SourceProvider: ProviderMealDB,
	}
}

// stringField 讀出去除空白後非空的字串欄位
func stringField(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return strings.TrimSpace(v)
}
