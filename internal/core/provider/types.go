package provider

import (
	"context"

	"pantry-scan/internal/pkg/common"
)

// 供應商識別碼
const (
	ProviderSpoonacular = "spoonacular"
	ProviderMealDB      = "themealdb"
	ProviderGenerated   = "generated"
)

// Provider 外部食譜來源
// Lookup 對單一查詢字串發出一次查詢，查無結果時回傳 common.ErrProviderNoResult
type Provider interface {
	ID() string
	Lookup(ctx context.Context, query string) (*common.RecipeDTO, error)
}
