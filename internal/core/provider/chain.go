package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pantry-scan/internal/core/cache"
	"pantry-scan/internal/infrastructure/config"
	"pantry-scan/internal/pkg/common"

	"go.uber.org/zap"
)

// Chain 依序嘗試供應商的查詢鏈
// 每次實際對外請求（含部分名稱重試）都先消耗額度，額度已滿立即換下一層
// 鏈尾是模板供應商，所以查詢永遠有結果
type Chain struct {
	providers []Provider
	quota     *QuotaTracker
	cache     cache.Store
}

// NewChain 依設定組裝供應商鏈
func NewChain(cfg *config.Config, store cache.Store) *Chain {
	quota := NewQuotaTracker()

	var providers []Provider
	if cfg.Providers.Spoonacular.Enabled && cfg.Providers.Spoonacular.APIKey != "" {
		providers = append(providers, NewSpoonacularProvider(&cfg.Providers.Spoonacular))
		quota.Register(ProviderSpoonacular, cfg.Providers.Spoonacular.DailyLimit)
	} else {
		common.LogInfo("Spoonacular 未設定，略過此供應商")
	}
	providers = append(providers, NewMealDBProvider(&cfg.Providers.MealDB))
	quota.Register(ProviderMealDB, 0)
	providers = append(providers, NewGeneratedProvider())

	return NewChainWith(providers, quota, store)
}

// NewChainWith 以指定的供應商組裝查詢鏈（測試用）
func NewChainWith(providers []Provider, quota *QuotaTracker, store cache.Store) *Chain {
	if store == nil {
		store = noopStore{}
	}
	return &Chain{
		providers: providers,
		quota:     quota,
		cache:     store,
	}
}

// Lookup 查詢料理食譜
// 快取命中直接回傳；否則逐層嘗試，單層錯誤記錄後吸收
func (c *Chain) Lookup(ctx context.Context, foodName string) (*common.RecipeDTO, error) {
	key := common.NormalizeName(foodName)
	if key == "" {
		return nil, common.NewValidationError("food name must not be empty")
	}

	if cached, err := c.cache.Get(ctx, key); err == nil {
		var dto common.RecipeDTO
		if err := common.ParseJSON(cached, &dto); err == nil {
			return &dto, nil
		}
		common.LogWarn("快取內容無法解析，改走供應商鏈",
			zap.String("key", key),
		)
	}

	for _, p := range c.providers {
		dto, err := c.tryProvider(ctx, p, foodName)
		if err != nil {
			if !errors.Is(err, common.ErrProviderNoResult) && !errors.Is(err, common.ErrProviderQuotaExceeded) {
				common.LogWarn("供應商查詢失敗，換下一層",
					zap.String("provider", p.ID()),
					zap.Error(err),
				)
			}
			continue
		}

		// 模板結果不進快取，下次仍優先嘗試真實來源
		if dto.SourceProvider != ProviderGenerated {
			if data, err := common.ToJSON(dto); err == nil {
				if err := c.cache.Set(ctx, key, data); err != nil && !errors.Is(err, common.ErrCacheFull) {
					common.LogWarn("快取寫入失敗",
						zap.String("key", key),
						zap.Error(err),
					)
				}
			}
		}

		return dto, nil
	}

	// 鏈尾是永不失敗的模板供應商，走到這裡表示組裝有誤
	return nil, fmt.Errorf("provider chain exhausted for %q", foodName)
}

// tryProvider 單層查詢：完整名稱查無結果時以較長單字逐一重試
// 每次請求前都先過額度檢查，額度已滿立即中止此層
func (c *Chain) tryProvider(ctx context.Context, p Provider, foodName string) (*common.RecipeDTO, error) {
	dto, err := c.call(ctx, p, foodName)
	if !errors.Is(err, common.ErrProviderNoResult) {
		return dto, err
	}

	full := common.NormalizeName(foodName)
	for _, word := range common.SignificantWords(foodName) {
		if common.NormalizeName(word) == full {
			continue
		}
		common.LogDebug("以部分名稱重試查詢",
			zap.String("provider", p.ID()),
			zap.String("word", word),
		)
		dto, err = c.call(ctx, p, word)
		if !errors.Is(err, common.ErrProviderNoResult) {
			return dto, err
		}
	}

	return nil, common.ErrProviderNoResult
}

// call 消耗一次額度並發出單次查詢
func (c *Chain) call(ctx context.Context, p Provider, query string) (*common.RecipeDTO, error) {
	if err := c.quota.Consume(p.ID()); err != nil {
		return nil, err
	}

	start := time.Now()
	dto, err := p.Lookup(ctx, query)
	common.LogProviderCall(p.ID(), time.Since(start), err)
	return dto, err
}

// Usage 回傳供應商額度用量快照
func (c *Chain) Usage() map[string]map[string]interface{} {
	return c.quota.Usage()
}

// noopStore 未接快取時的空實作
type noopStore struct{}

func (noopStore) Get(context.Context, string) (string, error) { return "", common.ErrCacheMiss }
func (noopStore) Set(context.Context, string, string) error   { return nil }
func (noopStore) Stats() map[string]interface{}               { return nil }
func (noopStore) Close() error                                { return nil }
