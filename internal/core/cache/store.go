package cache

import (
	"context"
	"fmt"

	"pantry-scan/internal/infrastructure/config"
)

// Store 食譜查詢快取的統一介面
// 未命中或已停用時 Get 回傳 common.ErrCacheMiss
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Stats() map[string]interface{}
	Close() error
}

// NewStore 依設定的後端創建快取
func NewStore(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		return &disabledStore{}, nil
	}

	switch cfg.Cache.Backend {
	case "redis":
		return NewRedisStore(&cfg.Cache)
	case "memory":
		return NewManager(cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}
