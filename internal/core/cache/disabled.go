package cache

import (
	"context"

	"pantry-scan/internal/pkg/common"
)

// disabledStore 快取停用時的空實作
type disabledStore struct{}

func (disabledStore) Get(context.Context, string) (string, error) {
	return "", common.ErrCacheMiss
}

func (disabledStore) Set(context.Context, string, string) error {
	return nil
}

func (disabledStore) Stats() map[string]interface{} {
	return map[string]interface{}{"backend": "disabled"}
}

func (disabledStore) Close() error {
	return nil
}
