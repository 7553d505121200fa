package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pantry-scan/internal/infrastructure/config"
	"pantry-scan/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, maxSize int, ttl time.Duration) *Manager {
	t.Helper()
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.Backend = "memory"
	cfg.Cache.MaxSize = maxSize
	cfg.Cache.TTL = ttl
	cfg.Cache.CleanupInterval = time.Hour
	m := NewManager(cfg)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestManagerSetGet(t *testing.T) {
	m := newTestManager(t, 10, time.Minute)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "adobo", `{"title":"Chicken Adobo"}`))

	val, err := m.Get(ctx, "adobo")
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Chicken Adobo"}`, val)
}

func TestManagerMiss(t *testing.T) {
	m := newTestManager(t, 10, time.Minute)

	_, err := m.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestManagerExpiry(t *testing.T) {
	m := newTestManager(t, 10, 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "adobo", "v"))
	time.Sleep(20 * time.Millisecond)

	_, err := m.Get(ctx, "adobo")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestManagerLRUEviction(t *testing.T) {
	m := newTestManager(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, m.Set(ctx, fmt.Sprintf("k%d", i), "v"))
	}

	// k0 與 k1 各訪問一次，k2 未被訪問，應優先淘汰
	_, _ = m.Get(ctx, "k0")
	_, _ = m.Get(ctx, "k1")

	require.NoError(t, m.Set(ctx, "k3", "v"))

	_, err := m.Get(ctx, "k2")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	val, err := m.Get(ctx, "k3")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestManagerStats(t *testing.T) {
	m := newTestManager(t, 10, time.Minute)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", "v"))
	_, _ = m.Get(ctx, "k")
	_, _ = m.Get(ctx, "missing")

	stats := m.Stats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, 0.5, stats["hit_ratio"])
}

func TestDisabledStore(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	store, err := NewStore(cfg)
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), "k", "v"))
	_, err = store.Get(context.Background(), "k")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}
