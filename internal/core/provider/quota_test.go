package provider

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pantry-scan/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotaConsumeUpToLimit(t *testing.T) {
	q := NewQuotaTracker()
	q.Register("spoonacular", 3)

	for i := 0; i < 3; i++ {
		require.NoError(t, q.Consume("spoonacular"))
	}
	assert.ErrorIs(t, q.Consume("spoonacular"), common.ErrProviderQuotaExceeded)
}

func TestQuotaUnlimitedProvider(t *testing.T) {
	q := NewQuotaTracker()
	q.Register("themealdb", 0)

	for i := 0; i < 500; i++ {
		require.NoError(t, q.Consume("themealdb"))
	}
}

func TestQuotaUnregisteredProvider(t *testing.T) {
	q := NewQuotaTracker()
	assert.NoError(t, q.Consume("unknown"))
}

func TestQuotaConcurrentConsumeNeverExceedsLimit(t *testing.T) {
	const (
		limit      = 40
		goroutines = 8
	)

	q := NewQuotaTracker()
	q.Register("spoonacular", limit)

	var wg sync.WaitGroup
	var successes int64
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < limit; i++ {
				if q.Consume("spoonacular") == nil {
					atomic.AddInt64(&successes, 1)
				}
			}
		}()
	}
	wg.Wait()

	// 額度用完後所有併發請求都必須被拒絕，計數不得超過上限
	assert.EqualValues(t, limit, successes)
	assert.Equal(t, limit, q.Usage()["spoonacular"]["used"])
}

func TestQuotaResetsOnDateChange(t *testing.T) {
	q := NewQuotaTracker()
	day1 := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	q.now = func() time.Time { return day1 }
	q.Register("spoonacular", 1)

	require.NoError(t, q.Consume("spoonacular"))
	assert.ErrorIs(t, q.Consume("spoonacular"), common.ErrProviderQuotaExceeded)

	// 跨日後額度歸零
	q.now = func() time.Time { return day1.Add(2 * time.Minute) }
	require.NoError(t, q.Consume("spoonacular"))
}

func TestQuotaUsageSnapshot(t *testing.T) {
	q := NewQuotaTracker()
	q.Register("spoonacular", 150)
	q.Register("themealdb", 0)

	require.NoError(t, q.Consume("spoonacular"))

	usage := q.Usage()
	require.Contains(t, usage, "spoonacular")
	assert.Equal(t, 1, usage["spoonacular"]["used"])
	assert.Equal(t, 150, usage["spoonacular"]["limit"])
	assert.Equal(t, 149, usage["spoonacular"]["remaining"])
	assert.Equal(t, "unlimited", usage["themealdb"]["limit"])
}
