package provider

import (
	"sync"
	"time"

	"pantry-scan/internal/pkg/common"

	"go.uber.org/zap"
)

// quotaWindow 單一供應商的當日用量
type quotaWindow struct {
	dailyLimit   int
	requestCount int
	windowDate   string // YYYY-MM-DD
}

// QuotaTracker 供應商每日額度追蹤
// 檢查與遞增在同一把鎖內完成，日期變更時延遲歸零
type QuotaTracker struct {
	mu      sync.Mutex
	windows map[string]*quotaWindow
	now     func() time.Time
}

// NewQuotaTracker 創建額度追蹤器
func NewQuotaTracker() *QuotaTracker {
	return &QuotaTracker{
		windows: make(map[string]*quotaWindow),
		now:     time.Now,
	}
}

// Register 註冊供應商的每日上限，limit <= 0 表示不限量
func (q *QuotaTracker) Register(providerID string, dailyLimit int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.windows[providerID] = &quotaWindow{
		dailyLimit: dailyLimit,
		windowDate: q.today(),
	}
}

// Consume 嘗試消耗一次額度
// 未註冊或不限量的供應商永遠成功；額度已滿回傳 ErrProviderQuotaExceeded
func (q *QuotaTracker) Consume(providerID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	w, ok := q.windows[providerID]
	if !ok || w.dailyLimit <= 0 {
		return nil
	}

	q.resetIfStale(w)

	if w.requestCount >= w.dailyLimit {
		common.LogWarn("供應商當日額度已滿",
			zap.String("provider", providerID),
			zap.Int("limit", w.dailyLimit),
		)
		return common.ErrProviderQuotaExceeded
	}

	w.requestCount++
	return nil
}

// Usage 回傳所有供應商的用量快照（健康檢查用）
func (q *QuotaTracker) Usage() map[string]map[string]interface{} {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make(map[string]map[string]interface{}, len(q.windows))
	for id, w := range q.windows {
		q.resetIfStale(w)
		entry := map[string]interface{}{
			"used":        w.requestCount,
			"window_date": w.windowDate,
		}
		if w.dailyLimit > 0 {
			entry["limit"] = w.dailyLimit
			entry["remaining"] = w.dailyLimit - w.requestCount
		} else {
			entry["limit"] = "unlimited"
		}
		out[id] = entry
	}
	return out
}

// resetIfStale 日期變更時歸零，呼叫端需持有鎖
func (q *QuotaTracker) resetIfStale(w *quotaWindow) {
	today := q.today()
	if w.windowDate != today {
		w.windowDate = today
		w.requestCount = 0
	}
}

func (q *QuotaTracker) today() string {
	return q.now().Format("2006-01-02")
}
