package session

import (
	"sync"
	"time"

	"pantry-scan/internal/pkg/common"

	"go.uber.org/zap"
)

// session 單一使用者的食材工作階段
// 鍵為正規化名稱，保證同名至多一筆
type session struct {
	mu          sync.Mutex
	items       map[string]common.DetectedItem
	createdAt   time.Time
	lastUpdated time.Time
}

// Store 以使用者 ID 為鍵的食材工作階段存放區
// 同一使用者的併發變更以各自 session 的鎖序列化，不同使用者互不影響
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session

	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time
	done          chan struct{}
	closeOnce     sync.Once
}

// NewStore 創建工作階段存放區並啟動定期清掃
func NewStore(ttl, sweepInterval time.Duration) *Store {
	s := &Store{
		sessions:      make(map[string]*session),
		ttl:           ttl,
		sweepInterval: sweepInterval,
		now:           time.Now,
		done:          make(chan struct{}),
	}

	go s.startSweep()

	common.LogInfo("食材工作階段存放區已初始化",
		zap.Duration("ttl", ttl),
		zap.Duration("sweep_interval", sweepInterval),
	)

	return s
}

// getOrCreate 取得使用者的工作階段，不存在時建立
func (s *Store) getOrCreate(userID string) *session {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[userID]; ok {
		return sess
	}

	now := s.now()
	sess = &session{
		items:       make(map[string]common.DetectedItem),
		createdAt:   now,
		lastUpdated: now,
	}
	s.sessions[userID] = sess
	return sess
}

// get 取得使用者的工作階段，不存在時回傳 nil
func (s *Store) get(userID string) *session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

// AddDetected 合併一筆偵測項目
// 同名項目保留信心值較高者（相同時保留既有項目），回傳是否為新增
func (s *Store) AddDetected(userID string, item common.DetectedItem) bool {
	sess := s.getOrCreate(userID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	key := common.NormalizeName(item.Name)
	sess.lastUpdated = s.now()

	existing, ok := sess.items[key]
	if !ok {
		sess.items[key] = item
		return true
	}
	if item.Confidence > existing.Confidence {
		sess.items[key] = item
	}
	return false
}

// AddManual 手動新增一筆食材
// 空白名稱回傳 ValidationError；同名已存在回傳 ErrDuplicateIngredient 且階段不變
func (s *Store) AddManual(userID, name string) (common.DetectedItem, error) {
	key := common.NormalizeName(name)
	if key == "" {
		return common.DetectedItem{}, common.NewValidationError("ingredient name must not be empty")
	}

	sess := s.getOrCreate(userID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if _, ok := sess.items[key]; ok {
		return common.DetectedItem{}, common.ErrDuplicateIngredient
	}

	item := common.DetectedItem{
		Name:       common.TitleCaseName(name),
		Confidence: 1.0,
		Category:   common.CategoryManual,
	}
	sess.items[key] = item
	sess.lastUpdated = s.now()
	return item, nil
}

// Remove 依名稱移除食材（不分大小寫）
func (s *Store) Remove(userID, name string) error {
	sess := s.get(userID)
	if sess == nil {
		return common.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	key := common.NormalizeName(name)
	if _, ok := sess.items[key]; !ok {
		return common.ErrIngredientNotFound
	}
	delete(sess.items, key)
	sess.lastUpdated = s.now()
	return nil
}

// List 回傳目前項目的快照；沒有工作階段時視為空階段
func (s *Store) List(userID string) []common.DetectedItem {
	sess := s.get(userID)
	if sess == nil {
		return []common.DetectedItem{}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	items := make([]common.DetectedItem, 0, len(sess.items))
	for _, it := range sess.items {
		items = append(items, it)
	}
	return items
}

// Names 回傳目前項目名稱的快照（配對食譜時使用）
func (s *Store) Names(userID string) []string {
	items := s.List(userID)
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}

// Clear 刪除整個工作階段
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Touch 設定工作階段的最後更新時間（測試用）
func (s *Store) Touch(userID string, t time.Time) {
	sess := s.get(userID)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastUpdated = t
}

// startSweep 定期清掃過期工作階段的協程
func (s *Store) startSweep() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.done:
			return
		}
	}
}

// Sweep 刪除閒置超過 TTL 的工作階段，回傳刪除數量
// 每個工作階段的鎖只在過期判斷期間短暫持有
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for userID, sess := range s.sessions {
		sess.mu.Lock()
		expired := now.Sub(sess.lastUpdated) > s.ttl
		sess.mu.Unlock()

		if expired {
			delete(s.sessions, userID)
			count++
		}
	}

	if count > 0 {
		common.LogInfo("清掃過期工作階段",
			zap.Int("evicted", count),
			zap.Int("remaining", len(s.sessions)),
		)
	}

	return count
}

// Close 停止清掃協程
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
