package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"pantry-scan/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter 限流器結構
type RateLimiter struct {
	mu       sync.Mutex
	tokens   int
	capacity int
	rate     float64
	lastTime time.Time
}

// NewRateLimiter 創建新的限流器
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		tokens:   requests,
		capacity: requests,
		rate:     float64(requests) / window.Seconds(),
		lastTime: time.Now(),
	}
}

// Allow 檢查是否允許請求
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastTime).Seconds()
	rl.lastTime = now

	// 添加新令牌
	newTokens := int(elapsed * rl.rate)
	if newTokens > 0 {
		rl.tokens = min(rl.capacity, rl.tokens+newTokens)
	}

	// 檢查是否有可用令牌
	if rl.tokens > 0 {
		rl.tokens--
		return true
	}

	return false
}

// 用戶端數超過此值時先清掉閒置的限流器
const clientLimiterPruneSize = 1024

// clientEntry 單一用戶端的限流器與最後活動時間
type clientEntry struct {
	limiter  *RateLimiter
	lastSeen time.Time
}

// clientLimiters 依用戶端識別鍵分桶的限流器集合
type clientLimiters struct {
	mu       sync.Mutex
	clients  map[string]*clientEntry
	requests int
	window   time.Duration
}

func (cl *clientLimiters) get(key string) *RateLimiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if e, ok := cl.clients[key]; ok {
		e.lastSeen = time.Now()
		return e.limiter
	}

	if len(cl.clients) >= clientLimiterPruneSize {
		cl.prune()
	}

	e := &clientEntry{
		limiter:  NewRateLimiter(cl.requests, cl.window),
		lastSeen: time.Now(),
	}
	cl.clients[key] = e
	return e.limiter
}

// prune 移除超過一個視窗未活動的用戶端，呼叫端需持有鎖
func (cl *clientLimiters) prune() {
	cutoff := time.Now().Add(-cl.window)
	for key, e := range cl.clients {
		if e.lastSeen.Before(cutoff) {
			delete(cl.clients, key)
		}
	}
}

// RateLimit 限流中間件
// 工作階段以 X-User-ID 區分使用者，限流沿用同一識別，缺標頭時退回來源 IP
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiters := &clientLimiters{
		clients:  make(map[string]*clientEntry),
		requests: requests,
		window:   window,
	}

	return func(c *gin.Context) {
		key := c.GetHeader("X-User-ID")
		if key == "" {
			key = c.ClientIP()
		}

		if !limiters.get(key).Allow() {
			common.LogWarn("Rate limit exceeded",
				zap.String("client", key),
				zap.String("path", c.Request.URL.Path),
			)

			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"code":        common.ErrCodeTooManyRequests,
				"retry_after": window.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// min 返回兩個整數中的較小值
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
