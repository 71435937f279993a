package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// ログイン系の厳しめレート
const (
	limitStrict = rate.Limit(2)
	burstStrict = 5

	visitorIdle     = 10 * time.Minute
	cleanupInterval = 3 * time.Minute
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

// NewLoginRateLimiterはIPごとのログイン制限を返す
func NewLoginRateLimiter() *RateLimiter {
	l := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limitStrict,
		burst:    burstStrict,
	}
	go l.cleanupLoop()
	return l
}

func (l *RateLimiter) getVisitor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(l.limit, l.burst)
		l.visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// 古いエントリを消してマップが伸び続けないようにする
func (l *RateLimiter) cleanupLoop() {
	for {
		time.Sleep(cleanupInterval)

		l.mu.Lock()
		for key, v := range l.visitors {
			if time.Since(v.lastSeen) > visitorIdle {
				delete(l.visitors, key)
			}
		}
		l.mu.Unlock()
	}
}

func (l *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.getVisitor(c.RealIP()).Allow() {
				return c.JSON(http.StatusTooManyRequests, errorJSON("too many requests"))
			}
			return next(c)
		}
	}
}
