package middleware

import (
	"fmt"
	"sync"

	"github.com/darkkaiser/learn-go/internal/service/api/constants"
	applog "github.com/darkkaiser/learn-go/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxIPRateLimiters 메모리에 유지하는 최대 IP(Rate Limiter) 수입니다.
	// 한도에 도달하면 임의의 항목 하나를 제거한 뒤 새 IP를 추가합니다.
	maxIPRateLimiters = 10000

	// retryAfterSeconds 제한 초과 시 클라이언트에게 제안하는 재시도 대기 시간(초)
	retryAfterSeconds = "1"
)

// ipRateLimiter IP 주소별 Token Bucket Limiter를 관리합니다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newIPRateLimiter(requestsPerSecond float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// getLimiter IP에 대한 Limiter를 반환하며, 없으면 새로 생성합니다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double-check: 다른 고루틴이 이미 생성했을 수 있음
	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	if len(i.limiters) >= maxIPRateLimiters {
		for k := range i.limiters {
			delete(i.limiters, k)
			break
		}
	}

	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter

	return limiter
}

func (i *ipRateLimiter) size() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.limiters)
}

// RateLimiting IP 기반 요청 속도 제한 미들웨어를 반환합니다.
//
// 제한을 초과한 요청은 Retry-After 헤더와 함께 429 실패 봉투로 응답합니다.
// 메모리 기반이므로 서버 재시작 시 초기화되고, 다중 인스턴스 환경에서는 인스턴스별로 적용됩니다.
//
// Panics:
//   - requestsPerSecond 또는 burst가 0 이하인 경우
func RateLimiting(requestsPerSecond float64, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf("RateLimiting: requestsPerSecond는 양수여야 합니다 (현재값: %v)", requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf("RateLimiting: burst는 양수여야 합니다 (현재값: %d)", burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set(echo.HeaderRetryAfter, retryAfterSeconds)

				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
