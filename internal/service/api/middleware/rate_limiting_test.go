package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/learn-go/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiting(t *testing.T) {
	captureLogs(t)

	e := newTestEcho()
	e.Use(RateLimiting(1, 2))
	e.GET("/ping", okHandler)

	request := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, request("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, request("10.0.0.1").Code)

	rec := request("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "버스트를 초과하면 429를 반환해야 합니다")
	assert.Equal(t, retryAfterSeconds, rec.Header().Get(echo.HeaderRetryAfter))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, constants.ErrMsgTooManyRequests, body["error"])

	assert.Equal(t, http.StatusOK, request("10.0.0.2").Code, "다른 IP는 독립적으로 제한되어야 합니다")
}

func TestRateLimiting_InvalidArgs(t *testing.T) {
	assert.Panics(t, func() { RateLimiting(0, 1) })
	assert.Panics(t, func() { RateLimiting(1, 0) })
}

func TestIPRateLimiter_Eviction(t *testing.T) {
	l := newIPRateLimiter(1, 1)

	for i := 0; i < maxIPRateLimiters+10; i++ {
		l.getLimiter(fmt.Sprintf("ip-%d", i))
	}

	assert.Equal(t, maxIPRateLimiters, l.size())
	assert.Same(t, l.getLimiter("ip-new"), l.getLimiter("ip-new"))
}
