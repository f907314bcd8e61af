package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestRecorder 처리가 끝난 요청을 기록하는 대상입니다.
type RequestRecorder interface {
	Record(method, route string, status int, d time.Duration)
}

// Metrics 요청마다 메서드, 라우트 템플릿, 최종 상태 코드, 처리 시간을 기록하는 미들웨어를 반환합니다.
//
// 라우트 레이블에는 실제 경로 대신 라우트 템플릿(c.Path())을 사용합니다.
// 라우터가 404/405로 응답한 요청은 가장 가까운 노드의 경로가 설정되어 있으므로 빈 값으로 전달하여
// recorder가 unmatched로 기록하도록 합니다.
func Metrics(recorder RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status

			route := c.Path()
			if status == http.StatusNotFound || status == http.StatusMethodNotAllowed {
				route = ""
			}

			recorder.Record(c.Request().Method, route, status, time.Since(start))

			return nil
		}
	}
}
