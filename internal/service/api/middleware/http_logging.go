package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/learn-go/internal/service/api/constants"
	applog "github.com/darkkaiser/learn-go/pkg/log"
	"github.com/darkkaiser/learn-go/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 없는 경우(Chunked 전송 등) bytes_in 필드에 기록할 값
const defaultBytesIn = "0"

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 기록되는 정보:
//   - 요청: IP, 메서드, URI, User-Agent, Content-Length
//   - 응답: 상태 코드, 응답 크기, Request ID
//   - 성능: 처리 시간 (마이크로초 및 사람이 읽기 쉬운 형식)
//
// 민감한 쿼리 파라미터(token, password 등)의 값은 마스킹되어 기록됩니다.
// 핸들러가 반환한 에러는 이 미들웨어에서 전역 에러 핸들러로 넘겨 최종 상태 코드를 기록합니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			bytesIn := req.Header.Get(echo.HeaderContentLength)
			if bytesIn == "" {
				bytesIn = defaultBytesIn
			}

			path := req.URL.Path
			if path == "" {
				path = "/"
			}

			applog.WithFields(applog.Fields{
				"method":   req.Method,
				"path":     path,
				"route":    c.Path(),
				"uri":      maskSensitiveQueryParams(req.RequestURI),
				"host":     req.Host,
				"protocol": req.Proto,

				"remote_ip":  c.RealIP(),
				"user_agent": req.UserAgent(),
				"referer":    req.Referer(),

				"status":    res.Status,
				"bytes_in":  bytesIn,
				"bytes_out": strconv.FormatInt(res.Size, 10),

				"latency":       strconv.FormatInt(latency.Microseconds(), 10),
				"latency_human": latency.String(),

				"request_id": res.Header().Get(echo.HeaderXRequestID),
				"trace_id":   TraceID(c),
			}).Info(constants.LogMsgHTTPRequest)

			return nil
		}
	}
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 마스킹합니다.
// URI 파싱에 실패하면 원본을 반환하여 로깅이 중단되지 않도록 합니다.
//
//	"/echo?token=secret123&id=100" -> "/echo?id=100&token=secr%2A%2A%2A"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false

	for _, param := range constants.SensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.MaskSensitiveData(q.Get(param)))
			masked = true
		}
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
