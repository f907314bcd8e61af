package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// unmatchedRoute 라우터가 404/405로 응답한 요청의 스팬 이름에 사용하는 라우트 값
const unmatchedRoute = "unmatched"

// Tracing 요청마다 서버 스팬을 만들고 W3C Trace Context 헤더를 전파하는 미들웨어를 반환합니다.
//
// 전역 TracerProvider와 전파기를 사용하므로, 추적이 초기화되지 않은 경우 스팬은 기록되지 않습니다.
// 스팬 이름은 라우팅이 끝난 뒤 "METHOD 라우트 템플릿" 형식(예: "GET /users/:id")으로 바뀌며,
// 일치하는 라우트가 없으면 "METHOD unmatched"가 됩니다.
func Tracing(serviceName string, opts ...otelhttp.Option) echo.MiddlewareFunc {
	opts = append([]otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method
		}),
	}, opts...)

	otelMiddleware := echo.WrapMiddleware(otelhttp.NewMiddleware(serviceName, opts...))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return otelMiddleware(func(c echo.Context) error {
			err := next(c)

			span := trace.SpanFromContext(c.Request().Context())
			span.SetName(c.Request().Method + " " + spanRoute(c, err))

			return err
		})
	}
}

// spanRoute 스팬 이름에 사용할 라우트 템플릿을 반환합니다.
// 아직 에러 핸들러가 처리하지 않은 에러가 있으면 그 상태 코드를 기준으로 판단합니다.
func spanRoute(c echo.Context, err error) string {
	status := c.Response().Status

	var he *echo.HTTPError
	if err != nil && errors.As(err, &he) {
		status = he.Code
	}

	route := c.Path()
	if route == "" || status == http.StatusNotFound || status == http.StatusMethodNotAllowed {
		return unmatchedRoute
	}
	return route
}

// TraceID 요청 Context에 기록 중인 스팬이 있으면 Trace ID를, 없으면 빈 문자열을 반환합니다.
func TraceID(c echo.Context) string {
	sc := trace.SpanContextFromContext(c.Request().Context())
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
