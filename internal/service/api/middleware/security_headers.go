package middleware

import (
	"github.com/darkkaiser/learn-go/internal/service/api/constants"
	"github.com/labstack/echo/v4"
)

// SecurityHeadersConfig 보안 헤더 미들웨어 설정입니다.
type SecurityHeadersConfig struct {
	// AllowAllOrigins true이면 Access-Control-Allow-Origin: * 헤더를 함께 설정합니다. (CORS 허용 목록이 와일드카드인 경우)
	AllowAllOrigins bool

	// ContentSecurityPolicy 비어 있으면 constants.ContentSecurityPolicyDefault를 사용합니다.
	ContentSecurityPolicy string
}

// SecurityHeaders 모든 응답에 고정된 보안 헤더를 설정하는 미들웨어를 반환합니다.
//
// 헤더는 다음 핸들러를 실행하기 전에 응답 헤더 맵에 기록되므로, 전역 에러 핸들러가 만드는
// 404/405/429/500 응답에도 동일하게 포함됩니다. 값은 항상 Set(덮어쓰기)으로 기록하여
// 여러 번 적용해도 헤더가 중복되지 않습니다. 요청을 거부하거나 본문을 변경하지 않습니다.
func SecurityHeaders(cfg SecurityHeadersConfig) echo.MiddlewareFunc {
	csp := cfg.ContentSecurityPolicy
	if csp == "" {
		csp = constants.ContentSecurityPolicyDefault
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			h.Set(echo.HeaderXFrameOptions, constants.XFrameOptionsDeny)
			h.Set(echo.HeaderXContentTypeOptions, constants.XContentTypeOptionsNosniff)
			h.Set(echo.HeaderXXSSProtection, constants.XXSSProtectionBlock)
			h.Set(echo.HeaderReferrerPolicy, constants.ReferrerPolicyDefault)
			h.Set(echo.HeaderContentSecurityPolicy, csp)

			if cfg.AllowAllOrigins {
				h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			}

			return next(c)
		}
	}
}

// RemoveServerHeader 응답에서 Server 헤더를 제거하는 미들웨어를 반환합니다.
// 공격자에게 서버 스택 정보(Go/Echo 버전 등)를 노출하지 않도록 합니다.
func RemoveServerHeader() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Del(echo.HeaderServer)
			return next(c)
		}
	}
}
