package constants

import "time"

// 응답에 설정하는 보안 헤더 값입니다.
const (
	XFrameOptionsDeny          = "DENY"
	XContentTypeOptionsNosniff = "nosniff"
	XXSSProtectionBlock        = "1; mode=block"
	ReferrerPolicyDefault      = "strict-origin-when-cross-origin"

	// ContentSecurityPolicyDefault Swagger UI가 동작할 수 있도록 같은 출처의 스크립트/스타일과 인라인 스타일만 허용합니다.
	ContentSecurityPolicyDefault = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-ancestors 'none'"
)

// HTTP 서버 타임아웃 기본값입니다.
const (
	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간
	// 헤더를 매우 느리게 전송하는 클라이언트가 연결을 점유하는 것(Slowloris)을 막습니다.
	DefaultReadHeaderTimeout = 10 * time.Second

	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultIdleTimeout  = 120 * time.Second
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
