package api

import (
	"net/http"
	"slices"
	"time"

	"github.com/darkkaiser/learn-go/internal/service/api/constants"
	"github.com/darkkaiser/learn-go/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/learn-go/internal/service/api/middleware"
	applog "github.com/darkkaiser/learn-go/pkg/log"
	"github.com/darkkaiser/learn-go/pkg/validation"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록 (["*"]이면 모든 Origin 허용)
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간
	// 초과 시 요청 Context가 취소되고, 핸들러가 이를 반환하면 503 응답이 됩니다.
	RequestTimeout time.Duration

	// BodyLimit 요청 본문 최대 크기 (예: "1M"). 초과 시 413 응답
	BodyLimit string

	// RateLimitPerSecond IP별 초당 허용 요청 수 (0이면 속도 제한 미사용)
	RateLimitPerSecond float64
	RateLimitBurst     int

	// TracingServiceName 비어 있지 않으면 요청마다 서버 스팬을 생성합니다.
	TracingServiceName string

	// Recorder 요청 메트릭 기록 대상 (nil이면 기록하지 않음)
	Recorder appmiddleware.RequestRecorder
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다 (순서가 중요합니다):
//
//  1. PanicRecovery - 패닉 복구 및 로깅
//     - 가장 먼저 적용되어야 다른 미들웨어의 panic도 복구 가능
//
//  2. RequestID - 요청 ID 생성 (X-Request-ID 헤더, UUID v4)
//     - 로깅 미들웨어보다 먼저 적용되어야 로그에 request_id 포함 가능
//
//  3. SecurityHeaders - 보안 헤더 설정
//     - 내부 체인 실행 전에 헤더를 기록하므로 404/405/429/500 등 에러 응답에도 포함됨
//
//  4. ServerHeader - Server 헤더 제거
//
//  5. Tracing - 분산 추적 스팬 생성 (TracingServiceName이 설정된 경우)
//     - 로깅 미들웨어보다 먼저 적용되어야 로그에 trace_id 포함 가능
//
//  6. HTTPLogger - HTTP 요청/응답 로깅
//     - RateLimit/Timeout 이전에 위치하여 429/503 에러도 기록
//
//  7. Metrics - 요청 수/처리 시간 기록 (라우트 템플릿 기준)
//
//  8. RateLimiting - IP 기반 요청 제한 (설정된 경우)
//
//  9. BodyLimit - 요청 본문 크기 제한 (초과 시 413 응답)
//
//  10. ContextTimeout - 요청 처리 시간 제한 (초과 시 503 응답)
//
//  11. CORS - Cross-Origin Resource Sharing
//     - Preflight 요청(OPTIONS) 자동 응답
//
//  12. PanicRecovery - 핸들러 패닉 복구
//     - 핸들러 바로 바깥에서 500 응답으로 변환하므로 HTTPLogger/Metrics가 해당 요청을 기록함
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	// 보안 및 리소스 관리를 위한 HTTP 서버 타임아웃 설정
	e.Server.ReadTimeout = constants.DefaultReadTimeout             // 요청 본문 읽기 제한
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout // 요청 헤더 읽기 제한
	e.Server.WriteTimeout = constants.DefaultWriteTimeout           // 응답 쓰기 제한
	e.Server.IdleTimeout = constants.DefaultIdleTimeout             // Keep-Alive 연결 유휴 제한

	// Echo 프레임워크의 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	// 전역 HTTP 에러 핸들러 설정
	e.HTTPErrorHandler = httputil.ErrorHandler

	allowAllOrigins := len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, validation.WildcardOrigin)

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// 3. 보안 헤더
	e.Use(appmiddleware.SecurityHeaders(appmiddleware.SecurityHeadersConfig{
		AllowAllOrigins: allowAllOrigins,
	}))
	// 4. Server 헤더 제거
	e.Use(appmiddleware.RemoveServerHeader())
	// 5. 분산 추적
	if cfg.TracingServiceName != "" {
		e.Use(appmiddleware.Tracing(cfg.TracingServiceName))
	}
	// 6. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 7. 메트릭
	if cfg.Recorder != nil {
		e.Use(appmiddleware.Metrics(cfg.Recorder))
	}
	// 8. Rate Limiting
	if cfg.RateLimitPerSecond > 0 {
		e.Use(appmiddleware.RateLimiting(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	}
	// 9. Body Limit
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}
	// 10. Timeout
	if cfg.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeout(cfg.RequestTimeout))
	}
	// 11. CORS 설정
	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{validation.WildcardOrigin}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
	}))
	// 12. 핸들러 Panic 복구
	e.Use(appmiddleware.PanicRecovery())

	return e
}
