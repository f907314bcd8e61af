package api

import (
	_ "github.com/darkkaiser/learn-go/docs"
	"github.com/darkkaiser/learn-go/internal/service/api/constants"
	"github.com/darkkaiser/learn-go/internal/service/api/handler/system"
	"github.com/darkkaiser/learn-go/internal/service/api/handler/utility"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 전역 라우트를 등록합니다.
//
// 이 함수는 다음과 같은 엔드포인트들을 설정합니다:
//   - 시스템 엔드포인트: /, /ping, /healthz, /info, /version, /metrics
//   - 유틸리티 엔드포인트: /echo
//   - API 문서: OpenAPI 문서(/openapi.json) 및 Swagger UI(/swagger/*)
func RegisterRoutes(e *echo.Echo, sh *system.Handler, uh *utility.Handler) {
	registerSystemRoutes(e, sh)
	registerUtilityRoutes(e, uh)
	registerDocumentRoutes(e, sh)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/", h.WelcomeHandler)
	e.GET("/ping", h.PingHandler)
	e.GET("/healthz", h.HealthCheckHandler)
	e.GET("/info", h.InfoHandler)
	e.GET("/version", h.VersionHandler)
	e.GET("/metrics", h.MetricsHandler)
}

func registerUtilityRoutes(e *echo.Echo, h *utility.Handler) {
	e.POST("/echo", h.EchoHandler)
}

func registerDocumentRoutes(e *echo.Echo, h *system.Handler) {
	e.GET(constants.OpenAPIPath, h.OpenAPIHandler)

	// Swagger UI 엔드포인트 설정
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		// Swagger 문서 JSON 파일 위치 지정
		echoSwagger.URL("/swagger/doc.json"),
		// 딥 링크 활성화 (특정 API로 바로 이동 가능한 URL 지원)
		echoSwagger.DeepLinking(true),
		// 문서 로드 시 태그(Tag) 목록만 펼침 상태로 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}
