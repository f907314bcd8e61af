// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 환영 페이지, 헬스체크, 애플리케이션/버전 정보, 메트릭, OpenAPI 문서 등
// 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"fmt"
	"net/http"
	"time"

	"github.com/darkkaiser/learn-go/internal/service/api/constants"
	"github.com/darkkaiser/learn-go/internal/service/api/httputil"
	"github.com/darkkaiser/learn-go/internal/service/api/model/domain"
	"github.com/darkkaiser/learn-go/internal/service/api/model/system"
	"github.com/darkkaiser/learn-go/internal/service/metrics"
	"github.com/darkkaiser/learn-go/internal/service/sysinfo"
	applog "github.com/darkkaiser/learn-go/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// MetricsRenderer 현재 메트릭을 Prometheus 텍스트 형식으로 렌더링합니다.
type MetricsRenderer interface {
	Render() (string, error)
}

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	boot *domain.BootSnapshot

	systemProvider    sysinfo.Provider
	systemInfoTimeout time.Duration

	metrics MetricsRenderer
}

// NewHandler Handler 인스턴스를 생성합니다.
//
// boot는 프로세스 시작 시 한 번 생성된 읽기 전용 스냅샷이며, 핸들러는 이를 수정하지 않습니다.
func NewHandler(boot *domain.BootSnapshot, systemProvider sysinfo.Provider, systemInfoTimeout time.Duration, renderer MetricsRenderer) *Handler {
	if boot == nil {
		panic(constants.PanicMsgBootSnapshotRequired)
	}
	if systemProvider == nil {
		panic(constants.PanicMsgSystemProviderRequired)
	}
	if renderer == nil {
		panic(constants.PanicMsgMetricsCollectorRequired)
	}
	if systemInfoTimeout <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgSystemInfoTimeoutInvalid, systemInfoTimeout))
	}

	return &Handler{
		boot: boot,

		systemProvider:    systemProvider,
		systemInfoTimeout: systemInfoTimeout,

		metrics: renderer,
	}
}

// Endpoints 환영 페이지에 노출하는 엔드포인트 목록입니다.
var Endpoints = []system.Endpoint{
	{Path: "/", Method: http.MethodGet, Description: "환영 페이지"},
	{Path: "/ping", Method: http.MethodGet, Description: "간단한 상태 확인 (pong)"},
	{Path: "/healthz", Method: http.MethodGet, Description: "서비스 상태 확인"},
	{Path: "/info", Method: http.MethodGet, Description: "애플리케이션 및 실행 환경 정보"},
	{Path: "/version", Method: http.MethodGet, Description: "버전 정보"},
	{Path: "/echo", Method: http.MethodPost, Description: "요청 JSON을 그대로 반환"},
	{Path: "/metrics", Method: http.MethodGet, Description: "Prometheus 메트릭"},
}

// WelcomeHandler godoc
// @Summary 환영 페이지
// @Description 서비스 소개와 제공하는 엔드포인트 목록, 문서 링크를 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope[system.WelcomeData] "환영 정보"
// @Router / [get]
func (h *Handler) WelcomeHandler(c echo.Context) error {
	return httputil.Success(c, system.WelcomeData{
		Message:     constants.MsgWelcome,
		Description: h.boot.App.Description,
		Documentation: system.Documentation{
			Swagger: constants.SwaggerUIPath,
			OpenAPI: constants.OpenAPIPath,
		},
		Links: system.Links{
			Repository: constants.RepositoryURL,
			Issues:     constants.IssueTrackerURL,
		},
		Endpoints: Endpoints,
	})
}

// PingHandler godoc
// @Summary Ping
// @Description 요청 내용과 관계없이 항상 pong을 반환합니다.
// @Tags System
// @Produce plain
// @Success 200 {string} string "pong"
// @Router /ping [get]
func (h *Handler) PingHandler(c echo.Context) error {
	return c.String(http.StatusOK, constants.MsgPong)
}

// HealthCheckHandler godoc
// @Summary 서비스 헬스체크
// @Description 프로세스 가동 시간과 호스트 메모리/시스템 정보를 반환합니다.
// @Description 외부 의존성 검사는 하지 않으므로 상태는 항상 healthy입니다.
// @Description 시스템 정보 조회가 지연되거나 실패하면 메모리 값은 0으로 채워집니다.
// @Description
// @Description 단위: uptime(초), memory(바이트, percent는 0-100)
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope[system.HealthData] "헬스체크 결과"
// @Router /healthz [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	h.logRequest(c, constants.LogMsgHealthCheck)

	snap := sysinfo.Collect(c.Request().Context(), h.systemProvider, h.systemInfoTimeout)

	return httputil.Success(c, system.HealthData{
		Status: constants.HealthStatusHealthy,
		Uptime: sysinfo.Uptime(h.boot.StartedAt),
		Memory: snap.Memory,
		System: system.HealthSystem{
			OS:       snap.OS,
			Arch:     snap.Arch,
			CPUCount: snap.CPUCount,
			Hostname: snap.Hostname,
		},
	})
}

// InfoHandler godoc
// @Summary 애플리케이션 정보
// @Description 애플리케이션 식별 정보와 호스트, Go 런타임, 서버 실행 설정을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope[system.InfoData] "애플리케이션 정보"
// @Router /info [get]
func (h *Handler) InfoHandler(c echo.Context) error {
	h.logRequest(c, constants.LogMsgAppInfo)

	snap := sysinfo.Collect(c.Request().Context(), h.systemProvider, h.systemInfoTimeout)
	rt := sysinfo.ReadRuntime()

	return httputil.Success(c, system.InfoData{
		Application: h.boot.App,
		System: system.InfoSystem{
			OS:       snap.OS,
			Arch:     snap.Arch,
			Hostname: snap.Hostname,
			CPUCount: snap.CPUCount,

			Platform:      snap.Platform,
			KernelVersion: snap.KernelVersion,

			Uptime: snap.BootUptime,
			Memory: snap.Memory,
		},
		Runtime: system.InfoRuntime{
			GoVersion:  rt.GoVersion,
			Goroutines: rt.Goroutines,
			HeapAlloc:  rt.HeapAlloc,
			HeapSys:    rt.HeapSys,
			NumGC:      rt.NumGC,
		},
		Environment: system.InfoEnv{
			GoVersion: rt.GoVersion,
			Port:      h.boot.Port,
			Host:      h.boot.Host,
		},
	})
}

// VersionHandler godoc
// @Summary 버전 정보
// @Description 빌드 시점에 주입된 버전, Git 커밋, 빌드 날짜/번호와 Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope[system.VersionData] "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	h.logRequest(c, constants.LogMsgVersionInfo)

	bi := h.boot.BuildInfo

	return httputil.Success(c, system.VersionData{
		Version:     h.boot.App.Version,
		Commit:      bi.Commit,
		BuildDate:   bi.BuildDate,
		BuildNumber: bi.BuildNumber,
		GoVersion:   bi.GoVersion,
	})
}

// MetricsHandler godoc
// @Summary Prometheus 메트릭
// @Description 요청 카운터와 처리 시간 히스토그램, 시스템/런타임 게이지를 Prometheus 텍스트 형식으로 반환합니다.
// @Tags System
// @Produce plain
// @Success 200 {string} string "Prometheus text exposition format"
// @Router /metrics [get]
func (h *Handler) MetricsHandler(c echo.Context) error {
	h.logRequest(c, constants.LogMsgMetricsScrape)

	text, err := h.metrics.Render()
	if err != nil {
		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgMetricsRender)

		return httputil.NewInternalServerError(constants.ErrMsgInternalServer)
	}

	return c.Blob(http.StatusOK, metrics.ContentType, []byte(text))
}

// OpenAPIHandler 등록된 OpenAPI(Swagger 2.0) 문서를 JSON으로 반환합니다.
func (h *Handler) OpenAPIHandler(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgOpenAPIMissing)

		return httputil.NewNotFoundError(constants.ErrMsgNotFound)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func (h *Handler) logRequest(c echo.Context, msg string) {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(msg)
}
