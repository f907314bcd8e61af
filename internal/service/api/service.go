package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/darkkaiser/learn-go/internal/config"
	"github.com/darkkaiser/learn-go/internal/service/api/constants"
	"github.com/darkkaiser/learn-go/internal/service/api/handler/system"
	"github.com/darkkaiser/learn-go/internal/service/api/handler/utility"
	"github.com/darkkaiser/learn-go/internal/service/api/model/domain"
	"github.com/darkkaiser/learn-go/internal/service/metrics"
	"github.com/darkkaiser/learn-go/internal/service/sysinfo"
	applog "github.com/darkkaiser/learn-go/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service HTTP API 서버의 생명주기를 관리하는 서비스입니다.
//
// 이 서비스는 다음과 같은 역할을 수행합니다:
//   - Echo 기반 HTTP 서버 생성 (미들웨어 체인, 라우트, 전역 에러 핸들러)
//   - 리슨 소켓 바인딩 (Start 호출 시 동기적으로 수행하여 바인딩 실패를 즉시 반환)
//   - Graceful Shutdown (server.shutdown_timeout 동안 처리 중인 요청 완료 대기 후 강제 종료)
//   - 예기치 않은 서버 종료를 Errors 채널로 통지
//
// Start() 메서드로 시작하고, context 취소로 종료됩니다.
type Service struct {
	appConfig *config.AppConfig

	boot *domain.BootSnapshot

	systemProvider sysinfo.Provider
	collector      *metrics.Collector

	listenAddr net.Addr
	errC       chan error

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, boot *domain.BootSnapshot, systemProvider sysinfo.Provider, collector *metrics.Collector) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if boot == nil {
		panic(constants.PanicMsgBootSnapshotRequired)
	}
	if systemProvider == nil {
		panic(constants.PanicMsgSystemProviderRequired)
	}
	if collector == nil {
		panic(constants.PanicMsgMetricsCollectorRequired)
	}

	return &Service{
		appConfig: appConfig,

		boot: boot,

		systemProvider: systemProvider,
		collector:      collector,

		errC: make(chan error, 1),
	}
}

// Start API 서비스를 시작합니다.
//
// 리슨 소켓 바인딩은 호출한 고루틴에서 수행되며, 실패하면 serviceStopWG.Done()을 호출하고 에러를 반환합니다.
// 바인딩에 성공하면 HTTP 서버는 별도의 고루틴에서 실행되고, serviceStopCtx가 취소되면
// Graceful Shutdown을 수행한 뒤 serviceStopWG.Done()을 호출합니다.
//
// Parameters:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	e := s.setupServer()

	addr := s.appConfig.Server.Address()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		defer serviceStopWG.Done()
		return NewErrListenFailed(addr, err)
	}

	e.Listener = ln
	s.listenAddr = ln.Addr()
	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG, e)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"address": s.listenAddr.String(),
	}).Info(constants.LogMsgServiceStarted)

	return nil
}

// Addr 바인딩된 리슨 주소를 반환합니다. 시작 전에는 nil입니다.
func (s *Service) Addr() net.Addr {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.listenAddr
}

// Errors HTTP 서버가 종료 요청 없이 중단된 경우 원인 에러를 전달하는 채널을 반환합니다.
func (s *Service) Errors() <-chan error {
	return s.errC
}

// runServiceLoop 서비스의 메인 실행 루프입니다.
// HTTP 서버 시작과 Shutdown 대기를 순차적으로 수행합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, e *echo.Echo) {
	defer serviceStopWG.Done()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	serverConfig := s.appConfig.Server

	httpConfig := HTTPServerConfig{
		Debug:          s.appConfig.Debug,
		AllowOrigins:   serverConfig.AllowOrigins,
		RequestTimeout: serverConfig.RequestTimeout,
		BodyLimit:      serverConfig.BodyLimit,
		Recorder:       s.collector,
	}
	if serverConfig.RateLimit.Enabled() {
		httpConfig.RateLimitPerSecond = serverConfig.RateLimit.RequestsPerSecond
		httpConfig.RateLimitBurst = serverConfig.RateLimit.Burst
	}
	if s.appConfig.Telemetry.Enabled() {
		httpConfig.TracingServiceName = s.appConfig.Telemetry.ServiceName
	}

	e := NewHTTPServer(httpConfig)

	systemHandler := system.NewHandler(s.boot, s.systemProvider, s.appConfig.Metrics.SystemInfoTimeout, s.collector)
	utilityHandler := utility.NewHandler()

	RegisterRoutes(e, systemHandler, utilityHandler)

	return e
}

// startHTTPServer 바인딩된 리스너로 HTTP 서버를 실행합니다.
// 서버가 종료되면 done 채널을 닫아 대기 중인 고루틴에 신호를 보냅니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"address": s.listenAddr.String(),
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	s.handleServerError(e.Start(s.listenAddr.String()))
}

// handleServerError HTTP 서버 실행 중 발생한 에러를 처리합니다.
//
// 에러 처리 방식:
//   - nil: 처리하지 않음
//   - http.ErrServerClosed: Info 레벨 로깅 (Graceful Shutdown)
//   - 그 외: Error 레벨 로깅 + Errors 채널로 통지
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"address": s.appConfig.Server.Address(),
		"error":   err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)

	select {
	case s.errC <- NewErrServeFailed(err):
	default:
	}
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
//
// 종료 처리 순서:
//  1. 종료 신호 대기 (정상 종료 또는 서버 조기 종료)
//  2. Echo 서버 Shutdown 호출 (새 연결 수락 중단, server.shutdown_timeout 동안 처리 중인 요청 대기)
//  3. 대기 시간 초과 시 남은 연결 강제 종료
//  4. HTTP 서버 완전 종료 대기 및 상태 정리
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 이미 종료되었으므로 Shutdown 호출 없이 상태만 정리
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.appConfig.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"timeout": s.appConfig.Server.ShutdownTimeout.String(),
			"error":   err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)

		_ = e.Close()
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
