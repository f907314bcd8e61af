package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/darkkaiser/learn-go/internal/config"
	"github.com/darkkaiser/learn-go/internal/pkg/tracing"
	"github.com/darkkaiser/learn-go/internal/pkg/version"
	"github.com/darkkaiser/learn-go/internal/service/api"
	"github.com/darkkaiser/learn-go/internal/service/api/model/domain"
	"github.com/darkkaiser/learn-go/internal/service/contract"
	"github.com/darkkaiser/learn-go/internal/service/metrics"
	"github.com/darkkaiser/learn-go/internal/service/scheduler"
	"github.com/darkkaiser/learn-go/internal/service/sysinfo"
	applog "github.com/darkkaiser/learn-go/pkg/log"
)

// @title learn-go API
// @version 1.0.0
// @description Go 언어 학습을 위한 최소한의 HTTP 마이크로서비스입니다.
// @description
// @description 모든 JSON 응답은 {success, data, error, timestamp} 형식의 봉투로 감싸져 반환됩니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const (
	banner = `
  _                                                  
 | |     ___   __ _  _ __  _ __          __ _   ___  
 | |    / _ \ / _' || '__|| '_ \  _____ / _' | / _ \ 
 | |___|  __/| (_| || |   | | | ||_____| (_| || (_) |
 |_____|\___| \__,_||_|   |_| |_|       \__, | \___/ 
                                       |___/  %s
--------------------------------------------------------------------------------
`

	// componentMain main 패키지 로그의 컴포넌트 이름
	componentMain = "main"

	// jobNameSystemMetrics 시스템 메트릭 샘플링 작업 이름
	jobNameSystemMetrics = "system-metrics"

	// tracingShutdownTimeout 종료 시 남은 스팬을 내보내기 위해 기다리는 최대 시간
	tracingShutdownTimeout = 5 * time.Second
)

func main() {
	os.Exit(run())
}

// run 설정과 로그를 초기화한 뒤 서비스를 실행하고 프로세스 종료 코드를 반환합니다.
func run() int {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		return 1
	}

	// 2. 로그 시스템 초기화
	logOpts, err := newLogOptions(appConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 설정 오류: %v\n", err)
		return 1
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		return 1
	}
	defer appLogCloser.Close()

	// 3. 빌드 정보 설정 (APP_VERSION이 지정되면 빌드 버전 대신 사용)
	buildInfo := version.Get().WithVersion(appConfig.App.Version)
	version.Set(buildInfo)

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(componentMain, applog.Fields{
		"env":     appConfig.Environment,
		"address": appConfig.Server.Address(),
	}).WithFields(buildInfo.ToMap()).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(componentMain).Warn(warning)
	}

	// 4. 종료 신호 대기
	signalCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(signalCtx, appConfig, buildInfo)
}

// serve 추적을 초기화하고 서비스를 시작한 뒤, ctx가 취소되거나 HTTP 서버가 예기치 않게 종료될 때까지 대기합니다.
//
// 반환값은 프로세스 종료 코드입니다. (정상 종료: 0, 시작 실패 또는 서버 오류: 1)
func serve(ctx context.Context, appConfig *config.AppConfig, buildInfo version.Info) int {
	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Endpoint:       appConfig.Telemetry.OTLPEndpoint,
		ServiceName:    appConfig.Telemetry.ServiceName,
		ServiceVersion: buildInfo.Version,
		Environment:    appConfig.Environment,
		SampleRatio:    appConfig.Telemetry.SampleRatio,
	})
	if err != nil {
		applog.WithComponentAndFields(componentMain, applog.Fields{
			"error": err,
		}).Error("분산 추적 초기화 실패")
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), tracingShutdownTimeout)
		defer cancel()

		if err := shutdownTracing(shutdownCtx); err != nil {
			applog.WithComponentAndFields(componentMain, applog.Fields{
				"error": err,
			}).Warn("분산 추적 종료 중 오류 발생")
		}
	}()

	boot := domain.NewBootSnapshot(config.AppName, config.AppDescription, appConfig.Environment, buildInfo, appConfig.Server.Host, appConfig.Server.Port)
	systemProvider := sysinfo.NewHostProvider()
	collector := metrics.NewCollector(metrics.Options{
		BuildInfo:         buildInfo,
		StartedAt:         boot.StartedAt,
		RuntimeCollectors: true,
	})

	// 서비스를 생성한다.
	schedulerService := scheduler.NewService(scheduler.Job{
		Name:       jobNameSystemMetrics,
		Spec:       appConfig.Metrics.SystemSampleSpec,
		RunOnStart: true,
		Run:        collector.SampleSystem(systemProvider, appConfig.Metrics.SystemInfoTimeout),
	})
	apiService := api.NewService(appConfig, boot, systemProvider, collector)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []contract.Service{schedulerService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields(componentMain, applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			return 1
		}
	}

	applog.WithComponentAndFields(componentMain, applog.Fields{
		"address": apiService.Addr().String(),
	}).Info("서버 가동 완료")

	exitCode := 0
	select {
	case <-ctx.Done():
		applog.WithComponent(componentMain).Info("종료 신호를 수신하여 서버를 종료합니다")
	case err := <-apiService.Errors():
		applog.WithComponentAndFields(componentMain, applog.Fields{
			"error": err,
		}).Error("HTTP 서버 오류로 서버를 종료합니다")
		exitCode = 1
	}

	cancel()
	serviceStopWG.Wait()

	applog.WithComponent(componentMain).Info("서버 종료 완료")

	return exitCode
}

// newLogOptions 설정에 맞는 로그 옵션을 생성합니다.
// 운영 환경이 아니거나 디버그 모드이면 개발용 옵션을 기본으로 하고, log.level/log.format 설정으로 덮어씁니다.
func newLogOptions(appConfig *config.AppConfig) (applog.Options, error) {
	var opts applog.Options
	if appConfig.Debug || !appConfig.IsProduction() {
		opts = applog.NewDevelopmentOptions(config.AppName, appConfig.Log.Dir)
	} else {
		opts = applog.NewProductionOptions(config.AppName, appConfig.Log.Dir)
	}
	opts.CallerPathPrefix = "github.com/darkkaiser/learn-go"

	if appConfig.Log.Level != "" {
		level, err := applog.ParseLevel(appConfig.Log.Level)
		if err != nil {
			return applog.Options{}, err
		}
		opts.Level = level
	}

	if appConfig.Log.Format != "" {
		opts.Format = applog.Format(appConfig.Log.Format)
	}

	return opts, nil
}
