package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/darkkaiser/learn-go/internal/config"
	"github.com/darkkaiser/learn-go/internal/pkg/version"
	"github.com/darkkaiser/learn-go/internal/testutil"
	applog "github.com/darkkaiser/learn-go/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== Test Helpers =====

func newTestConfig(port int) *config.AppConfig {
	return &config.AppConfig{
		Environment: config.EnvDevelopment,
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            port,
			ShutdownTimeout: 5 * time.Second,
			RequestTimeout:  5 * time.Second,
			BodyLimit:       config.DefaultBodyLimit,
			AllowOrigins:    []string{"*"},
		},
		Telemetry: config.TelemetryConfig{
			ServiceName: config.AppName,
			SampleRatio: 1.0,
		},
		Metrics: config.MetricsConfig{
			SystemSampleSpec:  config.DefaultSystemSampleSpec,
			SystemInfoTimeout: 200 * time.Millisecond,
		},
	}
}

func testBuildInfo() version.Info {
	return version.Info{Version: "1.2.3", GoVersion: "go1.24.0"}
}

func freePort(t *testing.T) int {
	t.Helper()
	port, err := testutil.GetFreePort()
	require.NoError(t, err)
	return port
}

// ===== Tests =====

func TestMain(m *testing.M) {
	applog.SetLevel(applog.PanicLevel)
	os.Exit(m.Run())
}

func TestServe(t *testing.T) {
	t.Run("성공: 종료 신호를 받으면 0을 반환", func(t *testing.T) {
		port := freePort(t)
		ctx, cancel := context.WithCancel(context.Background())

		exitC := make(chan int, 1)
		go func() { exitC <- serve(ctx, newTestConfig(port), testBuildInfo()) }()

		addr := fmt.Sprintf("127.0.0.1:%d", port)
		require.NoError(t, testutil.WaitForServer(addr, 5*time.Second))

		resp, err := testutil.NewHTTPClient(2 * time.Second).Get("http://" + addr + "/ping")
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "pong", string(body))

		cancel()

		select {
		case code := <-exitC:
			assert.Equal(t, 0, code)
		case <-time.After(10 * time.Second):
			t.Fatal("서버가 제한 시간 내에 종료되지 않았습니다")
		}
	})

	t.Run("성공: 이미 취소된 컨텍스트", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Equal(t, 0, serve(ctx, newTestConfig(freePort(t)), testBuildInfo()))
	})

	t.Run("실패: 포트 바인딩 실패 시 0이 아닌 값 반환", func(t *testing.T) {
		port := testutil.OccupyPort(t)

		assert.Equal(t, 1, serve(context.Background(), newTestConfig(port), testBuildInfo()))
	})

	t.Run("실패: 잘못된 OTLP 주소", func(t *testing.T) {
		cfg := newTestConfig(freePort(t))
		cfg.Telemetry.OTLPEndpoint = "://bad"

		assert.Equal(t, 1, serve(context.Background(), cfg, testBuildInfo()))
	})
}

func TestNewLogOptions(t *testing.T) {
	t.Run("성공: 개발 환경은 개발용 옵션", func(t *testing.T) {
		opts, err := newLogOptions(newTestConfig(8080))
		require.NoError(t, err)
		assert.Equal(t, applog.TraceLevel, opts.Level)
		assert.Equal(t, applog.FormatText, opts.Format)
	})

	t.Run("성공: 운영 환경은 운영용 옵션", func(t *testing.T) {
		cfg := newTestConfig(8080)
		cfg.Environment = config.EnvProduction

		opts, err := newLogOptions(cfg)
		require.NoError(t, err)
		assert.Equal(t, applog.InfoLevel, opts.Level)
		assert.Equal(t, applog.FormatJSON, opts.Format)
	})

	t.Run("성공: 설정값으로 덮어쓰기", func(t *testing.T) {
		cfg := newTestConfig(8080)
		cfg.Log.Level = "warn"
		cfg.Log.Format = "json"

		opts, err := newLogOptions(cfg)
		require.NoError(t, err)
		assert.Equal(t, applog.WarnLevel, opts.Level)
		assert.Equal(t, applog.FormatJSON, opts.Format)
	})

	t.Run("실패: 잘못된 로그 레벨", func(t *testing.T) {
		cfg := newTestConfig(8080)
		cfg.Log.Level = "verbose"

		_, err := newLogOptions(cfg)
		assert.Error(t, err)
	})
}
