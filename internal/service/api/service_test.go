package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/learn-go/internal/pkg/errors"
	"github.com/darkkaiser/learn-go/internal/service/api/constants"
	"github.com/darkkaiser/learn-go/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== Test Helpers =====

type runningService struct {
	svc    *Service
	cancel context.CancelFunc
	wg     *sync.WaitGroup
	base   string
	client *http.Client
}

func (r *runningService) stop(t *testing.T) {
	t.Helper()

	r.cancel()
	waitGroupDone(t, r.wg, 10*time.Second)
}

func waitGroupDone(t *testing.T, wg *sync.WaitGroup, timeout time.Duration) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal("서비스가 제한 시간 내에 종료되지 않았습니다")
	}
}

func startService(t *testing.T, svc *Service) *runningService {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, svc.Start(ctx, wg))
	require.NotNil(t, svc.Addr())

	r := &runningService{
		svc:    svc,
		cancel: cancel,
		wg:     wg,
		base:   "http://" + svc.Addr().String(),
		client: testutil.NewHTTPClient(5 * time.Second),
	}
	require.NoError(t, testutil.WaitForServer(svc.Addr().String(), 2*time.Second))

	return r
}

func (r *runningService) do(t *testing.T, method, path, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, r.base+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(b)
}

// ===== Tests =====

func TestNewService(t *testing.T) {
	cfg := newTestConfig(0)
	boot := newTestBoot()
	p := fixedProvider()
	c := newTestCollector()

	assert.NotNil(t, NewService(cfg, boot, p, c))
	assert.PanicsWithValue(t, constants.PanicMsgAppConfigRequired, func() { NewService(nil, boot, p, c) })
	assert.PanicsWithValue(t, constants.PanicMsgBootSnapshotRequired, func() { NewService(cfg, nil, p, c) })
	assert.PanicsWithValue(t, constants.PanicMsgSystemProviderRequired, func() { NewService(cfg, boot, nil, c) })
	assert.PanicsWithValue(t, constants.PanicMsgMetricsCollectorRequired, func() { NewService(cfg, boot, p, nil) })
}

func TestService_ConcreteScenario(t *testing.T) {
	r := startService(t, NewService(newTestConfig(0), newTestBoot(), fixedProvider(), newTestCollector()))
	defer r.stop(t)

	t.Run("GET /ping", func(t *testing.T) {
		resp, body := r.do(t, http.MethodGet, "/ping", "")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "pong", body)
		assert.Equal(t, constants.XFrameOptionsDeny, resp.Header.Get("X-Frame-Options"))
	})

	t.Run("POST /echo 유효한 JSON", func(t *testing.T) {
		resp, body := r.do(t, http.MethodPost, "/echo", `{"message":"test"}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Regexp(t, regexp.MustCompile(`^\{"success":true,"data":\{"message":"test"\},"error":null,"timestamp":"\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z"\}\n?$`), body)

		var env struct {
			Timestamp string `json:"timestamp"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &env))
		_, err := time.Parse(time.RFC3339, env.Timestamp)
		assert.NoError(t, err)
	})

	t.Run("POST /echo 잘못된 본문", func(t *testing.T) {
		resp, body := r.do(t, http.MethodPost, "/echo", `not-json`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var env map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &env))
		assert.Equal(t, false, env["success"])
		assert.NotEmpty(t, env["error"])
	})

	t.Run("GET /healthz", func(t *testing.T) {
		resp, body := r.do(t, http.MethodGet, "/healthz", "")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `"status":"healthy"`)
	})

	t.Run("GET /metrics", func(t *testing.T) {
		resp, body := r.do(t, http.MethodGet, "/metrics", "")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain"))
		assert.Equal(t, 1.0, counterValue(t, body, `http_requests_total{method="GET",route="/ping",status="200"}`))
		assert.Equal(t, 1.0, counterValue(t, body, `http_requests_total{method="POST",route="/echo",status="400"}`))
	})
}

func TestService_Start(t *testing.T) {
	t.Run("실패: 이미 사용 중인 포트", func(t *testing.T) {
		port := testutil.OccupyPort(t)
		svc := NewService(newTestConfig(port), newTestBoot(), fixedProvider(), newTestCollector())

		wg := &sync.WaitGroup{}
		wg.Add(1)
		err := svc.Start(context.Background(), wg)

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
		assert.Contains(t, err.Error(), fmt.Sprintf("127.0.0.1:%d", port))
		assert.Nil(t, svc.Addr())
		waitGroupDone(t, wg, time.Second)
	})

	t.Run("성공: 중복 시작은 무시", func(t *testing.T) {
		svc := NewService(newTestConfig(0), newTestBoot(), fixedProvider(), newTestCollector())
		r := startService(t, svc)
		defer r.stop(t)

		addr := svc.Addr().String()

		r.wg.Add(1)
		require.NoError(t, svc.Start(context.Background(), r.wg))
		assert.Equal(t, addr, svc.Addr().String(), "이미 실행 중이면 새로 바인딩하지 않아야 합니다")
	})
}

func TestService_GracefulShutdown(t *testing.T) {
	t.Run("성공: 처리 중인 요청 완료 후 종료", func(t *testing.T) {
		// /healthz가 300ms 동안 시스템 정보를 조회하도록 하여 처리 중인 요청을 만듭니다.
		cfg := newTestConfig(0)
		cfg.Metrics.SystemInfoTimeout = 2 * time.Second
		svc := NewService(cfg, newTestBoot(), delayedProvider(300*time.Millisecond), newTestCollector())
		r := startService(t, svc)
		addr := svc.Addr().String()

		type result struct {
			status int
			err    error
		}
		resultC := make(chan result, 1)
		go func() {
			resp, err := r.client.Get(r.base + "/healthz")
			if err != nil {
				resultC <- result{err: err}
				return
			}
			defer resp.Body.Close()
			_, _ = io.Copy(io.Discard, resp.Body)
			resultC <- result{status: resp.StatusCode}
		}()

		time.Sleep(100 * time.Millisecond)
		r.stop(t)

		res := <-resultC
		require.NoError(t, res.err, "처리 중인 요청은 완료되어야 합니다")
		assert.Equal(t, http.StatusOK, res.status)

		_, err := r.client.Get("http://" + addr + "/ping")
		assert.Error(t, err, "종료 후에는 새 연결을 받지 않아야 합니다")
	})

	t.Run("성공: 대기 시간 초과 시 강제 종료", func(t *testing.T) {
		cfg := newTestConfig(0)
		cfg.Server.ShutdownTimeout = 100 * time.Millisecond
		cfg.Metrics.SystemInfoTimeout = 5 * time.Second
		svc := NewService(cfg, newTestBoot(), delayedProvider(3*time.Second), newTestCollector())
		r := startService(t, svc)

		errC := make(chan error, 1)
		go func() {
			resp, err := r.client.Get(r.base + "/healthz")
			if err == nil {
				resp.Body.Close()
			}
			errC <- err
		}()

		time.Sleep(100 * time.Millisecond)

		start := time.Now()
		r.stop(t)
		assert.Less(t, time.Since(start), 2*time.Second, "종료는 대기 시간 제한을 지켜야 합니다")

		assert.Error(t, <-errC, "강제 종료된 연결의 요청은 실패해야 합니다")
	})
}

func TestService_HandleServerError(t *testing.T) {
	svc := NewService(newTestConfig(0), newTestBoot(), fixedProvider(), newTestCollector())

	svc.handleServerError(nil)
	svc.handleServerError(http.ErrServerClosed)

	select {
	case err := <-svc.Errors():
		t.Fatalf("정상 종료는 에러로 통지되지 않아야 합니다: %v", err)
	default:
	}

	cause := errors.New("accept failed")
	svc.handleServerError(cause)
	svc.handleServerError(errors.New("second failure"))

	err := <-svc.Errors()
	assert.ErrorIs(t, err, cause)
	assert.True(t, apperrors.Is(err, apperrors.System))
}
