package metrics

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/learn-go/internal/pkg/version"
	"github.com/darkkaiser/learn-go/internal/service/sysinfo"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== Test Helpers =====

func newTestCollector() *Collector {
	return NewCollector(Options{
		BuildInfo: version.Info{Version: "1.2.3", Commit: "abc1234", GoVersion: "go1.24.0"},
		StartedAt: time.Now().Add(-time.Minute),
	})
}

// ===== Tests =====

func TestCollector_Record(t *testing.T) {
	c := newTestCollector()

	c.Record(http.MethodGet, "/ping", http.StatusOK, 10*time.Millisecond)
	c.Record(http.MethodGet, "/ping", http.StatusOK, 20*time.Millisecond)
	c.Record(http.MethodPost, "/echo", http.StatusBadRequest, time.Millisecond)
	c.Record(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", "/ping", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("POST", "/echo", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", UnmatchedRoute, "404")), "빈 라우트는 unmatched로 기록되어야 합니다")
	assert.Equal(t, 3, testutil.CollectAndCount(c.duration, "http_request_duration_seconds"))
}

func TestCollector_Render(t *testing.T) {
	c := newTestCollector()
	c.Record(http.MethodGet, "/healthz", http.StatusOK, 5*time.Millisecond)

	out, err := c.Render()
	require.NoError(t, err)

	assert.Contains(t, out, "# HELP http_requests_total")
	assert.Contains(t, out, "# TYPE http_requests_total counter")
	assert.Contains(t, out, `http_requests_total{method="GET",route="/healthz",status="200"} 1`)
	assert.Contains(t, out, "# TYPE http_request_duration_seconds histogram")
	assert.Contains(t, out, `app_build_info{commit="abc1234",go_version="go1.24.0",version="1.2.3"} 1`)
	assert.Contains(t, out, "app_uptime_seconds")
	assert.NotContains(t, out, "go_goroutines", "런타임 수집기는 옵션으로만 등록되어야 합니다")

	t.Run("런타임 수집기 포함", func(t *testing.T) {
		c := NewCollector(Options{RuntimeCollectors: true})

		out, err := c.Render()
		require.NoError(t, err)
		assert.Contains(t, out, "go_goroutines")
	})
}

func TestCollector_RecordIncrementsRender(t *testing.T) {
	c := newTestCollector()

	count := func() float64 {
		return testutil.ToFloat64(c.requests.WithLabelValues("GET", "/metrics", "200"))
	}

	before := count()
	c.Record(http.MethodGet, "/metrics", http.StatusOK, time.Millisecond)
	assert.Equal(t, before+1, count())
}

func TestCollector_Concurrent(t *testing.T) {
	c := newTestCollector()

	const workers, perWorker = 16, 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				c.Record(http.MethodGet, "/ping", http.StatusOK, time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_, err := c.Render()
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, float64(workers*perWorker), testutil.ToFloat64(c.requests.WithLabelValues("GET", "/ping", "200")))
}

func TestCollector_ObserveSystem(t *testing.T) {
	c := newTestCollector()

	c.ObserveSystem(sysinfo.Snapshot{CPUCount: 8, Memory: sysinfo.NewMemory(1000, 600, 400)})

	assert.Equal(t, 8.0, testutil.ToFloat64(c.cpuCount))
	assert.Equal(t, 1000.0, testutil.ToFloat64(c.memTotal))
	assert.Equal(t, 400.0, testutil.ToFloat64(c.memUsed))
	assert.Equal(t, 40.0, testutil.ToFloat64(c.memUsedPercent))
	assert.Greater(t, testutil.ToFloat64(c.lastSample), 0.0)

	t.Run("부분 스냅샷은 메모리 값을 유지", func(t *testing.T) {
		c.ObserveSystem(sysinfo.Snapshot{CPUCount: 4, Partial: true})

		assert.Equal(t, 4.0, testutil.ToFloat64(c.cpuCount))
		assert.Equal(t, 1000.0, testutil.ToFloat64(c.memTotal))
	})
}

func TestCollector_SampleSystem(t *testing.T) {
	c := newTestCollector()

	t.Run("성공", func(t *testing.T) {
		p := sysinfo.ProviderFunc(func(ctx context.Context) (sysinfo.Snapshot, error) {
			return sysinfo.Snapshot{CPUCount: 2, Memory: sysinfo.NewMemory(200, 150, 50)}, nil
		})

		c.SampleSystem(p, time.Second)(context.Background())

		assert.Equal(t, 200.0, testutil.ToFloat64(c.memTotal))
		assert.Equal(t, 25.0, testutil.ToFloat64(c.memUsedPercent))
	})

	t.Run("실패: 조회 실패 시 기존 메모리 값 유지", func(t *testing.T) {
		p := sysinfo.ProviderFunc(func(ctx context.Context) (sysinfo.Snapshot, error) {
			return sysinfo.Snapshot{}, errors.New("boom")
		})

		c.SampleSystem(p, time.Second)(context.Background())

		assert.Equal(t, 200.0, testutil.ToFloat64(c.memTotal))
	})
}

func TestContentType(t *testing.T) {
	assert.True(t, strings.HasPrefix(ContentType, "text/plain; version=0.0.4"), ContentType)
}
