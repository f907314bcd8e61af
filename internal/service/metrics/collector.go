// Package metrics 애플리케이션 메트릭을 수집하고 Prometheus 텍스트 노출 형식으로 렌더링합니다.
//
// 수집 항목:
//   - http_requests_total{method,route,status}: 처리한 요청 수
//   - http_request_duration_seconds{method,route}: 요청 처리 시간 분포
//   - system_memory_*: 주기적으로 샘플링한 호스트 메모리 사용량
//   - app_build_info, app_uptime_seconds: 빌드 정보와 가동 시간
//   - go_*, process_*: Go 런타임 및 프로세스 메트릭
package metrics

import (
	"bytes"
	"context"
	"strconv"
	"time"

	apperrors "github.com/darkkaiser/learn-go/internal/pkg/errors"
	"github.com/darkkaiser/learn-go/internal/pkg/version"
	"github.com/darkkaiser/learn-go/internal/service/sysinfo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

// UnmatchedRoute 라우트 템플릿을 알 수 없는 요청(404 등)에 사용하는 route 레이블 값입니다.
// 임의의 요청 경로가 레이블로 유입되어 시계열이 무한히 늘어나는 것을 막습니다.
const UnmatchedRoute = "unmatched"

// ContentType Render 결과의 MIME 타입입니다.
var ContentType = string(expfmt.NewFormat(expfmt.TypeTextPlain))

// Options Collector 생성 옵션입니다.
type Options struct {
	BuildInfo version.Info
	StartedAt time.Time

	// Go 런타임/프로세스 수집기 등록 여부
	RuntimeCollectors bool
}

// Collector 요청 메트릭과 시스템 메트릭을 보관하는 수집기입니다.
// 모든 메서드는 여러 고루틴에서 동시에 호출해도 안전합니다.
type Collector struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	memTotal       prometheus.Gauge
	memAvailable   prometheus.Gauge
	memUsed        prometheus.Gauge
	memUsedPercent prometheus.Gauge
	cpuCount       prometheus.Gauge
	lastSample     prometheus.Gauge
}

// NewCollector 전용 Registry를 사용하는 Collector를 생성합니다.
// 전역 DefaultRegisterer를 사용하지 않으므로 테스트마다 독립된 인스턴스를 만들 수 있습니다.
func NewCollector(opts Options) *Collector {
	if opts.StartedAt.IsZero() {
		opts.StartedAt = time.Now()
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),

		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, partitioned by method, route and status code.",
		}, []string{"method", "route", "status"}),

		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, partitioned by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		memTotal:       newGauge("system_memory_total_bytes", "Total physical memory of the host in bytes."),
		memAvailable:   newGauge("system_memory_available_bytes", "Available physical memory of the host in bytes."),
		memUsed:        newGauge("system_memory_used_bytes", "Used physical memory of the host in bytes."),
		memUsedPercent: newGauge("system_memory_used_percent", "Used physical memory of the host in percent (0-100)."),
		cpuCount:       newGauge("system_cpu_count", "Number of logical CPUs of the host."),
		lastSample:     newGauge("system_last_sample_timestamp_seconds", "Unix time of the last successful system sample."),
	}

	startedAt := opts.StartedAt
	uptime := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "app_uptime_seconds",
		Help: "Seconds since the application started.",
	}, func() float64 { return sysinfo.Uptime(startedAt) })

	info := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "app_build_info",
		Help: "Build information of the application. The value is always 1.",
		ConstLabels: prometheus.Labels{
			"version":    opts.BuildInfo.Version,
			"commit":     opts.BuildInfo.Commit,
			"go_version": opts.BuildInfo.GoVersion,
		},
	})
	info.Set(1)

	c.registry.MustRegister(
		c.requests, c.duration,
		c.memTotal, c.memAvailable, c.memUsed, c.memUsedPercent, c.cpuCount, c.lastSample,
		uptime, info,
	)

	if opts.RuntimeCollectors {
		c.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return c
}

func newGauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
}

// Record 처리가 끝난 요청 하나를 기록합니다. route가 비어 있으면 UnmatchedRoute로 기록합니다.
func (c *Collector) Record(method, route string, status int, d time.Duration) {
	if route == "" {
		route = UnmatchedRoute
	}

	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveSystem 시스템 스냅샷으로 시스템 게이지를 갱신합니다.
// 부분 스냅샷은 메모리 값이 없으므로 CPU 수만 갱신하고 기존 메모리 값은 유지합니다.
func (c *Collector) ObserveSystem(snap sysinfo.Snapshot) {
	c.cpuCount.Set(float64(snap.CPUCount))

	if snap.Partial {
		return
	}

	c.memTotal.Set(float64(snap.Memory.Total))
	c.memAvailable.Set(float64(snap.Memory.Available))
	c.memUsed.Set(float64(snap.Memory.Used))
	c.memUsedPercent.Set(snap.Memory.UsedPercent)
	c.lastSample.SetToCurrentTime()
}

// SampleSystem 시스템 정보를 조회하여 시스템 게이지를 갱신하는 함수를 반환합니다. (스케줄러 작업용)
func (c *Collector) SampleSystem(p sysinfo.Provider, timeout time.Duration) func(ctx context.Context) {
	return func(ctx context.Context) {
		c.ObserveSystem(sysinfo.Collect(ctx, p, timeout))
	}
}

// Render 현재 수집된 모든 메트릭을 Prometheus 텍스트 노출 형식으로 반환합니다.
func (c *Collector) Render() (string, error) {
	mfs, err := c.registry.Gather()
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.Internal, "메트릭 수집에 실패했습니다")
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return "", apperrors.Wrap(err, apperrors.Internal, "메트릭 인코딩에 실패했습니다")
		}
	}

	return buf.String(), nil
}
