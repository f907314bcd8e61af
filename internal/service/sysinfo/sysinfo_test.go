package sysinfo

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	applog "github.com/darkkaiser/learn-go/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== Test Helpers =====

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	logger := applog.StandardLogger()
	origOut, origFmt, origLevel := logger.Out, logger.Formatter, logger.Level

	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(origOut)
		applog.SetFormatter(origFmt)
		applog.SetLevel(origLevel)
	})

	return buf
}

func fixedSnapshot() Snapshot {
	return Snapshot{
		OS:       "linux",
		Arch:     "amd64",
		Hostname: "learn-go-7d9f",
		CPUCount: 4,
		Memory:   NewMemory(8<<30, 6<<30, 2<<30),
	}
}

// ===== Tests =====

func TestNewMemory(t *testing.T) {
	tests := []struct {
		name        string
		total, used uint64
		want        float64
	}{
		{name: "25%", total: 8 << 30, used: 2 << 30, want: 25},
		{name: "소수점 둘째 자리 반올림", total: 3, used: 1, want: 33.33},
		{name: "전체 메모리 0은 0%", total: 0, used: 100, want: 0},
		{name: "100% 초과 방지", total: 10, used: 20, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory(tt.total, 0, tt.used)
			assert.Equal(t, tt.want, m.UsedPercent)
			assert.GreaterOrEqual(t, m.UsedPercent, 0.0)
			assert.LessOrEqual(t, m.UsedPercent, 100.0)
		})
	}
}

func TestCollect(t *testing.T) {
	t.Run("성공: Provider 결과 반환", func(t *testing.T) {
		p := ProviderFunc(func(ctx context.Context) (Snapshot, error) { return fixedSnapshot(), nil })

		snap := Collect(context.Background(), p, time.Second)

		assert.False(t, snap.Partial)
		assert.Equal(t, "learn-go-7d9f", snap.Hostname)
		assert.Equal(t, 25.0, snap.Memory.UsedPercent)
	})

	t.Run("시간 초과: 부분 데이터 반환 및 경고 로그", func(t *testing.T) {
		buf := captureLogs(t)
		release := make(chan struct{})
		defer close(release)

		p := ProviderFunc(func(ctx context.Context) (Snapshot, error) {
			select {
			case <-release:
			case <-ctx.Done():
			}
			return Snapshot{}, ctx.Err()
		})

		start := time.Now()
		snap := Collect(context.Background(), p, 20*time.Millisecond)

		assert.Less(t, time.Since(start), time.Second, "시간 제한 안에 반환되어야 합니다")
		assert.True(t, snap.Partial)
		assert.Equal(t, runtime.GOOS, snap.OS)
		assert.Equal(t, runtime.NumCPU(), snap.CPUCount)
		assert.Zero(t, snap.Memory.Total)
		assert.Contains(t, buf.String(), "부분 데이터")
		assert.Contains(t, buf.String(), `"level":"warning"`)
	})

	t.Run("조회 실패: 부분 데이터 반환", func(t *testing.T) {
		captureLogs(t)
		p := ProviderFunc(func(ctx context.Context) (Snapshot, error) { return Snapshot{}, errors.New("permission denied") })

		snap := Collect(context.Background(), p, time.Second)

		assert.True(t, snap.Partial)
	})

	t.Run("패닉: 부분 데이터 반환", func(t *testing.T) {
		captureLogs(t)
		p := ProviderFunc(func(ctx context.Context) (Snapshot, error) { panic("boom") })

		snap := Collect(context.Background(), p, time.Second)

		assert.True(t, snap.Partial)
	})

	t.Run("nil Provider: 부분 데이터 반환", func(t *testing.T) {
		captureLogs(t)
		assert.True(t, Collect(context.Background(), nil, time.Second).Partial)
	})
}

func TestFallback(t *testing.T) {
	snap := Fallback()

	assert.True(t, snap.Partial)
	assert.Equal(t, runtime.GOOS, snap.OS)
	assert.Equal(t, runtime.GOARCH, snap.Arch)
	assert.Positive(t, snap.CPUCount)
	assert.NotEmpty(t, snap.Hostname)
}

func TestReadRuntime(t *testing.T) {
	rt := ReadRuntime()

	assert.Equal(t, runtime.Version(), rt.GoVersion)
	assert.Positive(t, rt.Goroutines)
	assert.Positive(t, rt.HeapAlloc)
}

func TestUptime_Monotonic(t *testing.T) {
	start := time.Now()

	first := Uptime(start)
	time.Sleep(5 * time.Millisecond)
	second := Uptime(start)

	assert.GreaterOrEqual(t, first, 0.0)
	assert.Greater(t, second, first)
}

func TestHostProvider(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snap, err := NewHostProvider().Snapshot(ctx)
	if err != nil {
		t.Skipf("이 환경에서는 시스템 메모리 정보를 조회할 수 없습니다: %v", err)
	}

	require.False(t, snap.Partial)
	assert.Positive(t, snap.Memory.Total)
	assert.Positive(t, snap.CPUCount)
	assert.NotEmpty(t, snap.Hostname)
	assert.LessOrEqual(t, snap.Memory.UsedPercent, 100.0)
}
