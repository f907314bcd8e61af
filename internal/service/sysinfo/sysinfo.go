// Package sysinfo 호스트 시스템(메모리, CPU, 호스트명)과 Go 런타임 정보를 조회합니다.
//
// 시스템 정보 조회는 운영체제 호출을 수반하므로 지연될 수 있습니다.
// Collect는 조회 시간을 제한하며, 시간 초과나 실패 시 항상 얻을 수 있는 정적 정보만 담은
// 부분 스냅샷(Partial)을 반환하여 호출자가 실패하지 않도록 합니다.
package sysinfo

import (
	"context"
	"math"
	"os"
	"runtime"
	"time"
)

// Memory 시스템 메모리 사용량입니다. (단위: 바이트)
type Memory struct {
	Total       uint64  `json:"total"`
	Available   uint64  `json:"available"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"percent"`
}

// NewMemory 전체/가용/사용량으로 Memory를 생성하고 사용률(0-100)을 계산합니다.
// total이 0이면 사용률은 0입니다.
func NewMemory(total, available, used uint64) Memory {
	return Memory{
		Total:       total,
		Available:   available,
		Used:        used,
		UsedPercent: usedPercent(used, total),
	}
}

func usedPercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}

	p := float64(used) / float64(total) * 100
	p = math.Round(p*100) / 100

	return math.Min(p, 100)
}

// Snapshot 특정 시점의 시스템 정보입니다.
type Snapshot struct {
	OS            string
	Arch          string
	Hostname      string
	Platform      string
	KernelVersion string
	CPUCount      int

	// 호스트 부팅 이후 경과 시간 (단위: 초)
	BootUptime uint64

	Memory Memory

	// 시간 초과 또는 조회 실패로 정적 정보만 채워진 경우 true
	Partial bool
}

// Provider 시스템 정보를 조회하는 인터페이스입니다.
type Provider interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// Fallback 운영체제 조회 없이 얻을 수 있는 정보만으로 부분 스냅샷을 생성합니다.
func Fallback() Snapshot {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return Snapshot{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		Hostname: hostname,
		CPUCount: runtime.NumCPU(),
		Partial:  true,
	}
}

// Runtime Go 런타임 정보입니다.
type Runtime struct {
	GoVersion  string `json:"go_version"`
	Goroutines int    `json:"goroutines"`
	HeapAlloc  uint64 `json:"heap_alloc"`
	HeapSys    uint64 `json:"heap_sys"`
	NumGC      uint32 `json:"num_gc"`
}

// ReadRuntime 현재 Go 런타임 정보를 조회합니다.
func ReadRuntime() Runtime {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return Runtime{
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
		HeapAlloc:  ms.HeapAlloc,
		HeapSys:    ms.HeapSys,
		NumGC:      ms.NumGC,
	}
}

// Uptime start 이후 경과 시간을 초 단위로 반환합니다.
// time.Since는 단조 시계(monotonic clock)를 사용하므로 벽시계가 변경되어도 감소하지 않습니다.
func Uptime(start time.Time) float64 {
	return time.Since(start).Seconds()
}

// ProviderFunc 함수를 Provider로 사용할 수 있도록 하는 어댑터입니다.
type ProviderFunc func(ctx context.Context) (Snapshot, error)

// Snapshot f(ctx)를 호출합니다.
func (f ProviderFunc) Snapshot(ctx context.Context) (Snapshot, error) {
	return f(ctx)
}
