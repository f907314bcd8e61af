package sysinfo

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// hostProvider gopsutil을 사용하여 실제 호스트의 시스템 정보를 조회하는 Provider 구현체입니다.
type hostProvider struct{}

// NewHostProvider 호스트 시스템 정보 Provider를 생성합니다.
func NewHostProvider() Provider {
	return hostProvider{}
}

// Snapshot 메모리 조회는 필수이며, 호스트/CPU 정보 조회 실패 시에는 런타임 정보로 대체합니다.
func (hostProvider) Snapshot(ctx context.Context) (Snapshot, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Fallback()
	snap.Partial = false
	snap.Memory = NewMemory(vm.Total, vm.Available, vm.Used)

	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		snap.CPUCount = n
	}

	if hi, err := host.InfoWithContext(ctx); err == nil {
		if hi.Hostname != "" {
			snap.Hostname = hi.Hostname
		}
		if hi.OS != "" {
			snap.OS = hi.OS
		}
		snap.Platform = hi.Platform
		snap.KernelVersion = hi.KernelVersion
		snap.BootUptime = hi.Uptime
	}

	if snap.OS == "" {
		snap.OS = runtime.GOOS
	}

	return snap, nil
}
