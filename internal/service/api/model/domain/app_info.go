// Package domain API 서비스가 프로세스 수명 동안 공유하는 읽기 전용 도메인 모델을 정의합니다.
package domain

import (
	"time"

	"github.com/darkkaiser/learn-go/internal/pkg/version"
)

// AppInfo 애플리케이션 식별 정보입니다. 프로세스 시작 시 한 번 만들어지며 이후 변경되지 않습니다.
type AppInfo struct {
	Name        string `json:"name" example:"learn-go"`
	Version     string `json:"version" example:"1.0.0"`
	Description string `json:"description" example:"Go 언어 학습을 위한 최소한의 HTTP 마이크로서비스"`
	Environment string `json:"environment" example:"development"`

	// Timestamp 프로세스 시작 시각 (UTC, RFC3339)
	Timestamp string `json:"timestamp" example:"2025-01-01T09:00:00Z"`
}

// BootSnapshot 프로세스 시작 시점에 확정되는 정보입니다.
//
// main에서 한 번 생성하여 핸들러에 포인터로 전달하며, 어떤 핸들러도 값을 수정하지 않습니다.
// 가동 시간은 StartedAt의 단조 시계(monotonic clock) 값으로 계산합니다.
type BootSnapshot struct {
	App       AppInfo
	BuildInfo version.Info
	StartedAt time.Time

	Host string
	Port int
}

// NewBootSnapshot 현재 시각을 시작 시각으로 하는 BootSnapshot을 생성합니다.
func NewBootSnapshot(name, description, environment string, buildInfo version.Info, host string, port int) *BootSnapshot {
	startedAt := time.Now()

	return &BootSnapshot{
		App: AppInfo{
			Name:        name,
			Version:     buildInfo.Version,
			Description: description,
			Environment: environment,
			Timestamp:   startedAt.UTC().Format(time.RFC3339),
		},
		BuildInfo: buildInfo,
		StartedAt: startedAt,
		Host:      host,
		Port:      port,
	}
}
