package system

import (
	"github.com/darkkaiser/learn-go/internal/service/api/model/domain"
	"github.com/darkkaiser/learn-go/internal/service/sysinfo"
)

// InfoData 애플리케이션 및 실행 환경 정보 응답 데이터
type InfoData struct {
	Application domain.AppInfo `json:"application"`
	System      InfoSystem     `json:"system"`
	Runtime     InfoRuntime    `json:"runtime"`
	Environment InfoEnv        `json:"environment"`
}

// InfoSystem 호스트 정보
type InfoSystem struct {
	OS       string `json:"os" example:"linux"`
	Arch     string `json:"arch" example:"amd64"`
	Hostname string `json:"hostname" example:"learn-go-7d9f"`
	CPUCount int    `json:"cpu_count" example:"4"`

	// 배포판 이름과 커널 버전 (조회 시간 초과 시 빈 값)
	Platform      string `json:"platform" example:"ubuntu"`
	KernelVersion string `json:"kernel_version" example:"6.8.0-45-generic"`

	// 호스트 부팅 이후 경과 시간(초)
	Uptime uint64         `json:"uptime" example:"86400"`
	Memory sysinfo.Memory `json:"memory"`
}

// InfoRuntime Go 런타임 정보
type InfoRuntime struct {
	GoVersion  string `json:"go_version" example:"go1.24.0"`
	Goroutines int    `json:"goroutines" example:"12"`
	// 힙 할당량 / OS로부터 확보한 힙 크기(바이트)
	HeapAlloc uint64 `json:"heap_alloc" example:"4194304"`
	HeapSys   uint64 `json:"heap_sys" example:"8388608"`
	NumGC     uint32 `json:"num_gc" example:"7"`
}

// InfoEnv 서버 실행 설정
type InfoEnv struct {
	GoVersion string `json:"go_version" example:"go1.24.0"`
	Port      int    `json:"port" example:"8080"`
	Host      string `json:"host" example:"0.0.0.0"`
}
