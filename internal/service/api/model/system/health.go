package system

import "github.com/darkkaiser/learn-go/internal/service/sysinfo"

// HealthData 헬스체크 응답 데이터
type HealthData struct {
	// 서비스 상태 (프로세스가 응답하면 항상 healthy)
	Status string `json:"status" example:"healthy"`
	// 프로세스 가동 시간(초)
	Uptime float64 `json:"uptime" example:"3600.25"`
	// 호스트 메모리 사용량 (조회 실패 시 0)
	Memory sysinfo.Memory `json:"memory"`
	// 호스트 기본 정보
	System HealthSystem `json:"system"`
}

// HealthSystem 헬스체크 응답의 호스트 정보
type HealthSystem struct {
	OS       string `json:"os" example:"linux"`
	Arch     string `json:"arch" example:"amd64"`
	CPUCount int    `json:"cpu_count" example:"4"`
	Hostname string `json:"hostname" example:"learn-go-7d9f"`
}
