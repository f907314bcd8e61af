package constants

// 헬스체크 상태
const (
	// HealthStatusHealthy 프로세스가 요청에 응답할 수 있으면 항상 이 값을 반환합니다. (의존성 검사 없음)
	HealthStatusHealthy = "healthy"
)
