package constants

// 시스템 시작/구동 시 발생할 수 있는 크리티컬한 패닉 메시지 상수입니다.
const (
	// PanicMsgAppConfigRequired 패닉 메시지: AppConfig 필수
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"

	// PanicMsgBootSnapshotRequired 패닉 메시지: BootSnapshot 필수
	PanicMsgBootSnapshotRequired = "BootSnapshot은 필수입니다"

	// PanicMsgSystemProviderRequired 패닉 메시지: 시스템 정보 Provider 필수
	PanicMsgSystemProviderRequired = "시스템 정보 Provider는 필수입니다"

	// PanicMsgMetricsCollectorRequired 패닉 메시지: 메트릭 수집기 필수
	PanicMsgMetricsCollectorRequired = "메트릭 수집기는 필수입니다"

	// PanicMsgSystemInfoTimeoutInvalid 패닉 메시지: 시스템 정보 조회 타임아웃 설정 오류
	PanicMsgSystemInfoTimeoutInvalid = "시스템 정보 조회 타임아웃은 양수여야 합니다 (현재값: %s)"
)
