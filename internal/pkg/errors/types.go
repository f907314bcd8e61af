package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

const (
	// Unknown 분류할 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그, 예상하지 못한 상태 등)
	Internal

	// System 시스템 또는 인프라 오류 (포트 바인딩 실패, 파일 I/O 등)
	System

	// InvalidInput 잘못된 입력값 (요청 본문 형식 오류, 설정값 검증 실패 등)
	InvalidInput

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 서비스 일시적 사용 불가 (종료 중, 과부하 등)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:      "Unknown",
	Internal:     "Internal",
	System:       "System",
	InvalidInput: "InvalidInput",
	NotFound:     "NotFound",
	Timeout:      "Timeout",
	Unavailable:  "Unavailable",
}

// String ErrorType의 이름을 반환합니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
