// Package response 모든 JSON 응답이 공유하는 표준 응답 봉투(Envelope)를 정의합니다.
package response

import "time"

// now 테스트에서 시각을 고정할 수 있도록 변수로 선언합니다.
var now = time.Now

// Envelope API 표준 응답 형식입니다.
//
// data와 error 중 정확히 하나만 값을 가지며, 값이 없는 쪽도 항상 null로 직렬화됩니다.
type Envelope[T any] struct {
	// Success 요청 처리 성공 여부
	Success bool `json:"success" example:"true"`

	// Data 성공 시 응답 데이터 (실패 시 null)
	Data *T `json:"data"`

	// Error 실패 시 에러 메시지 (성공 시 null)
	Error *string `json:"error"`

	// Timestamp 응답 생성 시각 (UTC, RFC3339)
	Timestamp string `json:"timestamp" example:"2025-01-01T09:00:00Z"`
}

// Success 성공 응답을 생성합니다.
func Success[T any](data T) Envelope[T] {
	return Envelope[T]{
		Success:   true,
		Data:      &data,
		Timestamp: timestamp(),
	}
}

// Failure 실패 응답을 생성합니다.
func Failure(message string) Envelope[any] {
	return Envelope[any]{
		Success:   false,
		Error:     &message,
		Timestamp: timestamp(),
	}
}

func timestamp() string {
	return now().UTC().Format(time.RFC3339)
}
