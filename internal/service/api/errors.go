package api

import (
	apperrors "github.com/darkkaiser/learn-go/internal/pkg/errors"
)

// NewErrListenFailed 리슨 주소에 바인딩하지 못했을 때 반환하는 에러를 생성합니다.
// 포트가 이미 사용 중이거나 권한이 없는 경우 등이며, 프로세스는 0이 아닌 종료 코드로 종료되어야 합니다.
func NewErrListenFailed(addr string, cause error) error {
	return apperrors.Wrapf(cause, apperrors.System, "HTTP 서버가 '%s' 주소에 바인딩하지 못했습니다", addr)
}

// NewErrServeFailed HTTP 서버가 예기치 않게 종료되었을 때 반환하는 에러를 생성합니다.
func NewErrServeFailed(cause error) error {
	return apperrors.Wrap(cause, apperrors.System, "HTTP 서버가 예기치 않게 종료되었습니다")
}
