package scheduler

import (
	"fmt"

	apperrors "github.com/darkkaiser/learn-go/internal/pkg/errors"
)

// ErrNoJobs 등록할 작업이 하나도 없을 때 반환하는 에러입니다.
var ErrNoJobs = apperrors.New(apperrors.Internal, "등록할 스케줄 작업이 없습니다")

// NewErrInvalidJob 작업 정의가 올바르지 않아 스케줄 등록에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrInvalidJob(name, spec string, cause error) error {
	return apperrors.Wrap(cause, apperrors.InvalidInput, fmt.Sprintf("스케줄 등록 실패: 작업 정의가 올바르지 않습니다 (Job=%s, Spec='%s')", name, spec))
}
