package sysinfo

import (
	"context"
	"time"

	apperrors "github.com/darkkaiser/learn-go/internal/pkg/errors"
	applog "github.com/darkkaiser/learn-go/pkg/log"
)

const component = "sysinfo"

// Collect timeout 이내에 Provider로부터 스냅샷을 조회합니다.
//
// 시간 초과, 조회 실패, 패닉이 발생하면 경고 로그를 남기고 Fallback 스냅샷을 반환합니다.
// 따라서 이 함수는 실패하지 않으며, 반환값의 Partial 필드로 부분 데이터 여부를 확인할 수 있습니다.
func Collect(ctx context.Context, p Provider, timeout time.Duration) Snapshot {
	snap, err := collect(ctx, p, timeout)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"timeout": timeout.String(),
			"error":   err,
		}).Warn("시스템 정보 조회에 실패하여 부분 데이터를 사용합니다")

		return Fallback()
	}

	return snap
}

type result struct {
	snap Snapshot
	err  error
}

func collect(ctx context.Context, p Provider, timeout time.Duration) (Snapshot, error) {
	if p == nil {
		return Snapshot{}, apperrors.New(apperrors.Internal, "시스템 정보 Provider가 설정되지 않았습니다")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// 버퍼 크기 1: 시간 초과로 수신자가 떠나도 조회 고루틴이 블록되지 않고 종료됩니다.
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: apperrors.Newf(apperrors.Internal, "시스템 정보 조회 중 패닉 발생: %v", r)}
			}
		}()

		snap, err := p.Snapshot(ctx)
		done <- result{snap: snap, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return Snapshot{}, apperrors.Wrap(r.err, apperrors.Unavailable, "시스템 정보 조회 실패")
		}
		return r.snap, nil

	case <-ctx.Done():
		return Snapshot{}, apperrors.Wrap(ctx.Err(), apperrors.Timeout, "시스템 정보 조회 시간 초과")
	}
}
