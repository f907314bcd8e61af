package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer 로깅 시스템이 생성한 리소스(Hook, 로그 파일)를 한 번에 해제합니다.
//
// Hook을 먼저 닫아 새로운 로그 유입을 차단한 뒤 파일을 닫으며,
// 여러 번 호출해도 두 번째 이후의 호출은 아무 동작도 하지 않습니다.
type closer struct {
	hook  *hook
	files []io.Closer

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, f := range c.files {
		if s, ok := f.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := f.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
