package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// channel 하나의 출력 대상과 그 대상이 수신할 레벨 범위를 묶은 라우팅 단위입니다.
type channel struct {
	name   string
	writer io.Writer
	accept func(Level) bool

	// 쓰기 실패를 호출자에게 에러로 전파할지 여부 (콘솔은 전파하지 않음)
	propagate bool
}

// hook 단일 로그 이벤트를 레벨에 따라 여러 채널(console, critical, verbose, main)로 분배합니다.
//
// 라우팅 규칙:
//   - console: 모든 레벨
//   - critical: ERROR 이상
//   - verbose: DEBUG 이하
//   - main: INFO 이상 (DEBUG/TRACE는 기록하지 않음)
type hook struct {
	channels  []channel
	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func newHook(formatter Formatter, console, main, critical, verbose io.Writer) *hook {
	h := &hook{formatter: formatter}

	h.add("console", console, func(Level) bool { return true }, false)
	h.add("critical", critical, func(l Level) bool { return l <= ErrorLevel }, true)
	h.add("verbose", verbose, func(l Level) bool { return l >= DebugLevel }, true)
	h.add("main", main, func(l Level) bool { return l <= InfoLevel }, true)

	return h
}

func (h *hook) add(name string, w io.Writer, accept func(Level) bool, propagate bool) {
	if w == nil {
		return
	}
	h.channels = append(h.channels, channel{name: name, writer: w, accept: accept, propagate: propagate})
}

// Levels 이 Hook이 수신할 로그 레벨의 집합을 반환합니다.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 로그를 한 번만 포맷팅한 후 수신 대상인 모든 채널에 기록합니다.
// 일부 채널의 쓰기가 실패해도 나머지 채널에는 계속 기록하며, 첫 번째 에러만 반환합니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	var firstErr error
	for _, ch := range h.channels {
		if !ch.accept(entry.Level) {
			continue
		}

		if _, err := ch.writer.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] %s 로그 쓰기 실패: %v\n", ch.name, err)

			if ch.propagate && firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// Close 이후의 모든 로그 기록 요청을 무시하도록 Hook을 종료 상태로 전환합니다.
// 진행 중인 Fire 호출이 모두 끝날 때까지 대기합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}
