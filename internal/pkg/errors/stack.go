package errors

import (
	"path/filepath"
	"runtime"
)

// defaultCallerSkip runtime.Callers, captureStack, 공개 생성 함수(New/Wrap 등) 3단계를 건너뛰어
// 호출자의 위치가 첫 번째 프레임이 되도록 합니다.
const defaultCallerSkip = 3

// maxStackFrames 수집할 최대 스택 깊이
const maxStackFrames = 5

// StackFrame 단일 호출 스택 프레임 정보입니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

func captureStack(skip int) []StackFrame {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	frames := make([]StackFrame, 0, n)
	it := runtime.CallersFrames(pc[:n])
	for {
		frame, more := it.Next()
		frames = append(frames, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}

	return frames
}
