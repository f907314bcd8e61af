package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// componentKey 모든 로그에 공통으로 기록되는 컴포넌트 식별 필드의 키입니다.
const componentKey = "component"

// StandardLogger 전역 로거 인스턴스를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetOutput 전역 로거의 출력 대상을 변경합니다. 주로 테스트에서 로그를 버퍼로 캡처할 때 사용합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 전역 로거의 포맷터를 변경합니다.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// SetLevel 전역 로거의 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// GetLevel 전역 로거의 현재 로그 레벨을 반환합니다.
func GetLevel() Level {
	return logrus.GetLevel()
}

// WithFields 주어진 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithError error 필드를 포함한 로그 Entry를 반환합니다.
func WithError(err error) *Entry {
	return logrus.WithError(err)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
// fields에 component 키가 있더라도 component 인자의 값이 우선합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged[componentKey] = component

	return logrus.WithFields(merged)
}
