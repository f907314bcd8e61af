package log

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

// =============================================================================
// Test Helpers
// =============================================================================

// resetForTest Setup()을 다시 실행할 수 있도록 패키지 전역 상태와 logrus 전역 설정을 초기화합니다.
func resetForTest(t *testing.T) {
	t.Helper()

	if globalCloser != nil {
		_ = globalCloser.Close()
	}

	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil
	consoleOutput = os.Stdout

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})

	t.Cleanup(func() {
		if globalCloser != nil {
			_ = globalCloser.Close()
		}
		setupOnce = sync.Once{}
		globalCloser = nil
		globalSetupErr = nil
		consoleOutput = os.Stdout
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
		logrus.SetOutput(os.Stdout)
		logrus.SetFormatter(&logrus.TextFormatter{})
	})
}

// safeBuffer 여러 고루틴에서 동시에 기록해도 안전한 버퍼입니다.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// failWriter 항상 에러를 반환하는 Writer입니다.
type failWriter struct {
	err error
}

func (w *failWriter) Write(_ []byte) (int, error) {
	return 0, w.err
}

var _ io.Writer = (*failWriter)(nil)
