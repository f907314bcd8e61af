package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// 생성되는 로그 파일의 기본 확장자
	fileExt = "log"

	// 기본 로그 로테이션 정책
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	// Setup()이 프로세스 생명주기 동안 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// 최초 초기화 결과를 보관하여, Setup 재호출 시 동일한 결과를 반환합니다.
	globalCloser   io.Closer
	globalSetupErr error

	// 콘솔 출력 대상 (테스트에서 교체)
	consoleOutput io.Writer = os.Stdout
)

// Setup 전역 로깅 시스템을 초기화합니다.
//
// 주의:
//   - main 함수 도입부에서 한 번 호출하는 것을 권장합니다.
//   - 반환된 Closer는 defer를 통해 반드시 닫아야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setupInternal(opts)
	})

	return globalCloser, globalSetupErr
}

func setupInternal(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 모든 출력은 Hook이 담당하므로 기본 출력은 비활성화합니다.
	logrus.SetFormatter(&silentFormatter{})
	logrus.SetOutput(io.Discard)

	var console io.Writer
	if opts.EnableConsoleLog {
		console = consoleOutput
	}

	var mainFile, criticalFile, verboseFile *lumberjack.Logger
	var files []io.Closer

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
		}

		mainFile = newRotatingFile(opts, "")
		files = append(files, mainFile)

		if opts.EnableCriticalLog {
			criticalFile = newRotatingFile(opts, "critical")
			files = append(files, criticalFile)
		}
		if opts.EnableVerboseLog {
			verboseFile = newRotatingFile(opts, "verbose")
			files = append(files, verboseFile)
		}
	}

	h := newHook(newFormatter(opts), console, writerOrNil(mainFile), writerOrNil(criticalFile), writerOrNil(verboseFile))
	logrus.AddHook(h)

	c := &closer{hook: h, files: files}

	// Fatal 로그로 프로세스가 종료되기 직전에 버퍼를 디스크에 기록합니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// newRotatingFile 용량 기반 로테이션이 적용된 로그 파일을 생성합니다. (파일은 첫 쓰기 시점에 생성됨)
func newRotatingFile(opts Options, suffix string) *lumberjack.Logger {
	name := opts.Name
	if suffix != "" {
		name += "." + suffix
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, name+"."+fileExt),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     opts.MaxAge,
		LocalTime:  true,
	}
}

// writerOrNil nil 포인터가 non-nil 인터페이스로 변환되는 것을 막습니다.
func writerOrNil(l *lumberjack.Logger) io.Writer {
	if l == nil {
		return nil
	}
	return l
}
