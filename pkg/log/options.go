package log

import (
	"fmt"
	"os"
)

// Format 콘솔 로그의 출력 형식입니다.
type Format string

const (
	// FormatText 사람이 읽기 쉬운 key=value 형식 (개발 환경)
	FormatText Format = "text"

	// FormatJSON 로그 수집기(Loki, CloudWatch 등)가 파싱하기 쉬운 JSON 형식 (컨테이너 환경)
	FormatJSON Format = "json"
)

// Options 로거 설정을 위한 구조체입니다.
type Options struct {
	Name   string // 로그 파일명 생성에 사용될 애플리케이션 식별자
	Level  Level  // 로그 레벨 (0이면 Info)
	Format Format // 출력 형식 (빈 값이면 text)

	// 로그 파일이 저장될 디렉토리 경로입니다.
	// 컨테이너 환경에서는 표준 출력만 사용하는 것이 일반적이므로, 비어 있으면 파일 로그를 기록하지 않습니다.
	Dir string

	MaxAge     int // 오래된 로그 삭제 기준일 (일 단위, 0: 삭제 안 함)
	MaxSizeMB  int // 로그 파일 최대 크기 (MB, 0: 기본값 100MB 사용)
	MaxBackups int // 최대 백업 파일 수 (0: 기본값 20개 사용)

	EnableCriticalLog bool // ERROR 이상의 로그를 별도 파일로 분리 저장할지 여부 (Dir 필요)
	EnableVerboseLog  bool // DEBUG 이하의 로그를 별도 파일로 분리 저장할지 여부 (Dir 필요)
	EnableConsoleLog  bool // 표준 출력(Stdout)에도 로그를 출력할지 여부

	// 로그를 호출한 소스 코드의 위치를 함께 기록할지 여부
	ReportCaller bool

	// 호출 함수 경로에서 잘라낼 앞부분입니다.
	// 예: "github.com/darkkaiser/learn-go" -> ".../internal/service/api.(*Service).Start"
	CallerPathPrefix string
}

// Validate Options 구조체의 필드 값이 유효한지 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	switch opts.Format {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("지원하지 않는 로그 출력 형식입니다: %q", opts.Format)
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	} else if opts.EnableCriticalLog || opts.EnableVerboseLog {
		return fmt.Errorf("Critical/Verbose 로그 파일을 분리하려면 로그 디렉토리(Dir)가 필요합니다")
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}
