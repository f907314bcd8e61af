package cronx

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 단위를 포함하는 6필드 확장 형식의 Cron 파서를 반환합니다.
//
// 지원 스펙:
//   - 필드 순서: [초] [분] [시] [일] [월] [요일]
//   - Descriptor: @every <duration>, @hourly, @daily 등
//
// 예시:
//   - "*/15 * * * * *" : 15초마다
//   - "@every 30s"     : 30초 간격
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate 표현식이 StandardParser로 해석 가능한지 검증합니다.
func Validate(spec string) error {
	if strings.TrimSpace(spec) == "" {
		return fmt.Errorf("Cron 표현식이 비어 있습니다")
	}
	if _, err := StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}
