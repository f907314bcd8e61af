package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// WildcardOrigin 모든 Origin을 허용하는 CORS 와일드카드입니다.
const WildcardOrigin = "*"

// ValidateCORSOrigin 문자열이 CORS Origin 형식(Scheme://Host[:Port])인지 검증합니다.
//
// 허용: "*", "http://localhost:3000", "https://example.com"
// 거부: 경로/쿼리/Fragment/사용자 정보 포함, 후행 슬래시, http(s) 이외의 스키마
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)

	switch {
	case origin == WildcardOrigin:
		return nil
	case origin == "":
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	case strings.HasSuffix(origin, "/"):
		return fmt.Errorf("CORS Origin 포맷 오류: 경로 구분자('/')로 끝날 수 없습니다 (input=%q)", origin)
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin 파싱 실패 (input=%q): %w", origin, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin 스키마 오류: 'http' 또는 'https'만 허용됩니다 (input=%q)", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("CORS Origin 포맷 오류: 경로, 쿼리, Fragment를 포함할 수 없습니다 (input=%q)", origin)
	}
	if u.User != nil {
		return fmt.Errorf("CORS Origin 포맷 오류: 사용자 자격 증명을 포함할 수 없습니다 (input=%q)", origin)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("CORS Origin 포트 오류: 숫자가 아닙니다 (input=%q)", origin)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS Origin 포트 오류: %w (input=%q)", err, origin)
		}
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("CORS Origin 포맷 오류: 호스트가 누락되었습니다 (input=%q)", origin)
	}
	if err := ValidateHostname(host); err != nil {
		return fmt.Errorf("CORS Origin 호스트 오류: %w", err)
	}

	return nil
}
