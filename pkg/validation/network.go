package validation

import (
	"fmt"
	"net"
	"strings"
)

// ValidatePort 포트 번호가 1-65535 범위인지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname RFC 1123 규칙에 따라 호스트명을 검증합니다. IP 주소와 localhost는 항상 허용됩니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}

	if len(host) > 253 {
		return fmt.Errorf("호스트명 전체 길이는 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if err := validateLabel(host, label); err != nil {
			return err
		}
	}

	// 최상위 도메인이 숫자로만 구성되면 잘못된 IP 주소일 가능성이 높습니다. (예: 256.1.1.1)
	tld := labels[len(labels)-1]
	if strings.Trim(tld, "0123456789") == "" {
		return fmt.Errorf("최상위 도메인(TLD)은 숫자로만 구성될 수 없습니다 (tld=%q)", tld)
	}

	return nil
}

func validateLabel(host, label string) error {
	if label == "" {
		return fmt.Errorf("호스트명에 빈 레이블이 포함되어 있습니다 (host=%q)", host)
	}
	if len(label) > 63 {
		return fmt.Errorf("각 레이블은 63자를 초과할 수 없습니다 (label=%q)", label)
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return fmt.Errorf("레이블은 하이픈(-)으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
	}

	for _, r := range label {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
			return fmt.Errorf("호스트명은 영문, 숫자, 하이픈(-)으로만 구성되어야 합니다 (invalid_char=%q, host=%q)", r, host)
		}
	}

	return nil
}

// ValidateListenHost 서버가 바인딩할 호스트 주소를 검증합니다.
// 모든 인터페이스를 의미하는 "0.0.0.0"과 "::"를 포함하여 IP 주소 또는 호스트명을 허용합니다.
func ValidateListenHost(host string) error {
	host = strings.TrimSpace(host)
	if host == "" {
		return fmt.Errorf("리슨 호스트는 비어있을 수 없습니다")
	}

	// "[::1]"처럼 대괄호로 감싼 IPv6 표기도 허용합니다.
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		host = host[1 : len(host)-1]
	}

	return ValidateHostname(host)
}
