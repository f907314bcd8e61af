package strutil

import "strings"

// SplitAndTrim 구분자로 분리한 각 항목의 앞뒤 공백을 제거하고, 빈 항목을 제외한 슬라이스를 반환합니다.
// 결과가 없으면 nil을 반환합니다.
// 예: "a, , b,c" (구분자 ",") -> ["a", "b", "c"]
func SplitAndTrim(s, sep string) []string {
	var result []string
	for _, token := range strings.Split(s, sep) {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}
	return result
}

// MaskSensitiveData 토큰, 키 등의 민감 정보를 로그에 안전하게 기록할 수 있도록 마스킹합니다.
//
//	"abc"                -> "***"
//	"secret12"           -> "secr***"
//	"abcdefghijklmnopqr" -> "abcd***opqr"
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}
