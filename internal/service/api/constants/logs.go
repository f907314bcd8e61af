package constants

// 내부 로깅을 위한 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생 (연결을 강제로 종료합니다)"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버 실행 중 치명적인 오류가 발생하였습니다"

	// ------------------------------------------------------------------------------------------------
	// 요청 처리
	// ------------------------------------------------------------------------------------------------

	LogMsgHTTPRequest        = "HTTP 요청"
	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"
	LogMsgPanicRecovered     = "패닉 복구: 예기치 못한 오류가 발생하여 안전하게 복구했습니다"
	LogMsgRateLimitExceeded  = "요청 속도 제한 초과"
	LogMsgEchoInvalidBody    = "에코 요청 본문이 올바른 JSON이 아닙니다"

	// ------------------------------------------------------------------------------------------------
	// 핸들러
	// ------------------------------------------------------------------------------------------------

	LogMsgHealthCheck    = "헬스체크 조회"
	LogMsgAppInfo        = "애플리케이션 정보 조회"
	LogMsgVersionInfo    = "버전 정보 조회"
	LogMsgMetricsScrape  = "메트릭 조회"
	LogMsgMetricsRender  = "메트릭 렌더링에 실패했습니다"
	LogMsgOpenAPIMissing = "OpenAPI 문서를 읽을 수 없습니다"
)
