package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 일반 HTTP 에러 (상태 코드 순)
	// ------------------------------------------------------------------------------------------------

	// 400 Bad Request
	ErrMsgBadRequest               = "잘못된 요청입니다"
	ErrMsgBadRequestInvalidJSON    = "잘못된 JSON 형식입니다"
	ErrMsgBadRequestEmptyBody      = "요청 본문이 비어있습니다"
	ErrMsgBadRequestBodyReadFailed = "요청 본문을 읽을 수 없습니다"

	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 405 Method Not Allowed
	ErrMsgMethodNotAllowed = "허용되지 않은 HTTP 메서드입니다"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// 503 Service Unavailable
	ErrMsgServiceUnavailable = "요청 처리 시간이 초과되었거나 서비스를 일시적으로 사용할 수 없습니다"
)

// 핸들러 응답 메시지 상수입니다.
const (
	// MsgWelcome 루트 경로 환영 메시지
	MsgWelcome = "learn-go 서비스에 오신 것을 환영합니다"

	// MsgPong /ping 응답 본문
	MsgPong = "pong"
)
