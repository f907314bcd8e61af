package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/learn-go/internal/pkg/errors"
	"github.com/darkkaiser/learn-go/internal/service/api/constants"
	applog "github.com/darkkaiser/learn-go/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 실패 봉투(success=false) JSON으로 변환하여 반환합니다.
// 에러 발생 시 적절한 로그 레벨(Error/Warn)로 상세 정보를 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이중 응답 방지
	if c.Response().Committed {
		return
	}

	// HEAD 요청은 본문 없이 응답
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = Failure(c, code, message)
}

// resolve 에러를 HTTP 상태 코드와 클라이언트에게 보여줄 메시지로 변환합니다.
// 5xx 에러는 내부 정보가 노출되지 않도록 고정된 메시지를 사용합니다.
func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, httpErrorMessage(he)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code := StatusFromErrorType(appErr.Type())
		if code < http.StatusInternalServerError {
			return code, appErr.Message()
		}
		return code, defaultMessage(code)
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}

func httpErrorMessage(he *echo.HTTPError) string {
	// Echo 기본 에러(404, 405, 413 등)는 영문 상태 텍스트를 담고 있으므로 한국어 메시지로 통일합니다.
	if msg, ok := he.Message.(string); ok && msg != "" && msg != http.StatusText(he.Code) && he.Code < http.StatusInternalServerError {
		return msg
	}
	return defaultMessage(he.Code)
}

func defaultMessage(code int) string {
	switch code {
	case http.StatusBadRequest:
		return constants.ErrMsgBadRequest
	case http.StatusNotFound:
		return constants.ErrMsgNotFound
	case http.StatusMethodNotAllowed:
		return constants.ErrMsgMethodNotAllowed
	case http.StatusRequestEntityTooLarge:
		return constants.ErrMsgRequestEntityTooLarge
	case http.StatusTooManyRequests:
		return constants.ErrMsgTooManyRequests
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return constants.ErrMsgServiceUnavailable
	}

	if code >= http.StatusInternalServerError {
		return constants.ErrMsgInternalServer
	}
	if text := http.StatusText(code); text != "" {
		return text
	}
	return constants.ErrMsgBadRequest
}

// StatusFromErrorType 애플리케이션 에러 타입에 대응하는 HTTP 상태 코드를 반환합니다.
func StatusFromErrorType(t apperrors.ErrorType) int {
	switch t {
	case apperrors.InvalidInput:
		return http.StatusBadRequest
	case apperrors.NotFound:
		return http.StatusNotFound
	case apperrors.Timeout:
		return http.StatusGatewayTimeout
	case apperrors.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
