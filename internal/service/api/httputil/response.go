// Package httputil 표준 응답 봉투를 사용하는 응답 작성 함수와 전역 에러 핸들러를 제공합니다.
package httputil

import (
	"net/http"

	"github.com/darkkaiser/learn-go/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) error {
	return echo.NewHTTPError(http.StatusNotFound, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return echo.NewHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return echo.NewHTTPError(http.StatusInternalServerError, message)
}

// Success 데이터를 성공 봉투에 담아 200 OK로 응답합니다.
func Success[T any](c echo.Context, data T) error {
	return c.JSON(http.StatusOK, response.Success(data))
}

// Failure 메시지를 실패 봉투에 담아 지정된 상태 코드로 응답합니다.
func Failure(c echo.Context, code int, message string) error {
	return c.JSON(code, response.Failure(message))
}
