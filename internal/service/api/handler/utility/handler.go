// Package utility 요청 내용을 그대로 돌려주는 등의 학습용 유틸리티 엔드포인트 핸들러를 제공합니다.
package utility

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/darkkaiser/learn-go/internal/service/api/constants"
	"github.com/darkkaiser/learn-go/internal/service/api/httputil"
	applog "github.com/darkkaiser/learn-go/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
)

// Handler 유틸리티 엔드포인트 핸들러
type Handler struct{}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler() *Handler {
	return &Handler{}
}

// EchoHandler godoc
// @Summary JSON 에코
// @Description 요청 본문의 JSON을 그대로 성공 봉투의 data에 담아 반환합니다.
// @Description 본문이 비어 있거나 올바른 JSON이 아니면 400 실패 봉투를 반환합니다.
// @Tags Utility
// @Accept json
// @Produce json
// @Param body body object true "임의의 JSON 값"
// @Success 200 {object} response.Envelope[any] "요청 JSON"
// @Failure 400 {object} response.Envelope[any] "잘못된 요청"
// @Failure 413 {object} response.Envelope[any] "본문 크기 초과"
// @Router /echo [post]
func (h *Handler) EchoHandler(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// BodyLimit 미들웨어가 읽기 도중 한도를 넘긴 경우 413 에러를 그대로 전달합니다.
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestBodyReadFailed)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestEmptyBody)
	}

	// JSON 텍스트는 UTF-8이어야 합니다.
	if !utf8.Valid(body) || !gjson.ValidBytes(body) {
		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"endpoint":   c.Path(),
			"body_bytes": len(body),
			"remote_ip":  c.RealIP(),
		}).Debug(constants.LogMsgEchoInvalidBody)

		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidJSON)
	}

	return httputil.Success(c, json.RawMessage(body))
}
