package config

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/learn-go/internal/pkg/errors"
	"github.com/darkkaiser/learn-go/pkg/cronx"
	"github.com/darkkaiser/learn-go/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 커스텀 유효성 검사 규칙이 등록된 Validator 인스턴스를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명(AllowOrigins) 대신 설정 키(allow_origins)가 표시되도록 합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	})
	mustRegister(v, "listen_host", func(fl validator.FieldLevel) bool {
		return validation.ValidateListenHost(fl.Field().String()) == nil
	})
	mustRegister(v, "cron_spec", func(fl validator.FieldLevel) bool {
		return cronx.Validate(fl.Field().String()) == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
	}
}

// checkStruct 구조체를 태그 규칙에 따라 검증하고, 첫 번째 위반 항목을 사용자 친화적인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s interface{}, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	return apperrors.New(apperrors.InvalidInput, describe(validationErrors[0], contextName))
}

// describe 필드 검증 에러를 설정 키 기준의 메시지로 변환합니다.
func describe(fe validator.FieldError, contextName string) string {
	switch fe.StructField() {
	case "Port":
		return fmt.Sprintf("서버 포트(server.port)는 1에서 65535 사이의 값이어야 합니다: '%v'", fe.Value())
	case "Host":
		return fmt.Sprintf("서버 호스트(server.host)가 올바른 IP 주소 또는 호스트명이 아닙니다: '%v'", fe.Value())
	case "ShutdownTimeout":
		return fmt.Sprintf("종료 대기 시간(server.shutdown_timeout)은 0보다 커야 합니다: '%v'", fe.Value())
	case "RequestTimeout":
		return fmt.Sprintf("요청 타임아웃(server.request_timeout)은 0보다 커야 합니다: '%v'", fe.Value())
	case "AllowOrigins":
		if fe.Tag() == "min" {
			return "CORS 허용 도메인(server.allow_origins) 목록이 비어있습니다"
		}
	case "SystemSampleSpec":
		return fmt.Sprintf("시스템 샘플링 주기(metrics.system_sample_spec)가 올바른 Cron 표현식이 아닙니다: '%v' (예: @every 15s)", fe.Value())
	case "SystemInfoTimeout":
		return fmt.Sprintf("시스템 정보 조회 타임아웃(metrics.system_info_timeout)은 0보다 커야 합니다: '%v'", fe.Value())
	case "OTLPEndpoint":
		return fmt.Sprintf("OTLP 수집기 주소(telemetry.otlp_endpoint)가 올바른 URL이 아닙니다: '%v' (예: http://otel-collector:4318)", fe.Value())
	case "SampleRatio":
		return fmt.Sprintf("추적 샘플링 비율(telemetry.sample_ratio)은 0에서 1 사이의 값이어야 합니다: '%v'", fe.Value())
	}

	switch fe.Tag() {
	case "cors_origin":
		return fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value())
	case "oneof":
		return fmt.Sprintf("%s 값이 허용된 값(%s) 중 하나가 아닙니다: '%v'", fe.Namespace(), fe.Param(), fe.Value())
	case "required":
		return fmt.Sprintf("%s 값은 필수입니다", fe.Namespace())
	}

	return fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fe.Namespace(), fe.Tag())
}
