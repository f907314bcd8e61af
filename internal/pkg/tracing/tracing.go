// Package tracing OpenTelemetry 분산 추적을 초기화합니다.
//
// OTLP 수집기 주소가 설정되지 않으면 아무것도 설정하지 않으며, 전역 TracerProvider는
// OpenTelemetry 기본값(no-op)으로 남습니다.
package tracing

import (
	"context"
	"net/url"
	"strings"

	apperrors "github.com/darkkaiser/learn-go/internal/pkg/errors"
	applog "github.com/darkkaiser/learn-go/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const component = "tracing"

// tracesPath OTLP/HTTP 추적 데이터 수신 경로
const tracesPath = "/v1/traces"

// Config 추적 설정입니다.
type Config struct {
	// Endpoint OTLP/HTTP 수집기 기본 주소 (예: http://otel-collector:4318). 비어 있으면 추적을 비활성화합니다.
	Endpoint string

	ServiceName    string
	ServiceVersion string
	Environment    string

	// SampleRatio 루트 스팬 샘플링 비율 (0~1)
	SampleRatio float64
}

// ShutdownFunc 남은 스팬을 내보내고 TracerProvider를 종료합니다.
type ShutdownFunc = func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init 전역 TracerProvider와 전파기(W3C Trace Context + Baggage)를 설정합니다.
// 수집기 주소가 비어 있으면 아무 작업도 하지 않고 no-op 종료 함수를 반환합니다.
func Init(ctx context.Context, cfg Config) (ShutdownFunc, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		applog.WithComponent(component).Debug("OTLP 수집기 주소가 설정되지 않아 분산 추적을 사용하지 않습니다")
		return noopShutdown, nil
	}

	endpoint, err := tracesURL(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	// http 스킴이면 WithEndpointURL이 자동으로 비암호화 연결을 사용합니다.
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "OTLP 추적 Exporter 생성에 실패했습니다")
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
		resource.WithTelemetrySDK(),
	)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "추적 리소스 생성에 실패했습니다")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	applog.WithComponentAndFields(component, applog.Fields{
		"endpoint":     endpoint,
		"service_name": cfg.ServiceName,
		"sample_ratio": cfg.SampleRatio,
	}).Info("분산 추적이 활성화되었습니다")

	return tp.Shutdown, nil
}

// tracesURL 수집기 기본 주소에 추적 수신 경로(/v1/traces)를 붙입니다. 이미 포함된 경우 그대로 사용합니다.
func tracesURL(endpoint string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", apperrors.New(apperrors.InvalidInput, "OTLP 수집기 주소가 올바른 URL이 아닙니다: '"+endpoint+"'")
	}

	if !strings.HasSuffix(u.Path, tracesPath) {
		u.Path = strings.TrimRight(u.Path, "/") + tracesPath
	}

	return u.String(), nil
}
